// columns is a falling-jewel puzzle game with a windowed, a terminal and an
// SSH front end sharing one render pipeline.
//
// Usage:
//
//	columns list              - List available rule sets
//	columns play [game]       - Play in a window
//	columns tui [game]        - Play in the terminal
//	columns menu              - Terminal game picker and scoreboard
//	columns serve             - Start SSH server for remote play
//	columns frame [game]      - Render one frame headlessly and describe the draw calls
//	columns scores [game]     - Show high scores
//
// Global flags:
//
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.columns/scores.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/columns/internal/config"
	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/games/columns"
	"github.com/vovakirdan/columns/internal/registry"
	"github.com/vovakirdan/columns/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	// Set up by the root command before any subcommand runs
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "columns",
	Short: "Columns - line up three jewels of a kind",
	Long: `Columns drops a column of three jewels into a well. Shift it, cycle
its jewels and line up three or more of a kind horizontally, vertically
or diagonally to clear them.

Rule sets:
  columns          - matches fade out in a diagonal wave
  columns_classic  - matches fade out together

Examples:
  columns play
  columns tui columns_classic --difficulty hard
  columns serve --ssh :2222
  columns frame --seed 42 --ticks 600 --ascii`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup builds the logger and loads the configuration shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "columns",
		Level:           level,
	})

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("invalid --difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	logger.Debug("config loaded", "source", source, "difficulty", preset)

	appConfig = cfg
	columns.SetConfig(cfg)
	return nil
}

// gameArg returns the game named by args, defaulting to the wave rule set.
func gameArg(args []string) (registry.Game, error) {
	id := "columns"
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown game %q, run 'columns list' to see available games", id)
	}
	return registry.Create(id)
}

// runtimeConfig returns the runtime settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; failures only disable scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
