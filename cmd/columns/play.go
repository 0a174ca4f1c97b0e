package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/columns/internal/platform/window"
)

var flagScale float64

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in a window",
	Long: `Open a window and play the given rule set (default: columns).

Controls:
  Left/Right, A/D  - Shift the column
  Up/W/Space       - Cycle the jewels
  Down/S           - Soft drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit

Difficulty options:
  easy   - Start at lowest difficulty, slower gravity
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, faster gravity and shorter flashes
  fixed  - No progression, stays at config's initial level

Examples:
  columns play
  columns play columns_classic --difficulty hard
  columns play --scale 2 --config ./my-columns.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&flagScale, "scale", 1.5, "Window scale factor")
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := gameArg(args)
	if err != nil {
		return err
	}

	win := appConfig.Layout.Window
	rc := runtimeConfig(int(win.Width()), int(win.Height())).Seeded()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return window.Run(game, store, appConfig, rc, flagScale, logger)
}
