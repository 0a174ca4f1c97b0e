package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/columns/internal/platform/tui"
	"github.com/vovakirdan/columns/internal/registry"
	"github.com/vovakirdan/columns/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for a rule set, or a summary of every rule set
when no game is given.

Examples:
  columns scores
  columns scores columns_classic --limit 20
  columns scores -i
  columns scores columns --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a terminal table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored score of the given game")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a game")
		}
		return printStats(store)
	}

	game, err := gameArg(args)
	if err != nil {
		return err
	}

	if flagClear {
		n, err := store.ClearScores(game.ID())
		if err != nil {
			return err
		}
		logger.Info("scores cleared", "game", game.ID(), "removed", n)
		return nil
	}

	scores, err := store.TopScores(game.ID(), flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'columns play %s' to set the first high score!\n", game.ID())
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Jewels", "Chain", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-5s  %s\n", "----", "------", "-----", "------", "-----", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %06d    %-6d  %-5d  %s\n",
			i+1, player, e.Score, e.Cleared, e.MaxChain, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// printStats prints one summary line per rule set.
func printStats(store *storage.Store) error {
	stats, err := store.AllGamesStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-16s  %5s  %6s  %8s  %7s  %5s\n", "Game", "Games", "Best", "Average", "Jewels", "Chain")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-16s  %5d  %6s  %8s  %7s  %5s\n", g.ID, 0, "-", "-", "-", "-")
			continue
		}
		fmt.Printf("  %-16s  %5d  %06d  %8.1f  %7d  %5d\n",
			g.ID, s.GamesCount, s.HighScore, s.AvgScore, s.TotalCleared, s.BestChain)
	}
	return nil
}
