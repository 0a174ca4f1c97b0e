package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/columns/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a rule set and browse scores in the terminal",
	Long: `Start the terminal front end with a game picker.

Use arrow keys or j/k to navigate, Enter to play, Tab for the
scoreboard. Press B on a paused or finished game to return to the menu.

Examples:
  columns menu
  columns menu --fps 30
  columns menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(store, appConfig, runtimeConfig(width, height), logger)
}
