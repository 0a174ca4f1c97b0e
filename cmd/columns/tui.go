package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/columns/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [game]",
	Short: "Play in the terminal",
	Long: `Play the given rule set (default: columns) in the terminal.

The window is rasterized onto terminal cells; the default layout needs
a 25x19 terminal.

Controls:
  Left/Right, A/D  - Shift the column
  Up/W/Space       - Cycle the jewels
  Down/S           - Soft drop
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - Toggle help
  Ctrl+S           - Save a screenshot to ~/.columns/screenshots
  Q/Ctrl+C         - Quit

Examples:
  columns tui
  columns tui columns_classic --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func runTUI(_ *cobra.Command, args []string) error {
	game, err := gameArg(args)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, appConfig, runtimeConfig(width, height))
}
