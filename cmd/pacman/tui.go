package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rom100main/pac-minator/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play in the terminal, one character per maze tile.

Controls:
  Arrows/WASD  - Steer
  P/Space      - Pause
  R            - Restart (after the round ends)
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// Rows used around the maze by the status line, banner and help.
const tuiChromeRows = 6

func runTUI(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	r, err := newRound(logger)
	if err != nil {
		return err
	}

	m := r.Maze()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < m.Width || h < m.Height+tuiChromeRows {
			return fmt.Errorf("terminal too small: need %dx%d, have %dx%d", m.Width, m.Height+tuiChromeRows, w, h)
		}
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	return tui.Run(r, store, logger, flagName)
}
