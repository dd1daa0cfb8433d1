package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chronoshift/internal/platform/tui"
)

var flagSlot string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls (drift):
  Arrows/WASD  - Move
  Space        - Switch timeline
  Esc          - Pause menu (1 Save, 2 Load, 3 Quit)
  Q/Ctrl+C     - Quit

Controls (explore):
  WASD/Arrows  - Walk
  Shift        - Sprint
  Space        - Jump
  V            - Switch timeline
  Mouse        - Look
  Esc          - Pause menu (1 Save, 2 Load, 3 Quit)

Terminals report key presses only, so a held key is released after a
short time without repeats. Tune hold_initial_ms and hold_repeat_ms in
the game config if movement stutters.

Examples:
  chronoshift play drift
  chronoshift play explore --config ./my-explore.yaml
  chronoshift play drift --backend sqlite --slot run2`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSlot, "slot", "", "Save slot name (default: game ID)")
}

func runPlay(cmd *cobra.Command, args []string) {
	game, err := createGame(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	opts := tui.Options{Slot: flagSlot, Logger: logger}
	backend, store, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: saving disabled: %v\n", err)
		// Continue without saving - game still works
	} else {
		opts.Backend = backend
	}

	runErr := tui.Run(game, runtimeConfig(), opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
