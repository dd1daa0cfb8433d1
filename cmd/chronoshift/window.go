package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/platform/window"
	"github.com/vovakirdan/chronoshift/internal/session"
)

var (
	flagCols int
	flagRows int
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Start the specified game in a desktop window.

The window reports real key releases and captures the mouse for looking
around in explore. Controls match 'chronoshift play'.

Examples:
  chronoshift window drift
  chronoshift window explore --cols 120 --rows 40`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagCols, "cols", 100, "Window width in character cells")
	windowCmd.Flags().IntVar(&flagRows, "rows", 36, "Window height in character cells")
	windowCmd.Flags().StringVar(&flagSlot, "slot", "", "Save slot name (default: game ID)")
}

func runWindow(cmd *cobra.Command, args []string) {
	game, err := createGame(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	opts := session.Options{Slot: flagSlot, Logger: logger}
	backend, store, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: saving disabled: %v\n", err)
	} else {
		opts.Backend = backend
	}
	if store != nil {
		defer store.Close()
	}

	cfg := core.RuntimeConfig{ScreenW: flagCols, ScreenH: flagRows, TickRate: flagFPS}
	if err := window.Run(game, cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
	}
}
