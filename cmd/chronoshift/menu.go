package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chronoshift/internal/platform/tui"
	"github.com/vovakirdan/chronoshift/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Quitting a game from its pause menu returns you here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Browse saves (sqlite backend)
  Q            - Quit

Examples:
  chronoshift menu
  chronoshift menu --fps 30
  chronoshift menu --backend sqlite --db ./saves.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	backend, store, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: saving disabled: %v\n", err)
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsSaves {
			goBack, savesErr := runSavesBrowser(store, cfg.ScreenW, cfg.ScreenH)
			if savesErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", savesErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from saves browser
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := createGame(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		opts := tui.Options{Logger: logger, MenuOnQuit: true}
		if backend != nil {
			opts.Backend = backend
		}
		if err := tui.Run(game, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}

// runSavesBrowser shows the saves table. History is kept only by the sqlite
// backend, so the file backend gets a short-lived read-only store.
func runSavesBrowser(store *storage.Store, width, height int) (bool, error) {
	if store != nil {
		return tui.RunSaves(store, width, height)
	}

	tmp, err := storage.Open(flagDBPath)
	if err != nil {
		return true, fmt.Errorf("saves history needs the sqlite backend: %w", err)
	}
	defer tmp.Close()
	return tui.RunSaves(tmp, width, height)
}
