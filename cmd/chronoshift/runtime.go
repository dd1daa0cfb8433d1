package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/games/drift"
	"github.com/vovakirdan/chronoshift/internal/games/explore"
	"github.com/vovakirdan/chronoshift/internal/registry"
	"github.com/vovakirdan/chronoshift/internal/save"
	"github.com/vovakirdan/chronoshift/internal/storage"
)

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// newLogger returns a file logger when --log is set. The terminal belongs to
// the game, so without --log events are discarded.
func newLogger() (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "chronoshift",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// openBackend opens the save backend selected by --backend. The returned
// store is non-nil only for the sqlite backend.
func openBackend() (save.Backend, *storage.Store, error) {
	switch flagBackend {
	case "", "file":
		b, err := save.NewFileBackend(flagSaveDir)
		if err != nil {
			return nil, nil, err
		}
		return b, nil, nil
	case "sqlite":
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (use file or sqlite)", flagBackend)
	}
}

// applyConfigPath hands --config to the selected game.
func applyConfigPath(gameID string) {
	switch gameID {
	case "drift":
		drift.SetConfigPath(flagConfig)
	case "explore":
		explore.SetConfigPath(flagConfig)
	}
}

// createGame validates the ID and creates the game with --config applied.
func createGame(gameID string) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q, run 'chronoshift list' to see available games", gameID)
	}
	applyConfigPath(gameID)
	return registry.Create(gameID)
}
