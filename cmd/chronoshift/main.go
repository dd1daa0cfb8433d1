// chronoshift runs two timeline-switching prototypes in the terminal or in
// a desktop window.
//
// Usage:
//
//	chronoshift list              - List available games
//	chronoshift play <game>       - Play a game in the terminal
//	chronoshift window <game>     - Play a game in a desktop window
//	chronoshift menu              - Start menu to pick games interactively
//	chronoshift serve             - Start SSH server for remote play
//	chronoshift saves [game]      - Show save history
//	chronoshift controls <game>   - Show the key bindings of a game
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--config <path>     - Custom game config YAML
//	--backend <kind>    - Save backend: file or sqlite (default: file)
//	--save-dir <path>   - Directory for file saves (default: ~/.chronoshift/saves)
//	--db <path>         - SQLite database (default: ~/.chronoshift/saves.db)
//	--log <path>        - Write a debug log to this file
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chronoshift/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/chronoshift/internal/games/drift"
	_ "github.com/vovakirdan/chronoshift/internal/games/explore"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagBackend string
	flagSaveDir string
	flagDBPath  string
	flagLogPath string
)

func main() {
	// A .env file is optional; real environment variables take precedence.
	//nolint:errcheck // missing .env is fine
	godotenv.Load()

	registerFlags()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chronoshift",
	Short: "Chronoshift - switch between timelines while you move",
	Long: `Chronoshift contains two small prototypes built around one mechanic:
pressing a key cycles the world through a fixed set of timelines.

  drift    - 2D: move a square, the background color is the timeline
  explore  - 3D: walk around, each timeline is a different environment

Press Esc during play for the pause menu: 1 saves, 2 loads, 3 quits.

Available commands:
  list      - Show all available games
  play      - Play a game in the terminal
  window    - Play a game in a desktop window
  menu      - Interactive game picker menu
  serve     - Start SSH server for remote play
  saves     - View save history
  controls  - Show key bindings

Examples:
  chronoshift list
  chronoshift play drift
  chronoshift window explore
  chronoshift play drift --backend sqlite
  chronoshift serve --ssh :2222`,
}

func registerFlags() {
	saveDir := envOr("CHRONOSHIFT_SAVE_DIR", config.DefaultPath("saves"))
	dbPath := envOr("CHRONOSHIFT_DB", config.DefaultPath("saves.db"))

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "file", "Save backend: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagSaveDir, "save-dir", saveDir, "Directory for file saves")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", dbPath, "Path to saves database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", os.Getenv("CHRONOSHIFT_LOG"), "Write a debug log to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(controlsCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
