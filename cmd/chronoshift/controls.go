package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/registry"
)

var flagControlsRaw bool

var controlsCmd = &cobra.Command{
	Use:   "controls <game>",
	Short: "Show the key bindings of a game",
	Long: `Print the active key bindings of a game, including overrides from
its config file.

Examples:
  chronoshift controls drift
  chronoshift controls explore --config ./my-explore.yaml
  chronoshift controls drift --raw`,
	Args: cobra.ExactArgs(1),
	Run:  runControls,
}

func init() {
	controlsCmd.Flags().BoolVar(&flagControlsRaw, "raw", false, "Print markdown without styling")
}

func runControls(cmd *cobra.Command, args []string) {
	game, err := createGame(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	md := controlsMarkdown(game)
	if flagControlsRaw {
		fmt.Print(md)
		return
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// controlsMarkdown resets the game so config overrides apply, then lists
// its bindings as two markdown tables.
func controlsMarkdown(game registry.Game) string {
	game.Reset(core.DefaultConfig())

	var play, menu strings.Builder
	for _, b := range game.Bindings().List() {
		row := fmt.Sprintf("| `%s` | %s |\n", b.Key, actionLabel(b.Action))
		if b.Menu {
			menu.WriteString(row)
		} else {
			play.WriteString(row)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", game.Title())
	sb.WriteString("## Playing\n\n| Key | Action |\n| --- | --- |\n")
	sb.WriteString(play.String())
	if menu.Len() > 0 {
		sb.WriteString("\n## Pause menu\n\n| Key | Action |\n| --- | --- |\n")
		sb.WriteString(menu.String())
	}
	return sb.String()
}

func actionLabel(a core.Action) string {
	return strings.ReplaceAll(a.String(), "_", " ")
}
