package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chronoshift/internal/core"
)

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(12, 4)
	s.SetBackground(core.RGBRed)
	s.DrawTextColored(1, 1, "ab", core.ColorBrightWhite)
	s.DrawText(4, 1, "cd")

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("RenderScreen() has %d line breaks, expected 3", got)
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
}

func TestCellStyle(t *testing.T) {
	bg := lipgloss.Color("#0000ff")

	if fg := cellStyle(core.ColorOrange, bg).GetForeground(); fg != lipgloss.Color("208") {
		t.Errorf("cellStyle(ColorOrange) foreground = %v, expected 208", fg)
	}
	if _, ok := cellStyle(core.ColorDefault, bg).GetForeground().(lipgloss.NoColor); !ok {
		t.Error("cellStyle(ColorDefault) should keep the terminal foreground")
	}
	if got := cellStyle(core.ColorGray, bg).GetBackground(); got != bg {
		t.Errorf("cellStyle() background = %v, expected %v", got, bg)
	}
}
