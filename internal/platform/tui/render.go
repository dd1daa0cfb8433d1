package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chronoshift/internal/core"
)

// ansiCodes holds the ANSI 256-color code of each core.Color.
// ColorDefault has no entry and keeps the terminal foreground.
var ansiCodes = [...]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// cellStyle returns the style for foreground c on background bg.
func cellStyle(c core.Color, bg lipgloss.Color) lipgloss.Style {
	style := lipgloss.NewStyle().Background(bg)
	if int(c) < len(ansiCodes) && ansiCodes[c] != "" {
		style = style.Foreground(lipgloss.Color(ansiCodes[c]))
	}
	return style
}

// RenderScreen converts a Screen to styled terminal output. Every cell is
// painted with the screen background; runs of one foreground color share a
// single escape sequence.
func RenderScreen(s *core.Screen) string {
	bg := lipgloss.Color(s.Background().Hex())
	styles := make(map[core.Color]lipgloss.Style)

	rows := make([]string, s.Height())
	for y := range rows {
		var row, run strings.Builder
		runColor := s.GetCell(0, y).Color

		flush := func() {
			if run.Len() == 0 {
				return
			}
			style, ok := styles[runColor]
			if !ok {
				style = cellStyle(runColor, bg)
				styles[runColor] = style
			}
			row.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}
