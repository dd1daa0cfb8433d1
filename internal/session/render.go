package session

import (
	"strings"

	"github.com/vovakirdan/chronoshift/internal/core"
)

// pauseItems lists the pause-menu commands in display order.
var pauseItems = []struct {
	action core.Action
	label  string
}{
	{core.ActionSave, "Save"},
	{core.ActionLoad, "Load"},
	{core.ActionQuit, "Quit"},
	{core.ActionTogglePause, "Resume"},
}

// Render draws the game, then the HUD row, the pause menu and the status line.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	s.game.Render(dst)

	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}

	// HUD
	dst.DrawHLine(0, 0, w, ' ')
	dst.DrawTextColored(1, 0, "Timeline: "+s.state.Timeline, core.ColorBrightWhite)
	hint := s.menuKey(core.ActionTogglePause) + ": menu"
	dst.DrawTextColored(w-len(hint)-1, 0, hint, core.ColorGray)

	if s.Paused() {
		s.renderPauseMenu(dst)
	}

	if msg := s.Status(); msg != "" {
		dst.DrawHLine(0, h-1, w, ' ')
		x := (w - len([]rune(msg))) / 2
		dst.DrawTextColored(x, h-1, msg, core.ColorBrightYellow)
	}
}

func (s *Session) renderPauseMenu(dst *core.Screen) {
	lines := []string{"PAUSED", ""}
	for _, item := range pauseItems {
		lines = append(lines, padRight(s.menuKey(item.action), 7)+item.label)
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 6
	boxH := len(lines) + 2

	full := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := full.Centered(boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightCyan
		}
		dst.DrawTextColored(box.X+3, box.Y+1+i, l, c)
	}
}

// menuKey returns the first key bound to a pause-menu action.
func (s *Session) menuKey(a core.Action) string {
	for _, kb := range s.router.Bindings().List() {
		if kb.Action == a && (kb.Menu || a == core.ActionTogglePause) {
			return displayKey(kb.Key)
		}
	}
	return "?"
}

func displayKey(key string) string {
	switch key {
	case "escape":
		return "Esc"
	case "space":
		return "Space"
	}
	if len(key) == 1 {
		return strings.ToUpper(key)
	}
	return key
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
