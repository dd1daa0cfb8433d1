package input

import "github.com/vovakirdan/chronoshift/internal/core"

// Mode is the router's pause state.
type Mode uint8

const (
	ModeActive Mode = iota
	ModePaused
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModePaused {
		return "paused"
	}
	return "active"
}

// Accepts reports whether action is honored in mode. While paused only the
// pause-menu commands pass; movement, look and switching are gated.
func (m Mode) Accepts(a core.Action) bool {
	switch m {
	case ModePaused:
		switch a {
		case core.ActionTogglePause, core.ActionSave, core.ActionLoad, core.ActionQuit:
			return true
		}
		return false
	default:
		switch a {
		case core.ActionSave, core.ActionLoad, core.ActionNone:
			return false
		}
		return true
	}
}

// Next returns the mode after action is processed.
func (m Mode) Next(a core.Action) Mode {
	if a != core.ActionTogglePause {
		return m
	}
	if m == ModePaused {
		return ModeActive
	}
	return ModePaused
}
