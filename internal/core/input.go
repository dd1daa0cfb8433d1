package core

import "fmt"

// Action represents a semantic game command, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionMoveForward           // W, Up arrow - held
	ActionMoveBackward          // S, Down arrow - held
	ActionStrafeLeft            // A, Left arrow - held
	ActionStrafeRight           // D, Right arrow - held
	ActionJump                  // Space (explore) - one per press
	ActionSprint                // Shift - held, reported as InputFrame.Sprint
	ActionSwitchTimeline        // Space (drift), V (explore)
	ActionTogglePause           // Escape
	ActionSave                  // 1 while paused
	ActionLoad                  // 2 while paused
	ActionQuit                  // 3 while paused, Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:           "none",
	ActionMoveForward:    "move_forward",
	ActionMoveBackward:   "move_backward",
	ActionStrafeLeft:     "strafe_left",
	ActionStrafeRight:    "strafe_right",
	ActionJump:           "jump",
	ActionSprint:         "sprint",
	ActionSwitchTimeline: "switch_timeline",
	ActionTogglePause:    "toggle_pause",
	ActionSave:           "save",
	ActionLoad:           "load",
	ActionQuit:           "quit",
}

// String returns the config name of the action (e.g. "switch_timeline").
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction converts a config name back into an Action.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("core: unknown action %q", name)
}

// Continuous reports whether the action is emitted every tick while its key is held.
func (a Action) Continuous() bool {
	switch a {
	case ActionMoveForward, ActionMoveBackward, ActionStrafeLeft, ActionStrafeRight, ActionSprint:
		return true
	}
	return false
}

// InputFrame represents the commands produced for a single simulation tick.
type InputFrame struct {
	// Held contains continuous actions whose keys are down this tick.
	Held map[Action]bool

	// Edges contains discrete actions in the order their key-down edges arrived.
	// The same action may appear more than once.
	Edges []Action

	// Sprint is true while the sprint key is held.
	Sprint bool

	// LookDX and LookDY are the pointer deltas accumulated since the last tick.
	LookDX float64
	LookDY float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held: make(map[Action]bool),
	}
}

// Set records an action for this frame. Sprint only raises the Sprint flag;
// discrete actions are appended as edges.
func (f *InputFrame) Set(a Action) {
	switch {
	case a == ActionNone:
	case a == ActionSprint:
		f.Sprint = true
	case a.Continuous():
		if f.Held == nil {
			f.Held = make(map[Action]bool)
		}
		f.Held[a] = true
	default:
		f.Edges = append(f.Edges, a)
	}
}

// Has returns true if the given action is held or was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Held[a] {
		return true
	}
	return f.Count(a) > 0
}

// Count returns how many times a discrete action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, e := range f.Edges {
		if e == a {
			n++
		}
	}
	return n
}
