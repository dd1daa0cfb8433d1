package input

import (
	"testing"

	"github.com/vovakirdan/chronoshift/internal/core"
)

func testBindings() Bindings {
	return Bindings{
		Keys: map[string]core.Action{
			"w":      core.ActionMoveForward,
			"s":      core.ActionMoveBackward,
			"a":      core.ActionStrafeLeft,
			"d":      core.ActionStrafeRight,
			"space":  core.ActionJump,
			"shift":  core.ActionSprint,
			"v":      core.ActionSwitchTimeline,
			"escape": core.ActionTogglePause,
			"q":      core.ActionQuit,
		},
		Menu: DefaultMenu(),
	}
}

func TestHeldKeysRepeatEveryTick(t *testing.T) {
	r := NewRouter(testBindings())
	r.Feed(KeyDown("w"), KeyDown("d"))

	for tick := 0; tick < 3; tick++ {
		f := r.Tick()
		if !f.Held[core.ActionMoveForward] || !f.Held[core.ActionStrafeRight] {
			t.Errorf("tick %d: Held = %v, expected forward and strafe right", tick, f.Held)
		}
		if len(f.Edges) != 0 {
			t.Errorf("tick %d: held keys must not produce edges, got %v", tick, f.Edges)
		}
	}

	r.Feed(KeyUp("w"))
	f := r.Tick()
	if f.Held[core.ActionMoveForward] {
		t.Error("released key should stop producing its action")
	}
}

func TestEdgeKeysFireOncePerPress(t *testing.T) {
	r := NewRouter(testBindings())

	r.Feed(KeyDown("v"))
	if got := r.Tick().Count(core.ActionSwitchTimeline); got != 1 {
		t.Errorf("first tick Count(SwitchTimeline) = %d, expected 1", got)
	}

	// Auto-repeat while held is ignored.
	r.Feed(KeyDown("v"), KeyDown("v"))
	if got := r.Tick().Count(core.ActionSwitchTimeline); got != 0 {
		t.Errorf("held key Count(SwitchTimeline) = %d, expected 0", got)
	}

	r.Feed(KeyUp("v"), KeyDown("v"), KeyUp("v"), KeyDown("v"), KeyUp("v"), KeyDown("v"))
	if got := r.Tick().Count(core.ActionSwitchTimeline); got != 3 {
		t.Errorf("three presses Count(SwitchTimeline) = %d, expected 3", got)
	}
}

func TestSprintFlag(t *testing.T) {
	r := NewRouter(testBindings())
	r.Feed(KeyDown("shift"), KeyDown("w"))

	f := r.Tick()
	if !f.Sprint {
		t.Error("Sprint should be true while shift is held")
	}
	if f.Held[core.ActionSprint] {
		t.Error("sprint is reported through the Sprint flag, not Held")
	}

	r.Feed(KeyUp("shift"))
	if r.Tick().Sprint {
		t.Error("Sprint should be false after release")
	}
}

func TestPointerAccumulates(t *testing.T) {
	r := NewRouter(testBindings())
	r.Feed(Pointer(3, -1), Pointer(2, 4))

	f := r.Tick()
	if f.LookDX != 5 || f.LookDY != 3 {
		t.Errorf("look = (%v, %v), expected (5, 3)", f.LookDX, f.LookDY)
	}

	f = r.Tick()
	if f.LookDX != 0 || f.LookDY != 0 {
		t.Error("pointer delta should reset each tick")
	}
}

func TestPauseGatesGameplay(t *testing.T) {
	r := NewRouter(testBindings())
	r.Feed(KeyDown("w"), KeyDown("escape"))

	f := r.Tick()
	if r.Mode() != ModePaused {
		t.Fatalf("Mode() = %v, expected paused", r.Mode())
	}
	if f.Count(core.ActionTogglePause) != 1 {
		t.Errorf("Edges = %v, expected one TogglePause", f.Edges)
	}
	if len(f.Held) != 0 {
		t.Errorf("Held = %v, movement must be gated while paused", f.Held)
	}

	r.Feed(KeyDown("v"), KeyDown("space"), Pointer(10, 10))
	f = r.Tick()
	if len(f.Edges) != 0 || f.LookDX != 0 {
		t.Errorf("paused frame = %+v, expected no commands", f)
	}
}

func TestMenuKeysOnlyWhilePaused(t *testing.T) {
	r := NewRouter(testBindings())

	r.Feed(KeyDown("1"), KeyUp("1"), KeyDown("2"), KeyUp("2"))
	if f := r.Tick(); len(f.Edges) != 0 {
		t.Errorf("digits while active produced %v", f.Edges)
	}

	r.Feed(KeyDown("escape"), KeyUp("escape"))
	r.Tick()

	r.Feed(KeyDown("1"), KeyUp("1"), KeyDown("2"), KeyUp("2"), KeyDown("3"))
	f := r.Tick()
	expected := []core.Action{core.ActionSave, core.ActionLoad, core.ActionQuit}
	if len(f.Edges) != len(expected) {
		t.Fatalf("Edges = %v, expected %v", f.Edges, expected)
	}
	for i, a := range expected {
		if f.Edges[i] != a {
			t.Errorf("Edges[%d] = %v, expected %v", i, f.Edges[i], a)
		}
	}
}

func TestResumeRestoresHeldMovement(t *testing.T) {
	r := NewRouter(testBindings())
	r.Feed(KeyDown("escape"), KeyUp("escape"), KeyDown("w"))
	if f := r.Tick(); len(f.Held) != 0 {
		t.Error("movement should be gated while paused")
	}

	r.Feed(KeyDown("escape"))
	f := r.Tick()
	if r.Mode() != ModeActive {
		t.Fatalf("Mode() = %v, expected active", r.Mode())
	}
	if !f.Held[core.ActionMoveForward] {
		t.Error("key held through the pause should move after resuming")
	}
}

func TestModeAccepts(t *testing.T) {
	tests := []struct {
		mode     Mode
		action   core.Action
		expected bool
	}{
		{ModeActive, core.ActionMoveForward, true},
		{ModeActive, core.ActionSwitchTimeline, true},
		{ModeActive, core.ActionSave, false},
		{ModeActive, core.ActionQuit, true},
		{ModePaused, core.ActionMoveForward, false},
		{ModePaused, core.ActionSwitchTimeline, false},
		{ModePaused, core.ActionJump, false},
		{ModePaused, core.ActionSave, true},
		{ModePaused, core.ActionLoad, true},
		{ModePaused, core.ActionTogglePause, true},
		{ModePaused, core.ActionQuit, true},
	}

	for _, tc := range tests {
		if got := tc.mode.Accepts(tc.action); got != tc.expected {
			t.Errorf("%v.Accepts(%v) = %v, expected %v", tc.mode, tc.action, got, tc.expected)
		}
	}
}

func TestBindingsOverride(t *testing.T) {
	b, err := testBindings().Override(map[string]string{"e": "switch_timeline", "v": "none"}, nil)
	if err != nil {
		t.Fatalf("Override() failed: %v", err)
	}
	if b.Lookup(ModeActive, "e") != core.ActionSwitchTimeline {
		t.Error("override should bind e")
	}
	if b.Lookup(ModeActive, "v") != core.ActionNone {
		t.Error("\"none\" should unbind v")
	}

	if _, err := testBindings().Override(map[string]string{"x": "teleport"}, nil); err == nil {
		t.Error("unknown action name should fail")
	}
}
