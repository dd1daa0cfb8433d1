package config

import (
	_ "embed"

	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/input"
)

//go:embed defaults/drift.yaml
var defaultDriftYAML []byte

//go:embed defaults/explore.yaml
var defaultExploreYAML []byte

const (
	defaultHoldInitialMS = 300
	defaultHoldRepeatMS  = 120
)

// DefaultDriftConfig returns the default drift configuration: blue and red
// timelines, a 50-unit square moving 5 units per tick.
func DefaultDriftConfig() DriftConfig {
	return DriftConfig{
		Timelines: []TimelineConfig{
			{Name: "Blue", Color: "#0000ff"},
			{Name: "Red", Color: "#ff0000"},
		},
		World: DriftWorld{
			Width:  800,
			Height: 600,
		},
		Player: DriftPlayer{
			Size:  50,
			Speed: 5,
		},
		Input: InputConfig{
			HoldInitial: defaultHoldInitialMS,
			HoldRepeat:  defaultHoldRepeatMS,
		},
	}
}

// DefaultExploreConfig returns the default explore configuration.
func DefaultExploreConfig() ExploreConfig {
	return ExploreConfig{
		Timelines: []TimelineConfig{
			{Name: "Present", Environment: "present"},
			{Name: "Past", Environment: "past"},
			{Name: "Future", Environment: "future"},
		},
		Environments: []EnvironmentConfig{
			{Name: "present", Props: []PropConfig{
				{Name: "house", X: 4, Z: -6, Glyph: "H"},
				{Name: "tree", X: -3, Z: -4, Glyph: "T"},
				{Name: "well", X: 0, Z: 5, Glyph: "o"},
			}},
			{Name: "past", Props: []PropConfig{
				{Name: "sapling", X: -3, Z: -4, Glyph: "t"},
				{Name: "camp", X: 2, Z: 2, Glyph: "^"},
			}},
			{Name: "future", Props: []PropConfig{
				{Name: "ruin", X: 4, Z: -6, Glyph: "#"},
				{Name: "tower", X: -6, Z: 3, Glyph: "I"},
			}},
		},
		Player: ExplorePlayer{
			Spawn:            []float64{0, 0, 0},
			WalkSpeed:        5,
			SprintMultiplier: 2.5,
			JumpImpulse:      8,
			Gravity:          20,
			MouseSensitivity: 1.5,
		},
		NPCs: []NPCConfig{
			{Name: "wanderer", Glyph: "@", Speed: 2, Path: []WaypointConfig{
				{X: 10, Z: 10}, {X: 15, Z: 10}, {X: 15, Z: 15}, {X: 10, Z: 15},
			}},
		},
		View: ExploreView{
			CellsPerMeter: 1,
		},
		Input: InputConfig{
			HoldInitial: defaultHoldInitialMS,
			HoldRepeat:  defaultHoldRepeatMS,
		},
	}
}

// DriftBindings returns the default drift key bindings.
func DriftBindings() input.Bindings {
	return input.Bindings{
		Keys: map[string]core.Action{
			"up":     core.ActionMoveForward,
			"w":      core.ActionMoveForward,
			"down":   core.ActionMoveBackward,
			"s":      core.ActionMoveBackward,
			"left":   core.ActionStrafeLeft,
			"a":      core.ActionStrafeLeft,
			"right":  core.ActionStrafeRight,
			"d":      core.ActionStrafeRight,
			"space":  core.ActionSwitchTimeline,
			"escape": core.ActionTogglePause,
			"q":      core.ActionQuit,
			"ctrl+c": core.ActionQuit,
		},
		Menu: input.DefaultMenu(),
	}
}

// ExploreBindings returns the default explore key bindings.
func ExploreBindings() input.Bindings {
	return input.Bindings{
		Keys: map[string]core.Action{
			"w":      core.ActionMoveForward,
			"up":     core.ActionMoveForward,
			"s":      core.ActionMoveBackward,
			"down":   core.ActionMoveBackward,
			"a":      core.ActionStrafeLeft,
			"left":   core.ActionStrafeLeft,
			"d":      core.ActionStrafeRight,
			"right":  core.ActionStrafeRight,
			"space":  core.ActionJump,
			"shift":  core.ActionSprint,
			"v":      core.ActionSwitchTimeline,
			"escape": core.ActionTogglePause,
			"q":      core.ActionQuit,
			"ctrl+c": core.ActionQuit,
		},
		Menu: input.DefaultMenu(),
	}
}
