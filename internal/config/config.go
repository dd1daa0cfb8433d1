// Package config provides YAML-based game configuration loading for the
// chronoshift games.
package config

import (
	"fmt"

	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/input"
	"github.com/vovakirdan/chronoshift/internal/timeline"
)

// TimelineConfig describes one timeline. Exactly one of Color and
// Environment is set.
type TimelineConfig struct {
	Name        string `yaml:"name"`
	Color       string `yaml:"color,omitempty"`       // "#rrggbb" (drift)
	Environment string `yaml:"environment,omitempty"` // environment handle (explore)
}

// InputConfig overrides key bindings and terminal key-hold timing.
type InputConfig struct {
	Bindings     map[string]string `yaml:"bindings,omitempty"`      // key -> action name
	MenuBindings map[string]string `yaml:"menu_bindings,omitempty"` // pause-menu key -> action name
	HoldInitial  int               `yaml:"hold_initial_ms"`         // first press hold window
	HoldRepeat   int               `yaml:"hold_repeat_ms"`          // refresh on key repeat
}

// DriftConfig contains all configuration for the 2D drift game.
type DriftConfig struct {
	Timelines []TimelineConfig `yaml:"timelines"`
	World     DriftWorld       `yaml:"world"`
	Player    DriftPlayer      `yaml:"player"`
	Input     InputConfig      `yaml:"input"`
}

// DriftWorld is the logical playfield size in world units.
type DriftWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DriftPlayer defines the player square.
type DriftPlayer struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // world units per tick
}

// ExploreConfig contains all configuration for the 3D explore game.
type ExploreConfig struct {
	Timelines    []TimelineConfig    `yaml:"timelines"`
	Environments []EnvironmentConfig `yaml:"environments"`
	Player       ExplorePlayer       `yaml:"player"`
	NPCs         []NPCConfig         `yaml:"npcs,omitempty"`
	View         ExploreView         `yaml:"view"`
	Input        InputConfig         `yaml:"input"`
}

// EnvironmentConfig is a named set of props shown and hidden as a unit.
type EnvironmentConfig struct {
	Name  string       `yaml:"name"`
	Props []PropConfig `yaml:"props"`
}

// PropConfig is a single renderable object placed on the ground plane.
type PropConfig struct {
	Name  string  `yaml:"name"`
	X     float64 `yaml:"x"`
	Z     float64 `yaml:"z"`
	Glyph string  `yaml:"glyph"`
}

// NPCConfig is a character that patrols a closed loop of waypoints.
// It is not part of any environment and stays visible on every timeline.
type NPCConfig struct {
	Name  string           `yaml:"name"`
	Glyph string           `yaml:"glyph"`
	Speed float64          `yaml:"speed"` // meters per second
	Path  []WaypointConfig `yaml:"path"`
}

// WaypointConfig is a point on the ground plane.
type WaypointConfig struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// ExplorePlayer defines first-person movement.
type ExplorePlayer struct {
	Spawn            []float64 `yaml:"spawn,flow"`
	WalkSpeed        float64   `yaml:"walk_speed"`        // meters per second
	SprintMultiplier float64   `yaml:"sprint_multiplier"` // applied while sprinting
	JumpImpulse      float64   `yaml:"jump_impulse"`      // initial upward velocity
	Gravity          float64   `yaml:"gravity"`           // meters per second squared
	MouseSensitivity float64   `yaml:"mouse_sensitivity"` // degrees per pointer unit
}

// ExploreView controls the top-down map projection.
type ExploreView struct {
	CellsPerMeter float64 `yaml:"cells_per_meter"`
}

// BuildTimelines converts the configured timelines into timeline values.
func BuildTimelines(list []TimelineConfig) ([]timeline.Timeline, error) {
	if len(list) == 0 {
		return nil, timeline.ErrNoTimelines
	}
	out := make([]timeline.Timeline, 0, len(list))
	for i, tc := range list {
		name := tc.Name
		if name == "" {
			name = fmt.Sprintf("Timeline %d", i+1)
		}
		switch {
		case tc.Color != "" && tc.Environment != "":
			return nil, fmt.Errorf("config: timeline %q sets both color and environment", name)
		case tc.Color != "":
			c, err := core.ParseRGB(tc.Color)
			if err != nil {
				return nil, fmt.Errorf("config: timeline %q: %w", name, err)
			}
			out = append(out, timeline.Color(name, c))
		case tc.Environment != "":
			out = append(out, timeline.Environment(name, tc.Environment))
		default:
			return nil, fmt.Errorf("config: timeline %q needs a color or environment", name)
		}
	}
	return out, nil
}

// Validate checks the drift config.
func (c DriftConfig) Validate() error {
	if _, err := BuildTimelines(c.Timelines); err != nil {
		return err
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: drift world must have positive size")
	}
	if c.Player.Size <= 0 || c.Player.Size > c.World.Width || c.Player.Size > c.World.Height {
		return fmt.Errorf("config: drift player size %v does not fit the world", c.Player.Size)
	}
	return nil
}

// Validate checks the explore config, including that every environment
// timeline refers to a defined environment.
func (c ExploreConfig) Validate() error {
	timelines, err := BuildTimelines(c.Timelines)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(c.Environments))
	for _, env := range c.Environments {
		known[env.Name] = true
	}
	owner := make(map[string]string, len(timelines))
	for _, t := range timelines {
		if t.Kind() != timeline.KindEnvironment {
			return fmt.Errorf("config: explore timeline %q must reference an environment", t.Name())
		}
		if !known[t.Handle()] {
			return fmt.Errorf("config: explore timeline %q references unknown environment %q", t.Name(), t.Handle())
		}
		// Hiding one timeline would hide the other's environment too.
		if prev, ok := owner[t.Handle()]; ok {
			return fmt.Errorf("config: explore timelines %q and %q share environment %q", prev, t.Name(), t.Handle())
		}
		owner[t.Handle()] = t.Name()
	}
	if len(c.Player.Spawn) != 3 {
		return fmt.Errorf("config: explore spawn needs 3 coordinates, got %d", len(c.Player.Spawn))
	}
	for i, npc := range c.NPCs {
		if len(npc.Path) == 0 {
			return fmt.Errorf("config: explore npc %d (%q) needs at least one waypoint", i, npc.Name)
		}
		if npc.Speed <= 0 {
			return fmt.Errorf("config: explore npc %d (%q) needs a positive speed", i, npc.Name)
		}
	}
	return nil
}

// ResolveBindings applies the input overrides on top of defaults.
func (c InputConfig) ResolveBindings(defaults input.Bindings) (input.Bindings, error) {
	return defaults.Override(c.Bindings, c.MenuBindings)
}
