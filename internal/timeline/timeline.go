// Package timeline holds the set of mutually exclusive visual states a player
// can cycle through, and the switcher that activates one of them at a time.
package timeline

import (
	"github.com/vovakirdan/chronoshift/internal/core"
)

// Kind distinguishes the visual descriptor carried by a Timeline.
type Kind uint8

const (
	KindColor       Kind = iota // background color (drift)
	KindEnvironment             // named set of props (explore)
)

// Timeline is one entry of an ordered timeline set. It is an immutable value.
type Timeline struct {
	name        string
	kind        Kind
	color       core.RGB
	environment string
}

// Color creates a timeline whose visual is a background color.
func Color(name string, c core.RGB) Timeline {
	return Timeline{name: name, kind: KindColor, color: c}
}

// Environment creates a timeline whose visual is an environment handle.
func Environment(name, handle string) Timeline {
	return Timeline{name: name, kind: KindEnvironment, environment: handle}
}

// Name returns the display name.
func (t Timeline) Name() string { return t.name }

// Kind returns the descriptor kind.
func (t Timeline) Kind() Kind { return t.kind }

// RGB returns the background color. Zero for environment timelines.
func (t Timeline) RGB() core.RGB { return t.color }

// Handle returns the environment handle. Empty for color timelines.
func (t Timeline) Handle() string { return t.environment }

// String implements fmt.Stringer.
func (t Timeline) String() string {
	if t.kind == KindEnvironment {
		return t.name + "(" + t.environment + ")"
	}
	return t.name + "(" + t.color.Hex() + ")"
}
