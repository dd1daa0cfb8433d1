package explore

import (
	"sort"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/chronoshift/internal/config"
	"github.com/vovakirdan/chronoshift/internal/timeline"
)

// Prop is a single object standing on the ground plane.
type Prop struct {
	Name  string
	Pos   mgl64.Vec3
	Glyph rune
}

// Environment is a named group of props activated and deactivated together.
type Environment struct {
	Name    string
	Props   []Prop
	Visible bool
}

// Scene presents environment timelines by toggling whole environments.
type Scene struct {
	envs map[string]*Environment
}

// NewScene builds the scene from config. Every environment starts hidden.
func NewScene(list []config.EnvironmentConfig) *Scene {
	s := &Scene{envs: make(map[string]*Environment, len(list))}
	for _, ec := range list {
		env := &Environment{Name: ec.Name}
		for _, pc := range ec.Props {
			glyph, _ := utf8.DecodeRuneInString(pc.Glyph)
			if glyph == utf8.RuneError {
				glyph = '?'
			}
			env.Props = append(env.Props, Prop{
				Name:  pc.Name,
				Pos:   mgl64.Vec3{pc.X, 0, pc.Z},
				Glyph: glyph,
			})
		}
		s.envs[ec.Name] = env
	}
	return s
}

// Show activates the timeline's environment.
func (s *Scene) Show(t timeline.Timeline) {
	if env, ok := s.envs[t.Handle()]; ok {
		env.Visible = true
	}
}

// Hide deactivates the timeline's environment.
func (s *Scene) Hide(t timeline.Timeline) {
	if env, ok := s.envs[t.Handle()]; ok {
		env.Visible = false
	}
}

// Visible reports whether the named environment is active.
func (s *Scene) Visible(name string) bool {
	env, ok := s.envs[name]
	return ok && env.Visible
}

// Props returns the props of every visible environment, ordered by name.
func (s *Scene) Props() []Prop {
	names := make([]string, 0, len(s.envs))
	for name := range s.envs {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []Prop
	for _, name := range names {
		if env := s.envs[name]; env.Visible {
			out = append(out, env.Props...)
		}
	}
	return out
}
