package input

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/chronoshift/internal/core"
)

// Bindings maps key names to actions. Menu keys are consulted only while
// paused, which lets the same digit keys stay inert during play.
type Bindings struct {
	Keys map[string]core.Action
	Menu map[string]core.Action
}

// DefaultMenu returns the pause-menu bindings shared by all games.
func DefaultMenu() map[string]core.Action {
	return map[string]core.Action{
		"1":      core.ActionSave,
		"2":      core.ActionLoad,
		"3":      core.ActionQuit,
		"escape": core.ActionTogglePause,
	}
}

// Lookup resolves key in mode.
func (b Bindings) Lookup(mode Mode, key string) core.Action {
	if mode == ModePaused {
		if a, ok := b.Menu[key]; ok {
			return a
		}
	}
	if a, ok := b.Keys[key]; ok {
		return a
	}
	return core.ActionNone
}

// Clone returns a deep copy.
func (b Bindings) Clone() Bindings {
	c := Bindings{
		Keys: make(map[string]core.Action, len(b.Keys)),
		Menu: make(map[string]core.Action, len(b.Menu)),
	}
	for k, v := range b.Keys {
		c.Keys[k] = v
	}
	for k, v := range b.Menu {
		c.Menu[k] = v
	}
	return c
}

// Override replaces individual key bindings from a key -> action-name map.
// An action name of "none" unbinds the key.
func (b Bindings) Override(keys, menu map[string]string) (Bindings, error) {
	out := b.Clone()
	if err := apply(out.Keys, keys); err != nil {
		return b, err
	}
	if err := apply(out.Menu, menu); err != nil {
		return b, err
	}
	return out, nil
}

func apply(dst map[string]core.Action, src map[string]string) error {
	for key, name := range src {
		if name == "none" {
			delete(dst, key)
			continue
		}
		a, err := core.ParseAction(name)
		if err != nil {
			return fmt.Errorf("input: binding %q: %w", key, err)
		}
		dst[key] = a
	}
	return nil
}

// KeyBinding is one row of a bindings listing.
type KeyBinding struct {
	Key    string
	Action core.Action
	Menu   bool
}

// List returns all bindings sorted by action then key.
func (b Bindings) List() []KeyBinding {
	var out []KeyBinding
	for k, a := range b.Keys {
		out = append(out, KeyBinding{Key: k, Action: a})
	}
	for k, a := range b.Menu {
		out = append(out, KeyBinding{Key: k, Action: a, Menu: true})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Menu != out[j].Menu {
			return !out[i].Menu
		}
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Key < out[j].Key
	})
	return out
}
