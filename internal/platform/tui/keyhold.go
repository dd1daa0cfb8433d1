package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/input"
)

// Default hold windows used when a game does not provide its own.
const (
	DefaultHoldInitial = 300 * time.Millisecond
	DefaultHoldRepeat  = 120 * time.Millisecond
)

// KeyHold synthesizes key-up events for terminals, which only report key
// presses. A held key is kept down until no repeat arrives within its hold
// window. The first window is longer to cover the terminal's repeat delay.
//
// Only keys bound to continuous actions are held; every other key is
// reported as an immediate press and release so each keystroke is one edge.
type KeyHold struct {
	initial uint64
	repeat  uint64
	holds   func(key string) bool
	expires map[string]uint64
}

// NewKeyHold creates a tracker. holds reports whether a key should be held.
func NewKeyHold(initial, repeat time.Duration, tickRate int, holds func(key string) bool) *KeyHold {
	if initial <= 0 {
		initial = DefaultHoldInitial
	}
	if repeat <= 0 {
		repeat = DefaultHoldRepeat
	}
	return &KeyHold{
		initial: max(1, core.DurationTicks(initial, tickRate)),
		repeat:  max(1, core.DurationTicks(repeat, tickRate)),
		holds:   holds,
		expires: make(map[string]uint64),
	}
}

// Press records a key press at tick now and returns the events to feed.
func (h *KeyHold) Press(key string, now uint64) []input.Event {
	if h.holds == nil || !h.holds(key) {
		return []input.Event{input.KeyDown(key), input.KeyUp(key)}
	}

	if exp, ok := h.expires[key]; ok {
		if next := now + h.repeat; next > exp {
			h.expires[key] = next
		}
		return nil
	}
	h.expires[key] = now + h.initial
	return []input.Event{input.KeyDown(key)}
}

// Expire releases every key whose hold window ended at or before now.
func (h *KeyHold) Expire(now uint64) []input.Event {
	var keys []string
	for key, exp := range h.expires {
		if exp <= now {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	events := make([]input.Event, 0, len(keys))
	for _, key := range keys {
		delete(h.expires, key)
		events = append(events, input.KeyUp(key))
	}
	return events
}

// ReleaseAll releases every held key.
func (h *KeyHold) ReleaseAll() []input.Event {
	return h.Expire(^uint64(0))
}

// Held reports whether key is currently held.
func (h *KeyHold) Held(key string) bool {
	_, ok := h.expires[key]
	return ok
}
