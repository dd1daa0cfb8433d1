package timeline

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTimelines is returned when constructing a State without timelines.
	ErrNoTimelines = errors.New("timeline: at least one timeline is required")

	// ErrOutOfRange is returned by SetIndex for an index outside [0, Len).
	ErrOutOfRange = errors.New("timeline: index out of range")
)

// State holds the ordered timelines and the index of the active one.
// The index is always a valid position in the timeline slice.
type State struct {
	timelines []Timeline
	index     int
}

// New creates a State starting at the first timeline.
func New(timelines ...Timeline) (*State, error) {
	if len(timelines) == 0 {
		return nil, ErrNoTimelines
	}
	return &State{
		timelines: append([]Timeline(nil), timelines...),
	}, nil
}

// Current returns the active timeline.
func (s *State) Current() Timeline {
	return s.timelines[s.index]
}

// Index returns the position of the active timeline.
func (s *State) Index() int {
	return s.index
}

// Len returns the number of timelines.
func (s *State) Len() int {
	return len(s.timelines)
}

// Timelines returns a copy of the ordered timeline set.
func (s *State) Timelines() []Timeline {
	return append([]Timeline(nil), s.timelines...)
}

// Advance rotates to the next timeline, wrapping to the first.
func (s *State) Advance() {
	s.index = (s.index + 1) % len(s.timelines)
}

// SetIndex activates timeline i. The state is left unchanged on error.
func (s *State) SetIndex(i int) error {
	if i < 0 || i >= len(s.timelines) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(s.timelines))
	}
	s.index = i
	return nil
}
