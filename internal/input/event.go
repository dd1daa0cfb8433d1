// Package input turns raw per-frame input samples into the game's command
// vocabulary. It knows nothing about terminals or windows; the platform
// layers translate their native events into Event values.
package input

// EventKind discriminates raw input samples.
type EventKind uint8

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointer
)

// Event is a raw input sample. Key names are lower-case and platform
// neutral: "w", "up", "space", "shift", "escape", "1", "ctrl+c".
type Event struct {
	Kind   EventKind
	Key    string
	DX, DY float64
}

// KeyDown creates a key-down edge.
func KeyDown(key string) Event {
	return Event{Kind: EventKeyDown, Key: key}
}

// KeyUp creates a key-up edge.
func KeyUp(key string) Event {
	return Event{Kind: EventKeyUp, Key: key}
}

// Pointer creates a pointer movement sample.
func Pointer(dx, dy float64) Event {
	return Event{Kind: EventPointer, DX: dx, DY: dy}
}
