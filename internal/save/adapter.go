package save

import (
	"fmt"

	"github.com/vovakirdan/chronoshift/internal/timeline"
)

// Backend stores encoded records by slot name.
type Backend interface {
	// Write replaces the record for slot. Failures wrap ErrIO.
	Write(slot string, data []byte) error

	// Read returns the latest record for slot, or an error wrapping ErrNotFound.
	Read(slot string) ([]byte, error)
}

// Adapter saves and loads one slot through a Backend.
type Adapter struct {
	backend Backend
	slot    string
	game    string
}

// NewAdapter creates an adapter for game stored under slot.
// An empty slot defaults to the game ID.
func NewAdapter(backend Backend, game, slot string) *Adapter {
	if slot == "" {
		slot = game
	}
	return &Adapter{backend: backend, slot: slot, game: game}
}

// Slot returns the storage slot name.
func (a *Adapter) Slot() string {
	return a.slot
}

// Save writes the current timeline index and player pose, overwriting any
// previous save in the slot.
func (a *Adapter) Save(state *timeline.State, t Transform) (Record, error) {
	rec := NewRecord(a.game, t.Pose(), state.Index())
	if err := rec.Validate(state.Len()); err != nil {
		// The live pose is bad, not the file on disk.
		return Record{}, fmt.Errorf("%w: refusing to write invalid record: %v", ErrIO, err)
	}

	data, err := Encode(rec)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := a.backend.Write(a.slot, data); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Load reads the slot and validates it against a game with timelineCount
// timelines. Nothing is applied; see Apply.
func (a *Adapter) Load(timelineCount int) (Record, error) {
	data, err := a.backend.Read(a.slot)
	if err != nil {
		return Record{}, err
	}

	rec, err := Decode(data)
	if err != nil {
		return Record{}, err
	}
	if rec.Game != a.game {
		return Record{}, fmt.Errorf("%w: record belongs to %q", ErrCorruptData, rec.Game)
	}
	if err := rec.Validate(timelineCount); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Apply restores a loaded record: timeline index first, then the pose.
// Every check runs before anything is mutated, so on error neither the
// state nor the transform changes. If t implements PoseChecker, a pose it
// rejects is reported as ErrCorruptData.
func Apply(rec Record, state *timeline.State, t Transform) error {
	if err := rec.Validate(state.Len()); err != nil {
		return err
	}

	current := t.Pose()
	if len(rec.Position) != len(current.Position) || len(rec.Heading) != len(current.Heading) {
		return fmt.Errorf("%w: pose shape %d/%d does not match game %d/%d", ErrCorruptData,
			len(rec.Position), len(rec.Heading), len(current.Position), len(current.Heading))
	}
	if c, ok := t.(PoseChecker); ok {
		if err := c.CheckPose(rec.Pose()); err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptData, err)
		}
	}

	if err := state.SetIndex(rec.TimelineIndex); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	t.SetPose(rec.Pose())
	return nil
}
