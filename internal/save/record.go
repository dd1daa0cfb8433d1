// Package save persists the player's pose and active timeline.
//
// A Record is encoded as YAML with an explicit format version. Decoding is
// strict: unknown fields, a different version, or a record that does not fit
// the live game are reported as ErrCorruptData and never applied.
package save

import (
	"bytes"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// FormatVersion is the only record version this build reads and writes.
const FormatVersion = 1

// Pose is the player transform exchanged through the Transform contract.
// Position has 2 (drift) or 3 (explore) elements; Heading has 1 scalar
// angle or 3 Euler angles (yaw, pitch, roll), all in degrees.
type Pose struct {
	Position []float64
	Heading  []float64
}

// Transform is the accessor contract for the game-owned player transform.
type Transform interface {
	Pose() Pose
	SetPose(p Pose)
}

// PoseChecker is implemented by transforms that accept only part of the
// pose space, such as a bounded world. Apply rejects a pose that fails
// CheckPose as corrupt data.
type PoseChecker interface {
	CheckPose(p Pose) error
}

// Record is the persisted snapshot.
type Record struct {
	Version       int       `yaml:"version"`
	Game          string    `yaml:"game"`
	Position      []float64 `yaml:"position,flow"`
	Heading       []float64 `yaml:"heading,flow"`
	TimelineIndex int       `yaml:"timeline_index"`
}

// NewRecord builds a current-version record.
func NewRecord(game string, pose Pose, timelineIndex int) Record {
	return Record{
		Version:       FormatVersion,
		Game:          game,
		Position:      append([]float64(nil), pose.Position...),
		Heading:       append([]float64(nil), pose.Heading...),
		TimelineIndex: timelineIndex,
	}
}

// Pose returns the record's transform fields as a Pose.
func (r Record) Pose() Pose {
	return Pose{
		Position: append([]float64(nil), r.Position...),
		Heading:  append([]float64(nil), r.Heading...),
	}
}

// Encode serializes the record.
func Encode(r Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("save: cannot encode record: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("save: cannot encode record: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses and structurally validates a record. It does not check the
// timeline index against a live game; see Record.Validate.
func Decode(data []byte) (Record, error) {
	var r Record
	if len(bytes.TrimSpace(data)) == 0 {
		return r, fmt.Errorf("%w: empty file", ErrCorruptData)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}

	if r.Version != FormatVersion {
		return Record{}, fmt.Errorf("%w: %w: got %d, want %d",
			ErrCorruptData, ErrVersionMismatch, r.Version, FormatVersion)
	}
	if err := r.checkShape(); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (r Record) checkShape() error {
	if n := len(r.Position); n != 2 && n != 3 {
		return fmt.Errorf("%w: position has %d components", ErrCorruptData, n)
	}
	if n := len(r.Heading); n != 1 && n != 3 {
		return fmt.Errorf("%w: heading has %d components", ErrCorruptData, n)
	}
	for _, v := range append(append([]float64(nil), r.Position...), r.Heading...) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite component", ErrCorruptData)
		}
	}
	if r.TimelineIndex < 0 {
		return fmt.Errorf("%w: negative timeline index %d", ErrCorruptData, r.TimelineIndex)
	}
	return nil
}

// Validate checks the record against a live game with timelineCount timelines.
func (r Record) Validate(timelineCount int) error {
	if err := r.checkShape(); err != nil {
		return err
	}
	if r.TimelineIndex >= timelineCount {
		return fmt.Errorf("%w: timeline index %d out of range [0, %d)",
			ErrCorruptData, r.TimelineIndex, timelineCount)
	}
	return nil
}
