package core

import "time"

// StatusDuration is how long a transient status message stays on screen.
const StatusDuration = 2 * time.Second

// Status is a transient on-screen message that expires after StatusDuration.
// Expiry is counted in ticks so playback stays deterministic.
type Status struct {
	text    string
	expires uint64
}

// DurationTicks converts a wall-clock duration to ticks at the given rate.
func DurationTicks(d time.Duration, tickRate int) uint64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	return uint64(d) * uint64(tickRate) / uint64(time.Second)
}

// Show displays text starting at tick now.
func (s *Status) Show(text string, now uint64, tickRate int) {
	s.text = text
	s.expires = now + DurationTicks(StatusDuration, tickRate)
}

// Text returns the message if it is still visible at tick now.
func (s *Status) Text(now uint64) string {
	if s.text == "" || now >= s.expires {
		return ""
	}
	return s.text
}
