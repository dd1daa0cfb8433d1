package core

import (
	"testing"
	"time"
)

func TestDurationTicks(t *testing.T) {
	tests := []struct {
		d        time.Duration
		rate     int
		expected uint64
	}{
		{2 * time.Second, 60, 120},
		{2 * time.Second, 30, 60},
		{time.Second, 0, 60},
		{500 * time.Millisecond, 60, 30},
	}
	for _, tc := range tests {
		if got := DurationTicks(tc.d, tc.rate); got != tc.expected {
			t.Errorf("DurationTicks(%v, %d) = %d, expected %d", tc.d, tc.rate, got, tc.expected)
		}
	}
}

func TestStatusExpires(t *testing.T) {
	var s Status
	if s.Text(0) != "" {
		t.Error("zero Status should show nothing")
	}

	s.Show("Game saved", 10, 60)
	if got := s.Text(10); got != "Game saved" {
		t.Errorf("Text(10) = %q, expected %q", got, "Game saved")
	}
	if got := s.Text(129); got != "Game saved" {
		t.Errorf("Text(129) = %q, expected message still visible", got)
	}
	if got := s.Text(130); got != "" {
		t.Errorf("Text(130) = %q, expected message expired", got)
	}

	s.Show("Timeline: Red", 200, 60)
	s.Show("Game loaded", 250, 60)
	if got := s.Text(300); got != "Game loaded" {
		t.Errorf("Text(300) = %q, expected the newer message", got)
	}
}
