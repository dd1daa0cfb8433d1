package core

import (
	"strings"
	"testing"
)

func TestNewScreenBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("String() = %q, expected three blank rows", got)
	}
	if s.Background() != RGBBlack {
		t.Errorf("Background() = %v, expected %v", s.Background(), RGBBlack)
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(5, 2)

	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 2}} {
		s.Set(p[0], p[1], 'X') // must not panic
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected space", p[0], p[1], got)
		}
	}

	s.DrawText(3, 1, "abc")
	if got := s.Row(1); got != "   ab" {
		t.Errorf("Row(1) = %q, expected %q", got, "   ab")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(2, 0, "HUD", ColorBrightYellow)
	s.Set(6, 0, 'x')

	tests := []struct {
		x     int
		rune  rune
		color Color
	}{
		{2, 'H', ColorBrightYellow},
		{4, 'D', ColorBrightYellow},
		{5, ' ', ColorDefault},
		{6, 'x', ColorDefault},
	}
	for _, tt := range tests {
		c := s.GetCell(tt.x, 0)
		if c.Rune != tt.rune || c.Color != tt.color {
			t.Errorf("GetCell(%d, 0) = {%q %d}, expected {%q %d}", tt.x, c.Rune, c.Color, tt.rune, tt.color)
		}
	}
}

func TestScreenClearKeepsBackground(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetBackground(RGBBlue)
	s.DrawTextColored(0, 0, "abcd", ColorRed)

	s.Clear()

	if s.Background() != RGBBlue {
		t.Errorf("Background() = %v after Clear, expected %v", s.Background(), RGBBlue)
	}
	if c := s.GetCell(1, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("GetCell(1, 0) = %+v after Clear, expected blank default cell", c)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetBackground(RGBRed)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(6, 3)
	if got := s.String(); got != "abcd  \nefgh  \n      " {
		t.Errorf("after grow String() = %q", got)
	}

	s.Resize(2, 1)
	if got := s.String(); got != "ab" {
		t.Errorf("after shrink String() = %q, expected %q", got, "ab")
	}
	if s.Background() != RGBRed {
		t.Errorf("Resize changed background to %v", s.Background())
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(0, 0, 6, 4), '.')
	s.DrawBox(NewRect(1, 0, 4, 3))

	expected := []string{
		".┌──┐.",
		".│..│.",
		".└──┘.",
		"......",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawHLine(-2, 0, 5, '=')

	if got := s.Row(0); got != "===     " {
		t.Errorf("Row(0) = %q, expected %q", got, "===     ")
	}
	if got := s.Row(3); got != strings.Repeat(" ", 8) {
		t.Errorf("Row(3) = %q, expected blank row", got)
	}
}
