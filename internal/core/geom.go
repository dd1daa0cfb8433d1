// Package core holds the types shared by the games and the frontends:
// actions and input frames, the cell screen, colors and runtime settings.
// It imports neither Bubble Tea nor Ebiten so game logic stays testable.
package core

import "cmp"

// Rect is an axis-aligned area of screen cells. X and Y are the top-left
// cell, W and H the size.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w*h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// Scale maps v on a world axis of length span onto one of cells columns.
func Scale(v, span float64, cells int) int {
	if span <= 0 || cells <= 0 {
		return 0
	}
	return Clamp(int(v/span*float64(cells)), 0, cells-1)
}
