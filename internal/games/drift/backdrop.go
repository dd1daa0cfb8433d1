package drift

import (
	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/timeline"
)

// Backdrop presents color timelines as the scene background. Only one
// background color is ever applied; hiding a timeline only clears its flag.
type Backdrop struct {
	color   core.RGB
	visible map[string]bool
}

// NewBackdrop creates a black backdrop with nothing visible.
func NewBackdrop() *Backdrop {
	return &Backdrop{visible: make(map[string]bool)}
}

// Show applies the timeline's color as the background.
func (b *Backdrop) Show(t timeline.Timeline) {
	b.color = t.RGB()
	b.visible[t.Name()] = true
}

// Hide marks the timeline as not visible.
func (b *Backdrop) Hide(t timeline.Timeline) {
	b.visible[t.Name()] = false
}

// Color returns the applied background color.
func (b *Backdrop) Color() core.RGB {
	return b.color
}

// Visible reports whether the named timeline is currently shown.
func (b *Backdrop) Visible(name string) bool {
	return b.visible[name]
}
