package input

import "github.com/vovakirdan/chronoshift/internal/core"

// Router accumulates raw events between ticks and emits one InputFrame per
// tick. Held keys produce continuous actions every tick; key-down edges
// produce discrete actions once, never repeated while the key stays down.
type Router struct {
	bindings Bindings
	mode     Mode
	held     map[string]bool
	edges    []core.Action
	lookDX   float64
	lookDY   float64
}

// NewRouter creates a router in ModeActive.
func NewRouter(b Bindings) *Router {
	return &Router{
		bindings: b,
		held:     make(map[string]bool),
	}
}

// Mode returns the current pause state.
func (r *Router) Mode() Mode {
	return r.mode
}

// Bindings returns the active key bindings.
func (r *Router) Bindings() Bindings {
	return r.bindings
}

// Reset releases all keys, drops pending edges and resumes play.
func (r *Router) Reset() {
	r.mode = ModeActive
	for k := range r.held {
		delete(r.held, k)
	}
	r.edges = r.edges[:0]
	r.lookDX, r.lookDY = 0, 0
}

// Feed processes raw events in arrival order. Mode changes take effect
// immediately, so later events in the same batch see the new mode.
func (r *Router) Feed(events ...Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventKeyDown:
			r.keyDown(ev.Key)
		case EventKeyUp:
			delete(r.held, ev.Key)
		case EventPointer:
			if r.mode == ModeActive {
				r.lookDX += ev.DX
				r.lookDY += ev.DY
			}
		}
	}
}

func (r *Router) keyDown(key string) {
	if r.held[key] {
		return // auto-repeat while held
	}
	r.held[key] = true

	a := r.bindings.Lookup(r.mode, key)
	if a == core.ActionNone || a.Continuous() || !r.mode.Accepts(a) {
		return
	}
	r.edges = append(r.edges, a)
	r.mode = r.mode.Next(a)
}

// Tick returns the commands for this tick and clears per-tick state.
func (r *Router) Tick() core.InputFrame {
	frame := core.NewInputFrame()

	if r.mode == ModeActive {
		for key := range r.held {
			if a := r.bindings.Keys[key]; a.Continuous() {
				frame.Set(a)
			}
		}
		frame.LookDX = r.lookDX
		frame.LookDY = r.lookDY
	}

	for _, a := range r.edges {
		frame.Set(a)
	}

	r.edges = r.edges[:0]
	r.lookDX, r.lookDY = 0, 0
	return frame
}
