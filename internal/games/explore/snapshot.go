package explore

// Snapshot captures the game state for tests and the saves browser.
type Snapshot struct {
	Tick          uint64
	X, Y, Z       float64
	Yaw, Pitch    float64
	Grounded      bool
	Timeline      string
	TimelineIndex int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := g.switcher.State()
	return Snapshot{
		Tick:          g.tick,
		X:             g.pos.X(),
		Y:             g.pos.Y(),
		Z:             g.pos.Z(),
		Yaw:           g.yaw,
		Pitch:         g.pitch,
		Grounded:      g.grounded,
		Timeline:      state.Current().Name(),
		TimelineIndex: state.Index(),
	}
}
