package drift

// Snapshot captures the game state for tests and the saves browser.
type Snapshot struct {
	Tick          uint64
	X, Y          float64
	Heading       float64
	Timeline      string
	TimelineIndex int
	Background    string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := g.switcher.State()
	return Snapshot{
		Tick:          g.tick,
		X:             g.x,
		Y:             g.y,
		Heading:       g.heading,
		Timeline:      state.Current().Name(),
		TimelineIndex: state.Index(),
		Background:    g.backdrop.Color().Hex(),
	}
}
