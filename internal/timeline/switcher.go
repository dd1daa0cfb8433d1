package timeline

// Presenter shows or hides the visuals of a timeline.
// Implemented by the game's presentation layer.
type Presenter interface {
	Show(t Timeline)
	Hide(t Timeline)
}

// Switcher bridges the switch command to State and the Presenter.
// Exactly one timeline is shown after every call.
type Switcher struct {
	state     *State
	presenter Presenter
}

// NewSwitcher creates a switcher over state that notifies presenter.
func NewSwitcher(state *State, presenter Presenter) *Switcher {
	return &Switcher{state: state, presenter: presenter}
}

// State returns the underlying timeline state.
func (s *Switcher) State() *State {
	return s.state
}

// OnSwitchCommand advances one step and republishes visibility.
// Repeated calls are never coalesced.
func (s *Switcher) OnSwitchCommand() Timeline {
	s.state.Advance()
	s.Sync()
	return s.state.Current()
}

// Sync hides every other timeline and then shows the current one, without
// advancing. Used at startup and after the index is restored from a save.
// Show comes last so the current timeline stays visible even when another
// timeline resolves to the same visuals.
func (s *Switcher) Sync() {
	if s.presenter == nil {
		return
	}
	current := s.state.Index()
	for i, t := range s.state.timelines {
		if i != current {
			s.presenter.Hide(t)
		}
	}
	s.presenter.Show(s.state.timelines[current])
}
