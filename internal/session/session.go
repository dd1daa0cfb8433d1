// Package session drives one game: it turns routed input into timeline
// switches, pause toggles and save/load requests, steps the game while
// active and composes the HUD over the game's own rendering.
package session

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/input"
	"github.com/vovakirdan/chronoshift/internal/registry"
	"github.com/vovakirdan/chronoshift/internal/save"
)

// ErrNoBackend is returned by Save and Load when persistence is disabled.
var ErrNoBackend = errors.New("session: saving is not available")

// Options configures a Session.
type Options struct {
	// Backend stores save records. Nil disables save and load.
	Backend save.Backend

	// Slot overrides the save slot name. Defaults to the game ID.
	Slot string

	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// Session owns a game together with its input router and save adapter.
type Session struct {
	game    registry.Game
	runtime core.RuntimeConfig
	router  *input.Router
	saves   *save.Adapter
	logger  *log.Logger
	status  core.Status
	state   core.GameState
	tick    uint64
	quit    bool
}

// New resets game and wraps it in a session.
func New(game registry.Game, runtime core.RuntimeConfig, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(runtime)

	s := &Session{
		game:    game,
		runtime: runtime,
		router:  input.NewRouter(game.Bindings()),
		logger:  logger.With("game", game.ID()),
		state:   game.State(),
	}
	if opts.Backend != nil {
		s.saves = save.NewAdapter(opts.Backend, game.ID(), opts.Slot)
	}
	s.logger.Debug("session started", "timeline", s.state.Timeline)
	return s
}

// Game returns the wrapped game.
func (s *Session) Game() registry.Game {
	return s.game
}

// Router returns the input router.
func (s *Session) Router() *input.Router {
	return s.router
}

// Feed queues raw input events for the next tick.
func (s *Session) Feed(events ...input.Event) {
	s.router.Feed(events...)
}

// Paused reports whether the pause menu is open.
func (s *Session) Paused() bool {
	return s.router.Mode() == input.ModePaused
}

// Quit reports whether a quit command was received.
func (s *Session) Quit() bool {
	return s.quit
}

// Tick returns the number of ticks processed.
func (s *Session) Tick() uint64 {
	return s.tick
}

// State returns the game state after the last tick.
func (s *Session) State() core.GameState {
	return s.state
}

// Status returns the visible status message, or "".
func (s *Session) Status() string {
	return s.status.Text(s.tick)
}

// Notify shows a status message for core.StatusDuration.
func (s *Session) Notify(text string) {
	s.status.Show(text, s.tick, s.runtime.TickRate)
}

// Update processes one simulation tick. Commands run in the order their
// keys were pressed; the game itself only steps while not paused.
func (s *Session) Update() core.StepResult {
	s.tick++
	frame := s.router.Tick()

	for _, a := range frame.Edges {
		switch a {
		case core.ActionSwitchTimeline:
			t := s.game.Timeline().OnSwitchCommand()
			s.logger.Debug("timeline switched", "timeline", t.Name(), "index", s.game.Timeline().State().Index())
			s.Notify("Timeline: " + t.Name())
		case core.ActionTogglePause:
			s.logger.Debug("pause toggled", "mode", s.router.Mode())
		case core.ActionSave:
			s.runSave()
		case core.ActionLoad:
			s.runLoad()
		case core.ActionQuit:
			s.quit = true
		}
	}

	var result core.StepResult
	if s.Paused() {
		result = core.StepResult{State: s.game.State()}
	} else {
		result = s.game.Step(frame)
	}
	result.State.Paused = s.Paused()
	s.state = result.State
	return result
}

// Save writes the current timeline index and pose.
func (s *Session) Save() error {
	if s.saves == nil {
		return ErrNoBackend
	}
	_, err := s.saves.Save(s.game.Timeline().State(), s.game.Transform())
	return err
}

// Load reads the save slot and applies it. On any error nothing changes.
// After a successful load the restored timeline is shown and all others hidden.
func (s *Session) Load() error {
	if s.saves == nil {
		return ErrNoBackend
	}
	switcher := s.game.Timeline()
	rec, err := s.saves.Load(switcher.State().Len())
	if err != nil {
		return err
	}
	if err := save.Apply(rec, switcher.State(), s.game.Transform()); err != nil {
		return err
	}
	switcher.Sync()
	s.state = s.game.State()
	s.state.Paused = s.Paused()
	return nil
}

func (s *Session) runSave() {
	if err := s.Save(); err != nil {
		s.logger.Warn("save failed", "slot", s.slot(), "error", err)
		s.Notify(describe(err))
		return
	}
	s.logger.Info("game saved", "slot", s.slot(), "timeline", s.game.State().Timeline)
	s.Notify("Game saved")
}

func (s *Session) runLoad() {
	if err := s.Load(); err != nil {
		s.logger.Warn("load failed", "slot", s.slot(), "error", err)
		s.Notify(describe(err))
		return
	}
	s.logger.Info("game loaded", "slot", s.slot(), "timeline", s.game.State().Timeline)
	s.Notify("Game loaded")
}

func (s *Session) slot() string {
	if s.saves == nil {
		return ""
	}
	return s.saves.Slot()
}

func describe(err error) string {
	if errors.Is(err, ErrNoBackend) {
		return "Saving is not available"
	}
	return save.Describe(err)
}
