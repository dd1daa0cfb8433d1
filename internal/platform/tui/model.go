package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chronoshift/internal/config"
	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/input"
	"github.com/vovakirdan/chronoshift/internal/registry"
	"github.com/vovakirdan/chronoshift/internal/save"
	"github.com/vovakirdan/chronoshift/internal/session"
)

// PointerScale converts one terminal cell of mouse motion into pointer units.
const PointerScale = 8.0

// holdWindows is implemented by games that configure terminal key holding.
type holdWindows interface {
	HoldWindows() (initial, repeat time.Duration)
}

// Options configures a game model.
type Options struct {
	Backend save.Backend // nil disables save and load
	Slot    string       // save slot, defaults to the game ID
	Logger  *log.Logger

	// MenuOnQuit returns to the caller's menu instead of quitting the program.
	MenuOnQuit bool
}

// Model is the Bubble Tea model for running one game session.
type Model struct {
	session    *session.Session
	screen     *core.Screen
	hold       *KeyHold
	config     core.RuntimeConfig
	menuOnQuit bool

	mouseX, mouseY int
	mouseSeen      bool

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	s := session.New(game, cfg, session.Options{
		Backend: opts.Backend,
		Slot:    opts.Slot,
		Logger:  opts.Logger,
	})

	var initial, repeat time.Duration
	if hw, ok := game.(holdWindows); ok {
		initial, repeat = hw.HoldWindows()
	}
	bindings := game.Bindings()
	hold := NewKeyHold(initial, repeat, cfg.TickRate, func(key string) bool {
		return bindings.Keys[key].Continuous()
	})

	return Model{
		session:    s,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		hold:       hold,
		config:     cfg,
		menuOnQuit: opts.MenuOnQuit,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// Resizing only changes the viewport; the world keeps its state.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey feeds key presses through the hold tracker into the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	now := m.session.Tick()
	for _, key := range KeyNames(msg) {
		m.session.Feed(m.hold.Press(key, now)...)
	}
	return m, nil
}

// handleMouse turns pointer motion into look deltas.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	if m.mouseSeen {
		dx := float64(msg.X-m.mouseX) * PointerScale
		dy := float64(msg.Y-m.mouseY) * PointerScale
		if dx != 0 || dy != 0 {
			m.session.Feed(input.Pointer(dx, dy))
		}
	}
	m.mouseX, m.mouseY = msg.X, msg.Y
	m.mouseSeen = true
	return m, nil
}

// handleTick releases expired keys and advances the session.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Feed(m.hold.Expire(m.session.Tick())...)
	m.session.Update()

	if m.session.Quit() {
		m.session.Feed(m.hold.ReleaseAll()...)
		if m.menuOnQuit {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, config.Dir, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
	m.session.Notify("Screenshot saved")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Session returns the running session.
func (m Model) Session() *session.Session {
	return m.session
}

// IsQuitting returns true if the program should exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player quit to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer look without holding a button
	)

	_, err := p.Run()
	return err
}
