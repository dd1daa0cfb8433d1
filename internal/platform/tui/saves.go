package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chronoshift/internal/core"
	"github.com/vovakirdan/chronoshift/internal/registry"
	"github.com/vovakirdan/chronoshift/internal/storage"
)

// Saves browser layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show game list sidebar
	sidebarWidth       = 20 // Width of game list sidebar
	maxSaves           = 100
)

// SavesKeyMap defines the key bindings for the saves browser.
type SavesKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Clear    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SavesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Clear, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SavesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultSavesKeyMap returns default key bindings.
func DefaultSavesKeyMap() SavesKeyMap {
	return SavesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "clear slot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SavesModel is the Bubble Tea model for browsing save history.
type SavesModel struct {
	games       []registry.GameInfo
	gameCursor  int
	store       *storage.Store
	slotPrefix  string // "" locally, "user/" over SSH
	names       map[string][]string
	saves       []storage.SaveEntry
	table       table.Model
	help        help.Model
	keys        SavesKeyMap
	width       int
	height      int
	embedded    bool // back and quit are read by a parent model instead of quitting
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewSavesModel creates a new saves browser.
func NewSavesModel(store *storage.Store, slotPrefix string, width, height int) SavesModel {
	h := help.New()
	h.ShowAll = false

	m := SavesModel{
		games:       registry.List(),
		store:       store,
		slotPrefix:  slotPrefix,
		names:       make(map[string][]string),
		keys:        DefaultSavesKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadSaves()
	}

	return m
}

// Slot returns the slot of the selected game.
func (m SavesModel) Slot() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.slotPrefix + m.games[m.gameCursor].ID
}

// createTable creates a new table with appropriate columns.
func (m *SavesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Timeline", Width: 12},
		{Title: "Saved", Width: 14},
		{Title: "Save ID", Width: 10},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if tableWidth > 50 {
		columns[1].Width = 16
		columns[3].Width = min(tableWidth-40, 36)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSaves loads the history of the selected slot.
func (m *SavesModel) loadSaves() {
	m.saves = nil
	if m.store != nil {
		if saves, err := m.store.History(m.Slot(), maxSaves); err == nil {
			m.saves = saves
		}
	}
	m.updateTableRows()
}

// timelineName resolves a saved index to the game's timeline name.
func (m *SavesModel) timelineName(gameID string, index int) string {
	names, ok := m.names[gameID]
	if !ok {
		names = TimelineNames(gameID)
		m.names[gameID] = names
	}
	if index >= 0 && index < len(names) {
		return names[index]
	}
	return fmt.Sprintf("#%d", index)
}

// updateTableRows updates the table with current saves.
func (m *SavesModel) updateTableRows() {
	rows := make([]table.Row, len(m.saves))
	for i, s := range m.saves {
		game := s.Game
		if game == "" && len(m.games) > 0 {
			game = m.games[m.gameCursor].ID
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			m.timelineName(game, s.TimelineIndex),
			s.CreatedAt.Format("Jan 02 15:04"),
			s.SaveID,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the saves browser.
func (m SavesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the saves browser.
func (m SavesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.exit()

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.exit()

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadSaves()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.loadSaves()
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			if m.store != nil && len(m.games) > 0 {
				//nolint:errcheck // the refreshed table shows the result
				m.store.Clear(m.Slot())
				m.loadSaves()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m SavesModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// View renders the saves browser.
func (m SavesModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "SAVES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("SAVES - %s", m.games[m.gameCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the browser with a sidebar for game selection.
func (m SavesModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Games\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + g.Title))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the browser with the game name above the table.
func (m SavesModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.games) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.games[m.gameCursor].Title), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m SavesModel) renderTableContent() string {
	if m.store == nil {
		return m.emptyMessage("Save database is not available.")
	}
	if len(m.saves) == 0 {
		return m.emptyMessage("No saves yet.\nPause a game and press 1 to save.")
	}
	return m.table.View()
}

func (m SavesModel) emptyMessage(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4).
		Render(text)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m SavesModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m SavesModel) IsQuitting() bool {
	return m.quitting
}

// TimelineNames returns the configured timeline names of a game.
func TimelineNames(gameID string) []string {
	g, err := registry.Create(gameID)
	if err != nil {
		return nil
	}
	g.Reset(core.DefaultConfig())

	timelines := g.Timeline().State().Timelines()
	names := make([]string, len(timelines))
	for i, t := range timelines {
		names[i] = t.Name()
	}
	return names
}

// RunSaves runs the saves browser.
// Returns true if user wants to go back to menu, false if quitting.
func RunSaves(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewSavesModel(store, "", width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(SavesModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
