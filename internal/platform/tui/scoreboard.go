package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadeworks/tui-pinball/internal/pin"
	"github.com/arcadeworks/tui-pinball/internal/registry"
	"github.com/arcadeworks/tui-pinball/internal/storage"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	NextTable key.Binding
	PrevTable key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTable, k.PrevTable, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTable, k.PrevTable},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		NextTable: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next table"),
		),
		PrevTable: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev table"),
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

var scoreboardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("208"))

// ScoreboardModel is the Bubble Tea model for the high-score screen.
type ScoreboardModel struct {
	tables   []registry.Info
	cursor   int
	store    *storage.Store
	table    table.Model
	recent   []storage.GameRecord
	help     help.Model
	keys     ScoreboardKeyMap
	quitting bool
	back     bool
}

// NewScoreboardModel creates the scoreboard for all registered tables.
func NewScoreboardModel(store *storage.Store) ScoreboardModel {
	m := ScoreboardModel{
		tables: registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 6},
		{Title: "Score", Width: 14},
	}
	m.table = table.New(
		table.WithColumns(columns),
		table.WithHeight(pin.HighScoreCount+1),
	)
	m.loadScores()
	return m
}

func (m *ScoreboardModel) loadScores() {
	rows := make([]table.Row, 0, pin.HighScoreCount)
	m.recent = nil
	if m.store != nil && len(m.tables) > 0 {
		if games, err := m.store.RecentGames(m.tables[m.cursor].ID, 5); err == nil {
			m.recent = games
		}
		hs, err := m.store.HighScores(m.tables[m.cursor].ID)
		if err == nil {
			for i, entry := range hs {
				name := entry.NameString()
				if name == "" {
					name = "---"
				}
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", i+1),
					name,
					entry.Score.String(),
				})
			}
		}
	}
	m.table.SetRows(rows)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scoreboard navigation.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		m.back = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.NextTable):
		if len(m.tables) > 0 {
			m.cursor = (m.cursor + 1) % len(m.tables)
			m.loadScores()
		}
	case key.Matches(keyMsg, m.keys.PrevTable):
		if len(m.tables) > 0 {
			m.cursor = (m.cursor + len(m.tables) - 1) % len(m.tables)
			m.loadScores()
		}
	}
	return m, nil
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}
	title := "HIGH SCORES"
	if len(m.tables) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.tables[m.cursor].Title)
	}
	out := scoreboardTitleStyle.Render(title) + "\n\n" + m.table.View() + "\n"
	if len(m.recent) > 0 {
		out += "\nRecent games:\n"
		for _, g := range m.recent {
			out += fmt.Sprintf("  P%d  %-14s  %s\n",
				g.Player, g.Score, g.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
	return out + m.help.View(m.keys)
}

// RunScoreboard shows the scoreboard standalone until dismissed.
func RunScoreboard(store *storage.Store) error {
	p := tea.NewProgram(NewScoreboardModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
