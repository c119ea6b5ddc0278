package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadeworks/tui-pinball/internal/registry"
	"github.com/arcadeworks/tui-pinball/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")).
			MarginBottom(1)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			PaddingLeft(2)

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				PaddingLeft(0)

	menuHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// MenuModel is the table picker shown at the start of a session.
type MenuModel struct {
	tables   []registry.Info
	cursor   int
	store    *storage.Store
	quitting bool
	selected *registry.Info
}

// NewMenuModel creates the table picker.
func NewMenuModel(store *storage.Store) MenuModel {
	return MenuModel{
		tables: registry.List(),
		store:  store,
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles menu navigation.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tables)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.tables) > 0 {
			t := m.tables[m.cursor]
			m.selected = &t
		}
	}
	return m, nil
}

// View renders the picker.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(menuTitleStyle.Render("PINBALL"))
	sb.WriteString("\n\n")

	for i, t := range m.tables {
		line := fmt.Sprintf("Table %d  %s", int(t.Table)+1, t.Title)
		if best := m.bestScore(t.ID); best != "" {
			line += "  -  high score " + best
		}
		if i == m.cursor {
			sb.WriteString(menuSelectedStyle.Render("> " + line))
		} else {
			sb.WriteString(menuItemStyle.Render(line))
		}
		sb.WriteRune('\n')
	}

	sb.WriteString(menuHelpStyle.Render("up/down: choose  enter: play  q: quit"))
	return sb.String()
}

func (m MenuModel) bestScore(id string) string {
	if m.store == nil {
		return ""
	}
	hs, err := m.store.HighScores(id)
	if err != nil || hs[0].Score.IsZero() {
		return ""
	}
	return hs[0].Score.String()
}

// IsQuitting reports whether the user quit from the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Selected returns the chosen table, or nil while still picking.
func (m MenuModel) Selected() *registry.Info {
	return m.selected
}

// selectQuitMsg makes the standalone picker exit once a table is chosen.
type selectQuitMsg struct{}

// RunMenu shows the table picker standalone and returns the chosen table,
// or nil if the user quit.
func RunMenu(store *storage.Store) (*registry.Info, error) {
	p := tea.NewProgram(standaloneMenu{menu: NewMenuModel(store)}, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(standaloneMenu); ok {
		return m.menu.Selected(), nil
	}
	return nil, nil
}

type standaloneMenu struct {
	menu MenuModel
}

func (m standaloneMenu) Init() tea.Cmd { return m.menu.Init() }

func (m standaloneMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(selectQuitMsg); ok {
		return m, tea.Quit
	}
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	if m.menu.Selected() != nil {
		return m, func() tea.Msg { return selectQuitMsg{} }
	}
	return m, cmd
}

func (m standaloneMenu) View() string {
	if m.menu.Selected() != nil {
		return ""
	}
	return m.menu.View()
}
