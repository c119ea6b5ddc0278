package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadeworks/tui-pinball/internal/bcd"
	"github.com/arcadeworks/tui-pinball/internal/core"
	"github.com/arcadeworks/tui-pinball/internal/pin"
	"github.com/arcadeworks/tui-pinball/internal/registry"
	"github.com/arcadeworks/tui-pinball/internal/storage"
)

// GameModel is the Bubble Tea model for one running table.
type GameModel struct {
	eng    *pin.Engine
	def    registry.Definition
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig

	keyMapper *KeyMapper
	holdUntil map[core.EventKind]int // frame deadline for the synthetic release
	frame     int

	standalone bool // quit outright on navigate instead of flagging the session
	mono       bool
	gameSaved  bool // final scores already logged for the current game over
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a Bubble Tea model running the given table.
func NewGameModel(def registry.Definition, store *storage.Store, seq pin.Sequencer, cfg core.RuntimeConfig, opts pin.Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var highScores [pin.HighScoreCount]pin.HighScore
	if store != nil {
		if hs, err := store.HighScores(def.ID); err == nil {
			highScores = hs
		}
	}

	eng := pin.New(def.NewLayout(), def.NewRules(), opts, highScores, seq, cfg)

	return GameModel{
		eng:       eng,
		def:       def,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		holdUntil: make(map[core.EventKind]int),
		mono:      opts.Mono,
	}
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey translates terminal keys into simulation events. Held kinds get
// a press edge on first sight and a re-armed release deadline on every
// repeat; the release itself is synthesized in handleTick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// F-keys set the scroll chase speed, outside the simulation proper.
	switch msg.String() {
	case "f1":
		m.eng.SetScrollSpeed(3)
		return m, nil
	case "f2":
		m.eng.SetScrollSpeed(7)
		return m, nil
	case "f3":
		m.eng.SetScrollSpeed(11)
		return m, nil
	case "f4":
		m.eng.SetScrollSpeed(22)
		return m, nil
	}

	events, holds, hardQuit := m.keyMapper.MapKey(msg, m.eng.State())
	if hardQuit {
		m.quitting = true
		return m, tea.Quit
	}
	for _, ev := range events {
		m.eng.HandleEvent(ev)
	}
	for _, kind := range holds {
		if _, held := m.holdUntil[kind]; !held {
			m.eng.HandleEvent(core.Press(kind))
		}
		m.holdUntil[kind] = m.frame + holdFrames(kind)
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.frame++
	for kind, deadline := range m.holdUntil {
		if m.frame >= deadline {
			m.eng.HandleEvent(core.Release(kind))
			delete(m.holdUntil, kind)
		}
	}

	action := m.eng.RunFrame()

	// Log every player's final score once per game, when the match
	// spin-down begins.
	switch {
	case m.eng.State() == pin.StateMatch && !m.gameSaved:
		recordGameHistory(m.store, m.def.ID, m.eng.PlayerScores())
		m.gameSaved = true
	case m.eng.State() == pin.StateBallInPlay:
		m.gameSaved = false
	}

	switch action.Kind {
	case pin.ActionSaveHighScores:
		if m.store != nil {
			//nolint:errcheck // Best-effort save, the game continues regardless
			m.store.SaveHighScores(m.def.ID, action.HighScores)
		}
	case pin.ActionNavigate:
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// recordGameHistory logs each player's final score to the game history.
func recordGameHistory(store *storage.Store, tableID string, scores []bcd.Score) {
	if store == nil {
		return
	}
	for i, score := range scores {
		if score.IsZero() {
			continue
		}
		//nolint:errcheck // Best-effort history, the game continues regardless
		store.SaveGame(tableID, i+1, score)
	}
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	DrawSnapshot(m.screen, m.eng.Snapshot(), m.eng.Layout())
	return RenderScreen(m.screen, m.mono)
}

// IsQuitting reports whether the user quit the program outright.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the table asked to navigate back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one table standalone until the player quits.
func Run(def registry.Definition, store *storage.Store, seq pin.Sequencer, cfg core.RuntimeConfig, opts pin.Options) error {
	model := NewGameModel(def, store, seq, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
