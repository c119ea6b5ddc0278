package pin

import (
	"math/rand"

	"github.com/arcadeworks/tui-pinball/internal/bcd"
	"github.com/arcadeworks/tui-pinball/internal/core"
)

// Options are the gameplay options the core needs. The platform fills them
// from persistent configuration.
type Options struct {
	Balls      int // balls per game (3 or 5)
	Resolution Resolution
	NoMusic    bool
	Mono       bool
	TiltWarn   int // tilt counter level that plays the warning
	TiltLimit  int // tilt counter level that tilts the table
}

// DefaultOptions returns the classic defaults.
func DefaultOptions() Options {
	return Options{
		Balls:      3,
		Resolution: ResolutionNormal,
		TiltWarn:   60,
		TiltLimit:  120,
	}
}

// KbdState is the modal input state: which consumer the next key event
// belongs to.
type KbdState int

const (
	KbdMain KbdState = iota
	KbdConfirmQuit
	KbdPaused
	KbdPausedConfirmQuit
	KbdGetName
)

// GameState is the externally visible game-flow state, derived from the
// engine's flags for the platform and tests.
type GameState int

const (
	StateAttract GameState = iota
	StateBallInPlay
	StateDraining
	StateTilted
	StateMatch
	StateGetName
	StateConfirmQuit
	StatePaused
	StateQuitting
)

// PlayerState is the per-player record: committed score, banked extra
// balls, and a per-player flag word for variant mode progress.
type PlayerState struct {
	Score      bcd.Score
	ExtraBalls int
	Flags      uint32
}

// ActionKind discriminates the per-frame result handed to the host.
type ActionKind int

const (
	ActionNone ActionKind = iota
	// ActionNavigate asks the host to leave the table and return to the
	// front-end scoreboard for Table.
	ActionNavigate
	// ActionSaveHighScores asks the persistence collaborator to write the
	// updated table back.
	ActionSaveHighScores
)

// Action is the result of one RunFrame call.
type Action struct {
	Kind       ActionKind
	Table      TableID
	HighScores [HighScoreCount]HighScore
}

// matchTiming paces the end-of-game match spin-down: frames between digit
// steps, slowing as the spin settles.
var matchTiming = [36]int{
	24, 23, 21, 21, 18, 16, 15, 13, 11, 9, 8, 7, 7, 6, 6, 6, 5, 5,
	5, 5, 5, 4, 4, 4, 4, 4, 4, 4, 4, 4, 3, 3, 3, 3, 3, 3,
}

// Engine is one table instance: the complete simulation state. Everything
// advances through RunFrame, called synchronously once per rendered frame;
// no subsystem runs on its own.
type Engine struct {
	layout *Layout
	rules  Rules
	opts   Options
	seq    Sequencer
	rng    *rand.Rand

	scroll   scrollState
	lights   Lights
	dm       DotMatrix
	script   scriptState
	tasks    []Task
	ball     ballState
	cheat    cheatState
	flippers []flipperState

	springPos int

	// Game flow flags. Only the engine writes these; subsystems read.
	inAttract        bool
	inPlunger        bool
	atSpring         bool
	inDrain          bool
	drained          bool
	tilted           bool
	tiltCounter      int
	blockDrain       bool
	ballScoredPoints bool
	flushHighScores  bool

	// Mode window (shared by all rule variants).
	inMode            bool
	inModeHit         bool
	inModeRamp        bool
	pendingMode       bool
	pendingModeHit    bool
	pendingModeRamp   bool
	pendingModeSecs   int
	modeTimeoutFrames int
	modeTimeoutSecs   int

	// Input edges and modal state.
	kbd             KbdState
	flipperHeld     [2]bool
	flipperPressed  bool
	flippersEnabled bool
	nudgeHeld       bool
	nudgePressed    bool
	springHeld      bool
	springReleased  bool
	startKeysActive bool
	startKey        int

	quitting bool
	fade     int

	// Players and scoring.
	curPlayer      int
	totalPlayers   int
	curBall        int
	totalBalls     int
	bonusMultEarly uint8
	bonusMultLate  uint8
	holdBonus      bool
	players        []PlayerState
	scores         [numScoreCategories]bcd.Score
	highScores     [HighScoreCount]HighScore

	// Physics contact results for this frame's trigger dispatch.
	hitPosValid      bool
	hitPosX, hitPosY int
	hitBumper        TriggerID
	rollNow          TriggerID
	prevRollTrigger  TriggerID

	// End-of-game match animation and name entry.
	matchActive    bool
	matchIdx       int
	matchShown     int
	nameBuf        []byte
	pendingNames   []int
	gettingNameFor int

	frame int
}

// New builds a table engine from an already-parsed layout, the rule variant
// selected by the table identity, gameplay options, the persisted high-score
// table, and the audio collaborator. The layout is validated; malformed
// layouts panic.
func New(layout *Layout, rules Rules, opts Options, highScores [HighScoreCount]HighScore, seq Sequencer, cfg core.RuntimeConfig) *Engine {
	layout.Validate()
	if rules == nil {
		panic("pin: table constructed without a rule variant")
	}
	if seq == nil {
		panic("pin: table constructed without a sequencer")
	}

	flippers := make([]flipperState, len(layout.Flippers))
	for i, def := range layout.Flippers {
		flippers[i] = newFlipper(def)
	}

	e := &Engine{
		layout:   layout,
		rules:    rules,
		opts:     opts,
		seq:      seq,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		scroll:   newScroll(opts.Resolution),
		lights:   newLights(layout.Lights),
		dm:       newDotMatrix(),
		ball:     newBall(),
		flippers: flippers,

		highScores: highScores,

		inAttract:       true,
		inPlunger:       true,
		startKeysActive: true,
		fade:            0x100,

		curPlayer:      1,
		totalPlayers:   1,
		curBall:        1,
		totalBalls:     opts.Balls,
		bonusMultEarly: 1,
		bonusMultLate:  1,

		hitBumper:       NoTrigger,
		rollNow:         NoTrigger,
		prevRollTrigger: NoTrigger,
	}
	e.ball.TeleportFreeze(LayerGround, layout.BallStartX, layout.BallStartY)
	e.StartScript(BindInit)
	if j, ok := layout.Jingles[JingleAttract]; ok {
		seq.SetMusic(j.Position)
	}
	seq.SetNoMusic(opts.NoMusic)
	return e
}

// HandleEvent consumes one semantic input event. Flipper, nudge, and plunger
// events carry press/release edges; everything else acts on press only,
// routed by the modal keyboard state.
func (e *Engine) HandleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventFlipperLeft, core.EventFlipperRight:
		e.handleFlipperEvent(ev)
		return
	case core.EventNudge:
		if ev.Pressed && !e.nudgeHeld {
			e.nudgePressed = true
		}
		e.nudgeHeld = ev.Pressed
		return
	case core.EventPlunger:
		e.springHeld = ev.Pressed
		if !ev.Pressed {
			e.springReleased = true
		}
		return
	}

	if !ev.Pressed {
		return
	}

	switch e.kbd {
	case KbdMain:
		e.handleMainKey(ev)
	case KbdConfirmQuit:
		switch ev.Kind {
		case core.EventConfirm:
			e.quitting = true
			e.kbd = KbdMain
		case core.EventDeny, core.EventQuit:
			e.kbd = KbdMain
		}
	case KbdPaused:
		if ev.Kind == core.EventQuit {
			e.dm.Clear()
			e.dm.Puts(FontH7, 0, 4, "REALLY QUIT (Y OR N)")
			e.kbd = KbdPausedConfirmQuit
		} else {
			e.unpause()
		}
	case KbdPausedConfirmQuit:
		if ev.Kind == core.EventConfirm {
			e.dm.Restore()
			e.quitting = true
			e.kbd = KbdMain
			e.seq.Resume()
		} else {
			e.unpause()
		}
	case KbdGetName:
		switch ev.Kind {
		case core.EventChar:
			if len(e.nameBuf) < 3 {
				e.nameBuf = append(e.nameBuf, ev.Char)
				e.showNamePrompt()
			}
			if len(e.nameBuf) == 3 {
				e.commitName()
			}
		case core.EventConfirm:
			e.commitName()
		}
	}
}

func (e *Engine) handleFlipperEvent(ev core.Event) {
	side := SideLeft
	if ev.Kind == core.EventFlipperRight {
		side = SideRight
	}
	if ev.Pressed && e.flippersEnabled && !e.flipperHeld[side] {
		e.flipperPressed = true
		e.seq.PlaySfx(SfxFlipper)
	}
	e.flipperHeld[side] = ev.Pressed
	for i := range e.flippers {
		if e.flippers[i].def.Side != side {
			continue
		}
		if ev.Pressed {
			if e.flippersEnabled {
				e.flippers[i].press()
			}
		} else {
			e.flippers[i].release()
		}
	}
}

func (e *Engine) handleMainKey(ev core.Event) {
	if ev.Kind == core.EventStart && e.startKeysActive && (e.inAttract || e.atSpring) {
		if ev.Players >= 1 && ev.Players <= 8 {
			e.startKey = ev.Players
			e.startKeysActive = false
		}
		return
	}

	if e.inAttract {
		switch ev.Kind {
		case core.EventChar:
			e.handleCheat(ev.Char)
		case core.EventQuit:
			e.kbd = KbdConfirmQuit
			e.StartScript(BindConfirmQuit)
		}
		return
	}

	if e.inDrain {
		return
	}
	switch ev.Kind {
	case core.EventQuit:
		if e.atSpring {
			e.abortGame()
		}
	case core.EventMusic:
		e.toggleMusic()
	case core.EventPause:
		e.pause()
	}
}

// pause freezes the simulation, overlays the DM, and pauses audio.
func (e *Engine) pause() {
	e.dm.Save()
	e.dm.Clear()
	e.dm.SetState(true)
	e.dm.Puts(FontH13, 36, 1, "GAME PAUSED")
	e.kbd = KbdPaused
	e.seq.Pause()
}

func (e *Engine) unpause() {
	e.dm.Restore()
	e.kbd = KbdMain
	e.seq.Resume()
}

// toggleMusic flips the music option, switching between the silence jingle
// and whichever music matches the plunger state.
func (e *Engine) toggleMusic() {
	if e.opts.NoMusic {
		e.opts.NoMusic = false
		bind := JingleMain
		if e.inPlunger {
			bind = JinglePlunger
		}
		if j, ok := e.layout.Jingles[bind]; ok {
			e.seq.SetMusic(j.Position)
			e.seq.ForceEndLoop()
		}
	} else {
		e.opts.NoMusic = true
		e.playJingleBindForce(JingleSilence)
	}
	e.seq.SetNoMusic(e.opts.NoMusic)
}

// abortGame quits through the fade-out terminal state so audio and visuals
// wind down before navigation.
func (e *Engine) abortGame() {
	e.quitting = true
}

func (e *Engine) setFlippersEnabled(on bool) {
	e.flippersEnabled = on
	if !on {
		for i := range e.flippers {
			e.flippers[i].release()
		}
	}
}

// SetBlockDrain lets a rule variant arm a ball saver: while set, the drain
// handler does not run and the ball is returned to the plunger.
func (e *Engine) SetBlockDrain(on bool) {
	e.blockDrain = on
}

// AwardExtraBall banks an extra ball for the current player.
func (e *Engine) AwardExtraBall() {
	if len(e.players) == 0 {
		return
	}
	e.players[e.curPlayer-1].ExtraBalls++
	e.seq.PlaySfx(SfxExtraBall)
}

// PlayerFlag reads one bit of the current player's variant flag word.
func (e *Engine) PlayerFlag(bit uint) bool {
	if len(e.players) == 0 {
		return false
	}
	return e.players[e.curPlayer-1].Flags&(1<<bit) != 0
}

// SetPlayerFlag writes one bit of the current player's variant flag word.
func (e *Engine) SetPlayerFlag(bit uint, on bool) {
	if len(e.players) == 0 {
		return
	}
	p := &e.players[e.curPlayer-1]
	if on {
		p.Flags |= 1 << bit
	} else {
		p.Flags &^= 1 << bit
	}
}
