package pin

import (
	"github.com/arcadeworks/tui-pinball/internal/bcd"
	"github.com/arcadeworks/tui-pinball/internal/core"
)

// FlipperSnapshot is one flipper's render state.
type FlipperSnapshot struct {
	Side    FlipperSide
	Rect    core.Rect
	Quantum int
	Quanta  int
}

// Snapshot is the complete per-frame render state. The platform layer paints
// exclusively from this; it never reaches into the engine.
type Snapshot struct {
	Table     TableID
	TableName string

	BallX, BallY int
	BallLayer    Layer
	BallVisible  bool

	Flippers []FlipperSnapshot
	Lights   []bool
	LightPos []LightDef

	DMOn     bool
	DMPixels [DMHeight][DMWidth]bool

	ScrollPos  int
	ViewHeight int

	SpringPos int
	SpringMax int
	Fade      int

	State       GameState
	Score       bcd.Score
	Player      int
	Players     int
	Ball        int
	Balls       int
	Tilted      bool
	ModeSeconds int
}

// Snapshot captures the current render state.
func (e *Engine) Snapshot() Snapshot {
	bx, by := e.ball.Pos()
	s := Snapshot{
		Table:     e.layout.Table,
		TableName: e.layout.Name,

		BallX:       bx,
		BallY:       by,
		BallLayer:   e.ball.layer,
		BallVisible: !e.inAttract,

		Lights:   e.lights.Snapshot(),
		LightPos: e.layout.Lights,

		DMOn:     e.dm.State(),
		DMPixels: e.dm.Pixels(),

		ScrollPos:  e.scroll.pos,
		ViewHeight: e.scroll.viewH,

		SpringPos: e.springPos,
		SpringMax: springMax,
		Fade:      e.fade,

		State:       e.State(),
		Score:       e.scores[ScoreMain],
		Player:      e.curPlayer,
		Players:     e.totalPlayers,
		Ball:        e.curBall,
		Balls:       e.totalBalls,
		Tilted:      e.tilted,
		ModeSeconds: e.ModeSecondsLeft(),
	}
	s.Flippers = make([]FlipperSnapshot, len(e.flippers))
	for i := range e.flippers {
		f := &e.flippers[i]
		s.Flippers[i] = FlipperSnapshot{
			Side:    f.def.Side,
			Rect:    f.def.Rect,
			Quantum: f.quantum,
			Quanta:  f.def.Quanta,
		}
	}
	return s
}

// State derives the externally visible game-flow state from the engine flags.
func (e *Engine) State() GameState {
	switch {
	case e.quitting:
		return StateQuitting
	case e.kbd == KbdPaused || e.kbd == KbdPausedConfirmQuit:
		return StatePaused
	case e.kbd == KbdGetName:
		return StateGetName
	case e.kbd == KbdConfirmQuit:
		return StateConfirmQuit
	case e.inAttract:
		return StateAttract
	case e.matchActive:
		return StateMatch
	case e.inDrain:
		return StateDraining
	case e.tilted:
		return StateTilted
	default:
		return StateBallInPlay
	}
}

// InAttract reports whether the table idles in attract mode.
func (e *Engine) InAttract() bool { return e.inAttract }

// InPlunger reports whether the ball is still in the plunger lane.
func (e *Engine) InPlunger() bool { return e.inPlunger }

// Tilted reports whether the table is tilted.
func (e *Engine) Tilted() bool { return e.tilted }

// FlippersEnabled reports whether flipper presses currently act.
func (e *Engine) FlippersEnabled() bool { return e.flippersEnabled }

// CurrentPlayer returns the 1-based player up.
func (e *Engine) CurrentPlayer() int { return e.curPlayer }

// TotalPlayers returns the player count of the running game.
func (e *Engine) TotalPlayers() int { return e.totalPlayers }

// CurrentBall returns the 1-based ball number.
func (e *Engine) CurrentBall() int { return e.curBall }

// HighScores returns the current high-score table.
func (e *Engine) HighScores() [HighScoreCount]HighScore { return e.highScores }

// PlayerScores returns each player's banked score in player order. Final
// once the game is over; mid-game the player up lags by the live frame.
func (e *Engine) PlayerScores() []bcd.Score {
	out := make([]bcd.Score, len(e.players))
	for i := range e.players {
		out[i] = e.players[i].Score
	}
	return out
}

// BallScoredPoints reports whether the current ball has scored any main
// points, used by variants that treat a pointless ball specially.
func (e *Engine) BallScoredPoints() bool { return e.ballScoredPoints }

// Layout exposes the static table description to the renderer.
func (e *Engine) Layout() *Layout { return e.layout }

// DM exposes the dot-matrix for direct drawing by rule variants.
func (e *Engine) DM() *DotMatrix { return &e.dm }

// PlayfieldLights exposes the light bank for direct control by rule variants.
func (e *Engine) PlayfieldLights() *Lights { return &e.lights }

// Rand returns a deterministic pseudo-random value in [0, n), drawn from the
// seeded table stream so replays stay exact.
func (e *Engine) Rand(n int) int { return e.rng.Intn(n) }
