package pin

import (
	"fmt"

	"github.com/arcadeworks/tui-pinball/internal/bcd"
)

// RunFrame advances the table by one rendered frame and returns the action,
// if any, the host must perform. Everything the table does happens inside
// this call; between calls the simulation is inert.
func (e *Engine) RunFrame() Action {
	if e.kbd == KbdPaused || e.kbd == KbdPausedConfirmQuit {
		return Action{Kind: ActionNone}
	}

	if e.quitting {
		e.fade -= 2
		if e.fade < 0 {
			e.fade = 0
		}
		e.seq.SetMasterVolume(e.fade)
		if e.fade == 0 {
			return Action{Kind: ActionNavigate, Table: e.layout.Table}
		}
		return Action{Kind: ActionNone}
	}

	e.frame++
	if e.inAttract {
		e.attractFrame()
	} else {
		e.playFrame()
	}
	e.scriptFrame()

	if e.flushHighScores {
		e.flushHighScores = false
		return Action{Kind: ActionSaveHighScores, Table: e.layout.Table, HighScores: e.highScores}
	}
	return Action{Kind: ActionNone}
}

func (e *Engine) attractFrame() {
	e.scroll.attractFrame()
	e.lights.attractFrame(e.frame)
	e.dm.BlinkFrame()
	e.tasksFrame()
	if e.startKey != 0 {
		e.startGame(e.startKey)
	}
}

func (e *Engine) playFrame() {
	_, by := e.ball.Pos()
	e.scroll.update(by)

	// Mid-game join restarts the game with the new player count.
	if e.startKey != 0 {
		n := e.startKey
		e.startKey = 0
		e.totalPlayers = n
		e.players = make([]PlayerState, n)
		e.scores[ScoreMain] = e.players[0].Score
		e.curPlayer = 1
		e.curBall = 1
		e.StartScript(BindGameStartPlayers)
		e.seq.PlaySfx(SfxGameStart)
		e.AddTask(TaskSetStartKeysActive, 60)
	}

	subSteps := 4
	if e.cheat.slowdown {
		subSteps = 2
	}
	for i := 0; i < subSteps; i++ {
		e.physicsSubStep()
	}

	if e.tiltCounter > 0 {
		e.tiltCounter--
	}

	e.checkTransitions()
	e.handleDrain()

	e.rules.Frame(e)
	e.dispatchRollTriggers()
	e.dispatchHitTriggers()

	if e.flipperPressed {
		e.flipperPressed = false
		e.rules.OnFlipperPressed(e)
	}
	if e.nudgePressed {
		e.nudgePressed = false
		e.nudge()
	}

	e.dm.BlinkFrame()
	e.tasksFrame()
	e.lights.BlinkFrame()
	e.modeFrame()

	if e.springReleased {
		e.springReleased = false
		if e.springPos != 0 {
			e.springRelease()
		}
	} else if e.springHeld && e.atSpring && e.springPos < springMax {
		e.springPos++
	}

	if !e.script.active && e.kbd == KbdMain && !e.matchActive {
		e.showScore()
	}
}

// checkTransitions detects the drain and the plunger-lane exit.
func (e *Engine) checkTransitions() {
	px, py := e.ball.Pos()
	if !e.ball.frozen && !e.drained && e.layout.DrainRect.Contains(px, py) {
		e.drained = true
	}
	if e.inPlunger && !e.atSpring && py < e.layout.SpringRect.Y {
		e.inPlunger = false
		if !e.opts.NoMusic {
			if j, ok := e.layout.Jingles[JingleMain]; ok {
				e.seq.SetMusic(j.Position)
				e.seq.ForceEndLoop()
			}
		}
	}
}

// handleDrain runs once per drain: the ball freezes on the spring, flippers
// drop, any mode window closes, and the rule variant gets exactly one
// OnDrain before the scheduled end-of-ball.
func (e *Engine) handleDrain() {
	if !e.drained || e.inDrain {
		return
	}
	e.ball.TeleportFreeze(LayerGround, e.layout.BallStartX, e.layout.BallStartY)
	e.setFlippersEnabled(false)
	e.inMode = false
	e.inModeHit = false
	e.inModeRamp = false

	if e.blockDrain || e.cheat.blockDrain {
		// Ball saver: hand the ball straight back to the plunger.
		e.drained = false
		e.inPlunger = true
		e.ball.Unfreeze()
		e.setFlippersEnabled(true)
		return
	}

	e.inDrain = true
	e.seq.PlaySfx(SfxDrain)
	e.StartScript(BindDrained)
	e.rules.OnDrain(e)
	e.AddTask(TaskEndOfBall, 180)
}

// nudge bumps the tilt counter. Warnings play above the warn level; past the
// limit the table tilts: flippers drop, scoring suspends, the warning lights
// come on, all until the ball drains.
func (e *Engine) nudge() {
	if e.cheat.noTilt || e.inPlunger || e.drained || e.tilted {
		return
	}
	e.tiltCounter += 60
	if e.tiltCounter > e.opts.TiltLimit {
		e.tilted = true
		e.setFlippersEnabled(false)
		e.playJingleBindSilence(JingleTilt)
		e.StartScript(BindTilt)
		e.lights.Tilt()
	} else if e.tiltCounter > e.opts.TiltWarn {
		e.playJingleBind(JingleWarnTilt)
	}
}

// startGame leaves attract mode and begins a fresh game for n players.
func (e *Engine) startGame(n int) {
	e.startKey = 0
	e.inAttract = false
	e.totalPlayers = n
	e.players = make([]PlayerState, n)
	e.curPlayer = 1
	e.curBall = 1
	e.totalBalls = e.opts.Balls
	e.bonusMultEarly = 1
	e.bonusMultLate = 1
	e.holdBonus = false
	for i := range e.scores {
		e.scores[i] = bcd.Score{}
	}
	e.lights.AllOff()
	e.matchActive = false
	e.pendingNames = nil
	e.tasks = nil

	e.StartScript(BindGameStart)
	e.seq.PlaySfx(SfxGameStart)
	if j, ok := e.layout.Jingles[JingleGameStart]; ok {
		ret := -1
		if p, ok := e.layout.Jingles[JinglePlunger]; ok {
			ret = p.Position
		}
		e.seq.PlayJingle(j, ret)
	}
	e.issueBall()
	e.AddTask(TaskSetStartKeysActive, 60)
}

// issueBall puts a fresh ball on the spring for the current player.
func (e *Engine) issueBall() {
	e.ball.TeleportFreeze(LayerGround, e.layout.BallStartX, e.layout.BallStartY)
	e.ball.Unfreeze()
	e.inPlunger = true
	e.drained = false
	e.inDrain = false
	e.tilted = false
	e.tiltCounter = 0
	e.springPos = 0
	e.ballScoredPoints = false
	e.blockDrain = false
	e.prevRollTrigger = NoTrigger
	e.setFlippersEnabled(true)
	e.StartScript(BindBallStart)
	if !e.opts.NoMusic {
		if j, ok := e.layout.Jingles[JinglePlunger]; ok {
			e.seq.SetMusic(j.Position)
		}
	}
}

// endOfBall closes out a drained ball: the bonus tally folds into the main
// score, extra balls replay the same player, then play rotates or the game
// ends.
func (e *Engine) endOfBall() {
	e.tallyBonus()
	p := &e.players[e.curPlayer-1]
	p.Score = e.scores[ScoreMain]

	e.inDrain = false
	e.tilted = false
	e.tiltCounter = 0

	if p.ExtraBalls > 0 {
		p.ExtraBalls--
		e.issueBall()
		return
	}

	next := e.curPlayer + 1
	if next > e.totalPlayers {
		next = 1
		e.curBall++
	}
	if e.curBall > e.totalBalls {
		e.gameOver()
		return
	}
	e.curPlayer = next
	e.scores[ScoreMain] = e.players[next-1].Score
	e.issueBall()
}

// gameOver starts the end-of-game sequence: the match spin-down, then name
// entry for qualifying scores, then back to attract mode.
func (e *Engine) gameOver() {
	e.setFlippersEnabled(false)
	e.StartScript(BindGameOver)
	e.playJingleBind(JingleMatch)
	e.matchActive = true
	e.matchIdx = 0
	e.matchShown = e.rng.Intn(10)
	e.AddTask(TaskMatchStep, matchTiming[0])
}

// matchStep advances the match animation by one digit, slowing per the
// timing table; the digit showing when the spin settles is the match digit.
func (e *Engine) matchStep() {
	if e.matchIdx < len(matchTiming) {
		e.matchShown = (e.matchShown + 1) % 10
		e.dm.Clear()
		e.dm.Puts(FontH13, 52, 1, fmt.Sprintf("MATCH %d0", e.matchShown))
		delay := matchTiming[e.matchIdx]
		e.matchIdx++
		e.AddTask(TaskMatchStep, delay)
		return
	}

	e.matchActive = false
	for i := range e.players {
		if int(e.players[i].Score.Digit(1)) == e.matchShown {
			e.seq.PlaySfx(SfxExtraBall)
			e.dm.SetBlink(true)
			break
		}
	}
	e.beginHighScorePhase()
}

// beginHighScorePhase queues name entry for every qualifying score, highest
// first, and otherwise schedules the return to attract mode.
func (e *Engine) beginHighScorePhase() {
	e.pendingNames = e.pendingNames[:0]
	for i := range e.players {
		if qualifiesHighScore(&e.highScores, e.players[i].Score) {
			e.pendingNames = append(e.pendingNames, i)
		}
	}
	// Highest first so each insertion lands below the previous one.
	for a := 1; a < len(e.pendingNames); a++ {
		for b := a; b > 0; b-- {
			pi, pj := e.pendingNames[b-1], e.pendingNames[b]
			if e.players[pj].Score.Cmp(e.players[pi].Score) > 0 {
				e.pendingNames[b-1], e.pendingNames[b] = pj, pi
			} else {
				break
			}
		}
	}
	if len(e.pendingNames) == 0 {
		e.AddTask(TaskReturnToAttract, 180)
		return
	}
	e.beginGetName()
}

func (e *Engine) beginGetName() {
	e.gettingNameFor = e.pendingNames[0]
	e.pendingNames = e.pendingNames[1:]
	e.nameBuf = e.nameBuf[:0]
	e.kbd = KbdGetName
	e.StartScript(BindHighScore)
	e.playJingleBind(JingleHighScore)
	e.showNamePrompt()
}

func (e *Engine) showNamePrompt() {
	e.dm.Clear()
	e.dm.Puts(FontH7, 4, 1, fmt.Sprintf("PLAYER %d HIGH SCORE", e.gettingNameFor+1))
	e.dm.Puts(FontH13, 52, 2, "NAME "+string(e.nameBuf))
}

// commitName inserts the typed initials and either prompts the next
// qualifier or winds down to attract mode.
func (e *Engine) commitName() {
	var entry HighScore
	copy(entry.Name[:], e.nameBuf)
	entry.Score = e.players[e.gettingNameFor].Score
	if insertHighScore(&e.highScores, entry) {
		e.flushHighScores = true
	}
	e.kbd = KbdMain
	if len(e.pendingNames) > 0 {
		e.beginGetName()
		return
	}
	e.AddTask(TaskReturnToAttract, 120)
}

// returnToAttract resets the table to its idle state. Final scores stay on
// the players for the scoreboard; the next start wipes them.
func (e *Engine) returnToAttract() {
	e.inAttract = true
	e.inPlunger = true
	e.kbd = KbdMain
	e.ball.TeleportFreeze(LayerGround, e.layout.BallStartX, e.layout.BallStartY)
	e.setFlippersEnabled(false)
	e.lights.AllOff()
	e.tilted = false
	e.tiltCounter = 0
	e.startKeysActive = true
	e.startKey = 0
	e.StartScript(BindInit)
	if j, ok := e.layout.Jingles[JingleAttract]; ok {
		e.seq.SetMusic(j.Position)
	}
}

// showScore renders the idle in-game DM: score and ball/player status.
func (e *Engine) showScore() {
	e.dm.Clear()
	e.dm.Puts(FontH13, 2, 1, e.scores[ScoreMain].String())
	e.dm.Puts(FontH7, 110, 5, fmt.Sprintf("P%d B%d", e.curPlayer, e.curBall))
	if active, _, _ := e.InMode(); active {
		e.dm.Puts(FontH7, 110, 0, fmt.Sprintf("MODE %02d", e.ModeSecondsLeft()))
	}
}
