package gameshow

import (
	"github.com/arcadeworks/tui-pinball/internal/pin"
	"github.com/arcadeworks/tui-pinball/internal/registry"
)

// Scoring values.
const (
	laneScore      = 4000
	bumperScore    = 350
	prizeScore     = 9000
	prizeBankScore = 150000
	wheelScore     = 25000
	quizModeSecs   = 15
	jackpotFeed    = 25000
	jackpotSeed    = 500000
)

// Wheel awards, picked at random when the lit wheel is completed.
const (
	awardPoints = iota
	awardExtraBall
	awardHoldBonus
	awardQuizMode
	numAwards
)

// rules is the Gameshow variant: spell PRIZE to light the wheel, spin for a
// random award, crack the vault for the jackpot during the quiz mode.
type rules struct {
	prize    [5]bool
	laneLit  [4]bool
	wheelLit bool
	quizRun  bool // quiz mode window currently requested/active
}

func newRules() pin.Rules {
	return &rules{laneLit: [4]bool{false, true, true, false}}
}

func init() {
	registry.Register(registry.Definition{
		ID:        "show",
		Table:     pin.Table3,
		Title:     "Billion Dollar Gameshow",
		NewLayout: NewLayout,
		NewRules:  newRules,
	})
}

func (r *rules) OnHitTrigger(e *pin.Engine, id pin.TriggerID) {
	switch id {
	case TrigBumperA, TrigBumperB, TrigBumperC:
		e.AddScore(pin.ScoreMain, bumperScore)
		e.AddScore(pin.ScoreBonus, 100)
		// Every bumper hit feeds the jackpot pot.
		e.AddScore(pin.ScoreJackpot, jackpotFeed)
	case TrigPrizeP, TrigPrizeR, TrigPrizeI, TrigPrizeZ, TrigPrizeE:
		r.hitPrize(e, int(id-TrigPrizeP))
	case TrigVault:
		r.vault(e)
	}
}

func (r *rules) OnRollTrigger(e *pin.Engine, id pin.TriggerID, entered bool) {
	if !entered {
		return
	}
	switch id {
	case TrigOutLeft, TrigInLeft, TrigInRight, TrigOutRight:
		r.rollLane(e, int(id-TrigOutLeft))
	case TrigWheelEntry:
		if r.wheelLit {
			e.DM().Clear()
			e.DM().Puts(pin.FontH13, 10, 1, "SPIN THE WHEEL")
		}
	case TrigWheelExit:
		r.spinWheel(e)
	}
}

// OnFlipperPressed rotates the lit lane lights one step.
func (r *rules) OnFlipperPressed(e *pin.Engine) {
	last := r.laneLit[3]
	copy(r.laneLit[1:], r.laneLit[:3])
	r.laneLit[0] = last
	r.paintLanes(e)
}

func (r *rules) Frame(e *pin.Engine) {
	if r.quizRun {
		if active, _, _ := e.InMode(); !active {
			r.quizRun = false
			e.PlayfieldLights().Set(LightVault, false)
		}
	}
}

// OnDrain: the spelled letters and the jackpot pot survive the ball.
func (r *rules) OnDrain(e *pin.Engine) {
	r.quizRun = false
}

func (r *rules) OnTask(e *pin.Engine, kind pin.TaskKind) {}

func (r *rules) rollLane(e *pin.Engine, lane int) {
	e.AddScore(pin.ScoreMain, laneScore)
	if r.laneLit[lane] {
		e.AddScore(pin.ScoreBonus, 2500)
		e.SetBonusMultipliers(uint8(1+r.litLanes()), 1)
	}
	r.paintLanes(e)
}

func (r *rules) litLanes() int {
	n := 0
	for _, lit := range r.laneLit {
		if lit {
			n++
		}
	}
	return n
}

func (r *rules) paintLanes(e *pin.Engine) {
	for i, lit := range r.laneLit {
		e.PlayfieldLights().Set(LightLaneOutLeft+pin.LightID(i), lit)
	}
}

// hitPrize collects one letter; spelling all five lights the wheel.
func (r *rules) hitPrize(e *pin.Engine, letter int) {
	e.AddScore(pin.ScoreMain, prizeScore)
	if r.prize[letter] {
		return
	}
	r.prize[letter] = true
	e.PlayfieldLights().Set(LightPrizeP+pin.LightID(letter), true)
	for _, got := range r.prize {
		if !got {
			return
		}
	}
	e.AddScore(pin.ScoreMain, prizeBankScore)
	r.wheelLit = true
	e.StartScript(scriptBindPrize)
}

// spinWheel pays a random award when the wheel is lit; an unlit lap is just
// ramp points.
func (r *rules) spinWheel(e *pin.Engine) {
	e.AddScore(pin.ScoreMain, wheelScore)
	e.AddScore(pin.ScoreBonus, 5000)
	if _, _, ramp := e.InMode(); ramp {
		e.AddScore(pin.ScoreModeRamp, 100000)
	}
	if !r.wheelLit {
		return
	}
	r.wheelLit = false
	r.prize = [5]bool{}
	for i := 0; i < 5; i++ {
		e.PlayfieldLights().Set(LightPrizeP+pin.LightID(i), false)
	}
	e.PlayfieldLights().Set(LightWheel, false)
	e.StartScript(scriptBindWheel)

	switch e.Rand(numAwards) {
	case awardPoints:
		e.AddScore(pin.ScoreMain, 500000)
		e.DM().Clear()
		e.DM().Puts(pin.FontH13, 28, 1, "500 000")
	case awardExtraBall:
		e.AwardExtraBall()
		e.StartScript(scriptBindExtraBall)
	case awardHoldBonus:
		e.HoldBonus()
		e.DM().Clear()
		e.DM().Puts(pin.FontH13, 16, 1, "BONUS HELD")
	case awardQuizMode:
		r.quizRun = true
		e.RequestMode(true, true, quizModeSecs)
		e.PlayfieldLights().Blink(LightVault, 6)
		e.DM().Clear()
		e.DM().Puts(pin.FontH13, 18, 1, "QUIZ TIME")
	}
}

// vault cracks the jackpot open during the quiz window; outside it the
// kicker seeds the pot instead.
func (r *rules) vault(e *pin.Engine) {
	if active, _, _ := e.InMode(); active && r.quizRun {
		pot := e.CollectScore(pin.ScoreJackpot)
		if !pot.IsZero() {
			e.StartScript(scriptBindJackpot)
		}
		e.EndMode()
		return
	}
	// A cold vault still rattles: feed the pot and pay a token.
	e.AddScore(pin.ScoreMain, 1000)
	if e.Score(pin.ScoreJackpot).IsZero() {
		e.AddScore(pin.ScoreJackpot, jackpotSeed)
	}
}
