package speeddevils

import (
	"fmt"

	"github.com/arcadeworks/tui-pinball/internal/pin"
	"github.com/arcadeworks/tui-pinball/internal/registry"
)

// Deferred actions owned by this table.
const (
	taskResetTurbo pin.TaskKind = pin.TaskTableBase + iota
)

// Scoring values.
const (
	laneScore      = 3000
	bumperScore    = 410
	turboScore     = 7500
	turboBankScore = 200000
	gearLapScore   = 75000
	pitScore       = 30000
	millionScore   = 1000000
	overdriveSecs  = 20
	topGear        = 5
)

// rules is the Speed Devils variant: ramp laps shift gears, fifth gear opens
// overdrive, overdrive laps raise the millions pot collected at the oil pit.
type rules struct {
	gear      int
	turbo     [4]bool
	laneLit   [4]bool
	pitUsed   bool // one held bonus per ball
	overdrive bool // overdrive window currently requested/active
}

func newRules() pin.Rules {
	return &rules{laneLit: [4]bool{true, false, false, true}}
}

func init() {
	registry.Register(registry.Definition{
		ID:        "speed",
		Table:     pin.Table2,
		Title:     "Speed Devils",
		NewLayout: NewLayout,
		NewRules:  newRules,
	})
}

func (r *rules) OnHitTrigger(e *pin.Engine, id pin.TriggerID) {
	switch id {
	case TrigBumperA, TrigBumperB, TrigBumperC:
		e.AddScore(pin.ScoreMain, bumperScore)
		e.AddScore(pin.ScoreBonus, 100)
		if _, hit, _ := e.InMode(); hit {
			e.AddScore(pin.ScoreModeHit, 50000)
		}
	case TrigTurboA, TrigTurboB, TrigTurboC, TrigTurboD:
		r.hitTurbo(e, int(id-TrigTurboA))
	case TrigOilPit:
		r.oilPit(e)
	}
}

func (r *rules) OnRollTrigger(e *pin.Engine, id pin.TriggerID, entered bool) {
	if !entered {
		return
	}
	switch id {
	case TrigOutLeft, TrigInLeft, TrigInRight, TrigOutRight:
		r.rollLane(e, int(id-TrigOutLeft))
	case TrigGearEntry:
		e.DM().Clear()
		e.DM().Puts(pin.FontH13, 22, 1, "SHIFT UP")
	case TrigGearExit:
		r.gearLap(e)
	case TrigPitLane:
		r.pitStop(e)
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
	if r.overdrive {
		if active, _, _ := e.InMode(); !active {
			// The window closed this frame; the pot stays collectable.
			r.overdrive = false
			e.PlayfieldLights().Set(LightOverdrive, false)
		}
	}
}

// OnDrain ends overdrive; gears and the millions pot survive the ball, the
// held-bonus lane re-arms.
func (r *rules) OnDrain(e *pin.Engine) {
	if r.overdrive {
		e.EndMode()
	}
	r.pitUsed = false
	e.PlayfieldLights().Set(LightPit, false)
}

func (r *rules) OnTask(e *pin.Engine, kind pin.TaskKind) {
	switch kind {
	case taskResetTurbo:
		r.turbo = [4]bool{}
		for i := 0; i < 4; i++ {
			e.PlayfieldLights().Set(LightTurboA+pin.LightID(i), false)
		}
	}
}

func (r *rules) rollLane(e *pin.Engine, lane int) {
	e.AddScore(pin.ScoreMain, laneScore)
	if r.laneLit[lane] {
		e.AddScore(pin.ScoreBonus, 2000)
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

func (r *rules) hitTurbo(e *pin.Engine, target int) {
	e.AddScore(pin.ScoreMain, turboScore)
	if r.turbo[target] {
		return
	}
	r.turbo[target] = true
	e.PlayfieldLights().Set(LightTurboA+pin.LightID(target), true)
	if r.turbo[0] && r.turbo[1] && r.turbo[2] && r.turbo[3] {
		e.AddScore(pin.ScoreMain, turboBankScore)
		e.SetBonusMultipliers(3, 1)
		e.StartScript(scriptBindTurbo)
		e.AddTask(taskResetTurbo, 150)
	}
}

// gearLap shifts one gear up per completed ramp lap. Fifth gear opens the
// overdrive window; laps inside the window pay a ramp million and raise the
// pot instead of shifting.
func (r *rules) gearLap(e *pin.Engine) {
	if r.overdrive {
		e.AddScore(pin.ScoreModeRamp, millionScore)
		e.AddScore(pin.ScoreRaisingMillions, millionScore)
		e.DM().Clear()
		e.DM().Puts(pin.FontH13, 12, 1, "RAISE MILLIONS")
		e.PlayfieldLights().Blink(LightMillions, 8)
		return
	}

	if r.gear < topGear {
		r.gear++
	}
	e.AddScore(pin.ScoreMain, uint64(r.gear)*gearLapScore)
	e.AddScore(pin.ScoreBonus, 5000)
	e.DM().Clear()
	e.DM().Puts(pin.FontH13, 30, 1, fmt.Sprintf("GEAR %d", r.gear))
	r.paintGears(e)

	if r.gear == topGear {
		r.gear = 0
		r.overdrive = true
		e.RequestMode(true, true, overdriveSecs)
		e.StartScript(scriptBindOverdrive)
	}
}

func (r *rules) paintGears(e *pin.Engine) {
	for i := 0; i < topGear; i++ {
		e.PlayfieldLights().Set(LightGear1+pin.LightID(i), r.gear > i)
	}
}

// pitStop holds the bonus into the next ball, once per ball.
func (r *rules) pitStop(e *pin.Engine) {
	e.AddScore(pin.ScoreMain, pitScore)
	e.AddScore(pin.ScoreBonus, 3000)
	if r.pitUsed {
		return
	}
	r.pitUsed = true
	e.HoldBonus()
	e.StartScript(scriptBindPit)
}

// oilPit collects the millions pot when one has been raised; otherwise it is
// just a kicker worth a random tip.
func (r *rules) oilPit(e *pin.Engine) {
	pot := e.CollectScore(pin.ScoreRaisingMillions)
	if pot.IsZero() {
		e.AddScore(pin.ScoreMain, uint64(500*(1+e.Rand(6))))
		return
	}
	e.StartScript(scriptBindMillions)
	e.PlayfieldLights().Set(LightMillions, false)
}
