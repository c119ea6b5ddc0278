package partyland

import (
	"fmt"

	"github.com/arcadeworks/tui-pinball/internal/pin"
	"github.com/arcadeworks/tui-pinball/internal/registry"
)

// Deferred actions owned by this table.
const (
	taskResetDucks pin.TaskKind = pin.TaskTableBase + iota
	taskPukeKickback
)

// Scoring values.
const (
	laneScore     = 5010
	bumperScore   = 520
	duckScore     = 10500
	duckBankScore = 125000
	cycloneScore  = 75000
	tunnelScore   = 50000
	crazyHitScore = 250000
	partyPerLap   = 5
	crazyAtParty  = 50
	extraAtParty  = 100
	crazyModeSecs = 20
)

// rules is the Partyland variant: everything revolves around the party
// counter fed by cyclone laps.
type rules struct {
	party    int
	ducks    [3]bool
	laneLit  [4]bool
	crazyRun bool // crazy mode window currently requested/active
}

func newRules() pin.Rules {
	return &rules{laneLit: [4]bool{false, true, true, false}}
}

func init() {
	registry.Register(registry.Definition{
		ID:        "party",
		Table:     pin.Table1,
		Title:     "Partyland",
		NewLayout: NewLayout,
		NewRules:  newRules,
	})
}

func (r *rules) OnHitTrigger(e *pin.Engine, id pin.TriggerID) {
	switch id {
	case TrigBumperA, TrigBumperB, TrigBumperC:
		e.AddScore(pin.ScoreMain, bumperScore)
		e.AddScore(pin.ScoreBonus, 100)
		if r.crazyInHit(e) {
			e.AddScore(pin.ScoreModeHit, crazyHitScore)
		}
	case TrigDuckA, TrigDuckB, TrigDuckC:
		r.hitDuck(e, int(id-TrigDuckA))
	case TrigPuke:
		// The puke kicker spits the ball back with a random tip.
		e.AddScore(pin.ScoreMain, uint64(1000*(1+e.Rand(5))))
		e.AddTask(taskPukeKickback, 30)
	}
}

func (r *rules) OnRollTrigger(e *pin.Engine, id pin.TriggerID, entered bool) {
	if !entered {
		return
	}
	switch id {
	case TrigOutLeft, TrigInLeft, TrigInRight, TrigOutRight:
		r.rollLane(e, int(id-TrigOutLeft))
	case TrigCycloneEntry:
		// Scored on exit; entry just marks the DM.
		e.DM().Clear()
		e.DM().Puts(pin.FontH13, 36, 1, "CYCLONE")
	case TrigCycloneExit:
		r.cycloneLap(e)
	case TrigTunnel:
		e.AddScore(pin.ScoreMain, tunnelScore)
		e.AddScore(pin.ScoreBonus, 5000)
		if _, _, ramp := e.InMode(); ramp {
			e.AddScore(pin.ScoreModeRamp, crazyHitScore)
		}
	}
}

// OnFlipperPressed rotates the lit lane lights one step, the classic
// lane-change move.
func (r *rules) OnFlipperPressed(e *pin.Engine) {
	last := r.laneLit[3]
	copy(r.laneLit[1:], r.laneLit[:3])
	r.laneLit[0] = last
	r.paintLanes(e)
}

func (r *rules) Frame(e *pin.Engine) {
	if r.crazyRun {
		if active, _, _ := e.InMode(); !active {
			// The window closed this frame.
			r.crazyRun = false
			e.PlayfieldLights().Set(LightCrazy, false)
		}
	}
}

// OnDrain banks the party counter into bonus: the party never fully resets,
// it decays to the last milestone.
func (r *rules) OnDrain(e *pin.Engine) {
	e.AddScore(pin.ScoreBonus, uint64(r.party)*1000)
	r.party -= r.party % 25
	r.crazyRun = false
}

func (r *rules) OnTask(e *pin.Engine, kind pin.TaskKind) {
	switch kind {
	case taskResetDucks:
		r.ducks = [3]bool{}
		for i := 0; i < 3; i++ {
			e.PlayfieldLights().Set(LightDuckA+pin.LightID(i), false)
		}
	case taskPukeKickback:
		e.PlayfieldLights().Blink(LightParty25, 4)
	}
}

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

func (r *rules) hitDuck(e *pin.Engine, duck int) {
	e.AddScore(pin.ScoreMain, duckScore)
	if r.ducks[duck] {
		return
	}
	r.ducks[duck] = true
	e.PlayfieldLights().Set(LightDuckA+pin.LightID(duck), true)
	if r.ducks[0] && r.ducks[1] && r.ducks[2] {
		e.AddScore(pin.ScoreMain, duckBankScore)
		e.SetBonusMultipliers(2, 2)
		e.StartScript(scriptBindDucks)
		// The bank re-arms after a beat.
		e.AddTask(taskResetDucks, 120)
	}
}

// cycloneLap feeds the party counter and pays out milestones.
func (r *rules) cycloneLap(e *pin.Engine) {
	e.AddScore(pin.ScoreMain, cycloneScore)
	e.AddScore(pin.ScoreBonus, 10000)
	before := r.party
	r.party += partyPerLap

	e.DM().Clear()
	e.DM().Puts(pin.FontH13, 30, 1, fmt.Sprintf("PARTY %d", r.party))
	r.paintParty(e)

	if before < crazyAtParty && r.party >= crazyAtParty && !r.crazyRun {
		r.crazyRun = true
		e.RequestMode(true, true, crazyModeSecs)
		e.StartScript(scriptBindCrazy)
	}
	if before < extraAtParty && r.party >= extraAtParty {
		e.AwardExtraBall()
		e.StartScript(scriptBindExtraBall)
	}
}

func (r *rules) paintParty(e *pin.Engine) {
	milestones := [4]int{25, 50, 75, 100}
	for i, m := range milestones {
		e.PlayfieldLights().Set(LightParty25+pin.LightID(i), r.party >= m)
	}
}

func (r *rules) crazyInHit(e *pin.Engine) bool {
	_, hit, _ := e.InMode()
	return hit
}
