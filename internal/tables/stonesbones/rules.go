package stonesbones

import (
	"fmt"

	"github.com/arcadeworks/tui-pinball/internal/pin"
	"github.com/arcadeworks/tui-pinball/internal/registry"
)

// Deferred actions owned by this table.
const (
	taskSaverOff pin.TaskKind = pin.TaskTableBase + iota
)

// Scoring values.
const (
	laneScore      = 3500
	bumperScore    = 480
	stoneScore     = 12000
	collectedScore = 175000
	towerLapScore  = 60000
	screamsScore   = 300000
	skullScore     = 8000
	screamsSecs    = 18
	boneTarget     = 6
	saverFrames    = 600 // ten seconds of ball saver per skull
)

// rules is the Stones'n Bones variant: collect the three stones and six
// bones to light the tower, lap the lit tower for the screams window.
type rules struct {
	stones   [3]bool
	bones    int
	laneLit  [4]bool
	towerLit bool
	screams  bool // screams window currently requested/active
	saverOn  bool
}

func newRules() pin.Rules {
	return &rules{laneLit: [4]bool{true, false, false, true}}
}

func init() {
	registry.Register(registry.Definition{
		ID:        "stones",
		Table:     pin.Table4,
		Title:     "Stones'n Bones",
		NewLayout: NewLayout,
		NewRules:  newRules,
	})
}

func (r *rules) OnHitTrigger(e *pin.Engine, id pin.TriggerID) {
	switch id {
	case TrigBumperA, TrigBumperB, TrigBumperC:
		e.AddScore(pin.ScoreMain, bumperScore)
		e.AddScore(pin.ScoreBonus, 100)
		r.addBone(e)
		if _, hit, _ := e.InMode(); hit {
			e.AddScore(pin.ScoreModeHit, 75000)
		}
	case TrigStoneA, TrigStoneB, TrigStoneC:
		r.hitStone(e, int(id-TrigStoneA))
	case TrigSkullLeft, TrigSkullRight:
		r.hitSkull(e)
	case TrigGhost:
		r.ghost(e)
	}
}

func (r *rules) OnRollTrigger(e *pin.Engine, id pin.TriggerID, entered bool) {
	if !entered {
		return
	}
	switch id {
	case TrigOutLeft, TrigInLeft, TrigInRight, TrigOutRight:
		r.rollLane(e, int(id-TrigOutLeft))
	case TrigTowerEntry:
		if r.towerLit {
			e.DM().Clear()
			e.DM().Puts(pin.FontH13, 14, 1, "TO THE TOWER")
		}
	case TrigTowerExit:
		r.towerLap(e)
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
	if r.screams {
		if active, _, _ := e.InMode(); !active {
			r.screams = false
			e.PlayfieldLights().Set(LightTower, false)
		}
	}
}

// OnDrain: the collection resets, a fresh body starts digging from scratch.
func (r *rules) OnDrain(e *pin.Engine) {
	e.AddScore(pin.ScoreBonus, uint64(r.bones)*2000)
	r.stones = [3]bool{}
	r.bones = 0
	r.towerLit = false
	r.screams = false
	r.disarmSaver(e)
	r.paintCollection(e)
	e.PlayfieldLights().Set(LightTower, false)
}

func (r *rules) OnTask(e *pin.Engine, kind pin.TaskKind) {
	switch kind {
	case taskSaverOff:
		r.disarmSaver(e)
	}
}

func (r *rules) disarmSaver(e *pin.Engine) {
	if !r.saverOn {
		return
	}
	r.saverOn = false
	e.SetBlockDrain(false)
	e.PlayfieldLights().Set(LightSaver, false)
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

func (r *rules) hitStone(e *pin.Engine, stone int) {
	e.AddScore(pin.ScoreMain, stoneScore)
	if r.stones[stone] {
		return
	}
	r.stones[stone] = true
	e.PlayfieldLights().Set(LightStoneA+pin.LightID(stone), true)
	r.checkCollection(e)
}

// addBone counts a bone per bumper hit, up to the target.
func (r *rules) addBone(e *pin.Engine) {
	if r.bones >= boneTarget {
		return
	}
	r.bones++
	e.PlayfieldLights().Set(LightBone1+pin.LightID(r.bones-1), true)
	e.DM().Clear()
	e.DM().Puts(pin.FontH13, 22, 1, fmt.Sprintf("BONES %d", r.bones))
	r.checkCollection(e)
}

// checkCollection lights the tower once all stones and bones are in.
func (r *rules) checkCollection(e *pin.Engine) {
	if r.towerLit || r.bones < boneTarget {
		return
	}
	for _, got := range r.stones {
		if !got {
			return
		}
	}
	r.towerLit = true
	e.AddScore(pin.ScoreMain, collectedScore)
	e.StartScript(scriptBindCollected)
}

// towerLap opens the screams window when the tower is lit; the collection
// resets so it can be rebuilt for another round.
func (r *rules) towerLap(e *pin.Engine) {
	e.AddScore(pin.ScoreMain, towerLapScore)
	e.AddScore(pin.ScoreBonus, 5000)
	if _, _, ramp := e.InMode(); ramp {
		e.AddScore(pin.ScoreModeRamp, screamsScore)
	}
	if !r.towerLit {
		return
	}
	r.towerLit = false
	r.stones = [3]bool{}
	r.bones = 0
	r.paintCollection(e)
	r.screams = true
	e.RequestMode(true, true, screamsSecs)
	e.StartScript(scriptBindScreams)
}

func (r *rules) paintCollection(e *pin.Engine) {
	for i := range r.stones {
		e.PlayfieldLights().Set(LightStoneA+pin.LightID(i), r.stones[i])
	}
	for i := 0; i < boneTarget; i++ {
		e.PlayfieldLights().Set(LightBone1+pin.LightID(i), i < r.bones)
	}
}

// hitSkull arms the ball saver for a while; another skull restarts the clock.
func (r *rules) hitSkull(e *pin.Engine) {
	e.AddScore(pin.ScoreMain, skullScore)
	e.CancelTasks(taskSaverOff)
	e.AddTask(taskSaverOff, saverFrames)
	if !r.saverOn {
		r.saverOn = true
		e.SetBlockDrain(true)
		e.StartScript(scriptBindSaver)
	}
}

// ghost pays a random bonus, now and then a big one.
func (r *rules) ghost(e *pin.Engine) {
	e.StartScript(scriptBindGhost)
	if e.Rand(8) == 0 {
		e.AddScore(pin.ScoreMain, 100000)
		return
	}
	e.AddScore(pin.ScoreMain, uint64(5000*(1+e.Rand(10))))
}
