package stonesbones

import (
	"testing"

	"github.com/arcadeworks/tui-pinball/internal/audio"
	"github.com/arcadeworks/tui-pinball/internal/core"
	"github.com/arcadeworks/tui-pinball/internal/pin"
)

func newTestGame() (*pin.Engine, *rules) {
	r := newRules().(*rules)
	cfg := core.DefaultConfig()
	cfg.Seed = 5
	e := pin.New(NewLayout(), r, pin.DefaultOptions(),
		[pin.HighScoreCount]pin.HighScore{}, audio.NewNull(), cfg)
	e.HandleEvent(core.Start(1))
	e.RunFrame()
	return e, r
}

func collectEverything(e *pin.Engine, r *rules) {
	r.OnHitTrigger(e, TrigStoneA)
	r.OnHitTrigger(e, TrigStoneB)
	r.OnHitTrigger(e, TrigStoneC)
	for i := 0; i < boneTarget; i++ {
		r.OnHitTrigger(e, TrigBumperA)
	}
}

func TestCollectionLightsTheTower(t *testing.T) {
	e, r := newTestGame()

	r.OnHitTrigger(e, TrigStoneA)
	r.OnHitTrigger(e, TrigStoneB)
	if r.towerLit {
		t.Fatal("two stones must not light the tower")
	}
	collectEverything(e, r)
	if !r.towerLit {
		t.Fatal("all stones and bones should light the tower")
	}
	if r.bones != boneTarget {
		t.Errorf("bones should cap at %d, got %d", boneTarget, r.bones)
	}

	// Extra bumper hits past the cap change nothing.
	r.OnHitTrigger(e, TrigBumperB)
	if r.bones != boneTarget {
		t.Error("the bone count must not grow past the target")
	}
}

func TestLitTowerLapOpensScreams(t *testing.T) {
	e, r := newTestGame()

	collectEverything(e, r)
	r.OnRollTrigger(e, TrigTowerExit, true)

	if !r.screams {
		t.Fatal("a lit tower lap should open the screams window")
	}
	if active, hit, ramp := e.InMode(); !active || !hit || !ramp {
		t.Errorf("screams should open both mode sub-scores, got %v %v %v", active, hit, ramp)
	}
	if r.towerLit || r.bones != 0 || r.stones != [3]bool{} {
		t.Error("the lap should reset the collection for the next round")
	}
}

func TestUnlitTowerLapJustScores(t *testing.T) {
	e, r := newTestGame()

	r.OnRollTrigger(e, TrigTowerExit, true)
	if r.screams {
		t.Error("an unlit lap must not open the window")
	}
	if e.Score(pin.ScoreMain).IsZero() {
		t.Error("the lap should still score")
	}
}

func TestSkullArmsBallSaver(t *testing.T) {
	e, r := newTestGame()

	r.OnHitTrigger(e, TrigSkullLeft)
	if !r.saverOn {
		t.Fatal("the skull should arm the saver")
	}

	ballBefore := e.CurrentBall()
	for i := 0; i < saverFrames+10; i++ {
		e.RunFrame()
	}
	if r.saverOn {
		t.Error("the saver should disarm after its window")
	}
	if e.CurrentBall() != ballBefore {
		t.Error("time alone must not end the ball")
	}
}

func TestSecondSkullRestartsSaverClock(t *testing.T) {
	e, r := newTestGame()

	r.OnHitTrigger(e, TrigSkullLeft)
	for i := 0; i < saverFrames/2; i++ {
		e.RunFrame()
	}
	r.OnHitTrigger(e, TrigSkullRight)
	for i := 0; i < saverFrames/2+10; i++ {
		e.RunFrame()
	}
	if !r.saverOn {
		t.Error("the second skull should restart the saver clock")
	}
}

func TestDrainResetsTheCollection(t *testing.T) {
	e, r := newTestGame()

	collectEverything(e, r)
	r.OnHitTrigger(e, TrigSkullLeft)
	r.OnDrain(e)

	if r.towerLit || r.bones != 0 || r.stones != [3]bool{} {
		t.Error("the drain should reset the collection")
	}
	if r.saverOn {
		t.Error("the drain should disarm the saver")
	}
	if e.Score(pin.ScoreBonus).IsZero() {
		t.Error("the drain should bank the bones into bonus")
	}
}

func TestGhostAlwaysPays(t *testing.T) {
	e, r := newTestGame()

	before := e.Score(pin.ScoreMain)
	r.OnHitTrigger(e, TrigGhost)
	if e.Score(pin.ScoreMain).Cmp(before) <= 0 {
		t.Error("the ghost should always pay something")
	}
}
