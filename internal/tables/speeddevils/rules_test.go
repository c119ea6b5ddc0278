package speeddevils

import (
	"testing"

	"github.com/arcadeworks/tui-pinball/internal/audio"
	"github.com/arcadeworks/tui-pinball/internal/bcd"
	"github.com/arcadeworks/tui-pinball/internal/core"
	"github.com/arcadeworks/tui-pinball/internal/pin"
)

func bcdFrom(v uint64) bcd.Score { return bcd.FromUint64(v) }

func newTestGame() (*pin.Engine, *rules) {
	r := newRules().(*rules)
	cfg := core.DefaultConfig()
	cfg.Seed = 11
	e := pin.New(NewLayout(), r, pin.DefaultOptions(),
		[pin.HighScoreCount]pin.HighScore{}, audio.NewNull(), cfg)
	e.HandleEvent(core.Start(1))
	e.RunFrame()
	return e, r
}

func TestGearLapsShiftUp(t *testing.T) {
	e, r := newTestGame()

	r.OnRollTrigger(e, TrigGearExit, true)
	r.OnRollTrigger(e, TrigGearExit, true)
	if r.gear != 2 {
		t.Errorf("two laps should reach gear 2, got %d", r.gear)
	}
	if !e.PlayfieldLights().IsLit(LightGear2) || e.PlayfieldLights().IsLit(LightGear3) {
		t.Error("gear lights should track the gear count")
	}
	// Gear laps pay per gear reached.
	want := uint64(1*gearLapScore + 2*gearLapScore)
	if e.Score(pin.ScoreMain).Cmp(bcdFrom(want)) != 0 {
		t.Errorf("gear laps should pay %d, got %s", want, e.Score(pin.ScoreMain))
	}
}

func TestFifthGearOpensOverdrive(t *testing.T) {
	e, r := newTestGame()

	for i := 0; i < topGear; i++ {
		r.OnRollTrigger(e, TrigGearExit, true)
	}
	if !r.overdrive {
		t.Fatal("fifth gear should open overdrive")
	}
	if active, hit, ramp := e.InMode(); !active || !hit || !ramp {
		t.Errorf("overdrive should open both mode sub-scores, got %v %v %v", active, hit, ramp)
	}
	if r.gear != 0 {
		t.Errorf("the gearbox should reset for the next run, got gear %d", r.gear)
	}
}

func TestOverdriveLapsRaiseTheMillions(t *testing.T) {
	e, r := newTestGame()

	for i := 0; i < topGear; i++ {
		r.OnRollTrigger(e, TrigGearExit, true)
	}
	r.OnRollTrigger(e, TrigGearExit, true)
	r.OnRollTrigger(e, TrigGearExit, true)

	if e.Score(pin.ScoreRaisingMillions).Cmp(bcdFrom(2*millionScore)) != 0 {
		t.Errorf("two overdrive laps should raise two millions, got %s",
			e.Score(pin.ScoreRaisingMillions))
	}
	if r.gear != 0 {
		t.Error("overdrive laps should not shift gears")
	}
}

func TestOilPitCollectsThePot(t *testing.T) {
	e, r := newTestGame()

	for i := 0; i < topGear; i++ {
		r.OnRollTrigger(e, TrigGearExit, true)
	}
	r.OnRollTrigger(e, TrigGearExit, true)

	before := e.Score(pin.ScoreMain)
	r.OnHitTrigger(e, TrigOilPit)
	if e.Score(pin.ScoreMain).Cmp(before.AddUint64(millionScore)) != 0 {
		t.Errorf("the pit should collect the pot, got %s", e.Score(pin.ScoreMain))
	}
	if !e.Score(pin.ScoreRaisingMillions).IsZero() {
		t.Error("collecting should empty the pot")
	}
}

func TestOilPitWithoutPotPaysTip(t *testing.T) {
	e, r := newTestGame()

	before := e.Score(pin.ScoreMain)
	r.OnHitTrigger(e, TrigOilPit)
	if e.Score(pin.ScoreMain).Cmp(before) <= 0 {
		t.Error("the empty pit should still pay something")
	}
}

func TestTurboBankPaysOnceUntilReset(t *testing.T) {
	e, r := newTestGame()

	r.OnHitTrigger(e, TrigTurboA)
	r.OnHitTrigger(e, TrigTurboB)
	r.OnHitTrigger(e, TrigTurboC)
	before := e.Score(pin.ScoreMain)
	r.OnHitTrigger(e, TrigTurboD)
	if e.Score(pin.ScoreMain).Cmp(before.AddUint64(turboScore+turboBankScore)) != 0 {
		t.Errorf("completing the bank should pay the bank bonus, got %s", e.Score(pin.ScoreMain))
	}

	// The scheduled reset re-arms the bank.
	for i := 0; i < 160; i++ {
		e.RunFrame()
	}
	if r.turbo[0] || r.turbo[1] || r.turbo[2] || r.turbo[3] {
		t.Error("the bank should re-arm after the reset task")
	}
}

func TestPitLaneHoldsBonusOncePerBall(t *testing.T) {
	e, r := newTestGame()

	r.OnRollTrigger(e, TrigPitLane, true)
	if !r.pitUsed {
		t.Fatal("the pit lane should arm the held bonus")
	}
	// A second visit scores but does not re-arm anything.
	r.OnRollTrigger(e, TrigPitLane, true)
	if !r.pitUsed {
		t.Error("the pit flag should persist within the ball")
	}
	// The drain re-arms it for the next ball.
	r.OnDrain(e)
	if r.pitUsed {
		t.Error("the drain should re-arm the pit lane")
	}
}

func TestDrainEndsOverdrive(t *testing.T) {
	e, r := newTestGame()

	for i := 0; i < topGear; i++ {
		r.OnRollTrigger(e, TrigGearExit, true)
	}
	r.OnDrain(e)
	if active, _, _ := e.InMode(); active {
		t.Error("the drain should close the overdrive window")
	}
}
