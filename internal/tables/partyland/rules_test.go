package partyland

import (
	"testing"

	"github.com/arcadeworks/tui-pinball/internal/audio"
	"github.com/arcadeworks/tui-pinball/internal/core"
	"github.com/arcadeworks/tui-pinball/internal/pin"
	"github.com/arcadeworks/tui-pinball/internal/registry"
)

func newTestGame() (*pin.Engine, *rules) {
	r := newRules().(*rules)
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	e := pin.New(NewLayout(), r, pin.DefaultOptions(),
		[pin.HighScoreCount]pin.HighScore{}, audio.NewNull(), cfg)
	e.HandleEvent(core.Start(1))
	e.RunFrame()
	return e, r
}

func TestCycloneLapsFeedPartyCounter(t *testing.T) {
	e, r := newTestGame()

	for i := 0; i < 3; i++ {
		r.OnRollTrigger(e, TrigCycloneExit, true)
		r.OnRollTrigger(e, TrigCycloneExit, false)
	}
	if r.party != 3*partyPerLap {
		t.Errorf("three laps should bank %d party, got %d", 3*partyPerLap, r.party)
	}
	if e.Score(pin.ScoreMain).IsZero() {
		t.Error("cyclone laps should score")
	}
}

func TestPartyFiftyOpensCrazyMode(t *testing.T) {
	e, r := newTestGame()

	laps := crazyAtParty / partyPerLap
	for i := 0; i < laps; i++ {
		r.OnRollTrigger(e, TrigCycloneExit, true)
	}
	active, hit, ramp := e.InMode()
	if !active || !hit || !ramp {
		t.Errorf("party %d should open the crazy window, got active=%v hit=%v ramp=%v",
			crazyAtParty, active, hit, ramp)
	}
	if !e.PlayfieldLights().IsLit(LightParty50) {
		t.Error("the 50 milestone light should be on")
	}
}

func TestPartyHundredAwardsExtraBall(t *testing.T) {
	e, r := newTestGame()

	laps := extraAtParty / partyPerLap
	for i := 0; i < laps; i++ {
		r.OnRollTrigger(e, TrigCycloneExit, true)
	}
	// The extra-ball script lights its lamp on the next script frame.
	e.RunFrame()
	if !e.PlayfieldLights().IsLit(LightExtraBall) {
		t.Error("the extra ball lamp should be on")
	}
	if !e.PlayfieldLights().IsLit(LightParty100) {
		t.Error("the 100 milestone light should be on")
	}
}

func TestDuckBankPaysOnceUntilReset(t *testing.T) {
	e, r := newTestGame()

	r.OnHitTrigger(e, TrigDuckA)
	r.OnHitTrigger(e, TrigDuckB)
	before := e.Score(pin.ScoreMain)
	r.OnHitTrigger(e, TrigDuckC)

	gained := e.Score(pin.ScoreMain)
	if gained.Cmp(before.AddUint64(duckScore+duckBankScore)) != 0 {
		t.Errorf("completing the bank should pay the bank bonus, got %s", gained)
	}
	if !r.ducks[0] || !r.ducks[1] || !r.ducks[2] {
		t.Error("all ducks should be marked bagged")
	}

	// Re-hitting a bagged duck pays the base value only.
	before = e.Score(pin.ScoreMain)
	r.OnHitTrigger(e, TrigDuckA)
	if e.Score(pin.ScoreMain).Cmp(before.AddUint64(duckScore)) != 0 {
		t.Error("bagged ducks should pay base value only")
	}

	// The scheduled reset re-arms the bank.
	for i := 0; i < 130; i++ {
		e.RunFrame()
	}
	if r.ducks[0] || r.ducks[1] || r.ducks[2] {
		t.Error("the bank should re-arm after the reset task")
	}
}

func TestFlipperRotatesLaneLights(t *testing.T) {
	e, r := newTestGame()

	before := r.laneLit
	r.OnFlipperPressed(e)
	want := [4]bool{before[3], before[0], before[1], before[2]}
	if r.laneLit != want {
		t.Errorf("lane lights should rotate one step, got %v want %v", r.laneLit, want)
	}

	// Four rotations bring the pattern home.
	for i := 0; i < 3; i++ {
		r.OnFlipperPressed(e)
	}
	if r.laneLit != before {
		t.Error("four rotations should restore the original pattern")
	}
}

func TestDrainDecaysPartyToMilestone(t *testing.T) {
	e, r := newTestGame()

	r.party = 63
	r.OnDrain(e)
	if r.party != 50 {
		t.Errorf("party should decay to the last milestone, got %d", r.party)
	}
	if e.Score(pin.ScoreBonus).IsZero() {
		t.Error("the drain should bank the party counter into bonus")
	}
}

func TestRegistryRegistration(t *testing.T) {
	d, err := registry.Lookup("party")
	if err != nil {
		t.Fatalf("table should self-register: %v", err)
	}
	if d.Table != pin.Table1 || d.Title != "Partyland" {
		t.Errorf("unexpected registration: %+v", d)
	}
}
