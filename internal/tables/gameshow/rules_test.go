package gameshow

import (
	"testing"

	"github.com/arcadeworks/tui-pinball/internal/audio"
	"github.com/arcadeworks/tui-pinball/internal/bcd"
	"github.com/arcadeworks/tui-pinball/internal/core"
	"github.com/arcadeworks/tui-pinball/internal/pin"
)

func newTestGame(seed int64) (*pin.Engine, *rules) {
	r := newRules().(*rules)
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	e := pin.New(NewLayout(), r, pin.DefaultOptions(),
		[pin.HighScoreCount]pin.HighScore{}, audio.NewNull(), cfg)
	e.HandleEvent(core.Start(1))
	e.RunFrame()
	return e, r
}

func spellPrize(e *pin.Engine, r *rules) {
	for id := TrigPrizeP; id <= TrigPrizeE; id++ {
		r.OnHitTrigger(e, id)
	}
}

func TestSpellingPrizeLightsTheWheel(t *testing.T) {
	e, r := newTestGame(3)

	spellPrize(e, r)
	if !r.wheelLit {
		t.Fatal("spelling PRIZE should light the wheel")
	}
	for i := 0; i < 5; i++ {
		if !e.PlayfieldLights().IsLit(LightPrizeP + pin.LightID(i)) {
			t.Errorf("letter light %d should be on", i)
		}
	}

	// Repeat hits on collected letters do not disturb the bank.
	r.OnHitTrigger(e, TrigPrizeP)
	if !r.wheelLit {
		t.Error("a repeated letter should not clear the wheel")
	}
}

func TestLitWheelSpinPaysAnAwardAndRearms(t *testing.T) {
	e, r := newTestGame(3)

	spellPrize(e, r)
	before := e.Score(pin.ScoreMain)
	r.OnRollTrigger(e, TrigWheelExit, true)

	if r.wheelLit {
		t.Error("the spin should consume the lit wheel")
	}
	if r.prize != [5]bool{} {
		t.Error("the spin should clear the letters for the next spell")
	}
	// Whatever the award, the lap itself always pays.
	if e.Score(pin.ScoreMain).Cmp(before) <= 0 {
		t.Error("the spin should score")
	}
}

func TestWheelAwardsCoverAllKinds(t *testing.T) {
	// Across seeds the random award must reach every branch at least once.
	seen := make(map[string]bool)
	for seed := int64(0); seed < 40; seed++ {
		e, r := newTestGame(seed)
		spellPrize(e, r)
		r.OnRollTrigger(e, TrigWheelExit, true)
		switch {
		case r.quizRun:
			seen["mode"] = true
		default:
			seen["other"] = true
		}
	}
	if !seen["mode"] || !seen["other"] {
		t.Errorf("the wheel should reach multiple award kinds across seeds, saw %v", seen)
	}
}

func TestBumpersFeedTheJackpot(t *testing.T) {
	e, r := newTestGame(3)

	r.OnHitTrigger(e, TrigBumperA)
	r.OnHitTrigger(e, TrigBumperB)
	want := bcd.FromUint64(2 * jackpotFeed)
	if got := e.Score(pin.ScoreJackpot); got.Cmp(want) != 0 {
		t.Errorf("two bumper hits should bank %s, got %s", want, got)
	}
}

func TestVaultCollectsJackpotOnlyDuringQuiz(t *testing.T) {
	e, r := newTestGame(3)

	r.OnHitTrigger(e, TrigBumperA)
	pot := e.Score(pin.ScoreJackpot)

	// Cold vault: the pot stays.
	r.OnHitTrigger(e, TrigVault)
	if e.Score(pin.ScoreJackpot).Cmp(pot) != 0 {
		t.Fatal("a cold vault must not pay the pot")
	}

	// During the quiz window the vault pays and empties the pot.
	r.quizRun = true
	e.RequestMode(true, true, quizModeSecs)
	before := e.Score(pin.ScoreMain)
	r.OnHitTrigger(e, TrigVault)
	if !e.Score(pin.ScoreJackpot).IsZero() {
		t.Error("the vault should empty the pot")
	}
	if e.Score(pin.ScoreMain).Cmp(before.Add(pot)) != 0 {
		t.Errorf("the vault should pay the pot into the main score, got %s",
			e.Score(pin.ScoreMain))
	}
	if active, _, _ := e.InMode(); active {
		t.Error("cracking the vault should close the quiz window")
	}
}

func TestColdVaultSeedsEmptyPot(t *testing.T) {
	e, r := newTestGame(3)

	r.OnHitTrigger(e, TrigVault)
	if e.Score(pin.ScoreJackpot).IsZero() {
		t.Error("the first cold vault should seed the pot")
	}
}
