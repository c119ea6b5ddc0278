package pin

import (
	"testing"

	"github.com/arcadeworks/tui-pinball/internal/bcd"
)

func hs(name string, score uint64) HighScore {
	var h HighScore
	copy(h.Name[:], name)
	h.Score = bcd.FromUint64(score)
	return h
}

func TestHighScoreInsertDescending(t *testing.T) {
	table := [HighScoreCount]HighScore{
		hs("AAA", 4000), hs("BBB", 3000), hs("CCC", 2000), hs("DDD", 1000),
	}

	if !insertHighScore(&table, hs("NEW", 3500)) {
		t.Fatal("3500 should qualify against a floor of 1000")
	}
	want := []string{"AAA", "NEW", "BBB", "CCC"}
	for i, name := range want {
		if table[i].NameString() != name {
			t.Errorf("slot %d: want %s, got %s", i, name, table[i].NameString())
		}
	}
}

func TestHighScoreTieKeepsIncumbent(t *testing.T) {
	table := [HighScoreCount]HighScore{
		hs("AAA", 4000), hs("BBB", 3000), hs("CCC", 2000), hs("DDD", 1000),
	}

	if insertHighScore(&table, hs("TIE", 1000)) {
		t.Error("a score equal to the floor must not displace it")
	}
	if !insertHighScore(&table, hs("TIE", 3000)) {
		t.Fatal("3000 beats the floor and should insert")
	}
	// Equal to BBB: lands below it, never above.
	if table[1].NameString() != "BBB" || table[2].NameString() != "TIE" {
		t.Errorf("tie should keep the incumbent on top, got %s then %s",
			table[1].NameString(), table[2].NameString())
	}
}

func TestBonusTallyAppliesMultipliers(t *testing.T) {
	e := testEngine(&stubRules{}, 1)
	e.players = make([]PlayerState, 1)

	e.AddScore(ScoreMain, 100)
	e.AddScore(ScoreBonus, 1000)
	e.AddScore(ScoreModeHit, 50)
	e.SetBonusMultipliers(2, 3)
	e.tallyBonus()

	// 100 + 1000*2*3 + 50
	want := bcd.FromUint64(6150)
	if e.Score(ScoreMain).Cmp(want) != 0 {
		t.Errorf("tally: want %s, got %s", want, e.Score(ScoreMain))
	}
	if !e.Score(ScoreBonus).IsZero() {
		t.Error("bonus should reset after tally")
	}
	if e.bonusMultEarly != 1 || e.bonusMultLate != 1 {
		t.Error("multipliers should reset after tally")
	}
}

func TestHoldBonusCarriesAccumulator(t *testing.T) {
	e := testEngine(&stubRules{}, 1)
	e.players = make([]PlayerState, 1)

	e.AddScore(ScoreBonus, 500)
	e.SetBonusMultipliers(2, 1)
	e.HoldBonus()
	e.tallyBonus()

	if e.Score(ScoreBonus).IsZero() {
		t.Error("held bonus should survive the tally")
	}
	if e.bonusMultEarly != 2 {
		t.Error("held multipliers should survive the tally")
	}
	if e.holdBonus {
		t.Error("hold is single-shot, it must clear after one tally")
	}
}

func TestMultipliersOnlyGrow(t *testing.T) {
	e := testEngine(&stubRules{}, 1)
	e.SetBonusMultipliers(3, 2)
	e.SetBonusMultipliers(2, 5)
	if e.bonusMultEarly != 3 || e.bonusMultLate != 5 {
		t.Errorf("multipliers must only grow, got %dx%d", e.bonusMultEarly, e.bonusMultLate)
	}
}

func TestSaturatingScore(t *testing.T) {
	e := testEngine(&stubRules{}, 1)
	e.scores[ScoreMain] = bcd.Max()
	e.AddScore(ScoreMain, 1)
	if e.Score(ScoreMain).Cmp(bcd.Max()) != 0 {
		t.Error("the main score must saturate at twelve nines")
	}
}
