package pin

import (
	"fmt"

	"github.com/arcadeworks/tui-pinball/internal/bcd"
)

// ScoreCategory names one of the table's decimal accumulators.
type ScoreCategory int

const (
	ScoreMain ScoreCategory = iota
	ScoreBonus
	ScoreJackpot
	ScoreModeHit
	ScoreModeRamp
	ScoreRaisingMillions

	numScoreCategories
)

// HighScoreCount is the fixed size of a table's high-score list.
const HighScoreCount = 4

// HighScore is one persisted entry: up to three initials and a score.
type HighScore struct {
	Name  [3]byte
	Score bcd.Score
}

// NameString renders the initials, trimming unset slots.
func (h HighScore) NameString() string {
	n := 0
	for n < 3 && h.Name[n] != 0 {
		n++
	}
	return string(h.Name[:n])
}

// AddScore adds a decimal amount to the named accumulator. Scoring is
// suspended while the table is tilted; accumulators saturate, never wrap.
func (e *Engine) AddScore(cat ScoreCategory, amount uint64) {
	if e.tilted {
		return
	}
	if cat < 0 || cat >= numScoreCategories {
		panic(fmt.Sprintf("pin: score category %d out of range", cat))
	}
	e.scores[cat] = e.scores[cat].AddUint64(amount)
	if cat == ScoreMain {
		e.ballScoredPoints = true
	}
}

// Score returns the current value of an accumulator.
func (e *Engine) Score(cat ScoreCategory) bcd.Score {
	return e.scores[cat]
}

// CollectScore folds an accumulator into the main score and clears it,
// returning the collected value. Used for jackpot-style pots the end-of-ball
// tally never touches. Collects nothing while tilted.
func (e *Engine) CollectScore(cat ScoreCategory) bcd.Score {
	if e.tilted {
		return bcd.Score{}
	}
	if cat < 0 || cat >= numScoreCategories {
		panic(fmt.Sprintf("pin: score category %d out of range", cat))
	}
	v := e.scores[cat]
	if v.IsZero() {
		return v
	}
	e.scores[cat] = bcd.Score{}
	e.scores[ScoreMain] = e.scores[ScoreMain].Add(v)
	e.ballScoredPoints = true
	return v
}

// SetBonusMultipliers raises the early/late bonus multiplier factors.
// Multipliers only ever grow within a ball; they reset at end of ball unless
// the bonus is held.
func (e *Engine) SetBonusMultipliers(early, late uint8) {
	if early > e.bonusMultEarly {
		e.bonusMultEarly = early
	}
	if late > e.bonusMultLate {
		e.bonusMultLate = late
	}
}

// HoldBonus carries the bonus and multipliers into the next ball.
func (e *Engine) HoldBonus() {
	e.holdBonus = true
}

// tallyBonus folds the end-of-ball bonus into the main score: the bonus
// accumulator times both multiplier factors, plus the mode sub-scores.
func (e *Engine) tallyBonus() {
	mult := e.bonusMultEarly * e.bonusMultLate
	total := e.scores[ScoreBonus].Mul(mult)
	total = total.Add(e.scores[ScoreModeHit])
	total = total.Add(e.scores[ScoreModeRamp])
	e.scores[ScoreMain] = e.scores[ScoreMain].Add(total)

	if e.holdBonus {
		e.holdBonus = false
	} else {
		e.scores[ScoreBonus] = bcd.Score{}
		e.bonusMultEarly = 1
		e.bonusMultLate = 1
	}
	e.scores[ScoreModeHit] = bcd.Score{}
	e.scores[ScoreModeRamp] = bcd.Score{}
}

// qualifiesHighScore reports whether a final score beats the lowest kept
// entry. Equal scores do not qualify: ties keep the existing order.
func qualifiesHighScore(table *[HighScoreCount]HighScore, score bcd.Score) bool {
	return score.Cmp(table[HighScoreCount-1].Score) > 0
}

// insertHighScore places a new entry into the descending table, displacing
// only strictly lower scores so equal entries keep their positions.
// Returns false when the score does not qualify.
func insertHighScore(table *[HighScoreCount]HighScore, entry HighScore) bool {
	if !qualifiesHighScore(table, entry.Score) {
		return false
	}
	pos := HighScoreCount - 1
	for pos > 0 && entry.Score.Cmp(table[pos-1].Score) > 0 {
		pos--
	}
	copy(table[pos+1:], table[pos:HighScoreCount-1])
	table[pos] = entry
	return true
}
