// Package bcd implements binary-coded-decimal score arithmetic.
//
// Pinball scores are kept as decimal digit arrays so that every addition is
// exact decimal arithmetic with a fixed maximum width, matching the original
// scoring behavior: the accumulator saturates at all-nines instead of
// wrapping or rounding.
package bcd

import "strings"

// Digits is the fixed width of a score accumulator.
const Digits = 12

// Score is a non-negative decimal number of at most Digits digits.
// The zero value is the score 0. Score values are immutable; operations
// return new values.
type Score struct {
	// d holds decimal digits, least significant first.
	d [Digits]uint8
}

// Max is the largest representable score (all nines).
func Max() Score {
	var s Score
	for i := range s.d {
		s.d[i] = 9
	}
	return s
}

// FromUint64 converts v to a Score, saturating at Max.
func FromUint64(v uint64) Score {
	var s Score
	for i := 0; i < Digits; i++ {
		s.d[i] = uint8(v % 10)
		v /= 10
	}
	if v != 0 {
		return Max()
	}
	return s
}

// Add returns s + o, saturating at Max.
func (s Score) Add(o Score) Score {
	var out Score
	carry := uint8(0)
	for i := 0; i < Digits; i++ {
		sum := s.d[i] + o.d[i] + carry
		out.d[i] = sum % 10
		carry = sum / 10
	}
	if carry != 0 {
		return Max()
	}
	return out
}

// AddUint64 returns s + v, saturating at Max.
func (s Score) AddUint64(v uint64) Score {
	return s.Add(FromUint64(v))
}

// Mul returns s * n, saturating at Max. n is a small multiplier
// (bonus multipliers never exceed single digits).
func (s Score) Mul(n uint8) Score {
	out := Score{}
	for i := uint8(0); i < n; i++ {
		out = out.Add(s)
	}
	return out
}

// Cmp compares two scores: -1 if s < o, 0 if equal, 1 if s > o.
func (s Score) Cmp(o Score) int {
	for i := Digits - 1; i >= 0; i-- {
		if s.d[i] != o.d[i] {
			if s.d[i] < o.d[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// IsZero reports whether the score is 0.
func (s Score) IsZero() bool {
	for _, d := range s.d {
		if d != 0 {
			return false
		}
	}
	return true
}

// Digit returns the decimal digit at position i (0 = ones).
func (s Score) Digit(i int) uint8 {
	if i < 0 || i >= Digits {
		return 0
	}
	return s.d[i]
}

// String renders the score without leading zeros ("0" for zero).
func (s Score) String() string {
	var sb strings.Builder
	started := false
	for i := Digits - 1; i >= 0; i-- {
		if !started && s.d[i] == 0 && i > 0 {
			continue
		}
		started = true
		sb.WriteByte('0' + s.d[i])
	}
	return sb.String()
}

// Parse converts a decimal string to a Score, saturating at Max.
// Non-digit characters are ignored so stored scores with separators load
// cleanly. Used when reading persisted high scores back.
func Parse(text string) Score {
	var digits []uint8
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= '0' && c <= '9' {
			digits = append(digits, c-'0')
		}
	}
	if len(digits) > Digits {
		return Max()
	}
	var s Score
	for i, d := range digits {
		s.d[len(digits)-1-i] = d
	}
	return s
}
