// Package roll provides the injectable random source used by the battle engine.
// Battles never touch a global generator: every roll goes through a Source
// passed in at construction, so a seed fully determines a battle.
package roll

import "math/rand/v2"

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a seeded PCG source.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Percent rolls an integer in [0, 100).
func Percent(src Source) int {
	return src.IntN(100)
}

// Chance reports whether a roll(0,100) < pct succeeds.
// 100 or more always succeeds and 0 or less always fails; neither consumes a roll.
func Chance(src Source, pct float64) bool {
	if pct >= 100 {
		return true
	}
	if pct <= 0 {
		return false
	}
	return float64(Percent(src)) < pct
}

// Fixed replays a fixed sequence of values, cycling when exhausted.
// Each value is reduced modulo n. Intended for deterministic tests.
type Fixed struct {
	Values []int
	pos    int
}

// NewFixed creates a Fixed source.
func NewFixed(values ...int) *Fixed {
	return &Fixed{Values: values}
}

// IntN returns the next value modulo n.
func (f *Fixed) IntN(n int) int {
	if len(f.Values) == 0 || n <= 0 {
		return 0
	}
	v := f.Values[f.pos%len(f.Values)]
	f.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls returns how many values have been drawn.
func (f *Fixed) Calls() int { return f.pos }
