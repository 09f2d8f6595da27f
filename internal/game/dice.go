package game

import "math/rand"

// Dice is the single random source a round draws from. *rand.Rand satisfies
// it; tests inject scripted rolls.
type Dice interface {
	Float64() float64
	Intn(n int) int
}

// NewDice returns a seeded source.
func NewDice(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness, not security
}

// percentRoll returns a uniform draw in [1, 100].
func percentRoll(d Dice) int {
	return 1 + d.Intn(100)
}

// randIntRange draws an integer uniformly from [lo, hi] inclusive.
func randIntRange(d Dice, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.Intn(hi-lo+1)
}

// randFloatRange draws uniformly from [lo, hi).
func randFloatRange(d Dice, lo, hi float64) float64 {
	return lo + d.Float64()*(hi-lo)
}
