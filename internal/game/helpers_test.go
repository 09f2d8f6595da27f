package game

import (
	"math"
	"testing"
)

// scriptedDice replays fixed rolls. Once a script runs out it falls back
// to 0 for Intn and 0.99 for Float64.
type scriptedDice struct {
	ints   []int
	floats []float64
}

func (d *scriptedDice) Intn(n int) int {
	if len(d.ints) == 0 {
		return 0
	}
	v := d.ints[0]
	d.ints = d.ints[1:]
	return v % n
}

func (d *scriptedDice) Float64() float64 {
	if len(d.floats) == 0 {
		return 0.99
	}
	v := d.floats[0]
	d.floats = d.floats[1:]
	return v
}

// dumpLog prints the round log to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, r *Round) {
	t.Helper()
	entries := r.Log().Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

func dumpSummary(t *testing.T, r *Round) {
	t.Helper()
	t.Log(r.Log().Summary(r))
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// quietRound is a level-1 round with the spawners turned off.
func quietRound(opts ...RoundOption) *Round {
	return NewRound(1, append([]RoundOption{WithSeed(7), WithoutSpawns()}, opts...)...)
}
