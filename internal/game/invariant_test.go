package game

import (
	"fmt"
	"testing"
)

// --- Invariant helpers ---

func checkBearHealthBounded(t *testing.T, r *Round) {
	t.Helper()
	if b := r.Bear(); b != nil {
		if b.Health() < 0 || b.Health() > bearMaxHealth {
			t.Fatalf("frame %d: bear health %d out of range", r.Frame(), b.Health())
		}
	}
}

func checkPopulation(t *testing.T, r *Round) {
	t.Helper()
	if n := r.countKind(KindRabbit); n > maxRabbits {
		t.Fatalf("frame %d: %d rabbits, cap is %d", r.Frame(), n, maxRabbits)
	}
	if n := r.countKind(KindBear); n > 1 {
		t.Fatalf("frame %d: %d bears on the field", r.Frame(), n)
	}
	for _, c := range r.Creatures() {
		if c.Lane() < LaneUpper || c.Lane() > LaneBottom {
			t.Fatalf("frame %d: %s in invalid lane %d", r.Frame(), c.Label(), c.Lane())
		}
	}
}

func checkPlayerBounded(t *testing.T, r *Round) {
	t.Helper()
	p := r.Player()
	if p.Lane() < LaneUpper || p.Lane() > LaneBottom {
		t.Fatalf("frame %d: player in invalid lane %d", r.Frame(), p.Lane())
	}
	for k, n := range p.Ammo {
		if n < 0 {
			t.Fatalf("frame %d: %s ammo went negative (%d)", r.Frame(), AmmoKind(k), n)
		}
	}
	e := r.Effects()
	for _, k := range []PowerupKind{PowerupBanana, PowerupPineapple, PowerupApple} {
		if e.Remaining(k) < 0 {
			t.Fatalf("frame %d: %s timer negative", r.Frame(), k)
		}
	}
	if e.Active(PowerupBanana) != (p.Speed() == 2*playerBaseSpeed) {
		t.Fatalf("frame %d: banana active=%v but speed=%v", r.Frame(), e.Active(PowerupBanana), p.Speed())
	}
}

func checkPowerupsLive(t *testing.T, r *Round) {
	t.Helper()
	for _, p := range r.Powerups() {
		if p.Expired() {
			t.Fatalf("frame %d: expired %s left on the field", r.Frame(), p.Kind)
		}
	}
}

// runChecked pilots a round frame by frame, checking every invariant after
// each step.
func runChecked(t *testing.T, r *Round, maxFrames int) {
	t.Helper()
	pilot := NewAutopilot()
	clocks := 0
	for i := 0; i < maxFrames && r.Outcome() == OutcomePlaying; i++ {
		pilot.Drive(r)
		r.Step(FixedStep)
		for _, e := range r.DrainEvents() {
			if e.Kind == EventClockDropped {
				clocks++
			}
		}
		checkBearHealthBounded(t, r)
		checkPopulation(t, r)
		checkPlayerBounded(t, r)
		checkPowerupsLive(t, r)
	}
	if clocks > 1 {
		t.Fatalf("%d clocks dropped in one round", clocks)
	}
}

// --- Invariant tests ---

func TestInvariant_AutopilotRounds(t *testing.T) {
	for level := 1; level <= LevelCount(); level++ {
		for _, seed := range []int64{1, 7, 42} {
			t.Run(fmt.Sprintf("level%d_seed%d", level, seed), func(t *testing.T) {
				r := NewRound(level, WithSeed(seed))
				runChecked(t, r, 90*FrameRate)
				dumpSummary(t, r)
			})
		}
	}
}

func TestInvariant_IdleRoundNeverWins(t *testing.T) {
	r := NewRound(3, WithSeed(5))
	for i := 0; i < 60*FrameRate && r.Outcome() == OutcomePlaying; i++ {
		r.Step(FixedStep)
		checkBearHealthBounded(t, r)
		checkPopulation(t, r)
	}
	if r.Outcome() == OutcomeWon {
		t.Fatalf("a round nobody plays cannot be won")
	}
}

func TestInvariant_DecidedRoundIsFrozen(t *testing.T) {
	r := quietRound()
	b := r.SpawnBear(LaneMiddle)
	b.x = playerX + 0.1
	r.Step(FixedStep)
	if r.Outcome() != OutcomeLost {
		t.Fatalf("outcome = %s, want lost", r.Outcome())
	}
	before := r.Log().Format()
	r.RunFrames(100)
	r.Click(400, 300)
	if r.Log().Format() != before {
		t.Fatalf("log changed after the round was decided")
	}
}
