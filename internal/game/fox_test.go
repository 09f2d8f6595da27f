package game

import (
	"math"
	"testing"
)

func TestFox_SpeedPicksBounceHeight(t *testing.T) {
	for i := range foxSpeeds {
		f := NewFox(1, LaneMiddle, &scriptedDice{ints: []int{i}})
		if f.Speed() != foxSpeeds[i] || f.BounceHeight() != foxBounces[i] {
			t.Fatalf("index %d: speed=%v bounce=%v", i, f.Speed(), f.BounceHeight())
		}
		if f.y != LaneY(LaneMiddle)-f.BounceHeight() {
			t.Fatalf("index %d: spawn y=%v, want lane top minus bounce", i, f.y)
		}
	}
}

func TestFox_BerryHitVibratesThenFeeds(t *testing.T) {
	// speed index 3, drop roll 0.95 (nothing), then speed index 0 after feeding.
	f := NewFox(1, LaneLower, &scriptedDice{ints: []int{3, 0}, floats: []float64{0.95}})
	f.x = 400

	if f.Accepts(AmmoCarrot) || f.Accepts(AmmoHoney) {
		t.Fatalf("fox should only accept berries")
	}
	if drop := f.OnHit(AmmoBerry); drop != nil {
		t.Fatalf("roll 0.95 should drop nothing, got %s", drop.Kind)
	}
	if f.State() != FoxHit || f.CanDrop() {
		t.Fatalf("state=%s canDrop=%v after first berry", f.State(), f.CanDrop())
	}
	if f.Accepts(AmmoBerry) {
		t.Fatalf("hit fox should not accept another berry")
	}

	for i := 0; i < 7; i++ {
		f.Update(0.25)
		if f.State() != FoxHit {
			t.Fatalf("step %d: state=%s, want hit", i+1, f.State())
		}
		if math.Abs(f.x-400) > foxVibrateAmp {
			t.Fatalf("vibration drifted too far: x=%.2f", f.x)
		}
	}
	f.Update(0.25)
	if f.State() != FoxFed {
		t.Fatalf("after 2s state=%s, want fed", f.State())
	}
	if f.Speed() != 1 || f.BounceHeight() != 5 {
		t.Fatalf("fed fox speed=%v bounce=%v, want re-rolled 1/5", f.Speed(), f.BounceHeight())
	}
	f.Update(FixedStep)
	if f.x >= 400 {
		t.Fatalf("fed fox should resume trotting left, x=%.2f", f.x)
	}
	if drop := f.OnHit(AmmoBerry); drop != nil || f.State() != FoxFed {
		t.Fatalf("fed fox must ignore berries")
	}
}

func TestFox_DropFlagFlipsOnce(t *testing.T) {
	f := NewFox(1, LaneUpper, &scriptedDice{floats: []float64{0.1}})
	f.x = 300
	flips := 0
	prev := f.CanDrop()
	for i := 0; i < 4; i++ {
		f.OnHit(AmmoBerry)
		f.Update(1)
		f.Update(1)
		if prev && !f.CanDrop() {
			flips++
		}
		if !prev && f.CanDrop() {
			t.Fatalf("drop flag re-armed on hit %d", i+1)
		}
		prev = f.CanDrop()
	}
	if flips != 1 {
		t.Fatalf("drop flag flipped %d times, want 1", flips)
	}
}

func TestFox_DropLandsInsideBox(t *testing.T) {
	d := NewDice(3)
	for i := 0; i < 200; i++ {
		f := NewFox(i, AllLanes[i%LaneCount], d)
		f.x = float64(100 + i)
		b := f.Bounds()
		drop := f.OnHit(AmmoBerry)
		if drop == nil {
			continue
		}
		cx, cy := drop.Bounds().Center()
		if cx < b.X-1 || cx > b.X+b.W || cy < b.Y-1 || cy > b.Y+b.H {
			t.Fatalf("drop centre (%.1f, %.1f) outside fox box %+v", cx, cy, b)
		}
		if drop.Kind == PowerupBerry {
			t.Fatalf("fox should never drop berries")
		}
	}
}

func TestFox_WeightedDropDistribution(t *testing.T) {
	const n = 1000
	d := NewDice(42)
	var counts [powerupKindCount]int
	none := 0
	for i := 0; i < n; i++ {
		f := NewFox(i, LaneMiddle, d)
		f.x = 400
		drop := f.OnHit(AmmoBerry)
		if drop == nil {
			none++
			continue
		}
		counts[drop.Kind]++
	}
	want := map[PowerupKind]float64{
		PowerupBanana:    0.40,
		PowerupPineapple: 0.30,
		PowerupApple:     0.15,
		PowerupHoney:     0.05,
	}
	for k, p := range want {
		got := float64(counts[k]) / n
		t.Logf("%-9s %.3f (want %.2f)", k, got, p)
		if math.Abs(got-p) > 0.05 {
			t.Errorf("%s rate %.3f outside tolerance of %.2f", k, got, p)
		}
	}
	if got := float64(none) / n; math.Abs(got-0.10) > 0.05 {
		t.Errorf("no-drop rate %.3f outside tolerance of 0.10", got)
	}
}

func TestFox_VibrationLastsExactly120Frames(t *testing.T) {
	f := NewFox(1, LaneUpper, &scriptedDice{ints: []int{1, 2}, floats: []float64{0.95}})
	f.x = 500
	f.OnHit(AmmoBerry)

	for i := 1; i < 120; i++ {
		f.Update(FixedStep)
		if f.State() != FoxHit {
			t.Fatalf("frame %d: state = %s, want still hit", i, f.State())
		}
	}
	f.Update(FixedStep)
	if f.State() != FoxFed {
		t.Fatalf("frame 120 (2s): state = %s, want fed", f.State())
	}
	if f.x != 500 {
		t.Fatalf("fed fox should settle at its origin, x=%.3f", f.x)
	}
}
