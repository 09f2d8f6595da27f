package game

import "testing"

func TestRabbit_CarrotFeedsAfterVibration(t *testing.T) {
	rb := NewRabbit(1, LaneUpper, &scriptedDice{ints: []int{0, 90}})
	rb.x = 400

	if drop := rb.OnHit(AmmoCarrot); drop != nil {
		t.Fatalf("roll 91 should not drop a berry, got %s", drop.Kind)
	}
	if rb.State() != RabbitHit {
		t.Fatalf("state = %s, want hit", rb.State())
	}

	// 1.5s of vibration in quarter-second frames.
	for i := 0; i < 5; i++ {
		rb.Update(0.25)
		if rb.State() != RabbitHit {
			t.Fatalf("step %d: state = %s, want still hit", i+1, rb.State())
		}
		if rb.x != 400 {
			t.Fatalf("rabbit should not move while eating, x=%.1f", rb.x)
		}
		if dy := rb.y - rb.restY(); dy != 2 && dy != -2 {
			t.Fatalf("vibration offset = %.1f, want ±2", dy)
		}
	}
	rb.Update(0.25)
	if rb.State() != RabbitFed {
		t.Fatalf("after 1.5s state = %s, want fed", rb.State())
	}
	if !rb.Immune() || rb.Direction() != 1 || rb.CanDrop() {
		t.Fatalf("fed rabbit: immune=%v direction=%v canDrop=%v", rb.Immune(), rb.Direction(), rb.CanDrop())
	}
	rb.Update(0.25)
	if rb.x <= 400 {
		t.Fatalf("fed rabbit should head right, x=%.1f", rb.x)
	}
	if rb.Accepts(AmmoCarrot) {
		t.Fatalf("fed rabbit should not accept carrots")
	}
}

func TestRabbit_BerryHasNoEffect(t *testing.T) {
	rb := NewRabbit(1, LaneMiddle, &scriptedDice{})
	rb.x = 500
	before := *rb

	if rb.Accepts(AmmoBerry) || rb.Accepts(AmmoHoney) {
		t.Fatalf("rabbit should only accept carrots")
	}
	if drop := rb.OnHit(AmmoBerry); drop != nil {
		t.Fatalf("berry hit dropped %s", drop.Kind)
	}
	if *rb != before {
		t.Fatalf("berry hit changed rabbit state: %+v -> %+v", before, *rb)
	}
}

func TestRabbit_BerryDropAtCenter(t *testing.T) {
	rb := NewRabbit(1, LaneLower, &scriptedDice{ints: []int{0, 10}})
	rb.x = 300
	drop := rb.OnHit(AmmoCarrot)
	if drop == nil || drop.Kind != PowerupBerry {
		t.Fatalf("roll 11 should drop a berry, got %v", drop)
	}
	cx, cy := rb.Bounds().Center()
	px, py := drop.Bounds().Center()
	if px != cx || py != cy {
		t.Fatalf("berry centred at (%.1f, %.1f), want rabbit centre (%.1f, %.1f)", px, py, cx, cy)
	}
	if drop := rb.OnHit(AmmoCarrot); drop != nil {
		t.Fatalf("second carrot on an eating rabbit should do nothing")
	}
}

func TestRabbit_AngryAtLeftEdge(t *testing.T) {
	rb := NewRabbit(1, LaneUpper, &scriptedDice{})
	rb.x = 0.5
	rb.Update(0.1)
	if rb.State() != RabbitAngry {
		t.Fatalf("state = %s, want angry", rb.State())
	}
	if !rb.BlocksAmmo() || rb.CanDrop() || rb.Direction() != 1 {
		t.Fatalf("angry rabbit: blocks=%v canDrop=%v dir=%v", rb.BlocksAmmo(), rb.CanDrop(), rb.Direction())
	}
	if drop := rb.OnHit(AmmoCarrot); drop != nil || rb.State() != RabbitAngry {
		t.Fatalf("carrot on angry rabbit should be ignored")
	}
}

func TestRabbit_ResetAtRightEdgeIsIdempotent(t *testing.T) {
	rb := NewRabbit(1, LaneBottom, &scriptedDice{})
	rb.state = RabbitAngry
	rb.direction = 1
	rb.canDrop = false
	rb.x = ScreenWidth - 0.1
	rb.Update(0.1)
	if rb.State() != RabbitBouncing || rb.x != rabbitSpawnX || !rb.CanDrop() || rb.Direction() != -1 {
		t.Fatalf("rabbit past right edge did not reset: %+v", *rb)
	}

	rb.Reset()
	once := *rb
	rb.Reset()
	if *rb != once {
		t.Fatalf("second Reset changed state: %+v -> %+v", once, *rb)
	}
}

func TestRabbit_VibrationLastsExactly90Frames(t *testing.T) {
	rb := NewRabbit(1, LaneMiddle, &scriptedDice{ints: []int{0, 90}})
	rb.x = 400
	rb.OnHit(AmmoCarrot)

	for i := 1; i < 90; i++ {
		rb.Update(FixedStep)
		if rb.State() != RabbitHit {
			t.Fatalf("frame %d: state = %s, want still hit", i, rb.State())
		}
	}
	rb.Update(FixedStep)
	if rb.State() != RabbitFed {
		t.Fatalf("frame 90 (1.5s): state = %s, want fed", rb.State())
	}
	if rb.VibrateRemaining() != 0 {
		t.Fatalf("vibrate timer = %v, want 0", rb.VibrateRemaining())
	}
}
