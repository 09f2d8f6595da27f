package game

import "testing"

// --- Scenario: Fire rules ---

func TestScenario_FireRejectedOnCooldownAndEmptyAmmo(t *testing.T) {
	r := quietRound()
	r.Player().Ammo[AmmoHoney] = 0

	if r.Apply(CmdFireHoney) {
		t.Fatalf("honey fire with zero honey should be rejected")
	}
	if !r.Apply(CmdFireCarrot) {
		t.Fatalf("first carrot should fire")
	}
	if r.Apply(CmdFireCarrot) {
		t.Fatalf("carrot during cooldown should be rejected")
	}
	r.RunFrames(31)
	if !r.Apply(CmdFireSelected) {
		t.Fatalf("carrot after cooldown should fire")
	}
	if got := r.Stats().FireRejected; got != 2 {
		t.Fatalf("rejected = %d, want 2", got)
	}
	if r.Player().Ammo[AmmoCarrot] != 5 {
		t.Fatalf("carrots are unlimited and never counted down, got %d", r.Player().Ammo[AmmoCarrot])
	}

	r.RunFrames(31)
	berries := r.Player().Ammo[AmmoBerry]
	r.Apply(CmdFireBerry)
	if r.Player().Ammo[AmmoBerry] != berries-1 {
		t.Fatalf("berry ammo = %d, want %d", r.Player().Ammo[AmmoBerry], berries-1)
	}
}

func TestScenario_TripleShotFan(t *testing.T) {
	r := quietRound()
	r.DropPowerup(PowerupPineapple, 400, 300)
	r.Click(400, 300)
	r.Apply(CmdFireCarrot)
	ps := r.Projectiles()
	if len(ps) != 3 {
		t.Fatalf("triple shot fired %d projectiles, want 3", len(ps))
	}
	for i, want := range []float64{0, 45, -45} {
		if got := ps[i].Angle * 180 / 3.141592653589793; !near(got, want, 1e-9) {
			t.Fatalf("projectile %d angle %v, want %v", i, got, want)
		}
	}
}

func TestScenario_SelectAmmoWraps(t *testing.T) {
	r := quietRound()
	r.Apply(CmdSelectAmmoLeft)
	if r.Player().Selected != AmmoHoney {
		t.Fatalf("left from carrot should wrap to honey, got %s", r.Player().Selected)
	}
	r.Apply(CmdSelectAmmoRight)
	r.Apply(CmdSelectAmmoRight)
	if r.Player().Selected != AmmoBerry {
		t.Fatalf("selected = %s, want berry", r.Player().Selected)
	}
}

func TestScenario_LaneMovesClamp(t *testing.T) {
	r := quietRound()
	if r.Apply(CmdMoveLaneUp) {
		t.Fatalf("moving up from the upper lane should be rejected")
	}
	for i := 0; i < 5; i++ {
		r.Apply(CmdMoveLaneDown)
	}
	if r.Player().Lane() != LaneBottom {
		t.Fatalf("lane = %s, want bottom", r.Player().Lane())
	}
	if got := r.Player().Bounds().Y; got != PlayerStandY(LaneBottom) {
		t.Fatalf("player y = %v", got)
	}
}

// --- Scenario: Collisions ---

func TestScenario_CarrotFeedsRabbit(t *testing.T) {
	r := quietRound(WithDice(&scriptedDice{ints: []int{0, 0}}))
	rb := r.SpawnRabbit(LaneUpper)
	rb.x = 110
	r.Apply(CmdFireCarrot)
	r.Step(FixedStep)
	dumpLog(t, r)

	if rb.State() != RabbitHit {
		t.Fatalf("rabbit state = %s, want hit", rb.State())
	}
	if len(r.Projectiles()) != 0 {
		t.Fatalf("carrot should be consumed")
	}
	if len(r.Powerups()) != 1 || r.Powerups()[0].Kind != PowerupBerry {
		t.Fatalf("roll 1 should drop a berry, field has %d power-ups", len(r.Powerups()))
	}

	r.RunUntil(func(r *Round) bool { return rb.State() == RabbitFed }, 2*FrameRate)
	if rb.State() != RabbitFed {
		t.Fatalf("rabbit never fed")
	}
	if r.Stats().RabbitsFed != 1 {
		t.Fatalf("rabbits fed = %d, want 1", r.Stats().RabbitsFed)
	}
}

func TestScenario_AngryRabbitBlocksAnyAmmo(t *testing.T) {
	r := quietRound()
	rb := r.SpawnRabbit(LaneUpper)
	rb.state = RabbitAngry
	rb.direction = 1
	rb.canDrop = false
	rb.x = 110

	r.Apply(CmdFireBerry)
	r.Step(FixedStep)
	if len(r.Projectiles()) != 0 {
		t.Fatalf("angry rabbit should swallow the berry")
	}
	if rb.State() != RabbitAngry {
		t.Fatalf("blocked shot changed rabbit to %s", rb.State())
	}
	if r.Stats().Blocked != 1 || r.Stats().Hits != 0 {
		t.Fatalf("blocked=%d hits=%d, want 1/0", r.Stats().Blocked, r.Stats().Hits)
	}
	if !r.Log().HasEntry("hit", "blocked", "berry") {
		t.Fatalf("missing blocked log entry")
	}
}

func TestScenario_BerryPassesThroughRabbit(t *testing.T) {
	r := quietRound()
	rb := r.SpawnRabbit(LaneUpper)
	rb.x = 110
	r.Apply(CmdFireBerry)
	r.Step(FixedStep)
	if rb.State() != RabbitBouncing {
		t.Fatalf("berry changed rabbit to %s", rb.State())
	}
	if len(r.Projectiles()) != 1 {
		t.Fatalf("berry should keep flying past a hungry rabbit")
	}
}

func TestScenario_OneResolvePerCreaturePerFrame(t *testing.T) {
	r := quietRound()
	b := r.SpawnBear(LaneUpper)
	b.x = 300
	r.projectiles = append(r.projectiles,
		NewProjectile(r.newID(), 290, 120, projectileSpeed, 0, AmmoBerry),
		NewProjectile(r.newID(), 290, 120, projectileSpeed, 0, AmmoBerry),
	)

	r.Step(FixedStep)
	if b.Health() != 99 || len(r.Projectiles()) != 1 {
		t.Fatalf("frame 1: health=%d projectiles=%d, want 99/1", b.Health(), len(r.Projectiles()))
	}
	r.Step(FixedStep)
	if b.Health() != 98 || len(r.Projectiles()) != 0 {
		t.Fatalf("frame 2: health=%d projectiles=%d, want 98/0", b.Health(), len(r.Projectiles()))
	}
	if r.Snapshot().Bear.Flashing != true {
		t.Fatalf("bear box should flash after a hit")
	}
}

// --- Scenario: Bear encounter ---

func TestScenario_BearReachesPlayer(t *testing.T) {
	r := quietRound()
	b := r.SpawnBear(LaneLower)
	b.x = playerX + 0.4
	r.Step(FixedStep)
	if r.Outcome() != OutcomeLost {
		t.Fatalf("outcome = %s, want lost", r.Outcome())
	}
	found := false
	for _, e := range r.DrainEvents() {
		if e.Kind == EventRoundLost {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing round lost event")
	}
	frame := r.Frame()
	r.Step(FixedStep)
	if r.Frame() != frame {
		t.Fatalf("decided round kept stepping")
	}
	if r.Apply(CmdFireCarrot) {
		t.Fatalf("decided round accepted input")
	}
}

func TestScenario_DescendingBearStillLoses(t *testing.T) {
	r := quietRound()
	b := r.SpawnBear(LaneMiddle)
	b.state = BearDescending
	b.x = playerX
	b.y = LaneY(LaneMiddle) - 100
	r.Step(FixedStep)
	if !b.Descending() {
		t.Fatalf("bear left descent early")
	}
	if r.Outcome() != OutcomeLost {
		t.Fatalf("outcome = %s, want lost", r.Outcome())
	}
	if !r.Log().HasEntry("round", "lost", "") {
		t.Fatalf("missing lost log entry")
	}
}

func TestScenario_HitResolvesBeforeLossCheck(t *testing.T) {
	r := quietRound()
	b := r.SpawnBear(LaneUpper)
	b.x = playerX + 0.4
	b.health = 1
	r.projectiles = append(r.projectiles, NewProjectile(r.newID(), 30, 110, projectileSpeed, 0, AmmoBerry))

	r.Step(FixedStep)
	dumpLog(t, r)
	if r.Outcome() != OutcomePlaying {
		t.Fatalf("outcome = %s, want playing: the lethal berry lands first", r.Outcome())
	}
	if r.Bear() != nil {
		t.Fatalf("defeated bear should be removed")
	}
	clock := r.Clock()
	if clock == nil {
		t.Fatalf("defeat should drop the clock marker")
	}
	if s := r.Snapshot(); s.Bear.Present {
		t.Fatalf("bear HUD should be cleared")
	}

	cx, cy := clock.Center()
	if !r.Click(cx, cy) {
		t.Fatalf("click on clock missed")
	}
	r.Step(FixedStep)
	if r.Outcome() != OutcomeWon {
		t.Fatalf("outcome = %s, want won", r.Outcome())
	}
	if got := r.Summarize().Description; got != "clock_claimed_after_bear_fed" {
		t.Fatalf("description = %q", got)
	}
}

func TestScenario_NoHoneyNoBear(t *testing.T) {
	r := NewRound(1, WithSeed(3))
	r.RunFrames(31 * FrameRate)
	dumpSummary(t, r)
	s := r.Stats()
	if s.BearAttempts != 1 {
		t.Fatalf("bear attempts = %d, want 1 after 31s", s.BearAttempts)
	}
	if s.BearsSpawned != 0 {
		t.Fatalf("bear spawned with no honey")
	}
	if n := r.countKind(KindRabbit); n > maxRabbits {
		t.Fatalf("%d rabbits alive, cap is %d", n, maxRabbits)
	}
	if s.FoxesSpawned < 30 {
		t.Fatalf("foxes spawned = %d, expected one every 0.75s", s.FoxesSpawned)
	}
}

func TestScenario_WinterHoneyGuaranteesBear(t *testing.T) {
	r := NewRound(3, WithSeed(4))
	if r.BearSpawnChance() != 100 {
		t.Fatalf("five honey should give 100%% spawn chance, got %d", r.BearSpawnChance())
	}
	frame := r.RunUntil(func(r *Round) bool { return r.Bear() != nil }, 31*FrameRate)
	if frame < 0 {
		dumpSummary(t, r)
		t.Fatalf("bear never spawned")
	}
	if !r.Log().HasEntry("bear", "attempt", "chance=100%") {
		t.Fatalf("missing attempt log entry")
	}
	if r.Snapshot().Weather != WeatherSnow {
		t.Fatalf("level 3 should snow")
	}
}

func TestBearSpawnChance_Capped(t *testing.T) {
	tests := []struct{ honey, want int }{{0, 0}, {1, 20}, {3, 60}, {5, 100}, {9, 100}}
	for _, tt := range tests {
		if got := bearSpawnChance(tt.honey); got != tt.want {
			t.Errorf("bearSpawnChance(%d) = %d, want %d", tt.honey, got, tt.want)
		}
	}
}

// --- Scenario: Autopilot ---

func TestScenario_SeededRoundsAreDeterministic(t *testing.T) {
	run := func() string {
		r := NewRound(2, WithSeed(99))
		r.RunPiloted(NewAutopilot(), 40*FrameRate)
		return r.Log().Format()
	}
	a, b := run(), run()
	if a != b {
		t.Fatalf("same seed produced different logs")
	}
}

func TestScenario_AutopilotFeedsWildlife(t *testing.T) {
	r := NewRound(1, WithSeed(42))
	r.RunPiloted(NewAutopilot(), 30*FrameRate)
	dumpSummary(t, r)
	s := r.Stats()
	if s.Thrown == 0 || s.Hits == 0 {
		t.Fatalf("autopilot threw %d and hit %d", s.Thrown, s.Hits)
	}
	if s.RabbitsFed+s.FoxesFed == 0 {
		t.Fatalf("autopilot fed nothing in 30s")
	}
}
