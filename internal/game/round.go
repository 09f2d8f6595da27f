package game

import (
	"fmt"
	"math"
)

// Command is an input the round understands. Front-ends translate keys
// into these.
type Command int

const (
	CmdMoveLaneUp Command = iota
	CmdMoveLaneDown
	CmdSelectAmmoLeft
	CmdSelectAmmoRight
	CmdFireSelected
	CmdFireCarrot
	CmdFireBerry
	CmdFireHoney
)

func (c Command) String() string {
	switch c {
	case CmdMoveLaneUp:
		return "move_lane_up"
	case CmdMoveLaneDown:
		return "move_lane_down"
	case CmdSelectAmmoLeft:
		return "select_ammo_left"
	case CmdSelectAmmoRight:
		return "select_ammo_right"
	case CmdFireSelected:
		return "fire_selected"
	case CmdFireCarrot:
		return "fire_carrot"
	case CmdFireBerry:
		return "fire_berry"
	case CmdFireHoney:
		return "fire_honey"
	default:
		return "unknown"
	}
}

const (
	rabbitSpawnInterval = 0.75
	foxSpawnInterval    = 0.75
	maxRabbits          = 10
	bearAttemptInterval = 30.0
	bearChancePerHoney  = 20 // percent
	bearHitFlash        = 0.2
	clockSize           = 40
	applePullSpeed      = 5 // px per reference frame
	berryPickupAmmo     = 5
	honeyPickupAmmo     = 1
)

// RoundOption configures a Round at construction.
type RoundOption func(*Round)

// WithSeed seeds the round's random source.
func WithSeed(seed int64) RoundOption {
	return func(r *Round) { r.dice, r.seed = NewDice(seed), seed }
}

// WithDice injects a random source, typically scripted rolls in tests.
func WithDice(d Dice) RoundOption {
	return func(r *Round) { r.dice = d }
}

// WithVerbose enables per-frame movement entries in the round log.
func WithVerbose(v bool) RoundOption {
	return func(r *Round) { r.log = NewRoundLog(v) }
}

// WithTextMeasure sets how ticker headlines are measured.
func WithTextMeasure(m MeasureFunc) RoundOption {
	return func(r *Round) { r.measure = m }
}

// WithHeadlines replaces the ticker headlines.
func WithHeadlines(h []string) RoundOption {
	return func(r *Round) { r.ticker = NewTickerState(h, BearHUDBox) }
}

// WithoutSpawns disables the automatic rabbit, fox and bear spawners so a
// scenario can place creatures by hand.
func WithoutSpawns() RoundOption {
	return func(r *Round) { r.spawning = false }
}

// Round is the per-level director. It owns every entity and is stepped
// once per rendered frame from a single goroutine.
type Round struct {
	level   Level
	dice    Dice
	seed    int64
	log     *RoundLog
	measure MeasureFunc

	frame    int
	elapsed  float64
	outcome  RoundOutcome
	spawning bool
	nextID   int

	player      *Player
	effects     ActiveEffects
	creatures   []Creature
	projectiles []*Projectile
	powerups    []*Powerup

	bear          *Bear
	lastBear      *Bear
	clock         *Rect
	clockDropped  bool
	clockClaimed  bool
	bearFlash     float64
	rabbitTimer   float64
	foxTimer      float64
	bearTimer     float64
	ticker        TickerState
	weather       *Weather
	events        []Event
	stats         RoundStats
	resolvedFrame map[int]bool
}

// NewRound sets up level n (1-based, clamped) ready for its first Step.
func NewRound(n int, opts ...RoundOption) *Round {
	r := &Round{
		level:         LevelByNumber(n),
		log:           NewRoundLog(false),
		measure:       EstimateWidth,
		spawning:      true,
		rabbitTimer:   rabbitSpawnInterval,
		foxTimer:      foxSpawnInterval,
		bearTimer:     bearAttemptInterval,
		ticker:        NewTickerState(DefaultHeadlines, BearHUDBox),
		resolvedFrame: map[int]bool{},
	}
	for _, o := range opts {
		o(r)
	}
	if r.dice == nil {
		r.dice, r.seed = NewDice(1), 1
	}
	r.player = newPlayer(r.level.StartAmmo)
	r.weather = NewWeather(r.level.Weather, r.dice)
	r.log.Add(0, "--", "round", "start", fmt.Sprintf("level=%d %s", r.level.Number, r.level.Name), float64(r.level.Number))
	return r
}

func (r *Round) Level() Level           { return r.level }
func (r *Round) Frame() int             { return r.frame }
func (r *Round) Seed() int64            { return r.seed }
func (r *Round) Elapsed() float64       { return r.elapsed }
func (r *Round) Outcome() RoundOutcome  { return r.outcome }
func (r *Round) Log() *RoundLog         { return r.log }
func (r *Round) Player() *Player        { return r.player }
func (r *Round) Effects() ActiveEffects { return r.effects }
func (r *Round) Stats() RoundStats      { return r.stats }

// Bear is the bear on the field, nil when none.
func (r *Round) Bear() *Bear { return r.bear }

// Creatures returns the live creatures in spawn order.
func (r *Round) Creatures() []Creature { return r.creatures }

// Projectiles returns projectiles in flight in spawn order.
func (r *Round) Projectiles() []*Projectile { return r.projectiles }

// Powerups returns the uncollected field power-ups.
func (r *Round) Powerups() []*Powerup { return r.powerups }

// Clock is the level-progress marker, nil until a bear is defeated.
func (r *Round) Clock() *Rect { return r.clock }

// Ticker exposes the news ticker state.
func (r *Round) Ticker() TickerState { return r.ticker }

// Weather is the level's particle system, nil in summer.
func (r *Round) Weather() *Weather { return r.weather }

// DrainEvents returns the events queued since the last call and clears
// the queue.
func (r *Round) DrainEvents() []Event {
	ev := r.events
	r.events = nil
	return ev
}

func (r *Round) newID() int {
	r.nextID++
	return r.nextID
}

func (r *Round) emit(kind EventKind, actor, detail string) {
	r.events = append(r.events, Event{Frame: r.frame, Kind: kind, Actor: actor, Detail: detail})
}

// AddCreature places a creature on the field. The spawners use it too.
func (r *Round) AddCreature(c Creature) {
	r.creatures = append(r.creatures, c)
	b := c.Bounds()
	r.log.Add(r.frame, c.Label(), "spawn", c.Kind().String(), fmt.Sprintf("lane=%s x=%.0f", c.Lane(), b.X), b.X)
	if bear, ok := c.(*Bear); ok {
		r.bear = bear
		r.lastBear = bear
		r.stats.BearsSpawned++
		r.emit(EventBearSpawned, bear.Label(), bear.Lane().String())
	}
}

// SpawnRabbit adds a rabbit in lane using the round's random source.
func (r *Round) SpawnRabbit(lane Lane) *Rabbit {
	rb := NewRabbit(r.newID(), lane, r.dice)
	r.stats.RabbitsSpawned++
	r.AddCreature(rb)
	return rb
}

// SpawnFox adds a fox in lane.
func (r *Round) SpawnFox(lane Lane) *Fox {
	f := NewFox(r.newID(), lane, r.dice)
	r.stats.FoxesSpawned++
	r.AddCreature(f)
	return f
}

// SpawnBear adds a bear in lane. It is a no-op returning the current bear
// when one is already present.
func (r *Round) SpawnBear(lane Lane) *Bear {
	if r.bear != nil {
		return r.bear
	}
	b := NewBear(r.newID(), lane, r.dice)
	r.AddCreature(b)
	return b
}

// DropPowerup places a power-up centred on (cx, cy).
func (r *Round) DropPowerup(kind PowerupKind, cx, cy float64) *Powerup {
	p := NewPowerup(kind, cx, cy)
	r.addPowerup(p, "--")
	return p
}

func (r *Round) addPowerup(p *Powerup, from string) {
	p.ID = r.newID()
	r.powerups = append(r.powerups, p)
	r.stats.PowerupsDropped++
	r.log.Add(r.frame, from, "powerup", "dropped", fmt.Sprintf("%s at %.0f,%.0f", p.Kind, p.X, p.Y), float64(p.Kind))
	r.emit(EventPowerupDropped, from, p.Kind.String())
}

// BearSpawnChance is the percent chance of the next bear attempt
// succeeding, 20% per honey held, capped at 100.
func (r *Round) BearSpawnChance() int {
	return bearSpawnChance(r.player.Ammo[AmmoHoney])
}

func bearSpawnChance(honey int) int {
	c := honey * bearChancePerHoney
	if c > 100 {
		return 100
	}
	if c < 0 {
		return 0
	}
	return c
}

// Apply runs one input command. It returns whether the command changed
// anything; rejected fires and moves against the edge return false.
func (r *Round) Apply(cmd Command) bool {
	if r.outcome != OutcomePlaying {
		return false
	}
	switch cmd {
	case CmdMoveLaneUp:
		return r.move(r.player.moveUp())
	case CmdMoveLaneDown:
		return r.move(r.player.moveDown())
	case CmdSelectAmmoLeft:
		r.player.cycleAmmo(-1)
		return true
	case CmdSelectAmmoRight:
		r.player.cycleAmmo(1)
		return true
	case CmdFireSelected:
		return r.fire(r.player.Selected)
	case CmdFireCarrot:
		r.player.Selected = AmmoCarrot
		return r.fire(AmmoCarrot)
	case CmdFireBerry:
		r.player.Selected = AmmoBerry
		return r.fire(AmmoBerry)
	case CmdFireHoney:
		r.player.Selected = AmmoHoney
		return r.fire(AmmoHoney)
	}
	return false
}

func (r *Round) move(ok bool) bool {
	if ok {
		r.log.AddVerbose(r.frame, "P", "move", "lane", r.player.Lane().String(), float64(r.player.Lane()))
	}
	return ok
}

func (r *Round) fire(kind AmmoKind) bool {
	if !r.player.canFire(kind) {
		r.stats.FireRejected++
		r.log.AddVerbose(r.frame, "P", "fire", "rejected",
			fmt.Sprintf("%s ammo=%d cooldown=%.2f", kind, r.player.Ammo[kind], r.player.cooldown), r.player.cooldown)
		return false
	}
	speed := projectileSpeed
	if r.effects.Active(PowerupBanana) {
		speed = projectileSpeedBanana
	}
	x, y := r.player.launchPoint()
	angles := fanAngles(r.effects.Active(PowerupPineapple))
	for _, a := range angles {
		r.projectiles = append(r.projectiles, NewProjectile(r.newID(), x, y, speed, a, kind))
	}
	r.player.spend(kind)
	r.stats.Thrown += len(angles)
	r.log.Add(r.frame, "P", "fire", kind.String(), fmt.Sprintf("lane=%s shots=%d speed=%.0f", r.player.Lane(), len(angles), speed), float64(len(angles)))
	r.emit(EventAmmoFired, "P", kind.String())
	return true
}

// Click collects whatever sits under the pointer: the clock marker first,
// then the top-most power-up. Returns whether anything was picked.
func (r *Round) Click(x, y float64) bool {
	if r.outcome != OutcomePlaying {
		return false
	}
	if r.clock != nil && r.clock.Contains(x, y) {
		r.clockClaimed = true
		r.log.Add(r.frame, "P", "round", "clock_claimed", fmt.Sprintf("at %.0f,%.0f", x, y), 0)
		return true
	}
	for i := len(r.powerups) - 1; i >= 0; i-- {
		p := r.powerups[i]
		if !p.Bounds().Contains(x, y) {
			continue
		}
		r.powerups = append(r.powerups[:i], r.powerups[i+1:]...)
		r.collect(p, "click")
		return true
	}
	return false
}

func (r *Round) collect(p *Powerup, how string) {
	r.stats.PowerupsCollected++
	switch p.Kind {
	case PowerupBerry:
		r.player.Ammo[AmmoBerry] += berryPickupAmmo
	case PowerupHoney:
		r.player.Ammo[AmmoHoney] += honeyPickupAmmo
	default:
		if r.effects.Activate(p.Kind) {
			r.player.applyEffect(p.Kind)
			r.log.Add(r.frame, "P", "effect", "applied", p.Kind.String(), r.effects.Remaining(p.Kind))
		} else {
			r.log.Add(r.frame, "P", "effect", "extended", p.Kind.String(), r.effects.Remaining(p.Kind))
		}
	}
	r.log.Add(r.frame, "P", "powerup", "collected", fmt.Sprintf("%s via %s", p.Kind, how), float64(p.Kind))
	r.emit(EventPowerupCollected, "P", p.Kind.String())
}

// Step advances the round by dt seconds. Once the round is decided it is a
// no-op.
func (r *Round) Step(dt float64) {
	if r.outcome != OutcomePlaying {
		return
	}
	if dt < 0 {
		dt = 0
	}
	r.frame++
	r.elapsed += dt

	r.advanceTimers(dt)
	if r.spawning {
		r.spawnCreatures(dt)
		r.attemptBear(dt)
	}
	r.advanceEntities(dt)
	r.resolveCollisions()
	r.removeFinished()
	r.evaluateTerminal()
}

func (r *Round) advanceTimers(dt float64) {
	r.player.tick(dt)
	for _, k := range r.effects.Tick(dt) {
		r.player.revertEffect(k)
		r.log.Add(r.frame, "P", "effect", "expired", k.String(), 0)
		r.emit(EventEffectExpired, "P", k.String())
	}
	if r.bearFlash > 0 {
		r.bearFlash -= dt
	}
	if r.tickerVisible() {
		r.ticker.Advance(dt, r.measure)
	}
	r.weather.Step(dt, r.dice)

	for _, p := range r.powerups {
		p.Update(dt)
	}
	if r.effects.Active(PowerupApple) {
		r.pullPowerups(dt)
	}
}

// tickerVisible is true while the bear box is free.
func (r *Round) tickerVisible() bool {
	return r.bear == nil && !r.clockDropped
}

// pullPowerups drags every field power-up toward the player and collects
// those that touch.
func (r *Round) pullPowerups(dt float64) {
	pb := r.player.Bounds()
	step := applePullSpeed * frames(dt)
	kept := r.powerups[:0]
	var touched []*Powerup
	for _, p := range r.powerups {
		p.pullToward(pb.X, pb.Y, step)
		if p.Bounds().Overlaps(pb) {
			touched = append(touched, p)
			continue
		}
		kept = append(kept, p)
	}
	r.powerups = kept
	for _, p := range touched {
		r.collect(p, "apple")
	}
}

func (r *Round) spawnCreatures(dt float64) {
	r.rabbitTimer -= dt
	if r.rabbitTimer <= 0 {
		r.rabbitTimer = rabbitSpawnInterval
		if r.countKind(KindRabbit) < maxRabbits {
			r.SpawnRabbit(randomLane(r.dice))
		}
	}
	r.foxTimer -= dt
	if r.foxTimer <= 0 {
		r.foxTimer = foxSpawnInterval
		r.SpawnFox(randomLane(r.dice))
	}
}

func (r *Round) attemptBear(dt float64) {
	if r.bear != nil || r.clockDropped {
		return
	}
	r.bearTimer -= dt
	if r.bearTimer > 0 {
		return
	}
	r.bearTimer = bearAttemptInterval
	r.stats.BearAttempts++
	chance := r.BearSpawnChance()
	roll := percentRoll(r.dice)
	r.log.Add(r.frame, "--", "bear", "attempt", fmt.Sprintf("chance=%d%% roll=%d", chance, roll), float64(chance))
	if roll <= chance {
		r.SpawnBear(randomLane(r.dice))
	}
}

func (r *Round) countKind(k CreatureKind) int {
	n := 0
	for _, c := range r.creatures {
		if c.Kind() == k {
			n++
		}
	}
	return n
}

func (r *Round) advanceEntities(dt float64) {
	for _, c := range r.creatures {
		before := c.StateName()
		c.Update(dt)
		r.noteTransition(c, before)
	}
	for _, p := range r.projectiles {
		p.Advance(dt)
	}
}

// noteTransition logs a state change and raises the matching event.
func (r *Round) noteTransition(c Creature, before string) {
	after := c.StateName()
	if after == before {
		return
	}
	r.log.Add(r.frame, c.Label(), "state", "change", before+" → "+after, 0)
	switch {
	case after == RabbitFed.String() && c.Kind() == KindRabbit:
		r.stats.RabbitsFed++
		r.emit(EventCreatureFed, c.Label(), c.Kind().String())
	case after == RabbitAngry.String() && c.Kind() == KindRabbit:
		r.stats.RabbitsAngry++
	case after == FoxFed.String() && c.Kind() == KindFox:
		r.stats.FoxesFed++
		r.emit(EventCreatureFed, c.Label(), c.Kind().String())
	case after == BearDescending.String():
		r.stats.Teleports++
		r.log.Add(r.frame, c.Label(), "bear", "teleport_start", "lane="+c.Lane().String(), 0)
		r.emit(EventBearTeleport, c.Label(), c.Lane().String())
	case before == BearDescending.String():
		r.log.Add(r.frame, c.Label(), "bear", "teleport_end", "lane="+c.Lane().String(), float64(c.Lane()))
	case after == BearDefeated.String():
		r.log.Add(r.frame, c.Label(), "bear", "defeated", fmt.Sprintf("x=%.0f", c.Bounds().X), 0)
		r.emit(EventBearDefeated, c.Label(), c.Lane().String())
	}
}

// resolveCollisions tests each projectile, in spawn order, against the
// creatures in spawn order. A creature resolves at most one projectile per
// frame; later projectiles try creatures further down the list or wait for
// the next frame.
func (r *Round) resolveCollisions() {
	clear(r.resolvedFrame)
	consumed := make([]bool, len(r.projectiles))
	for i, p := range r.projectiles {
		pb := p.Bounds()
		for _, c := range r.creatures {
			if r.resolvedFrame[c.ID()] || !pb.Overlaps(c.Bounds()) {
				continue
			}
			if c.BlocksAmmo() {
				consumed[i] = true
				r.resolvedFrame[c.ID()] = true
				r.stats.Blocked++
				r.log.Add(r.frame, c.Label(), "hit", "blocked", p.Kind.String(), 0)
				break
			}
			if !c.Accepts(p.Kind) {
				continue
			}
			consumed[i] = true
			r.resolvedFrame[c.ID()] = true
			r.hit(c, p)
			break
		}
	}
	kept := r.projectiles[:0]
	for i, p := range r.projectiles {
		if !consumed[i] {
			kept = append(kept, p)
		}
	}
	r.projectiles = kept
}

func (r *Round) hit(c Creature, p *Projectile) {
	before := c.StateName()
	drop := c.OnHit(p.Kind)
	r.stats.Hits++
	r.log.Add(r.frame, c.Label(), "hit", p.Kind.String(), before+" → "+c.StateName(), 0)
	if b, ok := c.(*Bear); ok {
		r.stats.BearHits++
		r.bearFlash = bearHitFlash
		r.log.Add(r.frame, b.Label(), "bear", "health", fmt.Sprintf("%d/%d", b.Health(), bearMaxHealth), float64(b.Health()))
		r.emit(EventBearHit, b.Label(), fmt.Sprintf("%d", b.Health()))
	}
	r.noteTransition(c, before)
	if drop != nil {
		r.addPowerup(drop, c.Label())
	}
}

func (r *Round) removeFinished() {
	kept := r.creatures[:0]
	for _, c := range r.creatures {
		if b, ok := c.(*Bear); ok && b.Fed() {
			r.retireBear(b)
			continue
		}
		if c.Gone() {
			r.log.AddVerbose(r.frame, c.Label(), "spawn", "exit", fmt.Sprintf("x=%.0f", c.Bounds().X), c.Bounds().X)
			continue
		}
		kept = append(kept, c)
	}
	// Clear the tail so removed creatures can be collected.
	for i := len(kept); i < len(r.creatures); i++ {
		r.creatures[i] = nil
	}
	r.creatures = kept

	projectiles := r.projectiles[:0]
	for _, p := range r.projectiles {
		if !p.OffPlayfield() {
			projectiles = append(projectiles, p)
		}
	}
	r.projectiles = projectiles

	powerups := r.powerups[:0]
	for _, p := range r.powerups {
		if p.Expired() {
			r.stats.PowerupsExpired++
			r.log.AddVerbose(r.frame, "--", "powerup", "expired", p.Kind.String(), 0)
			continue
		}
		powerups = append(powerups, p)
	}
	r.powerups = powerups
}

// retireBear clears the bear box and drops the clock marker where the bear
// stood. Only one clock is dropped per round.
func (r *Round) retireBear(b *Bear) {
	if r.bear == b {
		r.bear = nil
	}
	r.bearFlash = 0
	if r.clockDropped {
		return
	}
	bb := b.Bounds()
	c := centeredRect(bb.X, bb.Y, clockSize, clockSize)
	c.X = clampFloat(c.X, 0, ScreenWidth-clockSize)
	c.Y = clampFloat(c.Y, 0, ScreenHeight-clockSize)
	r.clock = &c
	r.clockDropped = true
	r.log.Add(r.frame, b.Label(), "round", "clock_dropped", fmt.Sprintf("at %.0f,%.0f", c.X, c.Y), 0)
	r.emit(EventClockDropped, b.Label(), "")
}

func (r *Round) evaluateTerminal() {
	if b := r.bear; b != nil && b.Threatening() && b.Bounds().X <= playerX {
		r.outcome = OutcomeLost
		r.log.Add(r.frame, b.Label(), "round", "lost", fmt.Sprintf("bear reached player at x=%.0f", b.Bounds().X), math.Round(b.Bounds().X))
		r.emit(EventRoundLost, b.Label(), "")
		return
	}
	if r.clockClaimed {
		r.outcome = OutcomeWon
		r.clock = nil
		r.log.Add(r.frame, "P", "round", "won", fmt.Sprintf("level=%d", r.level.Number), float64(r.level.Number))
		r.emit(EventRoundWon, "P", "")
	}
}
