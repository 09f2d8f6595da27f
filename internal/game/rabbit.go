package game

// RabbitState is the rabbit's behaviour state.
type RabbitState int

const (
	RabbitBouncing RabbitState = iota // hopping left toward the player
	RabbitHit                         // eating, vibrating in place
	RabbitFed                         // full and heading home, immune
	RabbitAngry                       // reached the left edge hungry
)

func (s RabbitState) String() string {
	switch s {
	case RabbitBouncing:
		return "bouncing"
	case RabbitHit:
		return "hit"
	case RabbitFed:
		return "fed"
	case RabbitAngry:
		return "angry"
	default:
		return "unknown"
	}
}

const (
	rabbitSize        = 40
	rabbitSpawnX      = 820
	rabbitBounce      = 10
	rabbitVibrateTime = 1.5
	rabbitJitter      = 2
	rabbitBerryChance = 50 // percent
)

var rabbitSpeeds = [...]float64{40, 80} // px per second

// Rabbit hops left until fed with a carrot. Fed and angry rabbits run back
// to the right edge and loop around as a fresh rabbit.
type Rabbit struct {
	creatureBase
	speed     float64
	direction float64
	state     RabbitState
	vibrate   float64
	canDrop   bool
}

// NewRabbit spawns a rabbit just off the right edge of the lane.
func NewRabbit(id int, lane Lane, dice Dice) *Rabbit {
	r := &Rabbit{
		creatureBase: creatureBase{
			id:     id,
			kind:   KindRabbit,
			lane:   ClampLane(lane),
			w:      rabbitSize,
			h:      rabbitSize,
			bounce: rabbitBounce,
			dice:   dice,
		},
		speed: rabbitSpeeds[dice.Intn(len(rabbitSpeeds))],
	}
	r.Reset()
	return r
}

// Reset restores the spawn state: off the right edge, heading left, hungry
// and able to drop again. Speed and lane are kept.
func (r *Rabbit) Reset() {
	r.x = rabbitSpawnX
	r.direction = -1
	r.state = RabbitBouncing
	r.vibrate = 0
	r.canDrop = true
	r.y = r.restY()
}

func (r *Rabbit) baseline() float64 {
	return RabbitSpawnY(r.lane) - r.bounce
}

func (r *Rabbit) restY() float64 {
	return bounceY(r.baseline(), r.bounce, r.x)
}

// State is the current behaviour state.
func (r *Rabbit) State() RabbitState { return r.state }

func (r *Rabbit) StateName() string { return r.state.String() }

// Direction is -1 moving left, +1 moving right.
func (r *Rabbit) Direction() float64 { return r.direction }

// Immune reports whether further carrots are ignored.
func (r *Rabbit) Immune() bool { return r.state == RabbitFed }

// CanDrop reports drop eligibility.
func (r *Rabbit) CanDrop() bool { return r.canDrop }

// VibrateRemaining is the seconds of eating left while hit.
func (r *Rabbit) VibrateRemaining() float64 { return r.vibrate }

// CheckAmmoType reports whether the ammo kind can feed a rabbit at all.
func (r *Rabbit) CheckAmmoType(kind AmmoKind) bool {
	return kind == AmmoCarrot
}

func (r *Rabbit) Update(dt float64) {
	if r.state == RabbitHit {
		if countDown(&r.vibrate, dt) {
			r.state = RabbitFed
			r.direction = 1
			r.canDrop = false
			r.y = r.restY()
			return
		}
		jitter := float64(rabbitJitter)
		if int(r.vibrate*10)%2 != 0 {
			jitter = -jitter
		}
		r.y = r.restY() + jitter
		return
	}

	r.x += r.speed * dt * r.direction
	r.y = r.restY()
	switch {
	case r.x < 0 && r.direction < 0 && r.state == RabbitBouncing:
		r.state = RabbitAngry
		r.direction = 1
		r.canDrop = false
	case r.x > ScreenWidth && r.direction > 0:
		r.Reset()
	}
}

func (r *Rabbit) Accepts(kind AmmoKind) bool {
	return r.CheckAmmoType(kind) && r.state != RabbitFed
}

func (r *Rabbit) BlocksAmmo() bool {
	return r.state == RabbitAngry
}

func (r *Rabbit) OnHit(kind AmmoKind) *Powerup {
	if !r.CheckAmmoType(kind) {
		return nil
	}
	if r.state != RabbitBouncing || r.direction >= 0 {
		return nil
	}
	r.state = RabbitHit
	r.vibrate = rabbitVibrateTime
	if !r.canDrop {
		return nil
	}
	if percentRoll(r.dice) > rabbitBerryChance {
		return nil
	}
	cx, cy := r.Bounds().Center()
	return NewPowerup(PowerupBerry, cx, cy)
}

// Gone rarely trips: rabbits loop back at the right edge before reaching it.
func (r *Rabbit) Gone() bool {
	return r.x < -40 || r.x > ScreenWidth+40
}
