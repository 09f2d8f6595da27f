package game

import "math"

// FoxState is the fox's behaviour state.
type FoxState int

const (
	FoxBouncing FoxState = iota
	FoxHit
	FoxFed
)

func (s FoxState) String() string {
	switch s {
	case FoxBouncing:
		return "bouncing"
	case FoxHit:
		return "hit"
	case FoxFed:
		return "fed"
	default:
		return "unknown"
	}
}

const (
	foxSize         = 60
	foxSpawnX       = 820
	foxVibrateTime  = 2.0
	foxVibrateAmp   = 5
	foxVibrateSpeed = 20
	foxExitX        = -40
)

// Fox speeds in px per reference frame and the hop height each one uses.
var (
	foxSpeeds  = [...]float64{1, 2, 3, 4}
	foxBounces = [...]float64{5, 8, 10, 12}
)

// Fox trots left and only eats berries. Its first feeding rolls the
// weighted power-up table.
type Fox struct {
	creatureBase
	speed   float64
	state   FoxState
	timer   float64
	originX float64
	canDrop bool
}

// NewFox spawns a fox just off the right edge of the lane.
func NewFox(id int, lane Lane, dice Dice) *Fox {
	f := &Fox{
		creatureBase: creatureBase{
			id:   id,
			kind: KindFox,
			lane: ClampLane(lane),
			x:    foxSpawnX,
			w:    foxSize,
			h:    foxSize,
			dice: dice,
		},
		canDrop: true,
	}
	f.pickSpeed()
	f.y = f.baseline()
	return f
}

func (f *Fox) pickSpeed() {
	i := f.dice.Intn(len(foxSpeeds))
	f.speed = foxSpeeds[i]
	f.bounce = foxBounces[i]
}

func (f *Fox) baseline() float64 {
	return LaneY(f.lane) - f.bounce
}

// State is the current behaviour state.
func (f *Fox) State() FoxState { return f.state }

func (f *Fox) StateName() string { return f.state.String() }

// Speed is the current trot speed in px per reference frame.
func (f *Fox) Speed() float64 { return f.speed }

// BounceHeight is the hop height for the current speed.
func (f *Fox) BounceHeight() float64 { return f.bounce }

// CanDrop reports whether the one-shot drop is still armed.
func (f *Fox) CanDrop() bool { return f.canDrop }

func (f *Fox) Update(dt float64) {
	if f.state == FoxHit {
		if countDown(&f.timer, dt) {
			f.x = f.originX
			f.state = FoxFed
			f.pickSpeed()
			f.y = bounceY(f.baseline(), f.bounce, f.x)
			return
		}
		f.x = f.originX + foxVibrateAmp*math.Sin(f.timer*foxVibrateSpeed)
		return
	}
	f.x -= f.speed * frames(dt)
	f.y = bounceY(f.baseline(), f.bounce, f.x)
}

func (f *Fox) Accepts(kind AmmoKind) bool {
	return kind == AmmoBerry && f.state == FoxBouncing
}

func (f *Fox) BlocksAmmo() bool { return false }

func (f *Fox) OnHit(kind AmmoKind) *Powerup {
	if !f.Accepts(kind) {
		return nil
	}
	f.state = FoxHit
	f.timer = foxVibrateTime
	f.originX = f.x
	if !f.canDrop {
		return nil
	}
	f.canDrop = false
	kindDrop, ok := rollFoxDrop(f.dice)
	if !ok {
		return nil
	}
	b := f.Bounds()
	px := float64(randIntRange(f.dice, int(b.X), int(b.X+b.W)))
	py := float64(randIntRange(f.dice, int(b.Y), int(b.Y+b.H)))
	return NewPowerup(kindDrop, px, py)
}

func (f *Fox) Gone() bool {
	return f.x < foxExitX
}
