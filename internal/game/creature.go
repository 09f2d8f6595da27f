package game

import (
	"fmt"
	"math"
)

// CreatureKind identifies a creature variant.
type CreatureKind int

const (
	KindRabbit CreatureKind = iota
	KindFox
	KindBear
)

func (k CreatureKind) String() string {
	switch k {
	case KindRabbit:
		return "rabbit"
	case KindFox:
		return "fox"
	case KindBear:
		return "bear"
	default:
		return "unknown"
	}
}

func (k CreatureKind) prefix() string {
	switch k {
	case KindRabbit:
		return "R"
	case KindFox:
		return "F"
	case KindBear:
		return "B"
	default:
		return "?"
	}
}

// Creature is the uniform contract the round drives every animal through.
type Creature interface {
	ID() int
	Kind() CreatureKind
	Label() string
	Lane() Lane
	StateName() string
	Update(dt float64)
	Bounds() Rect
	// Accepts reports whether a projectile of this kind is resolved against
	// the creature right now.
	Accepts(kind AmmoKind) bool
	// BlocksAmmo reports whether any overlapping projectile is swallowed
	// without effect, regardless of kind.
	BlocksAmmo() bool
	// OnHit applies the hit transition and returns a dropped power-up, if any.
	OnHit(kind AmmoKind) *Powerup
	// Gone reports whether the creature left the playfield for good.
	Gone() bool
}

// creatureBase holds the fields every variant shares.
type creatureBase struct {
	id     int
	kind   CreatureKind
	lane   Lane
	x, y   float64
	w, h   float64
	bounce float64
	dice   Dice
}

func (c *creatureBase) ID() int            { return c.id }
func (c *creatureBase) Kind() CreatureKind { return c.kind }
func (c *creatureBase) Lane() Lane         { return c.lane }

func (c *creatureBase) Label() string {
	return fmt.Sprintf("%s%d", c.kind.prefix(), c.id)
}

func (c *creatureBase) Bounds() Rect {
	return Rect{X: c.x, Y: c.y, W: c.w, H: c.h}
}

// bounceY is the position-driven hop shared by every creature.
func bounceY(baseline, height, x float64) float64 {
	return baseline + float64(int(height*math.Sin(x/20)))
}
