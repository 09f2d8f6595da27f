package game

// BearState is the bear's behaviour state.
type BearState int

const (
	BearApproaching BearState = iota
	BearDescending            // sinking into the bush before a teleport
	BearDefeated
)

func (s BearState) String() string {
	switch s {
	case BearApproaching:
		return "approaching"
	case BearDescending:
		return "descending"
	case BearDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

const (
	bearSize          = 60
	bearSpawnX        = 820
	bearMaxHealth     = 100
	bearSpeed         = 0.5 // px per reference frame
	bearBounce        = 12
	bearDescendSpeed  = 5
	bearHitsPerRoll   = 3
	bearTeleportOdds  = 0.5
	bearHoneyDropOdds = 0.05
	berryDamage       = 1
	honeyDamage       = 10
)

// Bear lumbers toward the player. Every third hit it may sink into the
// bushes and pop up in another lane.
type Bear struct {
	creatureBase
	state         BearState
	health        int
	hitCount      int
	teleportRolls int
	canDrop       bool
}

// NewBear spawns a bear just off the right edge of the lane.
func NewBear(id int, lane Lane, dice Dice) *Bear {
	b := &Bear{
		creatureBase: creatureBase{
			id:     id,
			kind:   KindBear,
			lane:   ClampLane(lane),
			x:      bearSpawnX,
			w:      bearSize,
			h:      bearSize,
			bounce: bearBounce,
			dice:   dice,
		},
		health:  bearMaxHealth,
		canDrop: true,
	}
	b.y = b.baseline()
	return b
}

func (b *Bear) baseline() float64 {
	return LaneY(b.lane) - b.bounce
}

// State is the current behaviour state.
func (b *Bear) State() BearState { return b.state }

func (b *Bear) StateName() string { return b.state.String() }

// Health is 0..100.
func (b *Bear) Health() int { return b.health }

// HitCount counts hits since the last teleport roll.
func (b *Bear) HitCount() int { return b.hitCount }

// TeleportRolls counts how many times the teleport chance was rolled.
func (b *Bear) TeleportRolls() int { return b.teleportRolls }

// Descending reports whether the bear is mid teleport and invulnerable.
func (b *Bear) Descending() bool { return b.state == BearDescending }

// Fed reports whether the bear has been defeated.
func (b *Bear) Fed() bool { return b.state == BearDefeated }

// Threatening reports whether the bear still counts toward the loss check.
func (b *Bear) Threatening() bool {
	return b.state == BearApproaching || b.state == BearDescending
}

func (b *Bear) Update(dt float64) {
	f := frames(dt)
	switch b.state {
	case BearDescending:
		floor := LaneY(b.lane)
		b.y += bearDescendSpeed * f
		if b.y >= floor {
			b.y = floor
			b.teleport()
		}
	case BearApproaching:
		b.x -= bearSpeed * f
		b.y = bounceY(b.baseline(), b.bounce, b.x)
	}
}

func (b *Bear) teleport() {
	b.lane = randomLane(b.dice)
	b.y = b.baseline()
	b.state = BearApproaching
}

func (b *Bear) Accepts(kind AmmoKind) bool {
	if b.state != BearApproaching {
		return false
	}
	return kind == AmmoBerry || kind == AmmoHoney
}

func (b *Bear) BlocksAmmo() bool { return false }

func (b *Bear) OnHit(kind AmmoKind) *Powerup {
	if !b.Accepts(kind) {
		return nil
	}
	switch kind {
	case AmmoBerry:
		b.health -= berryDamage
	case AmmoHoney:
		b.health -= honeyDamage
	}
	// The killing hit never counts toward a teleport roll.
	if b.health <= 0 {
		b.health = 0
		b.state = BearDefeated
		if !b.canDrop {
			return nil
		}
		b.canDrop = false
		if b.dice.Float64() >= bearHoneyDropOdds {
			return nil
		}
		cx, cy := b.Bounds().Center()
		return NewPowerup(PowerupHoney, cx, cy)
	}

	b.hitCount++
	if b.hitCount >= bearHitsPerRoll {
		b.hitCount = 0
		b.teleportRolls++
		if b.dice.Float64() < bearTeleportOdds {
			b.state = BearDescending
		}
	}
	return nil
}

// Gone is never reported; a defeated bear is removed by the round.
func (b *Bear) Gone() bool { return false }
