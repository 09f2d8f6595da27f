package game

import "math"

// AmmoKind tags a projectile and decides which creatures it can affect.
type AmmoKind int

const (
	AmmoCarrot AmmoKind = iota
	AmmoBerry
	AmmoHoney
	ammoKindCount
)

// AmmoKindCount is the number of ammo kinds, also the HUD slot count.
const AmmoKindCount = int(ammoKindCount)

func (k AmmoKind) String() string {
	switch k {
	case AmmoCarrot:
		return "carrot"
	case AmmoBerry:
		return "berry"
	case AmmoHoney:
		return "honey"
	default:
		return "unknown"
	}
}

const (
	projectileSize = 25

	projectileSpeed       = 2.0 // px per reference frame
	projectileSpeedBanana = 6.0

	// Launch offset from the player's top-left corner.
	launchOffsetX = 60
	launchOffsetY = 20
)

// Fan spread in degrees while triple-shot is active.
var tripleShotAngles = [3]float64{0, 45, -45}

// Projectile is a piece of thrown food in flight.
type Projectile struct {
	ID    int
	X, Y  float64
	Speed float64 // px per reference frame
	Angle float64 // radians, 0 = rightward, positive = up
	Kind  AmmoKind

	hitHeight float64
}

// NewProjectile launches a projectile from (x, y) at angleDeg degrees.
// Berries get their hitbox clipped to the first bush band below the launch
// point so they vanish into the foliage.
func NewProjectile(id int, x, y, speed, angleDeg float64, kind AmmoKind) *Projectile {
	p := &Projectile{
		ID:        id,
		X:         x,
		Y:         y,
		Speed:     speed,
		Angle:     angleDeg * math.Pi / 180,
		Kind:      kind,
		hitHeight: projectileSize,
	}
	if kind == AmmoBerry {
		p.hitHeight = berryHitHeight(y)
	}
	return p
}

// berryHitHeight scans bush bands top to bottom and stops at the first one
// whose top is below y.
func berryHitHeight(y float64) float64 {
	for _, l := range AllLanes {
		top := LaneY(l)
		if top > y {
			return math.Min(projectileSize, top-y)
		}
	}
	return projectileSize
}

// Advance integrates the projectile over dt seconds.
func (p *Projectile) Advance(dt float64) {
	f := frames(dt)
	p.X += p.Speed * math.Cos(p.Angle) * f
	p.Y -= p.Speed * math.Sin(p.Angle) * f
}

// Bounds is the collision box.
func (p *Projectile) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: projectileSize, H: p.hitHeight}
}

// HitHeight is the collision box height after berry clipping.
func (p *Projectile) HitHeight() float64 { return p.hitHeight }

// OffPlayfield reports whether the projectile has left the screen.
func (p *Projectile) OffPlayfield() bool {
	return p.X > ScreenWidth || p.Y+projectileSize < 0 || p.Y > ScreenHeight
}

// fanAngles returns the launch angles for one trigger pull.
func fanAngles(triple bool) []float64 {
	if triple {
		return tripleShotAngles[:]
	}
	return tripleShotAngles[:1]
}
