package game

import (
	"image/color"
	"math"
)

// PowerupKind tags a collectible.
type PowerupKind int

const (
	PowerupBanana PowerupKind = iota
	PowerupPineapple
	PowerupApple
	PowerupHoney
	PowerupBerry
	powerupKindCount
)

func (k PowerupKind) String() string {
	switch k {
	case PowerupBanana:
		return "banana"
	case PowerupPineapple:
		return "pineapple"
	case PowerupApple:
		return "apple"
	case PowerupHoney:
		return "honey"
	case PowerupBerry:
		return "berry"
	default:
		return "unknown"
	}
}

// Timed reports whether the kind is a buff handled by ActiveEffects.
// Honey and berry are ammo currency instead.
func (k PowerupKind) Timed() bool {
	return k == PowerupBanana || k == PowerupPineapple || k == PowerupApple
}

// PowerupPhase is the cosmetic decay phase of a field power-up.
type PowerupPhase int

const (
	PhaseFlashing PowerupPhase = iota
	PhaseFading
	PhaseExpired
)

func (p PowerupPhase) String() string {
	switch p {
	case PhaseFlashing:
		return "flashing"
	case PhaseFading:
		return "fading"
	case PhaseExpired:
		return "expired"
	default:
		return "unknown"
	}
}

const (
	powerupSize      = 50
	powerupLifetime  = 5.0
	powerupFlashTime = 3.0
	powerupFadeTime  = 2.0
	shadeInterval    = 0.1
)

var powerupShades = [powerupKindCount][]color.RGBA{
	PowerupBanana:    {{255, 255, 100, 255}, {255, 255, 0, 255}, {255, 200, 0, 255}, {255, 165, 0, 255}},
	PowerupPineapple: {{50, 205, 50, 255}, {34, 139, 34, 255}, {255, 180, 0, 255}, {255, 165, 0, 255}},
	PowerupApple:     {{255, 50, 50, 255}, {255, 0, 0, 255}, {255, 150, 150, 255}, {255, 192, 203, 255}},
	PowerupHoney:     {{255, 183, 76, 255}, {255, 165, 0, 255}, {234, 140, 30, 255}, {210, 105, 30, 255}},
	PowerupBerry:     {{255, 70, 70, 255}, {255, 0, 0, 255}, {200, 0, 0, 255}},
}

// Powerup is a collectible lying on the playfield.
type Powerup struct {
	ID   int
	Kind PowerupKind
	X, Y float64 // top-left

	lifetime   float64
	flash      float64
	fade       float64
	shadeIndex int
	shadeClock float64
}

// NewPowerup drops a power-up centred on (cx, cy).
func NewPowerup(kind PowerupKind, cx, cy float64) *Powerup {
	return &Powerup{
		Kind:     kind,
		X:        cx - powerupSize/2,
		Y:        cy - powerupSize/2,
		lifetime: powerupLifetime,
		flash:    powerupFlashTime,
		fade:     powerupFadeTime,
	}
}

// Update runs the decay timers. Phases are cosmetic; only the lifetime
// decides expiry.
func (p *Powerup) Update(dt float64) {
	p.lifetime -= dt
	switch {
	case p.flash > 0:
		p.flash -= dt
		p.shadeClock += dt
		for p.shadeClock >= shadeInterval {
			p.shadeClock -= shadeInterval
			p.shadeIndex = (p.shadeIndex + 1) % len(powerupShades[p.Kind])
		}
	case p.fade > 0:
		p.fade -= dt
	}
}

// Phase reports the visual phase.
func (p *Powerup) Phase() PowerupPhase {
	switch {
	case p.lifetime <= 0:
		return PhaseExpired
	case p.flash > 0:
		return PhaseFlashing
	case p.fade > 0:
		return PhaseFading
	default:
		return PhaseExpired
	}
}

// Expired reports whether the power-up should be removed.
func (p *Powerup) Expired() bool {
	return p.Phase() == PhaseExpired
}

// Lifetime is the seconds left before expiry.
func (p *Powerup) Lifetime() float64 { return p.lifetime }

// Alpha flickers between hidden and opaque while fading.
func (p *Powerup) Alpha() uint8 {
	if p.Phase() != PhaseFading {
		return 255
	}
	if int(p.fade*10)%2 == 0 {
		return 0
	}
	return 255
}

// Shade is the tint currently cycled in while flashing.
func (p *Powerup) Shade() color.RGBA {
	return powerupShades[p.Kind][p.shadeIndex]
}

// PowerupColor is the base tint of a kind, for icons.
func PowerupColor(k PowerupKind) color.RGBA {
	if k < 0 || k >= powerupKindCount {
		return color.RGBA{A: 255}
	}
	return powerupShades[k][0]
}

// Bounds is the pickup box.
func (p *Powerup) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: powerupSize, H: powerupSize}
}

// pullToward moves the power-up step pixels toward (tx, ty).
func (p *Powerup) pullToward(tx, ty, step float64) {
	dx, dy := tx-p.X, ty-p.Y
	dist := dx*dx + dy*dy
	if dist == 0 {
		return
	}
	d := math.Sqrt(dist)
	if d <= step {
		p.X, p.Y = tx, ty
		return
	}
	p.X += dx / d * step
	p.Y += dy / d * step
}

// Weighted fox drop. The residual 10% drops nothing.
var foxDropTable = [...]struct {
	kind   PowerupKind
	chance float64
}{
	{PowerupBanana, 0.40},
	{PowerupPineapple, 0.30},
	{PowerupApple, 0.15},
	{PowerupHoney, 0.05},
}

// rollFoxDrop picks a power-up kind from the fox table.
func rollFoxDrop(d Dice) (PowerupKind, bool) {
	r := d.Float64()
	acc := 0.0
	for _, e := range foxDropTable {
		acc += e.chance
		if r < acc {
			return e.kind, true
		}
	}
	return 0, false
}
