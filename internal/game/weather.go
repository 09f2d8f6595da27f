package game

import "math"

// WeatherKind selects which particles fall during a level.
type WeatherKind int

const (
	WeatherNone WeatherKind = iota
	WeatherLeaves
	WeatherSnow
)

func (k WeatherKind) String() string {
	switch k {
	case WeatherNone:
		return "none"
	case WeatherLeaves:
		return "leaves"
	case WeatherSnow:
		return "snow"
	default:
		return "unknown"
	}
}

const (
	burstInterval   = 2.0 // seconds between top-edge bursts
	burstMin        = 10
	burstMax        = 30
	gustInterval    = 0.1 // one particle from the left per gust tick
	swayLimit       = 15
	leafSpin        = 5 // degrees per reference frame
	windPeakFactor  = 5
	windDecayFactor = 0.05
	maxParticles    = 400
)

// Wind alternates between calm spells and gusts that build up to several
// times the base speed, then decay back.
type Wind struct {
	Base    float64
	Speed   float64
	idle    float64
	blowing float64
}

func newWind(d Dice) Wind {
	base := randFloatRange(d, 1, 2)
	return Wind{
		Base:  base,
		Speed: base,
		idle:  randFloatRange(d, 10, 15),
	}
}

// Blowing reports whether a gust is in progress.
func (w *Wind) Blowing() bool { return w.blowing > 0 }

// Step advances the wind and reports whether it is blowing this frame.
func (w *Wind) Step(dt float64, d Dice) bool {
	f := frames(dt)
	switch {
	case w.idle <= 0:
		w.blowing = randFloatRange(d, 6, 10)
		w.idle = randFloatRange(d, 10, 15)
		w.Speed = randFloatRange(d, 0.5, 1)
		return true
	case w.blowing > 0:
		if w.Speed < windPeakFactor*w.Base {
			w.Speed += randFloatRange(d, 0.05, 0.2) * f
		}
		w.blowing -= dt
		return true
	default:
		if w.Speed > w.Base {
			w.Speed -= w.Speed * windDecayFactor * f
			if w.Speed < w.Base {
				w.Speed = w.Base
			}
		} else {
			w.Speed = w.Base
			w.idle -= dt
		}
		return false
	}
}

// Particle is a falling leaf or snowflake.
type Particle struct {
	X, Y       float64
	Size       float64
	Rotation   float64 // degrees, leaves only
	Variant    int
	fall       float64
	swayDir    float64
	sway       float64
	resistance float64
}

// Weather owns the wind and the particle field of a level.
type Weather struct {
	Kind      WeatherKind
	Wind      Wind
	particles []Particle
	burst     float64
	gust      float64
}

// NewWeather creates the particle system for kind. WeatherNone yields nil.
func NewWeather(kind WeatherKind, d Dice) *Weather {
	if kind == WeatherNone {
		return nil
	}
	return &Weather{Kind: kind, Wind: newWind(d)}
}

// Particles returns the live particles.
func (w *Weather) Particles() []Particle {
	if w == nil {
		return nil
	}
	return w.particles
}

func (w *Weather) newParticle(d Dice, x, y float64) Particle {
	p := Particle{
		X:       x,
		Y:       y,
		fall:    randFloatRange(d, 1, 2),
		swayDir: 1,
	}
	if d.Intn(2) == 0 {
		p.swayDir = -1
	}
	switch w.Kind {
	case WeatherLeaves:
		p.Size = 20
		p.Variant = d.Intn(2)
	case WeatherSnow:
		p.Size = float64(randIntRange(d, 10, 20))
		p.resistance = randFloatRange(d, 0.5, 1.0)
	}
	return p
}

// Step moves particles and spawns new ones.
func (w *Weather) Step(dt float64, d Dice) {
	if w == nil {
		return
	}
	f := frames(dt)
	blowing := w.Wind.Step(dt, d)

	kept := w.particles[:0]
	for _, p := range w.particles {
		if blowing {
			push := w.Wind.Speed
			if w.Kind == WeatherSnow {
				push *= p.resistance
			}
			p.X += push * f
		} else {
			p.sway += p.swayDir * f
			if math.Abs(p.sway) > swayLimit {
				p.swayDir = -p.swayDir
			}
			p.X += p.swayDir * f
			if w.Kind == WeatherLeaves {
				p.Rotation = math.Mod(p.Rotation+leafSpin*f, 360)
			}
		}
		p.Y += p.fall * f
		if p.Y > ScreenHeight {
			continue
		}
		kept = append(kept, p)
	}
	w.particles = kept

	w.burst -= dt
	if w.burst <= 0 {
		n := randIntRange(d, burstMin, burstMax)
		for i := 0; i < n; i++ {
			w.spawn(w.newParticle(d, float64(d.Intn(ScreenWidth+1)), float64(-d.Intn(101))))
		}
		w.burst = burstInterval
	}
	if blowing {
		w.gust -= dt
		if w.gust <= 0 {
			w.spawn(w.newParticle(d, -20, float64(d.Intn(ScreenHeight+1))))
			w.gust = gustInterval
		}
	}
}

func (w *Weather) spawn(p Particle) {
	if len(w.particles) >= maxParticles {
		return
	}
	w.particles = append(w.particles, p)
}
