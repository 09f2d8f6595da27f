package game

import "image/color"

// CreatureView is a read-only copy of one creature for renderers.
type CreatureView struct {
	ID      int
	Label   string
	Kind    CreatureKind
	State   string
	Lane    Lane
	Bounds  Rect
	Visible float64 // height left after bush occlusion
}

// ProjectileView is a read-only copy of a projectile.
type ProjectileView struct {
	ID     int
	Kind   AmmoKind
	Bounds Rect
}

// PowerupView is a read-only copy of a field power-up.
type PowerupView struct {
	ID     int
	Kind   PowerupKind
	Bounds Rect
	Phase  PowerupPhase
	Alpha  uint8
	Shade  color.RGBA
}

// BearHUD drives the bear health box.
type BearHUD struct {
	Present    bool
	Health     int
	MaxHealth  int
	Flashing   bool
	FlashShade color.RGBA
	Teleport   bool
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Frame       int
	Level       Level
	Outcome     RoundOutcome
	Player      Rect
	PlayerLane  Lane
	Throwing    bool
	Ammo        [ammoKindCount]int
	Selected    AmmoKind
	Effects     [powerupKindCount]float64
	Creatures   []CreatureView
	Projectiles []ProjectileView
	Powerups    []PowerupView
	Bear        BearHUD
	Clock       *Rect
	Ticker      TickerState
	ShowTicker  bool
	Weather     WeatherKind
	Wind        float64
	Windy       bool
	Particles   []Particle
}

var bearFlashShades = [...]color.RGBA{
	{255, 255, 0, 255},
	{255, 215, 0, 255},
	{255, 255, 102, 255},
}

// Snapshot copies the current state. Nothing in it aliases round-owned
// memory.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		Frame:      r.frame,
		Level:      r.level,
		Outcome:    r.outcome,
		Player:     r.player.Bounds(),
		PlayerLane: r.player.Lane(),
		Throwing:   r.player.Throwing(),
		Ammo:       r.player.Ammo,
		Selected:   r.player.Selected,
		Ticker:     r.ticker,
		ShowTicker: r.tickerVisible(),
		Weather:    r.level.Weather,
	}
	s.Ticker.Headlines = append([]string(nil), r.ticker.Headlines...)
	for k := range s.Effects {
		s.Effects[k] = r.effects.Remaining(PowerupKind(k))
	}
	for _, c := range r.creatures {
		b := c.Bounds()
		s.Creatures = append(s.Creatures, CreatureView{
			ID:      c.ID(),
			Label:   c.Label(),
			Kind:    c.Kind(),
			State:   c.StateName(),
			Lane:    c.Lane(),
			Bounds:  b,
			Visible: VisibleHeight(b),
		})
	}
	for _, p := range r.projectiles {
		s.Projectiles = append(s.Projectiles, ProjectileView{ID: p.ID, Kind: p.Kind, Bounds: p.Bounds()})
	}
	for _, p := range r.powerups {
		s.Powerups = append(s.Powerups, PowerupView{
			ID:     p.ID,
			Kind:   p.Kind,
			Bounds: p.Bounds(),
			Phase:  p.Phase(),
			Alpha:  p.Alpha(),
			Shade:  p.Shade(),
		})
	}
	if b := r.bear; b != nil {
		s.Bear = BearHUD{
			Present:   true,
			Health:    b.Health(),
			MaxHealth: bearMaxHealth,
			Flashing:  r.bearFlash > 0,
			Teleport:  b.Descending(),
		}
		if s.Bear.Flashing {
			s.Bear.FlashShade = bearFlashShades[r.frame%len(bearFlashShades)]
		}
	}
	if r.clock != nil {
		c := *r.clock
		s.Clock = &c
	}
	if r.weather != nil {
		s.Wind = r.weather.Wind.Speed
		s.Windy = r.weather.Wind.Blowing()
		s.Particles = append([]Particle(nil), r.weather.Particles()...)
	}
	return s
}
