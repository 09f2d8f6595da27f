package game

// Autopilot is a simple scripted player: it grabs every power-up and the
// clock, feeds the bear first, then foxes with berries, then rabbits with
// carrots. It issues at most one lane move or throw per frame.
type Autopilot struct {
	// Collect power-ups by clicking them as soon as they drop.
	Collect bool
	// Reaction is the number of frames between decisions.
	Reaction int

	wait int
}

// NewAutopilot returns a pilot that collects and reacts every frame.
func NewAutopilot() *Autopilot {
	return &Autopilot{Collect: true, Reaction: 1}
}

func (a *Autopilot) Drive(r *Round) {
	if r.Outcome() != OutcomePlaying {
		return
	}
	if c := r.Clock(); c != nil {
		cx, cy := c.Center()
		r.Click(cx, cy)
		return
	}
	if a.Collect {
		for len(r.Powerups()) > 0 {
			cx, cy := r.Powerups()[0].Bounds().Center()
			if !r.Click(cx, cy) {
				break
			}
		}
	}

	if a.wait > 0 {
		a.wait--
		return
	}
	a.wait = a.Reaction - 1

	lane, kind, ok := a.pickTarget(r)
	if !ok {
		return
	}
	p := r.Player()
	switch {
	case lane < p.Lane():
		r.Apply(CmdMoveLaneUp)
	case lane > p.Lane():
		r.Apply(CmdMoveLaneDown)
	case p.Cooldown() <= 0:
		r.Apply(fireCommand(kind))
	}
}

func fireCommand(k AmmoKind) Command {
	switch k {
	case AmmoBerry:
		return CmdFireBerry
	case AmmoHoney:
		return CmdFireHoney
	default:
		return CmdFireCarrot
	}
}

// pickTarget chooses the lane to stand in and the ammo to throw.
func (a *Autopilot) pickTarget(r *Round) (Lane, AmmoKind, bool) {
	p := r.Player()
	if b := r.Bear(); b != nil && b.State() == BearApproaching {
		switch {
		case p.Ammo[AmmoHoney] > 0:
			return b.Lane(), AmmoHoney, true
		case p.Ammo[AmmoBerry] > 0:
			return b.Lane(), AmmoBerry, true
		}
	}

	var (
		best     Creature
		bestKind AmmoKind
		bestX    = float64(ScreenWidth)
	)
	for _, c := range r.Creatures() {
		x := c.Bounds().X
		if x <= playerX+playerSize || x >= ScreenWidth || x >= bestX {
			continue
		}
		switch cr := c.(type) {
		case *Fox:
			if p.Ammo[AmmoBerry] > 0 && cr.Accepts(AmmoBerry) {
				best, bestKind, bestX = c, AmmoBerry, x
			}
		case *Rabbit:
			if cr.State() == RabbitBouncing && cr.Direction() < 0 {
				best, bestKind, bestX = c, AmmoCarrot, x
			}
		}
	}
	if best == nil {
		return 0, 0, false
	}
	return best.Lane(), bestKind, true
}
