package game

const (
	playerX          = 40
	playerSize       = 60
	playerBaseSpeed  = 5
	fireCooldown     = 0.5
	throwPoseSeconds = 0.5
)

// Player is the food thrower on the left edge.
type Player struct {
	lane      Lane
	speed     float64
	cooldown  float64
	throwPose float64

	Ammo     [ammoKindCount]int
	Selected AmmoKind
}

func newPlayer(startAmmo [ammoKindCount]int) *Player {
	return &Player{
		lane:  LaneUpper,
		speed: playerBaseSpeed,
		Ammo:  startAmmo,
	}
}

// Lane is the row the player stands in.
func (p *Player) Lane() Lane { return p.lane }

// Speed is the current movement speed. Banana doubles it.
func (p *Player) Speed() float64 { return p.speed }

// Cooldown is the time left before the next throw is allowed.
func (p *Player) Cooldown() float64 { return p.cooldown }

// Throwing reports whether the throw pose is showing.
func (p *Player) Throwing() bool { return p.throwPose > 0 }

// Bounds is the player's box.
func (p *Player) Bounds() Rect {
	return Rect{X: playerX, Y: PlayerStandY(p.lane), W: playerSize, H: playerSize}
}

func (p *Player) moveUp() bool {
	if p.lane <= LaneUpper {
		return false
	}
	p.lane--
	return true
}

func (p *Player) moveDown() bool {
	if p.lane >= LaneBottom {
		return false
	}
	p.lane++
	return true
}

func (p *Player) cycleAmmo(step int) {
	n := int(ammoKindCount)
	p.Selected = AmmoKind(((int(p.Selected)+step)%n + n) % n)
}

// canFire reports whether the kind may be thrown right now. Carrots are
// unlimited.
func (p *Player) canFire(kind AmmoKind) bool {
	if p.cooldown > 0 {
		return false
	}
	return kind == AmmoCarrot || p.Ammo[kind] > 0
}

// spend consumes one round of kind and starts the cooldown.
func (p *Player) spend(kind AmmoKind) {
	if kind != AmmoCarrot {
		p.Ammo[kind]--
	}
	p.cooldown = fireCooldown
	p.throwPose = throwPoseSeconds
}

func (p *Player) tick(dt float64) {
	if p.cooldown > 0 {
		p.cooldown -= dt
		if p.cooldown < 0 {
			p.cooldown = 0
		}
	}
	if p.throwPose > 0 {
		p.throwPose -= dt
	}
}

func (p *Player) applyEffect(k PowerupKind) {
	if k == PowerupBanana {
		p.speed = playerBaseSpeed * 2
	}
}

func (p *Player) revertEffect(k PowerupKind) {
	if k == PowerupBanana {
		p.speed = playerBaseSpeed
	}
}

// launchPoint is where projectiles leave the player's hand.
func (p *Player) launchPoint() (float64, float64) {
	return playerX + launchOffsetX, PlayerStandY(p.lane) + launchOffsetY
}
