package game

// EventKind is a discrete happening other collaborators react to: audio
// cues, scene changes, the on-screen feed.
type EventKind int

const (
	EventBearSpawned EventKind = iota
	EventBearHit
	EventBearTeleport
	EventBearDefeated
	EventCreatureFed
	EventAmmoFired
	EventPowerupDropped
	EventPowerupCollected
	EventEffectExpired
	EventClockDropped
	EventRoundWon
	EventRoundLost
)

func (k EventKind) String() string {
	switch k {
	case EventBearSpawned:
		return "bear_spawned"
	case EventBearHit:
		return "bear_hit"
	case EventBearTeleport:
		return "bear_teleport"
	case EventBearDefeated:
		return "bear_defeated"
	case EventCreatureFed:
		return "creature_fed"
	case EventAmmoFired:
		return "ammo_fired"
	case EventPowerupDropped:
		return "powerup_dropped"
	case EventPowerupCollected:
		return "powerup_collected"
	case EventEffectExpired:
		return "effect_expired"
	case EventClockDropped:
		return "clock_dropped"
	case EventRoundWon:
		return "round_won"
	case EventRoundLost:
		return "round_lost"
	default:
		return "unknown"
	}
}

// Event is one entry of the per-frame event queue.
type Event struct {
	Frame  int
	Kind   EventKind
	Actor  string // creature label, "P" for the player, "--" for round-wide
	Detail string
}
