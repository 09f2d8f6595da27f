package game

const (
	effectDuration  = 5.0
	effectExtension = 5.0
)

// ActiveEffects tracks the timed buffs currently applied. At most one
// instance per kind exists; a repeat pickup extends the running timer.
type ActiveEffects struct {
	remaining [powerupKindCount]float64
}

// Activate registers a pickup. It returns true when the effect was newly
// applied and false when an active instance was extended instead. Non-timed
// kinds are ignored.
func (e *ActiveEffects) Activate(k PowerupKind) bool {
	if !k.Timed() {
		return false
	}
	if e.remaining[k] > 0 {
		e.remaining[k] += effectExtension
		return false
	}
	e.remaining[k] = effectDuration
	return true
}

// Active reports whether the buff is running.
func (e ActiveEffects) Active(k PowerupKind) bool {
	return k >= 0 && k < powerupKindCount && e.remaining[k] > 0
}

// Remaining is the seconds left on the buff, zero when inactive.
func (e ActiveEffects) Remaining(k PowerupKind) float64 {
	if !e.Active(k) {
		return 0
	}
	return e.remaining[k]
}

// Tick counts every running buff down and returns the kinds that ran out.
func (e *ActiveEffects) Tick(dt float64) []PowerupKind {
	var expired []PowerupKind
	for k := range e.remaining {
		if e.remaining[k] <= 0 {
			continue
		}
		if countDown(&e.remaining[k], dt) {
			expired = append(expired, PowerupKind(k))
		}
	}
	return expired
}
