package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/Garsondee/Food-Throw/internal/game"
)

// Cue is a one-shot sound effect.
type Cue int

const (
	CueThrow Cue = iota
	CueBearHit
	CueFed
	CuePickup
	CueDrop
	CueRoar
	CueTeleport
	CueClock
	CueWin
	CueLose
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueThrow:
		return "throw"
	case CueBearHit:
		return "bear_hit"
	case CueFed:
		return "fed"
	case CuePickup:
		return "pickup"
	case CueDrop:
		return "drop"
	case CueRoar:
		return "roar"
	case CueTeleport:
		return "teleport"
	case CueClock:
		return "clock"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

var cueDurations = [cueCount]time.Duration{
	CueThrow:    80 * time.Millisecond,
	CueBearHit:  120 * time.Millisecond,
	CueFed:      240 * time.Millisecond,
	CuePickup:   160 * time.Millisecond,
	CueDrop:     100 * time.Millisecond,
	CueRoar:     600 * time.Millisecond,
	CueTeleport: 400 * time.Millisecond,
	CueClock:    300 * time.Millisecond,
	CueWin:      900 * time.Millisecond,
	CueLose:     900 * time.Millisecond,
}

// Duration is how long the cue plays.
func (c Cue) Duration() time.Duration {
	if c < 0 || c >= cueCount {
		return 0
	}
	return cueDurations[c]
}

// CueFor maps a round event onto its cue. Not every event makes a sound.
func CueFor(k game.EventKind) (Cue, bool) {
	switch k {
	case game.EventAmmoFired:
		return CueThrow, true
	case game.EventBearHit:
		return CueBearHit, true
	case game.EventCreatureFed, game.EventBearDefeated:
		return CueFed, true
	case game.EventPowerupCollected:
		return CuePickup, true
	case game.EventPowerupDropped:
		return CueDrop, true
	case game.EventBearSpawned:
		return CueRoar, true
	case game.EventBearTeleport:
		return CueTeleport, true
	case game.EventClockDropped:
		return CueClock, true
	case game.EventRoundWon:
		return CueWin, true
	case game.EventRoundLost:
		return CueLose, true
	}
	return 0, false
}

// NewCue builds the finite streamer for c.
func NewCue(c Cue, rate beep.SampleRate) beep.Streamer {
	d := c.Duration()
	switch c {
	case CueThrow:
		return newVolume(note(600, 300, d, WaveSine, rate), 0.4)
	case CueBearHit:
		return newVolume(note(180, 120, d, WaveSquare, rate), 0.3)
	case CueFed:
		half := d / 2
		return newVolume(beep.Seq(note(660, 660, half, WaveSine, rate), note(880, 880, half, WaveSine, rate)), 0.4)
	case CuePickup:
		return newVolume(note(880, 1320, d, WaveSine, rate), 0.35)
	case CueDrop:
		return newVolume(note(440, 520, d, WaveSine, rate), 0.2)
	case CueRoar:
		return beep.Mix(
			newVolume(note(0, 0, d, WaveNoise, rate), 0.25),
			newVolume(note(90, 60, d, WaveSaw, rate), 0.35),
		)
	case CueTeleport:
		return newVolume(note(200, 900, d, WaveSaw, rate), 0.2)
	case CueClock:
		tick := d / 3
		return newVolume(beep.Seq(
			note(1200, 1200, tick, WaveSquare, rate),
			note(900, 900, tick, WaveSquare, rate),
			note(1200, 1200, tick, WaveSquare, rate),
		), 0.2)
	case CueWin:
		step := d / 3
		return newVolume(beep.Seq(
			note(523.25, 523.25, step, WaveSine, rate),
			note(659.25, 659.25, step, WaveSine, rate),
			note(783.99, 783.99, step, WaveSine, rate),
		), 0.45)
	case CueLose:
		step := d / 3
		return newVolume(beep.Seq(
			note(392, 392, step, WaveSaw, rate),
			note(311.13, 311.13, step, WaveSaw, rate),
			note(196, 180, step, WaveSaw, rate),
		), 0.35)
	}
	return nil
}
