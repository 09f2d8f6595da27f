// Package audio plays synthesized cues and music for round events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/Food-Throw/internal/game"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager owns the speaker and the mixer. Every method is safe to call
// before Initialize or after it failed; the game then runs silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	bear        *beep.Ctrl
	musicOn     bool
	played      [cueCount]int
	initialized bool
}

// NewSoundManager creates a manager that stays silent until Initialize.
func NewSoundManager(musicOn bool) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		musicOn: musicOn,
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	for _, c := range []*beep.Ctrl{sm.music, sm.bear} {
		if c != nil {
			sm.mixer.Add(c)
		}
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops everything and detaches from the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil {
		sm.music.Paused = true
	}
	if sm.bear != nil {
		sm.bear.Paused = true
	}
	sm.mixer.Clear()
	sm.music, sm.bear = nil, nil
	sm.initialized = false
}

// PlayCue mixes in a one-shot cue.
func (sm *SoundManager) PlayCue(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if c < 0 || c >= cueCount {
		return
	}
	sm.played[c]++
	if !sm.initialized {
		return
	}
	if s := NewCue(c, sampleRate); s != nil {
		sm.add(beep.Take(sampleRate.N(c.Duration()), s))
	}
}

// Played is how many times c was requested, heard or not.
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if c < 0 || c >= cueCount {
		return 0
	}
	return sm.played[c]
}

// StartLevelMusic replaces the background loop with the level's tune.
func (sm *SoundManager) StartLevelMusic(l game.Level) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if old := sm.music; old != nil {
		sm.lockSpeaker(func() { old.Streamer = nil }) // the mixer drops ended ctrls
	}
	sm.music = &beep.Ctrl{Streamer: NewLevelMusic(l.Season, sampleRate), Paused: !sm.musicOn}
	sm.add(sm.music)
}

// SetMusic pauses or resumes the background loops.
func (sm *SoundManager) SetMusic(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicOn = on
	sm.lockSpeaker(func() {
		if sm.music != nil {
			sm.music.Paused = !on
		}
		if sm.bear != nil {
			sm.bear.Paused = !on
		}
	})
}

// MusicOn reports the music toggle.
func (sm *SoundManager) MusicOn() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicOn
}

// BearThemePlaying reports whether the bear ostinato is active.
func (sm *SoundManager) BearThemePlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.bear != nil
}

func (sm *SoundManager) startBearTheme() {
	if sm.bear != nil {
		return
	}
	sm.bear = &beep.Ctrl{Streamer: NewBearMusic(sampleRate), Paused: !sm.musicOn}
	sm.add(sm.bear)
}

func (sm *SoundManager) stopBearTheme() {
	if sm.bear == nil {
		return
	}
	bear := sm.bear
	sm.lockSpeaker(func() { bear.Streamer = nil })
	sm.bear = nil
}

// add mixes s in once the device is open.
func (sm *SoundManager) add(s beep.Streamer) {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// lockSpeaker runs f with the speaker locked when the device is open.
func (sm *SoundManager) lockSpeaker(f func()) {
	if !sm.initialized {
		f()
		return
	}
	speaker.Lock()
	f()
	speaker.Unlock()
}

// HandleEvents plays the cue for each event and follows the bear theme:
// on when a bear arrives, off once it is fed or the round ends.
func (sm *SoundManager) HandleEvents(events []game.Event) {
	for _, e := range events {
		if c, ok := CueFor(e.Kind); ok {
			sm.PlayCue(c)
		}
		sm.mu.Lock()
		switch e.Kind {
		case game.EventBearSpawned:
			sm.startBearTheme()
		case game.EventBearDefeated, game.EventRoundWon, game.EventRoundLost:
			sm.stopBearTheme()
		}
		sm.mu.Unlock()
	}
}
