package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/Garsondee/Food-Throw/internal/game"
)

// MelodyGenerator loops a note sequence forever. Each note is a soft sine
// with a short fade so steps don't click.
type MelodyGenerator struct {
	sr      beep.SampleRate
	notes   []float64 // Hz, 0 is a rest
	noteLen int
	pos     int
	phase   float64
	amp     float64
}

// NewMelodyGenerator loops notes at the given tempo.
func NewMelodyGenerator(sr beep.SampleRate, notes []float64, bpm float64, amp float64) *MelodyGenerator {
	beat := int(float64(sr) * 60 / bpm)
	if beat < 1 {
		beat = 1
	}
	return &MelodyGenerator{sr: sr, notes: notes, noteLen: beat, amp: amp}
}

// Note returns the frequency playing at sample offset pos.
func (g *MelodyGenerator) Note(pos int) float64 {
	if len(g.notes) == 0 {
		return 0
	}
	return g.notes[(pos/g.noteLen)%len(g.notes)]
}

func (g *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	fade := g.noteLen / 10
	for i := range samples {
		freq := g.Note(g.pos)
		val := 0.0
		if freq > 0 {
			inNote := g.pos % g.noteLen
			env := 1.0
			if fade > 0 {
				env = math.Min(1, math.Min(float64(inNote)/float64(fade), float64(g.noteLen-inNote)/float64(fade)))
			}
			val = g.amp * env * math.Sin(2*math.Pi*g.phase)
			g.phase += freq / float64(g.sr)
			g.phase -= math.Floor(g.phase)
		}
		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *MelodyGenerator) Err() error { return nil }

var seasonTunes = map[game.Season][]float64{
	game.SeasonSummer: {523.25, 659.25, 783.99, 659.25, 587.33, 698.46, 880, 0},
	game.SeasonAutumn: {440, 523.25, 659.25, 523.25, 392, 493.88, 587.33, 0},
	game.SeasonWinter: {392, 0, 466.16, 0, 349.23, 0, 311.13, 0},
}

var seasonTempo = map[game.Season]float64{
	game.SeasonSummer: 132,
	game.SeasonAutumn: 110,
	game.SeasonWinter: 84,
}

// bearTheme is the low ostinato that plays while a bear is on the field.
var bearTheme = []float64{98, 98, 116.54, 98, 130.81, 116.54, 98, 87.31}

// NewLevelMusic returns the endless background loop for a level's season.
func NewLevelMusic(s game.Season, sr beep.SampleRate) *MelodyGenerator {
	tune, ok := seasonTunes[s]
	if !ok {
		tune = seasonTunes[game.SeasonSummer]
	}
	return NewMelodyGenerator(sr, tune, seasonTempo[s], 0.12)
}

// NewBearMusic returns the endless bear ostinato.
func NewBearMusic(sr beep.SampleRate) *MelodyGenerator {
	return NewMelodyGenerator(sr, bearTheme, 160, 0.18)
}
