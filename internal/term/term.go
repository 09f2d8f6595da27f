// Package term plays rounds in a terminal with tcell, one cell per scaled
// patch of the playfield.
package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Food-Throw/internal/config"
	"github.com/Garsondee/Food-Throw/internal/game"
)

const (
	frameInterval = time.Second / 60
	maxFrameDelta = 0.1
)

// Options configures Run.
type Options struct {
	Config *config.Config
	Seed   int64 // 0 seeds from the clock
	Level  int
	Demo   bool // the autopilot plays
}

type session struct {
	screen tcell.Screen
	keys   bindings
	opts   Options
	round  *game.Round
	pilot  game.Pilot
	level  int
	rounds int
	paused bool
	width  int
	height int
}

// Run takes over the terminal until the player quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Level <= 0 {
		opts.Level = 1
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer s.Fini()
	s.Clear()
	s.HideCursor()

	keys, unknown := newBindings(opts.Config)
	for _, u := range unknown {
		log.Printf("config: no terminal key for %s, action left unbound", u)
	}
	ss := &session{screen: s, keys: keys, opts: opts}
	if opts.Demo {
		ss.pilot = game.NewAutopilot()
	}
	ss.width, ss.height = s.Size()
	ss.start(opts.Level)

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(s, events, done)

	tick := time.NewTicker(frameInterval)
	defer tick.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				ss.width, ss.height = s.Size()
				s.Sync()
			case *tcell.EventKey:
				if isQuit(e) {
					return nil
				}
				ss.handleKey(e)
			}
		case now := <-tick.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}
			ss.update(dt)
			ss.render()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// closes.
func pollEvents(s eventSource, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// eventSource is the part of tcell.Screen the poller needs.
type eventSource interface {
	PollEvent() tcell.Event
}

func (ss *session) start(level int) {
	ss.level = level
	ss.rounds++
	seed := ss.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += int64(ss.rounds - 1)
	}
	ss.round = game.NewRound(level, game.WithSeed(seed))
	ss.paused = false
}

func (ss *session) handleKey(e *tcell.EventKey) {
	if ss.round.Outcome() != game.OutcomePlaying {
		if e.Key() == tcell.KeyEnter {
			ss.advance()
		}
		return
	}
	if e.Key() == tcell.KeyRune && (e.Rune() == 'p' || e.Rune() == 'P') {
		ss.paused = !ss.paused
		return
	}
	if ss.pilot != nil || ss.paused {
		return
	}
	if cmd, ok := ss.keys.commandFor(e); ok {
		ss.round.Apply(cmd)
		return
	}
	if e.Key() == tcell.KeyRune && (e.Rune() == 'c' || e.Rune() == 'C') {
		if c := ss.round.Clock(); c != nil {
			ss.round.Click(c.Center())
		}
	}
}

// advance restarts a lost level or moves past a won one, wrapping back to
// the first level after the campaign.
func (ss *session) advance() {
	if ss.round.Outcome() == game.OutcomeLost {
		ss.start(ss.level)
		return
	}
	if next, ok := game.NextLevel(ss.level); ok {
		ss.start(next.Number)
		return
	}
	ss.start(ss.opts.Level)
}

func (ss *session) update(dt float64) {
	if ss.paused {
		return
	}
	if ss.round.Outcome() != game.OutcomePlaying {
		return
	}
	if ss.pilot != nil {
		ss.pilot.Drive(ss.round)
	}
	ss.round.Step(dt)
	ss.round.DrainEvents()
	if ss.round.Outcome() != game.OutcomePlaying && ss.pilot != nil {
		ss.advance()
	}
}

func (ss *session) render() {
	if ss.width <= 0 || ss.height <= 0 {
		return
	}
	snap := ss.round.Snapshot()
	f := rasterize(&snap, ss.width, ss.height)
	switch {
	case ss.paused:
		f.overlay("PAUSED", "p to resume")
	case snap.Outcome == game.OutcomeLost:
		f.overlay("GAME OVER", "the bear reached you", "ENTER to restart, q to quit")
	case snap.Outcome == game.OutcomeWon:
		f.overlay(fmt.Sprintf("LEVEL %d COMPLETE", snap.Level.Number), "ENTER to continue, q to quit")
	}
	f.blit(ss.screen)
	ss.screen.Show()
}
