package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Food-Throw/internal/game"
)

const (
	feedPanelWidth = 300
	feedMaxEntries = 40
	feedLineHeight = 12
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Frame   int
	Label   string // e.g. "R1", "B3"
	Kind    game.EventKind
	Message string
}

// Feed is a ring buffer of round events rendered as an overlay.
type Feed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewFeed creates a feed with a fixed capacity.
func NewFeed() *Feed {
	return &Feed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry to the feed.
func (f *Feed) Add(frame int, label string, kind game.EventKind, msg string) {
	f.entries[f.head] = FeedEntry{
		Frame:   frame,
		Label:   label,
		Kind:    kind,
		Message: msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// AddEvents records every event, skipping the noisy ammo_fired ones.
func (f *Feed) AddEvents(events []game.Event) {
	for _, e := range events {
		if e.Kind == game.EventAmmoFired {
			continue
		}
		msg := e.Kind.String()
		if e.Detail != "" {
			msg += " " + e.Detail
		}
		f.Add(e.Frame, e.Actor, e.Kind, msg)
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *Feed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Clear drops every entry.
func (f *Feed) Clear() {
	f.head, f.count = 0, 0
}

func feedDotColor(k game.EventKind) color.RGBA {
	switch k {
	case game.EventBearSpawned, game.EventBearHit, game.EventBearTeleport, game.EventRoundLost:
		return color.RGBA{R: 210, G: 70, B: 70, A: 255}
	case game.EventCreatureFed, game.EventBearDefeated, game.EventRoundWon:
		return color.RGBA{R: 70, G: 200, B: 90, A: 255}
	default:
		return color.RGBA{R: 70, G: 110, B: 210, A: 255}
	}
}

// Draw renders the feed panel against the right edge, panelH tall from
// panelY.
func (f *Feed) Draw(screen *ebiten.Image, panelY, panelH int) {
	panelX := game.ScreenWidth - feedPanelWidth
	vector.FillRect(screen, float32(panelX), float32(panelY), feedPanelWidth, float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	vector.StrokeLine(screen, float32(panelX), float32(panelY), float32(panelX), float32(panelY+panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, float32(panelX), float32(panelY), feedPanelWidth, 16, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, panelY+1)

	entries := f.Recent()
	maxVisible := (panelH - 20) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	recent := 3

	y := panelY + 18
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 5, feedDotColor(e.Kind), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d [%s] %s", e.Frame, e.Label, e.Message), panelX+12, y-2)
		y += feedLineHeight
	}
}
