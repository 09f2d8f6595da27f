package game

import "unicode/utf8"

const (
	tickerScrollSpeed = 2 // px per reference frame
	glyphWidth        = 7 // basicfont 7x13 advance
)

// BearHUDBox is shared by the bear health bar and the news ticker.
var BearHUDBox = Rect{X: 320, Y: 10, W: 160, H: 50}

// DefaultHeadlines scroll while no bear is around.
var DefaultHeadlines = []string{
	"- Community Garden Feeds Hundreds in Need -",
	"- Wild Life Thrives in Protected Areas -",
	"- Volunteers Restore Historic Park for All -",
	"- Solar Bike Path Unveiled in Beary Woods -",
	"- New Paid Parental Leave Policy for Bears is Welcomed -",
	"- Festival Highlights Different Cuisine -",
	"- Farm Donates Unlimited Carrots to Feed Rabbits -",
}

// MeasureFunc returns the rendered width of s in pixels.
type MeasureFunc func(s string) float64

// EstimateWidth measures with a fixed glyph advance.
func EstimateWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s) * glyphWidth)
}

// TickerState scrolls headlines right to left across a box.
type TickerState struct {
	Headlines   []string
	Index       int
	X           float64
	Box         Rect
	initialized bool
}

// NewTickerState builds a ticker over box. It starts off the right edge of
// the box on the first Advance.
func NewTickerState(headlines []string, box Rect) TickerState {
	return TickerState{Headlines: headlines, Box: box}
}

// Initialized reports whether Advance has run at least once.
func (t *TickerState) Initialized() bool { return t.initialized }

// Headline is the text currently scrolling.
func (t *TickerState) Headline() string {
	if len(t.Headlines) == 0 {
		return ""
	}
	return t.Headlines[t.Index%len(t.Headlines)]
}

// Advance scrolls the ticker and moves on to the next headline once the
// current one has fully left the box.
func (t *TickerState) Advance(dt float64, measure MeasureFunc) {
	if len(t.Headlines) == 0 {
		return
	}
	if !t.initialized {
		t.X = t.Box.X + t.Box.W
		t.initialized = true
	}
	if measure == nil {
		measure = EstimateWidth
	}
	t.X -= tickerScrollSpeed * frames(dt)
	if t.X < t.Box.X-measure(t.Headline()) {
		t.Index = (t.Index + 1) % len(t.Headlines)
		t.X = t.Box.X + t.Box.W
	}
}
