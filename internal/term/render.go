package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Food-Throw/internal/game"
)

const hudRows = 2

// cell is one terminal character.
type cell struct {
	ch    rune
	style tcell.Style
}

// frame is a rasterized snapshot, row-major.
type frame struct {
	w, h  int
	cells []cell
}

var (
	styleSky     = tcell.StyleDefault.Background(tcell.ColorReset)
	styleBush    = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen).Background(tcell.ColorBlack)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkOliveGreen)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleClock   = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

var creatureGlyphs = map[game.CreatureKind]struct {
	ch    rune
	style tcell.Style
}{
	game.KindRabbit: {'R', tcell.StyleDefault.Foreground(tcell.ColorSilver)},
	game.KindFox:    {'F', tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)},
	game.KindBear:   {'B', tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown).Bold(true)},
}

var ammoGlyphs = [game.AmmoKindCount]struct {
	ch    rune
	style tcell.Style
}{
	{'*', tcell.StyleDefault.Foreground(tcell.ColorOrange)},
	{'o', tcell.StyleDefault.Foreground(tcell.ColorPurple)},
	{'@', tcell.StyleDefault.Foreground(tcell.ColorGoldenrod)},
}

var powerupGlyphs = map[game.PowerupKind]rune{
	game.PowerupBanana:    ')',
	game.PowerupPineapple: '#',
	game.PowerupApple:     'a',
	game.PowerupHoney:     'h',
	game.PowerupBerry:     'b',
}

func newFrame(w, h int) *frame {
	f := &frame{w: w, h: h, cells: make([]cell, w*h)}
	for i := range f.cells {
		f.cells[i] = cell{ch: ' ', style: styleSky}
	}
	return f
}

func (f *frame) set(x, y int, ch rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.cells[y*f.w+x] = cell{ch: ch, style: st}
}

func (f *frame) at(x, y int) rune {
	return f.cells[y*f.w+x].ch
}

func (f *frame) text(x, y int, s string, st tcell.Style) {
	for i, ch := range []rune(s) {
		f.set(x+i, y, ch, st)
	}
}

func (f *frame) centered(y int, s string, st tcell.Style) {
	f.text(f.w/2-len([]rune(s))/2, y, s, st)
}

// fill paints a playfield rect, always covering at least one cell.
func (f *frame) fill(r game.Rect, ch rune, st tcell.Style) {
	fieldH := f.h - hudRows
	if fieldH <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	sx := float64(f.w) / game.ScreenWidth
	sy := float64(fieldH) / game.ScreenHeight
	x0, x1 := int(r.X*sx), int((r.X+r.W)*sx)
	y0, y1 := int(r.Y*sy), int((r.Y+r.H)*sy)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			f.set(x, hudRows+y, ch, st)
		}
	}
}

// rasterize scales the 800x600 playfield onto a w by h grid below a
// two-line HUD.
func rasterize(snap *game.Snapshot, w, h int) *frame {
	f := newFrame(w, h)
	for _, c := range snap.Creatures {
		g := creatureGlyphs[c.Kind]
		b := c.Bounds
		b.H = c.Visible
		f.fill(b, g.ch, g.style)
	}
	for _, l := range game.AllLanes {
		f.fill(game.BushBand(l), '"', styleBush)
	}
	for _, p := range snap.Projectiles {
		g := ammoGlyphs[p.Kind]
		f.fill(p.Bounds, g.ch, g.style)
	}
	for _, p := range snap.Powerups {
		f.fill(p.Bounds, powerupGlyphs[p.Kind], tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(p.Shade.R), int32(p.Shade.G), int32(p.Shade.B))))
	}
	if snap.Clock != nil {
		f.fill(*snap.Clock, 'C', styleClock)
	}
	player := 'P'
	if snap.Throwing {
		player = 'p'
	}
	f.fill(snap.Player, player, stylePlayer)

	for x := 0; x < w; x++ {
		for y := 0; y < hudRows && y < h; y++ {
			f.set(x, y, ' ', styleHUD)
		}
	}
	f.text(1, 0, hudLine(snap), styleHUD)
	f.text(1, 1, statusLine(snap), styleHUD)
	return f
}

func hudLine(snap *game.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "L%d %s |", snap.Level.Number, snap.Level.Name)
	for i := 0; i < game.AmmoKindCount; i++ {
		k := game.AmmoKind(i)
		mark := " "
		if k == snap.Selected {
			mark = ">"
		}
		fmt.Fprintf(&b, " %s%s %d", mark, k, snap.Ammo[i])
	}
	return b.String()
}

func statusLine(snap *game.Snapshot) string {
	var parts []string
	if snap.Bear.Present {
		parts = append(parts, fmt.Sprintf("bear %d/%d", snap.Bear.Health, snap.Bear.MaxHealth))
	}
	for k, left := range snap.Effects {
		if left > 0 {
			parts = append(parts, fmt.Sprintf("%s %.0fs", game.PowerupKind(k), left))
		}
	}
	if snap.Clock != nil {
		parts = append(parts, "click the clock (c)")
	}
	if len(parts) == 0 {
		return "frame " + fmt.Sprint(snap.Frame)
	}
	return strings.Join(parts, " | ")
}

// overlay draws a centered banner for decided rounds.
func (f *frame) overlay(lines ...string) {
	y := f.h/2 - len(lines)/2
	for i, s := range lines {
		f.centered(y+i, " "+s+" ", styleOverlay)
	}
}

func (f *frame) blit(s tcell.Screen) {
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			c := f.cells[y*f.w+x]
			s.SetContent(x, y, c.ch, nil, c.style)
		}
	}
}
