package app

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Food-Throw/internal/game"
)

const (
	menuItemW     = 400
	menuItemH     = 50
	menuSpacing   = 60
	menuTop       = 0.65 // fraction of screen height
	flashInterval = 30   // frames
	danceRange    = 50
	danceSpeed    = 2
)

var (
	titleBackdrop = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	gameOverFill  = color.RGBA{R: 40, G: 0, B: 0, A: 255}
	completeFill  = color.RGBA{R: 0, G: 60, B: 20, A: 255}
	menuShades    = []color.RGBA{
		{R: 0, G: 0, B: 255, A: 255},
		{R: 30, G: 144, B: 255, A: 255},
		{R: 0, G: 191, B: 255, A: 255},
	}
	menuIdle = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// menuRect is the clickable box of option i.
func menuRect(i int) game.Rect {
	cy := game.ScreenHeight*menuTop + float64(i*menuSpacing)
	return game.Rect{
		X: game.ScreenWidth/2 - menuItemW/2,
		Y: cy - menuItemH/2,
		W: menuItemW,
		H: menuItemH,
	}
}

// menuOptionAt maps a click onto a menu option.
func menuOptionAt(x, y float64) (int, bool) {
	for i := range menuOptions {
		if menuRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// flashOn alternates every flashInterval frames.
func flashOn(frames int) bool {
	return (frames/flashInterval)%2 == 0
}

// danceOffset bounces between -danceRange and +danceRange.
func danceOffset(frames int) float64 {
	period := 4 * danceRange / danceSpeed
	p := frames % period
	d := float64(p * danceSpeed)
	switch {
	case d <= danceRange:
		return d
	case d <= 3*danceRange:
		return 2*danceRange - d
	default:
		return d - 4*danceRange
	}
}

func (a *App) drawTitle(dst *ebiten.Image) {
	if bg := a.assets.Backdrop(game.SeasonSummer); bg != nil {
		drawSprite(dst, bg, game.Rect{W: game.ScreenWidth, H: game.ScreenHeight}, 1)
	} else {
		dst.Fill(titleBackdrop)
	}
	drawOutlinedText(dst, "FOOD THROW", a.face, game.ScreenWidth/2, game.ScreenHeight*0.3, 5, hudWhite)
	drawOutlinedText(dst, "Feed the wildlife. Tame the bear. Grab the clock.", a.face, game.ScreenWidth/2, game.ScreenHeight*0.42, 1.5, hudWhite)

	shade := menuShades[(a.frames/flashInterval)%len(menuShades)]
	for i, opt := range menuOptions {
		r := menuRect(i)
		clr := menuIdle
		if i == a.menuIndex {
			clr = shade
			strokeRect(dst, r, 2, shade)
		}
		cx, cy := r.Center()
		drawOutlinedText(dst, opt, a.face, cx, cy, 2.5, clr)
	}
}

// drawSwirl spins and shrinks the last play frame over swirlDuration.
func (a *App) drawSwirl(dst *ebiten.Image) {
	dst.Fill(hudBlack)
	t := math.Min(a.screenTime, swirlDuration)
	scale := 1 - t/swirlDuration
	if scale <= 0 {
		return
	}
	angle := t / swirlDuration * 2 * math.Pi * 3
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-game.ScreenWidth/2, -game.ScreenHeight/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(game.ScreenWidth/2, game.ScreenHeight/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(a.canvas, op)
}

func (a *App) drawGameOver(dst *ebiten.Image) {
	dst.Fill(gameOverFill)
	drawOutlinedText(dst, "GAME OVER", a.face, game.ScreenWidth/2+danceOffset(a.frames), game.ScreenHeight*0.4, 6, hudRed)
	drawOutlinedText(dst, fmt.Sprintf("The bear got you on level %d", a.level), a.face, game.ScreenWidth/2, game.ScreenHeight*0.55, 2, hudWhite)
	if a.screenTime >= inputDelay && flashOn(a.frames) {
		drawOutlinedText(dst, "PRESS ANY KEY TO RESTART", a.face, game.ScreenWidth/2, game.ScreenHeight*0.7, 2, hudWhite)
	}
}

func (a *App) drawLevelComplete(dst *ebiten.Image) {
	dst.Fill(completeFill)
	drawOutlinedText(dst, "CONGRATULATIONS!", a.face, game.ScreenWidth/2, game.ScreenHeight*0.35, 5, hudGreen)
	drawOutlinedText(dst, fmt.Sprintf("LEVEL %d COMPLETE", a.level), a.face, game.ScreenWidth/2, game.ScreenHeight*0.5, 3, hudWhite)
	if _, more := game.NextLevel(a.level); !more {
		drawOutlinedText(dst, "The meadow is safe. Thanks for playing!", a.face, game.ScreenWidth/2, game.ScreenHeight*0.6, 1.5, hudWhite)
	}
	if a.screenTime >= inputDelay && flashOn(a.frames) {
		drawOutlinedText(dst, "PRESS ANY KEY TO CONTINUE", a.face, game.ScreenWidth/2, game.ScreenHeight*0.75, 2, hudWhite)
	}
}
