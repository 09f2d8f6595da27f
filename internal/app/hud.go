package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Food-Throw/internal/game"
)

const (
	hudBoxW    = 80
	hudBoxH    = 50
	hudPadding = 10
)

var (
	hudBlack   = color.RGBA{A: 255}
	hudWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hudRed     = color.RGBA{R: 255, A: 255}
	hudGreen   = color.RGBA{G: 200, A: 255}
	hudTicker  = color.RGBA{R: 255, G: 255, B: 200, A: 255}
	tickerFill = color.RGBA{A: 150}
)

var selectedAmmoShades = [game.AmmoKindCount]color.RGBA{
	{R: 101, G: 67, B: 33, A: 255},
	{R: 139, G: 69, B: 19, A: 255},
	{R: 160, G: 82, B: 45, A: 255},
}

// effectOrder is right-to-left along the top edge.
var effectOrder = []game.PowerupKind{game.PowerupApple, game.PowerupBanana, game.PowerupPineapple}

func newFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// drawText draws s with its anchor at (x, y). align picks the horizontal
// anchor; text is vertically centred on y.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y, scale float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// drawOutlinedText draws s centred with a dark outline.
func drawOutlinedText(dst *ebiten.Image, s string, face text.Face, x, y, scale float64, clr color.Color) {
	for _, dx := range []float64{-2, 0, 2} {
		for _, dy := range []float64{-2, 0, 2} {
			if dx != 0 || dy != 0 {
				drawText(dst, s, face, x+dx, y+dy, scale, hudBlack, text.AlignCenter)
			}
		}
	}
	drawText(dst, s, face, x, y, scale, clr, text.AlignCenter)
}

func (a *App) measure(s string) float64 {
	w, _ := text.Measure(s, a.face, 0)
	return w
}

// drawHUD draws the ammo boxes, the effect timers and the bear box.
func (a *App) drawHUD(dst *ebiten.Image, snap *game.Snapshot) {
	for i := 0; i < game.AmmoKindCount; i++ {
		kind := game.AmmoKind(i)
		box := game.Rect{X: float64(hudPadding + (hudBoxW+hudPadding)*i), Y: hudPadding, W: hudBoxW, H: hudBoxH}
		fill := hudBlack
		if kind == snap.Selected {
			fill = selectedAmmoShades[i]
		}
		fillRect(dst, box, fill)
		strokeRect(dst, box, 3, hudWhite)
		iconX := box.X + box.W/2
		if kind != game.AmmoCarrot {
			drawText(dst, fmt.Sprint(snap.Ammo[i]), a.face, box.X+20, box.Y+box.H/2, 2, hudWhite, text.AlignCenter)
			iconX = box.X + 60
		}
		a.drawIcon(dst, ammoSprites[i], ammoColors[i], iconX, box.Y+box.H/2)
	}

	for i, k := range effectOrder {
		box := game.Rect{X: float64(game.ScreenWidth - hudBoxW - hudPadding - (hudBoxW+hudPadding)*i), Y: hudPadding, W: hudBoxW, H: hudBoxH}
		remaining := snap.Effects[k]
		outline := hudWhite
		if remaining > 0 {
			outline = hudRed
		}
		fillRect(dst, box, hudBlack)
		strokeRect(dst, box, 2, outline)
		a.drawIcon(dst, powerupSprites[k], game.PowerupColor(k), box.X+20, box.Y+box.H/2)
		drawText(dst, fmt.Sprint(int(remaining)), a.face, box.X+60, box.Y+box.H/2, 2, hudWhite, text.AlignCenter)
	}

	switch {
	case snap.Bear.Present:
		a.drawBearHUD(dst, snap.Bear)
	case snap.ShowTicker:
		a.drawTicker(dst, &snap.Ticker)
	}
}

func (a *App) drawIcon(dst *ebiten.Image, sprite string, fallback color.RGBA, cx, cy float64) {
	if img := a.assets.Sprite(sprite); img != nil {
		drawSprite(dst, img, game.Rect{X: cx - 15, Y: cy - 15, W: 30, H: 30}, 1)
		return
	}
	vector.FillCircle(dst, float32(cx), float32(cy), 12, fallback, true)
}

func (a *App) drawBearHUD(dst *ebiten.Image, hud game.BearHUD) {
	box := game.BearHUDBox
	fill := hudBlack
	if hud.Flashing {
		fill = hud.FlashShade
	}
	fillRect(dst, box, fill)
	strokeRect(dst, box, 2, hudRed)

	maxW := box.W - 10
	healthW := maxW * float64(hud.Health) / float64(hud.MaxHealth)
	fillRect(dst, game.Rect{X: box.X + 5, Y: box.Y + 10, W: healthW, H: 20}, hudGreen)
	fillRect(dst, game.Rect{X: box.X + 5 + healthW, Y: box.Y + 10, W: maxW - healthW, H: 20}, hudRed)
	label := fmt.Sprintf("BEAR %d", hud.Health)
	if hud.Teleport {
		label = "BEAR ..."
	}
	drawText(dst, label, a.face, box.X+box.W/2, box.Y+40, 1, hudWhite, text.AlignCenter)
}

func (a *App) drawTicker(dst *ebiten.Image, t *game.TickerState) {
	box := game.BearHUDBox
	fillRect(dst, box, tickerFill)
	strokeRect(dst, box, 2, hudRed)
	if !t.Initialized() {
		return
	}
	clip := clipTo(dst, box)
	drawText(clip, t.Headline(), a.face, t.X, box.Y+box.H/2, 1, hudTicker, text.AlignStart)
}
