package app

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Food-Throw/internal/game"
)

type palette struct {
	sky, ground, bush, bushEdge color.RGBA
}

var seasonPalettes = map[game.Season]palette{
	game.SeasonSummer: {
		sky:      color.RGBA{R: 135, G: 206, B: 235, A: 255},
		ground:   color.RGBA{R: 96, G: 160, B: 72, A: 255},
		bush:     color.RGBA{R: 34, G: 120, B: 40, A: 255},
		bushEdge: color.RGBA{R: 20, G: 80, B: 24, A: 255},
	},
	game.SeasonAutumn: {
		sky:      color.RGBA{R: 200, G: 170, B: 140, A: 255},
		ground:   color.RGBA{R: 150, G: 120, B: 60, A: 255},
		bush:     color.RGBA{R: 190, G: 90, B: 30, A: 255},
		bushEdge: color.RGBA{R: 120, G: 50, B: 15, A: 255},
	},
	game.SeasonWinter: {
		sky:      color.RGBA{R: 190, G: 210, B: 230, A: 255},
		ground:   color.RGBA{R: 235, G: 240, B: 245, A: 255},
		bush:     color.RGBA{R: 70, G: 110, B: 90, A: 255},
		bushEdge: color.RGBA{R: 250, G: 250, B: 255, A: 255},
	},
}

var (
	rabbitColor     = color.RGBA{R: 200, G: 200, B: 205, A: 255}
	rabbitFedColor  = color.RGBA{R: 240, G: 240, B: 245, A: 255}
	rabbitAngryCol  = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	foxColor        = color.RGBA{R: 230, G: 120, B: 30, A: 255}
	foxFedColor     = color.RGBA{R: 250, G: 180, B: 110, A: 255}
	bearColor       = color.RGBA{R: 110, G: 70, B: 40, A: 255}
	bearDescendCol  = color.RGBA{R: 80, G: 50, B: 30, A: 140}
	playerColor     = color.RGBA{R: 60, G: 90, B: 200, A: 255}
	playerThrowCol  = color.RGBA{R: 100, G: 140, B: 240, A: 255}
	leafColors      = []color.RGBA{{R: 200, G: 80, B: 20, A: 255}, {R: 230, G: 160, B: 30, A: 255}, {R: 160, G: 50, B: 20, A: 255}}
	snowColor       = color.RGBA{R: 255, G: 255, B: 255, A: 230}
	clockFaceColor  = color.RGBA{R: 250, G: 240, B: 200, A: 255}
	clockFrameColor = color.RGBA{R: 120, G: 80, B: 20, A: 255}
)

var ammoColors = [game.AmmoKindCount]color.RGBA{
	game.AmmoCarrot: {R: 255, G: 140, B: 0, A: 255},
	game.AmmoBerry:  {R: 140, G: 30, B: 160, A: 255},
	game.AmmoHoney:  {R: 240, G: 190, B: 40, A: 255},
}

// ammoSprites and powerupSprites name the sprite used for each kind.
var ammoSprites = [game.AmmoKindCount]string{SpriteCarrot, SpriteBerry, SpriteHoney}

var powerupSprites = map[game.PowerupKind]string{
	game.PowerupBanana:    SpriteBanana,
	game.PowerupPineapple: SpritePineapple,
	game.PowerupApple:     SpriteApple,
	game.PowerupHoney:     SpriteHoney,
	game.PowerupBerry:     SpriteBerry,
}

// clipTo returns dst restricted to r.
func clipTo(dst *ebiten.Image, r game.Rect) *ebiten.Image {
	rect := image.Rect(int(math.Floor(r.X)), int(math.Floor(r.Y)), int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)))
	return dst.SubImage(rect).(*ebiten.Image)
}

func fillRect(dst *ebiten.Image, r game.Rect, c color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(dst *ebiten.Image, r game.Rect, w float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), w, c, false)
}

// drawWorld renders the playfield for snap into dst.
func (a *App) drawWorld(dst *ebiten.Image, snap *game.Snapshot) {
	pal := seasonPalettes[snap.Level.Season]
	if bg := a.assets.Backdrop(snap.Level.Season); bg != nil {
		drawSprite(dst, bg, game.Rect{W: game.ScreenWidth, H: game.ScreenHeight}, 1)
	} else {
		dst.Fill(pal.sky)
		fillRect(dst, game.Rect{Y: 80, W: game.ScreenWidth, H: game.ScreenHeight - 80}, pal.ground)
	}

	a.drawPlayer(dst, snap)
	for _, c := range snap.Creatures {
		a.drawCreature(dst, c)
	}
	for _, lane := range game.AllLanes {
		band := game.BushBand(lane)
		fillRect(dst, band, pal.bush)
		vector.StrokeLine(dst, 0, float32(band.Y), game.ScreenWidth, float32(band.Y), 2, pal.bushEdge, false)
	}
	for _, p := range snap.Projectiles {
		a.drawProjectile(dst, p)
	}
	for _, p := range snap.Powerups {
		a.drawPowerup(dst, p)
	}
	if snap.Clock != nil {
		a.drawClock(dst, *snap.Clock)
	}
	drawParticles(dst, snap)
}

func (a *App) drawPlayer(dst *ebiten.Image, snap *game.Snapshot) {
	name := SpritePlayer
	if snap.Throwing {
		name = SpritePlayerThrow
	}
	if img := a.assets.Sprite(name); img != nil {
		drawSprite(dst, img, snap.Player, 1)
		return
	}
	c := playerColor
	if snap.Throwing {
		c = playerThrowCol
	}
	r := snap.Player
	fillRect(dst, game.Rect{X: r.X + 15, Y: r.Y + 20, W: 30, H: 40}, c)
	vector.FillCircle(dst, float32(r.X+30), float32(r.Y+12), 12, color.RGBA{R: 240, G: 200, B: 170, A: 255}, true)
	if snap.Throwing {
		fillRect(dst, game.Rect{X: r.X + 45, Y: r.Y + 22, W: 15, H: 6}, c)
	}
}

// drawCreature draws c cut off at its bush line.
func (a *App) drawCreature(dst *ebiten.Image, c game.CreatureView) {
	if c.Visible <= 0 {
		return
	}
	b := c.Bounds
	clip := clipTo(dst, game.Rect{X: b.X, Y: b.Y, W: b.W, H: c.Visible})

	var name string
	var body color.RGBA
	switch c.Kind {
	case game.KindRabbit:
		name, body = SpriteRabbit, rabbitColor
		switch c.State {
		case game.RabbitFed.String():
			body = rabbitFedColor
		case game.RabbitAngry.String():
			body = rabbitAngryCol
		}
	case game.KindFox:
		name, body = SpriteFox, foxColor
		if c.State == game.FoxFed.String() {
			body = foxFedColor
		}
	case game.KindBear:
		name, body = SpriteBear, bearColor
		if c.State == game.BearDescending.String() {
			body = bearDescendCol
		}
	}
	if img := a.assets.Sprite(name); img != nil {
		alpha := float32(1)
		if c.State == game.BearDescending.String() {
			alpha = 0.5
		}
		drawSprite(clip, img, b, alpha)
		return
	}

	fillRect(clip, game.Rect{X: b.X, Y: b.Y + b.H*0.3, W: b.W, H: b.H * 0.7}, body)
	switch c.Kind {
	case game.KindRabbit:
		fillRect(clip, game.Rect{X: b.X + b.W*0.15, Y: b.Y, W: b.W * 0.15, H: b.H * 0.35}, body)
		fillRect(clip, game.Rect{X: b.X + b.W*0.4, Y: b.Y, W: b.W * 0.15, H: b.H * 0.35}, body)
	case game.KindFox:
		vector.FillCircle(clip, float32(b.X+b.W*0.2), float32(b.Y+b.H*0.3), float32(b.W*0.18), body, true)
		fillRect(clip, game.Rect{X: b.X + b.W*0.8, Y: b.Y + b.H*0.45, W: b.W * 0.2, H: b.H * 0.15}, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	case game.KindBear:
		vector.FillCircle(clip, float32(b.X+b.W*0.2), float32(b.Y+b.H*0.25), float32(b.W*0.12), body, true)
		vector.FillCircle(clip, float32(b.X+b.W*0.8), float32(b.Y+b.H*0.25), float32(b.W*0.12), body, true)
	}
	vector.FillCircle(clip, float32(b.X+b.W*0.25), float32(b.Y+b.H*0.45), 3, color.Black, true)
}

func (a *App) drawProjectile(dst *ebiten.Image, p game.ProjectileView) {
	if img := a.assets.Sprite(ammoSprites[p.Kind]); img != nil {
		drawSprite(dst, img, p.Bounds, 1)
		return
	}
	cx, cy := p.Bounds.Center()
	r := float32(p.Bounds.W / 2)
	if p.Bounds.H < p.Bounds.W {
		// Clipped berry hitbox; keep the drawn berry round.
		cy = p.Bounds.Y + p.Bounds.W/2
	}
	vector.FillCircle(dst, float32(cx), float32(cy), r*0.6, ammoColors[p.Kind], true)
}

func (a *App) drawPowerup(dst *ebiten.Image, p game.PowerupView) {
	if p.Alpha == 0 {
		return
	}
	alpha := float32(p.Alpha) / 255
	if img := a.assets.Sprite(powerupSprites[p.Kind]); img != nil {
		drawSprite(dst, img, p.Bounds, alpha)
	} else {
		cx, cy := p.Bounds.Center()
		c := p.Shade
		c.A = p.Alpha
		vector.FillCircle(dst, float32(cx), float32(cy), float32(p.Bounds.W/2-4), c, true)
	}
	if p.Phase == game.PhaseFlashing {
		outline := p.Shade
		outline.A = p.Alpha
		strokeRect(dst, p.Bounds, 2, outline)
	}
}

func (a *App) drawClock(dst *ebiten.Image, r game.Rect) {
	if img := a.assets.Sprite(SpriteClock); img != nil {
		drawSprite(dst, img, r, 1)
		return
	}
	cx, cy := r.Center()
	rad := float32(r.W / 2)
	vector.FillCircle(dst, float32(cx), float32(cy), rad, clockFrameColor, true)
	vector.FillCircle(dst, float32(cx), float32(cy), rad-4, clockFaceColor, true)
	vector.StrokeLine(dst, float32(cx), float32(cy), float32(cx), float32(cy)-rad+8, 2, color.Black, true)
	vector.StrokeLine(dst, float32(cx), float32(cy), float32(cx)+rad-10, float32(cy), 2, color.Black, true)
}

func drawParticles(dst *ebiten.Image, snap *game.Snapshot) {
	for _, p := range snap.Particles {
		switch snap.Weather {
		case game.WeatherSnow:
			vector.FillCircle(dst, float32(p.X), float32(p.Y), float32(p.Size/2), snowColor, true)
		case game.WeatherLeaves:
			c := leafColors[p.Variant%len(leafColors)]
			drawLeaf(dst, p, c)
		}
	}
}

// drawLeaf draws a rotated diamond.
func drawLeaf(dst *ebiten.Image, p game.Particle, c color.RGBA) {
	var path vector.Path
	rad := p.Rotation * math.Pi / 180
	half := p.Size / 2
	pts := [4][2]float64{{0, -half}, {half / 2, 0}, {0, half}, {-half / 2, 0}}
	for i, pt := range pts {
		x := p.X + pt[0]*math.Cos(rad) - pt[1]*math.Sin(rad)
		y := p.Y + pt[0]*math.Sin(rad) + pt[1]*math.Cos(rad)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(dst, &path, &vector.FillOptions{}, op)
}
