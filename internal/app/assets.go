package app

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Food-Throw/internal/game"
)

// Sprite names looked up in the art directory, without the .png suffix.
const (
	SpritePlayer      = "player"
	SpritePlayerThrow = "player_throw"
	SpriteRabbit      = "rabbit"
	SpriteFox         = "fox"
	SpriteBear        = "bear"
	SpriteCarrot      = "carrot"
	SpriteBerry       = "berry"
	SpriteHoney       = "honey"
	SpriteBanana      = "banana"
	SpritePineapple   = "pineapple"
	SpriteApple       = "apple"
	SpriteClock       = "clock"
)

// RequiredSprites must all be present in an art directory.
var RequiredSprites = []string{
	SpritePlayer, SpritePlayerThrow, SpriteRabbit, SpriteFox, SpriteBear,
	SpriteCarrot, SpriteBerry, SpriteHoney, SpriteBanana, SpritePineapple,
	SpriteApple, SpriteClock,
}

// Backdrops are optional per-season background images.
var backdropNames = map[game.Season]string{
	game.SeasonSummer: "background_summer",
	game.SeasonAutumn: "background_autumn",
	game.SeasonWinter: "background_winter",
}

// Assets holds loaded sprites. A nil *Assets means draw procedural shapes.
type Assets struct {
	sprites   map[string]*ebiten.Image
	backdrops map[game.Season]*ebiten.Image
}

// decodeArt reads every required sprite and any backdrop from dir.
func decodeArt(dir string) (map[string]image.Image, map[game.Season]image.Image, error) {
	sprites := make(map[string]image.Image, len(RequiredSprites))
	for _, name := range RequiredSprites {
		img, err := decodePNG(filepath.Join(dir, name+".png"))
		if err != nil {
			return nil, nil, fmt.Errorf("assets: sprite %s: %w", name, err)
		}
		sprites[name] = img
	}
	backdrops := map[game.Season]image.Image{}
	for season, name := range backdropNames {
		path := filepath.Join(dir, name+".png")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		img, err := decodePNG(path)
		if err != nil {
			return nil, nil, fmt.Errorf("assets: backdrop %s: %w", name, err)
		}
		backdrops[season] = img
	}
	return sprites, backdrops, nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// LoadAssets loads the art directory. An empty dir returns nil, nil.
func LoadAssets(dir string) (*Assets, error) {
	if dir == "" {
		return nil, nil
	}
	sprites, backdrops, err := decodeArt(dir)
	if err != nil {
		return nil, err
	}
	a := &Assets{
		sprites:   make(map[string]*ebiten.Image, len(sprites)),
		backdrops: make(map[game.Season]*ebiten.Image, len(backdrops)),
	}
	for name, img := range sprites {
		a.sprites[name] = ebiten.NewImageFromImage(img)
	}
	for season, img := range backdrops {
		a.backdrops[season] = ebiten.NewImageFromImage(img)
	}
	return a, nil
}

// Sprite returns the named sprite, nil when running procedural.
func (a *Assets) Sprite(name string) *ebiten.Image {
	if a == nil {
		return nil
	}
	return a.sprites[name]
}

// Backdrop returns the season's background, nil when not supplied.
func (a *Assets) Backdrop(s game.Season) *ebiten.Image {
	if a == nil {
		return nil
	}
	return a.backdrops[s]
}

// drawSprite scales img into box r.
func drawSprite(dst, img *ebiten.Image, r game.Rect, alpha float32) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(img, op)
}
