package tui

import (
	"image"

	"github.com/vovakirdan/lane-dodger/internal/assets"
	"github.com/vovakirdan/lane-dodger/internal/core"
	"github.com/vovakirdan/lane-dodger/internal/games/lanedodger"
)

// Art converts loaded images into cell sprites on demand.
// Sprites are cached per size, so a resize costs one conversion per sprite.
type Art struct {
	images  map[string]image.Image
	options map[string]core.SpriteOptions
	cache   map[artKey]*core.Sprite
}

type artKey struct {
	name string
	w, h int
}

// NewArt builds the sprite source for Lane Dodger from a loaded asset pack.
func NewArt(pack *assets.Pack) *Art {
	ship := core.SpriteOptions{Glyph: '█', MinLuma: 16}
	return &Art{
		images: map[string]image.Image{
			lanedodger.SpritePlayer:     pack.Player,
			lanedodger.SpriteMeteorite:  pack.Meteorite,
			lanedodger.SpritePirate:     pack.Pirate,
			lanedodger.SpriteBackground: pack.Background,
		},
		options: map[string]core.SpriteOptions{
			lanedodger.SpritePlayer:    ship,
			lanedodger.SpriteMeteorite: {Glyph: '▓', MinLuma: 16},
			lanedodger.SpritePirate:    ship,
			// Only stars survive; the dark sky stays blank
			lanedodger.SpriteBackground: {Glyph: '·', BrightRune: '*', BrightLuma: 200, MinLuma: 90},
		},
		cache: make(map[artKey]*core.Sprite),
	}
}

// Sprite implements core.SpriteSource.
func (a *Art) Sprite(name string, w, h int) *core.Sprite {
	k := artKey{name: name, w: w, h: h}
	if sp, ok := a.cache[k]; ok {
		return sp
	}
	img, ok := a.images[name]
	if !ok || img == nil || w <= 0 || h <= 0 {
		return nil
	}
	sp := core.SpriteFromImage(assets.Scale(img, w, h), a.options[name])
	a.cache[k] = sp
	return sp
}
