package tui

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/lane-dodger/internal/assets"
	"github.com/vovakirdan/lane-dodger/internal/games/lanedodger"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestArtSprites(t *testing.T) {
	pack := &assets.Pack{
		Player:     solid(80, 60, color.RGBA{0, 255, 255, 255}),
		Meteorite:  solid(140, 110, color.RGBA{130, 130, 130, 255}),
		Pirate:     solid(140, 110, color.RGBA{255, 0, 0, 255}),
		Background: solid(480, 720, color.RGBA{5, 5, 20, 255}),
	}
	art := NewArt(pack)

	sp := art.Sprite(lanedodger.SpritePlayer, 9, 3)
	if sp == nil || sp.W != 9 || sp.H != 3 {
		t.Fatalf("player sprite = %+v, expected 9x3", sp)
	}
	if c := sp.At(4, 1); c.Rune != '█' {
		t.Errorf("player cell rune = %q", c.Rune)
	}

	if again := art.Sprite(lanedodger.SpritePlayer, 9, 3); again != sp {
		t.Error("same size should hit the cache")
	}

	// Dark sky is dropped entirely
	bg := art.Sprite(lanedodger.SpriteBackground, 10, 10)
	for y := 0; y < bg.H; y++ {
		for x := 0; x < bg.W; x++ {
			if bg.At(x, y).Rune != 0 {
				t.Fatalf("dark background pixel at %d,%d should be transparent", x, y)
			}
		}
	}

	if art.Sprite("unknown", 3, 3) != nil {
		t.Error("unknown sprite should be nil")
	}
	if art.Sprite(lanedodger.SpritePirate, 0, 3) != nil {
		t.Error("zero-size sprite should be nil")
	}
}
