package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/lane-dodger/internal/assets"
	"github.com/vovakirdan/lane-dodger/internal/games/lanedodger"
)

var (
	colorBullet   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorWhite    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorRed      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorDim      = color.RGBA{A: 180}
	colorFallback = map[string]color.RGBA{
		lanedodger.SpritePlayer:    {R: 173, G: 216, B: 230, A: 255},
		lanedodger.SpriteMeteorite: {R: 128, G: 128, B: 128, A: 255},
		lanedodger.SpritePirate:    {R: 255, G: 0, B: 0, A: 255},
	}
)

// Text sizes in logical pixels.
const (
	sizeHUD      = 24
	sizeTitle    = 64
	sizeScore    = 40
	sizeHint     = 22
	hudMargin    = 10
	hudLineStep  = 28
	hintLineStep = 30
)

// images holds the GPU copies of the asset pack.
type images struct {
	player     *ebiten.Image
	meteorite  *ebiten.Image
	pirate     *ebiten.Image
	background *ebiten.Image
}

func newImages(pack *assets.Pack) images {
	if pack == nil {
		return images{}
	}
	return images{
		player:     toEbiten(pack.Player),
		meteorite:  toEbiten(pack.Meteorite),
		pirate:     toEbiten(pack.Pirate),
		background: toEbiten(pack.Background),
	}
}

func toEbiten(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

// fonts holds one face per text size.
type fonts struct {
	hud, title, score, hint *text.GoTextFace
}

func newFonts() (fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fonts{}, fmt.Errorf("window: load font: %w", err)
	}
	face := func(size float64) *text.GoTextFace {
		return &text.GoTextFace{Source: src, Size: size}
	}
	return fonts{
		hud:   face(sizeHUD),
		title: face(sizeTitle),
		score: face(sizeScore),
		hint:  face(sizeHint),
	}, nil
}

// drawFrame renders a snapshot at logical resolution.
func (w *Window) drawFrame(screen *ebiten.Image, snap lanedodger.Snapshot) {
	screen.Fill(color.Black)
	w.drawBackground(screen, snap.Scroll)

	for _, o := range snap.Obstacles {
		switch o.Kind {
		case lanedodger.KindMeteorite:
			drawSprite(screen, w.images.meteorite, o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H, lanedodger.SpriteMeteorite)
		case lanedodger.KindPirate:
			drawSprite(screen, w.images.pirate, o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H, lanedodger.SpritePirate)
		}
	}
	for _, b := range snap.Bullets {
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorBullet, false)
	}
	p := snap.Player
	drawSprite(screen, w.images.player, p.X, p.Y, p.W, p.H, lanedodger.SpritePlayer)

	drawText(screen, fmt.Sprintf("Score: %d", snap.Score), w.fonts.hud,
		float64(w.layout.ScreenW-hudMargin), hudMargin, colorWhite, text.AlignEnd, text.AlignStart)
	drawText(screen, fmt.Sprintf("Best: %d", w.bestScore(snap.Score)), w.fonts.hud,
		float64(w.layout.ScreenW-hudMargin), hudMargin+hudLineStep, colorWhite, text.AlignEnd, text.AlignStart)

	if snap.Phase == lanedodger.PhaseGameOver {
		w.drawGameOver(screen, snap.Score)
	}
}

// drawBackground stamps two stacked copies at offset and offset - height.
func (w *Window) drawBackground(screen *ebiten.Image, scroll int) {
	bg := w.images.background
	if bg == nil {
		return
	}
	h := bg.Bounds().Dy()
	y1 := scroll % h
	for _, y := range []int{y1, y1 - h} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, float64(y))
		screen.DrawImage(bg, op)
	}
}

// drawSprite draws img at (x, y) or a plain rectangle when img is nil.
func drawSprite(screen, img *ebiten.Image, x, y, w, h int, name string) {
	if img == nil {
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colorFallback[name], false)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

// drawGameOver dims the frame and draws the overlay text.
func (w *Window) drawGameOver(screen *ebiten.Image, score int) {
	sw, sh := float32(w.layout.ScreenW), float32(w.layout.ScreenH)
	vector.FillRect(screen, 0, 0, sw, sh, colorDim, false)

	lines := lanedodger.OverlayLines(score)
	cx := float64(w.layout.ScreenW) / 2
	h := float64(w.layout.ScreenH)
	center := func(s string, face *text.GoTextFace, y float64, c color.Color) {
		drawText(screen, s, face, cx, y, c, text.AlignCenter, text.AlignCenter)
	}
	center(lines[0], w.fonts.title, h/4, colorRed)
	center(lines[1], w.fonts.score, h/2, colorWhite)
	center(lines[2], w.fonts.hint, h*3/4, colorWhite)
	center(lines[3], w.fonts.hint, h*3/4+hintLineStep, colorWhite)
}

func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color, ax, ay text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = ax
	op.SecondaryAlign = ay
	text.Draw(screen, s, face, op)
}
