package lanedodger

import (
	"fmt"

	"github.com/vovakirdan/lane-dodger/internal/core"
)

// Sprite names requested from the sprite source.
const (
	SpritePlayer     = "player"
	SpriteMeteorite  = "meteorite"
	SpritePirate     = "pirate"
	SpriteBackground = "background"
)

// Smallest viewport that still fits the game over text.
const (
	minViewW = 30
	minViewH = 20
)

// cellAspect is how many times taller than wide a terminal cell is.
const cellAspect = 2

// Overlay text, shown centered over the frozen last frame.
const (
	textGameOver  = "GAME OVER"
	textPlayAgain = "Press ANY KEY to play again"
	textQuit      = "or ESCAPE to quit"
)

// Viewport returns the cell rectangle the playfield occupies on a w x h
// screen: as large as possible, centered, keeping the playfield aspect ratio.
func (l Layout) Viewport(w, h int) core.Rect {
	vh := h
	vw := vh * l.ScreenW * cellAspect / l.ScreenH
	if vw > w {
		vw = w
		vh = vw * l.ScreenH / (l.ScreenW * cellAspect)
	}
	return core.NewRect((w-vw)/2, (h-vh)/2, vw, vh)
}

// projection maps playfield pixels to viewport cells.
type projection struct {
	w, h   int // viewport size in cells
	sw, sh int // playfield size in pixels
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (p projection) x(px int) int { return floorDiv(px*p.w, p.sw) }
func (p projection) y(py int) int { return floorDiv(py*p.h, p.sh) }

// size converts a pixel size to cells, never less than one cell.
func (p projection) size(pw, ph int) (int, int) {
	return core.Max(1, (pw*p.w+p.sw/2)/p.sw), core.Max(1, (ph*p.h+p.sh/2)/p.sh)
}

// Render draws the playfield into dst. The playfield is letterboxed to keep
// its shape; the HUD and the game over overlay are drawn inside it.
func (g *Game) Render(dst *core.Screen) {
	vp := g.layout.Viewport(dst.Width(), dst.Height())
	if vp.W < minViewW || vp.H < minViewH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	if g.viewport == nil {
		g.viewport = core.NewScreen(vp.W, vp.H)
	} else {
		g.viewport.Resize(vp.W, vp.H)
	}
	view := g.viewport
	view.Clear()

	p := projection{w: vp.W, h: vp.H, sw: g.layout.ScreenW, sh: g.layout.ScreenH}
	s := g.session

	g.drawBackground(view, p)

	for _, o := range s.Obstacles {
		switch o.Kind {
		case KindMeteorite:
			g.drawEntity(view, p, o.Rect, SpriteMeteorite, core.ColorGray)
		case KindPirate:
			g.drawEntity(view, p, o.Rect, SpritePirate, core.ColorRed)
		}
	}
	for _, b := range s.Bullets {
		w, h := p.size(b.Rect.W, b.Rect.H)
		view.FillRect(core.NewRect(p.x(b.Rect.X), p.y(b.Rect.Y), w, h), core.Cell{Rune: '┃', Color: core.ColorBrightYellow})
	}
	g.drawEntity(view, p, s.Player.Rect, SpritePlayer, core.ColorBrightCyan)

	score := fmt.Sprintf("Score: %d", s.Score)
	view.DrawTextColored(vp.W-len(score)-1, 0, score, core.ColorBrightWhite)

	if g.phase == PhaseGameOver {
		drawGameOver(view, s.Score)
	}

	dst.Blit(vp.X, vp.Y, view)
}

// drawBackground stamps two stacked copies of the background so the scroll
// wraps without a gap.
func (g *Game) drawBackground(view *core.Screen, p projection) {
	if g.sprites == nil {
		return
	}
	w := view.Width()
	h := core.Max(1, g.layout.BgHeight*p.h/p.sh)
	bg := g.sprites.Sprite(SpriteBackground, w, h)
	if bg == nil {
		return
	}
	y1 := p.y(g.session.Scroll)
	view.DrawSprite(0, y1, bg)
	view.DrawSprite(0, y1-h, bg)
}

// drawEntity draws the named sprite over r, or a colored block when there
// is no art for it.
func (g *Game) drawEntity(view *core.Screen, p projection, r core.Rect, name string, fallback core.Color) {
	w, h := p.size(r.W, r.H)
	x, y := p.x(r.X), p.y(r.Y)

	if g.sprites != nil {
		if sp := g.sprites.Sprite(name, w, h); sp != nil {
			view.DrawSprite(x, y, sp)
			return
		}
	}
	view.FillRect(core.NewRect(x, y, w, h), core.Cell{Rune: '█', Color: fallback})
}

// drawGameOver dims the frame and prints the overlay text.
func drawGameOver(view *core.Screen, score int) {
	w, h := view.Width(), view.Height()
	view.Tint(core.NewRect(0, 0, w, h), core.ColorGray)

	lines := OverlayLines(score)
	centerText(view, h/4, lines[0], core.ColorBrightRed)
	centerText(view, h/2, lines[1], core.ColorBrightWhite)
	centerText(view, h*3/4, lines[2], core.ColorBrightWhite)
	centerText(view, h*3/4+1, lines[3], core.ColorBrightWhite)
}

// centerText writes text centered on row y with a blank cell of padding on
// each side so it stays readable over sprites.
func centerText(view *core.Screen, y int, text string, c core.Color) {
	n := len([]rune(text))
	x := (view.Width() - n) / 2
	view.FillRect(core.NewRect(x-1, y, n+2, 1), core.Cell{Rune: ' '})
	view.DrawTextColored(x, y, text, c)
}
