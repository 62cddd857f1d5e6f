package core

import "image"

// Sprite is a small rectangular block of cells that can be stamped onto a Screen.
// A cell with a zero Rune is transparent.
type Sprite struct {
	W, H  int
	cells []Cell
}

// NewSprite creates a fully transparent sprite.
func NewSprite(w, h int) *Sprite {
	w = Max(w, 0)
	h = Max(h, 0)
	return &Sprite{W: w, H: h, cells: make([]Cell, w*h)}
}

// At returns the cell at (x, y), or a transparent cell when out of bounds.
func (sp *Sprite) At(x, y int) Cell {
	if x < 0 || x >= sp.W || y < 0 || y >= sp.H {
		return Cell{}
	}
	return sp.cells[y*sp.W+x]
}

// Set stores a cell at (x, y). Out-of-bounds writes are ignored.
func (sp *Sprite) Set(x, y int, c Cell) {
	if x < 0 || x >= sp.W || y < 0 || y >= sp.H {
		return
	}
	sp.cells[y*sp.W+x] = c
}

// SpriteSource provides sprites by name, sized in cells.
// Implementations return nil when they have no art for the name.
type SpriteSource interface {
	Sprite(name string, w, h int) *Sprite
}

// SpriteOptions controls how image pixels become cells.
type SpriteOptions struct {
	Glyph      rune  // Rune used for opaque pixels
	BrightRune rune  // Optional rune for pixels at or above BrightLuma
	BrightLuma uint8 // Threshold for BrightRune
	MinLuma    uint8 // Pixels darker than this are treated as transparent
}

// SpriteFromImage converts an image into a sprite with one cell per pixel.
// Pixels that are mostly transparent or darker than MinLuma are left empty;
// the rest take the nearest palette color.
func SpriteFromImage(img image.Image, opts SpriteOptions) *Sprite {
	b := img.Bounds()
	sp := NewSprite(b.Dx(), b.Dy())
	glyph := opts.Glyph
	if glyph == 0 {
		glyph = '█'
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			px := img.At(b.Min.X+x, b.Min.Y+y)
			r, g, bl, a := px.RGBA()
			if a < 0x8000 {
				continue
			}
			luma := uint8((299*r + 587*g + 114*bl) / 1000 >> 8)
			if luma < opts.MinLuma {
				continue
			}
			ch := glyph
			if opts.BrightRune != 0 && luma >= opts.BrightLuma {
				ch = opts.BrightRune
			}
			sp.Set(x, y, Cell{Rune: ch, Color: NearestColor(px)})
		}
	}
	return sp
}
