package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// palette holds the approximate RGB value a terminal shows for each color.
// ColorDefault is absent: it is never chosen when matching image pixels.
var palette = map[Color]color.RGBA{
	ColorRed:           {205, 0, 0, 255},
	ColorGreen:         {0, 205, 0, 255},
	ColorYellow:        {205, 205, 0, 255},
	ColorBlue:          {0, 0, 238, 255},
	ColorMagenta:       {205, 0, 205, 255},
	ColorCyan:          {0, 205, 205, 255},
	ColorWhite:         {229, 229, 229, 255},
	ColorBrightRed:     {255, 0, 0, 255},
	ColorBrightGreen:   {0, 255, 0, 255},
	ColorBrightYellow:  {255, 255, 0, 255},
	ColorBrightBlue:    {92, 92, 255, 255},
	ColorBrightMagenta: {255, 0, 255, 255},
	ColorBrightCyan:    {0, 255, 255, 255},
	ColorBrightWhite:   {255, 255, 255, 255},
	ColorOrange:        {255, 135, 0, 255},
	ColorGray:          {138, 138, 138, 255},
}

// NearestColor returns the palette color closest to c in RGB space.
func NearestColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	r8, g8, b8 := int(r>>8), int(g>>8), int(b>>8)

	best := ColorWhite
	bestDist := -1
	// Iterate in declaration order so ties resolve the same way every time
	for col := ColorRed; col <= ColorGray; col++ {
		p := palette[col]
		dr := r8 - int(p.R)
		dg := g8 - int(p.G)
		db := b8 - int(p.B)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best = col
			bestDist = dist
		}
	}
	return best
}
