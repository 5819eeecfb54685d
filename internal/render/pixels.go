// Package render turns the session's display buffer into pixels.
package render

import (
	"image/color"

	"gridsnake/internal/core"
)

// Palette maps a display cell value to its colour. Values past the end use the last entry.
type Palette []color.RGBA

// DefaultPalette is a dark board with a green snake and red apples.
var DefaultPalette = Palette{
	core.CellEmpty: {R: 18, G: 20, B: 24, A: 255},
	core.CellApple: {R: 220, G: 50, B: 60, A: 255},
	core.CellBody:  {R: 64, G: 170, B: 90, A: 255},
	core.CellHead:  {R: 140, G: 230, B: 120, A: 255},
}

// FillRGBA converts cell values into RGBA pixels in buf. When the palette is
// empty the buffer is cleared to transparent black.
func FillRGBA(buf []byte, cells []uint8, palette Palette) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
