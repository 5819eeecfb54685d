//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one texel per cell and scales it up to cell size when drawing.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of w*h cells.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &GridPainter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		palette: palette,
	}
}

// Blit uploads cells and draws them onto dst, each cell cellW by cellH pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, cellW, cellH int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	FillRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellW), float64(cellH))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions in cells.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
