package core

import "fmt"

// Default cell dimensions in pixels.
const (
	DefaultCellWidth  = 32
	DefaultCellHeight = 32
)

// WorldInfo describes the immutable pixel geometry of the playing field.
type WorldInfo struct {
	WorldWidth  int
	WorldHeight int
	CellWidth   int
	CellHeight  int
}

// NewWorldInfo returns a world of the given pixel size using default cells.
func NewWorldInfo(width, height int) WorldInfo {
	return NewWorldInfoCells(width, height, DefaultCellWidth, DefaultCellHeight)
}

// NewWorldInfoCells returns a world with explicit cell dimensions.
func NewWorldInfoCells(width, height, cellWidth, cellHeight int) WorldInfo {
	return WorldInfo{
		WorldWidth:  width,
		WorldHeight: height,
		CellWidth:   cellWidth,
		CellHeight:  cellHeight,
	}
}

// Validate reports geometry that cannot wrap cleanly.
func (w WorldInfo) Validate() error {
	if w.CellWidth <= 0 || w.CellHeight <= 0 {
		return fmt.Errorf("cell size must be positive, got %dx%d", w.CellWidth, w.CellHeight)
	}
	if w.WorldWidth <= 0 || w.WorldHeight <= 0 {
		return fmt.Errorf("world size must be positive, got %dx%d", w.WorldWidth, w.WorldHeight)
	}
	if w.WorldWidth%w.CellWidth != 0 || w.WorldHeight%w.CellHeight != 0 {
		return fmt.Errorf("world %dx%d is not a multiple of cell %dx%d",
			w.WorldWidth, w.WorldHeight, w.CellWidth, w.CellHeight)
	}
	return nil
}

// Columns returns the number of cells along the x axis.
func (w WorldInfo) Columns() int {
	if w.CellWidth <= 0 {
		return 0
	}
	return w.WorldWidth / w.CellWidth
}

// Rows returns the number of cells along the y axis.
func (w WorldInfo) Rows() int {
	if w.CellHeight <= 0 {
		return 0
	}
	return w.WorldHeight / w.CellHeight
}

// GridSize returns the world dimensions in cells.
func (w WorldInfo) GridSize() Size { return Size{W: w.Columns(), H: w.Rows()} }

// CellOrigins lists the top-left pixel corner of every cell, column-major.
func (w WorldInfo) CellOrigins() []Point {
	if w.CellWidth <= 0 || w.CellHeight <= 0 {
		return nil
	}
	cells := make([]Point, 0, w.Columns()*w.Rows())
	for x := 0; x < w.WorldWidth; x += w.CellWidth {
		for y := 0; y < w.WorldHeight; y += w.CellHeight {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}

// CellOf maps a pixel position to its cell coordinates, wrapping out-of-range values.
func (w WorldInfo) CellOf(p Vec2) (int, int) {
	cols, rows := w.Columns(), w.Rows()
	if cols == 0 || rows == 0 {
		return 0, 0
	}
	x := int(p.X) / w.CellWidth
	y := int(p.Y) / w.CellHeight
	x = (x%cols + cols) % cols
	y = (y%rows + rows) % rows
	return x, y
}
