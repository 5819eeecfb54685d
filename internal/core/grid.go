package core

// ByteGrid is the per-cell display buffer a Sim hands to the front ends.
// Coordinates outside the board wrap around, matching the snake's movement.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates an empty board; non-positive sides are clamped to one cell.
func NewByteGrid(w, h int) *ByteGrid {
	w, h = max(w, 1), max(h, 1)
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells returns the row-major backing slice.
func (g *ByteGrid) Cells() []uint8 { return g.data }

func (g *ByteGrid) offset(x, y int) int {
	x %= g.W
	if x < 0 {
		x += g.W
	}
	y %= g.H
	if y < 0 {
		y += g.H
	}
	return y*g.W + x
}

// At reads the cell at (x, y).
func (g *ByteGrid) At(x, y int) uint8 { return g.data[g.offset(x, y)] }

// Set overwrites the cell at (x, y).
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[g.offset(x, y)] = v }

// Paint writes v unless the cell already holds a value drawn above it.
// Cell constants are ordered so a larger value covers a smaller one.
func (g *ByteGrid) Paint(x, y int, v uint8) {
	if i := g.offset(x, y); v >= g.data[i] {
		g.data[i] = v
	}
}

// Count returns how many cells hold v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Clear empties the board.
func (g *ByteGrid) Clear() { clear(g.data) }
