package core

// Size is a board extent counted in cells, not pixels.
type Size struct {
	W int
	H int
}

// Cell values written into a Sim display buffer, in drawing order.
const (
	CellEmpty uint8 = iota
	CellApple
	CellBody
	CellHead
)

// Sim is what a front end drives: one Step per tick, then Cells to paint.
// Cells is row-major with Size().W columns.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
