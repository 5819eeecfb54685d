package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteGridWraps(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(-1, -1, CellHead)
	assert.Equal(t, CellHead, g.At(3, 2))

	g.Set(4, 3, CellApple)
	assert.Equal(t, CellApple, g.At(0, 0))

	g.Clear()
	assert.Equal(t, 12, g.Count(CellEmpty))
}

func TestByteGridPaintLayers(t *testing.T) {
	g := NewByteGrid(3, 1)

	g.Paint(0, 0, CellHead)
	g.Paint(0, 0, CellBody)
	g.Paint(0, 0, CellApple)
	assert.Equal(t, CellHead, g.At(0, 0), "head stays on top")

	g.Paint(1, 0, CellApple)
	g.Paint(1, 0, CellBody)
	assert.Equal(t, CellBody, g.At(1, 0))

	g.Paint(2, 0, CellBody)
	g.Paint(2, 0, CellHead)
	assert.Equal(t, CellHead, g.At(2, 0))

	assert.Equal(t, 2, g.Count(CellHead))
	assert.Equal(t, 0, g.Count(CellApple))
}

func TestNewByteGridClampsSize(t *testing.T) {
	g := NewByteGrid(0, -2)
	assert.Equal(t, 1, g.W)
	assert.Equal(t, 1, g.H)
	assert.Len(t, g.Cells(), 1)
}
