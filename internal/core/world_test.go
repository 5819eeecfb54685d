package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldInfoDefaults(t *testing.T) {
	w := NewWorldInfo(640, 480)
	require.Equal(t, 32, w.CellWidth)
	require.Equal(t, 32, w.CellHeight)
	require.NoError(t, w.Validate())
	require.Equal(t, Size{W: 20, H: 15}, w.GridSize())
}

func TestWorldInfoValidate(t *testing.T) {
	assert.Error(t, NewWorldInfoCells(100, 96, 32, 32).Validate(), "width not a multiple of cell")
	assert.Error(t, NewWorldInfoCells(96, 100, 32, 32).Validate(), "height not a multiple of cell")
	assert.Error(t, NewWorldInfoCells(96, 96, 0, 32).Validate())
	assert.Error(t, NewWorldInfoCells(0, 96, 32, 32).Validate())
	assert.NoError(t, NewWorldInfoCells(96, 64, 32, 32).Validate())
}

func TestCellOriginsCoverGrid(t *testing.T) {
	w := NewWorldInfoCells(96, 64, 32, 32)
	cells := w.CellOrigins()
	require.Len(t, cells, 6)

	seen := map[Point]bool{}
	for _, c := range cells {
		require.Zero(t, c.X%32)
		require.Zero(t, c.Y%32)
		require.Less(t, c.X, 96)
		require.Less(t, c.Y, 64)
		seen[c] = true
	}
	require.Len(t, seen, 6, "origins must be unique")
}

func TestCellOfWraps(t *testing.T) {
	w := NewWorldInfoCells(96, 64, 32, 32)

	x, y := w.CellOf(Vec2{X: 64, Y: 32})
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)

	x, y = w.CellOf(Vec2{X: 96, Y: 64})
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}
