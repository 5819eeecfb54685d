package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsnake/internal/core"
	"gridsnake/internal/session"
)

type view struct {
	size    core.Size
	cells   []uint8
	message string
	notice  string
}

func (v view) Size() core.Size { return v.size }
func (v view) Cells() []uint8  { return v.cells }
func (v view) Message() string { return v.message }
func (v view) Notice() string  { return v.notice }
func (v view) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Game",
		Params: []core.Parameter{core.IntParam("score", "Score", 3), core.IntParam("length", "Length", 4)},
	}}}
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(40, 12)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := s.GetContents()
	return cells[y*w+x]
}

func TestMapKey(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want session.Key
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), session.KeyUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), session.KeyDown},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), session.KeyLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), session.KeyRight},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), session.KeyEnter},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), session.KeyEscape},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), session.KeySpace},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), session.KeyNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MapKey(tc.ev))
	}
}

func TestDrawBoard(t *testing.T) {
	s := newScreen(t)
	v := view{
		size:  core.Size{W: 3, H: 2},
		cells: []uint8{core.CellEmpty, core.CellBody, core.CellHead, core.CellApple, 0, 0},
	}
	Draw(s, v)

	assert.Equal(t, []rune{tcell.RuneULCorner}, cellAt(s, 0, 0).Runes)
	assert.Equal(t, []rune{tcell.RuneLRCorner}, cellAt(s, 7, 3).Runes)

	_, bg, _ := cellAt(s, 5, 1).Style.Decompose()
	assert.Equal(t, tcell.ColorLime, bg, "head")
	_, bg, _ = cellAt(s, 6, 1).Style.Decompose()
	assert.Equal(t, tcell.ColorLime, bg, "cells span two columns")
	_, bg, _ = cellAt(s, 1, 2).Style.Decompose()
	assert.Equal(t, tcell.ColorRed, bg, "apple")

	status := ""
	for x := 0; x < 19; x++ {
		status += string(cellAt(s, x, 4).Runes)
	}
	assert.Equal(t, "Score: 3  Length: 4", status)
}

func TestDrawMessageAndNotice(t *testing.T) {
	s := newScreen(t)
	v := view{
		size:    core.Size{W: 10, H: 4},
		cells:   make([]uint8, 40),
		message: "Hi\nthere",
		notice:  "sound: off",
	}
	Draw(s, v)
	assert.Equal(t, []rune{'H'}, cellAt(s, 2, 1).Runes)
	assert.Equal(t, []rune{'t'}, cellAt(s, 2, 2).Runes)
	assert.Equal(t, []rune{'s'}, cellAt(s, 0, 7).Runes)
}
