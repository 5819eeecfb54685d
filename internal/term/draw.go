package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/core"
)

// View is what the terminal needs from a session.
type View interface {
	Size() core.Size
	Cells() []uint8
	Message() string
	Notice() string
	Parameters() core.ParameterSnapshot
}

// Each board cell is two terminal columns wide so it looks square.
const cellCols = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	noticeStyle = tcell.StyleDefault.Foreground(tcell.ColorOrange)

	cellStyles = [...]tcell.Style{
		core.CellEmpty: tcell.StyleDefault,
		core.CellBody:  tcell.StyleDefault.Background(tcell.ColorGreen),
		core.CellHead:  tcell.StyleDefault.Background(tcell.ColorLime),
		core.CellApple: tcell.StyleDefault.Background(tcell.ColorRed),
	}
)

// Draw paints the board inside a border, the status line below it and any message on top.
func Draw(s tcell.Screen, v View) {
	s.Clear()
	size := v.Size()
	cells := v.Cells()
	width := size.W*cellCols + 2
	height := size.H + 2

	drawBorder(s, width, height)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := cells[y*size.W+x]
			if int(c) >= len(cellStyles) {
				c = core.CellEmpty
			}
			for i := 0; i < cellCols; i++ {
				s.SetContent(1+x*cellCols+i, 1+y, ' ', nil, cellStyles[c])
			}
		}
	}

	drawText(s, 0, height, statusLine(v.Parameters()), textStyle)
	if notice := v.Notice(); notice != "" {
		drawText(s, 0, height+1, notice, noticeStyle)
	}
	if msg := v.Message(); msg != "" {
		for i, line := range strings.Split(msg, "\n") {
			drawText(s, 2, 1+i, line, textStyle)
		}
	}
	s.Show()
}

func statusLine(snap core.ParameterSnapshot) string {
	var parts []string
	for _, key := range []string{"score", "length", "state"} {
		if p, ok := snap.Lookup(key); ok {
			parts = append(parts, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return strings.Join(parts, "  ")
}

func drawBorder(s tcell.Screen, w, h int) {
	for x := 1; x < w-1; x++ {
		s.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		s.SetContent(x, h-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y < h-1; y++ {
		s.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		s.SetContent(w-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	s.SetContent(0, 0, tcell.RuneULCorner, nil, borderStyle)
	s.SetContent(w-1, 0, tcell.RuneURCorner, nil, borderStyle)
	s.SetContent(0, h-1, tcell.RuneLLCorner, nil, borderStyle)
	s.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, borderStyle)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
