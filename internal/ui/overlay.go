//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MessageSource supplies the text drawn over the board.
type MessageSource interface {
	Message() string
	Notice() string
}

// Overlay draws the current message and any notice on top of the board.
type Overlay struct {
	src   MessageSource
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src MessageSource) *Overlay {
	o := &Overlay{src: src}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the overlay onto the board area, width by height pixels.
func (o *Overlay) Draw(screen *ebiten.Image, width, height int) {
	if msg := o.src.Message(); msg != "" {
		o.drawRect(screen, 0, 0, float64(width), float64(height), backdrop)
		o.drawLines(screen, msg, overlayPadding, overlayPadding+headerBaseline, messageColor)
	}
	if notice := o.src.Notice(); notice != "" {
		y := height - overlayPadding
		o.drawRect(screen, 0, float64(y-headerBaseline), float64(width), float64(headerBaseline+overlayPadding), backdrop)
		o.drawLines(screen, notice, overlayPadding, y, noticeColor)
	}
}

func (o *Overlay) drawLines(screen *ebiten.Image, msg string, x, y int, col color.Color) {
	face := basicfont.Face7x13
	for _, line := range strings.Split(msg, "\n") {
		text.Draw(screen, line, face, x, y, col)
		y += lineHeight
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

var (
	backdrop     = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	messageColor = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	noticeColor  = color.RGBA{R: 255, G: 170, B: 80, A: 255}
)

const overlayPadding = 16
