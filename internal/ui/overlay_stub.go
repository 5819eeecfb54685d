//go:build !ebiten

package ui

// MessageSource supplies the text drawn over the board.
type MessageSource interface {
	Message() string
	Notice() string
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(MessageSource) *Overlay { return &Overlay{} }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int, int) {}
