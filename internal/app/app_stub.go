//go:build !ebiten

package app

import (
	"fmt"

	snd "gridsnake/internal/audio"
	"gridsnake/internal/core"
	"gridsnake/internal/session"
)

// HUDWidth is the width of the status panel next to the board.
const HUDWidth = 200

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*session.Session, core.WorldInfo, *core.FixedStep) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// Beeper is silent in the headless build.
type Beeper struct{}

// NewBeeper returns a silent player.
func NewBeeper(snd.Tone) *Beeper { return &Beeper{} }

// Play reports that GUI audio is unavailable.
func (b *Beeper) Play() error {
	return fmt.Errorf("ebiten audio requires building with the 'ebiten' tag")
}
