//go:build ebiten

package app

import (
	"gridsnake/internal/core"
	"gridsnake/internal/render"
	"gridsnake/internal/session"
	"gridsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the status panel next to the board.
const HUDWidth = 200

var keymap = []struct {
	key ebiten.Key
	to  session.Key
}{
	{ebiten.KeyArrowUp, session.KeyUp},
	{ebiten.KeyArrowDown, session.KeyDown},
	{ebiten.KeyArrowLeft, session.KeyLeft},
	{ebiten.KeyArrowRight, session.KeyRight},
	{ebiten.KeySpace, session.KeySpace},
	{ebiten.KeyEnter, session.KeyEnter},
	{ebiten.KeyEscape, session.KeyEscape},
}

// Game adapts a play session to the ebiten.Game interface. ebiten calls
// Update at its own TPS; the session only ticks when the fixed step elapses.
type Game struct {
	sess    *session.Session
	world   core.WorldInfo
	step    *core.FixedStep
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
}

// New constructs a Game for the provided session.
func New(sess *session.Session, world core.WorldInfo, tick *core.FixedStep) *Game {
	size := sess.Size()
	return &Game{
		sess:    sess,
		world:   world,
		step:    tick,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette),
		hud:     ui.NewHUD(sess, HUDWidth),
		overlay: ui.NewOverlay(sess),
	}
}

// Update handles key presses and advances the session on each fixed step.
func (g *Game) Update() error {
	for _, k := range keymap {
		if !inpututil.IsKeyJustPressed(k.key) {
			continue
		}
		if g.sess.HandleKey(k.to) {
			return ebiten.Termination
		}
	}
	if g.step.ShouldStep() {
		g.sess.Update()
	}
	g.hud.Update()
	return nil
}

// Draw renders the board, the message overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Cells(), g.world.CellWidth, g.world.CellHeight)
	g.overlay.Draw(screen, g.world.WorldWidth, g.world.WorldHeight)
	g.hud.Draw(screen, g.world.WorldWidth, g.world.WorldHeight)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.WorldWidth + g.hud.Width(), g.world.WorldHeight
}
