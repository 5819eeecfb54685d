// Package snake moves and grows the player's fragment chain.
package snake

import (
	"errors"
	"math"

	"gridsnake/internal/core"
	"gridsnake/internal/entity"
)

// ErrNilFragment is the panic value for a next-position lookup on a missing fragment.
var ErrNilFragment = errors.New("snake: fragment must exist to have a next position")

// Host is the world a controller registers its fragments with.
type Host interface {
	World() core.WorldInfo
	AddEntity(e entity.Entity)
}

// Controller owns the heading of one snake and the arena its fragments live in.
type Controller struct {
	host    Host
	world   core.WorldInfo
	heading core.Direction
	arena   []*Fragment
}

// NewController creates a controller heading in the initial direction.
func NewController(host Host, initial core.Direction) *Controller {
	return &Controller{
		host:    host,
		world:   host.World(),
		heading: initial,
	}
}

// Direction returns the current heading.
func (c *Controller) Direction() core.Direction { return c.heading }

// SetDirection changes the heading unless d would reverse the snake into itself.
// It reports whether the change was accepted.
func (c *Controller) SetDirection(d core.Direction) bool {
	if !d.Valid() || d == c.heading.Opposite() {
		return false
	}
	c.heading = d
	return true
}

// FragmentSize returns the width and height of one fragment.
func (c *Controller) FragmentSize() (int, int) {
	return c.world.CellWidth, c.world.CellHeight
}

// Register hands a fragment to the host world. It appears there from the next tick.
func (c *Controller) Register(f *Fragment) {
	c.host.AddEntity(f)
}

// SpawnHead creates the head fragment at pos and registers it.
func (c *Controller) SpawnHead(pos core.Vec2) *Fragment {
	head := c.newFragment(NoFragment, pos)
	c.Register(head)
	return head
}

// Fragment resolves a handle. It returns nil for NoFragment or an unknown handle.
func (c *Controller) Fragment(h Handle) *Fragment {
	if h < 0 || int(h) >= len(c.arena) {
		return nil
	}
	return c.arena[h]
}

// Len returns the number of fragments created so far.
func (c *Controller) Len() int { return len(c.arena) }

// Head returns the fragment without a next neighbour, or nil before SpawnHead.
func (c *Controller) Head() *Fragment {
	for _, f := range c.arena {
		if f.next == NoFragment {
			return f
		}
	}
	return nil
}

// NextPosition returns where f will be after this tick. Body fragments take
// the current position of the fragment ahead of them; the head advances one
// cell in the current heading and wraps around the world edges.
func (c *Controller) NextPosition(f *Fragment) core.Vec2 {
	if f == nil {
		panic(ErrNilFragment)
	}
	if next := f.Next(); next != nil {
		return next.Position()
	}
	return c.wrap(c.step(f))
}

func (c *Controller) newFragment(next Handle, pos core.Vec2) *Fragment {
	w, h := c.FragmentSize()
	f := &Fragment{
		ctrl:    c,
		id:      Handle(len(c.arena)),
		next:    next,
		prev:    NoFragment,
		pos:     pos,
		nextPos: pos,
		width:   w,
		height:  h,
	}
	c.arena = append(c.arena, f)
	return f
}

func (c *Controller) step(f *Fragment) core.Vec2 {
	p := f.Position()
	switch c.heading {
	case core.Left:
		p.X -= float64(f.Width())
	case core.Right:
		p.X += float64(f.Width())
	case core.Up:
		p.Y -= float64(f.Height())
	case core.Down:
		p.Y += float64(f.Height())
	}
	return p
}

func (c *Controller) wrap(p core.Vec2) core.Vec2 {
	p.X = wrapAxis(p.X, float64(c.world.WorldWidth))
	p.Y = wrapAxis(p.Y, float64(c.world.WorldHeight))
	return p
}

func wrapAxis(v, extent float64) float64 {
	if extent <= 0 {
		return v
	}
	switch {
	case v >= extent:
		v = math.Mod(v, extent)
	case v < 0:
		v = extent - math.Abs(math.Mod(v, extent))
		if v >= extent {
			v = 0
		}
	}
	return v
}
