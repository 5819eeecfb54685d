package entity

import (
	"sync"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/timer"
)

// Apple is a collectible that disappears when eaten or when its lifespan runs out.
type Apple struct {
	pos    core.Vec2
	width  int
	height int

	lifespan *timer.PausableTimer

	mu      sync.Mutex
	removed bool
	paused  bool
}

// NewApple places an apple and starts its lifespan countdown.
func NewApple(pos core.Vec2, width, height int, lifespan time.Duration, clock timer.Clock) *Apple {
	a := &Apple{pos: pos, width: width, height: height}
	a.lifespan = timer.NewPausable(clock, lifespan, false, a.Remove)
	a.lifespan.Start()
	return a
}

func (a *Apple) Position() core.Vec2 { return a.pos }
func (a *Apple) Width() int          { return a.width }
func (a *Apple) Height() int         { return a.height }
func (a *Apple) Tag() Tag            { return TagApple }

// BoxCollider returns the apple's bounding box.
func (a *Apple) BoxCollider() core.Rect { return core.RectAt(a.pos, a.width, a.height) }

// OnCollision removes the apple. Only the first collision is reported.
func (a *Apple) OnCollision(Collidable) bool {
	return a.remove()
}

// Remove marks the apple removed and stops its lifespan timer. Repeated calls are no-ops.
func (a *Apple) Remove() { a.remove() }

func (a *Apple) remove() bool {
	a.mu.Lock()
	if a.removed {
		a.mu.Unlock()
		return false
	}
	a.removed = true
	a.mu.Unlock()
	a.lifespan.Dispose()
	return true
}

// IsRemoved reports whether the apple was eaten or expired.
func (a *Apple) IsRemoved() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.removed
}

// Pause freezes the lifespan countdown.
func (a *Apple) Pause() {
	a.mu.Lock()
	if a.removed || a.paused {
		a.mu.Unlock()
		return
	}
	a.paused = true
	a.mu.Unlock()
	a.lifespan.Pause()
}

// Resume continues the lifespan countdown.
func (a *Apple) Resume() {
	a.mu.Lock()
	if a.removed || !a.paused {
		a.mu.Unlock()
		return
	}
	a.paused = false
	a.mu.Unlock()
	a.lifespan.Resume()
}

// IsPaused reports whether the lifespan countdown is frozen.
func (a *Apple) IsPaused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}

// Remaining returns the lifespan left.
func (a *Apple) Remaining() time.Duration { return a.lifespan.Remaining() }

// Dispose removes the apple.
func (a *Apple) Dispose() { a.remove() }
