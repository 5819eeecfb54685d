package snake

import (
	"gridsnake/internal/core"
	"gridsnake/internal/entity"
)

// Handle addresses a fragment inside its controller's arena.
type Handle int32

// NoFragment marks a missing neighbour.
const NoFragment Handle = -1

// Fragment is one cell-sized segment of the snake. next points toward the
// head and never changes; prev points toward the tail and is set once, when
// the snake grows past this fragment.
type Fragment struct {
	ctrl *Controller
	id   Handle
	next Handle
	prev Handle

	pos     core.Vec2
	nextPos core.Vec2
	width   int
	height  int

	disposed bool
}

func (f *Fragment) Position() core.Vec2 { return f.pos }
func (f *Fragment) Width() int          { return f.width }
func (f *Fragment) Height() int         { return f.height }
func (f *Fragment) Tag() entity.Tag     { return entity.TagSnake }

// Handle returns the fragment's arena handle.
func (f *Fragment) Handle() Handle { return f.id }

// Next returns the fragment toward the head, or nil for the head itself.
func (f *Fragment) Next() *Fragment { return f.ctrl.Fragment(f.next) }

// Prev returns the fragment toward the tail, or nil for the tail.
func (f *Fragment) Prev() *Fragment { return f.ctrl.Fragment(f.prev) }

// IsHead reports whether no fragment leads this one.
func (f *Fragment) IsHead() bool { return f.next == NoFragment }

// BoxCollider returns the fragment's bounding box.
func (f *Fragment) BoxCollider() core.Rect { return core.RectAt(f.pos, f.width, f.height) }

// Update computes the position this fragment moves to. Nothing moves until LateUpdate.
func (f *Fragment) Update() {
	f.nextPos = f.ctrl.NextPosition(f)
}

// LateUpdate commits the position computed by Update.
func (f *Fragment) LateUpdate() {
	f.pos = f.nextPos
}

// OnCollision notifies the orchestrator and grows the snake when the head meets an apple.
func (f *Fragment) OnCollision(other entity.Collidable) bool {
	if f.disposed {
		return false
	}
	if other.Tag() == entity.TagApple && f.IsHead() {
		f.Grow()
	}
	return true
}

// Grow appends one fragment behind the current tail, at the tail's position.
func (f *Fragment) Grow() {
	if prev := f.Prev(); prev != nil {
		prev.Grow()
		return
	}
	tail := f.ctrl.newFragment(f.id, f.pos)
	f.prev = tail.id
	f.ctrl.Register(tail)
}

// Dispose detaches the fragment from collision reporting.
func (f *Fragment) Dispose() { f.disposed = true }
