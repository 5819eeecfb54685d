// Package entity defines the capability interfaces every simulated object
// composes, plus the Apple collectible.
package entity

import "gridsnake/internal/core"

// Tag identifies the kind of an entity for collision policy.
type Tag uint8

const (
	TagSnake Tag = iota + 1
	TagApple
)

func (t Tag) String() string {
	switch t {
	case TagSnake:
		return "snake"
	case TagApple:
		return "apple"
	default:
		return "unknown"
	}
}

// Entity is anything placed in the world.
type Entity interface {
	Position() core.Vec2
	Width() int
	Height() int
	Tag() Tag
}

// Updateable entities take part in the two-phase tick: Update computes, LateUpdate commits.
type Updateable interface {
	Entity
	Update()
	LateUpdate()
}

// Pausable entities own time-based behaviour that must freeze with the game.
type Pausable interface {
	Entity
	Pause()
	Resume()
	IsPaused() bool
}

// Collidable entities take part in the collision pass. OnCollision reports
// whether the entity raised a collision notification for the orchestrator.
type Collidable interface {
	Entity
	BoxCollider() core.Rect
	OnCollision(other Collidable) bool
}

// Removable entities can flag themselves for removal from the world.
type Removable interface {
	Entity
	IsRemoved() bool
}

// Disposer releases resources held by an entity or service. Dispose must be idempotent.
type Disposer interface {
	Dispose()
}

// Pair is one colliding pair found by the collision pass.
type Pair struct {
	First  Collidable
	Second Collidable
}

// IsLive reports whether e still takes part in the simulation.
func IsLive(e Entity) bool {
	r, ok := e.(Removable)
	return !ok || !r.IsRemoved()
}
