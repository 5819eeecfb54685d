// Package game owns the entity collections and runs the per-tick pipeline.
package game

import (
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"gridsnake/internal/core"
	"gridsnake/internal/entity"
)

// GameOverMessage is reported when the snake runs into itself.
const GameOverMessage = "Try again! :D"

// Ended is delivered to OnEnded subscribers when a game finishes.
type Ended struct {
	Message string
	Score   int
}

// Service is a long-lived helper attached to a game, such as the apple spawner.
// A service that also implements entity.Disposer is disposed on Exit.
type Service interface {
	Run()
	Pause()
	Resume()
	IsPaused() bool
}

// Game is the orchestrator. Update must be called from a single goroutine,
// the tick goroutine. Timer callbacks may only call AddEntity and Defer.
type Game struct {
	world core.WorldInfo
	log   *zap.Logger

	// Written only by the tick goroutine, under mu. The tick goroutine reads
	// them without the lock; other goroutines take RLock. Entities hands out
	// pointers whose fields belong to the tick goroutine as well.
	mu          sync.RWMutex
	entities    []entity.Entity
	updateables []entity.Updateable
	pausables   []entity.Pausable
	collidables []entity.Collidable
	removables  []entity.Removable

	// Filled from any goroutine, drained by the tick goroutine.
	queueMu  sync.Mutex
	pending  []entity.Entity
	deferred []func()

	// Tick goroutine only.
	toRemove []entity.Removable
	pairs    []entity.Pair

	servicesMu sync.Mutex
	services   []Service

	endedMu sync.Mutex
	onEnded []func(Ended)

	running atomic.Bool
	paused  atomic.Bool
	score   atomic.Int64
}

// New creates a running game for the given world. A nil logger discards output.
func New(world core.WorldInfo, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{world: world, log: log}
	g.running.Store(true)
	return g
}

// World returns the geometry the game was created with.
func (g *Game) World() core.WorldInfo { return g.world }

// Score returns the number of apples eaten by the head.
func (g *Game) Score() int { return int(g.score.Load()) }

// IsRunning reports whether the game still ticks. It turns false on game over or Exit.
func (g *Game) IsRunning() bool { return g.running.Load() }

// IsPaused reports whether the game is paused.
func (g *Game) IsPaused() bool { return g.paused.Load() }

// OnEnded subscribes fn to the game-ended signal.
func (g *Game) OnEnded(fn func(Ended)) {
	if fn == nil {
		return
	}
	g.endedMu.Lock()
	g.onEnded = append(g.onEnded, fn)
	g.endedMu.Unlock()
}

// AddEntity queues e. It joins the world at the start of the next tick.
// Entities added after Exit are disposed immediately.
func (g *Game) AddEntity(e entity.Entity) {
	if e == nil {
		return
	}
	g.queueMu.Lock()
	if !g.running.Load() {
		g.queueMu.Unlock()
		dispose(e)
		return
	}
	g.pending = append(g.pending, e)
	g.queueMu.Unlock()
}

// Defer queues fn to run on the tick goroutine at the start of the next
// Update, before that tick's additions join. Work that reads entity state
// from a timer callback goes through here. Calls after Exit are dropped.
func (g *Game) Defer(fn func()) {
	if fn == nil {
		return
	}
	g.queueMu.Lock()
	if g.running.Load() {
		g.deferred = append(g.deferred, fn)
	}
	g.queueMu.Unlock()
}

// AddService registers s and runs it.
func (g *Game) AddService(s Service) {
	if s == nil {
		return
	}
	g.servicesMu.Lock()
	g.services = append(g.services, s)
	g.servicesMu.Unlock()
	s.Run()
}

// Entities returns a snapshot of the live entity list.
func (g *Game) Entities() []entity.Entity {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.entities)
}

// Update advances the game by one tick. It does nothing while paused or stopped.
func (g *Game) Update() {
	if !g.running.Load() || g.paused.Load() {
		return
	}
	g.collectRemoved()
	g.applyRemovals()
	g.runDeferred()
	g.applyAdditions()
	for _, u := range g.updateables {
		u.Update()
	}
	for _, u := range g.updateables {
		u.LateUpdate()
	}
	g.collide()
}

// Pause freezes every pausable entity and service.
func (g *Game) Pause() {
	if !g.running.Load() || !g.paused.CompareAndSwap(false, true) {
		return
	}
	g.mu.RLock()
	for _, p := range g.pausables {
		if !p.IsPaused() {
			p.Pause()
		}
	}
	g.mu.RUnlock()
	for _, s := range g.serviceList() {
		if !s.IsPaused() {
			s.Pause()
		}
	}
	g.log.Debug("game paused")
}

// Resume undoes Pause.
func (g *Game) Resume() {
	if !g.running.Load() || !g.paused.CompareAndSwap(true, false) {
		return
	}
	g.mu.RLock()
	for _, p := range g.pausables {
		if p.IsPaused() {
			p.Resume()
		}
	}
	g.mu.RUnlock()
	for _, s := range g.serviceList() {
		if s.IsPaused() {
			s.Resume()
		}
	}
	g.log.Debug("game resumed")
}

// Exit stops the game and disposes every entity, including queued ones, and
// every service. It is terminal; repeated calls are no-ops.
func (g *Game) Exit() {
	if g.exit() {
		g.log.Info("game exited", zap.Int("score", g.Score()))
	}
}

func (g *Game) exit() bool {
	g.queueMu.Lock()
	if !g.running.CompareAndSwap(true, false) {
		g.queueMu.Unlock()
		return false
	}
	queued := g.pending
	g.pending = nil
	g.deferred = nil
	g.queueMu.Unlock()

	for _, e := range g.Entities() {
		dispose(e)
	}
	for _, e := range queued {
		dispose(e)
	}
	for _, s := range g.serviceList() {
		if d, ok := s.(entity.Disposer); ok {
			d.Dispose()
		}
	}
	return true
}

func (g *Game) collectRemoved() {
	for _, r := range g.removables {
		if r.IsRemoved() {
			g.toRemove = append(g.toRemove, r)
		}
	}
}

func (g *Game) applyRemovals() {
	if len(g.toRemove) == 0 {
		return
	}
	g.mu.Lock()
	for _, r := range g.toRemove {
		g.entities = removeFirst(g.entities, entity.Entity(r))
		g.removables = removeFirst(g.removables, r)
		if u, ok := r.(entity.Updateable); ok {
			g.updateables = removeFirst(g.updateables, u)
		}
		if p, ok := r.(entity.Pausable); ok {
			g.pausables = removeFirst(g.pausables, p)
		}
		if c, ok := r.(entity.Collidable); ok {
			g.collidables = removeFirst(g.collidables, c)
		}
	}
	g.mu.Unlock()
	g.log.Debug("entities removed", zap.Int("count", len(g.toRemove)))
	clear(g.toRemove)
	g.toRemove = g.toRemove[:0]
}

func (g *Game) runDeferred() {
	g.queueMu.Lock()
	batch := g.deferred
	g.deferred = nil
	g.queueMu.Unlock()
	for _, fn := range batch {
		if !g.running.Load() {
			return
		}
		fn()
	}
}

func (g *Game) applyAdditions() {
	g.queueMu.Lock()
	batch := g.pending
	g.pending = nil
	g.queueMu.Unlock()
	if len(batch) == 0 {
		return
	}

	g.mu.Lock()
	for _, e := range batch {
		g.entities = append(g.entities, e)
		if r, ok := e.(entity.Removable); ok {
			g.removables = append(g.removables, r)
		}
		if u, ok := e.(entity.Updateable); ok {
			g.updateables = append(g.updateables, u)
		}
		if p, ok := e.(entity.Pausable); ok {
			g.pausables = append(g.pausables, p)
		}
		if c, ok := e.(entity.Collidable); ok {
			g.collidables = append(g.collidables, c)
		}
	}
	g.mu.Unlock()
	g.log.Debug("entities added", zap.Int("count", len(batch)))
}

func (g *Game) serviceList() []Service {
	g.servicesMu.Lock()
	defer g.servicesMu.Unlock()
	return slices.Clone(g.services)
}

func (g *Game) end(ev Ended) {
	if !g.exit() {
		return
	}
	g.log.Info("game over", zap.String("message", ev.Message), zap.Int("score", ev.Score))
	g.endedMu.Lock()
	handlers := slices.Clone(g.onEnded)
	g.endedMu.Unlock()
	for _, fn := range handlers {
		fn(ev)
	}
}

func dispose(e entity.Entity) {
	if d, ok := e.(entity.Disposer); ok {
		d.Dispose()
	}
}

func removeFirst[T comparable](s []T, v T) []T {
	if i := slices.Index(s, v); i >= 0 {
		return slices.Delete(s, i, i+1)
	}
	return s
}
