package game

import (
	"testing"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/entity"
	"gridsnake/internal/snake"
	"gridsnake/internal/spawner"
	"gridsnake/internal/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type segment struct {
	pos      core.Vec2
	head     bool
	hits     int
	disposed bool
}

func (s *segment) Position() core.Vec2    { return s.pos }
func (s *segment) Width() int             { return 32 }
func (s *segment) Height() int            { return 32 }
func (s *segment) Tag() entity.Tag        { return entity.TagSnake }
func (s *segment) BoxCollider() core.Rect { return core.RectAt(s.pos, 32, 32) }
func (s *segment) IsHead() bool           { return s.head }
func (s *segment) Dispose()               { s.disposed = true }
func (s *segment) OnCollision(entity.Collidable) bool {
	s.hits++
	return true
}

type service struct {
	runs, pauses, resumes, disposes int
	paused                          bool
}

func (s *service) Run()           { s.runs++ }
func (s *service) Pause()         { s.pauses++; s.paused = true }
func (s *service) Resume()        { s.resumes++; s.paused = false }
func (s *service) IsPaused() bool { return s.paused }
func (s *service) Dispose()       { s.disposes++ }

func newGame() *Game {
	return New(core.NewWorldInfo(96, 64), nil)
}

func TestAddedEntitiesAppearNextTick(t *testing.T) {
	g := newGame()
	g.AddEntity(&segment{})
	g.AddEntity(&segment{pos: core.Vec2{X: 64}})
	require.Empty(t, g.Entities())

	g.Update()
	got := g.Entities()
	require.Len(t, got, 2)
	assert.Equal(t, core.Vec2{}, got[0].Position(), "additions keep insertion order")
}

func TestHeadEatingAppleScores(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	g := newGame()
	ctrl := snake.NewController(g, core.Right)
	head := ctrl.SpawnHead(core.Vec2{})
	g.AddEntity(entity.NewApple(core.Vec2{X: 32}, 32, 32, 5*time.Second, clock))

	g.Update()
	require.Equal(t, 1, g.Score())
	require.Equal(t, core.Vec2{X: 32}, head.Position())
	require.Equal(t, 2, ctrl.Len(), "tail appended on the same tick")
	require.Len(t, g.Entities(), 2, "new tail waits for the next tick")

	g.Update()
	ents := g.Entities()
	require.Len(t, ents, 2)
	for _, e := range ents {
		assert.Equal(t, entity.TagSnake, e.Tag(), "eaten apple swept")
	}
	assert.Equal(t, 1, g.Score())
	assert.True(t, g.IsRunning())
}

func TestBodyOnAppleDoesNotScore(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	g := newGame()
	body := &segment{pos: core.Vec2{X: 32, Y: 32}}
	apple := entity.NewApple(core.Vec2{X: 32, Y: 32}, 32, 32, 5*time.Second, clock)
	g.AddEntity(body)
	g.AddEntity(apple)

	g.Update()
	assert.Zero(t, g.Score())
	assert.True(t, apple.IsRemoved())
	assert.Equal(t, 1, body.hits)
}

func TestSelfCollisionEndsOnce(t *testing.T) {
	g := newGame()
	var ended []Ended
	g.OnEnded(func(e Ended) { ended = append(ended, e) })
	segs := []*segment{{head: true}, {}, {}}
	for _, s := range segs {
		g.AddEntity(s)
	}

	g.Update()
	require.Len(t, ended, 1)
	assert.Equal(t, Ended{Message: GameOverMessage, Score: 0}, ended[0])
	assert.False(t, g.IsRunning())
	for _, s := range segs {
		assert.True(t, s.disposed)
	}

	g.Update()
	g.Exit()
	assert.Len(t, ended, 1)
}

func TestRemovedEntitiesAreSwept(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	g := newGame()
	apple := entity.NewApple(core.Vec2{}, 32, 32, time.Second, clock)
	g.AddEntity(apple)
	g.AddEntity(&segment{pos: core.Vec2{X: 64}})
	g.Update()
	require.Len(t, g.Entities(), 2)

	clock.Advance(time.Second)
	require.True(t, apple.IsRemoved())
	g.Update()
	ents := g.Entities()
	require.Len(t, ents, 1)
	assert.Equal(t, entity.TagSnake, ents[0].Tag())
	assert.Empty(t, g.removables)
	assert.Len(t, g.collidables, 1)
}

func TestPausePropagates(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	g := newGame()
	svc := &service{}
	g.AddService(svc)
	require.Equal(t, 1, svc.runs)

	apple := entity.NewApple(core.Vec2{}, 32, 32, 2*time.Second, clock)
	g.AddEntity(apple)
	g.Update()

	g.Pause()
	g.Pause()
	require.True(t, g.IsPaused())
	require.True(t, apple.IsPaused())
	require.Equal(t, 1, svc.pauses)

	clock.Advance(time.Hour)
	require.False(t, apple.IsRemoved(), "paused game freezes lifespans")

	seg := &segment{pos: core.Vec2{X: 64}}
	g.AddEntity(seg)
	g.Update()
	require.Len(t, g.Entities(), 1, "no phases run while paused")

	g.Resume()
	g.Resume()
	require.False(t, apple.IsPaused())
	require.Equal(t, 1, svc.resumes)

	clock.Advance(2 * time.Second)
	require.True(t, apple.IsRemoved())
	g.Update()
	require.Len(t, g.Entities(), 1)
}

func TestExitDisposesEverything(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	g := newGame()
	svc := &service{}
	g.AddService(svc)
	live := &segment{}
	g.AddEntity(live)
	g.Update()

	queued := entity.NewApple(core.Vec2{X: 64}, 32, 32, time.Second, clock)
	g.AddEntity(queued)

	g.Exit()
	g.Exit()
	assert.False(t, g.IsRunning())
	assert.True(t, live.disposed)
	assert.True(t, queued.IsRemoved())
	assert.Equal(t, 1, svc.disposes)
	assert.Zero(t, clock.Pending())

	late := &segment{}
	g.AddEntity(late)
	assert.True(t, late.disposed)

	g.Pause()
	assert.False(t, g.IsPaused())
}

func TestDeferRunsAtNextTick(t *testing.T) {
	g := newGame()
	ran := 0
	g.Defer(func() {
		ran++
		g.AddEntity(&segment{})
	})
	require.Zero(t, ran)
	require.Empty(t, g.Entities())

	g.Update()
	require.Equal(t, 1, ran)
	require.Len(t, g.Entities(), 1, "deferred additions join the same tick")

	g.Update()
	require.Equal(t, 1, ran)

	g.Exit()
	g.Defer(func() { ran++ })
	g.Update()
	require.Equal(t, 1, ran)
}

// Run with -race: the spawner's wall-clock cadence fires on timer goroutines
// while the snake moves on this one.
func TestWallClockSpawnerStaysOnTick(t *testing.T) {
	g := New(core.NewWorldInfo(320, 320), nil)
	ctrl := snake.NewController(g, core.Right)
	ctrl.SpawnHead(core.Vec2{})
	sp := spawner.New(g, spawner.Config{
		Cooldown:      200 * time.Microsecond,
		AppleLifespan: time.Second,
	}, timer.SystemClock{}, core.NewRNG(1), nil)
	g.AddService(sp)

	apples := 0
	deadline := time.Now().Add(300 * time.Millisecond)
	for time.Now().Before(deadline) {
		g.Update()
		for _, e := range g.Entities() {
			if e.Tag() == entity.TagApple {
				apples++
			}
		}
	}
	g.Exit()
	assert.Positive(t, apples)
}
