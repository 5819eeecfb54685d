package spawner

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"gridsnake/internal/core"
	"gridsnake/internal/entity"
	"gridsnake/internal/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type block struct{ pos core.Vec2 }

func (b block) Position() core.Vec2 { return b.pos }
func (b block) Width() int          { return 32 }
func (b block) Height() int         { return 32 }
func (b block) Tag() entity.Tag     { return entity.TagSnake }

type host struct {
	world core.WorldInfo

	mu       sync.Mutex
	entities []entity.Entity
	deferred []func()
	reads    int
}

func (h *host) World() core.WorldInfo { return h.world }

func (h *host) Entities() []entity.Entity {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reads++
	return append([]entity.Entity(nil), h.entities...)
}

func (h *host) AddEntity(e entity.Entity) {
	h.mu.Lock()
	h.entities = append(h.entities, e)
	h.mu.Unlock()
}

func (h *host) Defer(fn func()) {
	h.mu.Lock()
	h.deferred = append(h.deferred, fn)
	h.mu.Unlock()
}

// tick runs deferred work the way Game.Update does.
func (h *host) tick() {
	h.mu.Lock()
	batch := h.deferred
	h.deferred = nil
	h.mu.Unlock()
	for _, fn := range batch {
		fn()
	}
}

func (h *host) advance(clock *timer.ManualClock, d time.Duration) {
	clock.Advance(d)
	h.tick()
}

var cfg = Config{Cooldown: 3 * time.Second, AppleLifespan: 5 * time.Second}

func TestSpawnsOnCadence(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	h := &host{world: core.NewWorldInfo(128, 128)}
	s := New(h, cfg, clock, core.NewRNG(1), nil)

	h.advance(clock, 10*time.Second)
	require.Empty(t, h.Entities(), "nothing before Run")

	s.Run()
	s.Run()
	h.advance(clock, 3*time.Second)
	require.Len(t, h.Entities(), 1)
	h.advance(clock, 3*time.Second)
	require.Len(t, h.Entities(), 2)

	for _, e := range h.Entities() {
		require.Equal(t, entity.TagApple, e.Tag())
		p := e.Position().Point()
		assert.Zero(t, p.X%32)
		assert.Zero(t, p.Y%32)
		assert.Less(t, p.X, 128)
		assert.Less(t, p.Y, 128)
	}
}

func TestSpawnAvoidsOccupiedCells(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	h := &host{world: core.NewWorldInfo(64, 32)}
	h.AddEntity(block{pos: core.Vec2{X: 0, Y: 0}})
	s := New(h, cfg, clock, core.NewRNG(7), nil)
	s.Run()

	for i := 0; i < 5; i++ {
		h.entities = h.entities[:1]
		require.True(t, s.Spawn())
		require.Equal(t, core.Vec2{X: 32, Y: 0}, h.Entities()[1].Position())
	}
}

func TestFullBoardSkipsWithWarning(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	clock := timer.NewManualClock(epoch)
	h := &host{world: core.NewWorldInfo(64, 32)}
	h.AddEntity(block{pos: core.Vec2{X: 0}})
	h.AddEntity(block{pos: core.Vec2{X: 32}})
	s := New(h, cfg, clock, nil, zap.New(obs))
	s.Run()

	h.advance(clock, 3*time.Second)
	require.Len(t, h.Entities(), 2)
	require.Equal(t, 1, logs.FilterMessage("no free cell for apple, skipping").Len())

	// A cell frees up and the next cadence tick uses it.
	h.mu.Lock()
	h.entities = h.entities[:1]
	h.mu.Unlock()
	h.advance(clock, 3*time.Second)
	require.Len(t, h.Entities(), 2)
	require.Equal(t, entity.TagApple, h.Entities()[1].Tag())
}

func TestPauseFreezesCadence(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	h := &host{world: core.NewWorldInfo(128, 128)}
	s := New(h, cfg, clock, core.NewRNG(3), nil)
	s.Run()

	h.advance(clock, 2*time.Second)
	s.Pause()
	require.True(t, s.IsPaused())
	h.advance(clock, time.Minute)
	require.Empty(t, h.Entities())

	s.Resume()
	h.advance(clock, time.Second)
	require.Len(t, h.Entities(), 1)

	s.Dispose()
	h.advance(clock, time.Minute)
	require.Len(t, h.Entities(), 1)
}

func TestCadenceWaitsForTick(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	h := &host{world: core.NewWorldInfo(128, 128)}
	s := New(h, cfg, clock, core.NewRNG(5), nil)
	s.Run()

	clock.Advance(3 * time.Second)
	h.mu.Lock()
	reads, queued := h.reads, len(h.deferred)
	h.mu.Unlock()
	require.Zero(t, reads, "timer callback must not read entities")
	require.Equal(t, 1, queued)

	h.tick()
	require.Len(t, h.Entities(), 1)
}
