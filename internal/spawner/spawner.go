// Package spawner places apples on free cells at a fixed cadence.
package spawner

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"gridsnake/internal/core"
	"gridsnake/internal/entity"
	"gridsnake/internal/timer"
)

// Host is the part of the game the spawner reads and feeds. Defer must run
// its function on the goroutine that moves entities.
type Host interface {
	World() core.WorldInfo
	Entities() []entity.Entity
	AddEntity(e entity.Entity)
	Defer(fn func())
}

// Config controls spawn cadence and apple lifetime.
type Config struct {
	Cooldown      time.Duration
	AppleLifespan time.Duration
}

// AppleSpawner is a game service. Register it with the game's AddService.
type AppleSpawner struct {
	host  Host
	cfg   Config
	clock timer.Clock
	log   *zap.Logger

	cadence *timer.PausableTimer
	once    sync.Once

	mu    sync.Mutex
	rng   *core.RNG
	cells []core.Point
}

// New builds a spawner. A nil rng is seeded with zero; a nil logger discards output.
func New(host Host, cfg Config, clock timer.Clock, rng *core.RNG, log *zap.Logger) *AppleSpawner {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &AppleSpawner{host: host, cfg: cfg, clock: clock, rng: rng, log: log}
	s.cadence = timer.NewPausable(clock, cfg.Cooldown, true, func() {
		host.Defer(func() { s.Spawn() })
	})
	return s
}

// Run precomputes the grid and starts the cadence. Only the first call has an effect.
func (s *AppleSpawner) Run() {
	s.once.Do(func() {
		cells := s.host.World().CellOrigins()
		s.mu.Lock()
		s.cells = cells
		s.mu.Unlock()
		s.cadence.Start()
		s.log.Debug("apple spawner running",
			zap.Int("cells", len(cells)),
			zap.Duration("cooldown", s.cfg.Cooldown))
	})
}

func (s *AppleSpawner) Pause()         { s.cadence.Pause() }
func (s *AppleSpawner) Resume()        { s.cadence.Resume() }
func (s *AppleSpawner) IsPaused() bool { return s.cadence.IsPaused() }

// Dispose stops the cadence for good.
func (s *AppleSpawner) Dispose() { s.cadence.Dispose() }

// Spawn places one apple on a random free cell. It reports false and logs a
// warning when the board is full. It reads entity positions, so it must run
// on the tick goroutine; the cadence gets there through Host.Defer.
func (s *AppleSpawner) Spawn() bool {
	occupied := make(map[core.Point]struct{})
	for _, e := range s.host.Entities() {
		if entity.IsLive(e) {
			occupied[e.Position().Point()] = struct{}{}
		}
	}

	s.mu.Lock()
	free := make([]core.Point, 0, len(s.cells))
	for _, c := range s.cells {
		if _, ok := occupied[c]; !ok {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		s.mu.Unlock()
		s.log.Warn("no free cell for apple, skipping", zap.Int("cells", len(s.cells)))
		return false
	}
	at := free[s.rng.IntN(len(free))]
	s.mu.Unlock()

	w := s.host.World()
	s.host.AddEntity(entity.NewApple(at.Vec(), w.CellWidth, w.CellHeight, s.cfg.AppleLifespan, s.clock))
	return true
}
