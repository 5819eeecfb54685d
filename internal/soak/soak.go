// Package soak plays many seeded sessions headless on a manual clock.
package soak

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gridsnake/internal/core"
	"gridsnake/internal/session"
	"gridsnake/internal/spawner"
	"gridsnake/internal/timer"
)

// Options describes a soak sweep.
type Options struct {
	World    core.WorldInfo
	Spawner  spawner.Config
	Tick     time.Duration
	Ticks    int
	Runs     int
	Workers  int
	BaseSeed int64
	// TurnChance is the per-tick probability, in percent, that the pilot steers.
	TurnChance int
	Log        *zap.Logger
}

// Result summarises one run.
type Result struct {
	Seed      int64
	Games     int
	BestScore int
	MaxLength int
	Ticks     int
}

// Run plays opts.Runs sessions on at most opts.Workers goroutines and returns
// the results ordered by best score, then seed.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	results := make([]Result, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i := 0; i < opts.Runs; i++ {
		g.Go(func() error {
			res, err := runScenario(ctx, opts, opts.BaseSeed+int64(i))
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].BestScore != results[j].BestScore {
			return results[i].BestScore > results[j].BestScore
		}
		return results[i].Seed < results[j].Seed
	})
	return results, nil
}

func runScenario(ctx context.Context, opts Options, seed int64) (Result, error) {
	clock := timer.NewManualClock(time.Unix(0, 0))
	sess := session.New(session.Options{
		World:   opts.World,
		Spawner: opts.Spawner,
		Seed:    seed,
		Clock:   clock,
		Log:     opts.Log.With(zap.Int64("seed", seed)),
	})
	pilot := core.NewRNG(seed)
	dirs := []core.Direction{core.Up, core.Down, core.Left, core.Right}

	res := Result{Seed: seed, Games: 1}
	sess.Start()
	for t := 0; t < opts.Ticks; t++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if pilot.IntN(100) < opts.TurnChance {
			sess.Steer(dirs[pilot.IntN(len(dirs))])
		}
		clock.Advance(opts.Tick)
		sess.Update()
		res.Ticks++
		res.BestScore = max(res.BestScore, sess.Score())
		res.MaxLength = max(res.MaxLength, sess.Length())
		if sess.Phase() == session.Over {
			sess.Restart()
			res.Games++
		}
	}
	sess.Exit()
	return res, nil
}
