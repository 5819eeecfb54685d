package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"gridsnake/internal/config"
	"gridsnake/internal/logging"
	"gridsnake/internal/soak"
	"gridsnake/internal/spawner"
)

func main() {
	ticks := flag.Int("ticks", 3000, "ticks to simulate per run")
	runs := flag.Int("runs", 32, "number of seeded runs")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	turn := flag.Int("turn", 25, "percent chance per tick that the pilot steers")
	cfg := config.Default()
	cfg.Log.Level = "warn"
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	fmt.Printf("Soaking %d runs (%d workers, %d ticks)\n", *runs, *workers, *ticks)
	start := time.Now()
	results, err := soak.Run(context.Background(), soak.Options{
		World: cfg.WorldInfo(),
		Spawner: spawner.Config{
			Cooldown:      cfg.Spawner.Cooldown,
			AppleLifespan: cfg.Spawner.AppleLifespan,
		},
		Tick:       cfg.Tick.Interval,
		Ticks:      *ticks,
		Runs:       *runs,
		Workers:    *workers,
		BaseSeed:   cfg.Seed,
		TurnChance: *turn,
		Log:        log,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	games := 0
	for _, r := range results {
		games += r.Games
	}
	fmt.Printf("\nTop 5 results (elapsed %s, %d games):\n", elapsed.Round(time.Millisecond), games)
	for i := 0; i < len(results) && i < 5; i++ {
		r := results[i]
		fmt.Printf("%2d) seed=%d score=%d length=%d games=%d ticks=%d\n",
			i+1, r.Seed, r.BestScore, r.MaxLength, r.Games, r.Ticks)
	}
}
