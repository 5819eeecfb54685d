//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"gridsnake/internal/app"
	"gridsnake/internal/audio"
	"gridsnake/internal/config"
	"gridsnake/internal/core"
	"gridsnake/internal/logging"
	"gridsnake/internal/session"
	"gridsnake/internal/spawner"
	"gridsnake/internal/timer"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.Default()
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

	var sound audio.Player = audio.Nop{}
	if cfg.Sound.Enabled {
		sound = app.NewBeeper(audio.Tone{Frequency: cfg.Sound.Frequency, Duration: cfg.Sound.Duration})
	}

	world := cfg.WorldInfo()
	sess := session.New(session.Options{
		World: world,
		Spawner: spawner.Config{
			Cooldown:      cfg.Spawner.Cooldown,
			AppleLifespan: cfg.Spawner.AppleLifespan,
		},
		Seed:    cfg.Seed,
		Clock:   timer.SystemClock{},
		Sound:   sound,
		Welcome: session.LoadWelcome(cfg.WelcomeFile, log),
		Log:     log,
	})
	game := app.New(sess, world, core.NewFixedStep(cfg.Tick.Interval))

	ebiten.SetWindowTitle("gridsnake")
	ebiten.SetWindowSize(world.WorldWidth+app.HUDWidth, world.WorldHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("game loop failed", zap.Error(err))
	}
}
