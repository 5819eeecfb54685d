package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"gridsnake/internal/audio"
	"gridsnake/internal/config"
	"gridsnake/internal/logging"
	"gridsnake/internal/session"
	"gridsnake/internal/spawner"
	"gridsnake/internal/term"
	"gridsnake/internal/timer"
)

func main() {
	cfg := config.Default()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// Console output would draw over the board.
	if slices.Contains(cfg.Log.Output, "stderr") || slices.Contains(cfg.Log.Output, "stdout") {
		cfg.Log.Output = []string{"snake-term.log"}
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("terminal session failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	var sound audio.Player = audio.Nop{}
	notice := ""
	if cfg.Sound.Enabled {
		spk, err := audio.NewSpeaker(audio.Tone{Frequency: cfg.Sound.Frequency, Duration: cfg.Sound.Duration})
		if err != nil {
			log.Warn("continuing without sound", zap.Error(err))
			notice = "sound unavailable"
		} else {
			defer spk.Close()
			sound = spk
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	sess := session.New(session.Options{
		World: cfg.WorldInfo(),
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
	if notice != "" {
		sess.SetNotice(notice)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return term.New(screen, sess, cfg.Tick.Interval, log).Run(ctx)
}
