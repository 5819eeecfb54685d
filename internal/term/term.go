// Package term runs a session in a terminal using tcell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gridsnake/internal/session"
)

// Frontend owns the tick loop and key polling for one terminal session.
// The caller initialises and finalises the screen.
type Frontend struct {
	screen tcell.Screen
	sess   *session.Session
	tick   time.Duration
	log    *zap.Logger
}

// New builds a front end ticking the session every tick.
func New(screen tcell.Screen, sess *session.Session, tick time.Duration, log *zap.Logger) *Frontend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Frontend{screen: screen, sess: sess, tick: tick, log: log}
}

// Run draws and ticks until Escape is pressed or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	keys := make(chan session.Key, 16)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return f.poll(ctx, keys)
	})
	g.Go(func() error {
		defer f.wake()
		return f.loop(ctx, keys)
	})
	return g.Wait()
}

func (f *Frontend) loop(ctx context.Context, keys <-chan session.Key) error {
	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()
	Draw(f.screen, f.sess)
	for {
		select {
		case <-ctx.Done():
			f.sess.Exit()
			return nil
		case k := <-keys:
			if f.sess.HandleKey(k) {
				f.log.Info("player quit", zap.Int("score", f.sess.Score()))
				return nil
			}
		case <-ticker.C:
			f.sess.Update()
		}
		Draw(f.screen, f.sess)
	}
}

func (f *Frontend) poll(ctx context.Context, keys chan<- session.Key) error {
	for {
		switch ev := f.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			f.screen.Sync()
		case *tcell.EventKey:
			k := MapKey(ev)
			if k == session.KeyNone {
				continue
			}
			select {
			case keys <- k:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// wake unblocks the poller once the loop has finished.
func (f *Frontend) wake() {
	_ = f.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// MapKey translates a terminal key press.
func MapKey(ev *tcell.EventKey) session.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return session.KeyUp
	case tcell.KeyDown:
		return session.KeyDown
	case tcell.KeyLeft:
		return session.KeyLeft
	case tcell.KeyRight:
		return session.KeyRight
	case tcell.KeyEnter:
		return session.KeyEnter
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.KeyEscape
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return session.KeySpace
		}
	}
	return session.KeyNone
}
