// Package session drives one player's games for a front end: it wires the
// engine together, handles keys, restarts and sounds, and exposes a
// per-cell display buffer.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gridsnake/internal/audio"
	"gridsnake/internal/core"
	"gridsnake/internal/game"
	"gridsnake/internal/snake"
	"gridsnake/internal/spawner"
	"gridsnake/internal/timer"
)

// Phase is where the session is in its start, play, end cycle.
type Phase uint8

const (
	Welcome Phase = iota
	Playing
	Over
	Closed
)

func (p Phase) String() string {
	switch p {
	case Welcome:
		return "welcome"
	case Playing:
		return "playing"
	case Over:
		return "over"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// PausedMessage is shown while the game is paused.
const PausedMessage = "Game Paused"

// Options configures a Session.
type Options struct {
	World   core.WorldInfo
	Spawner spawner.Config
	Seed    int64
	Clock   timer.Clock
	Sound   audio.Player
	Welcome string
	Log     *zap.Logger
}

// Session is not safe for concurrent use; front ends call it from their tick goroutine.
type Session struct {
	opts Options
	log  *zap.Logger

	id      uuid.UUID
	round   int64
	seed    int64
	phase   Phase
	game    *game.Game
	ctrl    *snake.Controller
	spawner *spawner.AppleSpawner

	turned  bool
	queued  *core.Direction
	ended   string
	notice  string
	display *core.ByteGrid
}

// New prepares the first game. Nothing moves until Start.
func New(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = timer.SystemClock{}
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Welcome == "" {
		opts.Welcome = DefaultWelcome
	}
	size := opts.World.GridSize()
	s := &Session{
		opts:    opts,
		display: core.NewByteGrid(size.W, size.H),
	}
	s.build()
	return s
}

// build replaces the current game with a fresh one and a new session id.
func (s *Session) build() {
	s.id = uuid.New()
	s.log = s.opts.Log.With(zap.String("session", s.id.String()))
	s.game = game.New(s.opts.World, s.log)
	s.game.OnEnded(s.onEnded)
	s.ctrl = snake.NewController(s.game, core.Right)
	s.ctrl.SpawnHead(core.Vec2{X: float64(s.opts.World.CellWidth), Y: float64(s.opts.World.CellHeight)})
	s.seed = s.opts.Seed + s.round
	s.round++
	s.spawner = spawner.New(s.game, s.opts.Spawner, s.opts.Clock, core.NewRNG(s.seed), s.log)
	s.turned = false
	s.queued = nil
	s.ended = ""
	s.notice = ""
}

// Start begins play from the welcome screen. It is a no-op in any other phase.
func (s *Session) Start() {
	if s.phase != Welcome {
		return
	}
	s.run()
}

func (s *Session) run() {
	s.game.AddService(s.spawner)
	s.phase = Playing
	s.log.Info("game started", zap.Int64("seed", s.seed))
}

// Restart throws the current game away and starts a new one. It only applies
// once play has begun.
func (s *Session) Restart() {
	if s.phase != Playing && s.phase != Over {
		return
	}
	s.game.Exit()
	s.build()
	s.run()
}

// Update applies queued input and advances the game by one tick.
func (s *Session) Update() {
	if s.phase != Playing {
		return
	}
	if !s.turned && s.queued != nil {
		s.ctrl.SetDirection(*s.queued)
		s.queued = nil
	}
	s.turned = false

	before := s.game.Score()
	s.game.Update()
	if s.game.Score() != before {
		s.playSound()
	}
}

// Steer changes heading right away. A second turn within the same tick is
// held for the next one, so quick double presses are not lost.
func (s *Session) Steer(d core.Direction) {
	if s.phase != Playing {
		return
	}
	if s.turned {
		s.queued = &d
		return
	}
	s.turned = true
	s.queued = nil
	s.ctrl.SetDirection(d)
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() {
	if s.phase != Playing {
		return
	}
	if s.game.IsPaused() {
		s.game.Resume()
	} else {
		s.game.Pause()
	}
}

// Exit ends the session for good.
func (s *Session) Exit() {
	if s.phase == Closed {
		return
	}
	s.game.Exit()
	s.phase = Closed
}

func (s *Session) onEnded(e game.Ended) {
	s.ended = fmt.Sprintf("%s\nYour score: %d\nEnter - new game\nEsc - exit", e.Message, e.Score)
	s.phase = Over
}

func (s *Session) playSound() {
	if err := s.opts.Sound.Play(); err != nil {
		s.notice = "sound: " + err.Error()
		s.log.Warn("eat sound failed", zap.Error(err))
	}
}

func (s *Session) Phase() Phase                  { return s.phase }
func (s *Session) ID() uuid.UUID                 { return s.id }
func (s *Session) Score() int                    { return s.game.Score() }
func (s *Session) IsPaused() bool                { return s.game.IsPaused() }
func (s *Session) Game() *game.Game              { return s.game }
func (s *Session) Controller() *snake.Controller { return s.ctrl }

// Notice returns the last non-fatal problem worth showing, or "".
func (s *Session) Notice() string { return s.notice }

// Message returns the overlay text for the current phase, or "" during normal play.
func (s *Session) Message() string {
	switch s.phase {
	case Welcome:
		return s.opts.Welcome
	case Over:
		return s.ended
	case Playing:
		if s.game.IsPaused() {
			return PausedMessage
		}
	}
	return ""
}

// SetNotice shows msg until the next restart.
func (s *Session) SetNotice(msg string) { s.notice = msg }
