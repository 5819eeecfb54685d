package session

import (
	"gridsnake/internal/core"
	"gridsnake/internal/entity"
)

var _ core.Sim = (*Session)(nil)

type headed interface {
	IsHead() bool
}

func (s *Session) Name() string { return "snake" }

// Size returns the board size in cells.
func (s *Session) Size() core.Size { return s.opts.World.GridSize() }

// Reset reseeds the session and returns it to the welcome screen with a fresh game.
func (s *Session) Reset(seed int64) {
	s.game.Exit()
	s.opts.Seed = seed
	s.round = 0
	s.build()
	s.phase = Welcome
}

// Step is Update under the core.Sim contract.
func (s *Session) Step() { s.Update() }

// Cells paints the live entities into the display buffer, one byte per cell.
func (s *Session) Cells() []uint8 {
	s.display.Clear()
	w := s.opts.World
	for _, e := range s.game.Entities() {
		if !entity.IsLive(e) {
			continue
		}
		x, y := w.CellOf(e.Position())
		switch e.Tag() {
		case entity.TagApple:
			s.display.Paint(x, y, core.CellApple)
		case entity.TagSnake:
			if h, ok := e.(headed); ok && h.IsHead() {
				s.display.Paint(x, y, core.CellHead)
			} else {
				s.display.Paint(x, y, core.CellBody)
			}
		}
	}
	return s.display.Cells()
}

// Length returns the number of snake fragments currently on the board.
func (s *Session) Length() int {
	n := 0
	for _, e := range s.game.Entities() {
		if e.Tag() == entity.TagSnake {
			n++
		}
	}
	return n
}

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	state := s.phase.String()
	if s.phase == Playing && s.game.IsPaused() {
		state = "paused"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Game",
			Params: []core.Parameter{
				core.IntParam("score", "Score", s.game.Score()),
				core.IntParam("length", "Length", s.Length()),
				core.StringParam("state", "State", state),
			},
		},
		{
			Name: "Spawner",
			Params: []core.Parameter{
				core.DurationParam("cooldown", "Cooldown", s.opts.Spawner.Cooldown),
				core.DurationParam("lifespan", "Apple lifespan", s.opts.Spawner.AppleLifespan),
				core.IntParam("seed", "Seed", int(s.seed)),
			},
		},
		{
			Name: "Session",
			Params: []core.Parameter{
				core.StringParam("session", "ID", s.id.String()[:8]),
			},
		},
	}}
}
