package session

import "gridsnake/internal/core"

// Key is a front-end independent key press.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
)

// HandleKey applies one key press. It reports true when the front end should quit.
func (s *Session) HandleKey(k Key) (quit bool) {
	switch k {
	case KeyUp:
		s.Steer(core.Up)
	case KeyDown:
		s.Steer(core.Down)
	case KeyLeft:
		s.Steer(core.Left)
	case KeyRight:
		s.Steer(core.Right)
	case KeySpace:
		s.TogglePause()
	case KeyEnter:
		switch s.phase {
		case Welcome:
			s.Start()
		case Over:
			s.Restart()
		}
	case KeyEscape:
		s.Exit()
		return true
	}
	return false
}
