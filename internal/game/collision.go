package game

import (
	"gridsnake/internal/entity"
)

// headed is implemented by snake fragments.
type headed interface {
	IsHead() bool
}

// collide finds every overlapping pair of live collidables, then dispatches
// each pair in both directions. Dispatch stops once the game is over.
func (g *Game) collide() {
	g.pairs = g.pairs[:0]
	for i := 0; i < len(g.collidables); i++ {
		a := g.collidables[i]
		if !entity.IsLive(a) {
			continue
		}
		boxA := a.BoxCollider()
		for j := i + 1; j < len(g.collidables); j++ {
			b := g.collidables[j]
			if !entity.IsLive(b) {
				continue
			}
			if boxA.Overlaps(b.BoxCollider()) {
				g.pairs = append(g.pairs, entity.Pair{First: a, Second: b})
			}
		}
	}

	for _, p := range g.pairs {
		if !g.running.Load() {
			break
		}
		if !entity.IsLive(p.First) || !entity.IsLive(p.Second) {
			continue
		}
		if p.First.OnCollision(p.Second) {
			g.handleCollision(p.First, p.Second)
		}
		if p.Second.OnCollision(p.First) {
			g.handleCollision(p.Second, p.First)
		}
	}
	clear(g.pairs)
	g.pairs = g.pairs[:0]
}

// handleCollision applies the game rules to a notification raised by source.
func (g *Game) handleCollision(source, other entity.Collidable) {
	if source.Tag() != entity.TagSnake {
		return
	}
	switch other.Tag() {
	case entity.TagSnake:
		g.end(Ended{Message: GameOverMessage, Score: g.Score()})
	case entity.TagApple:
		if h, ok := source.(headed); ok && h.IsHead() {
			g.score.Add(1)
		}
	}
}
