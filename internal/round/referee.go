package round

import "github.com/rom100main/pac-minator/internal/entities"

// ChainBonus is the score for eating a ghost when n ghosts, this one
// included, are currently eaten: base, 2*base, 4*base, 8*base.
func ChainBonus(base, n int) int {
	if n < 1 {
		n = 1
	}
	return base << (n - 1)
}

// referee resolves player-ghost contacts, then checks for a cleared maze.
// A lethal contact on the tick the last dot is eaten still loses.
func (r *Round) referee() {
	for _, g := range r.ghosts {
		if !r.touching(g) {
			continue
		}
		switch g.State {
		case entities.GhostFrightened:
			g.EnterEaten()
			bonus := ChainBonus(r.cfg.Scoring.GhostBase, r.eatenCount())
			r.player.Score += bonus
			r.logger.Debug("ghost eaten", "ghost", g.Personality, "bonus", bonus, "score", r.player.Score)
		case entities.GhostScatter, entities.GhostChase:
			r.status = StatusLost
			r.logger.Debug("round lost", "ghost", g.Personality, "score", r.player.Score, "tick", r.tick)
			return
		}
	}

	if r.maze.CountRemaining() == 0 {
		r.status = StatusWon
		r.logger.Debug("round won", "score", r.player.Score, "tick", r.tick)
	}
}

func (r *Round) touching(g *entities.Ghost) bool {
	return r.player.Pos.Dist(g.Pos) < r.player.Radius+g.Radius
}

func (r *Round) eatenCount() int {
	n := 0
	for _, g := range r.ghosts {
		if g.State == entities.GhostEaten {
			n++
		}
	}
	return n
}
