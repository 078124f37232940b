package game

import (
	"github.com/rom100main/pac-minator/internal/round"
	"github.com/rom100main/pac-minator/internal/storage"
)

func (g *Game) loadHighScore() {
	if g.store == nil {
		return
	}
	rec, ok, err := g.store.HighScore()
	if err != nil {
		g.logger.Warn("could not load high score", "error", err)
		return
	}
	if ok {
		g.highScore = rec.Score
		g.highScoreName = rec.Name
	}
}

// recordRound saves the current round once per level. Empty rounds are
// not saved.
func (g *Game) recordRound() {
	level := g.round.Level()
	if g.recordedLevel == level {
		return
	}
	g.recordedLevel = level

	score := g.round.Score()
	if score > g.highScore {
		g.highScore = score
		g.highScoreName = g.playerName
	}
	if g.store == nil || score == 0 {
		return
	}
	rec := storage.Record{
		Name:  g.playerName,
		Score: score,
		Level: level,
		Won:   g.round.Status() == round.StatusWon,
	}
	if _, err := g.store.SaveScore(rec); err != nil {
		g.logger.Warn("could not save score", "error", err)
		return
	}
	g.logger.Info("score saved", "name", g.playerName, "score", score)
}

// bestScore is the high score to display, including the live round.
func (g *Game) bestScore() (int, string) {
	if s := g.round.Score(); s > g.highScore {
		return s, g.playerName
	}
	return g.highScore, g.highScoreName
}
