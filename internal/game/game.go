// Package game is the ebiten frontend: it polls input, steps a round once
// per tick and draws the maze, actors and HUD.
package game

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rom100main/pac-minator/internal/round"
	"github.com/rom100main/pac-minator/internal/storage"
)

type Options struct {
	// Store persists finished rounds. Nil disables persistence.
	Store  *storage.Store
	Logger *log.Logger
	Name   string
	Scale  float64
}

type Game struct {
	round  *round.Round
	store  *storage.Store
	logger *log.Logger

	playerName string
	scale      float64
	fullscreen bool
	quit       bool

	highScore     int
	highScoreName string
	// recordedLevel is the last level whose result was saved.
	recordedLevel int

	off      *ebiten.Image
	whiteImg *ebiten.Image
}

func New(r *round.Round, opts Options) *Game {
	g := &Game{
		round:      r,
		store:      opts.Store,
		logger:     opts.Logger,
		playerName: opts.Name,
		scale:      opts.Scale,
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	if g.playerName == "" {
		g.playerName = "Player"
	}
	g.loadHighScore()
	return g
}

func (g *Game) nativeWidth() int  { return g.round.Maze().PixelWidth() }
func (g *Game) nativeHeight() int { return g.round.Maze().PixelHeight() + hudHeight }

func (g *Game) ScreenWidth() int {
	return int(float64(g.nativeWidth()) * g.scale)
}

func (g *Game) ScreenHeight() int {
	return int(float64(g.nativeHeight()) * g.scale)
}

func (g *Game) Update() error {
	return g.tick(g.pollActions())
}

// tick applies one frame of input and steps the round.
func (g *Game) tick(actions []round.Action) error {
	for _, a := range actions {
		if a == round.ActionQuit {
			g.quit = true
			continue
		}
		if a == round.ActionRestart && g.round.Restart() {
			g.logger.Info("new round", "level", g.round.Level())
			continue
		}
		g.round.Apply(a)
	}
	if g.quit {
		g.recordRound()
		return ebiten.Termination
	}

	g.round.Step()
	if !g.round.Running() && g.recordedLevel != g.round.Level() {
		g.logger.Info("round over", "status", g.round.Status(), "score", g.round.Score(), "level", g.round.Level())
		g.recordRound()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Draw at native resolution then scale up.
	if g.off == nil {
		g.off = ebiten.NewImage(g.nativeWidth(), g.nativeHeight())
	}
	g.off.Fill(color.Black)

	g.drawMaze(g.off)
	for _, gh := range g.round.Ghosts() {
		g.drawGhost(g.off, gh)
	}
	g.drawPlayer(g.off)
	g.drawHUD(g.off)
	if !g.round.Running() {
		g.drawBanner(g.off)
	} else if g.round.Paused() {
		g.drawCentered(g.off, "PAUSED", g.round.Maze().PixelHeight()/2, color.White)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(g.off, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}
