// Package round owns one game of Pac-Man: the maze, the player, the four
// ghosts and the referee that decides how the round ends. It is a pure
// fixed-step simulation with no clock, graphics or I/O.
package round

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/rom100main/pac-minator/internal/config"
	"github.com/rom100main/pac-minator/internal/entities"
	"github.com/rom100main/pac-minator/internal/geom"
	"github.com/rom100main/pac-minator/internal/tilemap"
)

type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

type Round struct {
	cfg    config.Config
	maze   *tilemap.TileMap
	player *entities.Player
	ghosts [4]*entities.Ghost
	start  geom.Vec

	status Status
	paused bool
	level  int
	tick   uint64

	seed   int64
	rng    *rand.Rand
	logger *log.Logger
}

type Option func(*Round)

// WithLogger routes round events to l. They are logged at debug level.
func WithLogger(l *log.Logger) Option {
	return func(r *Round) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSeed seeds the frightened-mode and stuck-recovery randomness. Equal
// seeds and equal inputs replay identically.
func WithSeed(seed int64) Option {
	return func(r *Round) {
		r.seed = seed
	}
}

// New builds a round from cfg, which must pass Validate.
func New(cfg config.Config, opts ...Option) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := cfg.BuildMaze()
	if err != nil {
		return nil, fmt.Errorf("round: %w", err)
	}

	r := &Round{
		cfg:    cfg,
		maze:   m,
		level:  1,
		seed:   1,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.rng = rand.New(rand.NewSource(r.seed))

	r.start = m.CellCenter(cfg.Player.Start.Col, cfg.Player.Start.Row)
	r.player = entities.NewPlayer(r.start, cfg.PlayerStats())

	ts := m.TileSizePx()
	for i, p := range entities.Personalities {
		cell, _ := cfg.Spawn(p)
		spawn := m.CellCenter(cell.Col, cell.Row)
		home := p.HomeCorner(m.Width, m.Height, ts)
		r.ghosts[i] = entities.NewGhost(p, spawn, home, cfg.GhostStats())
	}
	return r, nil
}

// Step advances the round by one tick. It does nothing once the round has
// ended or while paused.
func (r *Round) Step() {
	if r.status != StatusRunning || r.paused {
		return
	}
	r.tick++

	if r.player.Update(r.maze) {
		r.logger.Debug("power pellet eaten", "tick", r.tick, "score", r.player.Score)
		for _, g := range r.ghosts {
			g.EnterFrightened()
		}
	}

	roster := r.ghosts[:]
	for _, g := range r.ghosts {
		wasEaten := g.State == entities.GhostEaten
		g.Update(r.maze, r.player, roster, r.rng)
		if wasEaten && g.State != entities.GhostEaten {
			r.logger.Debug("ghost revived", "ghost", g.Personality, "tick", r.tick)
		}
	}

	r.referee()
}

// Apply feeds one input action to the round.
func (r *Round) Apply(a Action) {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		r.player.HandleInput(a.Direction())
	case ActionPause:
		if r.status == StatusRunning {
			r.paused = !r.paused
		}
	case ActionRestart:
		r.Restart()
	}
}

// Restart resets the maze and every actor for a new round. It only acts once
// the round has ended and reports whether it did.
func (r *Round) Restart() bool {
	if r.status == StatusRunning {
		return false
	}
	r.maze.Reset()
	r.player.Reset(r.start)
	for _, g := range r.ghosts {
		g.Reset()
	}
	r.status = StatusRunning
	r.paused = false
	r.tick = 0
	r.level++
	r.logger.Debug("round restarted", "level", r.level)
	return true
}

func (r *Round) Maze() *tilemap.TileMap { return r.maze }

func (r *Round) Player() *entities.Player { return r.player }

// Ghosts returns the roster in personality order.
func (r *Round) Ghosts() [4]*entities.Ghost { return r.ghosts }

func (r *Round) Config() config.Config { return r.cfg }

func (r *Round) Score() int { return r.player.Score }

func (r *Round) Status() Status { return r.status }

func (r *Round) Running() bool { return r.status == StatusRunning }

func (r *Round) Paused() bool { return r.paused }

// Level counts rounds played, starting at 1.
func (r *Round) Level() int { return r.level }

// Tick is the number of steps taken in the current round.
func (r *Round) Tick() uint64 { return r.tick }
