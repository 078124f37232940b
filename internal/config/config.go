// Package config loads the YAML game configuration: maze layout, actor
// speeds, mode durations and scoring.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rom100main/pac-minator/internal/entities"
	"github.com/rom100main/pac-minator/internal/tilemap"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full game configuration.
type Config struct {
	Loop    LoopConfig    `yaml:"loop"`
	Window  WindowConfig  `yaml:"window"`
	Maze    MazeConfig    `yaml:"maze"`
	Player  PlayerConfig  `yaml:"player"`
	Ghosts  GhostsConfig  `yaml:"ghosts"`
	Scoring ScoringConfig `yaml:"scoring"`
}

type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // simulation ticks per second
}

type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

// MazeConfig holds the layout rows: '#' wall, '.' dot, 'o' power pellet,
// anything else open path.
type MazeConfig struct {
	TileSize int      `yaml:"tile_size"`
	Layout   []string `yaml:"layout"`
}

// Cell is a grid coordinate.
type Cell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

type PlayerConfig struct {
	Speed      float64 `yaml:"speed"`
	Radius     float64 `yaml:"radius"`
	PowerTicks int     `yaml:"power_ticks"`
	Start      Cell    `yaml:"start"`
}

type GhostsConfig struct {
	Speed                 float64 `yaml:"speed"`
	Radius                float64 `yaml:"radius"`
	FrightenedTicks       int     `yaml:"frightened_ticks"`
	ScatterTicks          int     `yaml:"scatter_ticks"`
	ChaseTicks            int     `yaml:"chase_ticks"`
	FrightenedSpeedFactor float64 `yaml:"frightened_speed_factor"`
	EatenSpeedFactor      float64 `yaml:"eaten_speed_factor"`
	StuckTicks            int     `yaml:"stuck_ticks"`
	StuckEpsilon          float64 `yaml:"stuck_epsilon"`
	OverrideTicks         int     `yaml:"override_ticks"`
	ShyDistanceTiles      float64 `yaml:"shy_distance_tiles"`
	// Spawns maps a personality name to its spawn cell.
	Spawns map[string]Cell `yaml:"spawns"`
}

type ScoringConfig struct {
	Dot         int `yaml:"dot"`
	PowerPellet int `yaml:"power_pellet"`
	GhostBase   int `yaml:"ghost_base"`
}

// Dir returns the directory holding user configuration and the score
// database: $PACMAN_CONFIG_DIR when set, else <UserConfigDir>/pacman.
func Dir() (string, error) {
	if env := os.Getenv("PACMAN_CONFIG_DIR"); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "pacman"), nil
}

// BuildMaze parses the configured layout.
func (c Config) BuildMaze() (*tilemap.TileMap, error) {
	return tilemap.Parse(c.Maze.Layout, c.Maze.TileSize)
}

// PlayerStats converts the player and scoring sections for entities.NewPlayer.
func (c Config) PlayerStats() entities.PlayerConfig {
	return entities.PlayerConfig{
		Speed:       c.Player.Speed,
		Radius:      c.Player.Radius,
		PowerTicks:  c.Player.PowerTicks,
		DotPoints:   c.Scoring.Dot,
		PowerPoints: c.Scoring.PowerPellet,
	}
}

// GhostStats converts the ghost section for entities.NewGhost.
func (c Config) GhostStats() entities.GhostConfig {
	g := c.Ghosts
	return entities.GhostConfig{
		Speed:            g.Speed,
		Radius:           g.Radius,
		FrightenedTicks:  g.FrightenedTicks,
		ScatterTicks:     g.ScatterTicks,
		ChaseTicks:       g.ChaseTicks,
		FrightenedFactor: g.FrightenedSpeedFactor,
		EatenFactor:      g.EatenSpeedFactor,
		StuckTicks:       g.StuckTicks,
		StuckEpsilon:     g.StuckEpsilon,
		OverrideTicks:    g.OverrideTicks,
		ShyDistanceTiles: g.ShyDistanceTiles,
	}
}

// Spawn returns the spawn cell configured for p.
func (c Config) Spawn(p entities.Personality) (Cell, bool) {
	cell, ok := c.Ghosts.Spawns[p.String()]
	return cell, ok
}

// Validate checks that the configuration describes a playable round.
func (c Config) Validate() error {
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("%w: loop.tick_rate must be positive", ErrInvalid)
	}
	if c.Maze.TileSize <= 0 {
		return fmt.Errorf("%w: maze.tile_size must be positive", ErrInvalid)
	}
	m, err := c.BuildMaze()
	if err != nil {
		return fmt.Errorf("%w: maze.layout: %v", ErrInvalid, err)
	}
	if m.Total() == 0 {
		return fmt.Errorf("%w: maze.layout has no dots", ErrInvalid)
	}

	half := float64(c.Maze.TileSize) / 2
	speeds := []struct {
		key string
		v   float64
	}{
		{"player.speed", c.Player.Speed},
		{"ghosts.speed", c.Ghosts.Speed},
		{"ghosts.speed * frightened_speed_factor", c.Ghosts.Speed * c.Ghosts.FrightenedSpeedFactor},
		{"ghosts.speed * eaten_speed_factor", c.Ghosts.Speed * c.Ghosts.EatenSpeedFactor},
	}
	for _, s := range speeds {
		if s.v <= 0 || s.v >= half {
			return fmt.Errorf("%w: %s = %g, want in (0, %g)", ErrInvalid, s.key, s.v, half)
		}
	}

	ticks := []struct {
		key string
		v   int
	}{
		{"player.power_ticks", c.Player.PowerTicks},
		{"ghosts.frightened_ticks", c.Ghosts.FrightenedTicks},
		{"ghosts.scatter_ticks", c.Ghosts.ScatterTicks},
		{"ghosts.chase_ticks", c.Ghosts.ChaseTicks},
		{"ghosts.stuck_ticks", c.Ghosts.StuckTicks},
		{"ghosts.override_ticks", c.Ghosts.OverrideTicks},
	}
	for _, t := range ticks {
		if t.v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalid, t.key)
		}
	}
	if c.Player.Radius <= 0 || c.Ghosts.Radius <= 0 {
		return fmt.Errorf("%w: radii must be positive", ErrInvalid)
	}

	if m.IsWallAt(c.Player.Start.Col, c.Player.Start.Row) {
		return fmt.Errorf("%w: player.start (%d,%d) is a wall", ErrInvalid, c.Player.Start.Col, c.Player.Start.Row)
	}
	for name := range c.Ghosts.Spawns {
		if _, ok := entities.ParsePersonality(name); !ok {
			return fmt.Errorf("%w: ghosts.spawns: unknown personality %q", ErrInvalid, name)
		}
	}
	for _, p := range entities.Personalities {
		cell, ok := c.Spawn(p)
		if !ok {
			return fmt.Errorf("%w: ghosts.spawns: missing %s", ErrInvalid, p)
		}
		if m.IsWallAt(cell.Col, cell.Row) {
			return fmt.Errorf("%w: ghosts.spawns.%s (%d,%d) is a wall", ErrInvalid, p, cell.Col, cell.Row)
		}
	}
	return nil
}
