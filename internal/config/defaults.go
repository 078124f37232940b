package config

import (
	_ "embed"

	"github.com/rom100main/pac-minator/internal/tilemap"
)

//go:embed defaults/pacman.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Loop:   LoopConfig{TickRate: 50},
		Window: WindowConfig{Title: "Pac-Man", Scale: 1.0},
		Maze: MazeConfig{
			TileSize: 30,
			Layout:   append([]string(nil), tilemap.DefaultLayout...),
		},
		Player: PlayerConfig{
			Speed:      2,
			Radius:     13,
			PowerTicks: 500,
			Start:      Cell{Col: 9, Row: 17},
		},
		Ghosts: GhostsConfig{
			Speed:                 2,
			Radius:                13,
			FrightenedTicks:       500,
			ScatterTicks:          350,
			ChaseTicks:            1000,
			FrightenedSpeedFactor: 0.5,
			EatenSpeedFactor:      2.0,
			StuckTicks:            10,
			StuckEpsilon:          0.5,
			OverrideTicks:         10,
			ShyDistanceTiles:      8,
			Spawns: map[string]Cell{
				"pursuer":     {Col: 9, Row: 7},
				"ambusher":    {Col: 8, Row: 7},
				"flanker":     {Col: 10, Row: 7},
				"opportunist": {Col: 11, Row: 7},
			},
		},
		Scoring: ScoringConfig{Dot: 10, PowerPellet: 50, GhostBase: 200},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
