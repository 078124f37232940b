package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("decode embedded: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("embedded yaml and Default() differ:\n%+v\n%+v", cfg, Default())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero tick rate", mutate: func(c *Config) { c.Loop.TickRate = 0 }},
		{name: "zero tile size", mutate: func(c *Config) { c.Maze.TileSize = 0 }},
		{name: "open border", mutate: func(c *Config) { c.Maze.Layout = []string{"#.#", "###"} }},
		{name: "no dots", mutate: func(c *Config) { c.Maze.Layout = []string{"###", "# #", "###"} }},
		{name: "player too fast", mutate: func(c *Config) { c.Player.Speed = 15 }},
		{name: "eaten too fast", mutate: func(c *Config) { c.Ghosts.EatenSpeedFactor = 10 }},
		{name: "zero frightened factor", mutate: func(c *Config) { c.Ghosts.FrightenedSpeedFactor = 0 }},
		{name: "zero scatter", mutate: func(c *Config) { c.Ghosts.ScatterTicks = 0 }},
		{name: "player in wall", mutate: func(c *Config) { c.Player.Start = Cell{Col: 0, Row: 0} }},
		{name: "missing spawn", mutate: func(c *Config) { delete(c.Ghosts.Spawns, "flanker") }},
		{name: "unknown spawn", mutate: func(c *Config) { c.Ghosts.Spawns["blinky"] = Cell{Col: 9, Row: 7} }},
		{name: "spawn in wall", mutate: func(c *Config) { c.Ghosts.Spawns["pursuer"] = Cell{Col: 0, Row: 7} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ghosts:\n  chase_ticks: 20\nscoring:\n  ghost_base: 100\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ghosts.ChaseTicks != 20 || cfg.Scoring.GhostBase != 100 {
		t.Fatalf("overrides not applied: %+v %+v", cfg.Ghosts, cfg.Scoring)
	}
	if cfg.Ghosts.ScatterTicks != 350 || len(cfg.Ghosts.Spawns) != 4 {
		t.Fatalf("unset keys lost their defaults: %+v", cfg.Ghosts)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player:\n  speed: 40\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PACMAN_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("loop:\n  tick_rate: 60\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Loop.TickRate != 60 {
		t.Fatalf("expected tick rate from config dir, got %d", cfg.Loop.TickRate)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PACMAN_CONFIG_DIR", dir)
	// A broken user file is skipped.
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("loop: [oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSpawnReplacesTable(t *testing.T) {
	data := []byte(`ghosts:
  spawns:
    pursuer: {col: 4, row: 3}
    ambusher: {col: 5, row: 3}
    flanker: {col: 6, row: 3}
    opportunist: {col: 7, row: 3}
`)
	cfg, err := decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := cfg.Ghosts.Spawns["pursuer"]; got != (Cell{Col: 4, Row: 3}) {
		t.Fatalf("pursuer spawn = %+v", got)
	}
}
