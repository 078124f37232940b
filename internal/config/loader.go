package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in each search location.
const FileName = "pacman.yaml"

// Load loads the game configuration.
// Search order: customPath -> $PACMAN_CONFIG_DIR or <UserConfigDir>/pacman -> ./configs -> embedded default
// Keys missing from a file keep their default values. Only a bad customPath
// is an error; other broken files are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if dir, err := Dir(); err == nil {
		if cfg, err := loadFile(filepath.Join(dir, FileName)); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	if cfg, err := decode(defaultYAML); err == nil {
		return cfg, nil
	}
	return Default(), nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return decode(data)
}

// decode overlays data on the defaults and validates the result.
func decode(data []byte) (Config, error) {
	cfg := Default()
	// Replace, don't merge, the spawn table when the file supplies one.
	var probe struct {
		Ghosts struct {
			Spawns map[string]Cell `yaml:"spawns"`
		} `yaml:"ghosts"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return Config{}, err
	}
	if probe.Ghosts.Spawns != nil {
		cfg.Ghosts.Spawns = nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
