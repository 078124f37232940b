// pacman is a Pac-Man clone with four ghost personalities.
//
// Usage:
//
//	pacman play     - Play in a window (default)
//	pacman tui      - Play in the terminal
//	pacman scores   - Show the leaderboard
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search config dirs)
//	--seed <value>      - RNG seed for reproducible ghosts (0 = time-based)
//	--db <path>         - Scores database (default: <config dir>/scores.db)
//	--name <name>       - Player name recorded with scores
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rom100main/pac-minator/internal/config"
	"github.com/rom100main/pac-minator/internal/round"
	"github.com/rom100main/pac-minator/internal/storage"
)

var (
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagName     string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man with scatter, chase and frightened ghosts",
	Long: `Eat every dot without getting caught. Power pellets turn the ghosts
blue for a while; eat them in a row for 200, 400, 800 and 1600 points.

Examples:
  pacman
  pacman play --scale 2
  pacman tui --seed 42
  pacman scores`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", defaultName(), "Player name for the leaderboard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(scoresCmd)
}

func defaultName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "Player"
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
	})
	logger.SetLevel(level)
	return logger, nil
}

// newRound loads the configuration and builds a seeded round.
func newRound(logger *log.Logger) (*round.Round, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("round config", "tile_size", cfg.Maze.TileSize, "tick_rate", cfg.Loop.TickRate, "seed", seed)
	return round.New(cfg, round.WithLogger(logger), round.WithSeed(seed))
}

// openStore opens the scores database. Play continues without it on error.
func openStore(logger *log.Logger) *storage.Store {
	path := flagDBPath
	if path == "" {
		p, err := storage.DefaultPath()
		if err != nil {
			logger.Warn("could not resolve scores database", "error", err)
			return nil
		}
		path = p
	}
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
