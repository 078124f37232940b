package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/rom100main/pac-minator/internal/game"
)

var flagScale float64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open a window and play.

Controls:
  Arrows/WASD  - Steer
  Space        - Pause
  R / click    - Restart (after the round ends)
  F            - Toggle fullscreen
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale (0 = fit to screen, or window.scale from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	r, err := newRound(logger)
	if err != nil {
		return err
	}
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := r.Config()
	scale := flagScale
	if scale <= 0 {
		scale = fitScale(r.Maze().PixelWidth(), r.Maze().PixelHeight(), cfg.Window.Scale)
	}

	g := game.New(r, game.Options{
		Store:  store,
		Logger: logger,
		Name:   flagName,
		Scale:  scale,
	})
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	ebiten.SetTPS(cfg.Loop.TickRate)

	logger.Info("starting", "player", flagName, "scale", scale)
	return ebiten.RunGame(g)
}

// fitScale keeps the configured scale unless the window would not fit in
// about 75% of the display.
func fitScale(nativeW, nativeH int, scale float64) float64 {
	if scale <= 0 {
		scale = 1
	}
	sw, sh := ebiten.ScreenSizeInFullscreen()
	if sw <= 0 || sh <= 0 {
		return scale
	}
	const fit = 0.75
	maxScale := math.Min(fit*float64(sw)/float64(nativeW), fit*float64(sh)/float64(nativeH))
	if maxScale <= 0 || math.IsNaN(maxScale) || math.IsInf(maxScale, 0) {
		return scale
	}
	return math.Min(scale, maxScale)
}
