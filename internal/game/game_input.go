package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rom100main/pac-minator/internal/round"
)

var steerKeys = []struct {
	keys   []ebiten.Key
	action round.Action
}{
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, action: round.ActionUp},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, action: round.ActionDown},
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, action: round.ActionLeft},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, action: round.ActionRight},
}

// pollActions translates this frame's keyboard and mouse state.
func (g *Game) pollActions() []round.Action {
	var actions []round.Action

	// Held keys steer; the first match wins.
steer:
	for _, s := range steerKeys {
		for _, k := range s.keys {
			if ebiten.IsKeyPressed(k) {
				actions = append(actions, s.action)
				break steer
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		actions = append(actions, round.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		actions = append(actions, round.ActionRestart)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if g.restartHit(mx, my) {
			actions = append(actions, round.ActionRestart)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		actions = append(actions, round.ActionQuit)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	return actions
}

// restartButton is the restart button rectangle in native coordinates.
func (g *Game) restartButton() (x, y, w, h int) {
	w, h = 120, 28
	x = (g.nativeWidth() - w) / 2
	y = g.round.Maze().PixelHeight()/2 + 20
	return x, y, w, h
}

// restartHit reports whether a click at screen position (sx, sy) lands on
// the restart button. The button only exists once the round has ended.
func (g *Game) restartHit(sx, sy int) bool {
	if g.round.Running() {
		return false
	}
	px := float64(sx) / g.scale
	py := float64(sy) / g.scale
	x, y, w, h := g.restartButton()
	return px >= float64(x) && px < float64(x+w) && py >= float64(y) && py < float64(y+h)
}
