package entities

import "github.com/rom100main/pac-minator/internal/geom"

type PlayerConfig struct {
	Speed       float64
	Radius      float64
	PowerTicks  int
	DotPoints   int
	PowerPoints int
}

type Player struct {
	Actor
	DesiredDir Direction
	Radius     float64
	Score      int
	// PowerTicks counts down the remaining power-up ticks.
	PowerTicks int

	cfg PlayerConfig
}

func NewPlayer(start geom.Vec, cfg PlayerConfig) *Player {
	p := &Player{cfg: cfg}
	p.Reset(start)
	return p
}

// Reset puts the player back on start with a clean score.
func (p *Player) Reset(start geom.Vec) {
	p.Actor = Actor{Pos: start, Speed: p.cfg.Speed}
	p.DesiredDir = DirNone
	p.Radius = p.cfg.Radius
	p.Score = 0
	p.PowerTicks = 0
}

// HandleInput buffers d until the next tile center where it is open.
func (p *Player) HandleInput(d Direction) {
	p.DesiredDir = d
}

func (p *Player) PoweredUp() bool {
	return p.PowerTicks > 0
}

// PowerRemaining returns the fraction of the power-up left, in [0,1].
func (p *Player) PowerRemaining() float64 {
	if p.cfg.PowerTicks <= 0 || p.PowerTicks <= 0 {
		return 0
	}
	return float64(p.PowerTicks) / float64(p.cfg.PowerTicks)
}

// Update moves the player one tick and eats whatever lies on the tile it
// reached. It returns true when a power pellet was eaten.
func (p *Player) Update(m DotMaze) bool {
	if p.PowerTicks > 0 {
		p.PowerTicks--
	}

	if p.DesiredDir != DirNone && p.AtCenter(m) && p.CanMove(m, p.DesiredDir) {
		p.Dir = p.DesiredDir
		p.SnapToCenter(m)
		p.DesiredDir = DirNone
	}
	p.Advance(m)

	if !p.AtCenter(m) {
		return false
	}
	ate, power := m.EatDot(p.Pos)
	if !ate {
		return false
	}
	if power {
		p.Score += p.cfg.PowerPoints
		p.PowerTicks = p.cfg.PowerTicks
		return true
	}
	p.Score += p.cfg.DotPoints
	return false
}
