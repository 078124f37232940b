package entities

import (
	"image/color"
	"math/rand"

	"github.com/rom100main/pac-minator/internal/geom"
)

type GhostState int

const (
	GhostScatter GhostState = iota
	GhostChase
	GhostFrightened
	GhostEaten
)

func (s GhostState) String() string {
	switch s {
	case GhostScatter:
		return "scatter"
	case GhostChase:
		return "chase"
	case GhostFrightened:
		return "frightened"
	case GhostEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// frightenedFlashTicks is how long before the end of frightened mode a ghost
// starts flashing.
const frightenedFlashTicks = 100

type GhostConfig struct {
	Speed            float64
	Radius           float64
	FrightenedTicks  int
	ScatterTicks     int
	ChaseTicks       int
	FrightenedFactor float64
	EatenFactor      float64
	StuckTicks       int
	StuckEpsilon     float64
	OverrideTicks    int
	ShyDistanceTiles float64
}

type Ghost struct {
	Actor
	Personality Personality
	State       GhostState
	Radius      float64
	// Home is the scatter corner, Spawn the start and respawn point.
	Home  geom.Vec
	Spawn geom.Vec

	cfg             GhostConfig
	modeIndex       int
	modeTimer       int
	frightenedTimer int

	lastPos       geom.Vec
	stuckTicks    int
	override      Direction
	overrideTicks int
}

func NewGhost(p Personality, spawn, home geom.Vec, cfg GhostConfig) *Ghost {
	g := &Ghost{Personality: p, Home: home, Spawn: spawn, cfg: cfg}
	g.Reset()
	return g
}

// Reset returns the ghost to its spawn point at the start of the cycle.
func (g *Ghost) Reset() {
	g.Actor = Actor{Pos: g.Spawn, Speed: g.cfg.Speed}
	g.State = GhostScatter
	g.Radius = g.cfg.Radius
	g.modeIndex = 0
	g.modeTimer = 0
	g.frightenedTimer = 0
	g.lastPos = g.Spawn
	g.stuckTicks = 0
	g.override = DirNone
	g.overrideTicks = 0
}

// Update advances timers, runs the stuck watchdog and moves the ghost one
// tick. roster is the full ghost list, used for cross-ghost targeting.
func (g *Ghost) Update(m Maze, player *Player, roster []*Ghost, rng *rand.Rand) {
	if g.State != GhostFrightened && g.State != GhostEaten {
		g.advanceMode()
	}

	if g.State == GhostFrightened {
		g.frightenedTimer--
		if g.frightenedTimer <= 0 {
			g.exitFrightened()
		}
	}

	if g.ReachedHome() {
		g.revive()
	}

	g.watchStuck(m, rng)

	if g.AtCenter(m) {
		if d := g.chooseDirection(m, player, roster, rng); d != DirNone {
			g.Dir = d
			g.SnapToCenter(m)
		}
	}
	g.Advance(m)

	if g.overrideTicks > 0 {
		g.overrideTicks--
		if g.overrideTicks == 0 {
			g.override = DirNone
		}
	}
}

func (g *Ghost) cycleState() GhostState {
	if g.modeIndex == 0 {
		return GhostScatter
	}
	return GhostChase
}

func (g *Ghost) phaseTicks() int {
	if g.modeIndex == 0 {
		return g.cfg.ScatterTicks
	}
	return g.cfg.ChaseTicks
}

// advanceMode runs the scatter/chase timer; every switch reverses the ghost.
func (g *Ghost) advanceMode() {
	g.modeTimer++
	if g.modeTimer < g.phaseTicks() {
		return
	}
	g.modeTimer = 0
	g.modeIndex = (g.modeIndex + 1) % 2
	g.State = g.cycleState()
	g.Dir = g.Dir.Reverse()
}

// EnterFrightened is the power pellet broadcast. Eaten ghosts ignore it.
func (g *Ghost) EnterFrightened() {
	if g.State == GhostEaten {
		return
	}
	g.State = GhostFrightened
	g.frightenedTimer = g.cfg.FrightenedTicks
	g.Dir = g.Dir.Reverse()
	g.Speed = g.cfg.Speed * g.cfg.FrightenedFactor
}

// exitFrightened resumes the scatter/chase phase that was paused.
func (g *Ghost) exitFrightened() {
	if g.State != GhostFrightened {
		return
	}
	g.State = g.cycleState()
	g.frightenedTimer = 0
	g.Speed = g.cfg.Speed
}

// EnterEaten sends the ghost back to its spawn point at double speed.
func (g *Ghost) EnterEaten() {
	g.State = GhostEaten
	g.frightenedTimer = 0
	g.Speed = g.cfg.Speed * g.cfg.EatenFactor
}

func (g *Ghost) ReachedHome() bool {
	return g.State == GhostEaten && g.Pos.Dist(g.Spawn) < g.Speed*2
}

func (g *Ghost) revive() {
	g.State = GhostScatter
	g.Speed = g.cfg.Speed
	g.Pos = g.Spawn
	g.lastPos = g.Spawn
	g.modeIndex = 0
	g.modeTimer = 0
}

// FrightenedEnding reports whether the frightened countdown is in its
// final stretch.
func (g *Ghost) FrightenedEnding() bool {
	return g.State == GhostFrightened && g.frightenedTimer < frightenedFlashTicks
}

// FrightenedTicks returns the remaining frightened countdown.
func (g *Ghost) FrightenedTicks() int {
	return g.frightenedTimer
}

// Color is the body color for the current state. flash alternates the
// frightened body to white near the end of the countdown.
func (g *Ghost) Color(flash bool) color.RGBA {
	switch g.State {
	case GhostFrightened:
		if flash && g.FrightenedEnding() {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 0, G: 0, B: 255, A: 255}
	case GhostEaten:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	default:
		return g.Personality.Color()
	}
}

// watchStuck forces a random open direction when the ghost has barely
// moved for StuckTicks consecutive ticks. The forced direction is held for
// OverrideTicks.
func (g *Ghost) watchStuck(m Maze, rng *rand.Rand) {
	moved := g.Pos.Dist(g.lastPos)
	g.lastPos = g.Pos
	if moved >= g.cfg.StuckEpsilon {
		g.stuckTicks = 0
		return
	}
	g.stuckTicks++
	if g.stuckTicks < g.cfg.StuckTicks {
		return
	}
	g.stuckTicks = 0

	g.SnapToCenter(m)
	open := g.openDirections(m)
	if len(open) == 0 {
		return
	}
	candidates := open
	if len(open) > 1 {
		candidates = make([]Direction, 0, len(open))
		for _, d := range open {
			if d != g.Dir {
				candidates = append(candidates, d)
			}
		}
	}
	d := candidates[rng.Intn(len(candidates))]
	g.override = d
	g.overrideTicks = g.cfg.OverrideTicks
	g.Dir = d
}

// chooseDirection picks the next heading at a tile center.
func (g *Ghost) chooseDirection(m Maze, player *Player, roster []*Ghost, rng *rand.Rand) Direction {
	open := g.openDirections(m)

	if g.overrideTicks > 0 && containsDir(open, g.override) {
		return g.override
	}

	if len(open) > 1 && g.Dir != DirNone {
		open = removeDir(open, g.Dir.Reverse())
	}
	if len(open) == 0 {
		return DirNone
	}

	if g.State == GhostFrightened {
		return open[rng.Intn(len(open))]
	}
	return g.nearestTo(open, g.Target(player, roster, m.TileSizePx()), m.TileSizePx())
}

// nearestTo returns the option whose next tile is closest to target.
// Ties go to the earliest option.
func (g *Ghost) nearestTo(options []Direction, target geom.Vec, tileSize float64) Direction {
	best := options[0]
	bestDist := -1.0
	for _, d := range options {
		dist := g.Pos.Add(d.Vec().Scale(tileSize)).DistSq(target)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// Target returns the point the ghost steers toward in its current state.
func (g *Ghost) Target(player *Player, roster []*Ghost, tileSize float64) geom.Vec {
	switch g.State {
	case GhostEaten:
		return g.Spawn
	case GhostScatter:
		return g.Home
	}
	in := ChaseInput{
		Self:      g.Pos,
		Home:      g.Home,
		Player:    player.Pos,
		PlayerDir: player.Dir,
		TileSize:  tileSize,
		ShyTiles:  g.cfg.ShyDistanceTiles,
	}
	if p, ok := findPursuer(g, roster); ok {
		in.Pursuer, in.HasPursuer = p, true
	}
	return ChaseTarget(g.Personality, in)
}

func findPursuer(self *Ghost, roster []*Ghost) (geom.Vec, bool) {
	for _, other := range roster {
		if other != nil && other != self && other.Personality == Pursuer {
			return other.Pos, true
		}
	}
	return geom.Vec{}, false
}

func containsDir(ds []Direction, d Direction) bool {
	if d == DirNone {
		return false
	}
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

func removeDir(ds []Direction, d Direction) []Direction {
	out := ds[:0]
	for _, x := range ds {
		if x != d {
			out = append(out, x)
		}
	}
	return out
}
