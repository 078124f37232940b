package entities

import (
	"math"

	"github.com/rom100main/pac-minator/internal/geom"
)

// Maze is the read side of the tile grid that actors move through.
type Maze interface {
	IsWall(p geom.Vec) bool
	TileCenter(p geom.Vec) geom.Vec
	TileSizePx() float64
}

// DotMaze is a Maze the player can eat from.
type DotMaze interface {
	Maze
	EatDot(p geom.Vec) (ate, power bool)
}

// Actor is the grid-locked movement shared by the player and the ghosts.
// Its position is always a tile center or on the axis between two centers.
type Actor struct {
	Pos   geom.Vec
	Dir   Direction
	Speed float64
}

// AtCenter reports whether the actor is within one step of its tile center.
func (a *Actor) AtCenter(m Maze) bool {
	c := m.TileCenter(a.Pos)
	return math.Abs(a.Pos.X-c.X) < a.Speed && math.Abs(a.Pos.Y-c.Y) < a.Speed
}

// CanMove reports whether the tile one step away in d is open.
func (a *Actor) CanMove(m Maze, d Direction) bool {
	if d == DirNone {
		return false
	}
	return !m.IsWall(a.Pos.Add(d.Vec().Scale(m.TileSizePx())))
}

func (a *Actor) SnapToCenter(m Maze) {
	a.Pos = m.TileCenter(a.Pos)
}

// Advance steps the actor Speed pixels along Dir. Facing a wall at a tile
// center halts it exactly on the center. Returns whether it moved.
func (a *Actor) Advance(m Maze) bool {
	if a.Dir == DirNone {
		return false
	}
	if a.AtCenter(m) && !a.CanMove(m, a.Dir) {
		a.SnapToCenter(m)
		return false
	}
	next := a.Pos.Add(a.Dir.Vec().Scale(a.Speed))
	if m.IsWall(next) {
		return false
	}
	a.Pos = next
	return true
}

// openDirections returns the cardinal directions whose next tile is open,
// in Cardinal order.
func (a *Actor) openDirections(m Maze) []Direction {
	open := make([]Direction, 0, 4)
	for _, d := range Cardinal {
		if a.CanMove(m, d) {
			open = append(open, d)
		}
	}
	return open
}
