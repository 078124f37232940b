package entities

import "github.com/rom100main/pac-minator/internal/geom"

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Cardinal lists the four movement directions in the order ghosts break
// distance ties.
var Cardinal = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

func DirDelta(d Direction) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Vec returns the unit axis vector for d.
func (d Direction) Vec() geom.Vec {
	dx, dy := DirDelta(d)
	return geom.V(float64(dx), float64(dy))
}

// Reverse returns the opposite direction. DirNone stays DirNone.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
