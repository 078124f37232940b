// Package geom holds the continuous pixel-space vector shared by the maze and
// the actors that move through it.
package geom

import "math"

// Vec is a 2D coordinate or displacement in pixel space.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// LenSq returns the squared length. Prefer it for comparisons.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

// DistSq returns the squared distance between v and o.
func (v Vec) DistSq(o Vec) float64 {
	return v.Sub(o).LenSq()
}

// Normalize returns the unit vector pointing along v. A zero-length vector
// yields the zero vector instead of NaNs.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
