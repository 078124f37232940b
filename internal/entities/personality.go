package entities

import (
	"image/color"

	"github.com/rom100main/pac-minator/internal/geom"
)

// Personality selects a ghost's chase targeting and home corner.
type Personality int

const (
	// Pursuer heads straight for the player.
	Pursuer Personality = iota
	// Ambusher aims four tiles ahead of the player.
	Ambusher
	// Flanker mirrors the pursuer around a point two tiles ahead of the player.
	Flanker
	// Opportunist chases from afar and retreats when close.
	Opportunist
)

// Personalities lists every personality in roster order.
var Personalities = [4]Personality{Pursuer, Ambusher, Flanker, Opportunist}

func (p Personality) String() string {
	switch p {
	case Pursuer:
		return "pursuer"
	case Ambusher:
		return "ambusher"
	case Flanker:
		return "flanker"
	case Opportunist:
		return "opportunist"
	default:
		return "unknown"
	}
}

// ParsePersonality is the inverse of String.
func ParsePersonality(s string) (Personality, bool) {
	for _, p := range Personalities {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

func (p Personality) Color() color.RGBA {
	switch p {
	case Pursuer:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case Ambusher:
		return color.RGBA{R: 255, G: 182, B: 255, A: 255}
	case Flanker:
		return color.RGBA{R: 0, G: 255, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, G: 182, B: 85, A: 255}
	}
}

// HomeCorner returns the scatter corner for a maze of w x h tiles.
func (p Personality) HomeCorner(w, h int, tileSize float64) geom.Vec {
	right := float64(w-1) * tileSize
	bottom := float64(h-1) * tileSize
	switch p {
	case Pursuer:
		return geom.V(right, 0)
	case Ambusher:
		return geom.V(0, 0)
	case Flanker:
		return geom.V(right, bottom)
	default:
		return geom.V(0, bottom)
	}
}

// ChaseInput is everything a chase target depends on.
type ChaseInput struct {
	Self      geom.Vec
	Home      geom.Vec
	Player    geom.Vec
	PlayerDir Direction
	// Pursuer is the pursuer ghost's position, valid when HasPursuer is set.
	Pursuer    geom.Vec
	HasPursuer bool
	TileSize   float64
	ShyTiles   float64
}

// ChaseTarget computes the chase-state target for personality p.
func ChaseTarget(p Personality, in ChaseInput) geom.Vec {
	switch p {
	case Ambusher:
		return aheadOfPlayer(in, 4)
	case Flanker:
		pivot := aheadOfPlayer(in, 2)
		if !in.HasPursuer {
			return pivot
		}
		return pivot.Add(pivot.Sub(in.Pursuer))
	case Opportunist:
		if in.Self.Dist(in.Player) > in.ShyTiles*in.TileSize {
			return in.Player
		}
		return in.Home
	default:
		return in.Player
	}
}

// aheadOfPlayer projects n tiles along the player's heading. Facing up also
// shifts n tiles left as well, matching the arcade overflow.
func aheadOfPlayer(in ChaseInput, n float64) geom.Vec {
	t := in.Player.Add(in.PlayerDir.Vec().Scale(n * in.TileSize))
	if in.PlayerDir == DirUp {
		t = t.Add(geom.V(-n*in.TileSize, 0))
	}
	return t
}
