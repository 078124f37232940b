package tilemap

import (
	"errors"
	"fmt"
	"math"

	"github.com/rom100main/pac-minator/internal/geom"
)

type Tile int

const (
	TilePath Tile = iota
	TileWall
	TileDot
	TilePower
)

func (t Tile) String() string {
	switch t {
	case TilePath:
		return "path"
	case TileWall:
		return "wall"
	case TileDot:
		return "dot"
	case TilePower:
		return "power"
	default:
		return "unknown"
	}
}

var (
	ErrEmptyLayout  = errors.New("tilemap: empty layout")
	ErrRaggedLayout = errors.New("tilemap: rows have different widths")
	ErrOpenBorder   = errors.New("tilemap: border cell is not a wall")
)

// TileMap is the maze grid. Only dot consumption mutates it; Reset restores
// the layout it was parsed from.
type TileMap struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	pristine [][]Tile
}

func NewDefaultMap(tileSize int) *TileMap {
	m, err := Parse(DefaultLayout, tileSize)
	if err != nil {
		panic(err)
	}
	return m
}

// Parse builds a map from rows of '#' (wall), '.' (dot), 'o' (power pellet)
// and anything else (path). The layout must be rectangular and sealed by walls.
func Parse(lines []string, tileSize int) (*TileMap, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tilemap: tile size must be positive, got %d", tileSize)
	}
	w := len(lines[0])
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, y, len(line), w)
		}
	}
	grid := parseMaze(lines)
	h := len(grid)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			border := x == 0 || y == 0 || x == w-1 || y == h-1
			if border && grid[y][x] != TileWall {
				return nil, fmt.Errorf("%w: (%d,%d)", ErrOpenBorder, x, y)
			}
		}
	}
	return &TileMap{
		Width:    w,
		Height:   h,
		TileSize: tileSize,
		Tiles:    grid,
		pristine: cloneGrid(grid),
	}, nil
}

func (m *TileMap) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// TileAt returns the tile at grid cell (x, y); out of bounds reads as a wall.
func (m *TileMap) TileAt(x, y int) Tile {
	if !m.inBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x]
}

func (m *TileMap) IsWallAt(x, y int) bool {
	return m.TileAt(x, y) == TileWall
}

// TileOf converts a pixel position to the grid cell containing it.
func (m *TileMap) TileOf(p geom.Vec) (int, int) {
	ts := float64(m.TileSize)
	return int(math.Floor(p.X / ts)), int(math.Floor(p.Y / ts))
}

// CellCenter returns the pixel center of grid cell (x, y).
func (m *TileMap) CellCenter(x, y int) geom.Vec {
	half := float64(m.TileSize) / 2
	return geom.V(float64(x*m.TileSize)+half, float64(y*m.TileSize)+half)
}

// IsWall reports whether the tile containing p is a wall. Positions outside
// the grid are walls.
func (m *TileMap) IsWall(p geom.Vec) bool {
	return m.IsWallAt(m.TileOf(p))
}

// TileCenter snaps p to the center of its tile.
func (m *TileMap) TileCenter(p geom.Vec) geom.Vec {
	return m.CellCenter(m.TileOf(p))
}

func (m *TileMap) TileSizePx() float64 {
	return float64(m.TileSize)
}

// EatDot clears a dot or power pellet from the tile containing p and
// returns (ate, power).
func (m *TileMap) EatDot(p geom.Vec) (bool, bool) {
	x, y := m.TileOf(p)
	return m.EatPelletAt(x, y)
}

// EatPelletAt removes a pellet/power pellet at grid cell and returns (ate, power)
func (m *TileMap) EatPelletAt(x, y int) (bool, bool) {
	if !m.inBounds(x, y) {
		return false, false
	}
	switch m.Tiles[y][x] {
	case TileDot:
		m.Tiles[y][x] = TilePath
		return true, false
	case TilePower:
		m.Tiles[y][x] = TilePath
		return true, true
	}
	return false, false
}

// CountRemaining returns the number of dots and power pellets left.
func (m *TileMap) CountRemaining() int {
	return countEdible(m.Tiles)
}

// Total returns the dot and power pellet count of the untouched layout.
func (m *TileMap) Total() int {
	return countEdible(m.pristine)
}

// Reset restores every eaten tile in place.
func (m *TileMap) Reset() {
	for y := range m.pristine {
		copy(m.Tiles[y], m.pristine[y])
	}
}

func (m *TileMap) PixelWidth() int {
	return m.Width * m.TileSize
}

func (m *TileMap) PixelHeight() int {
	return m.Height * m.TileSize
}

func countEdible(grid [][]Tile) int {
	n := 0
	for _, row := range grid {
		for _, t := range row {
			if t == TileDot || t == TilePower {
				n++
			}
		}
	}
	return n
}

func cloneGrid(grid [][]Tile) [][]Tile {
	out := make([][]Tile, len(grid))
	for y := range grid {
		out[y] = append([]Tile(nil), grid[y]...)
	}
	return out
}

func parseMaze(lines []string) [][]Tile {
	h := len(lines)
	w := len(lines[0])
	grid := make([][]Tile, h)
	for y := 0; y < h; y++ {
		grid[y] = make([]Tile, w)
		for x := 0; x < w; x++ {
			switch lines[y][x] {
			case '#':
				grid[y][x] = TileWall
			case '.':
				grid[y][x] = TileDot
			case 'o':
				grid[y][x] = TilePower
			default:
				grid[y][x] = TilePath
			}
		}
	}
	return grid
}
