package world

import (
	"fmt"
	"strings"
)

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Manhattan returns the taxicab distance between two points.
func (p Point) Manhattan(other Point) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Grid is a fixed-size matrix of wall and floor cells.
type Grid struct {
	width  int
	height int
	tiles  []Tile // row-major
}

// NewGrid creates a grid filled with walls.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, width, height)
	}

	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = TileWall
	}

	return &Grid{
		width:  width,
		height: height,
		tiles:  tiles,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile at the given position.
func (g *Grid) Get(x, y int) (Tile, error) {
	if !g.InBounds(x, y) {
		return TileWall, g.boundsError(x, y)
	}
	return g.tiles[y*g.width+x], nil
}

// Set writes a tile at the given position. Off-grid writes are rejected.
func (g *Grid) Set(x, y int, tile Tile) error {
	if !g.InBounds(x, y) {
		return g.boundsError(x, y)
	}
	g.tiles[y*g.width+x] = tile
	return nil
}

// IsFloor returns true if the position is on the grid and walkable.
func (g *Grid) IsFloor(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.tiles[y*g.width+x].IsPassable()
}

// FloorCells returns every floor cell in row-major order.
func (g *Grid) FloorCells() []Point {
	cells := make([]Point, 0)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y*g.width+x].IsPassable() {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{width: g.width, height: g.height, tiles: tiles}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.tiles[y*g.width+x].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) boundsError(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
