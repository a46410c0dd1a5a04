package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Cell is one discrete grid unit.
type Cell struct {
	X, Y int
}

// Grid is the toroidal play field. It is immutable after construction.
type Grid struct {
	width  int
	height int
}

// NewGrid derives the grid from a play area and a cell size, both in pixels.
// Dimensions below one cell are raised to one.
func NewGrid(areaW, areaH, cellSize int) Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return GridOf(areaW/cellSize, areaH/cellSize)
}

// GridOf creates a grid with explicit cell dimensions.
func GridOf(width, height int) Grid {
	return Grid{width: max(1, width), height: max(1, height)}
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// Area returns the number of cells.
func (g Grid) Area() int { return g.width * g.height }

// Wrap maps any coordinate pair onto the torus.
func (g Grid) Wrap(x, y int) Cell {
	return Cell{X: core.Mod(x, g.width), Y: core.Mod(y, g.height)}
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Cell {
	return Cell{X: g.width / 2, Y: g.height / 2}
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// RandomCell returns a uniformly random cell.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{X: rng.Intn(g.width), Y: rng.Intn(g.height)}
}
