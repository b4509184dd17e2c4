package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"slices"
)

// Grid is a fixed-size board stored as a flat row-major cell buffer
type Grid struct {
	width  int
	height int
	states []Cell
}

// IndexError is the panic value for coordinates outside the grid
type IndexError struct {
	X, Y          int
	Width, Height int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cell (%d,%d) out of range for %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

// NewGrid creates a grid of the given dimensions with every cell Dead
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("model: invalid grid dimensions %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		states: make([]Cell, width*height),
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Index maps (x, y) to its position in the flat buffer, panicking if it lies outside the grid
func (g *Grid) Index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(&IndexError{X: x, Y: y, Width: g.width, Height: g.height})
	}
	return y*g.width + x
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) Cell {
	return g.states[g.Index(x, y)]
}

// GetMut returns a pointer to a single cell for in-place edits
func (g *Grid) GetMut(x, y int) *Cell {
	return &g.states[g.Index(x, y)]
}

// Set sets the state of a cell
func (g *Grid) Set(x, y int, cell Cell) {
	g.states[g.Index(x, y)] = cell
}

// replaceStates installs a complete buffer in one assignment and hands back the previous one
func (g *Grid) replaceStates(states []Cell) []Cell {
	if len(states) != g.width*g.height {
		panic(fmt.Sprintf("model: buffer of %d cells for %dx%d grid", len(states), g.width, g.height))
	}
	old := g.states
	g.states = states
	return old
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.states {
		if c == Alive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.states))
	for i, c := range g.states {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	return g.width == other.width &&
		g.height == other.height &&
		slices.Equal(g.states, other.states)
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		states: slices.Clone(g.states),
	}
}

// Randomize fills the grid with living cells at the given density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.states {
		g.states[i] = cellFromBool(rng.Float64() < density)
	}
}
