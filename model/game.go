package model

import (
	"strings"

	"github.com/sheikhrachel/lifemap/rules"
)

// Game owns a grid and advances it one generation at a time.
// The outermost ring of cells is never evaluated and keeps its state across steps.
type Game struct {
	grid       *Grid
	generation int
	pool       *GridPool
}

// NewGame creates a game with a blank grid of the given dimensions
func NewGame(width, height int) *Game {
	return &Game{grid: NewGrid(width, height)}
}

// WithPool makes the game take its scratch buffers from pool
func (gm *Game) WithPool(pool *GridPool) *Game {
	gm.pool = pool
	return gm
}

// Grid exposes the current generation for display
func (gm *Game) Grid() *Grid {
	return gm.grid
}

// Generation returns the number of steps applied so far
func (gm *Game) Generation() int {
	return gm.generation
}

// Step computes the next generation from the current one and installs it
func (gm *Game) Step() {
	var (
		g    = gm.grid
		w, h = g.width, g.height
		cur  = g.states
		next = scratchBuffer(gm.pool, len(cur))
	)
	// border cells carry over as they are
	copy(next, cur)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			idx := y*w + x
			alive := rules.ApplyConwayRules(countNeighbors(cur, w, x, y), cur[idx] == Alive)
			next[idx] = cellFromBool(alive)
		}
	}

	bufferToPool(g.replaceStates(next), gm.pool)
	gm.generation++
}

// Run applies count steps in sequence
func (gm *Game) Run(count int) {
	for range count {
		gm.Step()
	}
}

// ToText renders the whole grid, border included, one row per line without a trailing newline
func (gm *Game) ToText() string {
	g := gm.grid
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height - 1)
	for y := range g.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.states[y*g.width : (y+1)*g.width] {
			sb.WriteRune(c.Rune())
		}
	}
	return sb.String()
}

func (gm *Game) String() string {
	return gm.ToText()
}

// countNeighbors counts living cells in the 3x3 block around an interior (x, y), excluding itself
func countNeighbors(states []Cell, width, x, y int) int {
	count := 0
	for ny := y - 1; ny <= y+1; ny++ {
		row := ny * width
		for nx := x - 1; nx <= x+1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if states[row+nx] == Alive {
				count++
			}
		}
	}
	return count
}
