package model

import (
	"math/rand"
	"testing"
)

func TestNewGridAllDead(t *testing.T) {
	for _, size := range [][2]int{{3, 3}, {5, 4}, {17, 9}} {
		w, h := size[0], size[1]
		g := NewGrid(w, h)
		if g.GetWidth() != w || g.GetHeight() != h {
			t.Fatalf("dimensions = %dx%d, want %dx%d", g.GetWidth(), g.GetHeight(), w, h)
		}
		if len(g.states) != w*h {
			t.Fatalf("buffer holds %d cells, want %d", len(g.states), w*h)
		}
		for y := range h {
			for x := range w {
				if g.Get(x, y) != Dead {
					t.Fatalf("cell (%d,%d) = %v in new %dx%d grid", x, y, g.Get(x, y), w, h)
				}
			}
		}
	}
}

func TestGridRowMajorIndex(t *testing.T) {
	g := NewGrid(3, 4)
	if got := g.Index(1, 3); got != 3*3+1 {
		t.Fatalf("Index(1,3) = %d, want %d", got, 10)
	}

	g.Set(1, 3, Alive)
	if g.states[10] != Alive {
		t.Fatal("Set(1,3) did not write flat index 10")
	}

	*g.GetMut(2, 0) = Alive
	if g.states[2] != Alive || g.Get(2, 0) != Alive {
		t.Fatal("GetMut(2,0) did not point at flat index 2")
	}
	if got := g.CountLivingCells(); got != 2 {
		t.Fatalf("CountLivingCells = %d, want 2", got)
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	cases := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x past width", 3, 0},
		{"y past height", 0, 4},
		// would alias (0,1) if the column were not checked
		{"x wraps into next row", 3, 1},
	}

	g := NewGrid(3, 4)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				ierr, ok := r.(*IndexError)
				if !ok {
					t.Fatalf("recovered %v, want *IndexError", r)
				}
				if ierr.X != tc.x || ierr.Y != tc.y {
					t.Fatalf("IndexError at (%d,%d), want (%d,%d)", ierr.X, ierr.Y, tc.x, tc.y)
				}
			}()
			g.Get(tc.x, tc.y)
		})
	}
}

func TestGetMutOutOfRangePanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(*IndexError); !ok {
			t.Fatal("GetMut out of range did not panic with *IndexError")
		}
	}()
	NewGrid(2, 2).GetMut(2, 2)
}

func TestNewGridRejectsEmptyDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewGrid(0, 3) did not panic")
		}
	}()
	NewGrid(0, 3)
}

func TestGridCloneAndEqual(t *testing.T) {
	g := NewGrid(6, 6)
	g.Randomize(rand.New(rand.NewSource(7)), 0.5)

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs from original")
	}
	if g.GetGridHash() != c.GetGridHash() {
		t.Fatal("clone hash differs from original")
	}

	*c.GetMut(3, 3) ^= Alive
	if g.Equal(c) {
		t.Fatal("mutating the clone changed the original")
	}
	if g.GetGridHash() == c.GetGridHash() {
		t.Fatal("different grids share a hash")
	}
	if g.Equal(NewGrid(6, 5)) {
		t.Fatal("grids of different size compare equal")
	}
}

func TestRandomizeDensityBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	g := NewGrid(10, 10)
	g.Randomize(rng, 0)
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("density 0 produced %d living cells", n)
	}
	g.Randomize(rng, 1)
	if n := g.CountLivingCells(); n != 100 {
		t.Fatalf("density 1 produced %d living cells, want 100", n)
	}
}
