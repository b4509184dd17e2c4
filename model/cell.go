package model

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

const (
	aliveRune = 'x'
	deadRune  = '.'
)

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

// Rune returns the map character for the cell
func (c Cell) Rune() rune {
	if c == Alive {
		return aliveRune
	}
	return deadRune
}

func (c Cell) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}

// CellFromRune maps a map character to a Cell, ok is false for anything but 'x' and '.'
func CellFromRune(r rune) (cell Cell, ok bool) {
	switch r {
	case aliveRune:
		return Alive, true
	case deadRune:
		return Dead, true
	}
	return Dead, false
}

func cellFromBool(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}
