package model

import (
	"bufio"
	"fmt"
	"io"
)

const clearScreenSeq = "\x1b[2J\x1b[H"

// TerminalRenderer draws the interior of a grid as text; the frozen border is not shown
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid interior to the terminal
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			w.WriteRune(g.Get(x, y).Rune())
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	if _, err := fmt.Fprint(r.Out, clearScreenSeq); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
