package model

const historySize = 5

// History keeps the hashes of recent generations to spot static states and short cycles
type History struct {
	hashes []string
}

// Record adds the current state of g and drops the oldest entry past historySize
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether g repeats one of the last three recorded states,
// i.e. it is static or cycles with period 2 or 3
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.GetGridHash()
	for _, prev := range h.hashes[len(h.hashes)-3:] {
		if prev == current {
			return true
		}
	}
	return false
}
