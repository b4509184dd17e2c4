package rules

/*
ApplyConwayRules decides whether a cell is alive in the next generation.

An alive cell survives with 2 or 3 living neighbours and dies otherwise,
from underpopulation (0 or 1) or overcrowding (4 or more). A dead cell
becomes alive with exactly 3 living neighbours.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
