package pathfinding

import (
	"math"

	"umlroute/core"
)

// Heuristic estimates the remaining cost from a cell to the goal, in cell
// units. It only orders the frontier; it need not be admissible.
type Heuristic func(from, goal core.Cell) float64

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Manhattan is |Δrow| + |Δcol|. It is the default heuristic and overestimates
// whenever a diagonal step is cheaper than two orthogonal ones.
func Manhattan(from, goal core.Cell) float64 {
	return float64(absInt(from.Row-goal.Row) + absInt(from.Col-goal.Col))
}

// Octile is the exact cost of an unobstructed eight-direction walk with
// diagonal steps costing √2.
func Octile(from, goal core.Cell) float64 {
	dr, dc := absInt(from.Row-goal.Row), absInt(from.Col-goal.Col)
	return float64(dr+dc) + (math.Sqrt2-2)*float64(min(dr, dc))
}

// Euclidean is the straight-line distance between cell indices.
func Euclidean(from, goal core.Cell) float64 {
	return math.Hypot(float64(from.Row-goal.Row), float64(from.Col-goal.Col))
}

// Zero turns the search into a uniform-cost (Dijkstra) expansion.
func Zero(_, _ core.Cell) float64 {
	return 0
}
