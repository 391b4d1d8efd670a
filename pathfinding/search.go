package pathfinding

import (
	"slices"

	"umlroute/core"
	"umlroute/grid"
)

// directions lists the eight neighbour offsets, clockwise from north.
var directions = [8]core.Cell{
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
	{Row: 0, Col: 1},
	{Row: 1, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: -1},
	{Row: 0, Col: -1},
	{Row: -1, Col: -1},
}

// searcher runs a best-first search over a grid.
type searcher struct {
	heuristic     Heuristic
	diagonalCost  float64
	maxExpansions int
}

// findPath returns the cells from start to goal inclusive. The start cell is
// always expanded even when blocked; any other blocked cell is never entered.
// expansions is the number of cells popped from the frontier.
func (s searcher) findPath(g *grid.Grid, start, goal core.Cell) (path []core.Cell, expansions int, ok bool) {
	if start == goal {
		return []core.Cell{start}, 0, true
	}

	frontier := NewPriorityQueue[core.Cell]()
	costSoFar := map[core.Cell]float64{start: 0}
	cameFrom := map[core.Cell]core.Cell{}
	frontier.Enqueue(start, 0)

	for frontier.Len() > 0 {
		current, _ := frontier.Dequeue()
		if current == goal {
			return reconstruct(cameFrom, start, goal), expansions, true
		}

		expansions++
		if s.maxExpansions > 0 && expansions > s.maxExpansions {
			return nil, expansions, false
		}

		for _, d := range directions {
			next := current.Offset(d.Row, d.Col)
			if g.IsCellBlocked(next.Row, next.Col) {
				continue
			}

			step := 1.0
			if d.Row != 0 && d.Col != 0 {
				step = s.diagonalCost
			}
			newCost := costSoFar[current] + step

			if old, seen := costSoFar[next]; !seen || newCost < old {
				costSoFar[next] = newCost
				cameFrom[next] = current
				frontier.UpdatePriority(next, newCost+s.heuristic(next, goal))
			}
		}
	}
	return nil, expansions, false
}

// reconstruct follows predecessors from goal back to start and returns the
// cells in start→goal order.
func reconstruct(cameFrom map[core.Cell]core.Cell, start, goal core.Cell) []core.Cell {
	path := []core.Cell{goal}
	for current := goal; current != start; {
		prev, ok := cameFrom[current]
		if !ok || len(path) > len(cameFrom)+1 {
			break
		}
		path = append(path, prev)
		current = prev
	}
	slices.Reverse(path)
	return path
}

// cellsToRoute maps cells to their centers and pins the ends to the exact
// requested coordinates.
func cellsToRoute(g *grid.Grid, cells []core.Cell, start, end core.Point) core.Route {
	if len(cells) < 2 {
		return core.Route{start, end}
	}
	route := make(core.Route, len(cells))
	for i, c := range cells {
		route[i] = g.CellToPoint(c.Row, c.Col)
	}
	route[0] = start
	route[len(route)-1] = end
	return route
}
