package pathfinding

import "umlroute/core"

// ManhattanRoute returns the L-shaped route start → (end.X, start.Y) → end,
// horizontal leg first. A corner that coincides with an endpoint is left out.
func ManhattanRoute(start, end core.Point) core.Route {
	corner := core.Point{X: end.X, Y: start.Y}
	if corner == start || corner == end {
		return core.Route{start, end}
	}
	return core.Route{start, corner, end}
}
