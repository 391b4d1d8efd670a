package pathfinding

import (
	"slices"

	"umlroute/core"
	"umlroute/geometry"
)

// Simplify removes redundant points from a route without moving its ends.
// Repeated points and interior points collinear with their neighbours are
// dropped first, then single orthogonal jogs are collapsed.
func Simplify(route core.Route) core.Route {
	return CollapseJogs(RemoveCollinear(dedupe(route)))
}

// dedupe drops interior points equal to the point before them.
func dedupe(route core.Route) core.Route {
	if len(route) < 3 {
		return slices.Clone(route)
	}
	out := core.Route{route[0]}
	for _, p := range route[1 : len(route)-1] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return append(out, route[len(route)-1])
}

// RemoveCollinear drops every interior point that is collinear with its
// immediate neighbours in the input.
func RemoveCollinear(route core.Route) core.Route {
	if len(route) < 3 {
		return slices.Clone(route)
	}
	out := core.Route{route[0]}
	for i := 1; i < len(route)-1; i++ {
		if !geometry.Collinear(route[i-1], route[i], route[i+1]) {
			out = append(out, route[i])
		}
	}
	return append(out, route[len(route)-1])
}

// CollapseJogs looks at every window of four consecutive points. When the
// three segments are axis-aligned and alternate horizontal, vertical,
// horizontal (or the reverse), the two middle points are removed and the same
// window position is examined again.
func CollapseJogs(route core.Route) core.Route {
	out := slices.Clone(route)
	for i := 0; i+3 < len(out); {
		if isJog(out[i], out[i+1], out[i+2], out[i+3]) {
			out = slices.Delete(out, i+1, i+3)
			continue
		}
		i++
	}
	return out
}

func isJog(a, b, c, d core.Point) bool {
	if !geometry.IsAxisAligned(a, b) || !geometry.IsAxisAligned(b, c) || !geometry.IsAxisAligned(c, d) {
		return false
	}
	h1, h2, h3 := geometry.IsHorizontal(a, b), geometry.IsHorizontal(b, c), geometry.IsHorizontal(c, d)
	return (h1 && !h2 && h3) || (!h1 && h2 && !h3)
}
