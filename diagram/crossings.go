package diagram

import (
	"umlroute/core"
	"umlroute/geometry"
)

// Crossings returns the points where routes of different connectors cross.
// Points on a route's own endpoints are not counted, since connectors that
// share a class often share an anchor.
func Crossings(connectors []Connector) []core.Point {
	var out []core.Point
	for i := 0; i < len(connectors); i++ {
		for j := i + 1; j < len(connectors); j++ {
			a, b := connectors[i].Route, connectors[j].Route
			for s := 0; s+1 < len(a); s++ {
				for t := 0; t+1 < len(b); t++ {
					p, ok := geometry.IntersectionPoint(a[s], a[s+1], b[t], b[t+1])
					if !ok || atEndpoint(p, a) || atEndpoint(p, b) {
						continue
					}
					// A crossing on a bend was already found on the previous segment.
					if (s > 0 && near(p, a[s])) || (t > 0 && near(p, b[t])) {
						continue
					}
					out = append(out, p)
				}
			}
		}
	}
	return out
}

func atEndpoint(p core.Point, r core.Route) bool {
	return near(p, r.First()) || near(p, r.Last())
}

func near(a, b core.Point) bool {
	return geometry.Distance(a, b) < geometry.Epsilon
}
