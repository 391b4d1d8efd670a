package render

import (
	"fmt"
	"strings"

	"umlroute/diagram"
)

// Text returns a debug dump of a routed diagram: the canvas, one line per
// connector with its strategy and points, the skipped relationships and the
// grid frame.
func Text(res *diagram.Result) string {
	if res == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "canvas %gx%g, cell %g\n", res.Width, res.Height, res.CellSize)
	for _, c := range res.Connectors {
		fmt.Fprintf(&b, "%s [%s] %s\n", c.Relationship, c.Strategy, c.Route)
	}
	for _, r := range res.Skipped {
		fmt.Fprintf(&b, "skipped %s\n", r)
	}
	for _, p := range res.Crossings {
		fmt.Fprintf(&b, "crossing %s\n", p)
	}
	b.WriteString(NewFrame(res).String())
	return b.String()
}
