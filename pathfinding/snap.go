package pathfinding

import (
	"umlroute/core"
	"umlroute/grid"
)

// MaxSnapRadius is the largest ring searched when moving a blocked endpoint.
const MaxSnapRadius = 50

// NearestFreeCell returns c when it is free, otherwise the first free cell on
// the smallest square ring around c, scanning each ring's perimeter row by
// row. When no ring up to MaxSnapRadius has a free cell, c is returned with
// ok set to false.
func NearestFreeCell(g *grid.Grid, c core.Cell) (cell core.Cell, ok bool) {
	if !g.IsCellBlocked(c.Row, c.Col) {
		return c, true
	}

	for r := 1; r <= MaxSnapRadius; r++ {
		for dr := -r; dr <= r; dr++ {
			edgeRow := dr == -r || dr == r
			for dc := -r; dc <= r; dc++ {
				if !edgeRow && dc != -r && dc != r {
					continue
				}
				candidate := c.Offset(dr, dc)
				if !g.IsCellBlocked(candidate.Row, candidate.Col) {
					return candidate, true
				}
			}
		}
	}
	return c, false
}
