// Package render draws routed diagrams at grid resolution, as text for debug
// dumps and on a terminal screen.
package render

import (
	"fmt"
	"math"
	"strings"

	"umlroute/core"
	"umlroute/diagram"
	"umlroute/grid"
)

// Glyphs used by a Frame.
const (
	GlyphFree     = '.'
	GlyphMargin   = '+' // blocked only by the buffer ring or the margin
	GlyphBox      = '#'
	GlyphRoute    = '*'
	GlyphAnchor   = 'o'
	GlyphCrossing = 'x'
)

// Frame is a character map of the routing grid with the routes drawn over
// it, one rune per cell.
type Frame struct {
	Title string
	cells [][]rune
}

// NewFrame draws a routed diagram. Boxes, the cells blocked around them,
// routes, anchors and crossings are layered in that order.
func NewFrame(res *diagram.Result) *Frame {
	f := &Frame{}
	if res == nil || res.Snapshot == nil {
		return f
	}
	f.Title = fmt.Sprintf("%d connectors, %d skipped, %d crossings",
		len(res.Connectors), len(res.Skipped), len(res.Crossings))

	buffered := res.Snapshot.Grid()
	bare := res.Snapshot.UnbufferedGrid()
	f.cells = make([][]rune, buffered.Rows())
	for row := range f.cells {
		f.cells[row] = make([]rune, buffered.Cols())
		for col := range f.cells[row] {
			switch {
			case bare.IsCellBlocked(row, col):
				f.cells[row][col] = GlyphBox
			case buffered.IsCellBlocked(row, col):
				f.cells[row][col] = GlyphMargin
			default:
				f.cells[row][col] = GlyphFree
			}
		}
	}

	for _, c := range res.Connectors {
		for i := 0; i+1 < len(c.Route); i++ {
			f.line(buffered, c.Route[i], c.Route[i+1])
		}
	}
	for _, c := range res.Connectors {
		f.plot(buffered, c.Start, GlyphAnchor)
		f.plot(buffered, c.End, GlyphAnchor)
	}
	for _, p := range res.Crossings {
		f.plot(buffered, p, GlyphCrossing)
	}
	return f
}

// line marks every cell a segment passes through, sampling at a quarter
// of a cell.
func (f *Frame) line(g *grid.Grid, a, b core.Point) {
	step := g.CellSize() / 4
	n := int(math.Ceil(max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)) / step))
	for i := 0; i <= n; i++ {
		t := 1.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		f.plot(g, core.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}, GlyphRoute)
	}
}

func (f *Frame) plot(g *grid.Grid, p core.Point, glyph rune) {
	c := g.PointToCell(p)
	if g.InBounds(c.Row, c.Col) {
		f.cells[c.Row][c.Col] = glyph
	}
}

// Rows returns the number of cell rows.
func (f *Frame) Rows() int { return len(f.cells) }

// Cols returns the number of cell columns.
func (f *Frame) Cols() int {
	if len(f.cells) == 0 {
		return 0
	}
	return len(f.cells[0])
}

// At returns the glyph of a cell, or a space outside the frame.
func (f *Frame) At(row, col int) rune {
	if row < 0 || row >= f.Rows() || col < 0 || col >= f.Cols() {
		return ' '
	}
	return f.cells[row][col]
}

// String returns the frame one line per row.
func (f *Frame) String() string {
	var b strings.Builder
	for _, row := range f.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend explains the glyphs.
func Legend() string {
	return strings.Join([]string{
		"  # class box",
		"  + buffer and margin",
		"  * route",
		"  o anchor",
		"  x crossing",
	}, "\n")
}
