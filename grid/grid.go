// Package grid discretizes canvas space into square cells and tracks which
// cells are blocked by obstacles.
//
// A Grid covering a width×height canvas at cell size cs has
// ceil(height/cs)+1 rows and ceil(width/cs)+1 columns. Cells outside that
// range are always reported as blocked, which gives every search an implicit
// boundary wall.
package grid

import (
	"fmt"
	"math"
	"strings"

	"umlroute/core"
)

// Grid is a rows×cols blocked-mask over canvas space.
type Grid struct {
	rows, cols int
	cellSize   float64
	blocked    []bool // row-major
}

// New creates an all-free grid spanning a width×height canvas.
func New(width, height, cellSize float64) (*Grid, error) {
	if err := Validate(width, height, cellSize); err != nil {
		return nil, err
	}

	rows := int(math.Ceil(height/cellSize)) + 1
	cols := int(math.Ceil(width/cellSize)) + 1
	return &Grid{
		rows:     rows,
		cols:     cols,
		cellSize: cellSize,
		blocked:  make([]bool, rows*cols),
	}, nil
}

// Validate checks the arguments New would reject.
func Validate(width, height, cellSize float64) error {
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidCellSize, cellSize)
	}
	if !(width >= 0) || !(height >= 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidDimensions, width, height)
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// CellSize returns the edge length of one cell in canvas units.
func (g *Grid) CellSize() float64 { return g.cellSize }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// IsCellBlocked reports whether a cell is impassable. Out-of-range cells are
// always blocked.
func (g *Grid) IsCellBlocked(row, col int) bool {
	if !g.InBounds(row, col) {
		return true
	}
	return g.blocked[g.index(row, col)]
}

// Block marks a single cell as blocked. Out-of-range cells are ignored.
func (g *Grid) Block(row, col int) {
	if g.InBounds(row, col) {
		g.blocked[g.index(row, col)] = true
	}
}

// CellToPoint returns the canvas coordinate of the center of a cell.
func (g *Grid) CellToPoint(row, col int) core.Point {
	return core.Point{
		X: float64(col)*g.cellSize + g.cellSize/2,
		Y: float64(row)*g.cellSize + g.cellSize/2,
	}
}

// PointToCell returns the cell containing p. The result is not clamped, so
// callers must check InBounds before indexing.
func (g *Grid) PointToCell(p core.Point) core.Cell {
	return core.Cell{
		Row: int(math.Floor(p.Y / g.cellSize)),
		Col: int(math.Floor(p.X / g.cellSize)),
	}
}

// span returns the unclamped inclusive cell range of rect, rows
// floor(top/cs)..ceil(bottom/cs) and the same for columns.
func (g *Grid) span(rect core.Rect) (top, bottom, left, right int, ok bool) {
	for _, v := range [4]float64{rect.Left, rect.Top, rect.Right, rect.Bottom} {
		if math.IsNaN(v) {
			return 0, 0, 0, 0, false
		}
	}
	top = toIndex(math.Floor(rect.Top/g.cellSize), g.rows)
	bottom = toIndex(math.Ceil(rect.Bottom/g.cellSize), g.rows)
	left = toIndex(math.Floor(rect.Left/g.cellSize), g.cols)
	right = toIndex(math.Ceil(rect.Right/g.cellSize), g.cols)
	return top, bottom, left, right, true
}

// toIndex converts a cell coordinate to int after clamping it to two cells
// beyond either end of a dimension of n cells. Infinite and huge bounds
// therefore still reach the edge, and a buffer ring grown from the clamped
// value stays off the grid exactly when the real one would.
func toIndex(v float64, n int) int {
	return int(min(max(v, -2), float64(n+1)))
}

// MarkObstacles blocks every cell overlapped by an obstacle. With addBuffer
// set, the one-cell ring around each obstacle's own cell range is blocked as
// well. Obstacles with a NaN bound are ignored.
func (g *Grid) MarkObstacles(obstacles []core.Obstacle, addBuffer bool) {
	for _, obs := range obstacles {
		top, bottom, left, right, ok := g.span(obs.Bounds)
		if !ok {
			continue
		}
		if addBuffer {
			top, bottom, left, right = top-1, bottom+1, left-1, right+1
		}
		g.fill(top, bottom, left, right)
	}
}

// fill blocks the inclusive range, clamped to the grid.
func (g *Grid) fill(top, bottom, left, right int) {
	top, bottom = max(0, top), min(g.rows-1, bottom)
	left, right = max(0, left), min(g.cols-1, right)
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			g.blocked[g.index(row, col)] = true
		}
	}
}

// AddMargin dilates the whole mask: every cell within Chebyshev distance
// marginCells of a blocked cell becomes blocked. Growth is seeded only from
// the mask as it was before the call.
func (g *Grid) AddMargin(marginCells int) {
	if marginCells <= 0 {
		return
	}

	snapshot := make([]bool, len(g.blocked))
	copy(snapshot, g.blocked)

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if snapshot[g.index(row, col)] {
				g.fill(row-marginCells, row+marginCells, col-marginCells, col+marginCells)
			}
		}
	}
}

// BlockedCount returns the number of blocked in-range cells.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	blocked := make([]bool, len(g.blocked))
	copy(blocked, g.blocked)
	return &Grid{rows: g.rows, cols: g.cols, cellSize: g.cellSize, blocked: blocked}
}

// String renders the mask one row per line, '#' for blocked and '.' for free.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.blocked[g.index(row, col)] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
