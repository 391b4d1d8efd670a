package diagram

import (
	"fmt"
	"math"
	"strings"

	"umlroute/core"
	"umlroute/geometry"
)

// AnchorStrategy chooses where a connector leaves and enters its boxes.
type AnchorStrategy int

const (
	// AnchorClosestCorners joins the closest pair of box corners, each snapped
	// onto its box edge.
	AnchorClosestCorners AnchorStrategy = iota
	// AnchorFacingSides joins the midpoints of the sides that face each other.
	AnchorFacingSides
)

func (a AnchorStrategy) String() string {
	switch a {
	case AnchorClosestCorners:
		return "corners"
	case AnchorFacingSides:
		return "sides"
	default:
		return "unknown"
	}
}

// ParseAnchorStrategy accepts "corners" or "sides".
func ParseAnchorStrategy(s string) (AnchorStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "corners":
		return AnchorClosestCorners, nil
	case "sides":
		return AnchorFacingSides, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAnchors, s)
	}
}

// Anchors returns the start and end points of a connector from box a to box b.
func (a AnchorStrategy) Anchors(from, to core.Rect) (start, end core.Point) {
	if a == AnchorFacingSides {
		fromSide, toSide := FacingSides(from, to)
		return SideMidpoint(from, fromSide), SideMidpoint(to, toSide)
	}
	start, end = ClosestCorners(from, to)
	return SnapToNearestEdge(start, from), SnapToNearestEdge(end, to)
}

// ClosestCorners returns the pair of corners, one from each rectangle, with
// the smallest distance. Ties go to the first pair in Corners order.
func ClosestCorners(a, b core.Rect) (core.Point, core.Point) {
	best := math.Inf(1)
	var pa, pb core.Point
	for _, ca := range a.Corners() {
		for _, cb := range b.Corners() {
			if d := geometry.Distance(ca, cb); d < best {
				best, pa, pb = d, ca, cb
			}
		}
	}
	return pa, pb
}

// SnapToNearestEdge moves p onto the closest edge of r, clamped to that
// edge's extent. On ties left wins over right, right over top, top over bottom.
func SnapToNearestEdge(p core.Point, r core.Rect) core.Point {
	clampX := math.Min(math.Max(r.Left, p.X), r.Right)
	clampY := math.Min(math.Max(r.Top, p.Y), r.Bottom)

	left := math.Abs(p.X - r.Left)
	right := math.Abs(p.X - r.Right)
	top := math.Abs(p.Y - r.Top)
	bottom := math.Abs(p.Y - r.Bottom)
	nearest := math.Min(math.Min(left, right), math.Min(top, bottom))

	switch nearest {
	case left:
		return core.Point{X: r.Left, Y: clampY}
	case right:
		return core.Point{X: r.Right, Y: clampY}
	case top:
		return core.Point{X: clampX, Y: r.Top}
	default:
		return core.Point{X: clampX, Y: r.Bottom}
	}
}

// FacingSides picks the side of from that faces to, and the side of to that
// faces from, using the offset between the top-left corners. Horizontal
// offsets win only when strictly larger than vertical ones.
func FacingSides(from, to core.Rect) (core.Side, core.Side) {
	side := orientation(from, to)
	return side, side.Opposite()
}

func orientation(from, to core.Rect) core.Side {
	dx := to.Left - from.Left
	dy := to.Top - from.Top
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return core.Right
		}
		return core.Left
	}
	if dy > 0 {
		return core.Bottom
	}
	return core.Top
}

// SideMidpoint returns the midpoint of one side of r.
func SideMidpoint(r core.Rect, s core.Side) core.Point {
	c := r.Center()
	switch s {
	case core.Left:
		return core.Point{X: r.Left, Y: c.Y}
	case core.Right:
		return core.Point{X: r.Right, Y: c.Y}
	case core.Top:
		return core.Point{X: c.X, Y: r.Top}
	case core.Bottom:
		return core.Point{X: c.X, Y: r.Bottom}
	default:
		return c
	}
}
