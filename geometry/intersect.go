package geometry

import (
	"math"

	"umlroute/core"
)

// Segment is a straight line between two points.
type Segment struct {
	Start, End core.Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

// Bounds returns the axis-aligned bounding box of the segment.
func (s Segment) Bounds() core.Rect {
	return core.Rect{
		Left:   math.Min(s.Start.X, s.End.X),
		Top:    math.Min(s.Start.Y, s.End.Y),
		Right:  math.Max(s.Start.X, s.End.X),
		Bottom: math.Max(s.Start.Y, s.End.Y),
	}
}

// PointOnSegmentBounds reports whether (x, y) lies inside the bounding box of
// seg. It only validates an intersection point that is already known to be on
// the segment's line; it is not a general point-on-segment test.
func PointOnSegmentBounds(seg Segment, x, y float64) bool {
	return x >= math.Min(seg.Start.X, seg.End.X) && x <= math.Max(seg.Start.X, seg.End.X) &&
		y >= math.Min(seg.Start.Y, seg.End.Y) && y <= math.Max(seg.Start.Y, seg.End.Y)
}

// SegmentsIntersect reports whether segment a1-a2 crosses segment b1-b2.
//
// The 2x2 system a1 + t(a2-a1) = b1 + u(b2-b1) is solved for t and u; the
// segments intersect when both parameters lie in [0,1]. Parallel segments,
// including collinear overlapping ones, are reported as not intersecting.
func SegmentsIntersect(a1, a2, b1, b2 core.Point) bool {
	rx, ry := a2.X-a1.X, a2.Y-a1.Y
	sx, sy := b2.X-b1.X, b2.Y-b1.Y

	det := rx*sy - ry*sx
	if math.Abs(det) < parallelEpsilon {
		return false
	}

	qx, qy := b1.X-a1.X, b1.Y-a1.Y
	t := (qx*sy - qy*sx) / det
	u := (qx*ry - qy*rx) / det

	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// RectEdges returns the four edges of rect clockwise from the top edge.
func RectEdges(rect core.Rect) [4]Segment {
	tl := core.Point{X: rect.Left, Y: rect.Top}
	tr := core.Point{X: rect.Right, Y: rect.Top}
	br := core.Point{X: rect.Right, Y: rect.Bottom}
	bl := core.Point{X: rect.Left, Y: rect.Bottom}
	return [4]Segment{
		{Start: tl, End: tr},
		{Start: tr, End: br},
		{Start: br, End: bl},
		{Start: bl, End: tl},
	}
}

// SegmentIntersectsRectangle reports whether seg touches rect: either endpoint
// lies inside the rectangle or the segment crosses one of its edges.
func SegmentIntersectsRectangle(seg Segment, rect core.Rect) bool {
	if rect.Contains(seg.Start) || rect.Contains(seg.End) {
		return true
	}

	for _, edge := range RectEdges(rect) {
		if SegmentsIntersect(seg.Start, seg.End, edge.Start, edge.End) {
			return true
		}
	}
	return false
}

// IntersectionPoint returns the point where segments a1-a2 and b1-b2 cross.
// The crossing of the two supporting lines is computed first and then
// validated against both segments' bounding boxes.
func IntersectionPoint(a1, a2, b1, b2 core.Point) (core.Point, bool) {
	A1 := a2.Y - a1.Y
	B1 := a1.X - a2.X
	C1 := A1*a1.X + B1*a1.Y

	A2 := b2.Y - b1.Y
	B2 := b1.X - b2.X
	C2 := A2*b1.X + B2*b1.Y

	det := A1*B2 - A2*B1
	if math.Abs(det) < parallelEpsilon {
		return core.Point{}, false
	}

	x := (B2*C1 - B1*C2) / det
	y := (A1*C2 - A2*C1) / det

	// Widen by a hair so points on axis-aligned segments survive rounding.
	if !onSegmentBounds(Segment{a1, a2}, x, y) || !onSegmentBounds(Segment{b1, b2}, x, y) {
		return core.Point{}, false
	}
	return core.Point{X: x, Y: y}, true
}

func onSegmentBounds(seg Segment, x, y float64) bool {
	if PointOnSegmentBounds(seg, x, y) {
		return true
	}
	b := seg.Bounds()
	return x >= b.Left-Epsilon && x <= b.Right+Epsilon &&
		y >= b.Top-Epsilon && y <= b.Bottom+Epsilon
}
