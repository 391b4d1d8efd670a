// Package geometry provides stateless helpers for segments, rectangles and points
// in continuous canvas space.
package geometry

import (
	"math"

	"umlroute/core"
)

// Epsilon is the tolerance used for collinearity and axis alignment checks.
const Epsilon = 1e-6

// parallelEpsilon is the determinant magnitude under which two lines are
// treated as parallel.
const parallelEpsilon = 1e-9

// Distance returns the Euclidean distance between two points.
func Distance(a, b core.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// IsHorizontal reports whether the segment a-b has no vertical extent.
func IsHorizontal(a, b core.Point) bool {
	return math.Abs(a.Y-b.Y) < Epsilon
}

// IsVertical reports whether the segment a-b has no horizontal extent.
func IsVertical(a, b core.Point) bool {
	return math.Abs(a.X-b.X) < Epsilon
}

// IsAxisAligned reports whether the segment a-b is horizontal or vertical.
func IsAxisAligned(a, b core.Point) bool {
	return IsHorizontal(a, b) || IsVertical(a, b)
}

// Cross returns the z component of (b-a) x (c-a).
func Cross(a, b, c core.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// Collinear reports whether three points lie on one line.
func Collinear(a, b, c core.Point) bool {
	return math.Abs(Cross(a, b, c)) < Epsilon
}
