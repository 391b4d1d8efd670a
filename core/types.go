// Package core contains the fundamental types shared by the umlroute packages.
package core

import (
	"fmt"
	"strings"
)

// Point represents a coordinate in continuous canvas space.
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String returns the point formatted as (x,y).
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle in canvas coordinates.
// Top is the smaller Y value; the canvas Y axis grows downwards.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromSize builds a Rect from its top-left corner and dimensions.
func RectFromSize(x, y, width, height float64) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Left + r.Right) / 2,
		Y: (r.Top + r.Bottom) / 2,
	}
}

// Corners returns the four corners in the order top-left, top-right,
// bottom-left, bottom-right.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Left, Y: r.Bottom},
		{X: r.Right, Y: r.Bottom},
	}
}

// Contains checks if a point is inside the rectangle, bounds included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right &&
		p.Y >= r.Top && p.Y <= r.Bottom
}

// Obstacle is the footprint of a diagram element that routes must avoid.
// ID optionally names the class the footprint belongs to.
type Obstacle struct {
	Bounds Rect
	ID     string
}

// Cell is a discrete grid square addressed by row and column.
type Cell struct {
	Row, Col int
}

// Offset returns the cell shifted by (dRow, dCol).
func (c Cell) Offset(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Route is an ordered polyline from a start point to an end point.
type Route []Point

// Len returns the number of points in the route.
func (r Route) Len() int {
	return len(r)
}

// First returns the first point, or the zero Point for an empty route.
func (r Route) First() Point {
	if len(r) == 0 {
		return Point{}
	}
	return r[0]
}

// Last returns the last point, or the zero Point for an empty route.
func (r Route) Last() Point {
	if len(r) == 0 {
		return Point{}
	}
	return r[len(r)-1]
}

// Waypoints returns the interior points, excluding start and end.
func (r Route) Waypoints() []Point {
	if len(r) <= 2 {
		return nil
	}
	return r[1 : len(r)-1]
}

// String converts a route to a string representation for debugging.
func (r Route) String() string {
	if len(r) == 0 {
		return "empty route"
	}
	parts := make([]string, len(r))
	for i, p := range r {
		parts[i] = p.String()
	}
	return strings.Join(parts, " -> ")
}

// Side identifies one edge of a rectangle.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// String returns the string representation of a Side.
func (s Side) String() string {
	switch s {
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Right:
		return Left
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return s
	}
}
