package pathfinding

import (
	"errors"

	"umlroute/grid"
)

var (
	// ErrEmptyQueue is returned by Dequeue and Peek on an empty PriorityQueue.
	ErrEmptyQueue = errors.New("pathfinding: priority queue is empty")

	// ErrInvalidCellSize is returned when the requested cell size is not positive.
	ErrInvalidCellSize = grid.ErrInvalidCellSize

	// ErrInvalidDimensions is returned for a negative or NaN canvas size.
	ErrInvalidDimensions = grid.ErrInvalidDimensions

	// ErrInvalidObstacle is returned for an obstacle with a NaN bound.
	ErrInvalidObstacle = errors.New("pathfinding: obstacle bounds must not be NaN")
)
