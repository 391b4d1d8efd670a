package grid

import "errors"

var (
	// ErrInvalidCellSize indicates a cell size that is zero, negative or NaN.
	ErrInvalidCellSize = errors.New("grid: cell size must be positive")
	// ErrInvalidDimensions indicates a negative or NaN canvas width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be non-negative")
)
