package diagram

import "errors"

var (
	// ErrUnknownClass indicates a relationship naming a class that is not in the diagram.
	ErrUnknownClass = errors.New("diagram: unknown class")

	// ErrUnknownKind indicates an unrecognized relationship kind.
	ErrUnknownKind = errors.New("diagram: unknown relationship kind")

	// ErrEmptyClassName indicates a class without a name.
	ErrEmptyClassName = errors.New("diagram: class name is empty")

	// ErrDuplicateClass indicates two classes sharing a name.
	ErrDuplicateClass = errors.New("diagram: duplicate class name")

	// ErrInvalidClassSize indicates a negative class width or height.
	ErrInvalidClassSize = errors.New("diagram: class size must be non-negative")

	// ErrUnknownAnchors indicates an unrecognized anchor strategy name.
	ErrUnknownAnchors = errors.New("diagram: unknown anchor strategy")

	// ErrNilDiagram is returned when routing a nil diagram.
	ErrNilDiagram = errors.New("diagram: diagram is nil")
)
