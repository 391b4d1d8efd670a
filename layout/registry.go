package layout

import (
	"errors"
	"fmt"
	"strings"

	"umlroute/diagram"
)

// ErrUnknownLayout is returned for a layout name with no engine.
var ErrUnknownLayout = errors.New("layout: unknown layout")

// ForName returns the engine for a scene file's layout setting. The empty
// name means the classes are already positioned and yields a nil engine.
func ForName(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "fixed":
		return nil, nil
	case "flow":
		return NewFlowLayout(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

// Apply lays d out with the engine its Layout field names and returns d
// unchanged when it names none.
func Apply(d *diagram.Diagram) (*diagram.Diagram, error) {
	if d == nil {
		return nil, diagram.ErrNilDiagram
	}
	engine, err := ForName(d.Layout)
	if err != nil {
		return nil, err
	}
	if engine == nil {
		return d, nil
	}
	return engine.Layout(d)
}
