// Package diagram describes class diagrams and routes the connectors between
// their class boxes.
package diagram

import (
	"fmt"
	"strings"

	"umlroute/core"
)

// Class is a positioned class box.
type Class struct {
	Name   string  `json:"name" yaml:"name"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Bounds returns the box as a rectangle.
func (c Class) Bounds() core.Rect {
	return core.RectFromSize(c.X, c.Y, c.Width, c.Height)
}

// Obstacle returns the box as an obstacle tagged with the class name.
func (c Class) Obstacle() core.Obstacle {
	return core.Obstacle{Bounds: c.Bounds(), ID: c.Name}
}

// RelationshipKind is the UML relationship a connector stands for.
type RelationshipKind string

// Relationship kinds. The empty kind is read as an association.
const (
	Association RelationshipKind = "association"
	Inheritance RelationshipKind = "inheritance"
	Interface   RelationshipKind = "interface"
	Composition RelationshipKind = "composition"
)

// ParseRelationshipKind accepts the kind names case-insensitively, plus the
// aliases "extends", "implements" and "realization".
func ParseRelationshipKind(s string) (RelationshipKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "association":
		return Association, nil
	case "inheritance", "extends":
		return Inheritance, nil
	case "interface", "implements", "realization":
		return Interface, nil
	case "composition":
		return Composition, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Relationship connects a source class to a target class.
type Relationship struct {
	Source string           `json:"source" yaml:"source"`
	Target string           `json:"target" yaml:"target"`
	Kind   RelationshipKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Label  string           `json:"label,omitempty" yaml:"label,omitempty"`
}

func (r Relationship) String() string {
	kind := r.Kind
	if kind == "" {
		kind = Association
	}
	return fmt.Sprintf("%s -%s-> %s", r.Source, kind, r.Target)
}

// Canvas is the drawing area the diagram is routed on.
type Canvas struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Diagram is a set of class boxes and the relationships between them.
type Diagram struct {
	Canvas        Canvas         `json:"canvas" yaml:"canvas"`
	CellSize      float64        `json:"cell_size,omitempty" yaml:"cell_size,omitempty"`
	Layout        string         `json:"layout,omitempty" yaml:"layout,omitempty"` // "" or "flow"
	Classes       []Class        `json:"classes" yaml:"classes"`
	Relationships []Relationship `json:"relationships" yaml:"relationships"`
}

// Class looks a class up by name.
func (d *Diagram) Class(name string) (Class, bool) {
	for _, c := range d.Classes {
		if c.Name == name {
			return c, true
		}
	}
	return Class{}, false
}

// Obstacles returns every class box as an obstacle, in declaration order.
func (d *Diagram) Obstacles() []core.Obstacle {
	out := make([]core.Obstacle, len(d.Classes))
	for i, c := range d.Classes {
		out[i] = c.Obstacle()
	}
	return out
}

// Extent returns the canvas size, or the size needed to hold every class box
// plus margin when the canvas is unset.
func (d *Diagram) Extent(margin float64) (width, height float64) {
	if d.Canvas.Width > 0 && d.Canvas.Height > 0 {
		return d.Canvas.Width, d.Canvas.Height
	}
	for _, c := range d.Classes {
		width = max(width, c.X+c.Width)
		height = max(height, c.Y+c.Height)
	}
	return width + margin, height + margin
}

// Validate checks class names and sizes and normalizes relationship kinds.
// Relationships that name unknown classes are not an error here; routing
// skips them.
func (d *Diagram) Validate() error {
	seen := make(map[string]bool, len(d.Classes))
	for i, c := range d.Classes {
		if c.Name == "" {
			return fmt.Errorf("%w: class #%d", ErrEmptyClassName, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateClass, c.Name)
		}
		seen[c.Name] = true
		if c.Width < 0 || c.Height < 0 {
			return fmt.Errorf("%w: %s is %vx%v", ErrInvalidClassSize, c.Name, c.Width, c.Height)
		}
	}

	for i := range d.Relationships {
		kind, err := ParseRelationshipKind(string(d.Relationships[i].Kind))
		if err != nil {
			return fmt.Errorf("relationship %s: %w", d.Relationships[i], err)
		}
		d.Relationships[i].Kind = kind
	}
	return nil
}

// Clone creates a deep copy of the diagram.
func (d *Diagram) Clone() *Diagram {
	if d == nil {
		return nil
	}
	clone := *d
	clone.Classes = make([]Class, len(d.Classes))
	copy(clone.Classes, d.Classes)
	clone.Relationships = make([]Relationship, len(d.Relationships))
	copy(clone.Relationships, d.Relationships)
	return &clone
}
