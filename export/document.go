package export

import (
	"umlroute/core"
	"umlroute/diagram"
)

// Point is a route point in a document.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Connector is one routed relationship in a document.
type Connector struct {
	Source   string  `json:"source" yaml:"source"`
	Target   string  `json:"target" yaml:"target"`
	Kind     string  `json:"kind" yaml:"kind"`
	Label    string  `json:"label,omitempty" yaml:"label,omitempty"`
	Strategy string  `json:"strategy" yaml:"strategy"`
	Points   []Point `json:"points" yaml:"points"`
}

// Document is the exported form of a routed diagram.
type Document struct {
	Width      float64     `json:"width" yaml:"width"`
	Height     float64     `json:"height" yaml:"height"`
	CellSize   float64     `json:"cell_size" yaml:"cell_size"`
	Connectors []Connector `json:"connectors" yaml:"connectors"`
	Skipped    []string    `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Crossings  []Point     `json:"crossings,omitempty" yaml:"crossings,omitempty"`
}

// NewDocument converts a routing result.
func NewDocument(res *diagram.Result) Document {
	doc := Document{
		Width:      res.Width,
		Height:     res.Height,
		CellSize:   res.CellSize,
		Connectors: make([]Connector, 0, len(res.Connectors)),
		Crossings:  points(res.Crossings),
	}
	for _, c := range res.Connectors {
		doc.Connectors = append(doc.Connectors, Connector{
			Source:   c.Relationship.Source,
			Target:   c.Relationship.Target,
			Kind:     string(c.Relationship.Kind),
			Label:    c.Relationship.Label,
			Strategy: c.Strategy.String(),
			Points:   points(c.Route),
		})
	}
	for _, r := range res.Skipped {
		doc.Skipped = append(doc.Skipped, r.String())
	}
	return doc
}

func points(ps []core.Point) []Point {
	if len(ps) == 0 {
		return nil
	}
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}
