package importer

import (
	"encoding/json"
	"fmt"

	"umlroute/diagram"
)

// JSONImporter reads JSON scene files. Keys match the YAML format.
type JSONImporter struct{}

// NewJSONImporter creates a JSON importer.
func NewJSONImporter() *JSONImporter {
	return &JSONImporter{}
}

// Decode unmarshals a JSON scene.
func (JSONImporter) Decode(content []byte) (*diagram.Diagram, error) {
	var d diagram.Diagram
	if err := json.Unmarshal(content, &d); err != nil {
		return nil, fmt.Errorf("importer: unmarshal json: %w", err)
	}
	return &d, nil
}

func (JSONImporter) FormatName() string { return "json" }

func (JSONImporter) FileExtensions() []string { return []string{".json"} }
