package importer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"umlroute/diagram"
)

// YAMLImporter reads YAML scene files.
type YAMLImporter struct{}

// NewYAMLImporter creates a YAML importer.
func NewYAMLImporter() *YAMLImporter {
	return &YAMLImporter{}
}

// Decode unmarshals a YAML scene.
func (YAMLImporter) Decode(content []byte) (*diagram.Diagram, error) {
	var d diagram.Diagram
	if err := yaml.Unmarshal(content, &d); err != nil {
		return nil, fmt.Errorf("importer: unmarshal yaml: %w", err)
	}
	return &d, nil
}

func (YAMLImporter) FormatName() string { return "yaml" }

func (YAMLImporter) FileExtensions() []string { return []string{".yaml", ".yml"} }
