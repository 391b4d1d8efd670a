package export

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"umlroute/diagram"
)

// YAMLExporter exports routed diagrams to YAML format.
type YAMLExporter struct{}

// NewYAMLExporter creates a new YAML exporter.
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Export converts a routed diagram to YAML with two-space indentation.
func (e *YAMLExporter) Export(res *diagram.Result) (string, error) {
	if res == nil {
		return "", diagram.ErrNilDiagram
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(res)); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *YAMLExporter) FileExtension() string { return ".yaml" }
