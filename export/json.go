package export

import (
	"encoding/json"

	"umlroute/diagram"
)

// JSONExporter exports routed diagrams to JSON format.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a routed diagram to indented JSON.
func (e *JSONExporter) Export(res *diagram.Result) (string, error) {
	if res == nil {
		return "", diagram.ErrNilDiagram
	}
	data, err := json.MarshalIndent(NewDocument(res), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func (e *JSONExporter) FileExtension() string { return ".json" }
