package export

import (
	"umlroute/diagram"
	"umlroute/render"
)

// TextExporter exports the debug dump of a routed diagram.
type TextExporter struct{}

// NewTextExporter creates a new text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

func (e *TextExporter) Export(res *diagram.Result) (string, error) {
	if res == nil {
		return "", diagram.ErrNilDiagram
	}
	return render.Text(res), nil
}

func (e *TextExporter) FileExtension() string { return ".txt" }
