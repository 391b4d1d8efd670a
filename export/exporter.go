// Package export writes routed diagrams out as documents.
package export

import (
	"errors"
	"fmt"
	"strings"

	"umlroute/diagram"
)

// ErrUnknownFormat is returned for an export format with no exporter.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format represents an export format.
type Format string

const (
	// FormatText is the debug dump with the grid frame.
	FormatText Format = "text"
	// FormatJSON is a document of connector routes.
	FormatJSON Format = "json"
	// FormatYAML is the JSON document in YAML.
	FormatYAML Format = "yaml"
)

// Exporter converts a routed diagram to one format.
type Exporter interface {
	Export(res *diagram.Result) (string, error)
	FileExtension() string
}

// NewExporter creates an exporter for the specified format.
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatText:
		return NewTextExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatYAML:
		return NewYAMLExporter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt", "ascii":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}
}

// Formats returns every available export format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}
