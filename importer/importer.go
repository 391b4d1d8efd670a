// Package importer reads diagram descriptions from scene files.
package importer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"umlroute/diagram"
	"umlroute/layout"
)

// Importer decodes one scene file format.
type Importer interface {
	// Decode converts raw content into a diagram without laying it out.
	Decode(content []byte) (*diagram.Diagram, error)

	// FormatName returns the name the format is selected by.
	FormatName() string

	// FileExtensions returns the extensions, with the dot, of files in this format.
	FileExtensions() []string
}

// Registry manages the available importers.
type Registry struct {
	importers []Importer
}

// NewRegistry creates a registry holding the YAML and JSON importers.
func NewRegistry() *Registry {
	return &Registry{
		importers: []Importer{
			NewYAMLImporter(),
			NewJSONImporter(),
		},
	}
}

// Register adds an importer. Later registrations do not shadow earlier ones.
func (r *Registry) Register(imp Importer) {
	r.importers = append(r.importers, imp)
}

// ForFormat returns the importer for a format name, case-insensitively.
func (r *Registry) ForFormat(format string) (Importer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	for _, imp := range r.importers {
		if strings.ToLower(imp.FormatName()) == format {
			return imp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// ForPath returns the importer for a file by its extension.
func (r *Registry) ForPath(path string) (Importer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, imp := range r.importers {
		for _, e := range imp.FileExtensions() {
			if e == ext {
				return imp, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Formats returns the names of the registered formats.
func (r *Registry) Formats() []string {
	names := make([]string, len(r.importers))
	for i, imp := range r.importers {
		names[i] = imp.FormatName()
	}
	return names
}

// Import decodes content in the named format, applies the layout the scene
// asks for and validates the result.
func (r *Registry) Import(content []byte, format string) (*diagram.Diagram, error) {
	imp, err := r.ForFormat(format)
	if err != nil {
		return nil, err
	}
	return load(imp, content)
}

// ImportFile reads a scene file, picking the importer from its extension.
func (r *Registry) ImportFile(path string) (*diagram.Diagram, error) {
	imp, err := r.ForPath(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("importer: %w", err)
	}
	d, err := load(imp, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func load(imp Importer, content []byte) (*diagram.Diagram, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyInput
	}
	d, err := imp.Decode(content)
	if err != nil {
		return nil, err
	}
	d, err = layout.Apply(d)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
