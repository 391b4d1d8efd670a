package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umlroute/diagram"
	"umlroute/layout"
)

const sceneYAML = `
canvas: {width: 400, height: 300}
cell_size: 10
classes:
  - {name: Order, x: 10, y: 10, width: 80, height: 60}
  - {name: Customer, x: 200, y: 10, width: 80, height: 60}
relationships:
  - {source: Order, target: Customer, kind: association, label: placed by}
  - {source: Customer, target: Order, kind: Extends}
`

const sceneJSON = `{
  "canvas": {"width": 400, "height": 300},
  "cell_size": 10,
  "classes": [
    {"name": "Order", "x": 10, "y": 10, "width": 80, "height": 60},
    {"name": "Customer", "x": 200, "y": 10, "width": 80, "height": 60}
  ],
  "relationships": [
    {"source": "Order", "target": "Customer", "kind": "association", "label": "placed by"},
    {"source": "Customer", "target": "Order", "kind": "Extends"}
  ]
}`

func wantScene() *diagram.Diagram {
	return &diagram.Diagram{
		Canvas:   diagram.Canvas{Width: 400, Height: 300},
		CellSize: 10,
		Classes: []diagram.Class{
			{Name: "Order", X: 10, Y: 10, Width: 80, Height: 60},
			{Name: "Customer", X: 200, Y: 10, Width: 80, Height: 60},
		},
		Relationships: []diagram.Relationship{
			{Source: "Order", Target: "Customer", Kind: diagram.Association, Label: "placed by"},
			{Source: "Customer", Target: "Order", Kind: diagram.Inheritance},
		},
	}
}

func TestRegistry_Import(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		format  string
		content string
	}{
		{"yaml", sceneYAML},
		{"JSON", sceneJSON},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			d, err := r.Import([]byte(tt.content), tt.format)
			require.NoError(t, err)
			assert.Equal(t, wantScene(), d)
		})
	}
}

func TestRegistry_ImportErrors(t *testing.T) {
	r := NewRegistry()

	_, err := r.Import([]byte(sceneYAML), "plantuml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = r.Import([]byte("  \n"), "yaml")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = r.Import([]byte("classes: [unclosed"), "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "importer: unmarshal yaml")

	_, err = r.Import([]byte(`{"classes": 3}`), "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "importer: unmarshal json")

	_, err = r.Import([]byte("classes: [{name: A}, {name: A}]"), "yaml")
	assert.ErrorIs(t, err, diagram.ErrDuplicateClass)

	_, err = r.Import([]byte("layout: radial\nclasses: [{name: A}]"), "yaml")
	assert.ErrorIs(t, err, layout.ErrUnknownLayout)
}

func TestRegistry_FlowLayout(t *testing.T) {
	content := `
layout: flow
classes:
  - {name: A, width: 100, height: 40}
  - {name: B, width: 100, height: 40}
relationships:
  - {source: A, target: B}
`
	d, err := NewRegistry().Import([]byte(content), "yaml")
	require.NoError(t, err)

	assert.Equal(t, diagram.Canvas{Width: 1600, Height: 640}, d.Canvas)
	assert.Equal(t, 50.0, d.Classes[0].X)
	assert.Equal(t, 204.0, d.Classes[1].X)
	assert.Equal(t, diagram.Association, d.Relationships[0].Kind)
}

func TestRegistry_ForPath(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		path   string
		format string
	}{
		{"scene.yaml", "yaml"},
		{"dir/scene.YML", "yaml"},
		{"scene.json", "json"},
	}
	for _, tt := range tests {
		imp, err := r.ForPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.format, imp.FormatName(), tt.path)
	}

	_, err := r.ForPath("scene.toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	assert.Equal(t, []string{"yaml", "json"}, r.Formats())
}

type stubImporter struct{}

func (stubImporter) Decode([]byte) (*diagram.Diagram, error) {
	return &diagram.Diagram{Classes: []diagram.Class{{Name: "Stub"}}}, nil
}
func (stubImporter) FormatName() string       { return "stub" }
func (stubImporter) FileExtensions() []string { return []string{".stub"} }

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register(stubImporter{})

	d, err := r.Import([]byte("anything"), "stub")
	require.NoError(t, err)
	assert.Equal(t, "Stub", d.Classes[0].Name)
}

func TestRegistry_ImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYAML), 0o644))

	d, err := NewRegistry().ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, wantScene(), d)

	_, err = NewRegistry().ImportFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"classes": [{"name": ""}]}`), 0o644))
	_, err = NewRegistry().ImportFile(bad)
	assert.ErrorIs(t, err, diagram.ErrEmptyClassName)
	assert.Contains(t, err.Error(), "bad.json")
}
