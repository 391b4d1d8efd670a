package render

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umlroute/diagram"
)

// routedPair routes A to B across a 100x40 canvas at 10 units per cell.
func routedPair(t *testing.T) *diagram.Result {
	t.Helper()
	d := &diagram.Diagram{
		Canvas:   diagram.Canvas{Width: 100, Height: 40},
		CellSize: 10,
		Classes: []diagram.Class{
			{Name: "A", X: 10, Y: 10, Width: 20, Height: 10},
			{Name: "B", X: 70, Y: 10, Width: 20, Height: 10},
		},
		Relationships: []diagram.Relationship{{Source: "A", Target: "B"}},
	}
	res, err := diagram.NewConnectorRouter().Route(context.Background(), d)
	require.NoError(t, err)
	return res
}

func TestNewFrame(t *testing.T) {
	f := NewFrame(routedPair(t))

	want := strings.Join([]string{
		"+++++.+++++",
		"+##o***o##+",
		"+###+.+###+",
		"+++++.+++++",
		"...........",
	}, "\n") + "\n"
	assert.Equal(t, want, f.String())
	assert.Equal(t, 5, f.Rows())
	assert.Equal(t, 11, f.Cols())
	assert.Equal(t, "1 connectors, 0 skipped, 0 crossings", f.Title)
}

func TestFrame_At(t *testing.T) {
	f := NewFrame(routedPair(t))

	assert.Equal(t, GlyphAnchor, f.At(1, 3))
	assert.Equal(t, GlyphRoute, f.At(1, 5))
	assert.Equal(t, GlyphBox, f.At(2, 2))
	assert.Equal(t, GlyphMargin, f.At(0, 0))
	assert.Equal(t, GlyphFree, f.At(4, 4))
	assert.Equal(t, ' ', f.At(-1, 0))
	assert.Equal(t, ' ', f.At(0, 11))
}

func TestFrame_Crossings(t *testing.T) {
	d := &diagram.Diagram{
		Canvas:   diagram.Canvas{Width: 200, Height: 200},
		CellSize: 10,
		Classes: []diagram.Class{
			{Name: "NW", X: 20, Y: 20, Width: 20, Height: 20},
			{Name: "SE", X: 160, Y: 160, Width: 20, Height: 20},
			{Name: "NE", X: 160, Y: 20, Width: 20, Height: 20},
			{Name: "SW", X: 20, Y: 160, Width: 20, Height: 20},
		},
		Relationships: []diagram.Relationship{
			{Source: "NW", Target: "SE"},
			{Source: "NE", Target: "SW"},
		},
	}
	res, err := diagram.NewConnectorRouter().Route(context.Background(), d)
	require.NoError(t, err)
	require.Len(t, res.Crossings, 1)

	f := NewFrame(res)
	assert.Equal(t, GlyphCrossing, f.At(10, 10))
	assert.Equal(t, "2 connectors, 0 skipped, 1 crossings", f.Title)
}

func TestNewFrame_Empty(t *testing.T) {
	f := NewFrame(nil)
	assert.Zero(t, f.Rows())
	assert.Zero(t, f.Cols())
	assert.Empty(t, f.String())
	assert.Equal(t, ' ', f.At(0, 0))
}

func TestText(t *testing.T) {
	res := routedPair(t)
	res.Skipped = []diagram.Relationship{{Source: "X", Target: "A"}}

	out := Text(res)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "canvas 100x40, cell 10", lines[0])
	assert.Equal(t, "A -association-> B [shortcut] (30,10) -> (70,10)", lines[1])
	assert.Equal(t, "skipped X -association-> A", lines[2])
	assert.Equal(t, "+++++.+++++", lines[3])
	assert.True(t, strings.HasSuffix(out, "...........\n"))

	assert.Empty(t, Text(nil))
	assert.Contains(t, Legend(), "# class box")
}
