package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"umlroute/core"
)

func TestClosestCorners(t *testing.T) {
	a := core.RectFromSize(0, 0, 10, 10)

	tests := []struct {
		name   string
		b      core.Rect
		pa, pb core.Point
	}{
		{"right, tie goes to the top corners", core.RectFromSize(20, 0, 10, 10), core.Point{X: 10, Y: 0}, core.Point{X: 20, Y: 0}},
		{"below right", core.RectFromSize(30, 30, 10, 10), core.Point{X: 10, Y: 10}, core.Point{X: 30, Y: 30}},
		{"above left", core.RectFromSize(-40, -30, 10, 10), core.Point{X: 0, Y: 0}, core.Point{X: -30, Y: -20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pa, pb := ClosestCorners(a, tt.b)
			assert.Equal(t, tt.pa, pa)
			assert.Equal(t, tt.pb, pb)
		})
	}
}

func TestSnapToNearestEdge(t *testing.T) {
	r := core.RectFromSize(0, 0, 100, 50)

	tests := []struct {
		name string
		p    core.Point
		want core.Point
	}{
		{"near left", core.Point{X: 10, Y: 25}, core.Point{X: 0, Y: 25}},
		{"near right", core.Point{X: 95, Y: 10}, core.Point{X: 100, Y: 10}},
		{"near top", core.Point{X: 50, Y: 2}, core.Point{X: 50, Y: 0}},
		{"near bottom", core.Point{X: 50, Y: 48}, core.Point{X: 50, Y: 50}},
		{"outside is clamped", core.Point{X: 150, Y: -20}, core.Point{X: 100, Y: 0}},
		{"corner stays", core.Point{X: 0, Y: 0}, core.Point{X: 0, Y: 0}},
		{"left beats top on a tie", core.Point{X: 5, Y: 5}, core.Point{X: 0, Y: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SnapToNearestEdge(tt.p, r))
		})
	}
}

func TestFacingSides(t *testing.T) {
	a := core.RectFromSize(100, 100, 40, 20)

	tests := []struct {
		name     string
		b        core.Rect
		from, to core.Side
	}{
		{"right", core.RectFromSize(300, 120, 40, 20), core.Right, core.Left},
		{"left", core.RectFromSize(0, 90, 40, 20), core.Left, core.Right},
		{"below", core.RectFromSize(110, 300, 40, 20), core.Bottom, core.Top},
		{"above", core.RectFromSize(90, 0, 40, 20), core.Top, core.Bottom},
		{"diagonal tie is vertical", core.RectFromSize(200, 200, 40, 20), core.Bottom, core.Top},
		{"coincident", a, core.Top, core.Bottom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := FacingSides(a, tt.b)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestSideMidpoint(t *testing.T) {
	r := core.RectFromSize(10, 20, 40, 20)

	assert.Equal(t, core.Point{X: 10, Y: 30}, SideMidpoint(r, core.Left))
	assert.Equal(t, core.Point{X: 50, Y: 30}, SideMidpoint(r, core.Right))
	assert.Equal(t, core.Point{X: 30, Y: 20}, SideMidpoint(r, core.Top))
	assert.Equal(t, core.Point{X: 30, Y: 40}, SideMidpoint(r, core.Bottom))
	assert.Equal(t, core.Point{X: 30, Y: 30}, SideMidpoint(r, core.Side(9)))
}

func TestAnchorStrategy_Anchors(t *testing.T) {
	a := core.RectFromSize(0, 0, 40, 20)
	b := core.RectFromSize(100, 0, 40, 20)

	start, end := AnchorFacingSides.Anchors(a, b)
	assert.Equal(t, core.Point{X: 40, Y: 10}, start)
	assert.Equal(t, core.Point{X: 100, Y: 10}, end)

	start, end = AnchorClosestCorners.Anchors(a, b)
	assert.Equal(t, core.Point{X: 40, Y: 0}, start)
	assert.Equal(t, core.Point{X: 100, Y: 0}, end)

	assert.Equal(t, "corners", AnchorClosestCorners.String())
	assert.Equal(t, "sides", AnchorFacingSides.String())
}

func TestParseAnchorStrategy(t *testing.T) {
	for in, want := range map[string]AnchorStrategy{
		"":        AnchorClosestCorners,
		"corners": AnchorClosestCorners,
		" Sides":  AnchorFacingSides,
	} {
		got, err := ParseAnchorStrategy(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAnchorStrategy("centers")
	assert.ErrorIs(t, err, ErrUnknownAnchors)
}
