package pathfinding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umlroute/core"
	"umlroute/grid"
)

func TestNearestFreeCell(t *testing.T) {
	g := parseGrid(t, `
.....
.###.
.###.
.###.
.....`)

	tests := []struct {
		name string
		in   core.Cell
		want core.Cell
	}{
		{"free cell unchanged", core.Cell{Row: 0, Col: 3}, core.Cell{Row: 0, Col: 3}},
		{"edge of block", core.Cell{Row: 1, Col: 1}, core.Cell{Row: 0, Col: 0}},
		{"center needs radius 2", core.Cell{Row: 2, Col: 2}, core.Cell{Row: 0, Col: 0}},
		{"right side", core.Cell{Row: 2, Col: 3}, core.Cell{Row: 1, Col: 4}},
		{"outside the grid", core.Cell{Row: -3, Col: 2}, core.Cell{Row: 0, Col: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NearestFreeCell(g, tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.False(t, g.IsCellBlocked(got.Row, got.Col))
		})
	}
}

func TestNearestFreeCell_NothingFree(t *testing.T) {
	g, err := grid.New(20, 20, 10)
	require.NoError(t, err)
	g.MarkObstacles([]core.Obstacle{{Bounds: core.Rect{Right: 20, Bottom: 20}}}, false)

	c := core.Cell{Row: 1, Col: 1}
	got, ok := NearestFreeCell(g, c)
	assert.False(t, ok)
	assert.Equal(t, c, got)
}

func TestNearestFreeCell_RadiusCap(t *testing.T) {
	g, err := grid.New(10, 10, 1)
	require.NoError(t, err)

	_, ok := NearestFreeCell(g, core.Cell{Row: -MaxSnapRadius, Col: 0})
	assert.True(t, ok, "a free cell exactly at the cap is found")

	_, ok = NearestFreeCell(g, core.Cell{Row: -MaxSnapRadius - 1, Col: 0})
	assert.False(t, ok)
}
