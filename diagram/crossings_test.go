package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"umlroute/core"
)

func conn(points ...core.Point) Connector {
	return Connector{Route: core.Route(points)}
}

func TestCrossings(t *testing.T) {
	tests := []struct {
		name       string
		connectors []Connector
		want       []core.Point
	}{
		{
			name: "X",
			connectors: []Connector{
				conn(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 10}),
				conn(core.Point{X: 0, Y: 10}, core.Point{X: 10, Y: 0}),
			},
			want: []core.Point{{X: 5, Y: 5}},
		},
		{
			name: "shared anchor",
			connectors: []Connector{
				conn(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0}),
				conn(core.Point{X: 0, Y: 0}, core.Point{X: 0, Y: 10}),
			},
		},
		{
			name: "crossing on a bend counted once",
			connectors: []Connector{
				conn(core.Point{X: 0, Y: 5}, core.Point{X: 5, Y: 5}, core.Point{X: 10, Y: 8}),
				conn(core.Point{X: 5, Y: 0}, core.Point{X: 5, Y: 10}),
			},
			want: []core.Point{{X: 5, Y: 5}},
		},
		{
			name: "disjoint",
			connectors: []Connector{
				conn(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0}),
				conn(core.Point{X: 0, Y: 5}, core.Point{X: 10, Y: 5}),
				conn(core.Point{X: 20, Y: 0}, core.Point{X: 20, Y: 10}),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Crossings(tt.connectors)
			assert.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i].X, got[i].X, 1e-9)
				assert.InDelta(t, tt.want[i].Y, got[i].Y, 1e-9)
			}
		})
	}
}
