// Package layout places class boxes on the canvas before routing.
package layout

import (
	"fmt"

	"umlroute/diagram"
)

// Engine positions the classes of a diagram.
type Engine interface {
	Layout(d *diagram.Diagram) (*diagram.Diagram, error)
}

// FlowLayout places classes left to right in declaration order and starts a
// new row when the next box would run past the canvas width.
type FlowLayout struct {
	Margin        float64 // offset of the first box from the top-left corner
	HorizontalGap float64
	VerticalGap   float64
	MinWidth      float64
	MinHeight     float64
	WidthPadding  float64 // added to the widest box when sizing the canvas
}

// NewFlowLayout creates a FlowLayout with default settings.
func NewFlowLayout() *FlowLayout {
	return &FlowLayout{
		Margin:        50,
		HorizontalGap: 54,
		VerticalGap:   76,
		MinWidth:      1600,
		MinHeight:     640,
		WidthPadding:  100,
	}
}

// Layout returns a copy of d with every class positioned. Class sizes are
// kept. A canvas already set on d is kept and bounds the rows; otherwise the
// canvas is sized from the boxes.
func (f *FlowLayout) Layout(d *diagram.Diagram) (*diagram.Diagram, error) {
	if d == nil {
		return nil, diagram.ErrNilDiagram
	}
	result := d.Clone()
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	width, height := f.CanvasSize(result.Classes)
	if result.Canvas.Width > 0 && result.Canvas.Height > 0 {
		width, height = result.Canvas.Width, result.Canvas.Height
	}

	x, y := f.Margin, f.Margin
	rowHeight := 0.0
	for i := range result.Classes {
		c := &result.Classes[i]
		// An empty row keeps an oversized box rather than leaving a blank row.
		if x+c.Width > width && x > f.Margin {
			x = f.Margin
			y += rowHeight + f.VerticalGap
			rowHeight = 0
		}
		c.X, c.Y = x, y
		x += c.Width + f.HorizontalGap
		rowHeight = max(rowHeight, c.Height)
	}

	result.Canvas = diagram.Canvas{Width: width, Height: height}
	result.Layout = ""
	return result, nil
}

// CanvasSize returns the canvas a flow of these classes is drawn on: at least
// MinWidth by MinHeight, wide enough for the widest box plus padding, and tall
// enough for every box stacked with a vertical gap each.
func (f *FlowLayout) CanvasSize(classes []diagram.Class) (width, height float64) {
	var widest, total float64
	for _, c := range classes {
		widest = max(widest, c.Width)
		total += c.Height
	}
	width = max(f.MinWidth, widest+f.WidthPadding)
	height = max(f.MinHeight, total+float64(len(classes))*f.VerticalGap)
	return width, height
}
