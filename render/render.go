package render

import (
	"github.com/lixenwraith/vi-mandel/constant"
	"github.com/lixenwraith/vi-mandel/fractal"
	"github.com/lixenwraith/vi-mandel/viewport"
)

// Render evaluates every cell of a width x height grid against the viewport
// Full recomputation each call: 3200 points at the default grid size
func Render(v viewport.Viewport, width, height int) *Frame {
	frame := NewFrame(width, height)
	if width <= 0 || height <= 0 {
		return frame
	}

	xMin, xMax, yMin, yMax := v.Bounds(width, height)
	w, h := float64(width), float64(height)

	for j := 0; j < height; j++ {
		y := yMin + (float64(j)/h)*(yMax-yMin)
		for i := 0; i < width; i++ {
			x := xMin + (float64(i)/w)*(xMax-xMin)

			iterations := fractal.EscapeTime(x, y, v.MaxIterations)
			frame.Set(Cell{
				X:     i,
				Y:     j,
				Glyph: constant.CellGlyph,
				Color: fractal.Classify(iterations, v.MaxIterations),
			})
		}
	}
	return frame
}

// PlanePoint returns the plane coordinate sampled by grid cell (i, j)
// Same interpolation as Render: cells sample their top-left corner
func PlanePoint(v viewport.Viewport, i, j, width, height int) (x, y float64) {
	xMin, xMax, yMin, yMax := v.Bounds(width, height)
	x = xMin + (float64(i)/float64(width))*(xMax-xMin)
	y = yMin + (float64(j)/float64(height))*(yMax-yMin)
	return x, y
}
