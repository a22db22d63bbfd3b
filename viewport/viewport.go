// Package viewport holds the camera over the complex plane: zoom, center and
// the escape-time iteration budget, with clamping mutators driven by input.
package viewport

import "github.com/lixenwraith/vi-mandel/constant"

// Viewport is the visible region of the plane and the iteration budget
// Value type; equality is structural
// Invariants after every mutator: Zoom > 0, MinIterations <= MaxIterations <= constant.MaxIterations
type Viewport struct {
	Zoom          float64
	CenterX       float64
	CenterY       float64
	MaxIterations int
}

// Default returns the startup view framing the whole set
func Default() Viewport {
	return Viewport{
		Zoom:          constant.DefaultZoom,
		CenterX:       constant.DefaultCenterX,
		CenterY:       constant.DefaultCenterY,
		MaxIterations: constant.DefaultMaxIterations,
	}
}

// ZoomIn magnifies by the zoom factor
func (v *Viewport) ZoomIn() {
	v.Zoom *= constant.ZoomFactor
}

// ZoomOut shrinks by the zoom factor; zoom stays positive
func (v *Viewport) ZoomOut() {
	v.Zoom /= constant.ZoomFactor
}

// Step returns the pan distance at the current zoom
func (v *Viewport) Step() float64 {
	return constant.PanStep / v.Zoom
}

func (v *Viewport) MoveLeft() {
	v.CenterX -= v.Step()
}

func (v *Viewport) MoveRight() {
	v.CenterX += v.Step()
}

func (v *Viewport) MoveUp() {
	v.CenterY -= v.Step()
}

func (v *Viewport) MoveDown() {
	v.CenterY += v.Step()
}

// IncreaseIterations raises the budget by one step, capped at constant.MaxIterations
func (v *Viewport) IncreaseIterations() {
	v.MaxIterations = min(v.MaxIterations+constant.IterationsStep, constant.MaxIterations)
}

// DecreaseIterations lowers the budget by one step, floored at constant.MinIterations
// Subtraction saturates at zero before the floor is applied
func (v *Viewport) DecreaseIterations() {
	n := v.MaxIterations - constant.IterationsStep
	if n < 0 {
		n = 0
	}
	v.MaxIterations = max(n, constant.MinIterations)
}

// Bounds returns the plane rectangle covered by a width x height grid
// Horizontal extent is stretched by the grid aspect ratio
func (v *Viewport) Bounds(width, height int) (xMin, xMax, yMin, yMax float64) {
	aspect := float64(width) / float64(height)
	span := constant.PlaneRange / v.Zoom

	xMin = v.CenterX - span*aspect
	xMax = v.CenterX + span*aspect
	yMin = v.CenterY - span
	yMax = v.CenterY + span
	return xMin, xMax, yMin, yMax
}
