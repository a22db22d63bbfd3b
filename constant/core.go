package constant

import "time"

// Loop Timing
const (
	// PollTimeout bounds the wait for a key event; the loop redraws every tick (~20 FPS idle)
	PollTimeout = 50 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event pump channel
	EventQueueSize = 256
)

// Canvas Geometry
// The canvas is fixed; terminal resizes never change the logical grid
const (
	GridWidth  = 80
	GridHeight = 40
)

// Default View
// Frames the classic silhouette of the set
const (
	DefaultZoom          = 1.0
	DefaultCenterX       = -0.5
	DefaultCenterY       = 0.0
	DefaultMaxIterations = 100
)

// Camera Controls
const (
	// ZoomFactor multiplies or divides zoom per key press
	ZoomFactor = 1.5

	// PanStep is the pan distance at zoom 1.0, divided by zoom so screen-space speed stays constant
	PanStep = 0.1

	// PlaneRange is the half-height of the visible plane at zoom 1.0
	PlaneRange = 2.0
)

// Iteration Budget
const (
	MinIterations  = 20
	MaxIterations  = 500
	IterationsStep = 20
)

// Escape-Time
const (
	// EscapeRadiusSq is the squared magnitude past which an orbit escapes
	EscapeRadiusSq = 4.0

	// PaletteBuckets is the number of equal-width ratio bins mapped to escape colors
	PaletteBuckets = 8
)
