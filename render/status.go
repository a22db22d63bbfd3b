package render

import (
	"fmt"

	"github.com/lixenwraith/vi-mandel/viewport"
)

// StatusLine formats the per-frame viewport summary
func StatusLine(v viewport.Viewport) string {
	return fmt.Sprintf("Zoom: %.2f | Center: (%.4f, %.4f) | Iterations: %d",
		v.Zoom, v.CenterX, v.CenterY, v.MaxIterations)
}
