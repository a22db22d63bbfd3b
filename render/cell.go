package render

import "github.com/lixenwraith/vi-mandel/fractal"

// Cell is one painted grid position
// Produced fresh every frame, never cached
type Cell struct {
	X, Y  int
	Glyph rune
	Color fractal.Color
}
