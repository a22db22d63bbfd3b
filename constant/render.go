package constant

// Glyphs
const (
	// CellGlyph fills every canvas cell; color carries the information
	CellGlyph = '█'
)

// Layout
// The canvas box and the info box are stacked vertically at the top-left corner
const (
	// BorderSize is the width of a box frame on each side
	BorderSize = 1

	// InfoLines is the number of text rows inside the info box (controls, status)
	InfoLines = 2

	CanvasTitle = "Mandelbrot Set"
	InfoTitle   = "Info"
)
