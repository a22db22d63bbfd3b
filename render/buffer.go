package render

// Frame is a fixed-size grid of cells in row-major order: Cells[y*Width + x]
type Frame struct {
	Cells  []Cell
	Width  int
	Height int
}

// NewFrame creates a frame with every cell positioned and empty
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			cells[row+x] = Cell{X: x, Y: y}
		}
	}
	return &Frame{
		Cells:  cells,
		Width:  width,
		Height: height,
	}
}

// inBounds returns true if in grid bounds
func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// Set writes a cell; out-of-bounds writes are dropped
func (f *Frame) Set(c Cell) {
	if !f.inBounds(c.X, c.Y) {
		return
	}
	f.Cells[c.Y*f.Width+c.X] = c
}

// Get returns the cell at (x, y), or the zero Cell if out of bounds
func (f *Frame) Get(x, y int) Cell {
	if !f.inBounds(x, y) {
		return Cell{}
	}
	return f.Cells[y*f.Width+x]
}

// Bounds returns grid dimensions
func (f *Frame) Bounds() (int, int) {
	return f.Width, f.Height
}
