package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-mandel/constant"
	"github.com/lixenwraith/vi-mandel/fractal"
	"github.com/lixenwraith/vi-mandel/viewport"
)

// nearestCell returns the grid cell whose sample point is closest to (x, y)
func nearestCell(v viewport.Viewport, x, y float64, width, height int) (int, int) {
	bestI, bestJ := 0, 0
	bestDist := math.Inf(1)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			px, py := PlanePoint(v, i, j, width, height)
			d := (px-x)*(px-x) + (py-y)*(py-y)
			if d < bestDist {
				bestDist = d
				bestI, bestJ = i, j
			}
		}
	}
	return bestI, bestJ
}

func TestRender_Dimensions(t *testing.T) {
	frame := Render(viewport.Default(), constant.GridWidth, constant.GridHeight)

	w, h := frame.Bounds()
	if w != 80 || h != 40 {
		t.Fatalf("Expected 80x40 frame, got %dx%d", w, h)
	}
	if len(frame.Cells) != 3200 {
		t.Fatalf("Expected 3200 cells, got %d", len(frame.Cells))
	}

	for idx, c := range frame.Cells {
		if c.Glyph != constant.CellGlyph {
			t.Fatalf("Cell %d: expected glyph %q, got %q", idx, constant.CellGlyph, c.Glyph)
		}
		if c.Y*w+c.X != idx {
			t.Fatalf("Cell %d carries position (%d, %d)", idx, c.X, c.Y)
		}
		if !c.Color.Valid() {
			t.Fatalf("Cell %d has invalid color %d", idx, c.Color)
		}
	}
}

func TestRender_DefaultCenterInSet(t *testing.T) {
	v := viewport.Default()
	i, j := nearestCell(v, -0.5, 0, constant.GridWidth, constant.GridHeight)
	if i != 40 || j != 20 {
		t.Errorf("Expected nearest cell (40, 20), got (%d, %d)", i, j)
	}

	frame := Render(v, constant.GridWidth, constant.GridHeight)
	if got := frame.Get(i, j).Color; got != fractal.ColorInSet {
		t.Errorf("Expected in-set color at (-0.5, 0), got %v", got)
	}
}

func TestRender_CornerEscapes(t *testing.T) {
	frame := Render(viewport.Default(), constant.GridWidth, constant.GridHeight)

	// (-4.5, -2) leaves the disc after one step: bucket 0
	if got := frame.Get(0, 0).Color; got != fractal.ColorBlue {
		t.Errorf("Expected blue at top-left corner, got %v", got)
	}
}

func TestRender_DeepInteriorAllInSet(t *testing.T) {
	v := viewport.Viewport{Zoom: 100, CenterX: -0.2, CenterY: 0, MaxIterations: 100}
	frame := Render(v, constant.GridWidth, constant.GridHeight)

	for _, c := range frame.Cells {
		if c.Color != fractal.ColorInSet {
			t.Fatalf("Expected all cells in set inside main cardioid, cell (%d, %d) is %v", c.X, c.Y, c.Color)
		}
	}
}

func TestRender_MatchesEvaluator(t *testing.T) {
	v := viewport.Viewport{Zoom: 3.375, CenterX: -0.75, CenterY: 0.1, MaxIterations: 60}
	frame := Render(v, constant.GridWidth, constant.GridHeight)

	for _, pos := range [][2]int{{0, 0}, {79, 39}, {12, 31}, {55, 7}, {40, 20}} {
		x, y := PlanePoint(v, pos[0], pos[1], constant.GridWidth, constant.GridHeight)
		want := fractal.Classify(fractal.EscapeTime(x, y, v.MaxIterations), v.MaxIterations)
		if got := frame.Get(pos[0], pos[1]).Color; got != want {
			t.Errorf("Cell %v: expected %v, got %v", pos, want, got)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	v := viewport.Default()
	a := Render(v, constant.GridWidth, constant.GridHeight)
	b := Render(v, constant.GridWidth, constant.GridHeight)
	for idx := range a.Cells {
		if a.Cells[idx] != b.Cells[idx] {
			t.Fatalf("Cell %d differs between identical renders", idx)
		}
	}
}

func TestRender_EmptyGrid(t *testing.T) {
	frame := Render(viewport.Default(), 0, 0)
	if len(frame.Cells) != 0 {
		t.Errorf("Expected no cells, got %d", len(frame.Cells))
	}
}

func TestFrame_OutOfBounds(t *testing.T) {
	frame := NewFrame(4, 2)
	frame.Set(Cell{X: 9, Y: 9, Glyph: 'x'})
	frame.Set(Cell{X: -1, Y: 0, Glyph: 'x'})

	for _, c := range frame.Cells {
		if c.Glyph != 0 {
			t.Fatalf("Out-of-bounds write landed at (%d, %d)", c.X, c.Y)
		}
	}
	if got := frame.Get(4, 0); got != (Cell{}) {
		t.Errorf("Expected zero cell out of bounds, got %+v", got)
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name string
		v    viewport.Viewport
		want string
	}{
		{"Default", viewport.Default(), "Zoom: 1.00 | Center: (-0.5000, 0.0000) | Iterations: 100"},
		{"Zoomed", viewport.Viewport{Zoom: 3.375, CenterX: -0.5 - 0.1/3.375, CenterY: 0.25, MaxIterations: 500},
			"Zoom: 3.38 | Center: (-0.5296, 0.2500) | Iterations: 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusLine(tt.v); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func BenchmarkRender(b *testing.B) {
	v := viewport.Default()
	v.MaxIterations = constant.MaxIterations
	for i := 0; i < b.N; i++ {
		Render(v, constant.GridWidth, constant.GridHeight)
	}
}
