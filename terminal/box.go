package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// boxChars: top-left, horizontal, top-right, vertical, bottom-left, bottom-right
var boxChars = [6]rune{'┌', '─', '┐', '│', '└', '┘'}

const (
	boxTL = 0
	boxH  = 1
	boxTR = 2
	boxV  = 3
	boxBL = 4
	boxBR = 5
)

// region is a rectangle of the screen; drawing is clipped to it
type region struct {
	s          tcell.Screen
	X, Y, W, H int
}

func (r region) cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return
	}
	r.s.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// inner returns the region inside a one-cell border
func (r region) inner() region {
	return region{s: r.s, X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

// box draws a single-line border with an optional title on the top edge
func (r region) box(title string, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}

	r.cell(0, 0, boxChars[boxTL], style)
	r.cell(r.W-1, 0, boxChars[boxTR], style)
	r.cell(0, r.H-1, boxChars[boxBL], style)
	r.cell(r.W-1, r.H-1, boxChars[boxBR], style)

	for x := 1; x < r.W-1; x++ {
		r.cell(x, 0, boxChars[boxH], style)
		r.cell(x, r.H-1, boxChars[boxH], style)
	}
	for y := 1; y < r.H-1; y++ {
		r.cell(0, y, boxChars[boxV], style)
		r.cell(r.W-1, y, boxChars[boxV], style)
	}

	if title != "" {
		r.text(1, 0, r.W-2, title, style)
	}
}

// text writes s starting at (x, y), truncated to maxWidth display columns
// Wide runes advance by their display width
func (r region) text(x, y, maxWidth int, s string, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	if runewidth.StringWidth(s) > maxWidth {
		s = runewidth.Truncate(s, maxWidth, "…")
	}
	for _, ch := range s {
		r.cell(x, y, ch, style)
		x += runewidth.RuneWidth(ch)
	}
}
