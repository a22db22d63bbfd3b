package fractal

import "github.com/lixenwraith/vi-mandel/constant"

// Color is a discrete palette entry, independent of terminal color encoding
type Color uint8

const (
	ColorInSet Color = iota // Black: orbit never escaped within budget
	ColorBlue
	ColorLightBlue
	ColorCyan
	ColorGreen
	ColorYellow
	ColorLightRed
	ColorRed
	ColorMagenta
	ColorOverflow // White: bucket past the last ratio bin
	colorCount
)

// Palette lists every color Classify can return
var Palette = [colorCount]Color{
	ColorInSet,
	ColorBlue,
	ColorLightBlue,
	ColorCyan,
	ColorGreen,
	ColorYellow,
	ColorLightRed,
	ColorRed,
	ColorMagenta,
	ColorOverflow,
}

// escapeColors maps ratio buckets 0..7, cool to warm
var escapeColors = [constant.PaletteBuckets]Color{
	ColorBlue,
	ColorLightBlue,
	ColorCyan,
	ColorGreen,
	ColorYellow,
	ColorLightRed,
	ColorRed,
	ColorMagenta,
}

var colorNames = [colorCount]string{
	ColorInSet:     "black",
	ColorBlue:      "blue",
	ColorLightBlue: "light_blue",
	ColorCyan:      "cyan",
	ColorGreen:     "green",
	ColorYellow:    "yellow",
	ColorLightRed:  "light_red",
	ColorRed:       "red",
	ColorMagenta:   "magenta",
	ColorOverflow:  "white",
}

// String returns the palette name
func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return colorNames[c]
}

// Valid reports whether c is one of the palette entries
func (c Color) Valid() bool {
	return c < colorCount
}

// Classify maps an escape count to a palette color
// iterations == maxIterations is in the set; otherwise the ratio is split into
// equal-width buckets. Negative counts and buckets past the last map to ColorOverflow
func Classify(iterations, maxIterations int) Color {
	if iterations == maxIterations {
		return ColorInSet
	}
	if iterations < 0 {
		return ColorOverflow
	}

	ratio := float64(iterations) / float64(maxIterations)
	bucket := int(ratio * constant.PaletteBuckets)
	if bucket < 0 || bucket >= constant.PaletteBuckets {
		return ColorOverflow
	}
	return escapeColors[bucket]
}
