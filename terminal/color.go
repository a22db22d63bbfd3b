package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-mandel/fractal"
)

// ColorMode selects how palette colors are encoded
type ColorMode uint8

const (
	ColorModeANSI      ColorMode = iota // 16-color indices, themed by the terminal
	ColorModeTrueColor                  // 24-bit RGB, xterm default values
)

// ansiIndex maps palette entries to the standard 16-color indices
var ansiIndex = [len(fractal.Palette)]int{
	fractal.ColorInSet:     0,
	fractal.ColorBlue:      4,
	fractal.ColorLightBlue: 12,
	fractal.ColorCyan:      6,
	fractal.ColorGreen:     2,
	fractal.ColorYellow:    3,
	fractal.ColorLightRed:  9,
	fractal.ColorRed:       1,
	fractal.ColorMagenta:   5,
	fractal.ColorOverflow:  15,
}

// rgbHex holds the xterm default RGB values for the same indices
var rgbHex = [len(fractal.Palette)]string{
	fractal.ColorInSet:     "#000000",
	fractal.ColorBlue:      "#0000ee",
	fractal.ColorLightBlue: "#5c5cff",
	fractal.ColorCyan:      "#00cdcd",
	fractal.ColorGreen:     "#00cd00",
	fractal.ColorYellow:    "#cdcd00",
	fractal.ColorLightRed:  "#ff0000",
	fractal.ColorRed:       "#cd0000",
	fractal.ColorMagenta:   "#cd00cd",
	fractal.ColorOverflow:  "#ffffff",
}

// colorTable resolves palette entries to tcell colors
type colorTable [len(fractal.Palette)]tcell.Color

func newColorTable(mode ColorMode) (colorTable, error) {
	var t colorTable
	for i := range t {
		switch mode {
		case ColorModeTrueColor:
			c, err := colorful.Hex(rgbHex[i])
			if err != nil {
				return t, fmt.Errorf("palette %s: %w", fractal.Color(i), err)
			}
			r, g, b := c.RGB255()
			t[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
		default:
			t[i] = tcell.PaletteColor(ansiIndex[i])
		}
	}
	return t, nil
}

// style returns the foreground style for a palette entry; unknown entries fall back to default
func (t *colorTable) style(c fractal.Color) tcell.Style {
	if !c.Valid() {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(t[c])
}

// ParseColorMode resolves a flag value: auto, ansi (or 16, 256), truecolor (or true, 24bit)
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "ansi", "16", "256":
		return ColorModeANSI, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	default:
		return ColorModeANSI, fmt.Errorf("unknown color mode %q", s)
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorModeANSI
}
