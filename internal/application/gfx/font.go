// Package gfx is the drawing capability the menu core renders through.
//
// Hosts implement the small Surface interface (clear, rect, glyph); the
// Painter layered on top provides text layout, measuring, blinking and
// wiggling so every backend animates identically.
package gfx

import "image/color"

// Font selects a bitmap font variant.
type Font int

const (
	Small Font = iota
	Medium
	Large
	Jumbo
)

// String returns the string representation of the font
func (f Font) String() string {
	switch f {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	case Jumbo:
		return "Jumbo"
	default:
		return "Unknown"
	}
}

// Metrics is the fixed glyph box of a font. There is no kerning.
type Metrics struct {
	Width   int
	Height  int
	Spacing int
}

var metrics = map[Font]Metrics{
	Small:  {Width: 4, Height: 4, Spacing: 1},
	Medium: {Width: 5, Height: 6, Spacing: 1},
	Large:  {Width: 7, Height: 9, Spacing: 1},
	Jumbo:  {Width: 12, Height: 15, Spacing: 2},
}

// MetricsOf returns the glyph box for f. Unknown fonts fall back to Small.
func MetricsOf(f Font) Metrics {
	if m, ok := metrics[f]; ok {
		return m
	}
	return metrics[Small]
}

// Measure returns the pixel size of text set in f.
func Measure(f Font, text string) (width, height int) {
	m := MetricsOf(f)
	n := len([]rune(text))
	if n == 0 {
		return 0, 0
	}
	return n*(m.Width+m.Spacing) - m.Spacing, m.Height
}

// Palette
var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
	Pink  = color.RGBA{255, 109, 194, 255}
	Gray  = color.RGBA{110, 110, 120, 255}
)
