package gfx

import (
	"image/color"
	"math"
)

// Surface is implemented by the host backend.
type Surface interface {
	Clear(c color.RGBA)
	Rect(x, y, w, h int, c color.RGBA)
	Glyph(f Font, r rune, x, y int, c color.RGBA)
}

// wigglePhase is the per-glyph frame offset of the wiggle wave.
const wigglePhase = 4

type textOptions struct {
	blink     int
	amplitude float64
	period    float64
}

// TextOption tweaks how Painter.Text draws.
type TextOption func(*textOptions)

// WithBlink hides the text during the second half of every interval frames.
func WithBlink(interval int) TextOption {
	return func(o *textOptions) {
		o.blink = interval
	}
}

// WithWiggle offsets each glyph vertically along a sine wave.
func WithWiggle(amplitude, period float64) TextOption {
	return func(o *textOptions) {
		o.amplitude = amplitude
		o.period = period
	}
}

// Painter draws text and shapes on a Surface for a single frame.
type Painter struct {
	surface Surface
	frame   uint64
}

// NewPainter binds a surface to the frame being rendered.
func NewPainter(s Surface, frame uint64) *Painter {
	return &Painter{surface: s, frame: frame}
}

// Measure returns the pixel size of text set in f.
func (p *Painter) Measure(f Font, text string) (int, int) {
	return Measure(f, text)
}

// Clear fills the whole surface.
func (p *Painter) Clear(c color.RGBA) {
	p.surface.Clear(c)
}

// Rect fills a rectangle. Empty rectangles are skipped.
func (p *Painter) Rect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	p.surface.Rect(x, y, w, h, c)
}

// Text draws text with its top-left corner at x, y.
func (p *Painter) Text(f Font, text string, x, y int, c color.RGBA, opts ...TextOption) {
	var o textOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !Visible(p.frame, o.blink) {
		return
	}
	m := MetricsOf(f)
	i := 0
	for _, r := range text {
		gx := x + i*(m.Width+m.Spacing)
		gy := y + WiggleOffset(p.frame, i, o.amplitude, o.period)
		if r != ' ' {
			p.surface.Glyph(f, r, gx, gy, c)
		}
		i++
	}
}

// Visible reports whether blinking content is shown at frame. It is shown
// for the first half of every interval; intervals below 2 never hide.
func Visible(frame uint64, interval int) bool {
	if interval < 2 {
		return true
	}
	return frame%uint64(interval) < uint64(interval/2)
}

// WiggleOffset is the vertical offset of glyph i at frame.
func WiggleOffset(frame uint64, i int, amplitude, period float64) int {
	if amplitude == 0 || period <= 0 {
		return 0
	}
	t := float64(frame) + float64(i*wigglePhase)
	return int(math.Round(amplitude * math.Sin(2*math.Pi*t/period)))
}
