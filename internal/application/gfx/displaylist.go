package gfx

import (
	"image/color"
	"strings"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpGlyph
)

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind
	X, Y  int
	W, H  int
	Font  Font
	Rune  rune
	Color color.RGBA
}

// DisplayList is a Surface that records operations for later replay.
// The ebiten host fills it during Update and replays it in Draw.
type DisplayList struct {
	ops []Op
}

func (d *DisplayList) Clear(c color.RGBA) {
	d.ops = append(d.ops, Op{Kind: OpClear, Color: c})
}

func (d *DisplayList) Rect(x, y, w, h int, c color.RGBA) {
	d.ops = append(d.ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (d *DisplayList) Glyph(f Font, r rune, x, y int, c color.RGBA) {
	m := MetricsOf(f)
	d.ops = append(d.ops, Op{Kind: OpGlyph, X: x, Y: y, W: m.Width, H: m.Height, Font: f, Rune: r, Color: c})
}

// Ops returns the recorded operations in draw order.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Reset drops every recorded operation and keeps the backing storage.
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
}

// Replay issues every recorded operation against s.
func (d *DisplayList) Replay(s Surface) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpClear:
			s.Clear(op.Color)
		case OpRect:
			s.Rect(op.X, op.Y, op.W, op.H, op.Color)
		case OpGlyph:
			s.Glyph(op.Font, op.Rune, op.X, op.Y, op.Color)
		}
	}
}

// Text joins recorded glyphs into lines, grouped by their y coordinate in
// draw order. Spaces between glyphs are not reconstructed.
func (d *DisplayList) Text() []string {
	var lines []string
	var b strings.Builder
	lastY, started := 0, false
	for _, op := range d.ops {
		if op.Kind != OpGlyph {
			continue
		}
		if started && op.Y != lastY {
			lines = append(lines, b.String())
			b.Reset()
		}
		b.WriteRune(op.Rune)
		lastY, started = op.Y, true
	}
	if started {
		lines = append(lines, b.String())
	}
	return lines
}

// Contains reports whether any recorded line contains s with spaces removed.
func (d *DisplayList) Contains(s string) bool {
	want := strings.ReplaceAll(s, " ", "")
	for _, line := range d.Text() {
		if strings.Contains(line, want) {
			return true
		}
	}
	return false
}
