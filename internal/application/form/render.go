package form

import (
	"image/color"

	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/input"
)

// labelGap separates a label from its value when LabelWidth is unset.
const labelGap = 8

// Input is what the renderer polls.
type Input interface {
	Pressed(b input.Button) bool
	HeldThrottled(b input.Button, throttle int) bool
}

// Result is the intent a rendered field produced this frame.
type Result struct {
	// Delta is the signed step count for Number and Select fields; it is
	// non-zero only when the value would actually change.
	Delta int
	// Activated is set when a focused Submit field was confirmed.
	Activated bool
	// Edit is the text edit requested for a focused Text field.
	Edit *TextEdit
}

// Renderer draws fields and reads the input aimed at the focused one.
type Renderer struct {
	Painter *gfx.Painter
	Input   Input
	// Throttle is the auto-repeat interval, in frames, for held left/right.
	Throttle int
	Font     gfx.Font
	Editor   TextEditor
}

// Render draws f at x, y and returns the intent read from input.
func (r *Renderer) Render(f Field, x, y int, focused bool) Result {
	b := f.base()
	c := r.color(b, focused)
	if b.Disabled {
		focused = false
	}

	switch f := f.(type) {
	case *SubmitField:
		r.Painter.Text(r.Font, f.Label, x, y, c)
		return Result{Activated: focused && r.Input.Pressed(input.A)}

	case *NumberField:
		r.Painter.Text(r.Font, f.Label, x, y, gfx.White)
		if !focused {
			r.Painter.Text(r.Font, arrows(f.Display(), false, false), r.valueX(b, x), y, c)
			return Result{}
		}
		r.Painter.Text(r.Font, arrows(f.Display(), f.Value > f.Min, f.Value < f.Max), r.valueX(b, x), y, c)
		delta := r.delta()
		if delta == 0 || f.Peek(delta) == f.Value {
			return Result{}
		}
		return Result{Delta: delta}

	case *SelectField:
		r.Painter.Text(r.Font, f.Label, x, y, gfx.White)
		label := ""
		if opt, ok := f.Selected(); ok {
			label = opt.Label
		}
		if !focused {
			r.Painter.Text(r.Font, arrows(label, false, false), r.valueX(b, x), y, c)
			return Result{}
		}
		last := len(f.Options) - 1
		r.Painter.Text(r.Font, arrows(label, f.Value > 0, f.Value < last), r.valueX(b, x), y, c)
		delta := r.delta()
		if delta == 0 || f.Peek(delta) == f.Value {
			return Result{}
		}
		return Result{Delta: delta}

	case *TextField:
		r.Painter.Text(r.Font, f.Label, x, y, gfx.White)
		vc := c
		if f.Value == "" && !focused && !b.Disabled {
			vc = gfx.Gray
		}
		r.Painter.Text(r.Font, "  "+f.Display(), r.valueX(b, x), y, vc)
		if !focused || r.Editor == nil {
			return Result{}
		}
		if edit, ok := r.Editor.Edit(f, r.Input); ok {
			return Result{Edit: &edit}
		}
	}
	return Result{}
}

func (r *Renderer) color(b *Base, focused bool) color.RGBA {
	switch {
	case b.Disabled:
		return gfx.Gray
	case focused:
		return gfx.Pink
	default:
		return gfx.White
	}
}

func (r *Renderer) valueX(b *Base, x int) int {
	if b.LabelWidth > 0 {
		return x + b.LabelWidth
	}
	w, _ := r.Painter.Measure(r.Font, b.Label)
	return x + w + labelGap
}

func (r *Renderer) delta() int {
	delta := 0
	if r.Input.HeldThrottled(input.Left, r.Throttle) {
		delta--
	}
	if r.Input.HeldThrottled(input.Right, r.Throttle) {
		delta++
	}
	return delta
}

// arrows frames a value with the directions it can still move in.
func arrows(value string, left, right bool) string {
	l, rt := "  ", "  "
	if left {
		l = "< "
	}
	if right {
		rt = " >"
	}
	return l + value + rt
}
