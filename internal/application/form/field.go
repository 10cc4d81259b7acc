// Package form is a small declarative form model: typed fields, a focus
// index, and a renderer that turns input into edit intents.
//
// Rendering never mutates a field. Renderer.Render reports the change the
// player asked for and the caller dispatches it; the reducer applies it with
// Nudge or Apply.
package form

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field is one entry of a form. The set of variants is closed.
type Field interface {
	base() *Base
	isField()
}

// Base holds what every field variant shares.
type Base struct {
	TabIndex int
	Key      string
	Disabled bool
	Label    string
	// LabelWidth reserves horizontal space for the label; zero sizes it to
	// the label text.
	LabelWidth int
}

func (b *Base) base() *Base { return b }

// Info returns the shared part of any field.
func Info(f Field) Base {
	return *f.base()
}

// NumberField is an integer stepped between Min and Max.
type NumberField struct {
	Base
	Value        int
	Min          int
	Max          int
	Step         int
	TargetLength int
	PadString    string
}

func (*NumberField) isField() {}

// Nudge moves the value by delta steps and clamps it into [Min, Max].
func (f *NumberField) Nudge(delta int) {
	f.Value = f.Peek(delta)
}

// Peek returns the value Nudge(delta) would produce.
func (f *NumberField) Peek(delta int) int {
	step := f.Step
	if step == 0 {
		step = 1
	}
	return clamp(f.Value+delta*step, f.Min, f.Max)
}

// Display is the value padded to TargetLength.
func (f *NumberField) Display() string {
	return padStart(strconv.Itoa(f.Value), f.TargetLength, f.PadString)
}

// TextField is a free text value.
type TextField struct {
	Base
	Value        string
	Placeholder  string
	TargetLength int
	PadString    string
	// Cursor is a rune offset into Value used by text edits.
	Cursor int
}

func (*TextField) isField() {}

// Display is the value, or the placeholder when empty, padded to TargetLength.
func (f *TextField) Display() string {
	s := f.Value
	if s == "" {
		s = f.Placeholder
	}
	return padEnd(s, f.TargetLength, f.PadString)
}

// Option is one choice of a SelectField.
type Option struct {
	Label string
	Value int
}

// SelectField picks one entry of Options; Value is the index.
type SelectField struct {
	Base
	Value   int
	Options []Option
}

func (*SelectField) isField() {}

// Nudge moves the selection by delta and clamps it to the option range.
func (f *SelectField) Nudge(delta int) {
	f.Value = f.Peek(delta)
}

// Peek returns the index Nudge(delta) would produce.
func (f *SelectField) Peek(delta int) int {
	if len(f.Options) == 0 {
		return 0
	}
	return clamp(f.Value+delta, 0, len(f.Options)-1)
}

// Selected returns the chosen option.
func (f *SelectField) Selected() (Option, bool) {
	if f.Value < 0 || f.Value >= len(f.Options) {
		return Option{}, false
	}
	return f.Options[f.Value], true
}

// SubmitField is a button.
type SubmitField struct {
	Base
}

func (*SubmitField) isField() {}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func padStart(s string, length int, pad string) string {
	fill := padding(utf8.RuneCountInString(s), length, pad)
	return fill + s
}

func padEnd(s string, length int, pad string) string {
	fill := padding(utf8.RuneCountInString(s), length, pad)
	return s + fill
}

func padding(have, length int, pad string) string {
	if pad == "" {
		pad = " "
	}
	need := length - have
	if need <= 0 {
		return ""
	}
	fill := strings.Repeat(pad, need/utf8.RuneCountInString(pad)+1)
	return string([]rune(fill)[:need])
}
