package form

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/younwookim/platformer/internal/application/input"
)

// TextEdit is a single edit of a TextField at its cursor: Delete runes are
// removed before the cursor, then Insert is placed at it. Move shifts the
// cursor afterwards.
type TextEdit struct {
	Insert string
	Delete int
	Move   int
}

// TextEditor is the extension point for editing text fields. The form
// renderer asks it for an edit while a text field has focus. With no editor
// installed text fields are display-only.
type TextEditor interface {
	Edit(f *TextField, in Input) (TextEdit, bool)
}

// TypedEditor edits the focused text field with the characters typed this
// frame. It needs an Input that is also an input.TextSource.
type TypedEditor struct{}

func (TypedEditor) Edit(_ *TextField, in Input) (TextEdit, bool) {
	ts, ok := in.(input.TextSource)
	if !ok {
		return TextEdit{}, false
	}
	return Typed(ts.Text())
}

// Apply performs e on the field. A positive TargetLength caps the value.
func (f *TextField) Apply(e TextEdit) {
	runes := []rune(f.Value)
	cursor := clamp(f.Cursor, 0, len(runes))

	del := clamp(e.Delete, 0, cursor)
	runes = append(runes[:cursor-del:cursor-del], runes[cursor:]...)
	cursor -= del

	ins := []rune(e.Insert)
	if f.TargetLength > 0 {
		room := f.TargetLength - len(runes)
		if room < 0 {
			room = 0
		}
		if len(ins) > room {
			ins = ins[:room]
		}
	}
	tail := append([]rune{}, runes[cursor:]...)
	runes = append(append(runes[:cursor], ins...), tail...)
	cursor += len(ins)

	f.Value = string(runes)
	f.Cursor = clamp(cursor+e.Move, 0, utf8.RuneCountInString(f.Value))
}

// Typed turns a frame's typed characters into an edit at the cursor. Letters
// are upper-cased to match the bitmap fonts; only ASCII letters, digits and
// spaces are kept. backspace deletes one rune.
func Typed(chars []rune, backspace bool) (TextEdit, bool) {
	var b strings.Builder
	for _, r := range chars {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
		case r < unicode.MaxASCII && unicode.IsDigit(r), r == ' ':
			b.WriteRune(r)
		}
	}
	e := TextEdit{Insert: b.String()}
	if backspace {
		e.Delete = 1
	}
	return e, e.Insert != "" || e.Delete > 0
}
