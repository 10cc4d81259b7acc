// Package input turns raw per-frame button polling into pressed-this-frame
// and throttled-hold signals.
package input

// Button is a logical controller button.
type Button int

const (
	A Button = iota // confirm
	B               // cancel
	Up
	Down
	Left
	Right

	buttonCount
)

// Buttons lists every logical button in order.
var Buttons = [...]Button{A, B, Up, Down, Left, Right}

// String returns the string representation of the button
func (b Button) String() string {
	switch b {
	case A:
		return "A"
	case B:
		return "B"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Source is the raw input capability a host provides.
type Source interface {
	// Pressed reports whether b went down this frame.
	Pressed(b Button) bool
	// Held reports whether b is down right now.
	Held(b Button) bool
}

// TextSource is implemented by sources that also deliver typed text.
type TextSource interface {
	// Text returns the characters typed this frame and whether backspace
	// went down.
	Text() (chars []rune, backspace bool)
}

// Snapshot is a frozen Source for one frame, typed text included.
type Snapshot struct {
	pressed   [buttonCount]bool
	held      [buttonCount]bool
	chars     []rune
	backspace bool
}

// Capture freezes the current state of src. Typed text is copied when src
// is a TextSource.
func Capture(src Source) Snapshot {
	var s Snapshot
	for _, b := range Buttons {
		s.pressed[b] = src.Pressed(b)
		s.held[b] = src.Held(b)
	}
	if ts, ok := src.(TextSource); ok {
		chars, backspace := ts.Text()
		if len(chars) > 0 {
			s.chars = append([]rune(nil), chars...)
		}
		s.backspace = backspace
	}
	return s
}

// Press marks b as pressed this frame and held.
func (s *Snapshot) Press(b Button) {
	s.pressed[b] = true
	s.held[b] = true
}

// Hold marks b as held without the press edge.
func (s *Snapshot) Hold(b Button) {
	s.held[b] = true
}

// Type appends text typed this frame.
func (s *Snapshot) Type(text string) {
	s.chars = append(s.chars, []rune(text)...)
}

// Backspace marks backspace as pressed this frame.
func (s *Snapshot) Backspace() {
	s.backspace = true
}

func (s Snapshot) Text() ([]rune, bool) {
	return s.chars, s.backspace
}

func (s Snapshot) Pressed(b Button) bool {
	return b >= 0 && b < buttonCount && s.pressed[b]
}

func (s Snapshot) Held(b Button) bool {
	return b >= 0 && b < buttonCount && s.held[b]
}
