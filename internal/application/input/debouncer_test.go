package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func held(buttons ...Button) Snapshot {
	var s Snapshot
	for _, b := range buttons {
		s.Hold(b)
	}
	return s
}

func TestButton_String(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{A, "A"},
		{B, "B"},
		{Up, "Up"},
		{Down, "Down"},
		{Left, "Left"},
		{Right, "Right"},
		{Button(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.button.String())
		})
	}
}

func TestSnapshot(t *testing.T) {
	var s Snapshot
	s.Press(A)
	s.Hold(Left)

	assert.True(t, s.Pressed(A))
	assert.True(t, s.Held(A))
	assert.False(t, s.Pressed(Left))
	assert.True(t, s.Held(Left))
	assert.False(t, s.Held(Button(-1)))
	assert.False(t, s.Pressed(Button(99)))

	copied := Capture(s)
	assert.Equal(t, s, copied)
}

// typingSource reuses its buffer between frames like a host keyboard.
type typingSource struct {
	Snapshot
	buf []rune
}

func (s *typingSource) Text() ([]rune, bool) {
	return s.buf, false
}

func TestCapture_CopiesTypedText(t *testing.T) {
	src := &typingSource{buf: []rune("AB")}

	snap := Capture(src)
	src.buf[0] = 'Z'

	chars, backspace := snap.Text()
	assert.Equal(t, []rune("AB"), chars)
	assert.False(t, backspace)
}

func TestDebouncer_Text(t *testing.T) {
	d := NewDebouncer()
	chars, backspace := d.Text()
	assert.Empty(t, chars, "no source bound yet")
	assert.False(t, backspace)

	var s Snapshot
	s.Type("HI")
	s.Backspace()
	d.Begin(s, 0)

	chars, backspace = d.Text()
	assert.Equal(t, []rune("HI"), chars)
	assert.True(t, backspace)
}

func TestDebouncer_Pressed(t *testing.T) {
	d := NewDebouncer()
	assert.False(t, d.Pressed(A), "no source bound yet")

	var s Snapshot
	s.Press(A)
	d.Begin(s, 1)
	assert.True(t, d.Pressed(A))
	assert.False(t, d.Pressed(B))
}

func TestDebouncer_HeldThrottled(t *testing.T) {
	t.Run("repeats every throttle frames from the hold start", func(t *testing.T) {
		d := NewDebouncer()
		var fired []uint64
		for frame := uint64(100); frame < 122; frame++ {
			d.Begin(held(Right), frame)
			if d.HeldThrottled(Right, 7) {
				fired = append(fired, frame)
			}
		}
		assert.Equal(t, []uint64{100, 107, 114, 121}, fired)
	})

	t.Run("release stops immediately and a new hold restarts the cycle", func(t *testing.T) {
		d := NewDebouncer()
		d.Begin(held(Left), 10)
		assert.True(t, d.HeldThrottled(Left, 7))
		d.Begin(held(Left), 11)
		assert.False(t, d.HeldThrottled(Left, 7))

		d.Begin(held(), 12)
		assert.False(t, d.HeldThrottled(Left, 7))

		d.Begin(held(Left), 13)
		assert.True(t, d.HeldThrottled(Left, 7), "fresh hold fires on its first frame")
		d.Begin(held(Left), 17)
		assert.False(t, d.HeldThrottled(Left, 7))
		d.Begin(held(Left), 20)
		assert.True(t, d.HeldThrottled(Left, 7))
	})

	t.Run("zero throttle fires every held frame", func(t *testing.T) {
		d := NewDebouncer()
		for frame := uint64(0); frame < 5; frame++ {
			d.Begin(held(Up), frame)
			assert.True(t, d.HeldThrottled(Up, 0), "frame %d", frame)
		}
	})

	t.Run("hold tracked while unpolled restarts after release", func(t *testing.T) {
		d := NewDebouncer()
		d.Begin(held(Right), 1)
		assert.True(t, d.HeldThrottled(Right, 7))
		d.Begin(held(), 2) // released while nobody polls
		d.Begin(held(Right), 3)
		assert.True(t, d.HeldThrottled(Right, 7))
	})

	t.Run("frame zero hold is still a hold", func(t *testing.T) {
		d := NewDebouncer()
		d.Begin(held(Right), 0)
		assert.True(t, d.HeldThrottled(Right, 3))
		d.Begin(held(Right), 1)
		assert.False(t, d.HeldThrottled(Right, 3))
		d.Begin(held(Right), 3)
		assert.True(t, d.HeldThrottled(Right, 3))
	})

	t.Run("unknown buttons never fire", func(t *testing.T) {
		d := NewDebouncer()
		d.Begin(held(), 0)
		assert.False(t, d.HeldThrottled(Button(-3), 0))
	})
}
