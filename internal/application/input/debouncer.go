package input

// Debouncer wraps a Source for the duration of one frame and tracks where
// each hold started so held buttons can auto-repeat.
type Debouncer struct {
	src       Source
	frame     uint64
	holdStart [buttonCount]uint64
	holding   [buttonCount]bool
}

// NewDebouncer creates an idle debouncer.
func NewDebouncer() *Debouncer {
	return &Debouncer{}
}

// Begin binds the debouncer to this frame's input.
func (d *Debouncer) Begin(src Source, frame uint64) {
	d.src = src
	d.frame = frame
	for _, b := range Buttons {
		if !d.Held(b) {
			d.holding[b] = false
			d.holdStart[b] = 0
		}
	}
}

// Pressed reports whether b was pressed this exact frame.
func (d *Debouncer) Pressed(b Button) bool {
	return d.src != nil && d.src.Pressed(b)
}

// Held reports the raw level of b.
func (d *Debouncer) Held(b Button) bool {
	return d.src != nil && d.src.Held(b)
}

// Text forwards the frame's typed text when the source has any.
func (d *Debouncer) Text() ([]rune, bool) {
	if ts, ok := d.src.(TextSource); ok {
		return ts.Text()
	}
	return nil, false
}

// HeldThrottled fires on the first frame of a hold and then every throttle
// frames while b stays down. A throttle of 0 fires on every held frame.
func (d *Debouncer) HeldThrottled(b Button, throttle int) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	if !d.Held(b) {
		d.holding[b] = false
		d.holdStart[b] = 0
		return false
	}
	if !d.holding[b] {
		d.holding[b] = true
		d.holdStart[b] = d.frame
		return true
	}
	if throttle <= 0 {
		return true
	}
	if d.frame < d.holdStart[b] {
		// Frame went backwards; treat as a fresh hold.
		d.holdStart[b] = d.frame
		return true
	}
	return (d.frame-d.holdStart[b])%uint64(throttle) == 0
}

