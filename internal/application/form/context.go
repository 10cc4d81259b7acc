package form

// Context is the active form: its fields in tab order and the focus index.
type Context struct {
	TabIndex int
	Fields   []Field
}

// Reset replaces the field list and moves focus back to the first field.
func (c *Context) Reset(fields []Field) {
	c.Fields = fields
	c.TabIndex = 0
}

// FocusPrev moves focus up one field; it stays put on the first field.
func (c *Context) FocusPrev() {
	if c.TabIndex > 0 {
		c.TabIndex--
	}
	c.clampFocus()
}

// FocusNext moves focus down one field; it stays put on the last field.
func (c *Context) FocusNext() {
	if c.TabIndex < len(c.Fields)-1 {
		c.TabIndex++
	}
	c.clampFocus()
}

func (c *Context) clampFocus() {
	c.TabIndex = clamp(c.TabIndex, 0, len(c.Fields)-1)
}

// Focused returns the field that has focus, if any.
func (c *Context) Focused() (Field, bool) {
	return c.At(c.TabIndex)
}

// At returns the field at tab index i.
func (c *Context) At(i int) (Field, bool) {
	if i < 0 || i >= len(c.Fields) {
		return nil, false
	}
	return c.Fields[i], true
}

// Values collects Number values and Select option values by key.
// Fields without a key are skipped.
func (c *Context) Values() map[string]int {
	out := make(map[string]int)
	for _, f := range c.Fields {
		switch f := f.(type) {
		case *NumberField:
			if f.Key != "" {
				out[f.Key] = f.Value
			}
		case *SelectField:
			if opt, ok := f.Selected(); ok && f.Key != "" {
				out[f.Key] = opt.Value
			}
		}
	}
	return out
}

// Text returns the value of the text field with the given key.
func (c *Context) Text(key string) (string, bool) {
	for _, f := range c.Fields {
		if tf, ok := f.(*TextField); ok && tf.Key == key {
			return tf.Value, true
		}
	}
	return "", false
}

// Renumber assigns contiguous tab indexes in slice order.
func Renumber(fields []Field) []Field {
	for i, f := range fields {
		f.base().TabIndex = i
	}
	return fields
}
