// Package scene defines the Scene interface for menu screens.
//
// Each screen of the menu flow (title, options, player setup, overworld)
// implements Scene. Scenes never mutate game state directly: Render reads
// the context and dispatches commands that the reducer applies afterwards.
package scene

import (
	"github.com/younwookim/platformer/internal/application/command"
	"github.com/younwookim/platformer/internal/application/form"
	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/input"
	"github.com/younwookim/platformer/internal/application/state"
)

// Scene represents a menu screen.
//
// The frame driver calls Render once per frame for the current scene and
// OnExit/OnEnter when a scene transition commits.
type Scene interface {
	// Name is the scene this implementation serves.
	Name() state.SceneName

	// OnEnter is called on the frame the scene becomes current.
	// It rebuilds the form and validates the scene params. A returned error
	// is an invariant violation and stops the loop.
	OnEnter(ctx *state.Context) error

	// Render draws the scene and dispatches commands. It must not write to
	// f.Ctx.
	Render(f *Frame)

	// OnExit is called when the scene stops being current.
	OnExit(ctx *state.Context)
}

// Frame is everything a scene can see and use while rendering.
type Frame struct {
	Ctx      *state.Context
	Painter  *gfx.Painter
	Form     *form.Renderer
	Input    *input.Debouncer
	Dispatch command.Dispatcher

	Width  int
	Height int
}

// Fields renders every field of the active form at the positions returned by
// place and dispatches the resulting commands. The focused field is the one
// at the form's tab index. It returns true when a focused submit was
// activated. While a transition is pending fields are drawn but input is
// ignored.
func (f *Frame) Fields(place func(i int, fd form.Field) (x, y int)) bool {
	exiting := f.Ctx.Scene.Exiting()
	submitted := false
	for i, fd := range f.Ctx.Form.Fields {
		x, y := place(i, fd)
		res := f.Form.Render(fd, x, y, i == f.Ctx.Form.TabIndex)
		if exiting {
			continue
		}
		switch {
		case res.Delta != 0:
			f.Dispatch.Dispatch(command.AdjustField{TabIndex: i, Delta: res.Delta})
		case res.Edit != nil:
			f.Dispatch.Dispatch(command.EditText{TabIndex: i, Edit: *res.Edit})
		case res.Activated:
			submitted = true
		}
	}
	return submitted
}

// Focus dispatches focus moves for up/down presses.
func (f *Frame) Focus() {
	if f.Ctx.Scene.Exiting() {
		return
	}
	if f.Input.Pressed(input.Up) {
		f.Dispatch.Dispatch(command.PrevTabIndex{})
	}
	if f.Input.Pressed(input.Down) {
		f.Dispatch.Dispatch(command.NextTabIndex{})
	}
}

// Curtain draws the two closing panels of an exit transition.
func (f *Frame) Curtain(progress float64) {
	if progress <= 0 {
		return
	}
	if progress > 1 {
		progress = 1
	}
	half := f.Width / 2
	offset := int(float64(half) * progress)
	f.Painter.Rect(0, 0, offset, f.Height, gfx.Black)
	f.Painter.Rect(f.Width-offset, 0, offset, f.Height, gfx.Black)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Registry maps scene names to their implementations.
type Registry map[state.SceneName]Scene

// NewRegistry indexes scenes by Name.
func NewRegistry(scenes ...Scene) Registry {
	r := make(Registry, len(scenes))
	for _, s := range scenes {
		r[s.Name()] = s
	}
	return r
}
