// Package playersetup provides the per-player configuration screen. One
// instance of the scene is entered per roster seat, selected by the player
// param.
package playersetup

import (
	"errors"
	"fmt"

	"github.com/younwookim/platformer/internal/application/command"
	"github.com/younwookim/platformer/internal/application/form"
	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/input"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/scene/title"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/settings"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// ParamPlayer is the scene param holding the zero-based seat index.
const ParamPlayer = "player"

// Field keys.
const (
	KeyName = "name"
	KeyKind = "kind"
)

// ErrPlayerParam is returned when the scene is entered without a usable seat.
var ErrPlayerParam = errors.New("player param missing or out of range")

const nameLength = 12

var kindOptions = []form.Option{
	{Label: "HUMAN", Value: int(settings.Human)},
	{Label: "CPU", Value: int(settings.CPU)},
}

// PlayerSetup is the player setup scene
type PlayerSetup struct {
	choreo config.ChoreographyConfig
}

// New creates the player setup scene.
func New(cfg *config.Config) *PlayerSetup {
	return &PlayerSetup{choreo: cfg.Choreography}
}

func (s *PlayerSetup) Name() state.SceneName { return state.ScenePlayerSetup }

// OnEnter validates the seat and builds its fields from the roster.
func (s *PlayerSetup) OnEnter(ctx *state.Context) error {
	if ctx.Game == nil {
		return settings.ErrNoModeSelected
	}
	index, ok := seat(ctx)
	if !ok || index >= ctx.Game.PlayerCount() {
		return fmt.Errorf("%w: %v (players: %d)", ErrPlayerParam, ctx.Scene.Params[ParamPlayer], ctx.Game.PlayerCount())
	}

	kind := settings.CPU
	if index == 0 {
		kind = settings.Human
	}
	name := ""
	if roster := ctx.Game.Roster(); index < len(roster) {
		kind = roster[index].Kind
		if roster[index].Name != settings.DefaultName(index) {
			name = roster[index].Name
		}
	}

	submit := "NEXT"
	if index == ctx.Game.PlayerCount()-1 {
		submit = "DONE"
	}
	ctx.Form.Reset(form.Renumber([]form.Field{
		&form.TextField{
			Base:         form.Base{Key: KeyName, Label: "NAME"},
			Value:        name,
			Placeholder:  settings.DefaultName(index),
			TargetLength: nameLength,
			Cursor:       len([]rune(name)),
		},
		&form.SelectField{
			Base:    form.Base{Key: KeyKind, Label: "TYPE"},
			Value:   kindIndex(kind),
			Options: kindOptions,
		},
		&form.SubmitField{Base: form.Base{Label: submit}},
	}))
	return nil
}

func (s *PlayerSetup) Render(f *scene.Frame) {
	c := s.choreo
	p := f.Painter
	p.Clear(gfx.Black)
	index, _ := seat(f.Ctx)

	time := f.Ctx.Scene.Time()
	x := scene.Clamp(c.MarginLeft+time, c.MarginLeft, 0)
	p.Text(gfx.Medium, settings.DefaultName(index), x+c.Indent, c.Indent, gfx.White)

	submitted := f.Fields(func(i int, fd form.Field) (int, int) {
		fx := scene.Clamp(c.MarginLeft-i*c.FieldDelay+time, c.MarginLeft, x)
		return fx + c.Indent, c.VerticalSpacing*(i+2) + c.Indent
	})

	if f.Ctx.Scene.Exiting() {
		f.Curtain(f.Ctx.Scene.Progress())
		return
	}

	delay := c.SetupExitDelay(len(f.Ctx.Form.Fields))
	switch {
	case submitted:
		f.Dispatch.Dispatch(command.SetPlayer{Index: index, Player: s.player(f.Ctx)})
		if index+1 < f.Ctx.Game.PlayerCount() {
			f.Dispatch.Dispatch(command.SwitchScene{
				To:     state.ScenePlayerSetup,
				Params: state.Params{ParamPlayer: index + 1},
				Delay:  delay,
			})
		} else {
			f.Dispatch.Dispatch(command.SwitchScene{To: state.SceneOverworld, Delay: delay})
		}
	case f.Input.Pressed(input.B) && !typing(f):
		if index > 0 {
			f.Dispatch.Dispatch(command.SwitchScene{
				To:     state.ScenePlayerSetup,
				Params: state.Params{ParamPlayer: index - 1},
				Delay:  delay,
			})
		} else {
			f.Dispatch.Dispatch(command.SwitchScene{
				To:     state.SceneOptionsSetup,
				Params: state.Params{title.ParamMode: f.Ctx.Game.Mode().String()},
				Delay:  delay,
			})
		}
	}
	f.Focus()
}

// seat is the roster index named by the current scene params.
func seat(ctx *state.Context) (int, bool) {
	i, ok := ctx.Scene.Params.Int(ParamPlayer)
	return i, ok && i >= 0
}

func kindIndex(k settings.PlayerKind) int {
	for i, opt := range kindOptions {
		if opt.Value == int(k) {
			return i
		}
	}
	return 0
}

// typing reports whether keys go to a text field; B may then be a letter.
func typing(f *scene.Frame) bool {
	if f.Form.Editor == nil {
		return false
	}
	fd, ok := f.Ctx.Form.Focused()
	if !ok {
		return false
	}
	_, ok = fd.(*form.TextField)
	return ok
}

// player reads the seat from the form.
func (s *PlayerSetup) player(ctx *state.Context) settings.Player {
	p := settings.Player{Kind: settings.CPU}
	if v, ok := ctx.Form.Values()[KeyKind]; ok {
		p.Kind = settings.PlayerKind(v)
	}
	p.Name, _ = ctx.Form.Text(KeyName)
	return p
}

func (s *PlayerSetup) OnExit(ctx *state.Context) {}
