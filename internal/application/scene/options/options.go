// Package options provides the setup screen for the selected game mode.
package options

import (
	"github.com/younwookim/platformer/internal/application/command"
	"github.com/younwookim/platformer/internal/application/form"
	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/input"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/scene/playersetup"
	"github.com/younwookim/platformer/internal/application/scene/title"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/settings"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Heading is drawn above the fields.
const Heading = "SETUP!"

// labelMargin is the room left right of the labels for the values.
const labelMargin = 56

// Options is the options setup scene
type Options struct {
	choreo     config.ChoreographyConfig
	labelWidth int
}

// New creates the options setup scene.
func New(cfg *config.Config) *Options {
	return &Options{
		choreo:     cfg.Choreography,
		labelWidth: cfg.Display.CanvasWidth - labelMargin,
	}
}

func (o *Options) Name() state.SceneName { return state.SceneOptionsSetup }

// OnEnter selects the mode named by the mode param, FreePlay when absent,
// and seeds the fields from its settings. Settings of a mode that is
// already selected are kept.
func (o *Options) OnEnter(ctx *state.Context) error {
	mode := settings.ModeFreePlay
	if name, ok := ctx.Scene.Params.String(title.ParamMode); ok {
		if m := settings.ParseMode(name); m != settings.ModeNone {
			mode = m
		}
	}
	if ctx.Game == nil || ctx.Game.Mode() != mode {
		ctx.Game = settings.New(mode)
	}
	ctx.Form.Reset(o.fields(ctx.Game))
	return nil
}

func (o *Options) fields(g settings.Game) []form.Field {
	number := func(key, label string, min, max int) form.Field {
		v, _ := g.Get(key)
		return &form.NumberField{
			Base:         form.Base{Key: key, Label: label, LabelWidth: o.labelWidth},
			Value:        v,
			Min:          min,
			Max:          max,
			Step:         1,
			TargetLength: 3,
			PadString:    " ",
		}
	}

	var fields []form.Field
	if g.Mode() == settings.ModeFreePlay {
		fields = append(fields,
			number(settings.KeyRounds, "NUMBER OF ROUNDS", 1, 100),
			number(settings.KeyStartingLevel, "STARTING LEVEL", 1, 100),
		)
	}
	fields = append(fields,
		number(settings.KeyPlayers, "NUMBER OF PLAYERS", settings.MinPlayers, settings.MaxPlayers),
		&form.SubmitField{Base: form.Base{Label: "NEXT"}},
	)
	return form.Renumber(fields)
}

func (o *Options) Render(f *scene.Frame) {
	c := o.choreo
	p := f.Painter
	p.Clear(gfx.Black)

	time := f.Ctx.Scene.Time()
	x := scene.Clamp(c.MarginLeft+time, c.MarginLeft, 0)
	p.Text(gfx.Medium, Heading, x+c.Indent, c.Indent, gfx.White)

	submitted := f.Fields(func(i int, fd form.Field) (int, int) {
		if _, ok := fd.(*form.SubmitField); ok {
			w, _ := p.Measure(f.Form.Font, form.Info(fd).Label)
			y := scene.Clamp(f.Height-c.MarginBottom-time, f.Height+c.MarginBottom, f.Height-c.MarginBottom)
			return f.Width/2 - w/2, y - 8
		}
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
		f.Dispatch.Dispatch(command.UpdateSettings{Values: f.Ctx.Form.Values()})
		f.Dispatch.Dispatch(command.SwitchScene{
			To:     state.ScenePlayerSetup,
			Params: state.Params{playersetup.ParamPlayer: 0},
			Delay:  delay,
		})
	case f.Input.Pressed(input.B):
		f.Dispatch.Dispatch(command.SwitchScene{To: state.SceneTitle, Delay: delay})
	}
	f.Focus()
}

func (o *Options) OnExit(ctx *state.Context) {}
