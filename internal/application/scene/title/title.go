// Package title provides the title screen: a blinking prompt and the game
// mode picker.
package title

import (
	"github.com/younwookim/platformer/internal/application/command"
	"github.com/younwookim/platformer/internal/application/form"
	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/input"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/settings"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Prompt is the blinking call to action.
const Prompt = "PRESS A TO START"

// ParamMode is the scene param carrying the chosen mode name.
const ParamMode = "mode"

var modeOptions = []form.Option{
	{Label: "FREE PLAY", Value: int(settings.ModeFreePlay)},
	{Label: "STORY", Value: int(settings.ModeStory)},
}

// Title is the title scene
type Title struct {
	choreo config.ChoreographyConfig
}

// New creates the title scene.
func New(cfg *config.Config) *Title {
	return &Title{choreo: cfg.Choreography}
}

func (t *Title) Name() state.SceneName { return state.SceneTitle }

// OnEnter builds the mode picker, preselecting the current mode.
func (t *Title) OnEnter(ctx *state.Context) error {
	selected := 0
	if ctx.Game != nil {
		for i, opt := range modeOptions {
			if opt.Value == int(ctx.Game.Mode()) {
				selected = i
			}
		}
	}
	ctx.Form.Reset(form.Renumber([]form.Field{
		&form.SelectField{
			Base:    form.Base{Key: ParamMode, Label: "MODE"},
			Value:   selected,
			Options: modeOptions,
		},
	}))
	return nil
}

func (t *Title) Render(f *scene.Frame) {
	p := f.Painter
	p.Clear(gfx.Black)

	blink := t.choreo.TitleBlink
	if f.Ctx.Scene.Exiting() {
		blink = t.choreo.TitleBlinkExiting
	}
	w, h := p.Measure(gfx.Medium, Prompt)
	p.Text(gfx.Medium, Prompt, f.Width/2-w/2, f.Height/2-h/2, gfx.White, gfx.WithBlink(blink))

	f.Fields(func(_ int, fd form.Field) (int, int) {
		return f.Width/2 - 48, f.Height/2 + h + 16
	})

	if f.Ctx.Scene.Exiting() || !f.Input.Pressed(input.A) {
		return
	}
	mode := settings.ModeFreePlay
	if v, ok := f.Ctx.Form.Values()[ParamMode]; ok {
		mode = settings.Mode(v)
	}
	f.Dispatch.Dispatch(command.SwitchScene{
		To:     state.SceneOptionsSetup,
		Params: state.Params{ParamMode: mode.String()},
		Delay:  t.choreo.TitleExitDelay,
	})
}

func (t *Title) OnExit(ctx *state.Context) {}
