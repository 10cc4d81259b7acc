// Package overworld provides the screen shown once setup is complete. It
// lists the configured roster; gameplay itself lives elsewhere.
package overworld

import (
	"fmt"

	"github.com/younwookim/platformer/internal/application/command"
	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/input"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/settings"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Heading is the wiggling banner.
const Heading = "OVERWORLD!"

// Overworld is the overworld scene
type Overworld struct {
	choreo config.ChoreographyConfig
}

// New creates the overworld scene.
func New(cfg *config.Config) *Overworld {
	return &Overworld{choreo: cfg.Choreography}
}

func (o *Overworld) Name() state.SceneName { return state.SceneOverworld }

func (o *Overworld) OnEnter(ctx *state.Context) error {
	ctx.Form.Reset(nil)
	return nil
}

func (o *Overworld) Render(f *scene.Frame) {
	c := o.choreo
	p := f.Painter
	p.Clear(gfx.Black)

	w, _ := p.Measure(gfx.Large, Heading)
	p.Text(gfx.Large, Heading, f.Width/2-w/2, c.Indent*2, gfx.Pink, gfx.WithWiggle(2, 32))

	y := c.Indent*2 + c.VerticalSpacing*2
	if g := f.Ctx.Game; g != nil {
		p.Text(gfx.Small, fmt.Sprintf("MODE %s", g.Mode()), c.Indent, y, gfx.White)
		for i, pl := range g.Roster() {
			y += c.VerticalSpacing
			p.Text(gfx.Small, rosterLine(i, pl), c.Indent, y, gfx.White)
		}
	} else {
		p.Text(gfx.Small, "NO GAME", c.Indent, y, gfx.Gray)
	}

	if f.Ctx.Scene.Exiting() {
		f.Curtain(f.Ctx.Scene.Progress())
		return
	}
	if f.Input.Pressed(input.B) {
		f.Dispatch.Dispatch(command.SwitchScene{To: state.SceneTitle, Delay: c.SetupExitDelay(1)})
	}
}

func rosterLine(i int, p settings.Player) string {
	return fmt.Sprintf("%d %-12s %-5s LV %d", i+1, p.Name, p.Kind, p.Level)
}

func (o *Overworld) OnExit(ctx *state.Context) {}
