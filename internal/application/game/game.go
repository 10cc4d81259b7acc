// Package game provides the frame driver and the reducer that owns all
// writes to the game context.
package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/platformer/internal/application/command"
	"github.com/younwookim/platformer/internal/application/form"
	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/input"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/settings"
	"github.com/younwookim/platformer/internal/infrastructure/logging"
)

// ErrInvariant marks a state that the menu flow never produces on its own.
// Step returns it wrapped and the host stops the loop.
var ErrInvariant = errors.New("invariant violation")

// Options configures a Game.
type Options struct {
	Width    int
	Height   int
	Throttle int
	Start    state.SceneName
	Font     gfx.Font
	// Editor enables text field editing. Nil leaves text fields read-only.
	Editor form.TextEditor
}

// Game runs the frame loop over a set of scenes.
type Game struct {
	scenes scene.Registry
	ctx    *state.Context
	queue  *command.Queue
	input  *input.Debouncer
	opts   Options
}

// New creates a Game on opts.Start. The start scene's OnEnter is called
// immediately.
func New(scenes scene.Registry, opts Options) (*Game, error) {
	g := &Game{
		scenes: scenes,
		ctx:    state.New(opts.Start),
		queue:  command.NewQueue(16),
		input:  input.NewDebouncer(),
		opts:   opts,
	}
	start, err := g.scene(opts.Start)
	if err != nil {
		return nil, err
	}
	if err := start.OnEnter(g.ctx); err != nil {
		return nil, fmt.Errorf("%w: enter %s: %w", ErrInvariant, opts.Start, err)
	}
	return g, nil
}

// Context exposes the game context for inspection. Callers must not write
// to it.
func (g *Game) Context() *state.Context {
	return g.ctx
}

// Step runs one frame: poll input, render the current scene onto surface,
// apply the queued commands in order with FrameEnd last, advance the frame
// counter.
func (g *Game) Step(surface gfx.Surface, src input.Source) error {
	g.input.Begin(src, g.ctx.Frame)

	cur, err := g.scene(g.ctx.Scene.Current)
	if err != nil {
		return err
	}

	painter := gfx.NewPainter(surface, g.ctx.Frame)
	cur.Render(&scene.Frame{
		Ctx:     g.ctx,
		Painter: painter,
		Form: &form.Renderer{
			Painter:  painter,
			Input:    g.input,
			Throttle: g.opts.Throttle,
			Font:     g.opts.Font,
			Editor:   g.opts.Editor,
		},
		Input:    g.input,
		Dispatch: g.queue,
		Width:    g.opts.Width,
		Height:   g.opts.Height,
	})
	g.queue.Dispatch(command.FrameEnd{})

	for _, c := range g.queue.Drain() {
		if err := g.Apply(c); err != nil {
			logging.Error("Command failed",
				zap.String("command", string(c.Kind())),
				zap.Uint64("frame", g.ctx.Frame),
				zap.Error(err),
			)
			return err
		}
	}

	g.ctx.Frame++
	return nil
}

// Apply runs a single command against the context. Unknown commands are
// ignored.
func (g *Game) Apply(c command.Command) error {
	switch c := c.(type) {
	case command.FrameEnd:
		return g.frameEnd()

	case command.PrevTabIndex:
		g.ctx.Form.FocusPrev()

	case command.NextTabIndex:
		g.ctx.Form.FocusNext()

	case command.SwitchScene:
		if _, err := g.scene(c.To); err != nil {
			return err
		}
		if !g.ctx.Scene.Switch(c.To, c.Params, c.Delay) {
			logging.Debug("Scene switch dropped, transition pending",
				zap.Stringer("to", c.To),
				zap.Stringer("pending", g.ctx.Scene.Next.To),
			)
		}

	case command.AdjustField:
		fd, ok := g.ctx.Form.At(c.TabIndex)
		if !ok {
			return fmt.Errorf("%w: no field at tab index %d", ErrInvariant, c.TabIndex)
		}
		switch fd := fd.(type) {
		case *form.NumberField:
			fd.Nudge(c.Delta)
		case *form.SelectField:
			fd.Nudge(c.Delta)
		default:
			return fmt.Errorf("%w: field %d (%T) cannot be adjusted", ErrInvariant, c.TabIndex, fd)
		}

	case command.EditText:
		fd, ok := g.ctx.Form.At(c.TabIndex)
		if !ok {
			return fmt.Errorf("%w: no field at tab index %d", ErrInvariant, c.TabIndex)
		}
		tf, ok := fd.(*form.TextField)
		if !ok {
			return fmt.Errorf("%w: field %d (%T) is not a text field", ErrInvariant, c.TabIndex, fd)
		}
		tf.Apply(c.Edit)

	case command.UpdateSettings:
		if err := settings.Update(g.ctx.Game, c.Values); err != nil {
			return fmt.Errorf("%w: update settings: %w", ErrInvariant, err)
		}

	case command.SetPlayer:
		if g.ctx.Game == nil {
			return fmt.Errorf("%w: set player: %w", ErrInvariant, settings.ErrNoModeSelected)
		}
		if err := g.ctx.Game.SetPlayer(c.Index, c.Player); err != nil {
			return fmt.Errorf("%w: set player: %w", ErrInvariant, err)
		}

	default:
		logging.Debug("Ignoring unknown command", zap.String("kind", string(c.Kind())))
	}
	return nil
}

func (g *Game) frameEnd() error {
	prev := g.ctx.Scene.Current
	if !g.ctx.Scene.Tick(g.ctx.Frame) {
		return nil
	}

	if old, ok := g.scenes[prev]; ok {
		old.OnExit(g.ctx)
	}
	g.ctx.Form.Reset(nil)

	next, err := g.scene(g.ctx.Scene.Current)
	if err != nil {
		return err
	}
	if err := next.OnEnter(g.ctx); err != nil {
		return fmt.Errorf("%w: enter %s: %w", ErrInvariant, g.ctx.Scene.Current, err)
	}

	logging.Info("Scene changed",
		zap.Stringer("from", prev),
		zap.Stringer("to", g.ctx.Scene.Current),
		zap.Uint64("frame", g.ctx.Frame),
		zap.Int("fields", len(g.ctx.Form.Fields)),
	)
	return nil
}

func (g *Game) scene(name state.SceneName) (scene.Scene, error) {
	s, ok := g.scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: scene %s is not registered", ErrInvariant, name)
	}
	return s, nil
}
