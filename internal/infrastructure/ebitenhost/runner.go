// Package ebitenhost runs the menu game in an ebiten window.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/input"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/logging"
)

// Runner implements ebiten.Game. Update steps the game into a display list
// and Draw replays it onto the screen.
type Runner struct {
	game     replay.Stepper
	keyboard input.Source
	recorder *replay.Recorder
	list     gfx.DisplayList
	screen   *Screen
	width    int
	height   int
}

// NewRunner wraps g. recorder may be nil.
func NewRunner(g replay.Stepper, cfg *config.Config, recorder *replay.Recorder) *Runner {
	return &Runner{
		game:     g,
		keyboard: NewKeyboard(),
		recorder: recorder,
		screen:   NewScreen(),
		width:    cfg.Display.CanvasWidth,
		height:   cfg.Display.CanvasHeight,
	}
}

// Update steps the game. Escape ends the loop.
func (r *Runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var snap input.Snapshot
	if r.recorder != nil {
		snap = r.recorder.RecordFrame(r.keyboard)
	} else {
		snap = input.Capture(r.keyboard)
	}

	r.list.Reset()
	return r.game.Step(&r.list, snap)
}

// Draw replays the frame recorded by the last Update.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.screen.Target(screen)
	r.list.Replay(r.screen)
}

// Layout returns the canvas dimensions.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.width, r.height
}

// Run opens the window and blocks until the game ends. A normal quit
// returns nil.
func Run(g replay.Stepper, cfg *config.Config, recorder *replay.Recorder) error {
	d := cfg.Display
	ebiten.SetWindowSize(d.CanvasWidth*d.Scale, d.CanvasHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)

	logging.Info("Starting ebiten host",
		zap.Int("width", d.CanvasWidth),
		zap.Int("height", d.CanvasHeight),
		zap.Int("tps", d.Framerate),
	)
	if err := ebiten.RunGame(NewRunner(g, cfg, recorder)); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
