//go:build raylib

// Package raylibhost runs the menu game in a raylib window. It is built
// only with the raylib tag since raylib needs cgo and system libraries.
package raylibhost

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/input"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/logging"
)

// Available reports whether this binary was built with raylib support.
const Available = true

// DefaultKeys maps buttons to keys: Z confirms, X cancels, arrows move.
var DefaultKeys = map[input.Button]int32{
	input.A:     rl.KeyZ,
	input.B:     rl.KeyX,
	input.Up:    rl.KeyUp,
	input.Down:  rl.KeyDown,
	input.Left:  rl.KeyLeft,
	input.Right: rl.KeyRight,
}

// Keyboard is an input.Source backed by raylib's key state. Typed text is
// drained from raylib's char queue.
type Keyboard struct {
	Keys  map[input.Button]int32
	chars []rune
}

func (k *Keyboard) Pressed(b input.Button) bool {
	key, ok := k.Keys[b]
	return ok && rl.IsKeyPressed(key)
}

func (k *Keyboard) Held(b input.Button) bool {
	key, ok := k.Keys[b]
	return ok && rl.IsKeyDown(key)
}

func (k *Keyboard) Text() ([]rune, bool) {
	k.chars = k.chars[:0]
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		k.chars = append(k.chars, rune(ch))
	}
	return k.chars, rl.IsKeyPressed(rl.KeyBackspace)
}

// Screen draws with raylib primitives inside BeginDrawing/EndDrawing.
type Screen struct{}

func (Screen) Clear(c color.RGBA) {
	rl.ClearBackground(c)
}

func (Screen) Rect(x, y, w, h int, c color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), c)
}

func (Screen) Glyph(f gfx.Font, r rune, x, y int, c color.RGBA) {
	m := gfx.MetricsOf(f)
	rl.DrawText(string(r), int32(x), int32(y), int32(m.Height), c)
}

// Run opens the window and blocks until it is closed or Escape is pressed.
// Each frame is stepped into a display list and drawn through a camera that
// scales the canvas to the window.
func Run(g replay.Stepper, cfg *config.Config, recorder *replay.Recorder) error {
	d := cfg.Display
	rl.InitWindow(int32(d.CanvasWidth*d.Scale), int32(d.CanvasHeight*d.Scale), d.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(d.Framerate))

	logging.Info("Starting raylib host",
		zap.Int("width", d.CanvasWidth),
		zap.Int("height", d.CanvasHeight),
		zap.Int("fps", d.Framerate),
	)

	keyboard := &Keyboard{Keys: DefaultKeys}
	camera := rl.Camera2D{Zoom: float32(d.Scale)}
	var list gfx.DisplayList

	for !rl.WindowShouldClose() {
		var snap input.Snapshot
		if recorder != nil {
			snap = recorder.RecordFrame(keyboard)
		} else {
			snap = input.Capture(keyboard)
		}

		list.Reset()
		if err := g.Step(&list, snap); err != nil {
			return err
		}

		rl.BeginDrawing()
		rl.BeginMode2D(camera)
		list.Replay(Screen{})
		rl.EndMode2D()
		rl.EndDrawing()
	}
	return nil
}
