// Package menu assembles the menu flow: every scene wired to one config.
package menu

import (
	"github.com/younwookim/platformer/internal/application/form"
	"github.com/younwookim/platformer/internal/application/game"
	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/scene/options"
	"github.com/younwookim/platformer/internal/application/scene/overworld"
	"github.com/younwookim/platformer/internal/application/scene/playersetup"
	"github.com/younwookim/platformer/internal/application/scene/title"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Scenes returns the registry of every menu scene.
func Scenes(cfg *config.Config) scene.Registry {
	return scene.NewRegistry(
		title.New(cfg),
		options.New(cfg),
		playersetup.New(cfg),
		overworld.New(cfg),
	)
}

// New creates a game on the config's start scene. start overrides it when
// non-empty. editor may be nil.
func New(cfg *config.Config, start string, editor form.TextEditor) (*game.Game, error) {
	name, err := cfg.Start()
	if start != "" {
		name, err = state.ParseSceneName(start)
	}
	if err != nil {
		return nil, err
	}
	return game.New(Scenes(cfg), game.Options{
		Width:    cfg.Display.CanvasWidth,
		Height:   cfg.Display.CanvasHeight,
		Throttle: cfg.Input.Throttle,
		Start:    name,
		Font:     gfx.Small,
		Editor:   editor,
	})
}
