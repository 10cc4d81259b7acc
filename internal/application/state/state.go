// Package state holds the game context shared by the render phase and the
// reducer: the scene state machine, the active form and the game data.
package state

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/younwookim/platformer/internal/application/form"
	"github.com/younwookim/platformer/internal/domain/settings"
)

// SceneName identifies a scene of the menu flow
type SceneName int

const (
	SceneTitle SceneName = iota
	SceneOptionsSetup
	ScenePlayerSetup
	SceneOverworld
)

// SceneNames lists every scene in flow order.
var SceneNames = []SceneName{SceneTitle, SceneOptionsSetup, ScenePlayerSetup, SceneOverworld}

// String returns the string representation of the scene name
func (s SceneName) String() string {
	switch s {
	case SceneTitle:
		return "Title"
	case SceneOptionsSetup:
		return "OptionsSetup"
	case ScenePlayerSetup:
		return "PlayerSetup"
	case SceneOverworld:
		return "Overworld"
	default:
		return "Unknown"
	}
}

// ParseSceneName resolves a scene by name, ignoring case. Unknown names
// get the closest known name suggested in the error.
func ParseSceneName(name string) (SceneName, error) {
	best, bestDist := SceneTitle, -1
	for _, s := range SceneNames {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(s.String()))
		if bestDist < 0 || d < bestDist {
			best, bestDist = s, d
		}
	}
	if bestDist >= 0 && bestDist <= len(best.String())/2 {
		return 0, fmt.Errorf("unknown scene %q (did you mean %q?)", name, best.String())
	}
	return 0, fmt.Errorf("unknown scene %q", name)
}

// Context is the whole mutable game state. The reducer is its only writer.
type Context struct {
	Form  form.Context
	Scene SceneContext
	Game  settings.Game
	// Frame counts loop iterations since start.
	Frame uint64
}

// New returns the context for a fresh start on the given scene.
func New(start SceneName) *Context {
	return &Context{
		Scene: SceneContext{Current: start},
	}
}
