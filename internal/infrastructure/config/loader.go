package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/platformer/internal/application/state"
)

// FileName is the config file a Loader reads.
const FileName = "game.yaml"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads game.yaml over the defaults and validates the result. Keys the
// file leaves out keep their default values.
func (l *Loader) Load() (*Config, error) {
	data, err := fs.ReadFile(l.fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", l.basePath, FileName, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configs the game cannot run with.
func (c *Config) Validate() error {
	d := c.Display
	switch {
	case d.CanvasWidth <= 0 || d.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalid, d.CanvasWidth, d.CanvasHeight)
	case d.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %d", ErrInvalid, d.Scale)
	case d.Framerate <= 0:
		return fmt.Errorf("%w: framerate must be positive, got %d", ErrInvalid, d.Framerate)
	case c.Input.Throttle < 0:
		return fmt.Errorf("%w: throttle must not be negative, got %d", ErrInvalid, c.Input.Throttle)
	case c.Choreography.FieldDelay < 0:
		return fmt.Errorf("%w: fieldDelay must not be negative, got %d", ErrInvalid, c.Choreography.FieldDelay)
	}
	if _, err := c.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Start resolves StartScene.
func (c *Config) Start() (state.SceneName, error) {
	return state.ParseSceneName(c.StartScene)
}
