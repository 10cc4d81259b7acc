package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/application/state"
)

func TestLoader_Load(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 256, cfg.Display.CanvasWidth)
	assert.Equal(t, 256, cfg.Display.CanvasHeight)
	assert.Equal(t, 2, cfg.Display.Scale)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 7, cfg.Input.Throttle)
	assert.Equal(t, 64, cfg.Choreography.TitleExitDelay)
	assert.Equal(t, -32, cfg.Choreography.MarginLeft)

	start, err := cfg.Start()
	require.NoError(t, err)
	assert.Equal(t, state.SceneTitle, start)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		FileName: {Data: []byte("input:\n  throttle: 3\nstartScene: overworld\n")},
	}

	cfg, err := NewFSLoader(fsys, "mem").Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Input.Throttle)
	assert.Equal(t, 256, cfg.Display.CanvasWidth)
	assert.Equal(t, 16, cfg.Choreography.TitleBlinkExiting)

	start, err := cfg.Start()
	require.NoError(t, err)
	assert.Equal(t, state.SceneOverworld, start)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		invalid bool
		message string
	}{
		{"missing file", fstest.MapFS{}, false, "failed to read"},
		{"bad yaml", fstest.MapFS{FileName: {Data: []byte("display: [1, 2")}}, false, "failed to parse"},
		{"zero canvas", fstest.MapFS{FileName: {Data: []byte("display:\n  canvasWidth: 0\n")}}, true, "canvas"},
		{"negative throttle", fstest.MapFS{FileName: {Data: []byte("input:\n  throttle: -1\n")}}, true, "throttle"},
		{"start scene typo", fstest.MapFS{FileName: {Data: []byte("startScene: Overwold\n")}}, true, `did you mean "Overworld"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "mem").Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Title", cfg.StartScene)
}

func TestChoreography_SetupExitDelay(t *testing.T) {
	c := Default().Choreography

	assert.Equal(t, 56, c.SetupExitDelay(4))
	assert.Equal(t, 40, c.SetupExitDelay(2))
	assert.Equal(t, 32, c.SetupExitDelay(0))
}
