package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/application/input"
	"github.com/younwookim/platformer/internal/application/replay"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeReplay records a session that presses A on the first frame and then
// idles for idle frames.
func writeReplay(t *testing.T, idle int) string {
	t.Helper()
	rec := replay.NewRecorder("Title")

	var press input.Snapshot
	press.Press(input.A)
	rec.RecordFrame(press)
	for i := 0; i < idle; i++ {
		rec.RecordFrame(input.Snapshot{})
	}

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, rec.Save(path))
	return path
}

func TestLoadConfig(t *testing.T) {
	embedded, err := loadConfig("")
	require.NoError(t, err)

	fromDir, err := loadConfig("configs")
	require.NoError(t, err)

	assert.Equal(t, fromDir, embedded)
	assert.Equal(t, 256, embedded.Display.CanvasWidth)
}

func TestLoadConfig_MissingDir(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "platformer dev")
}

func TestReplayCmd(t *testing.T) {
	tests := []struct {
		name     string
		idle     int
		expected []string
	}{
		{
			name:     "transition still pending",
			idle:     10,
			expected: []string{"frames: 11 of 11", "scene: Title", "mode: none"},
		},
		{
			name:     "options reached",
			idle:     70,
			expected: []string{"frames: 71 of 71", "scene: OptionsSetup", "mode: FreePlay", "rounds: "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "replay", writeReplay(t, tt.idle))
			require.NoError(t, err)
			for _, s := range tt.expected {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestReplayCmd_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "replay", filepath.Join(t.TempDir(), "none.json"))
		assert.Error(t, err)
	})

	t.Run("no argument", func(t *testing.T) {
		_, err := execute(t, "replay")
		assert.Error(t, err)
	})

	t.Run("unknown start scene", func(t *testing.T) {
		_, err := execute(t, "replay", "--start", "Overwold", writeReplay(t, 1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `did you mean "Overworld"`)
	})
}

func TestRunGame_UnknownBackend(t *testing.T) {
	err := runGame(&options{backend: "sdl"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}

// session builds a recording frame by frame.
type session struct {
	rec *replay.Recorder
}

func (s *session) press(b input.Button) {
	var snap input.Snapshot
	snap.Press(b)
	s.rec.RecordFrame(snap)
}

func (s *session) typeText(text string) {
	var snap input.Snapshot
	snap.Type(text)
	s.rec.RecordFrame(snap)
}

func (s *session) idle(n int) {
	for i := 0; i < n; i++ {
		s.rec.RecordFrame(input.Snapshot{})
	}
}

func TestReplayCmd_TypedName(t *testing.T) {
	s := &session{rec: replay.NewRecorder("Title")}
	s.press(input.A)
	s.idle(70)
	for i := 0; i < 3; i++ {
		s.press(input.Down)
	}
	s.press(input.A)
	s.idle(60)

	s.typeText("q")
	s.press(input.B) // typed into the name field, not a cancel
	s.press(input.Down)
	s.press(input.Down)
	s.press(input.A)
	s.idle(60)

	path := filepath.Join(t.TempDir(), "typed.json")
	require.NoError(t, s.rec.Save(path))

	out, err := execute(t, "replay", path)
	require.NoError(t, err)
	assert.Contains(t, out, "scene: Overworld")
	assert.Contains(t, out, "player 1: Q Human")
}
