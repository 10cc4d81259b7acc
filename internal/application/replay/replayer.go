package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/input"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (input.Snapshot, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.Snapshot{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Snapshot(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Scene returns the scene the recording started on
func (r *Replayer) Scene() string {
	return r.data.Scene
}

// Stepper advances a game by one frame. Hosts and the replayer drive a game
// through it.
type Stepper interface {
	Step(surface gfx.Surface, src input.Source) error
}

// Run feeds every remaining frame into g, drawing onto surface. It stops at
// the first error and returns the number of frames stepped.
func (r *Replayer) Run(g Stepper, surface gfx.Surface) (int, error) {
	n := 0
	for {
		snap, ok := r.Next()
		if !ok {
			return n, nil
		}
		if err := g.Step(surface, snap); err != nil {
			return n, fmt.Errorf("replay frame %d: %w", r.CurrentFrame()-1, err)
		}
		n++
	}
}
