package replay

import "github.com/younwookim/platformer/internal/application/input"

// Version is written into new recordings.
const Version = "1.0"

// FrameInput records input state for a single frame. Each button has a
// level (held) and an edge (pressed) flag; typed text and the backspace
// edge are kept so text edits replay too.
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	A  bool `json:"a,omitempty"`  // A held
	AP bool `json:"ap,omitempty"` // A pressed
	B  bool `json:"b,omitempty"`  // B held
	BP bool `json:"bp,omitempty"` // B pressed
	U  bool `json:"u,omitempty"`  // Up held
	UP bool `json:"up,omitempty"` // Up pressed
	D  bool `json:"d,omitempty"`  // Down held
	DP bool `json:"dp,omitempty"` // Down pressed
	L  bool `json:"l,omitempty"`  // Left held
	LP bool `json:"lp,omitempty"` // Left pressed
	R  bool `json:"r,omitempty"`  // Right held
	RP bool `json:"rp,omitempty"` // Right pressed

	C  string `json:"c,omitempty"`  // Typed characters
	BS bool   `json:"bs,omitempty"` // Backspace pressed
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

type buttonFlags struct {
	button  input.Button
	held    *bool
	pressed *bool
}

func (fi *FrameInput) flags() []buttonFlags {
	return []buttonFlags{
		{input.A, &fi.A, &fi.AP},
		{input.B, &fi.B, &fi.BP},
		{input.Up, &fi.U, &fi.UP},
		{input.Down, &fi.D, &fi.DP},
		{input.Left, &fi.L, &fi.LP},
		{input.Right, &fi.R, &fi.RP},
	}
}

// Capture records the state of src as frame f.
func Capture(f int, src input.Source) FrameInput {
	fi := FrameInput{F: f}
	for _, bf := range fi.flags() {
		*bf.held = src.Held(bf.button)
		*bf.pressed = src.Pressed(bf.button)
	}
	if ts, ok := src.(input.TextSource); ok {
		chars, backspace := ts.Text()
		fi.C, fi.BS = string(chars), backspace
	}
	return fi
}

// Snapshot turns the recorded flags back into an input source.
func (fi FrameInput) Snapshot() input.Snapshot {
	var s input.Snapshot
	for _, bf := range fi.flags() {
		switch {
		case *bf.pressed:
			s.Press(bf.button)
		case *bf.held:
			s.Hold(bf.button)
		}
	}
	s.Type(fi.C)
	if fi.BS {
		s.Backspace()
	}
	return s
}
