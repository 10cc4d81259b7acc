package state

import (
	"fmt"
	"strconv"
)

// Params is the loosely typed payload handed to a scene on entry.
type Params map[string]any

// Int reads an integer parameter. Numeric strings are accepted.
func (p Params) Int(key string) (int, bool) {
	switch v := p[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	default:
		return 0, false
	}
}

// String reads a string parameter.
func (p Params) String(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// Clone returns a shallow copy; nil stays nil.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Transition is a scene change waiting for its exit delay to run out.
type Transition struct {
	To     SceneName
	Params Params
}

// SceneContext is the scene state machine.
type SceneContext struct {
	Current SceneName
	Next    *Transition
	// Duration counts FrameEnds since Current became active.
	Duration int
	// EnteredAt is the frame counter value at activation.
	EnteredAt uint64
	// ExitDelay counts the FrameEnds left before Next commits.
	ExitDelay int
	// ArmedDelay is the exit delay Next was requested with.
	ArmedDelay int
	Params     Params
}

// Switch arms a transition to another scene. A transition that is already
// pending wins: the request is dropped and Switch returns false.
func (s *SceneContext) Switch(to SceneName, params Params, delay int) bool {
	if s.Next != nil {
		return false
	}
	if delay < 0 {
		delay = 0
	}
	s.Next = &Transition{To: to, Params: params.Clone()}
	s.ExitDelay = delay
	s.ArmedDelay = delay
	return true
}

// Tick is the once-per-frame bookkeeping. When a transition is pending and
// its delay has run out it commits and returns true; otherwise the delay
// counts down and Duration grows.
//
// A transition armed with delay D leaves Current untouched for D ticks and
// commits on tick D+1.
func (s *SceneContext) Tick(frame uint64) bool {
	if s.Next != nil && s.ExitDelay == 0 {
		s.Duration = 0
		s.EnteredAt = frame
		s.Current = s.Next.To
		s.Params = s.Next.Params
		s.Next = nil
		s.ArmedDelay = 0
		return true
	}
	if s.ExitDelay > 0 {
		s.ExitDelay--
	}
	s.Duration++
	return false
}

// Exiting reports whether a transition is pending.
func (s *SceneContext) Exiting() bool {
	return s.Next != nil
}

// Progress is how far the pending transition is through its exit delay,
// from 0 when armed to 1 when it is about to commit. Without a pending
// transition it is 0.
func (s *SceneContext) Progress() float64 {
	if s.Next == nil {
		return 0
	}
	if s.ArmedDelay == 0 {
		return 1
	}
	return float64(s.ArmedDelay-s.ExitDelay) / float64(s.ArmedDelay)
}

// Time is the animation clock of the scene: the remaining exit delay while
// leaving, otherwise the frames spent in the scene.
func (s *SceneContext) Time() int {
	if s.Next != nil {
		return s.ExitDelay
	}
	return s.Duration
}

func (s *SceneContext) String() string {
	if s.Next != nil {
		return fmt.Sprintf("%s -> %s (exit in %d)", s.Current, s.Next.To, s.ExitDelay)
	}
	return fmt.Sprintf("%s (%d frames)", s.Current, s.Duration)
}
