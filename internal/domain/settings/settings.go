// Package settings holds the game data chosen through the menu flow:
// the selected mode, its settings and the configured player roster.
package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrNoModeSelected is returned when settings are edited before a mode exists.
	ErrNoModeSelected = errors.New("no game mode selected")
	// ErrUnknownSetting is returned for a key the selected mode does not have.
	ErrUnknownSetting = errors.New("unknown setting")
	// ErrPlayerIndex is returned when a roster slot is outside the player count.
	ErrPlayerIndex = errors.New("player index out of range")
)

// Setting keys shared by form fields and UpdateSettings commands.
const (
	KeyRounds        = "rounds"
	KeyStartingLevel = "startingLevel"
	KeyPlayers       = "players"
)

// Player count bounds for every mode.
const (
	MinPlayers = 1
	MaxPlayers = 8
)

// Mode identifies a game mode.
type Mode int

const (
	ModeNone Mode = iota
	ModeFreePlay
	ModeStory
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModeFreePlay:
		return "FreePlay"
	case ModeStory:
		return "Story"
	default:
		return "Unknown"
	}
}

// ParseMode maps a mode name back to a Mode. Unknown names yield ModeNone.
func ParseMode(s string) Mode {
	switch s {
	case "FreePlay":
		return ModeFreePlay
	case "Story":
		return ModeStory
	default:
		return ModeNone
	}
}

// Game is the selected mode with its settings. A nil Game means no mode
// has been chosen yet.
type Game interface {
	Mode() Mode
	// Set writes a single setting. Values are clamped to the setting's range.
	Set(key string, value int) error
	// Get reads a single setting.
	Get(key string) (int, bool)
	PlayerCount() int
	Roster() []Player
	SetPlayer(index int, p Player) error
}

// New returns the default settings for mode, or nil for ModeNone.
func New(mode Mode) Game {
	switch mode {
	case ModeFreePlay:
		return &FreePlay{Rounds: 10, StartingLevel: 1, Players: 1}
	case ModeStory:
		return &Story{Players: 1}
	default:
		return nil
	}
}

// Update applies a batch of setting values. It fails when g is nil.
func Update(g Game, values map[string]int) error {
	if g == nil {
		return ErrNoModeSelected
	}
	for key, value := range values {
		if err := g.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// FreePlay settings
type FreePlay struct {
	Rounds        int
	StartingLevel int
	Players       int
	roster        roster
}

func (f *FreePlay) Mode() Mode { return ModeFreePlay }

func (f *FreePlay) Set(key string, value int) error {
	switch key {
	case KeyRounds:
		f.Rounds = clamp(value, 1, 100)
	case KeyStartingLevel:
		f.StartingLevel = clamp(value, 1, 100)
	case KeyPlayers:
		f.Players = clamp(value, MinPlayers, MaxPlayers)
		f.roster.truncate(f.Players)
	default:
		return fmt.Errorf("%w: %q for %s", ErrUnknownSetting, key, f.Mode())
	}
	return nil
}

func (f *FreePlay) Get(key string) (int, bool) {
	switch key {
	case KeyRounds:
		return f.Rounds, true
	case KeyStartingLevel:
		return f.StartingLevel, true
	case KeyPlayers:
		return f.Players, true
	}
	return 0, false
}

func (f *FreePlay) PlayerCount() int { return f.Players }
func (f *FreePlay) Roster() []Player { return f.roster.players() }
func (f *FreePlay) SetPlayer(i int, p Player) error {
	if p.Level == 0 {
		p.Level = f.StartingLevel
	}
	return f.roster.set(i, f.Players, p)
}

// Story settings
type Story struct {
	Players int
	roster  roster
}

func (s *Story) Mode() Mode { return ModeStory }

func (s *Story) Set(key string, value int) error {
	if key != KeyPlayers {
		return fmt.Errorf("%w: %q for %s", ErrUnknownSetting, key, s.Mode())
	}
	s.Players = clamp(value, MinPlayers, MaxPlayers)
	s.roster.truncate(s.Players)
	return nil
}

func (s *Story) Get(key string) (int, bool) {
	if key == KeyPlayers {
		return s.Players, true
	}
	return 0, false
}

func (s *Story) PlayerCount() int { return s.Players }
func (s *Story) Roster() []Player { return s.roster.players() }
func (s *Story) SetPlayer(i int, p Player) error {
	if p.Level == 0 {
		p.Level = 1
	}
	return s.roster.set(i, s.Players, p)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
