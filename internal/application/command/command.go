// Package command defines the messages the render phase emits and the queue
// that carries them to the reducer.
package command

import (
	"github.com/younwookim/platformer/internal/application/form"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/settings"
)

// Kind names a command type.
type Kind string

const (
	KindFrameEnd       Kind = "FrameEnd"
	KindPrevTabIndex   Kind = "PrevTabIndex"
	KindNextTabIndex   Kind = "NextTabIndex"
	KindSwitchScene    Kind = "SwitchScene"
	KindAdjustField    Kind = "AdjustField"
	KindEditText       Kind = "EditText"
	KindUpdateSettings Kind = "UpdateSettings"
	KindSetPlayer      Kind = "SetPlayer"
)

// Command is a state change requested during render.
type Command interface {
	Kind() Kind
}

// FrameEnd closes a frame; the driver always appends it last.
type FrameEnd struct{}

func (FrameEnd) Kind() Kind { return KindFrameEnd }

// PrevTabIndex moves form focus up.
type PrevTabIndex struct{}

func (PrevTabIndex) Kind() Kind { return KindPrevTabIndex }

// NextTabIndex moves form focus down.
type NextTabIndex struct{}

func (NextTabIndex) Kind() Kind { return KindNextTabIndex }

// SwitchScene arms a scene transition that commits after Delay frames.
type SwitchScene struct {
	To     state.SceneName
	Params state.Params
	Delay  int
}

func (SwitchScene) Kind() Kind { return KindSwitchScene }

// AdjustField steps a Number or Select field by Delta.
type AdjustField struct {
	TabIndex int
	Delta    int
}

func (AdjustField) Kind() Kind { return KindAdjustField }

// EditText applies a text edit to a Text field.
type EditText struct {
	TabIndex int
	Edit     form.TextEdit
}

func (EditText) Kind() Kind { return KindEditText }

// UpdateSettings writes settings of the selected mode.
type UpdateSettings struct {
	Values map[string]int
}

func (UpdateSettings) Kind() Kind { return KindUpdateSettings }

// SetPlayer stores a roster seat of the selected mode.
type SetPlayer struct {
	Index  int
	Player settings.Player
}

func (SetPlayer) Kind() Kind { return KindSetPlayer }
