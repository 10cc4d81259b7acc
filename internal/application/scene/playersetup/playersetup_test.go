package playersetup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/application/command"
	"github.com/younwookim/platformer/internal/application/form"
	"github.com/younwookim/platformer/internal/application/gfx"
	"github.com/younwookim/platformer/internal/application/input"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/settings"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

func seatContext(t *testing.T, seat int) *state.Context {
	t.Helper()
	ctx := state.New(state.ScenePlayerSetup)
	ctx.Game = settings.New(settings.ModeFreePlay)
	require.NoError(t, settings.Update(ctx.Game, map[string]int{settings.KeyPlayers: 3}))
	ctx.Scene.Params = state.Params{ParamPlayer: seat}
	return ctx
}

func render(s *PlayerSetup, ctx *state.Context, snap input.Snapshot) (*gfx.DisplayList, []command.Command) {
	dl := &gfx.DisplayList{}
	q := command.NewQueue(4)
	p := gfx.NewPainter(dl, ctx.Frame)
	in := input.NewDebouncer()
	in.Begin(snap, ctx.Frame)
	s.Render(&scene.Frame{
		Ctx:      ctx,
		Painter:  p,
		Form:     &form.Renderer{Painter: p, Input: in, Font: gfx.Small},
		Input:    in,
		Dispatch: q,
		Width:    256,
		Height:   256,
	})
	return dl, q.Drain()
}

func TestPlayerSetup_SeatComesFromContext(t *testing.T) {
	s := New(config.Default())
	first, last := seatContext(t, 0), seatContext(t, 2)
	require.NoError(t, s.OnEnter(first))
	require.NoError(t, s.OnEnter(last))

	dl, _ := render(s, first, input.Snapshot{})
	assert.True(t, dl.Contains("PLAYER 1"))
	assert.False(t, dl.Contains("PLAYER 3"))

	first.Form.TabIndex = 2
	var confirm input.Snapshot
	confirm.Press(input.A)
	_, cmds := render(s, first, confirm)

	require.Len(t, cmds, 2)
	assert.Equal(t, command.SetPlayer{Index: 0, Player: settings.Player{Kind: settings.Human}}, cmds[0])
	assert.Equal(t, command.SwitchScene{
		To:     state.ScenePlayerSetup,
		Params: state.Params{ParamPlayer: 1},
		Delay:  config.Default().Choreography.SetupExitDelay(3),
	}, cmds[1])
}

func TestPlayerSetup_OnEnterRejectsSeat(t *testing.T) {
	tests := []struct {
		name   string
		params state.Params
	}{
		{"missing", state.Params{}},
		{"negative", state.Params{ParamPlayer: -1}},
		{"past the player count", state.Params{ParamPlayer: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := seatContext(t, 0)
			ctx.Scene.Params = tt.params
			assert.ErrorIs(t, New(config.Default()).OnEnter(ctx), ErrPlayerParam)
		})
	}
}
