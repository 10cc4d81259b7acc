package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeNone, "None"},
		{ModeFreePlay, "FreePlay"},
		{ModeStory, "Story"},
		{Mode(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.String())
			if tt.mode != Mode(99) {
				assert.Equal(t, tt.mode, ParseMode(tt.expected))
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	assert.Nil(t, New(ModeNone))

	fp, ok := New(ModeFreePlay).(*FreePlay)
	require.True(t, ok)
	assert.Equal(t, 10, fp.Rounds)
	assert.Equal(t, 1, fp.StartingLevel)
	assert.Equal(t, 1, fp.Players)

	story, ok := New(ModeStory).(*Story)
	require.True(t, ok)
	assert.Equal(t, 1, story.Players)
}

func TestUpdate(t *testing.T) {
	t.Run("fails without a mode", func(t *testing.T) {
		err := Update(nil, map[string]int{KeyRounds: 5})
		assert.ErrorIs(t, err, ErrNoModeSelected)
	})

	t.Run("writes and clamps free play settings", func(t *testing.T) {
		g := New(ModeFreePlay)
		err := Update(g, map[string]int{KeyRounds: 250, KeyStartingLevel: 7, KeyPlayers: 0})
		require.NoError(t, err)

		rounds, _ := g.Get(KeyRounds)
		level, _ := g.Get(KeyStartingLevel)
		assert.Equal(t, 100, rounds)
		assert.Equal(t, 7, level)
		assert.Equal(t, MinPlayers, g.PlayerCount())
	})

	t.Run("story rejects free play keys", func(t *testing.T) {
		err := Update(New(ModeStory), map[string]int{KeyRounds: 3})
		assert.ErrorIs(t, err, ErrUnknownSetting)
	})
}

func TestRoster(t *testing.T) {
	g := New(ModeFreePlay)
	require.NoError(t, g.Set(KeyPlayers, 3))
	require.NoError(t, g.Set(KeyStartingLevel, 4))

	require.NoError(t, g.SetPlayer(2, Player{Kind: Human, Name: "ZED"}))

	roster := g.Roster()
	require.Len(t, roster, 3)
	assert.Equal(t, "PLAYER 1", roster[0].Name)
	assert.Equal(t, CPU, roster[1].Kind)
	assert.Equal(t, "ZED", roster[2].Name)
	assert.Equal(t, 4, roster[2].Level)

	t.Run("rejects seats beyond the player count", func(t *testing.T) {
		assert.ErrorIs(t, g.SetPlayer(3, Player{}), ErrPlayerIndex)
		assert.ErrorIs(t, g.SetPlayer(-1, Player{}), ErrPlayerIndex)
	})

	t.Run("shrinking the player count truncates the roster", func(t *testing.T) {
		require.NoError(t, g.Set(KeyPlayers, 1))
		assert.Len(t, g.Roster(), 1)
	})

	t.Run("roster is a copy", func(t *testing.T) {
		r := g.Roster()
		r[0].Name = "CHANGED"
		assert.Equal(t, "PLAYER 1", g.Roster()[0].Name)
	})
}

func TestPlayerKind_String(t *testing.T) {
	assert.Equal(t, "Human", Human.String())
	assert.Equal(t, "CPU", CPU.String())
	assert.Equal(t, "Unknown", PlayerKind(7).String())
}
