package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/overworld/internal/domain/entity"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateLoading, "Loading"},
		{StateSplash, "Splash"},
		{StatePlaying, "Playing"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateLoading)
	assert.Equal(t, GameState(1), StateSplash)
	assert.Equal(t, GameState(2), StatePlaying)
}

func TestNewSession(t *testing.T) {
	stage := &entity.Stage{Width: 4, Height: 4, SpawnX: 2, SpawnY: 3, Facing: entity.DirLeft}

	s := NewSession(stage)

	require.NotNil(t, s.Avatar)
	assert.Equal(t, 2, s.Avatar.X)
	assert.Equal(t, 3, s.Avatar.Y)
	assert.Equal(t, entity.DirLeft, s.Avatar.Facing)
	assert.False(t, s.MovementDisabled)
}

func TestSession_Panels(t *testing.T) {
	s := NewSession(&entity.Stage{})

	s.OpenDialogue("hi")
	assert.Equal(t, Dialogue{Show: true, Context: "hi"}, s.Dialogue)
	s.CloseDialogue()
	assert.Equal(t, Dialogue{}, s.Dialogue)

	s.ShowInventory()
	assert.True(t, s.Inventory.Show)
	assert.True(t, s.MovementDisabled)
	s.HideInventory()
	assert.False(t, s.Inventory.Show)
	assert.False(t, s.MovementDisabled)
}
