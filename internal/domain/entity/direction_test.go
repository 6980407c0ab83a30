package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection_SheetRow(t *testing.T) {
	// Row order is a contract with the sprite sheet asset
	assert.Equal(t, 0, DirRight.SheetRow())
	assert.Equal(t, 1, DirLeft.SheetRow())
	assert.Equal(t, 2, DirUp.SheetRow())
	assert.Equal(t, 3, DirDown.SheetRow())
}

func TestDirection_String(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{DirRight, "RIGHT"},
		{DirLeft, "LEFT"},
		{DirUp, "UP"},
		{DirDown, "DOWN"},
		{Direction(9), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dir.String())
		})
	}
}

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirRight, 1, 0},
		{DirLeft, -1, 0},
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{Direction(-1), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		parsed, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	_, err := ParseDirection("up")
	assert.Error(t, err, "parsing is case sensitive")
}

func TestDirection_TextRoundTrip(t *testing.T) {
	var d Direction
	require.NoError(t, d.UnmarshalText([]byte("LEFT")))
	assert.Equal(t, DirLeft, d)

	text, err := DirUp.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "UP", string(text))

	_, err = Direction(7).MarshalText()
	assert.Error(t, err)
	assert.False(t, Direction(7).Valid())
}
