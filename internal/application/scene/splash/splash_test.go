package splash

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/overworld/internal/application/scene"
)

// pressedKeys reports the given keys as just pressed
type pressedKeys map[ebiten.Key]bool

func (p pressedKeys) IsKeyJustPressed(k ebiten.Key) bool { return p[k] }
func (p pressedKeys) IsClickJustPressed() bool           { return false }

func TestSplash_Idle(t *testing.T) {
	s := New("no access token found", nil, pressedKeys{})

	next, err := s.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, "no access token found", s.Reason())
	assert.Equal(t, "Splash", scene.NameOf(s))
}

func TestSplash_Retry(t *testing.T) {
	retried := New("again", nil, pressedKeys{})
	s := New("denied", func() scene.Scene { return retried }, pressedKeys{ebiten.KeyR: true})

	next, err := s.Update(1.0 / 60.0)

	require.NoError(t, err)
	assert.Same(t, retried, next)
}

func TestSplash_Quit(t *testing.T) {
	s := New("denied", nil, pressedKeys{ebiten.KeyEscape: true, ebiten.KeyR: true})

	_, err := s.Update(1.0 / 60.0)

	assert.ErrorIs(t, err, ebiten.Termination)
}
