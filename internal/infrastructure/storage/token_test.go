package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore("")

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, s.Save("abc"))
	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, s.Delete())
	_, err = s.Load()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestGDataStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	s, err := OpenGData("overworld-test")
	if err != nil {
		t.Skipf("app data unavailable: %v", err)
	}

	_, err = s.Load()
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, s.Save(" secret\n"))
	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "secret", token)

	require.NoError(t, s.Delete())
	_, err = s.Load()
	assert.ErrorIs(t, err, ErrNoToken)
}
