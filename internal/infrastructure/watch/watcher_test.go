package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsWatchedFile(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "sheet.png")
	require.NoError(t, os.WriteFile(sheet, []byte("a"), 0o644))

	w, err := NewWatcher(sheet)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(sheet, []byte("b"), 0o644))

	want, err := filepath.Abs(sheet)
	require.NoError(t, err)

	select {
	case got := <-w.Events():
		assert.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the watched file")
	}
}

func TestWatcher_PollEmpty(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "sheet.png"))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	_, ok := w.Poll()
	assert.False(t, ok)
}

func TestWatcher_CloseTwice(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "sheet.png"))
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events()
	assert.False(t, ok, "events channel is closed")
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "sheet.png"))
	assert.Error(t, err)
}

func TestWatcher_ReportsAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "sheet.png")
	require.NoError(t, os.WriteFile(sheet, nil, 0o644))

	w, err := NewWatcher(sheet)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	f, err := os.OpenFile(sheet, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	for _, chunk := range []string{"head", "body", "tail"} {
		_, err := f.WriteString(chunk)
		require.NoError(t, err)
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, f.Close())

	select {
	case <-w.Events():
		data, err := os.ReadFile(sheet)
		require.NoError(t, err)
		assert.Equal(t, "headbodytail", string(data), "reported once the file is complete")
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the watched file")
	}

	time.Sleep(3 * debounce)
	_, ok := w.Poll()
	assert.False(t, ok, "one burst of writes is reported once")
}
