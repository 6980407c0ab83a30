package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	log := New(Options{FilePath: path})
	log.Infow("stage loaded", "stage", "demo")
	Sync(log)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "stage loaded")
	assert.Contains(t, string(data), "demo")
}

func TestNew_Level(t *testing.T) {
	assert.False(t, New(Options{}).Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, New(Options{Debug: true}).Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestSync_Nil(t *testing.T) {
	assert.NotPanics(t, func() { Sync(nil) })
}
