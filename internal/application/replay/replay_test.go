package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/domain/entity"
)

func TestFrameInput_OmitsIdleFields(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 7, L: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":7,"l":true}`, string(data))
}

func TestFrameInput_Empty(t *testing.T) {
	assert.True(t, FrameInput{F: 3}.Empty())
	assert.False(t, FrameInput{F: 3, Inv: true}.Empty())
}

func TestFromIntents_RoundTrip(t *testing.T) {
	intents := []system.Intent{
		system.DismissIntent{},
		system.InteractIntent{},
		system.ToggleInventoryIntent{},
		system.MoveIntent{Direction: entity.DirUp},
		system.MoveIntent{Direction: entity.DirRight},
	}

	fi := FromIntents(4, intents)

	assert.Equal(t, FrameInput{F: 4, U: true, R: true, I: true, Inv: true, C: true}, fi)
	assert.Equal(t, intents, fi.Intents())
}

func TestFrameInput_IntentsOrder(t *testing.T) {
	fi := FrameInput{R: true, D: true, L: true, U: true}

	got := fi.Intents()

	require.Len(t, got, 4)
	assert.Equal(t, system.MoveIntent{Direction: entity.DirUp}, got[0])
	assert.Equal(t, system.MoveIntent{Direction: entity.DirDown}, got[1])
	assert.Equal(t, system.MoveIntent{Direction: entity.DirLeft}, got[2])
	assert.Equal(t, system.MoveIntent{Direction: entity.DirRight}, got[3])
}

func TestRecorder_SkipsIdleFrames(t *testing.T) {
	rec := NewRecorder("demo")

	rec.RecordFrame(nil)
	rec.RecordFrame([]system.Intent{system.MoveIntent{Direction: entity.DirLeft}})
	rec.RecordFrame(nil)

	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, "demo", data.Stage)
	assert.Equal(t, 3, rec.FrameCount())
	require.Len(t, data.Frames, 1)
	assert.Equal(t, FrameInput{F: 1, L: true}, data.Frames[0])
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder("demo")
	rec.RecordFrame(nil)
	rec.Stop()
	rec.RecordFrame([]system.Intent{system.InteractIntent{}})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 1, rec.FrameCount())
	assert.Empty(t, rec.Data().Frames)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder("demo")
	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder("demo")
	rec.RecordFrame([]system.Intent{system.MoveIntent{Direction: entity.DirDown}})
	rec.RecordFrame(nil)
	rec.RecordFrame([]system.Intent{system.InteractIntent{}})

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data(), *loaded)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version":"1.0","length":1}`), 0o644))
	_, err = LoadReplay(old)
	assert.ErrorContains(t, err, "unsupported replay version")
}

func TestReplayer_Playback(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Stage:   "demo",
		Length:  4,
		Frames: []FrameInput{
			{F: 1, U: true},
			{F: 3, I: true},
		},
	}
	r := NewReplayer(data)
	assert.Equal(t, "demo", r.Stage())
	assert.Equal(t, 4, r.TotalFrames())

	var played [][]system.Intent
	for {
		intents, ok := r.Next()
		if !ok {
			break
		}
		played = append(played, intents)
	}

	require.Len(t, played, 4)
	assert.Empty(t, played[0])
	assert.Equal(t, []system.Intent{system.MoveIntent{Direction: entity.DirUp}}, played[1])
	assert.Empty(t, played[2])
	assert.Equal(t, []system.Intent{system.InteractIntent{}}, played[3])
	assert.True(t, r.Done())
	assert.Equal(t, 4, r.CurrentFrame())

	r.Reset()
	assert.False(t, r.Done())
	assert.Equal(t, 0, r.CurrentFrame())
}

func TestReplayer_MatchesRecorder(t *testing.T) {
	frames := [][]system.Intent{
		{system.MoveIntent{Direction: entity.DirLeft}},
		nil,
		nil,
		{system.ToggleInventoryIntent{}, system.MoveIntent{Direction: entity.DirUp}},
		{system.DismissIntent{}},
	}

	rec := NewRecorder("demo")
	for _, f := range frames {
		rec.RecordFrame(f)
	}

	r := NewReplayer(rec.Data())
	for i, want := range frames {
		got, ok := r.Next()
		require.True(t, ok, "frame %d", i)
		if len(want) == 0 {
			assert.Empty(t, got, "frame %d", i)
			continue
		}
		assert.Equal(t, want, got, "frame %d", i)
	}
	_, ok := r.Next()
	assert.False(t, ok)
}
