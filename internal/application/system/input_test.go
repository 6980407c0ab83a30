package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/overworld/internal/domain/entity"
	"github.com/younwookim/overworld/internal/infrastructure/config"
)

// fakeKeys is a test double for KeySource
type fakeKeys struct {
	pressed map[ebiten.Key]bool
	click   bool
}

func (f *fakeKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return f.pressed[key]
}

func (f *fakeKeys) IsClickJustPressed() bool {
	return f.click
}

func press(keys ...ebiten.Key) *fakeKeys {
	f := &fakeKeys{pressed: make(map[ebiten.Key]bool)}
	for _, k := range keys {
		f.pressed[k] = true
	}
	return f
}

func createTestKeymap(t *testing.T) *Keymap {
	t.Helper()
	km, err := NewKeymap(config.DefaultKeys())
	require.NoError(t, err)
	return km
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
	}{
		{"ArrowUp", ebiten.KeyArrowUp},
		{"W", ebiten.KeyW},
		{"KeyW", ebiten.KeyW},
		{"Enter", ebiten.KeyEnter},
		{"Space", ebiten.KeySpace},
		{"I", ebiten.KeyI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k)
		})
	}

	_, err := ParseKey("NotAKey")
	assert.Error(t, err)
}

func TestNewKeymap_RejectsUnknownKey(t *testing.T) {
	cfg := config.DefaultKeys()
	cfg.Inventory = []string{"Bogus"}

	_, err := NewKeymap(cfg)
	assert.Error(t, err)
}

func TestInputSystem_Poll(t *testing.T) {
	km := createTestKeymap(t)

	tests := []struct {
		name   string
		source *fakeKeys
		want   []Intent
	}{
		{"nothing pressed", press(), nil},
		{"arrow key", press(ebiten.KeyArrowLeft), []Intent{MoveIntent{Direction: entity.DirLeft}}},
		{"wasd maps to arrows", press(ebiten.KeyD), []Intent{MoveIntent{Direction: entity.DirRight}}},
		{"enter interacts", press(ebiten.KeyEnter), []Intent{InteractIntent{}}},
		{"space interacts", press(ebiten.KeySpace), []Intent{InteractIntent{}}},
		{"inventory", press(ebiten.KeyI), []Intent{ToggleInventoryIntent{}}},
		{
			"fixed order",
			&fakeKeys{
				pressed: map[ebiten.Key]bool{ebiten.KeyS: true, ebiten.KeyW: true, ebiten.KeyI: true, ebiten.KeyEnter: true},
				click:   true,
			},
			[]Intent{
				DismissIntent{},
				InteractIntent{},
				ToggleInventoryIntent{},
				MoveIntent{Direction: entity.DirUp},
				MoveIntent{Direction: entity.DirDown},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewInputSystemWithSource(km, tt.source)
			assert.Equal(t, tt.want, sys.Poll())
		})
	}
}

func TestInputSystem_BothBindingsReportOnce(t *testing.T) {
	sys := NewInputSystemWithSource(createTestKeymap(t), press(ebiten.KeyArrowUp, ebiten.KeyW))

	assert.Equal(t, []Intent{MoveIntent{Direction: entity.DirUp}}, sys.Poll())
}
