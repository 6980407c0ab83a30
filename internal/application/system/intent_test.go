package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/overworld/internal/domain/entity"
)

func TestMoveIntent(t *testing.T) {
	intent := MoveIntent{Direction: entity.DirUp}

	// Test that it implements Intent interface
	var i Intent = intent
	i.isIntent() // Should not panic

	assert.Equal(t, entity.DirUp, intent.Direction)
}

func TestMarkerIntents(t *testing.T) {
	intents := []Intent{InteractIntent{}, ToggleInventoryIntent{}, DismissIntent{}}

	for _, i := range intents {
		i.isIntent() // Should not panic
	}
	assert.Len(t, intents, 3)
}
