package system

import "github.com/younwookim/overworld/internal/domain/entity"

// Intent represents an action the player wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a one-tile step
type MoveIntent struct {
	Direction entity.Direction
}

func (MoveIntent) isIntent() {}

// InteractIntent represents using whatever the avatar faces
type InteractIntent struct{}

func (InteractIntent) isIntent() {}

// ToggleInventoryIntent opens or closes the inventory panel
type ToggleInventoryIntent struct{}

func (ToggleInventoryIntent) isIntent() {}

// DismissIntent represents a pointer click, which closes the dialogue panel
type DismissIntent struct{}

func (DismissIntent) isIntent() {}
