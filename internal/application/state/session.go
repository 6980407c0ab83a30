package state

import "github.com/younwookim/overworld/internal/domain/entity"

// Dialogue is the dialogue panel state
type Dialogue struct {
	Show    bool
	Context string // Text being shown
}

// Inventory is the inventory panel state
type Inventory struct {
	Show bool
}

// Session is everything the player controller reads and writes while playing.
// It is passed explicitly instead of living in a global store.
type Session struct {
	Avatar           *entity.Avatar
	Dialogue         Dialogue
	Inventory        Inventory
	MovementDisabled bool
}

// NewSession creates a session with the avatar at the stage spawn
func NewSession(stage *entity.Stage) *Session {
	return &Session{
		Avatar: entity.NewAvatar(stage.SpawnX, stage.SpawnY, stage.Facing),
	}
}

// OpenDialogue shows the dialogue panel with text
func (s *Session) OpenDialogue(text string) {
	s.Dialogue = Dialogue{Show: true, Context: text}
}

// CloseDialogue hides the dialogue panel and clears its text
func (s *Session) CloseDialogue() {
	s.Dialogue = Dialogue{}
}

// ShowInventory opens the inventory and blocks walking while it is open
func (s *Session) ShowInventory() {
	s.Inventory.Show = true
	s.MovementDisabled = true
}

// HideInventory closes the inventory and re-enables walking
func (s *Session) HideInventory() {
	s.Inventory.Show = false
	s.MovementDisabled = false
}
