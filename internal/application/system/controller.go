package system

import (
	"time"

	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/domain/entity"
)

// Walker plays the walk animation for a step
type Walker interface {
	StartRun(dir entity.Direction, sameDirection bool)
}

// Interactor handles the interact key against the session
type Interactor interface {
	Interact(s *state.Session)
}

// PlayerController applies intents to the session
type PlayerController struct {
	session    *state.Session
	movement   *MovementSystem
	gate       *StepGate
	walker     Walker
	interactor Interactor

	// sameDir flips on every press toward the current facing, so repeated
	// steps alternate between the two walk sequences.
	sameDir bool
}

// NewPlayerController creates a controller over session
func NewPlayerController(session *state.Session, movement *MovementSystem, gate *StepGate, walker Walker, interactor Interactor) *PlayerController {
	return &PlayerController{
		session:    session,
		movement:   movement,
		gate:       gate,
		walker:     walker,
		interactor: interactor,
	}
}

// SameDirection reports the current alternation flag
func (c *PlayerController) SameDirection() bool {
	return c.sameDir
}

// Apply handles a single intent at time now
func (c *PlayerController) Apply(intent Intent, now time.Time) {
	switch in := intent.(type) {
	case DismissIntent:
		if c.session.Dialogue.Show {
			c.session.CloseDialogue()
		}
	case InteractIntent:
		if c.interactor != nil {
			c.interactor.Interact(c.session)
		}
	case ToggleInventoryIntent:
		if c.session.Inventory.Show {
			c.session.HideInventory()
		} else {
			c.session.ShowInventory()
		}
	case MoveIntent:
		c.move(in.Direction, now)
	}
}

// ApplyAll handles intents in order
func (c *PlayerController) ApplyAll(intents []Intent, now time.Time) {
	for _, intent := range intents {
		c.Apply(intent, now)
	}
}

func (c *PlayerController) move(dir entity.Direction, now time.Time) {
	if c.session.MovementDisabled {
		return
	}

	avatar := c.session.Avatar
	if avatar.Facing == dir {
		c.sameDir = !c.sameDir
	}

	if c.session.Dialogue.Show || !c.gate.Allow(now) {
		return
	}

	prevX, prevY, prevFacing := avatar.X, avatar.Y, avatar.Facing
	c.movement.Step(avatar, dir)

	if avatar.X != prevX || avatar.Y != prevY || avatar.Facing != prevFacing {
		c.walker.StartRun(avatar.Facing, c.sameDir)
	}
}

// SignReader opens the dialogue for the sign the avatar faces
type SignReader struct {
	stage *entity.Stage
}

// NewSignReader creates an interactor reading signs on stage
func NewSignReader(stage *entity.Stage) *SignReader {
	return &SignReader{stage: stage}
}

// Interact implements Interactor. With the dialogue open it closes it instead.
func (r *SignReader) Interact(s *state.Session) {
	if s.Dialogue.Show {
		s.CloseDialogue()
		return
	}

	tile := r.stage.GetTile(s.Avatar.Ahead())
	if tile.Type == entity.TileSign {
		s.OpenDialogue(tile.Text)
	}
}
