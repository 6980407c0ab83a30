package system

import "github.com/younwookim/overworld/internal/domain/entity"

// MovementSystem moves the avatar across the stage one tile at a time
type MovementSystem struct {
	stage *entity.Stage
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(stage *entity.Stage) *MovementSystem {
	return &MovementSystem{stage: stage}
}

// Step moves the avatar one tile in dir if the target is open.
// The avatar faces dir either way. Returns whether the avatar moved.
func (s *MovementSystem) Step(avatar *entity.Avatar, dir entity.Direction) bool {
	avatar.Facing = dir

	dx, dy := dir.Delta()
	tx, ty := avatar.X+dx, avatar.Y+dy
	if s.stage.IsSolid(tx, ty) {
		return false
	}

	avatar.X, avatar.Y = tx, ty
	return true
}
