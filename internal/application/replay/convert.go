package replay

import (
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/domain/entity"
)

// FromIntents packs one frame of intents
func FromIntents(frame int, intents []system.Intent) FrameInput {
	fi := FrameInput{F: frame}
	for _, intent := range intents {
		switch in := intent.(type) {
		case system.MoveIntent:
			switch in.Direction {
			case entity.DirUp:
				fi.U = true
			case entity.DirDown:
				fi.D = true
			case entity.DirLeft:
				fi.L = true
			case entity.DirRight:
				fi.R = true
			}
		case system.InteractIntent:
			fi.I = true
		case system.ToggleInventoryIntent:
			fi.Inv = true
		case system.DismissIntent:
			fi.C = true
		}
	}
	return fi
}

// Intents unpacks the frame in the same order InputSystem.Poll reports them
func (fi FrameInput) Intents() []system.Intent {
	var intents []system.Intent
	if fi.C {
		intents = append(intents, system.DismissIntent{})
	}
	if fi.I {
		intents = append(intents, system.InteractIntent{})
	}
	if fi.Inv {
		intents = append(intents, system.ToggleInventoryIntent{})
	}
	if fi.U {
		intents = append(intents, system.MoveIntent{Direction: entity.DirUp})
	}
	if fi.D {
		intents = append(intents, system.MoveIntent{Direction: entity.DirDown})
	}
	if fi.L {
		intents = append(intents, system.MoveIntent{Direction: entity.DirLeft})
	}
	if fi.R {
		intents = append(intents, system.MoveIntent{Direction: entity.DirRight})
	}
	return intents
}
