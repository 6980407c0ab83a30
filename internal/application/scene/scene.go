// Package scene defines the screens the game moves between:
// boot (token check), splash (access denied) and playing.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game.
//
// game.Game forwards ebiten's Update and Draw to the current scene and
// switches scenes when Update returns a non-nil next scene.
type Scene interface {
	// Update advances the scene by dt seconds.
	// Returning a next scene switches to it; returning an error stops the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the game shuts down.
	OnExit()
}

// Named is implemented by scenes that report a name for logging
type Named interface {
	Name() string
}

// NameOf returns the scene's name, or "scene" when it has none
func NameOf(s Scene) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return "scene"
}
