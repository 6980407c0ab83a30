package state

// GameState represents the current state of the game
type GameState int

const (
	StateLoading GameState = iota
	StateSplash
	StatePlaying
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateSplash:
		return "Splash"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}
