package entity

import "fmt"

// Direction represents the way the avatar faces or walks.
// The numeric value is the sprite sheet row, so the order must match the asset.
type Direction int

const (
	DirRight Direction = 0
	DirLeft  Direction = 1
	DirUp    Direction = 2
	DirDown  Direction = 3
)

// Directions lists every direction in sheet row order
var Directions = [...]Direction{DirRight, DirLeft, DirUp, DirDown}

// SheetRow returns the sprite sheet row for the direction
func (d Direction) SheetRow() int {
	return int(d)
}

// Delta returns the tile offset of one step in the direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four directions
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirDown
}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "RIGHT"
	case DirLeft:
		return "LEFT"
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	default:
		return "UNKNOWN"
	}
}

// ParseDirection parses the upper-case name produced by String
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
