package entity

// Avatar is the player character on the tile grid
type Avatar struct {
	X, Y   int // Tile coordinates
	Facing Direction
}

// NewAvatar creates an avatar at the given tile facing dir
func NewAvatar(x, y int, facing Direction) *Avatar {
	return &Avatar{X: x, Y: y, Facing: facing}
}

// Position returns the tile coordinates of the avatar
func (a *Avatar) Position() (x, y int) {
	return a.X, a.Y
}

// Ahead returns the tile coordinates the avatar is facing
func (a *Avatar) Ahead() (x, y int) {
	dx, dy := a.Facing.Delta()
	return a.X + dx, a.Y + dy
}

// PixelPos returns the top-left pixel of the avatar's tile
func (a *Avatar) PixelPos(tileSize int) (px, py int) {
	return a.X * tileSize, a.Y * tileSize
}
