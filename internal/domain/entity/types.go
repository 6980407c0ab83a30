package entity

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TileSign
)

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
	Text  string // Dialogue shown when a sign is read
}

// Stage represents the current stage's tile data
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   int // Tile coordinates
	SpawnY   int
	Facing   Direction
}

// GetTile returns the tile at the given tile coordinates.
// Anything outside the stage is a solid wall.
func (s *Stage) GetTile(tx, ty int) Tile {
	if !s.InBounds(tx, ty) {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// InBounds reports whether the tile coordinates lie inside the stage
func (s *Stage) InBounds(tx, ty int) bool {
	return tx >= 0 && tx < s.Width && ty >= 0 && ty < s.Height
}

// IsSolid checks if the tile at tile coordinates blocks movement
func (s *Stage) IsSolid(tx, ty int) bool {
	return s.GetTile(tx, ty).Solid
}

// PixelSize returns the stage dimensions in pixels
func (s *Stage) PixelSize() (w, h int) {
	return s.Width * s.TileSize, s.Height * s.TileSize
}
