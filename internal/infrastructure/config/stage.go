package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	TileSize    int                          `json:"tileSize"`
	Background  string                       `json:"background"`
	PlayerSpawn SpawnConfig                  `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Signs       []SignConfig                 `json:"signs"`
}

// SpawnConfig places the avatar, in tile coordinates
type SpawnConfig struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Facing string `json:"facing"` // RIGHT, LEFT, UP or DOWN
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Type  string `json:"type"`
	Solid bool   `json:"solid"`
}

// SignConfig attaches dialogue text to a tile
type SignConfig struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Text string `json:"text"`
}
