package system

import (
	"fmt"

	"github.com/younwookim/overworld/internal/domain/entity"
	"github.com/younwookim/overworld/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity
func LoadStage(cfg *config.StageConfig) (*entity.Stage, error) {
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("stage %s: tileSize must be positive", cfg.ID)
	}

	tileHeight := len(cfg.Layers.Collision)
	tileWidth := 0
	for _, row := range cfg.Layers.Collision {
		if n := len([]rune(row)); n > tileWidth {
			tileWidth = n
		}
	}

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		// Short rows are padded with empty tiles
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range []rune(row) {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "wall":
				tileType = entity.TileWall
			case "sign":
				tileType = entity.TileSign
			default:
				tileType = entity.TileEmpty
			}

			tiles[y][x] = entity.Tile{
				Type:  tileType,
				Solid: mapping.Solid,
			}
		}
	}

	stage := &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
		Facing:   entity.DirDown,
	}

	if cfg.PlayerSpawn.Facing != "" {
		facing, err := entity.ParseDirection(cfg.PlayerSpawn.Facing)
		if err != nil {
			return nil, fmt.Errorf("stage %s: spawn facing: %w", cfg.ID, err)
		}
		stage.Facing = facing
	}

	if !stage.InBounds(stage.SpawnX, stage.SpawnY) || stage.IsSolid(stage.SpawnX, stage.SpawnY) {
		return nil, fmt.Errorf("stage %s: spawn (%d,%d) is not an open tile", cfg.ID, stage.SpawnX, stage.SpawnY)
	}

	for _, sign := range cfg.Signs {
		if !stage.InBounds(sign.X, sign.Y) {
			return nil, fmt.Errorf("stage %s: sign (%d,%d) is outside the stage", cfg.ID, sign.X, sign.Y)
		}
		tile := &stage.Tiles[sign.Y][sign.X]
		tile.Type = entity.TileSign
		tile.Solid = true
		tile.Text = sign.Text
	}

	return stage, nil
}
