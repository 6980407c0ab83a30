package config

// KeysConfig is the root config for keys.yaml.
// Each action lists ebiten key names, e.g. "ArrowUp" or "W".
type KeysConfig struct {
	Up        []string `yaml:"up"`
	Down      []string `yaml:"down"`
	Left      []string `yaml:"left"`
	Right     []string `yaml:"right"`
	Interact  []string `yaml:"interact"`
	Inventory []string `yaml:"inventory"`
}

// DefaultKeys returns the arrow + WASD layout
func DefaultKeys() KeysConfig {
	return KeysConfig{
		Up:        []string{"ArrowUp", "W"},
		Down:      []string{"ArrowDown", "S"},
		Left:      []string{"ArrowLeft", "A"},
		Right:     []string{"ArrowRight", "D"},
		Interact:  []string{"Enter", "Space"},
		Inventory: []string{"I"},
	}
}

// withDefaults fills actions left empty in the file
func (k KeysConfig) withDefaults() KeysConfig {
	def := DefaultKeys()
	if len(k.Up) == 0 {
		k.Up = def.Up
	}
	if len(k.Down) == 0 {
		k.Down = def.Down
	}
	if len(k.Left) == 0 {
		k.Left = def.Left
	}
	if len(k.Right) == 0 {
		k.Right = def.Right
	}
	if len(k.Interact) == 0 {
		k.Interact = def.Interact
	}
	if len(k.Inventory) == 0 {
		k.Inventory = def.Inventory
	}
	return k
}
