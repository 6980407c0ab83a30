package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/overworld/internal/domain/entity"
	"github.com/younwookim/overworld/internal/infrastructure/config"
)

// KeySource reports edge-triggered input for the current frame
type KeySource interface {
	IsKeyJustPressed(key ebiten.Key) bool
	IsClickJustPressed() bool
}

// EbitenKeys reads input from ebiten's inpututil
type EbitenKeys struct{}

func (EbitenKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (EbitenKeys) IsClickJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Keymap binds physical keys to actions
type Keymap struct {
	Move      map[entity.Direction][]ebiten.Key
	Interact  []ebiten.Key
	Inventory []ebiten.Key
}

var keyNames = func() map[string]ebiten.Key {
	names := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		names[k.String()] = k
	}
	return names
}()

// ParseKey resolves an ebiten key name. Browser-style codes such as
// "KeyW" are accepted as well as "W".
func ParseKey(name string) (ebiten.Key, error) {
	if k, ok := keyNames[name]; ok {
		return k, nil
	}
	if trimmed, ok := strings.CutPrefix(name, "Key"); ok {
		if k, ok := keyNames[trimmed]; ok {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

func parseKeys(action string, names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", action, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// NewKeymap builds a keymap from config
func NewKeymap(cfg config.KeysConfig) (*Keymap, error) {
	km := &Keymap{Move: make(map[entity.Direction][]ebiten.Key)}

	moves := []struct {
		action string
		dir    entity.Direction
		names  []string
	}{
		{"up", entity.DirUp, cfg.Up},
		{"down", entity.DirDown, cfg.Down},
		{"left", entity.DirLeft, cfg.Left},
		{"right", entity.DirRight, cfg.Right},
	}
	for _, m := range moves {
		keys, err := parseKeys(m.action, m.names)
		if err != nil {
			return nil, err
		}
		km.Move[m.dir] = keys
	}

	var err error
	if km.Interact, err = parseKeys("interact", cfg.Interact); err != nil {
		return nil, err
	}
	if km.Inventory, err = parseKeys("inventory", cfg.Inventory); err != nil {
		return nil, err
	}
	return km, nil
}

// moveOrder is the order simultaneous move presses are reported in
var moveOrder = [...]entity.Direction{entity.DirUp, entity.DirDown, entity.DirLeft, entity.DirRight}

// InputSystem turns key presses into intents
type InputSystem struct {
	keymap *Keymap
	source KeySource
}

// NewInputSystem creates a new input system reading from ebiten
func NewInputSystem(keymap *Keymap) *InputSystem {
	return NewInputSystemWithSource(keymap, EbitenKeys{})
}

// NewInputSystemWithSource creates an input system reading from source
func NewInputSystemWithSource(keymap *Keymap, source KeySource) *InputSystem {
	return &InputSystem{keymap: keymap, source: source}
}

// Poll returns this frame's intents: dismiss, interact, inventory, then moves
func (s *InputSystem) Poll() []Intent {
	var intents []Intent

	if s.source.IsClickJustPressed() {
		intents = append(intents, DismissIntent{})
	}
	if s.anyJustPressed(s.keymap.Interact) {
		intents = append(intents, InteractIntent{})
	}
	if s.anyJustPressed(s.keymap.Inventory) {
		intents = append(intents, ToggleInventoryIntent{})
	}
	for _, dir := range moveOrder {
		if s.anyJustPressed(s.keymap.Move[dir]) {
			intents = append(intents, MoveIntent{Direction: dir})
		}
	}

	return intents
}

func (s *InputSystem) anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.source.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
