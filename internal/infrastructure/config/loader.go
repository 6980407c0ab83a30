package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	Player  *PlayerConfig
	Auth    *AuthConfig
	Keys    *KeysConfig
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.readJSON("display.json", &cfg); err != nil {
		return nil, err
	}

	if cfg.Framerate == 0 {
		cfg.Framerate = 60
	}
	if cfg.Scale == 0 {
		cfg.Scale = 1
	}
	return &cfg, nil
}

// LoadPlayer loads player.json
func (l *Loader) LoadPlayer() (*PlayerConfig, error) {
	var cfg PlayerConfig
	if err := l.readJSON("player.json", &cfg); err != nil {
		return nil, err
	}

	if cfg.Sprite.CellSize <= 0 {
		return nil, fmt.Errorf("failed to parse player.json: cellSize must be positive, got %d", cfg.Sprite.CellSize)
	}
	return &cfg, nil
}

// LoadAuth loads auth.json
func (l *Loader) LoadAuth() (*AuthConfig, error) {
	var cfg AuthConfig
	if err := l.readJSON("auth.json", &cfg); err != nil {
		return nil, err
	}

	if cfg.TimeoutMs < 0 {
		return nil, fmt.Errorf("failed to parse auth.json: timeoutMs must not be negative, got %d", cfg.TimeoutMs)
	}
	if cfg.TimeoutMs == 0 {
		cfg.TimeoutMs = DefaultAuthTimeoutMs
	}
	return &cfg, nil
}

// LoadKeys loads keys.yaml. A missing file yields the default layout.
func (l *Loader) LoadKeys() (*KeysConfig, error) {
	data, err := fs.ReadFile(l.fsys, "keys.yaml")
	if errors.Is(err, fs.ErrNotExist) {
		keys := DefaultKeys()
		return &keys, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read keys.yaml: %w", err)
	}

	var cfg KeysConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse keys.yaml: %w", err)
	}

	cfg = cfg.withDefaults()
	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"

	var cfg StageConfig
	if err := l.readJSON(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadAll loads all base configurations (display, player, auth, keys)
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	player, err := l.LoadPlayer()
	if err != nil {
		return nil, err
	}

	auth, err := l.LoadAuth()
	if err != nil {
		return nil, err
	}

	keys, err := l.LoadKeys()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		Player:  player,
		Auth:    auth,
		Keys:    keys,
	}, nil
}

func (l *Loader) readJSON(path string, v any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
