package config

import "time"

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// PlayerConfig is the root config for player.json
type PlayerConfig struct {
	Sprite   SpriteConfig   `json:"sprite"`
	Movement MovementConfig `json:"movement"`
}

// SpriteConfig describes the walk sheet and its animation timing
type SpriteConfig struct {
	Sheet         string `json:"sheet"`         // PNG path relative to the config dir; empty = placeholder
	CellSize      int    `json:"cellSize"`      // Square cell edge (pixels)
	TicksPerFrame int    `json:"ticksPerFrame"` // Ticks a frame must exceed before advancing
	DrawOffsetY   int    `json:"drawOffsetY"`   // Vertical nudge when drawing on the map (pixels)
}

// MovementConfig configures step input
type MovementConfig struct {
	StepIntervalMs int `json:"stepIntervalMs"` // Minimum time between accepted steps
}

// DefaultAuthTimeoutMs applies when auth.json leaves timeoutMs out
const DefaultAuthTimeoutMs = 5000

// AuthConfig is the root config for auth.json
type AuthConfig struct {
	BaseURL   string `json:"baseURL"`   // Backend root, with trailing slash
	TimeoutMs int    `json:"timeoutMs"` // Validation request timeout
	AppName   string `json:"appName"`   // Storage namespace for the saved token
}

// Timeout returns TimeoutMs as a duration
func (c *AuthConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
