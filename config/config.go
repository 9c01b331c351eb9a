package config

import "image/color"

// WindowConfig contains window and rendering configuration
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`  // logical screen width in pixels
	Height     int     `yaml:"height"` // logical screen height in pixels
	TileSize   float64 `yaml:"tile_size"`
	Scale      int     `yaml:"scale"` // window size as a multiple of the logical size
	Fullscreen bool    `yaml:"fullscreen"`
}

// MaxWindowScale bounds WindowConfig.Scale.
const MaxWindowScale = 4

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowMultiplier float64 `yaml:"follow_multiplier"` // fraction of the gap closed per second
	ClampToLevel     bool    `yaml:"clamp_to_level"`
}

// PhysicsConfig contains simulation configuration
type PhysicsConfig struct {
	// TimeScale multiplies the fixed step. Below 1 runs the game in slow
	// motion for tuning.
	TimeScale float64 `yaml:"time_scale"`
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	ShowOverlay   bool `yaml:"show_overlay"`
	ShowColliders bool `yaml:"show_colliders"`
	ShowTuning    bool `yaml:"show_tuning"`
}

// Global configuration instances
var Window WindowConfig
var Camera CameraConfig
var Physics PhysicsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Background   = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	Solid        = color.RGBA{R: 90, G: 96, B: 120, A: 255}
	Hazard       = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	Platform     = color.RGBA{R: 120, G: 170, B: 90, A: 255}
	Finish       = color.RGBA{R: 255, G: 220, B: 60, A: 120}
	PlayerColor  = color.RGBA{R: 240, G: 240, B: 255, A: 255}
	Collider     = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Sensor       = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Window = WindowConfig{
		Title:    "wallhop",
		Width:    640,
		Height:   360,
		TileSize: 16,
		Scale:    2,
	}

	Camera = CameraConfig{
		FollowMultiplier: 0.95,
		ClampToLevel:     true,
	}

	Physics = PhysicsConfig{
		TimeScale: 1.0,
	}

	Debug = DebugConfig{
		ShowOverlay: false,
	}
}
