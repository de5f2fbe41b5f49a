// Package config handles viewer configuration loading and management.
package config

import "fmt"

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Headless HeadlessConfig `yaml:"headless"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FPSLimit   int        `yaml:"fps_limit"`
	ClearColor [3]float32 `yaml:"clear_color"`
	MSAA       int        `yaml:"msaa"`
}

// CameraConfig holds the starting view and navigation tuning.
type CameraConfig struct {
	Mode             string     `yaml:"mode"` // "fly" or "orbit"
	Position         [3]float32 `yaml:"position"`
	Target           [3]float32 `yaml:"target"`
	FOV              float32    `yaml:"fov"` // degrees
	Near             float32    `yaml:"near"`
	Far              float32    `yaml:"far"`
	MoveSpeed        float32    `yaml:"move_speed"` // units per second
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
	OrthoHeight      float32    `yaml:"ortho_height"`
	Orthographic     bool       `yaml:"orthographic"`
}

// SceneConfig selects the scene description and its assets.
type SceneConfig struct {
	File           string `yaml:"file"`        // empty = built-in desk scene
	TextureDir     string `yaml:"texture_dir"` // base for relative texture paths
	MaxTextureSize int    `yaml:"max_texture_size"`
	Lighting       bool   `yaml:"lighting"`
}

// HeadlessConfig controls offscreen rendering to a PNG file.
type HeadlessConfig struct {
	Enabled bool   `yaml:"enabled"`
	Output  string `yaml:"output"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			ClearColor: [3]float32{0.05, 0.05, 0.07},
			MSAA:       4,
		},
		Camera: CameraConfig{
			Mode:             "fly",
			Position:         [3]float32{0, 6, 14},
			Target:           [3]float32{0, 2, -2},
			FOV:              45,
			Near:             0.1,
			Far:              100,
			MoveSpeed:        5,
			MouseSensitivity: 0.1,
			OrthoHeight:      12,
		},
		Scene: SceneConfig{
			TextureDir:     "textures",
			MaxTextureSize: 2048,
			Lighting:       true,
		},
		Headless: HeadlessConfig{
			Output: "deskscene.png",
			Width:  640,
			Height: 360,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values the renderer cannot recover from.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Headless.Width <= 0 || c.Headless.Height <= 0 {
		return fmt.Errorf("headless size must be positive, got %dx%d", c.Headless.Width, c.Headless.Height)
	}
	switch c.Camera.Mode {
	case "fly", "orbit":
	default:
		return fmt.Errorf("unknown camera mode %q (want fly or orbit)", c.Camera.Mode)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes invalid: near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %g", c.Camera.FOV)
	}
	if c.Scene.MaxTextureSize < 0 {
		return fmt.Errorf("max_texture_size must not be negative, got %d", c.Scene.MaxTextureSize)
	}
	return nil
}
