package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagScene      = flag.String("scene", "", "Scene description YAML (default: built-in desk)")
	flagTextures   = flag.String("textures", "", "Texture directory")
	flagHeadless   = flag.Bool("headless", false, "Render one frame offscreen and exit")
	flagOut        = flag.String("out", "", "Output PNG path for headless rendering")
	flagOpen       = flag.Bool("open", false, "Pick the scene file with a native file dialog")
	flagDialog     = flag.Bool("dialog", false, "Report startup errors in a message box")
	flagSave       = flag.Bool("save-config", false, "Write the effective config to the user config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// PickScene reports whether the scene file should be chosen interactively.
func PickScene() bool {
	return *flagOpen
}

// DialogErrors reports whether startup errors should be shown in a message box.
func DialogErrors() bool {
	return *flagDialog
}

// SaveRequested reports whether the effective config should be written out.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
		cfg.Headless.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
		cfg.Headless.Height = *flagHeight
	}
	if *flagScene != "" {
		cfg.Scene.File = *flagScene
	}
	if *flagTextures != "" {
		cfg.Scene.TextureDir = *flagTextures
	}
	if *flagHeadless {
		cfg.Headless.Enabled = true
	}
	if *flagOut != "" {
		cfg.Headless.Output = *flagOut
	}
}
