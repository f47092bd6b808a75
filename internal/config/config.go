// Package config handles simulation configuration loading and
// management.
package config

// Config holds all simulation settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Assets  AssetsConfig  `yaml:"assets"`
	Render  RenderConfig  `yaml:"render"`
	Audio   AudioConfig   `yaml:"audio"`
	Capture CaptureConfig `yaml:"capture"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds window settings.
type DisplayConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// AssetsConfig holds optional asset paths. Empty paths select the
// built-in procedural stand-ins.
type AssetsConfig struct {
	SkyboxPath    string `yaml:"skybox"`     // Equirectangular sky image
	ShipModelPath string `yaml:"ship_model"` // OBJ hull
}

// RenderConfig holds software pipeline settings.
type RenderConfig struct {
	// FragmentBudget caps the fragments one triangle may emit; zero or
	// negative disables the cap.
	FragmentBudget int  `yaml:"fragment_budget"`
	Debug          bool `yaml:"debug"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	SFXVolume float64 `yaml:"sfx_volume"`
	Muted     bool    `yaml:"muted"`
}

// CaptureConfig holds screenshot and headless capture settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`    // Screenshot output directory
	Frames int    `yaml:"frames"` // Frames rendered by headless capture runs
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Title:      "Helios - Sistema Solar",
			Width:      900,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Assets: AssetsConfig{
			SkyboxPath:    "",
			ShipModelPath: "",
		},
		Render: RenderConfig{
			FragmentBudget: 0,
			Debug:          false,
		},
		Audio: AudioConfig{
			SFXVolume: 0.8,
			Muted:     false,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Frames: 300,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
