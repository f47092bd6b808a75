package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// configName is the file both Load and Save use.
const configName = "config.yaml"

// Load resolves the effective configuration. Later sources win:
// built-in defaults, then the config file, then command-line flags.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)
	return cfg, nil
}

// findConfigFile checks the working directory first, then the per-user
// config directory.
func findConfigFile() string {
	for _, path := range []string{configName, filepath.Join(ConfigDir(), configName)} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user configuration directory.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, appDirName())
}

// appDirName follows platform casing conventions for app directories.
func appDirName() string {
	switch runtime.GOOS {
	case "darwin", "windows":
		return "Helios"
	default:
		return "helios"
	}
}

// loadFromFile merges YAML values over the current config.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
