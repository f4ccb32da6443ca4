package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/objview/pkg/encoding"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the standard locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the loader cannot work with.
func (c *Config) Validate() error {
	if c.Models.BaseDir == "" {
		return fmt.Errorf("models.base_dir must be set")
	}
	if c.Models.Count < 0 {
		return fmt.Errorf("models.count must not be negative, got %d", c.Models.Count)
	}
	if c.Models.Workers < 0 {
		return fmt.Errorf("models.workers must not be negative, got %d", c.Models.Workers)
	}
	if _, err := encoding.Lookup(c.Models.Charset); err != nil {
		return fmt.Errorf("models.charset: %w", err)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./objview.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "ObjView")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "ObjView")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "objview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "objview")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
