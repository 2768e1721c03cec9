package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. SCENESYNC_EXPORT_START_ID.
const EnvPrefix = "SCENESYNC_"

// Load loads configuration with priority: defaults < file < env < flags.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	configPath := ""
	if f != nil {
		configPath = f.Config
	}
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	applyFlags(cfg, f)

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./scenesync.yaml",
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
		return filepath.Join(home, "Library", "Application Support", "SceneSync")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "SceneSync")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "scenesync")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "scenesync")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}

	var keys struct {
		Export struct {
			StartID *int `yaml:"start_id"`
		} `yaml:"export"`
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return err
	}
	if keys.Export.StartID != nil {
		cfg.startIDSet = true
	}
	return nil
}

// loadDotEnv loads variables from path into the process environment
// without overriding ones already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// applyEnv overlays SCENESYNC_* variables onto cfg. Unset variables keep
// the value already in cfg.
func applyEnv(cfg *Config) error {
	sections := []struct {
		prefix string
		dst    any
	}{
		{"EXPORT_", &cfg.Export},
		{"COLLISION_", &cfg.Collision},
		{"LOG_", &cfg.Logging},
	}
	for _, s := range sections {
		if err := env.Parse(s.dst, env.Options{Prefix: EnvPrefix + s.prefix}); err != nil {
			return err
		}
	}
	if _, ok := os.LookupEnv(EnvPrefix + "EXPORT_START_ID"); ok {
		cfg.startIDSet = true
	}
	return nil
}
