// Package config handles exporter configuration loading and management.
package config

// Config holds all exporter settings.
type Config struct {
	Export    ExportConfig    `yaml:"export"`
	Collision CollisionConfig `yaml:"collision"`
	Logging   LoggingConfig   `yaml:"logging"`

	startIDSet bool
}

// StartIDExplicit reports whether the start ID came from a config file,
// the environment or a flag rather than the default.
func (c *Config) StartIDExplicit() bool {
	return c.startIDSet
}

// DefaultStartID is the first model ID handed out when nothing else is set.
const DefaultStartID = 4542

// ExportConfig holds the settings read once per IDE/IPL export.
type ExportConfig struct {
	StartID              int        `yaml:"start_id" env:"START_ID"`
	IDEPath              string     `yaml:"ide_path" env:"IDE_PATH"`
	IPLPath              string     `yaml:"ipl_path" env:"IPL_PATH"`
	ApplyDefaultRotation bool       `yaml:"apply_default_rotation" env:"APPLY_DEFAULT_ROTATION"`
	DefaultRotation      [3]float64 `yaml:"default_rotation"` // Euler XYZ, degrees
	NormalizeRotation    bool       `yaml:"normalize_rotation" env:"NORMALIZE_ROTATION"`
	Encoding             string     `yaml:"encoding" env:"ENCODING"`
	HeaderComment        string     `yaml:"header_comment" env:"HEADER_COMMENT"`
	SkipCollision        bool       `yaml:"skip_collision" env:"SKIP_COLLISION"`
}

// CollisionConfig selects how collision objects are tagged.
type CollisionConfig struct {
	// Store is "structured" (DFF property group with key/value fallback)
	// or "keyvalue" (plain custom property only).
	Store string `yaml:"store" env:"STORE"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" env:"LEVEL"`
	LogFile string `yaml:"log_file" env:"FILE"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			StartID:  DefaultStartID,
			Encoding: "utf-8",
		},
		Collision: CollisionConfig{
			Store: "structured",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
