// Package config provides 12-factor configuration for the override engine.
// Values load from environment variables with sensible defaults.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all engine configuration.
type Config struct {
	Engine  EngineConfig
	Logging LogConfig
}

// EngineConfig holds sync-engine tuning.
type EngineConfig struct {
	// GeometryTolerance is the allowed drift, in canvas units, between a
	// shape's geometry and its DOM mirror before validation fails.
	GeometryTolerance float64 `envconfig:"GEOMETRY_TOLERANCE" default:"2"`
	// SanitizeHTML runs html replacement fragments through a UGC policy
	// before they reach the document.
	SanitizeHTML bool `envconfig:"SANITIZE_HTML" default:"false"`
	// MaxHTMLSize caps parsed HTML input, in bytes.
	MaxHTMLSize int `envconfig:"MAX_HTML_SIZE" default:"10485760"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			GeometryTolerance: 2,
			SanitizeHTML:      false,
			MaxHTMLSize:       10 * 1024 * 1024,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
