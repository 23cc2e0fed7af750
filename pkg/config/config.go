// Package config loads tool defaults from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults the CLI flags fall back to.
type Config struct {
	// TemplatePath is the report template workbook used when no path
	// argument is given.
	TemplatePath string `env:"REPORTUTIL_TEMPLATE"`
	// IconDir is the directory placeholder icons are written into.
	IconDir string `env:"REPORTUTIL_ICON_DIR" envDefault:"."`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
