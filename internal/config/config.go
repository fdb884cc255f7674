// Package config handles configuration loading for the blog service.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the blog service. Values are read once
// at startup and never change afterwards.
type Config struct {
	Addr          string `env:"ADDR" envDefault:":5000"`
	DatabaseDSN   string `env:"DATABASE_DSN" envDefault:"blog.db"`
	SessionSecret string `env:"SESSION_SECRET,required"`
	TemplateGlob  string `env:"TEMPLATE_GLOB" envDefault:"web/templates/*.html"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
