// Package config loads siteheader settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/vcrobe/siteheader/header"
)

// Config holds the loader and controller settings. In the browser there is
// no environment, so the defaults apply.
type Config struct {
	Source        string        `env:"SITEHEADER_SOURCE" envDefault:"header.html"`
	PlaceholderID string        `env:"SITEHEADER_PLACEHOLDER" envDefault:"header-placeholder"`
	Breakpoint    int           `env:"SITEHEADER_BREAKPOINT" envDefault:"768"`
	Fallback      bool          `env:"SITEHEADER_FALLBACK" envDefault:"false"`
	Brand         string        `env:"SITEHEADER_BRAND" envDefault:"Ko H."`
	FetchTimeout  time.Duration `env:"SITEHEADER_FETCH_TIMEOUT" envDefault:"0s"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Breakpoint <= 0 {
		return Config{}, fmt.Errorf("SITEHEADER_BREAKPOINT must be positive, got %d", cfg.Breakpoint)
	}
	return cfg, nil
}

// Loader builds a header.Loader from the settings.
func (c Config) Loader(fetcher header.Fetcher) *header.Loader {
	return &header.Loader{
		Fetcher:       fetcher,
		Source:        c.Source,
		PlaceholderID: c.PlaceholderID,
		Timeout:       c.FetchTimeout,
		Fallback:      c.Fallback,
		Brand:         c.Brand,
		Options:       []header.Option{header.WithBreakpoint(c.Breakpoint)},
	}
}
