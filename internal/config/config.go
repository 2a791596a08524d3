// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/idilsaglam/showcase/internal/model"
)

// Config holds all application configuration. Flags override these after
// ParseEnv; call Validate once both are applied.
type Config struct {
	APIBaseURL string        `env:"SHOWCASE_API_BASE_URL" envDefault:"https://apis.ccbp.in"`
	Timeout    time.Duration `env:"SHOWCASE_TIMEOUT" envDefault:"10s"`
	Addr       string        `env:"SHOWCASE_ADDR" envDefault:":8080"`
	Category   string        `env:"SHOWCASE_CATEGORY" envDefault:"ALL"`
	Theme      string        `env:"SHOWCASE_THEME" envDefault:"classic"`
	LogLevel   string        `env:"SHOWCASE_LOG_LEVEL" envDefault:"info"`
	LogFile    string        `env:"SHOWCASE_LOG_FILE"`
	Fixture    string        `env:"SHOWCASE_FIXTURE"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if c.Fixture == "" {
		if u, err := url.Parse(c.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("api base url %q must be absolute", c.APIBaseURL))
		}
	}
	if _, err := model.ParseCategory(c.Category); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		errs = append(errs, fmt.Errorf("unknown theme %q", c.Theme))
	}
	return errors.Join(errs...)
}

// StartCategory is the parsed Category, falling back to ALL.
func (c Config) StartCategory() model.Category {
	cat, err := model.ParseCategory(c.Category)
	if err != nil {
		return model.DefaultCategory
	}
	return cat
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return lvl, nil
}
