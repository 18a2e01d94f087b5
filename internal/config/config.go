// Package config loads the lvloops CLI settings from the environment.
// Only environment variables are read; there is no .env file support.
package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
)

// Prefix is prepended to every variable name (LVLOOPS_LOG_LEVEL, ...).
const Prefix = "LVLOOPS_"

// Output formats understood by internal/render.
const (
	FormatAuto   = "auto"
	FormatText   = "text"
	FormatYAML   = "yaml"
	FormatPretty = "pretty"
)

// ErrInvalidConfig is returned when a variable parses but holds a value
// outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the CLI settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// Format selects the result encoding; auto picks pretty on a terminal.
	Format string `env:"FORMAT" envDefault:"auto"`
	// MaxSize caps the side length of matrices the CLI builds or accepts.
	MaxSize int `env:"MAX_SIZE" envDefault:"512"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return load(env.Options{Prefix: Prefix})
}

// LoadFrom parses the given variables instead of the process environment.
// Keys carry the prefix, e.g. {"LVLOOPS_FORMAT": "yaml"}.
func LoadFrom(vars map[string]string) (Config, error) {
	return load(env.Options{Prefix: Prefix, Environment: vars})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate normalises case and checks every field against its allowed set.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalidConfig, "%sLOG_LEVEL=%q", Prefix, c.LogLevel)
	}

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatAuto, FormatText, FormatYAML, FormatPretty:
	default:
		return errors.Wrapf(ErrInvalidConfig, "%sFORMAT=%q", Prefix, c.Format)
	}

	if c.MaxSize < 1 {
		return errors.Wrapf(ErrInvalidConfig, "%sMAX_SIZE=%d", Prefix, c.MaxSize)
	}

	return nil
}
