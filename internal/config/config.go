// SPDX-License-Identifier: MIT

// Package config parses the command configuration from the environment and
// command-line flags. Flags override environment variables, which override
// the defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/exiogwp/gwp"
	"github.com/katalvlaran/exiogwp/internal/logging"
)

// ErrInvalid is returned when a parsed configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// Config holds the command configuration.
type Config struct {
	Dataset   string `env:"EXIOGWP_DATASET" envDefault:"./IOT_2022_pxp"`
	Output    string `env:"EXIOGWP_OUTPUT" envDefault:"exiobase_gwp_factors.csv"`
	Extension string `env:"EXIOGWP_EXTENSION" envDefault:"satellite"`
	LogLevel  string `env:"EXIOGWP_LOG_LEVEL" envDefault:"debug"`
	LogFormat string `env:"EXIOGWP_LOG_FORMAT" envDefault:"text"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Dataset, "dataset", cfg.Dataset, "EXIOBASE 3 release: extracted folder or .zip archive")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "CSV file to write")
	fs.StringVar(&cfg.Extension, "extension", cfg.Extension, "extension holding the S matrix")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %q", ErrInvalid, fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	required := []struct{ name, value string }{
		{"dataset", c.Dataset},
		{"output", c.Output},
		{"extension", c.Extension},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalid, f.name)
		}
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

// Pipeline returns the pipeline part of the configuration.
func (c Config) Pipeline() gwp.Config {
	return gwp.Config{Dataset: c.Dataset, Output: c.Output, Extension: c.Extension}
}

// Logging returns the logging part of the configuration.
func (c Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat}
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
