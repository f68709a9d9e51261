// SPDX-License-Identifier: MIT

// Package config holds the defaults of the mcdm command line. Values come
// from .mcdm.yaml, MCDM_* environment variables and command flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/mcdm/correlation"
	"github.com/katalvlaran/mcdm/methods"
	"github.com/katalvlaran/mcdm/normalization"
	"github.com/katalvlaran/mcdm/weights"
	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Defaults applied by Load.
const (
	DefaultMethod      = "topsis"
	DefaultReturn      = "both"
	DefaultFormat      = FormatTable
	DefaultPrecision   = 4
	DefaultCoefficient = "spearman"
	DefaultLogLevel    = "warn"

	// MaxPrecision bounds the number of printed decimals.
	MaxPrecision = 17
)

var (
	// ErrInvalidFormat indicates an output format other than table or json.
	ErrInvalidFormat = errors.New("config: invalid output format")
	// ErrInvalidPrecision indicates a precision outside [0, MaxPrecision].
	ErrInvalidPrecision = errors.New("config: invalid precision")
	// ErrInvalidLogLevel indicates a log level slog cannot parse.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
)

// Config holds the runtime configuration of one mcdm invocation.
// Empty Normalization keeps the method's own default; empty Weights means
// the problem file's weights, or equal weights when the file has none.
type Config struct {
	Method        string `mapstructure:"method"`
	Normalization string `mapstructure:"normalization"`
	Weights       string `mapstructure:"weights"`
	Return        string `mapstructure:"return"`
	Format        string `mapstructure:"format"`
	Precision     int    `mapstructure:"precision"`
	Coefficient   string `mapstructure:"coefficient"`
	LogLevel      string `mapstructure:"log_level"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("method", DefaultMethod)
	v.SetDefault("normalization", "")
	v.SetDefault("weights", "")
	v.SetDefault("return", DefaultReturn)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("precision", DefaultPrecision)
	v.SetDefault("coefficient", DefaultCoefficient)
	v.SetDefault("log_level", DefaultLogLevel)
}

// Load reads configuration from v (the global viper when v is nil),
// applying built-in defaults for any values not set by config file,
// environment, or flags. The result is validated.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.Format, _ = ParseFormat(cfg.Format)

	return cfg, nil
}

// Validate resolves every name against its registry so that typos surface
// before any problem file is read.
func (c Config) Validate() error {
	if _, err := methods.ByName(c.Method); err != nil {
		return fmt.Errorf("config: method: %w", err)
	}
	if c.Normalization != "" {
		if _, err := normalization.ByName(c.Normalization); err != nil {
			return fmt.Errorf("config: normalization: %w", err)
		}
	}
	if c.Weights != "" {
		if _, err := weights.ByName(c.Weights); err != nil {
			return fmt.Errorf("config: weights: %w", err)
		}
	}
	if _, err := methods.ParseReturnType(c.Return); err != nil {
		return fmt.Errorf("config: return: %w", err)
	}
	if _, err := correlation.ByName(c.Coefficient); err != nil {
		return fmt.Errorf("config: coefficient: %w", err)
	}
	if _, err := ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("config: precision %d outside [0,%d]: %w", c.Precision, MaxPrecision, ErrInvalidPrecision)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error", or offsets such
// as "info+2").
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log_level %q: %w", c.LogLevel, ErrInvalidLogLevel)
	}

	return lvl, nil
}

// ParseFormat normalizes an output format name.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatTable, FormatJSON:
		return f, nil
	}

	return "", fmt.Errorf("config: format %q (known: %s, %s): %w", s, FormatTable, FormatJSON, ErrInvalidFormat)
}
