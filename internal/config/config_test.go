// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// newViper mirrors the command line: MCDM_* environment overrides.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("MCDM")
	v.AutomaticEnv()

	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	require.Equal(t, Config{
		Method:      DefaultMethod,
		Return:      DefaultReturn,
		Format:      FormatTable,
		Precision:   DefaultPrecision,
		Coefficient: DefaultCoefficient,
		LogLevel:    DefaultLogLevel,
	}, cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, lvl)
}

func TestLoad_GlobalViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("method", "vikor")
	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "vikor", cfg.Method)
	require.Equal(t, DefaultFormat, cfg.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{"method", "MCDM_METHOD", "promethee_ii", func(c Config) any { return c.Method }, "promethee_ii"},
		{"normalization", "MCDM_NORMALIZATION", "vector", func(c Config) any { return c.Normalization }, "vector"},
		{"weights", "MCDM_WEIGHTS", "entropy", func(c Config) any { return c.Weights }, "entropy"},
		{"return", "MCDM_RETURN", "ranks", func(c Config) any { return c.Return }, "ranks"},
		{"format", "MCDM_FORMAT", "json", func(c Config) any { return c.Format }, "json"},
		{"precision", "MCDM_PRECISION", "6", func(c Config) any { return c.Precision }, 6},
		{"coefficient", "MCDM_COEFFICIENT", "kendall_tau", func(c Config) any { return c.Coefficient }, "kendall_tau"},
		{"log_level", "MCDM_LOG_LEVEL", "debug", func(c Config) any { return c.LogLevel }, "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load(newViper())
			require.NoError(t, err)
			require.Equal(t, tt.want, tt.field(cfg))
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".mcdm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("method: spotis\nprecision: 2\nformat: JSON\n"), 0o600))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "spotis", cfg.Method)
	require.Equal(t, 2, cfg.Precision)
	require.Equal(t, FormatJSON, cfg.Format)
	require.Equal(t, DefaultCoefficient, cfg.Coefficient)
}

func TestLoad_RejectsUnknownNames(t *testing.T) {
	tests := []struct {
		key, value string
		want       error
	}{
		{"method", "electre", nil},
		{"normalization", "zscore", nil},
		{"weights", "ahp", nil},
		{"return", "all", nil},
		{"coefficient", "cosine", nil},
		{"format", "csv", ErrInvalidFormat},
		{"precision", "42", ErrInvalidPrecision},
		{"log_level", "loud", ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.key)
			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat(" Table ")
	require.NoError(t, err)
	require.Equal(t, FormatTable, f)

	_, err = ParseFormat("")
	require.ErrorIs(t, err, ErrInvalidFormat)
}
