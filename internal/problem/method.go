// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcdm/methods"
	"github.com/katalvlaran/mcdm/normalization"
)

// MethodSpec is the optional method section of a problem file. Unset
// pointer fields keep the library defaults.
type MethodSpec struct {
	Name          string      `yaml:"name,omitempty" toml:"name,omitempty"`
	Normalization string      `yaml:"normalization,omitempty" toml:"normalization,omitempty"`
	V             *float64    `yaml:"v,omitempty" toml:"v,omitempty"`
	Lambda        *float64    `yaml:"lambda,omitempty" toml:"lambda,omitempty"`
	Tau           *float64    `yaml:"tau,omitempty" toml:"tau,omitempty"`
	Bounds        [][]float64 `yaml:"bounds,omitempty" toml:"bounds,omitempty"`
	Preference    string      `yaml:"preference,omitempty" toml:"preference,omitempty"`
	Q             []float64   `yaml:"q,omitempty" toml:"q,omitempty"`
	P             []float64   `yaml:"p,omitempty" toml:"p,omitempty"`
	SharedQ       *float64    `yaml:"shared_q,omitempty" toml:"shared_q,omitempty"`
	SharedP       *float64    `yaml:"shared_p,omitempty" toml:"shared_p,omitempty"`
	// CValues are COMET characteristic values, one increasing list per
	// criterion. Empty means the column [min, max].
	CValues [][]float64 `yaml:"cvalues,omitempty" toml:"cvalues,omitempty"`
}

// validate rejects every value the methods option setters would panic on,
// so a bad file becomes an error.
func (s MethodSpec) validate(m int) error {
	if s.Name != "" {
		if _, err := methods.ByName(s.Name); err != nil {
			return fmt.Errorf("method.name: %w", err)
		}
	}
	if s.Normalization != "" {
		if _, err := normalization.ByName(s.Normalization); err != nil {
			return fmt.Errorf("method.normalization: %w", err)
		}
	}
	if s.V != nil && !unit(*s.V) {
		return fmt.Errorf("method.v: %g outside [0,1]: %w", *s.V, ErrInvalid)
	}
	if s.Lambda != nil && !unit(*s.Lambda) {
		return fmt.Errorf("method.lambda: %g outside [0,1]: %w", *s.Lambda, ErrInvalid)
	}
	if s.Tau != nil && !nonNegative(*s.Tau) {
		return fmt.Errorf("method.tau: %g: %w", *s.Tau, ErrInvalid)
	}
	if s.Bounds != nil {
		if len(s.Bounds) != m {
			return fmt.Errorf("method.bounds: %d pairs for %d criteria: %w", len(s.Bounds), m, ErrInvalid)
		}
		for j, b := range s.Bounds {
			if len(b) != 2 || math.IsNaN(b[0]) || math.IsNaN(b[1]) || math.IsInf(b[0], 0) || math.IsInf(b[1], 0) {
				return fmt.Errorf("method.bounds[%d]: want a finite [lower, upper] pair: %w", j, ErrInvalid)
			}
		}
	}
	if s.Preference != "" {
		if _, err := methods.ParsePreferenceKind(s.Preference); err != nil {
			return fmt.Errorf("method.preference: %w", err)
		}
	}
	if err := checkThresholds("q", s.Q, m); err != nil {
		return err
	}
	if err := checkThresholds("p", s.P, m); err != nil {
		return err
	}
	if s.SharedQ != nil && !nonNegative(*s.SharedQ) {
		return fmt.Errorf("method.shared_q: %g: %w", *s.SharedQ, ErrInvalid)
	}
	if s.SharedP != nil && !nonNegative(*s.SharedP) {
		return fmt.Errorf("method.shared_p: %g: %w", *s.SharedP, ErrInvalid)
	}
	if (s.SharedQ != nil || s.SharedP != nil) && (s.Q != nil || s.P != nil) {
		return fmt.Errorf("method: shared and per-criterion thresholds are exclusive: %w", ErrInvalid)
	}
	if s.CValues != nil && len(s.CValues) != m {
		return fmt.Errorf("method.cvalues: %d lists for %d criteria: %w", len(s.CValues), m, ErrInvalid)
	}

	return nil
}

// Options translates the method section into methods options. Call it on a
// validated problem.
func (s MethodSpec) Options() ([]methods.Option, error) {
	var opts []methods.Option
	if s.Normalization != "" {
		fn, err := normalization.ByName(s.Normalization)
		if err != nil {
			return nil, fmt.Errorf("method.normalization: %w", err)
		}
		opts = append(opts, methods.WithNormalization(fn))
	}
	if s.V != nil {
		opts = append(opts, methods.WithV(*s.V))
	}
	if s.Lambda != nil {
		opts = append(opts, methods.WithLambda(*s.Lambda))
	}
	if s.Tau != nil {
		opts = append(opts, methods.WithTau(*s.Tau))
	}
	if s.Bounds != nil {
		bounds := make([][2]float64, len(s.Bounds))
		for j, b := range s.Bounds {
			bounds[j] = [2]float64{b[0], b[1]}
		}
		opts = append(opts, methods.WithBounds(bounds))
	}
	if s.Preference != "" {
		kind, err := methods.ParsePreferenceKind(s.Preference)
		if err != nil {
			return nil, fmt.Errorf("method.preference: %w", err)
		}
		opts = append(opts, methods.WithPreference(kind))
	}
	if s.Q != nil || s.P != nil {
		opts = append(opts, methods.WithThresholds(s.Q, s.P))
	}
	if s.SharedQ != nil || s.SharedP != nil {
		var q, p float64
		if s.SharedQ != nil {
			q = *s.SharedQ
		}
		if s.SharedP != nil {
			p = *s.SharedP
		}
		opts = append(opts, methods.WithSharedThreshold(q, p))
	}

	return opts, nil
}

func checkThresholds(name string, th []float64, m int) error {
	if th == nil {
		return nil
	}
	if len(th) != m {
		return fmt.Errorf("method.%s: %d thresholds for %d criteria: %w", name, len(th), m, ErrInvalid)
	}
	for j, x := range th {
		if !nonNegative(x) {
			return fmt.Errorf("method.%s[%d]: %g: %w", name, j, x, ErrInvalid)
		}
	}

	return nil
}

func unit(x float64) bool { return !math.IsNaN(x) && x >= 0 && x <= 1 }

func nonNegative(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0 }
