// SPDX-License-Identifier: MIT

// Package problem decodes decision problems from YAML or TOML files.
//
// A problem file carries the decision matrix, the criterion types, optional
// weights and labels, and an optional method section:
//
//	matrix:
//	  - [66, 56, 95]
//	  - [61, 55, 166]
//	types: [cost, cost, profit] # or [-1, -1, 1]
//	weights: [0.3, 0.2, 0.5]
//	alternatives: [A1, A2]
//	criteria: [price, weight, range]
//	method:
//	  name: vikor
//	  v: 0.6
package problem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	toml "github.com/pelletier/go-toml/v2"
	yaml "go.yaml.in/yaml/v3"
)

// Format names a problem file encoding.
type Format string

// Supported encodings.
const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

var (
	// ErrUnknownFormat indicates a file extension or format name that is
	// neither YAML nor TOML.
	ErrUnknownFormat = errors.New("problem: unknown file format")
	// ErrInvalid indicates a structurally invalid problem.
	ErrInvalid = errors.New("problem: invalid problem")
)

// Problem is one decoded decision problem.
type Problem struct {
	Matrix       [][]float64 `yaml:"matrix" toml:"matrix"`
	Types        []any       `yaml:"types" toml:"types"`
	Weights      []float64   `yaml:"weights,omitempty" toml:"weights,omitempty"`
	Alternatives []string    `yaml:"alternatives,omitempty" toml:"alternatives,omitempty"`
	Criteria     []string    `yaml:"criteria,omitempty" toml:"criteria,omitempty"`
	Method       MethodSpec  `yaml:"method,omitempty" toml:"method,omitempty"`

	types []criteria.Type
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}

	return "", fmt.Errorf("FormatFromPath(%q): want .yaml, .yml or .toml: %w", path, ErrUnknownFormat)
}

// Load reads and validates the problem file at path.
func Load(path string) (*Problem, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	p, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return p, nil
}

// Decode parses data in the given format and validates the result.
func Decode(data []byte, f Format) (*Problem, error) {
	var p Problem
	switch f {
	case YAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case TOML:
		if err := toml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("Decode(%q): %w", f, ErrUnknownFormat)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks the matrix is rectangular and every optional list
// matches its dimension. Criterion types are resolved here.
func (p *Problem) Validate() error {
	if len(p.Matrix) == 0 || len(p.Matrix[0]) == 0 {
		return fmt.Errorf("matrix: empty: %w", ErrInvalid)
	}
	n, m := len(p.Matrix), len(p.Matrix[0])
	for i, row := range p.Matrix {
		if len(row) != m {
			return fmt.Errorf("matrix: row %d has %d values, want %d: %w", i, len(row), m, ErrInvalid)
		}
	}

	if len(p.Types) != m {
		return fmt.Errorf("types: %d entries for %d criteria: %w", len(p.Types), m, ErrInvalid)
	}
	types := make([]criteria.Type, m)
	for j, raw := range p.Types {
		t, err := criteria.ParseType(fmt.Sprint(raw))
		if err != nil {
			return fmt.Errorf("types[%d]: %w", j, err)
		}
		types[j] = t
	}
	p.types = types

	if p.Weights != nil && len(p.Weights) != m {
		return fmt.Errorf("weights: %d entries for %d criteria: %w", len(p.Weights), m, ErrInvalid)
	}
	if p.Alternatives != nil && len(p.Alternatives) != n {
		return fmt.Errorf("alternatives: %d labels for %d rows: %w", len(p.Alternatives), n, ErrInvalid)
	}
	if p.Criteria != nil && len(p.Criteria) != m {
		return fmt.Errorf("criteria: %d labels for %d columns: %w", len(p.Criteria), m, ErrInvalid)
	}

	return p.Method.validate(m)
}

// Dense copies the decision matrix. Non-finite entries are rejected.
func (p *Problem) Dense() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(p.Matrix)
}

// CriteriaTypes returns the resolved criterion types. Validate must have
// succeeded first.
func (p *Problem) CriteriaTypes() []criteria.Type {
	return append([]criteria.Type(nil), p.types...)
}

// AlternativeLabels returns the alternative labels, defaulting to A1..An.
func (p *Problem) AlternativeLabels() []string {
	return labels(p.Alternatives, len(p.Matrix), "A")
}

// CriterionLabels returns the criterion labels, defaulting to C1..Cm.
func (p *Problem) CriterionLabels() []string {
	m := 0
	if len(p.Matrix) > 0 {
		m = len(p.Matrix[0])
	}

	return labels(p.Criteria, m, "C")
}

func labels(given []string, n int, prefix string) []string {
	if given != nil {
		return append([]string(nil), given...)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}

	return out
}
