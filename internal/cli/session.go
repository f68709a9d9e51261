// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/internal/problem"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/methods"
	"github.com/katalvlaran/mcdm/normalization"
	"github.com/katalvlaran/mcdm/weights"
	"github.com/spf13/cobra"
)

// weightsFromFile names the weight source when the problem file supplies them.
const weightsFromFile = "file"

// session is one loaded problem with its resolved inputs.
type session struct {
	p       *problem.Problem
	X       *matrix.Dense
	types   []criteria.Type
	w       []float64
	wSource string
	opts    []methods.Option
}

// load reads the problem at path and resolves its weights and method
// options. Settings resolve in the order: explicit flag, problem file,
// configuration.
func (a *app) load(cmd *cobra.Command, path string) (*session, error) {
	p, err := problem.Load(path)
	if err != nil {
		return nil, err
	}
	X, err := p.Dense()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s := &session{p: p, X: X, types: p.CriteriaTypes()}
	a.log.Debug("problem loaded", "path", path, "alternatives", X.Rows(), "criteria", X.Cols())

	if s.opts, err = p.Method.Options(); err != nil {
		return nil, err
	}
	if name := a.cfg.Normalization; name != "" && (flagChanged(cmd, "normalization") || p.Method.Normalization == "") {
		fn, err := normalization.ByName(name)
		if err != nil {
			return nil, err
		}
		s.opts = append(s.opts, methods.WithNormalization(fn))
		a.log.Debug("normalization override", "name", name)
	}

	if !flagChanged(cmd, "weights") && p.Weights != nil {
		s.w, s.wSource = append([]float64(nil), p.Weights...), weightsFromFile
	} else {
		name := a.cfg.Weights
		if name == "" {
			name = "equal"
		}
		if s.w, err = computeWeights(name, X, s.types); err != nil {
			return nil, err
		}
		s.wSource = name
	}
	a.log.Debug("weights resolved", "source", s.wSource, "weights", s.w)

	return s, nil
}

// methodName resolves the method for this run.
func (a *app) methodName(cmd *cobra.Command, s *session) string {
	if !flagChanged(cmd, "method") && s.p.Method.Name != "" {
		return s.p.Method.Name
	}

	return a.cfg.Method
}

func computeWeights(name string, X matrix.Matrix, types []criteria.Type) ([]float64, error) {
	fn, err := weights.ByName(name)
	if err != nil {
		return nil, err
	}

	return fn(X, types)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)

	return f != nil && f.Changed
}
