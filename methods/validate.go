// SPDX-License-Identifier: MIT

package methods

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
)

// validateInput checks the shared preconditions and returns a private copy of m.
//
// Implementation:
//   - Stage 1: m non-nil, non-empty and finite.
//   - Stage 2: len(w) == len(types) == m.Cols().
//   - Stage 3: every type is profit or cost, every weight finite.
//
// Errors:
//   - *ValidationError wrapping matrix.ErrNilMatrix, matrix.ErrNaNInf,
//     ErrCriteriaMismatch, ErrInvalidType or ErrInvalidWeights.
func validateInput(method string, m matrix.Matrix, w []float64, types []criteria.Type) (*matrix.Dense, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, invalid(method, "matrix", err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, invalid(method, "matrix", err)
	}
	cols := m.Cols()
	if len(w) != cols {
		return nil, invalid(method, "weights",
			fmt.Errorf("got %d weights for %d criteria: %w", len(w), cols, ErrCriteriaMismatch))
	}
	if len(types) != cols {
		return nil, invalid(method, "types",
			fmt.Errorf("got %d types for %d criteria: %w", len(types), cols, ErrCriteriaMismatch))
	}
	for j, t := range types {
		if !t.Valid() {
			return nil, invalid(method, "types", fmt.Errorf("types[%d]=%d: %w", j, int(t), ErrInvalidType))
		}
	}
	for j, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, invalid(method, "weights", fmt.Errorf("weights[%d]=%g: %w", j, v, ErrInvalidWeights))
		}
	}

	return matrix.DenseCopy(m)
}

// finiteScores returns s, or ErrNonFiniteScore naming the first bad alternative.
func finiteScores(method string, s []float64) ([]float64, error) {
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, methodErrorf(method, fmt.Errorf("alternative %d: %g: %w", i, v, ErrNonFiniteScore))
		}
	}

	return s, nil
}
