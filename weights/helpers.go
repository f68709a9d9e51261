// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"gonum.org/v1/gonum/floats"
)

// degenerateTol is the total below which proportional weights are refused.
const degenerateTol = 1e-12

// prepare validates m and returns an independent *Dense copy.
func prepare(op string, m matrix.Matrix, minRows int) (*matrix.Dense, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, weightsErrorf(op, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, weightsErrorf(op, err)
	}
	if m.Rows() < minRows {
		return nil, weightsErrorf(op, fmt.Errorf("%d rows: %w", m.Rows(), ErrTooFewAlternatives))
	}

	return matrix.DenseCopy(m)
}

// resolveTypes returns types, or all profit when types is nil.
func resolveTypes(op string, types []criteria.Type, cols int) ([]criteria.Type, error) {
	if types == nil {
		return criteria.AllProfit(cols), nil
	}
	if err := criteria.Validate(types, cols); err != nil {
		return nil, weightsErrorf(op, err)
	}

	return types, nil
}

// proportional returns v / Σv. Tiny negative rounding residue is clamped to 0.
func proportional(op string, v []float64) ([]float64, error) {
	out := make([]float64, len(v))
	for j, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, weightsErrorf(op, fmt.Errorf("criterion %d: %w", j, ErrNonFinite))
		}
		out[j] = math.Max(x, 0)
	}
	total := floats.Sum(out)
	if !(total > degenerateTol) {
		return nil, weightsErrorf(op, ErrDegenerate)
	}
	floats.Scale(1/total, out)

	return out, nil
}

// requireNonNegative rejects any value below zero (or ≤ 0 when strict).
func requireNonNegative(op string, d *matrix.Dense, strict bool) error {
	var bad error
	d.Do(func(i, j int, v float64) bool {
		if v < 0 || (strict && v == 0) {
			bad = weightsErrorf(op, fmt.Errorf("(%d,%d)=%g: %w", i, j, v, ErrNegativeValue))
			return false
		}
		return true
	})

	return bad
}
