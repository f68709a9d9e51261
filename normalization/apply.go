// SPDX-License-Identifier: MIT

package normalization

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
)

const opMatrix = "Matrix"

// Matrix normalizes every column of m with fn according to types.
//
// MAIN DESCRIPTION:
//   - Column j is passed to fn with cost = (types[j] == criteria.Cost).
//   - types == nil treats every criterion as profit.
//
// Implementation:
//   - Stage 1: validate m (non-nil, non-empty, finite), fn and types.
//   - Stage 2: copy m once into a *Dense so column reads are flat slices.
//   - Stage 3: normalize column by column, rejecting any non-finite output,
//     and assemble the result with matrix.NewDenseFromCols.
//
// Returns:
//   - A fresh *Dense of the same shape; m is never modified.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrInvalidDimensions / matrix.ErrNaNInf for bad input.
//   - ErrNilFunc for a nil strategy.
//   - criteria.ErrLengthMismatch / criteria.ErrInvalidType for bad types.
//   - ErrNonFinite naming the first offending column.
//
// Determinism:
//   - Columns are processed left to right; strategies are pure.
//
// Complexity:
//   - Time O(n·m), Space O(n·m).
func Matrix(m matrix.Matrix, fn Func, types []criteria.Type) (*matrix.Dense, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, normErrorf(opMatrix, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, normErrorf(opMatrix, err)
	}
	if fn == nil {
		return nil, normErrorf(opMatrix, ErrNilFunc)
	}
	if types != nil {
		if err := criteria.Validate(types, m.Cols()); err != nil {
			return nil, normErrorf(opMatrix, err)
		}
	}

	src, err := matrix.DenseCopy(m)
	if err != nil {
		return nil, normErrorf(opMatrix, err)
	}
	cols := make([][]float64, src.Cols())

	var j int
	var col []float64
	for j = 0; j < src.Cols(); j++ {
		if col, err = src.Col(j); err != nil {
			return nil, normErrorf(opMatrix, err)
		}
		cost := types != nil && types[j] == criteria.Cost
		res := fn(col, cost)
		if len(res) != len(col) {
			return nil, normErrorf(opMatrix, fmt.Errorf("column %d: got %d values for %d rows: %w",
				j, len(res), len(col), matrix.ErrDimensionMismatch))
		}
		if i := firstNonFinite(res); i >= 0 {
			return nil, normErrorf(opMatrix, fmt.Errorf("column %d (row %d): %w", j, i, ErrNonFinite))
		}
		cols[j] = res
	}
	out, err := matrix.NewDenseFromCols(cols)
	if err != nil {
		return nil, normErrorf(opMatrix, err)
	}

	return out, nil
}

// Column applies fn to a single vector with the same finiteness rule as Matrix.
func Column(x []float64, fn Func, t criteria.Type) ([]float64, error) {
	if fn == nil {
		return nil, normErrorf("Column", ErrNilFunc)
	}
	if !t.Valid() {
		return nil, normErrorf("Column", criteria.ErrInvalidType)
	}
	res := fn(x, t == criteria.Cost)
	if i := firstNonFinite(res); i >= 0 {
		return nil, normErrorf("Column", fmt.Errorf("row %d: %w", i, ErrNonFinite))
	}

	return res, nil
}

// firstNonFinite returns the index of the first NaN/±Inf in x, or −1.
func firstNonFinite(x []float64) int {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}

	return -1
}
