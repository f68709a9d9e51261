// SPDX-License-Identifier: MIT

package weights

import (
	"math"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
)

// MEREC (Method based on the Removal Effects of Criteria) weights each
// criterion by how much the overall performance of the alternatives changes
// when that criterion is removed.
//
// Implementation:
//   - Stage 1: linear normalization with reversed orientation (profit columns
//     take min/x, cost columns x/max) so that every entry lies in (0, 1].
//   - Stage 2: S_i = ln(1 + (1/m) Σ_j |ln n_ij|).
//   - Stage 3: for every j, S'_ij is the same sum over the matrix with
//     column j dropped (Dense.Induced), still divided by m.
//   - Stage 4: E_j = Σ_i |S'_ij − S_i|, w ∝ E.
//
// Errors:
//   - ErrNegativeValue for any value ≤ 0; criteria validation errors;
//     ErrDegenerate when removing any criterion changes nothing.
//
// Complexity:
//   - Time O(n·m²), Space O(n·m).
func MEREC(m matrix.Matrix, types []criteria.Type) ([]float64, error) {
	const op = "MEREC"
	X, err := prepare(op, m, 1)
	if err != nil {
		return nil, err
	}
	if types, err = resolveTypes(op, types, X.Cols()); err != nil {
		return nil, err
	}
	if err = requireNonNegative(op, X, true); err != nil {
		return nil, err
	}
	N, err := normalization.Matrix(X, normalization.Linear, criteria.Reverse(types))
	if err != nil {
		return nil, weightsErrorf(op, err)
	}

	cols := X.Cols()
	allRows := make([]int, N.Rows())
	for i := range allRows {
		allRows[i] = i
	}
	S := performance(N, cols)

	E := make([]float64, cols)
	keep := make([]int, 0, cols-1)
	for j := 0; j < cols; j++ {
		keep = keep[:0]
		for k := 0; k < cols; k++ {
			if k != j {
				keep = append(keep, k)
			}
		}
		sub, err := N.Induced(allRows, keep)
		if err != nil {
			return nil, weightsErrorf(op, err)
		}
		Sj := performance(sub, cols)
		for i := range S {
			E[j] += math.Abs(Sj[i] - S[i])
		}
	}

	return proportional(op, E)
}

// performance returns ln(1 + (1/m) Σ_j |ln n_ij|) per row.
func performance(N *matrix.Dense, m int) []float64 {
	out := make([]float64, N.Rows())
	for i := range out {
		row, _ := N.Row(i)
		var acc float64
		for _, v := range row {
			acc += math.Abs(math.Log(v))
		}
		out[i] = math.Log(1 + acc/float64(m))
	}

	return out
}
