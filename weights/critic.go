// SPDX-License-Identifier: MIT

package weights

import (
	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
)

// CRITIC (CRiteria Importance Through Intercriteria Correlation) weights a
// criterion by its contrast (sample standard deviation of the min-max
// normalized column) times its conflict with the others, Σ_k (1 − r_jk).
//
// The correlation matrix comes from matrix.Correlation, so a constant
// column has r = 0 against every other column and, having zero deviation,
// weight 0 itself.
func CRITIC(m matrix.Matrix, _ []criteria.Type) ([]float64, error) {
	const op = "CRITIC"
	X, err := prepare(op, m, 2)
	if err != nil {
		return nil, err
	}
	N, err := normalization.Matrix(X, normalization.MinMax, nil)
	if err != nil {
		return nil, weightsErrorf(op, err)
	}
	R, _, sd, err := matrix.Correlation(N)
	if err != nil {
		return nil, weightsErrorf(op, err)
	}

	cols := N.Cols()
	c := make([]float64, cols)
	var j, k int
	var r float64
	for j = 0; j < cols; j++ {
		var conflict float64
		for k = 0; k < cols; k++ {
			if r, err = R.At(k, j); err != nil {
				return nil, weightsErrorf(op, err)
			}
			conflict += 1 - r
		}
		c[j] = sd[j] * conflict
	}

	return proportional(op, c)
}
