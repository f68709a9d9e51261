// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
	"gonum.org/v1/gonum/floats"
)

// TOPSIS ranks alternatives by relative closeness to the positive ideal
// solution (PIS) and distance from the negative ideal solution (NIS).
type TOPSIS struct{ opts Options }

// NewTOPSIS returns TOPSIS. Default normalization: normalization.MinMax.
func NewTOPSIS(opts ...Option) *TOPSIS { return &TOPSIS{opts: gatherOptions(opts...)} }

// Name implements Method.
func (*TOPSIS) Name() string { return "TOPSIS" }

// Order implements Method.
func (*TOPSIS) Order() Order { return HigherIsBetter }

// Rank computes the closeness coefficient of every alternative.
//
// Implementation:
//   - Stage 1: validate; N = normalize(X); V = N·diag(w).
//   - Stage 2: PIS = column max of V, NIS = column min of V.
//   - Stage 3: C_i = D⁻_i / (D⁺_i + D⁻_i) with Euclidean distances.
//
// Errors:
//   - *ValidationError for shape/type/weight problems.
//   - ErrNonFiniteScore when every alternative coincides with PIS and NIS.
//
// Complexity:
//   - Time O(n·m), Space O(n·m).
func (t *TOPSIS) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	const op = "TOPSIS"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, err
	}
	V, err := normalizeWeighted(op, X, t.opts.normalizer(normalization.MinMax), w, types)
	if err != nil {
		return nil, err
	}
	pis, err := matrix.ColMax(V)
	if err != nil {
		return nil, methodErrorf(op, err)
	}
	nis, err := matrix.ColMin(V)
	if err != nil {
		return nil, methodErrorf(op, err)
	}

	rows := toRows(V)
	scores := make([]float64, len(rows))
	for i, row := range rows {
		dp := floats.Distance(row, pis, 2)
		dm := floats.Distance(row, nis, 2)
		scores[i] = dm / (dm + dp)
	}

	return finiteScores(op, scores)
}
