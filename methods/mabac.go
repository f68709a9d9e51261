// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
	"gonum.org/v1/gonum/stat"
)

// MABAC (Multi-Attributive Border Approximation area Comparison) sums the
// distances of every weighted entry from the border approximation area G.
type MABAC struct{ opts Options }

// NewMABAC returns MABAC. Default normalization: normalization.MinMax.
func NewMABAC(opts ...Option) *MABAC { return &MABAC{opts: gatherOptions(opts...)} }

// Name implements Method.
func (*MABAC) Name() string { return "MABAC" }

// Order implements Method.
func (*MABAC) Order() Order { return HigherIsBetter }

// Rank returns Q_i = Σ_j (V_ij − G_j) with V = (N+1)·diag(w) and G_j the
// geometric mean of column j of V.
func (a *MABAC) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	const op = "MABAC"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, err
	}
	N, err := normalization.Matrix(X, a.opts.normalizer(normalization.MinMax), types)
	if err != nil {
		return nil, methodErrorf(op, err)
	}
	if err = N.Apply(func(_, j int, v float64) float64 { return (v + 1) * w[j] }); err != nil {
		return nil, methodErrorf(op, err)
	}
	cols := N.ToCols()
	G := make([]float64, len(cols))
	for j, col := range cols {
		G[j] = stat.GeometricMean(col, nil)
	}

	scores := make([]float64, N.Rows())
	for i := range scores {
		for j, col := range cols {
			scores[i] += col[i] - G[j]
		}
	}

	return finiteScores(op, scores)
}
