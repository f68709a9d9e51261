// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
)

// MAIRCA (MultiAttributive Ideal-Real Comparative Analysis) measures the gap
// between theoretical and real ratings. Lower is better.
type MAIRCA struct{ opts Options }

// NewMAIRCA returns MAIRCA. Default normalization: normalization.MinMax.
func NewMAIRCA(opts ...Option) *MAIRCA { return &MAIRCA{opts: gatherOptions(opts...)} }

// Name implements Method.
func (*MAIRCA) Name() string { return "MAIRCA" }

// Order implements Method.
func (*MAIRCA) Order() Order { return LowerIsBetter }

// Rank returns Q_i = Σ_j (Tp_j − Tr_ij) with Tp_j = w_j/n (equal a priori
// preference for every alternative) and Tr = Tp ⊙ N.
func (a *MAIRCA) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	const op = "MAIRCA"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, err
	}
	n := float64(X.Rows())
	tp := make([]float64, len(w))
	for j, wj := range w {
		tp[j] = wj / n
	}
	Tp := make([][]float64, X.Rows())
	for i := range Tp {
		Tp[i] = tp
	}
	TpM, err := matrix.NewDenseFromRows(Tp)
	if err != nil {
		return nil, methodErrorf(op, err)
	}
	N, err := normalization.Matrix(X, a.opts.normalizer(normalization.MinMax), types)
	if err != nil {
		return nil, methodErrorf(op, err)
	}
	Tr, err := matrix.Hadamard(TpM, N)
	if err != nil {
		return nil, methodErrorf(op, err)
	}

	rows := toRows(Tr)
	scores := make([]float64, len(rows))
	for i, row := range rows {
		for j, v := range row {
			scores[i] += tp[j] - v
		}
	}

	return finiteScores(op, scores)
}
