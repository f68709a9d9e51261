// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
)

// ARAS (Additive Ratio ASsessment) compares the weighted sum of every
// alternative with the weighted sum of an ideal alternative.
type ARAS struct{ opts Options }

// NewARAS returns ARAS. Default normalization: normalization.Sum.
func NewARAS(opts ...Option) *ARAS { return &ARAS{opts: gatherOptions(opts...)} }

// Name implements Method.
func (*ARAS) Name() string { return "ARAS" }

// Order implements Method.
func (*ARAS) Order() Order { return HigherIsBetter }

// Rank returns the utility degree K_i = S_i / S_0, where row 0 is the ideal
// alternative (column max for profit, column min for cost) prepended before
// normalization.
func (a *ARAS) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	const op = "ARAS"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, err
	}
	best, _ := idealRows(X, types)
	E, err := matrix.NewDenseFromRows(append([][]float64{best}, X.ToRows()...))
	if err != nil {
		return nil, methodErrorf(op, err)
	}
	V, err := normalizeWeighted(op, E, a.opts.normalizer(normalization.Sum), w, types)
	if err != nil {
		return nil, err
	}
	S, err := matrix.RowSums(V)
	if err != nil {
		return nil, methodErrorf(op, err)
	}

	scores := make([]float64, len(S)-1)
	for i := range scores {
		scores[i] = S[i+1] / S[0]
	}

	return finiteScores(op, scores)
}
