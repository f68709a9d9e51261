// SPDX-License-Identifier: MIT

package methods

import (
	"fmt"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
	"gonum.org/v1/gonum/floats"
)

// VIKOR ranks alternatives by a compromise between group utility S and
// individual regret R. Lower Q is better.
type VIKOR struct{ opts Options }

// NewVIKOR returns VIKOR. Without WithNormalization the matrix is used as is
// for profit criteria and as max−x for cost criteria.
func NewVIKOR(opts ...Option) *VIKOR { return &VIKOR{opts: gatherOptions(opts...)} }

// Name implements Method.
func (*VIKOR) Name() string { return "VIKOR" }

// Order implements Method.
func (*VIKOR) Order() Order { return LowerIsBetter }

// Rank returns the compromise index Q.
func (v *VIKOR) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	_, _, q, err := v.Compromise(m, w, types)

	return q, err
}

// Compromise returns group utility S, individual regret R and compromise Q.
//
// MAIN DESCRIPTION:
//   - f*_j / f⁻_j are the column max / min of the normalized matrix.
//   - S_i = Σ_j w_j(f*_j − f_ij)/(f*_j − f⁻_j), R_i = max_j of the same terms.
//   - Q_i = v(S_i − S*)/(S⁻ − S*) + (1−v)(R_i − R*)/(R⁻ − R*).
//
// Numeric policy:
//   - A criterion with f*_j == f⁻_j is rejected with ErrConstantCriterion
//     listing every such column.
//   - When every S (or every R) is equal, that term of Q is 0.
//
// Errors:
//   - *ValidationError, ErrConstantCriterion, ErrNonFiniteScore.
func (v *VIKOR) Compromise(m matrix.Matrix, w []float64, types []criteria.Type) (S, R, Q []float64, err error) {
	const op = "VIKOR"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, nil, nil, err
	}
	N, err := normalization.Matrix(X, v.opts.normalizer(difference), types)
	if err != nil {
		return nil, nil, nil, methodErrorf(op, err)
	}
	fStar, _ := matrix.ColMax(N)
	fMinus, _ := matrix.ColMin(N)

	var flat []int
	for j := range fStar {
		if fStar[j] == fMinus[j] {
			flat = append(flat, j)
		}
	}
	if len(flat) > 0 {
		return nil, nil, nil, methodErrorf(op, fmt.Errorf("criteria %v: %w", flat, ErrConstantCriterion))
	}

	rows := N.ToRows()
	S = make([]float64, len(rows))
	R = make([]float64, len(rows))
	term := make([]float64, len(w))
	for i, row := range rows {
		for j, f := range row {
			term[j] = w[j] * (fStar[j] - f) / (fStar[j] - fMinus[j])
		}
		S[i] = floats.Sum(term)
		R[i] = floats.Max(term)
	}

	Q = make([]float64, len(rows))
	sLo, sSpan := floats.Min(S), floats.Max(S)-floats.Min(S)
	rLo, rSpan := floats.Min(R), floats.Max(R)-floats.Min(R)
	for i := range Q {
		if sSpan != 0 {
			Q[i] += v.opts.v * (S[i] - sLo) / sSpan
		}
		if rSpan != 0 {
			Q[i] += (1 - v.opts.v) * (R[i] - rLo) / rSpan
		}
	}
	if Q, err = finiteScores(op, Q); err != nil {
		return nil, nil, nil, err
	}

	return S, R, Q, nil
}
