// SPDX-License-Identifier: MIT

package methods

import (
	"math"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
	"gonum.org/v1/gonum/floats"
)

// COCOSO (COmbined COmpromise SOlution) merges an additive and a
// multiplicative aggregation through three appraisal scores.
type COCOSO struct{ opts Options }

// NewCOCOSO returns COCOSO with λ = DefaultLambda (see WithLambda).
// Default normalization: normalization.MinMax.
func NewCOCOSO(opts ...Option) *COCOSO { return &COCOSO{opts: gatherOptions(opts...)} }

// Name implements Method.
func (*COCOSO) Name() string { return "COCOSO" }

// Order implements Method.
func (*COCOSO) Order() Order { return HigherIsBetter }

// Rank returns k_i = (k_a·k_b·k_c)^(1/3) + (k_a+k_b+k_c)/3 with
//
//	S_i = Σ_j w_j n_ij,  P_i = Σ_j n_ij^w_j
//	k_a = (P_i+S_i) / Σ(P+S)
//	k_b = S_i/min S + P_i/min P
//	k_c = (λS_i + (1−λ)P_i) / (λ max S + (1−λ) max P)
//
// An alternative that is worst on every criterion has S = 0, so k_b is
// undefined and the call fails with ErrNonFiniteScore.
func (c *COCOSO) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	const op = "COCOSO"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, err
	}
	N, err := normalization.Matrix(X, c.opts.normalizer(normalization.MinMax), types)
	if err != nil {
		return nil, methodErrorf(op, err)
	}
	S, err := matrix.MatVec(N, w)
	if err != nil {
		return nil, methodErrorf(op, err)
	}
	rows := N.ToRows()
	P := make([]float64, len(rows))
	for i, row := range rows {
		for j, v := range row {
			P[i] += math.Pow(v, w[j])
		}
	}

	l := c.opts.lambda
	total := floats.Sum(S) + floats.Sum(P)
	minS, minP := floats.Min(S), floats.Min(P)
	kcDen := l*floats.Max(S) + (1-l)*floats.Max(P)

	scores := make([]float64, len(rows))
	for i := range scores {
		ka := (P[i] + S[i]) / total
		kb := S[i]/minS + P[i]/minP
		kc := (l*S[i] + (1-l)*P[i]) / kcDen
		scores[i] = math.Cbrt(ka*kb*kc) + (ka+kb+kc)/3
	}

	return finiteScores(op, scores)
}
