// SPDX-License-Identifier: MIT

package methods

import (
	"math"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
	"gonum.org/v1/gonum/floats"
)

// CODAS (COmbinative Distance-based ASsessment) ranks by Euclidean distance
// from the negative ideal solution, with the taxicab distance as a secondary
// measure when two Euclidean distances differ by at least τ.
type CODAS struct{ opts Options }

// NewCODAS returns CODAS with τ = DefaultTau (see WithTau).
// Default normalization: normalization.Linear.
func NewCODAS(opts ...Option) *CODAS { return &CODAS{opts: gatherOptions(opts...)} }

// Name implements Method.
func (*CODAS) Name() string { return "CODAS" }

// Order implements Method.
func (*CODAS) Order() Order { return HigherIsBetter }

// Rank returns the assessment score H_i = Σ_k (E_i−E_k) + ψ(E_i−E_k)(T_i−T_k),
// where ψ(x) = 1 if |x| ≥ τ and 0 otherwise.
func (c *CODAS) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	const op = "CODAS"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, err
	}
	V, err := normalizeWeighted(op, X, c.opts.normalizer(normalization.Linear), w, types)
	if err != nil {
		return nil, err
	}
	nis, _ := matrix.ColMin(V)
	rows := toRows(V)

	E := make([]float64, len(rows))
	T := make([]float64, len(rows))
	for i, row := range rows {
		E[i] = floats.Distance(row, nis, 2)
		T[i] = floats.Distance(row, nis, 1)
	}

	scores := make([]float64, len(rows))
	for i := range rows {
		for k := range rows {
			d := E[i] - E[k]
			scores[i] += d
			if math.Abs(d) >= c.opts.tau {
				scores[i] += T[i] - T[k]
			}
		}
	}

	return finiteScores(op, scores)
}
