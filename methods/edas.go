// SPDX-License-Identifier: MIT

package methods

import (
	"math"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"gonum.org/v1/gonum/floats"
)

// EDAS (Evaluation based on Distance from Average Solution) measures
// positive and negative distances from the column means.
type EDAS struct{}

// NewEDAS returns EDAS. It has no tunable options.
func NewEDAS(...Option) *EDAS { return &EDAS{} }

// Name implements Method.
func (*EDAS) Name() string { return "EDAS" }

// Order implements Method.
func (*EDAS) Order() Order { return HigherIsBetter }

// Rank returns the appraisal score AS_i = (SP_i/max SP + 1 − SN_i/max SN) / 2.
//
// Implementation:
//   - Stage 1: AV_j = column mean.
//   - Stage 2: PDA/NDA = positive/negative part of (x−AV)/AV, flipped for cost.
//   - Stage 3: SP, SN = weighted sums of PDA and NDA; normalize by their maxima.
//
// A zero column mean or an alternative set without any spread around the
// mean makes the score undefined (ErrNonFiniteScore).
func (*EDAS) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	const op = "EDAS"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, err
	}
	av, _ := matrix.ColMeans(X)
	rows := X.ToRows()

	sp := make([]float64, len(rows))
	sn := make([]float64, len(rows))
	for i, row := range rows {
		for j, x := range row {
			d := (x - av[j]) / av[j]
			if types[j].IsCost() {
				d = -d
			}
			sp[i] += w[j] * math.Max(d, 0)
			sn[i] += w[j] * math.Max(-d, 0)
		}
	}

	maxSP, maxSN := floats.Max(sp), floats.Max(sn)
	scores := make([]float64, len(rows))
	for i := range scores {
		scores[i] = (sp[i]/maxSP + 1 - sn[i]/maxSN) / 2
	}

	return finiteScores(op, scores)
}
