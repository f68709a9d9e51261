// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"gonum.org/v1/gonum/floats"
)

// COPRAS (COmplex PRoportional ASsessment) balances the weighted sum of
// profit criteria against the weighted sum of cost criteria.
type COPRAS struct{}

// NewCOPRAS returns COPRAS. It has no tunable options.
func NewCOPRAS(...Option) *COPRAS { return &COPRAS{} }

// Name implements Method.
func (*COPRAS) Name() string { return "COPRAS" }

// Order implements Method.
func (*COPRAS) Order() Order { return HigherIsBetter }

// Rank returns the relative significance Q_i / max Q, so the best alternative scores 1.
//
// Implementation:
//   - Stage 1: sum-normalize every column (no type flip), weight by w.
//   - Stage 2: S⁺_i = Σ profit entries, S⁻_i = Σ cost entries.
//   - Stage 3: Q_i = S⁺_i + (min S⁻ · Σ S⁻) / (S⁻_i · Σ_k min S⁻ / S⁻_k).
//
// Errors:
//   - *ValidationError; ErrNoCostCriteria when every criterion is profit;
//     ErrNonFiniteScore (e.g. a cost column summing to zero).
func (*COPRAS) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	const op = "COPRAS"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, err
	}
	if !criteria.HasCost(types) {
		return nil, invalid(op, "types", ErrNoCostCriteria)
	}

	sums, _ := matrix.ColSums(X)
	rows := X.ToRows()
	for _, row := range rows {
		for j := range row {
			row[j] = row[j] / sums[j] * w[j]
		}
	}
	sPlus, sMinus := signedSums(rows, types)

	minus := floats.Min(sMinus)
	total := floats.Sum(sMinus)
	var inv float64
	for _, s := range sMinus {
		inv += minus / s
	}
	q := make([]float64, len(rows))
	for i := range q {
		q[i] = sPlus[i] + (minus*total)/(sMinus[i]*inv)
	}
	mx := floats.Max(q)
	for i := range q {
		q[i] /= mx
	}

	return finiteScores(op, q)
}
