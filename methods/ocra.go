// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"gonum.org/v1/gonum/floats"
)

// OCRA (Operational Competitiveness RAting) aggregates an input (cost)
// preference and an output (profit) preference, each shifted so that its
// least competitive alternative scores 0.
type OCRA struct{}

// NewOCRA returns OCRA. It has no tunable options.
func NewOCRA(...Option) *OCRA { return &OCRA{} }

// Name implements Method.
func (*OCRA) Name() string { return "OCRA" }

// Order implements Method.
func (*OCRA) Order() Order { return HigherIsBetter }

// Rank returns the overall competitiveness rating, with min 0.
//
// Implementation:
//   - Stage 1: cost columns (max−x)/min, profit columns (x−min)/min.
//   - Stage 2: I_i = Σ cost w_j n_ij, O_i = Σ profit w_j n_ij; shift both to min 0.
//   - Stage 3: P_i = I_i + O_i, shifted to min 0.
//
// A column whose minimum is 0 divides by zero (ErrNonFiniteScore).
func (*OCRA) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	const op = "OCRA"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, err
	}
	mins, _ := matrix.ColMin(X)
	maxs, _ := matrix.ColMax(X)
	rows := X.ToRows()
	for _, row := range rows {
		for j, x := range row {
			if types[j].IsCost() {
				row[j] = w[j] * (maxs[j] - x) / mins[j]
			} else {
				row[j] = w[j] * (x - mins[j]) / mins[j]
			}
		}
	}
	out, in := signedSums(rows, types)
	shiftToZero(in)
	shiftToZero(out)
	floats.Add(in, out)
	shiftToZero(in)

	return finiteScores(op, in)
}

// shiftToZero subtracts min(x) from every element of x.
func shiftToZero(x []float64) {
	floats.AddConst(-floats.Min(x), x)
}
