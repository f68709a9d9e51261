// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
)

// MOORA (Multi-Objective Optimization on the basis of Ratio Analysis)
// subtracts the weighted cost ratios from the weighted profit ratios.
type MOORA struct{ opts Options }

// NewMOORA returns MOORA. The default normalization is the vector (x/√Σx²)
// ratio applied to every column regardless of type; the type only decides
// the sign of the column in the final sum.
func NewMOORA(opts ...Option) *MOORA { return &MOORA{opts: gatherOptions(opts...)} }

// Name implements Method.
func (*MOORA) Name() string { return "MOORA" }

// Order implements Method.
func (*MOORA) Order() Order { return HigherIsBetter }

// Rank returns Σ profit − Σ cost of the weighted ratios.
//
// Errors:
//   - *ValidationError; ErrNoCostCriteria when every criterion is profit.
func (a *MOORA) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	const op = "MOORA"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, err
	}
	if !criteria.HasCost(types) {
		return nil, invalid(op, "types", ErrNoCostCriteria)
	}
	// nil types: ratio form on every column.
	V, err := normalizeWeighted(op, X, a.opts.normalizer(normalization.Vector), w, nil)
	if err != nil {
		return nil, err
	}
	profit, cost := signedSums(toRows(V), types)
	for i := range profit {
		profit[i] -= cost[i]
	}

	return finiteScores(op, profit)
}
