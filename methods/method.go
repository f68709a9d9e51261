// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
)

// Order tells whether a larger score is a better alternative.
type Order int

const (
	// HigherIsBetter marks methods whose best alternative has the largest score.
	HigherIsBetter Order = iota
	// LowerIsBetter marks methods whose best alternative has the smallest score.
	LowerIsBetter
)

// String returns a human-readable name of the order.
func (o Order) String() string {
	switch o {
	case HigherIsBetter:
		return "higher is better"
	case LowerIsBetter:
		return "lower is better"
	default:
		return "unknown order"
	}
}

// Method is the contract shared by every ranking method.
//
// Rank validates m, w and types (columns == len(w) == len(types)) before any
// arithmetic and returns one score per row of m. It never modifies its inputs.
type Method interface {
	// Name returns the display name, e.g. "TOPSIS".
	Name() string
	// Order reports the direction of the scores.
	Order() Order
	// Rank scores every alternative.
	Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error)
}
