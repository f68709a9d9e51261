// SPDX-License-Identifier: MIT

package methods

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
)

// SPOTIS (Stable Preference Ordering Towards Ideal Solution) scores each
// alternative by its weighted normalized distance to the ideal solution
// point taken from fixed bounds. Scores are rank-reversal free as long as
// the bounds do not change. Lower is better.
type SPOTIS struct{ opts Options }

// NewSPOTIS returns SPOTIS. Without WithBounds the bounds are the column
// minimum and maximum of the matrix being ranked.
func NewSPOTIS(opts ...Option) *SPOTIS { return &SPOTIS{opts: gatherOptions(opts...)} }

// Name implements Method.
func (*SPOTIS) Name() string { return "SPOTIS" }

// Order implements Method.
func (*SPOTIS) Order() Order { return LowerIsBetter }

// Rank returns Σ_j w_j |x_ij − ISP_j| / (upper_j − lower_j), where ISP_j is
// the upper bound of a profit criterion and the lower bound of a cost one.
//
// Errors:
//   - *ValidationError; ErrCriteriaMismatch for a bounds list of the wrong
//     length; ErrDegenerateBounds naming every criterion with lower ≥ upper.
func (s *SPOTIS) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	const op = "SPOTIS"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, err
	}
	bounds, err := s.bounds(op, X)
	if err != nil {
		return nil, err
	}

	isp := make([]float64, len(bounds))
	for j, b := range bounds {
		if types[j].IsCost() {
			isp[j] = b[0]
		} else {
			isp[j] = b[1]
		}
	}

	rows := X.ToRows()
	scores := make([]float64, len(rows))
	for i, row := range rows {
		for j, x := range row {
			scores[i] += w[j] * math.Abs(x-isp[j]) / (bounds[j][1] - bounds[j][0])
		}
	}

	return finiteScores(op, scores)
}

// bounds returns the configured bounds or derives them from X.
func (s *SPOTIS) bounds(op string, X *matrix.Dense) ([][2]float64, error) {
	out := s.opts.bounds
	if out == nil {
		mins, _ := matrix.ColMin(X)
		maxs, _ := matrix.ColMax(X)
		out = make([][2]float64, len(mins))
		for j := range out {
			out[j] = [2]float64{mins[j], maxs[j]}
		}
	}
	if len(out) != X.Cols() {
		return nil, invalid(op, "bounds",
			fmt.Errorf("got %d bounds for %d criteria: %w", len(out), X.Cols(), ErrCriteriaMismatch))
	}
	var bad []int
	for j, b := range out {
		if !(b[0] < b[1]) {
			bad = append(bad, j)
		}
	}
	if len(bad) > 0 {
		return nil, invalid(op, "bounds", fmt.Errorf("criteria %v: %w", bad, ErrDegenerateBounds))
	}

	return out, nil
}
