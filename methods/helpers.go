// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
)

// toRows materializes any Matrix as row slices.
func toRows(m matrix.Matrix) [][]float64 {
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows()
	}
	d, err := matrix.DenseCopy(m)
	if err != nil {
		return nil
	}

	return d.ToRows()
}

// normalizeWeighted normalizes X with fn and scales column j by w[j].
func normalizeWeighted(method string, X matrix.Matrix, fn normalization.Func, w []float64, types []criteria.Type) (matrix.Matrix, error) {
	N, err := normalization.Matrix(X, fn, types)
	if err != nil {
		return nil, methodErrorf(method, err)
	}
	V, err := matrix.ScaleCols(N, w)
	if err != nil {
		return nil, methodErrorf(method, err)
	}

	return V, nil
}

// difference keeps profit columns and maps cost columns to max−x.
func difference(x []float64, cost bool) []float64 {
	out := make([]float64, len(x))
	if !cost {
		copy(out, x)
		return out
	}
	hi := x[0]
	for _, v := range x[1:] {
		if v > hi {
			hi = v
		}
	}
	for i, v := range x {
		out[i] = hi - v
	}

	return out
}

// signedSums splits every row of V into Σ profit columns and Σ cost columns.
func signedSums(V [][]float64, types []criteria.Type) (profit, cost []float64) {
	profit = make([]float64, len(V))
	cost = make([]float64, len(V))
	for i, row := range V {
		for j, v := range row {
			if types[j].IsCost() {
				cost[i] += v
			} else {
				profit[i] += v
			}
		}
	}

	return profit, cost
}

// idealRows returns the per-column best and worst raw values by type.
func idealRows(X *matrix.Dense, types []criteria.Type) (best, worst []float64) {
	mins, _ := matrix.ColMin(X)
	maxs, _ := matrix.ColMax(X)
	best = make([]float64, len(types))
	worst = make([]float64, len(types))
	for j, t := range types {
		if t.IsCost() {
			best[j], worst[j] = mins[j], maxs[j]
		} else {
			best[j], worst[j] = maxs[j], mins[j]
		}
	}

	return best, worst
}
