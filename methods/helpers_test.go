// SPDX-License-Identifier: MIT

package methods_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/stretchr/testify/require"
)

// refTol is the absolute tolerance against reference scores.
const refTol = 1e-9

// hide forces the generic Matrix path by hiding the *Dense type.
type hide struct{ matrix.Matrix }

func fromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func types(t *testing.T, v ...int) []criteria.Type {
	t.Helper()
	out, err := criteria.FromInts(v)
	require.NoError(t, err)

	return out
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// decisionRows is a small mixed-type problem shared by property tests.
var decisionRows = [][]float64{
	{66, 56, 95},
	{61, 55, 166},
	{65, 49, 113},
	{95, 56, 99},
	{63, 43, 178},
	{74, 59, 140},
}

// randomRows returns an n×m matrix with entries in [1, 100).
func randomRows(r *rand.Rand, n, m int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, m)
		for j := range rows[i] {
			rows[i][j] = 1 + 99*r.Float64()
		}
	}

	return rows
}

// columnRange returns the minimum and maximum of column j.
func columnRange(rows [][]float64, j int) (lo, hi float64) {
	lo, hi = rows[0][j], rows[0][j]
	for _, row := range rows[1:] {
		lo = math.Min(lo, row[j])
		hi = math.Max(hi, row[j])
	}

	return lo, hi
}
