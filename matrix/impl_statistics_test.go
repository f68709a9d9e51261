// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mcdm/matrix"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

func TestColumnReductions(t *testing.T) {
	t.Parallel()

	X := fromRows(t, decisionRows)
	for _, m := range []matrix.Matrix{X, hide{X}} {
		mins, err := matrix.ColMin(m)
		require.NoError(t, err)
		require.Equal(t, []float64{61, 43, 95}, mins)

		maxs, err := matrix.ColMax(m)
		require.NoError(t, err)
		require.Equal(t, []float64{95, 59, 178}, maxs)

		sums, err := matrix.ColSums(m)
		require.NoError(t, err)
		require.Equal(t, []float64{424, 318, 791}, sums)

		means, err := matrix.ColMeans(m)
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{424.0 / 6, 53, 791.0 / 6}, means, epsTight)

		rows, err := matrix.RowSums(m)
		require.NoError(t, err)
		require.Equal(t, []float64{217, 282, 227, 250, 284, 273}, rows)
	}

	_, err := matrix.ColMin(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCenterColumns_SmallAndFallback(t *testing.T) {
	t.Parallel()

	X := fromRows(t, [][]float64{{1, 2, 3}, {10, 20, 30}})

	Yf, meansF, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	Ys, meansS, err := matrix.CenterColumns(hide{X})
	require.NoError(t, err)

	// Means should be [5.5, 11, 16.5].
	require.Equal(t, []float64{5.5, 11, 16.5}, meansF)
	require.Equal(t, meansF, meansS)
	compareClose(t, Yf, Ys, 0, 0)

	// Column averages of Y ≈ 0.
	for j := 0; j < 3; j++ {
		avg := (mustAt(t, Yf, 0, j) + mustAt(t, Yf, 1, j)) / 2
		require.InDelta(t, 0, avg, epsTight, "col %d not centered", j)
	}
}

func TestCovariance(t *testing.T) {
	t.Parallel()

	X := fromRows(t, [][]float64{{1, 2}, {2, 4}, {3, 6}})
	cov, means, err := matrix.Covariance(X)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4}, means)
	// var(x)=1, var(2x)=4, cov=2
	compareClose(t, cov, fromRows(t, [][]float64{{1, 2}, {2, 4}}), 0, epsTight)

	_, _, err = matrix.Covariance(fromRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCorrelation_DegenerateColumn(t *testing.T) {
	t.Parallel()

	X := fromRows(t, [][]float64{
		{1, 5, 3},
		{2, 5, 2},
		{3, 5, 1},
	})
	corr, _, stds, err := matrix.Correlation(X)
	require.NoError(t, err)
	require.Equal(t, 0.0, stds[1])

	want := fromRows(t, [][]float64{
		{1, 0, -1},
		{0, 0, 0},
		{-1, 0, 1},
	})
	compareClose(t, corr, want, 0, 1e-12)

	corrSlow, _, _, err := matrix.Correlation(hide{X})
	require.NoError(t, err)
	compareClose(t, corrSlow, corr, 0, 0)
}

func TestCorrelation_ScaleInvariant(t *testing.T) {
	t.Parallel()

	X := fromRows(t, decisionRows)
	S, err := matrix.Scale(X, 7.5)
	require.NoError(t, err)

	c1, _, _, err := matrix.Correlation(X)
	require.NoError(t, err)
	c2, _, _, err := matrix.Correlation(S)
	require.NoError(t, err)
	compareClose(t, c1, c2, 0, 1e-12)

	// symmetric with unit diagonal
	for i := 0; i < 3; i++ {
		require.InDelta(t, 1.0, mustAt(t, c1, i, i), 1e-12)
		for j := 0; j < 3; j++ {
			require.False(t, math.IsNaN(mustAt(t, c1, i, j)))
			require.InDelta(t, mustAt(t, c1, i, j), mustAt(t, c1, j, i), 1e-15)
		}
	}
}
