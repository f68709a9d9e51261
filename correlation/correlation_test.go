// SPDX-License-Identifier: MIT
package correlation_test

import (
	"testing"

	"github.com/katalvlaran/mcdm/correlation"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func TestCoefficients(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 1, 3, 5, 4}
	xt := []float64{1, 2, 3, 4}
	yt := []float64{1, 2.5, 2.5, 4}

	tests := []struct {
		name     string
		fn       correlation.Func
		want     float64
		wantTies float64
	}{
		{"pearson", correlation.Pearson, 0.8, 0.9486832980505138},
		{"spearman", correlation.Spearman, 0.8, 0.9486832980505138},
		{"weighted_spearman", correlation.WeightedSpearman, 0.8, 0.95},
		{"ws", correlation.RankSimilarity, 0.7630208333333334, 0.90625},
		{"kendall_tau", correlation.KendallTau, 0.6, 0.8333333333333333},
		{"goodman_kruskal", correlation.GoodmanKruskalGamma, 0.6, 1.0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.fn(x, y)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tol)

			got, err = tc.fn(xt, yt)
			require.NoError(t, err)
			require.InDelta(t, tc.wantTies, got, tol)

			self, err := tc.fn(x, x)
			require.NoError(t, err)
			require.InDelta(t, 1.0, self, tol)

			byName, err := correlation.ByName(tc.name)
			require.NoError(t, err)
			again, err := byName(x, y)
			require.NoError(t, err)
			require.InDelta(t, tc.want, again, tol)

			_, err = tc.fn(x, y[:3])
			require.ErrorIs(t, err, correlation.ErrLengthMismatch)
			_, err = tc.fn([]float64{1}, []float64{1})
			require.ErrorIs(t, err, correlation.ErrTooShort)
		})
	}
}

func TestPearson_RawValues(t *testing.T) {
	t.Parallel()

	r, err := correlation.Pearson([]float64{1.5, 2, 3.7, 4}, []float64{10, 12, 15, 20})
	require.NoError(t, err)
	require.InDelta(t, 0.9242098578041332, r, tol)
}

func TestDegenerateInputs(t *testing.T) {
	t.Parallel()

	flat := []float64{3, 3, 3}
	other := []float64{1, 2, 3}

	_, err := correlation.Pearson(flat, other)
	require.ErrorIs(t, err, correlation.ErrZeroVariance)
	_, err = correlation.Spearman(other, flat)
	require.ErrorIs(t, err, correlation.ErrZeroVariance)
	_, err = correlation.GoodmanKruskalGamma(flat, other)
	require.ErrorIs(t, err, correlation.ErrUndefined)

	tau, err := correlation.KendallTau(flat, other)
	require.NoError(t, err)
	require.Equal(t, 0.0, tau)
}

func TestMatrix(t *testing.T) {
	t.Parallel()

	rankings := [][]float64{
		{1, 2, 3, 4, 5},
		{2, 1, 3, 5, 4},
		{5, 4, 3, 2, 1},
	}
	M, err := correlation.Matrix(rankings, correlation.Spearman)
	require.NoError(t, err)
	require.Equal(t, 3, M.Rows())

	rows := M.ToRows()
	require.InDelta(t, 1.0, rows[0][0], tol)
	require.InDelta(t, 0.8, rows[0][1], tol)
	require.InDelta(t, -1.0, rows[0][2], tol)
	require.InDelta(t, rows[1][2], rows[2][1], tol)

	_, err = correlation.Matrix(nil, correlation.Spearman)
	require.ErrorIs(t, err, correlation.ErrNoRankings)

	_, err = correlation.Matrix([][]float64{{1, 2}, {1}}, correlation.KendallTau)
	require.ErrorIs(t, err, correlation.ErrLengthMismatch)
}

func TestByName_Unknown(t *testing.T) {
	t.Parallel()

	_, err := correlation.ByName("cosine")
	require.ErrorIs(t, err, correlation.ErrUnknown)
	require.Contains(t, err.Error(), "spearman")
	require.Len(t, correlation.Names(), 6)
}
