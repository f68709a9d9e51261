// SPDX-License-Identifier: MIT
package normalization_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
	"github.com/stretchr/testify/require"
)

const refTol = 1e-8

type hide struct{ matrix.Matrix }

var (
	decisionRows = [][]float64{
		{66, 56, 95},
		{61, 55, 166},
		{65, 49, 113},
		{95, 56, 99},
		{63, 43, 178},
		{74, 59, 140},
	}
	logRows = [][]float64{
		{2, 10, 6},
		{2, 5, 7},
		{3, 3, 11},
		{4, 2, 2},
		{2, 9, 4},
		{1, 5, 6},
	}
	costCostProfit = []criteria.Type{criteria.Cost, criteria.Cost, criteria.Profit}
)

func flatten(t *testing.T, m *matrix.Dense) []float64 {
	t.Helper()
	var out []float64
	for _, row := range m.ToRows() {
		out = append(out, row...)
	}

	return out
}

func TestReferenceGrids(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   normalization.Func
		rows [][]float64
		want []float64
	}{
		{"minmax", normalization.MinMax, decisionRows, []float64{
			0.85294118, 0.1875, 0.0, 1.0, 0.25, 0.85542169, 0.88235294, 0.625, 0.21686747,
			0.0, 0.1875, 0.04819277, 0.94117647, 1.0, 1.0, 0.61764706, 0.0, 0.54216867}},
		{"max", normalization.Max, decisionRows, []float64{
			0.30526316, 0.05084746, 0.53370787, 0.35789474, 0.06779661, 0.93258427, 0.31578947, 0.16949153,
			0.63483146, 0.0, 0.05084746, 0.55617978, 0.33684211, 0.27118644, 1.0, 0.22105263, 0.0, 0.78651685}},
		{"sum", normalization.Sum, decisionRows, []float64{
			0.17447136, 0.155945, 0.12010114, 0.1887723, 0.15878037, 0.20986094, 0.17715554, 0.17822286,
			0.14285714, 0.12121168, 0.155945, 0.12515803, 0.18277952, 0.20309117, 0.22503161, 0.15560959,
			0.1480156, 0.17699115}},
		{"vector", normalization.Vector, decisionRows, []float64{
			0.62375904, 0.57085288, 0.28587109, 0.65226214, 0.57851622, 0.49952212, 0.62945966, 0.62449627,
			0.34003614, 0.45844104, 0.57085288, 0.29790777, 0.6408609, 0.67047632, 0.53563215, 0.57815408,
			0.54786285, 0.42128371}},
		{"logarithmic", normalization.Logarithmic, logRows, []float64{
			0.16962777, 0.15157776, 0.1790548, 0.16962777, 0.16615431, 0.19445945, 0.15186115, 0.17689672,
			0.2396274, 0.13925554, 0.18542345, 0.06926785, 0.16962777, 0.15379344, 0.1385357, 0.2, 0.16615431,
			0.1790548}},
		{"linear", normalization.Linear, decisionRows, []float64{
			0.92424242, 0.76785714, 0.53370787, 1.0, 0.78181818, 0.93258427, 0.93846154, 0.87755102, 0.63483146,
			0.64210526, 0.76785714, 0.55617978, 0.96825397, 1.0, 1.0, 0.82432432, 0.72881356, 0.78651685}},
		{"nonlinear", normalization.Nonlinear, decisionRows, []float64{
			0.78951011, 0.4527321, 0.28484409, 1.0, 0.47787829, 0.86971342, 0.82651252, 0.67579835,
			0.40301098, 0.26473947, 0.4527321, 0.30933594, 0.90775334, 1.0, 1.0, 0.56013711, 0.38712332,
			0.61860876}},
		{"enhanced_accuracy", normalization.EnhancedAccuracy, decisionRows, []float64{
			0.9137931, 0.78333333, 0.70036101, 1.0, 0.8, 0.9566787, 0.93103448, 0.9, 0.76534296, 0.4137931,
			0.78333333, 0.71480144, 0.96551724, 1.0, 1.0, 0.77586207, 0.73333333, 0.86281588}},
		{"lai_hwang", normalization.LaiHwang, decisionRows, []float64{
			-1.94117647, -3.5, 1.14457831, -1.79411765, -3.4375, 2.0, -1.91176471, -3.0625, 1.36144578,
			-2.79411765, -3.5, 1.19277108, -1.85294118, -2.6875, 2.14457831, -2.17647059, -3.6875, 1.68674699}},
		{"zavadskas_turskis", normalization.ZavadskasTurskis, decisionRows, []float64{
			0.69473684, 0.94915254, 1.0, 0.64210526, 0.93220339, 0.25263158, 0.68421053, 0.83050847,
			0.81052632, 1.0, 0.94915254, 0.95789474, 0.66315789, 0.72881356, 0.12631579, 0.77894737, 1.0,
			0.52631579}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			X, err := matrix.NewDenseFromRows(tc.rows)
			require.NoError(t, err)

			N, err := normalization.Matrix(X, tc.fn, costCostProfit)
			require.NoError(t, err)
			require.InDeltaSlice(t, tc.want, flatten(t, N), refTol)

			viaName, err := normalization.ByName(tc.name)
			require.NoError(t, err)
			N2, err := normalization.Matrix(hide{X}, viaName, costCostProfit)
			require.NoError(t, err)
			require.Equal(t, flatten(t, N), flatten(t, N2))

			require.Equal(t, tc.rows[0][0], X.ToRows()[0][0]) // input untouched
		})
	}
}

func TestMinMax_ConstantColumnIsOnes(t *testing.T) {
	t.Parallel()

	require.Equal(t, []float64{1, 1, 1}, normalization.MinMax([]float64{4, 4, 4}, false))
	require.Equal(t, []float64{1, 1, 1}, normalization.MinMax([]float64{4, 4, 4}, true))
}

// The best entry of a column maps to exactly 1 under the ratio strategies.
func TestRatioStrategies_BestIsExactlyOne(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(42))
	col := make([]float64, 6)
	for trial := 0; trial < 1000; trial++ {
		lo, hi := 0, 0
		for i := range col {
			col[i] = 1 + 99*r.Float64()
			if col[i] < col[lo] {
				lo = i
			}
			if col[i] > col[hi] {
				hi = i
			}
		}
		require.Equal(t, 1.0, normalization.Linear(col, false)[hi], "trial %d", trial)
		require.Equal(t, 1.0, normalization.Linear(col, true)[lo], "trial %d", trial)
		require.Equal(t, 1.0, normalization.Max(col, false)[hi], "trial %d", trial)
		require.Equal(t, 1.0, normalization.Nonlinear(col, false)[hi], "trial %d", trial)
	}
}

func TestStrategiesDoNotMutateInput(t *testing.T) {
	t.Parallel()

	for _, name := range normalization.Names() {
		fn, err := normalization.ByName(name)
		require.NoError(t, err)
		x := []float64{3, 1, 2}
		_ = fn(x, true)
		_ = fn(x, false)
		require.Equal(t, []float64{3, 1, 2}, x, name)
	}
}

func TestMatrix_NilTypesMeansProfit(t *testing.T) {
	t.Parallel()

	X, err := matrix.NewDenseFromRows([][]float64{{1, 10}, {3, 30}})
	require.NoError(t, err)

	N, err := normalization.Matrix(X, normalization.Max, nil)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1.0 / 3, 1.0 / 3}, {1, 1}}, N.ToRows())
}

func TestMatrix_Errors(t *testing.T) {
	t.Parallel()

	X, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {0, 2}})
	require.NoError(t, err)

	_, err = normalization.Matrix(X, normalization.Sum, nil)
	require.ErrorIs(t, err, normalization.ErrNonFinite)
	require.Contains(t, err.Error(), "column 0")

	_, err = normalization.Matrix(X, normalization.LaiHwang, nil)
	require.ErrorIs(t, err, normalization.ErrNonFinite)

	_, err = normalization.Matrix(X, nil, nil)
	require.ErrorIs(t, err, normalization.ErrNilFunc)

	_, err = normalization.Matrix(X, normalization.MinMax, []criteria.Type{criteria.Profit})
	require.ErrorIs(t, err, criteria.ErrLengthMismatch)

	_, err = normalization.Matrix(X, normalization.MinMax, []criteria.Type{criteria.Profit, 3})
	require.ErrorIs(t, err, criteria.ErrInvalidType)

	_, err = normalization.Matrix(nil, normalization.MinMax, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	loose, err := matrix.NewDenseWithOptions(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.NaN()))
	_, err = normalization.Matrix(loose, normalization.MinMax, nil)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	short := func(x []float64, _ bool) []float64 { return x[:1] }
	_, err = normalization.Matrix(X, short, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestColumn(t *testing.T) {
	t.Parallel()

	got, err := normalization.Column([]float64{2, 4}, normalization.Linear, criteria.Cost)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0.5}, got)

	_, err = normalization.Column([]float64{0, 0}, normalization.Max, criteria.Profit)
	require.ErrorIs(t, err, normalization.ErrNonFinite)

	_, err = normalization.Column([]float64{1}, normalization.Max, 0)
	require.ErrorIs(t, err, criteria.ErrInvalidType)
}

func TestByName(t *testing.T) {
	t.Parallel()

	fn, err := normalization.ByName(" Enhanced-Accuracy ")
	require.NoError(t, err)
	require.NotNil(t, fn)

	_, err = normalization.ByName("zscore")
	require.ErrorIs(t, err, normalization.ErrUnknown)
	require.Contains(t, err.Error(), "minmax")

	require.Len(t, normalization.Names(), 10)
}
