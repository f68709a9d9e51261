// SPDX-License-Identifier: MIT

package methods_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mcdm/methods"
	"github.com/katalvlaran/mcdm/normalization"
	"github.com/stretchr/testify/require"
)

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := map[string]func(){
		"v<0":           func() { methods.WithV(-0.1) },
		"v>1":           func() { methods.WithV(1.5) },
		"v NaN":         func() { methods.WithV(math.NaN()) },
		"lambda":        func() { methods.WithLambda(2) },
		"tau":           func() { methods.WithTau(-1) },
		"normalization": func() { methods.WithNormalization(nil) },
		"bounds":        func() { methods.WithBounds([][2]float64{{0, math.Inf(1)}}) },
		"shared":        func() { methods.WithSharedThreshold(0, -1) },
		"expert":        func() { methods.WithExpert(nil) },
		"rate":          func() { methods.WithRateFunction(nil) },
		"max objects":   func() { methods.WithMaxObjects(-1) },
		"preference":    func() { methods.WithPreference(methods.PreferenceKind(-1)) },
	}
	for name, fn := range tests {
		require.Panics(t, fn, name)
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	X := fromRows(t, vikorRows)
	w, T := repeat(0.25, 4), types(t, 1, 1, 1, 1)

	def, err := methods.NewVIKOR().Rank(X, w, T)
	require.NoError(t, err)
	explicit, err := methods.NewVIKOR(methods.WithV(methods.DefaultV)).Rank(X, w, T)
	require.NoError(t, err)
	require.Equal(t, def, explicit)

	// last option wins; nil options are skipped
	last, err := methods.NewVIKOR(methods.WithV(0), nil, methods.WithV(methods.DefaultV)).Rank(X, w, T)
	require.NoError(t, err)
	require.Equal(t, def, last)
}

func TestWithNormalization(t *testing.T) {
	t.Parallel()

	X := fromRows(t, decisionRows)
	w, T := []float64{0.3, 0.2, 0.5}, types(t, -1, -1, 1)

	minmax, err := methods.NewTOPSIS().Rank(X, w, T)
	require.NoError(t, err)
	explicit, err := methods.NewTOPSIS(methods.WithNormalization(normalization.MinMax)).Rank(X, w, T)
	require.NoError(t, err)
	require.Equal(t, minmax, explicit)

	vector, err := methods.NewTOPSIS(methods.WithNormalization(normalization.Vector)).Rank(X, w, T)
	require.NoError(t, err)
	require.NotEqual(t, minmax, vector)
}

func TestWithBoundsCopies(t *testing.T) {
	t.Parallel()

	bounds := [][2]float64{{0, 10}, {0, 10}}
	m := methods.NewSPOTIS(methods.WithBounds(bounds))
	bounds[0] = [2]float64{5, 5} // must not reach the method

	_, err := m.Rank(fromRows(t, [][]float64{{1, 2}, {3, 4}}), []float64{0.5, 0.5}, types(t, 1, 1))
	require.NoError(t, err)
}

func TestCOCOSO_LambdaAndCODAS_Tau(t *testing.T) {
	t.Parallel()

	X := fromRows(t, decisionRows)
	w, T := []float64{0.3, 0.2, 0.5}, types(t, -1, -1, 1)

	a, err := methods.NewCOCOSO().Rank(X, w, T)
	require.NoError(t, err)
	b, err := methods.NewCOCOSO(methods.WithLambda(methods.DefaultLambda)).Rank(X, w, T)
	require.NoError(t, err)
	require.Equal(t, a, b)

	// τ above every distance gap turns CODAS into a pure Euclidean ranking.
	pure, err := methods.NewCODAS(methods.WithTau(1e6)).Rank(X, w, T)
	require.NoError(t, err)
	mixed, err := methods.NewCODAS(methods.WithTau(0)).Rank(X, w, T)
	require.NoError(t, err)
	require.NotEqual(t, pure, mixed)
}
