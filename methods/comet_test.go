// SPDX-License-Identifier: MIT

package methods_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/methods"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

var (
	gridValues = [][]float64{{0, 0.5, 1}, {0, 0.5, 1}}
	gridAlts   = [][]float64{{0.2, 0.7}, {1, 1}, {0.5, 0.25}, {0, 0}}
	gridRates  = []float64{0.45, 1.0, 0.375, 0.0}
)

func sumRate(co *matrix.Dense) ([]float64, error) { return matrix.RowSums(co) }

func sumExpert(a, b []float64) float64 {
	sa, sb := floats.Sum(a), floats.Sum(b)
	switch {
	case sa > sb:
		return 1
	case sa < sb:
		return 0
	default:
		return 0.5
	}
}

func TestCOMET_Lattice(t *testing.T) {
	t.Parallel()

	c, err := methods.NewCOMET(gridValues, methods.WithRateFunction(sumRate))
	require.NoError(t, err)

	co := c.CharacteristicObjects()
	require.Equal(t, 9, co.Rows())
	require.Equal(t, []float64{0, 0.5}, co.ToRows()[1])
	require.Equal(t, []float64{0.5, 0}, co.ToRows()[3])
	require.Equal(t, []float64{0, 0.25, 0.5, 0.25, 0.5, 0.75, 0.5, 0.75, 1}, c.Preferences())

	got, err := c.Rate(fromRows(t, gridAlts))
	require.NoError(t, err)
	require.InDeltaSlice(t, gridRates, got, 1e-12)
}

func TestCOMET_ExpertMatchesRateFunction(t *testing.T) {
	t.Parallel()

	byRate, err := methods.NewCOMET(gridValues, methods.WithRateFunction(sumRate))
	require.NoError(t, err)
	byExpert, err := methods.NewCOMET(gridValues, methods.WithExpert(sumExpert))
	require.NoError(t, err)

	require.Equal(t, byRate.Preferences(), byExpert.Preferences())
	require.Equal(t, byRate.MEJ().ToRows(), byExpert.MEJ().ToRows())
	require.NoError(t, matrix.ValidateReciprocal(byExpert.MEJ(), matrix.DefaultEpsilon))

	got, err := byExpert.Rate(hide{fromRows(t, gridAlts)})
	require.NoError(t, err)
	require.InDeltaSlice(t, gridRates, got, 1e-12)
}

func TestCOMET_ExpertTakesPrecedence(t *testing.T) {
	t.Parallel()

	failing := func(*matrix.Dense) ([]float64, error) { return nil, errors.New("must not be called") }
	_, err := methods.NewCOMET(gridValues, methods.WithRateFunction(failing), methods.WithExpert(sumExpert))
	require.NoError(t, err)
}

func TestCOMET_MEJIsCachedCopy(t *testing.T) {
	t.Parallel()

	c, err := methods.NewCOMET(gridValues, methods.WithRateFunction(sumRate))
	require.NoError(t, err)

	first := c.MEJ()
	require.Equal(t, 0.5, mustAt(t, first, 4, 4))
	require.Equal(t, 0.0, mustAt(t, first, 0, 8))
	require.Equal(t, 1.0, mustAt(t, first, 8, 0))
	require.Equal(t, 0.5, mustAt(t, first, 1, 3)) // equal p

	require.NoError(t, first.Set(0, 8, 0.9))
	require.Equal(t, 0.0, mustAt(t, c.MEJ(), 0, 8))
}

func TestCOMET_TOPSISRateFunction(t *testing.T) {
	t.Parallel()

	X := fromRows(t, [][]float64{
		{64, 128, 2.9, 4.3, 3.2, 280, 495, 24763, 3990},
		{28, 56, 3.1, 3.8, 3.8, 255, 417, 12975, 2999},
		{8, 16, 3.5, 5.3, 4.8, 125, 636, 5725, 539},
		{12, 24, 3.7, 4.8, 4.5, 105, 637, 8468, 549},
		{10, 20, 3.7, 5.3, 4.9, 125, 539, 6399, 499},
		{8, 16, 3.6, 4.4, 4.0, 65, 501, 4834, 329},
		{6, 12, 3.7, 4.6, 4.2, 65, 604, 4562, 299},
		{16, 32, 3.4, 4.9, 4.2, 105, 647, 10428, 799},
		{8, 16, 3.6, 5.0, 4.5, 125, 609, 5615, 399},
		{18, 36, 3.0, 4.8, 4.3, 165, 480, 8848, 979},
		{24, 48, 3.8, 4.5, 4.0, 280, 509, 13552, 1399},
		{28, 56, 2.5, 3.8, 2.8, 205, 376, 8585, 10000},
	})
	cv, err := methods.CharacteristicValues(X)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 64}, cv[0])

	T := types(t, 1, 1, 1, 1, 1, -1, 1, 1, -1)
	c, err := methods.NewCOMET(cv, methods.WithRateFunction(methods.TOPSISRateFunction(repeat(1.0/9, 9), T)))
	require.NoError(t, err)

	got, err := c.Rate(X)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{
		0.5433488870092013, 0.3446736576703326, 0.6115276394787067, 0.6167559217507637,
		0.6059704295394311, 0.4842416402935448, 0.5516005929290062, 0.6099921503245972,
		0.5719077688872188, 0.4711200306276342, 0.4979107669752864, 0.14517849510662517,
	}, got, refTol)

	// Rebuilding from the same inputs is bit-identical.
	again, err := methods.NewCOMET(cv, methods.WithRateFunction(methods.TOPSISRateFunction(repeat(1.0/9, 9), T)))
	require.NoError(t, err)
	second, err := again.Rate(X)
	require.NoError(t, err)
	require.Equal(t, got, second)

	// Rank ignores weights and types beyond their shape.
	ranked, err := c.Rank(X, repeat(0, 9), criteria.AllProfit(9))
	require.NoError(t, err)
	require.Equal(t, got, ranked)
}

func TestCOMET_OutsideRangeRatesZero(t *testing.T) {
	t.Parallel()

	c, err := methods.NewCOMET(gridValues, methods.WithRateFunction(sumRate))
	require.NoError(t, err)
	got, err := c.Rate(fromRows(t, [][]float64{{2, 0.5}, {-1, 1}}))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, got)
}

func TestCOMET_Errors(t *testing.T) {
	t.Parallel()

	rate := methods.WithRateFunction(sumRate)
	tests := []struct {
		name    string
		cvalues [][]float64
		opts    []methods.Option
		want    error
	}{
		{"no criteria", nil, []methods.Option{rate}, methods.ErrCharacteristicValues},
		{"single value", [][]float64{{0, 1}, {1}}, []methods.Option{rate}, methods.ErrCharacteristicValues},
		{"duplicate", [][]float64{{0, 0, 1}}, []methods.Option{rate}, methods.ErrCharacteristicValues},
		{"unsorted", [][]float64{{1, 0}}, []methods.Option{rate}, methods.ErrCharacteristicValues},
		{"no strategy", gridValues, nil, methods.ErrNoRankingStrategy},
		{
			"judgment range", gridValues,
			[]methods.Option{methods.WithExpert(func(a, b []float64) float64 { return 2 })},
			methods.ErrJudgmentRange,
		},
		{
			"lattice too large", gridValues,
			[]methods.Option{methods.WithExpert(sumExpert), methods.WithMaxObjects(8)},
			methods.ErrLatticeTooLarge,
		},
		{
			"rate length", gridValues,
			[]methods.Option{methods.WithRateFunction(func(*matrix.Dense) ([]float64, error) { return []float64{1}, nil })},
			methods.ErrRateLength,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := methods.NewCOMET(tc.cvalues, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := methods.NewCOMET([][]float64{{0, 1}, {1}}, rate)
	require.Contains(t, err.Error(), "criterion 1")

	// The guard does not apply to rate-function mode or when disabled.
	_, err = methods.NewCOMET(gridValues, rate, methods.WithMaxObjects(8))
	require.NoError(t, err)
	_, err = methods.NewCOMET(gridValues, methods.WithExpert(sumExpert), methods.WithMaxObjects(0))
	require.NoError(t, err)

	c, err := methods.NewCOMET(gridValues, rate)
	require.NoError(t, err)
	_, err = c.Rate(fromRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, methods.ErrCriteriaMismatch)

	_, err = methods.CharacteristicValues(fromRows(t, [][]float64{{1, 2}, {1, 3}}))
	require.ErrorIs(t, err, methods.ErrCharacteristicValues)
}

func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
