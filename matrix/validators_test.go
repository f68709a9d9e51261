// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mcdm/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	t.Parallel()

	sq := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	rect := fromRows(t, [][]float64{{1, 2, 3}})

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"NotNil/nil", matrix.ValidateNotNil(nil), matrix.ErrNilMatrix},
		{"NotNil/ok", matrix.ValidateNotNil(sq), nil},
		{"NonEmpty/nil", matrix.ValidateNonEmpty(nil), matrix.ErrNilMatrix},
		{"NonEmpty/ok", matrix.ValidateNonEmpty(rect), nil},
		{"SameShape/mismatch", matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch},
		{"Square/rect", matrix.ValidateSquare(rect), matrix.ErrNonSquare},
		{"Square/ok", matrix.ValidateSquare(sq), nil},
		{"VecLen/nil", matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix},
		{"VecLen/short", matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch},
		{"BinarySameShape/nil", matrix.ValidateBinarySameShape(sq, nil), matrix.ErrNilMatrix},
		{"MulCompatible/bad", matrix.ValidateMulCompatible(rect, rect), matrix.ErrDimensionMismatch},
		{"MulCompatible/ok", matrix.ValidateMulCompatible(sq, sq), nil},
		{"Finite/ok", matrix.ValidateFinite(hide{sq}), nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if tc.want == nil {
				require.NoError(t, tc.err)
				return
			}
			require.ErrorIs(t, tc.err, tc.want)
		})
	}
}

func TestValidateFinite_ReportsCoordinates(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseWithOptions(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, math.NaN()))

	err = matrix.ValidateFinite(m)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,0)")

	err = matrix.ValidateFinite(hide{m})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestValidateReciprocal(t *testing.T) {
	t.Parallel()

	ok := fromRows(t, [][]float64{
		{0.5, 1, 0.25},
		{0, 0.5, 0.5},
		{0.75, 0.5, 0.5},
	})
	require.NoError(t, matrix.ValidateReciprocal(ok, matrix.DefaultEpsilon))

	badDiag := fromRows(t, [][]float64{{1, 0}, {1, 0.5}})
	require.ErrorIs(t, matrix.ValidateReciprocal(badDiag, matrix.DefaultEpsilon), matrix.ErrNotReciprocal)

	badPair := fromRows(t, [][]float64{{0.5, 0.7}, {0.7, 0.5}})
	require.ErrorIs(t, matrix.ValidateReciprocal(badPair, matrix.DefaultEpsilon), matrix.ErrNotReciprocal)

	require.ErrorIs(t, matrix.ValidateReciprocal(fromRows(t, [][]float64{{0.5, 0.5}}), 0), matrix.ErrNonSquare)
}
