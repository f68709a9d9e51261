// SPDX-License-Identifier: MIT

package methods_test

import (
	"testing"

	"github.com/katalvlaran/mcdm/methods"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{
		"aras", "cocoso", "codas", "copras", "edas", "mabac", "mairca",
		"marcos", "moora", "ocra", "promethee_ii", "spotis", "topsis", "vikor",
	}, methods.Names())

	m, err := methods.ByName(" TOPSIS ")
	require.NoError(t, err)
	require.Equal(t, "TOPSIS", m.Name())

	m, err = methods.ByName("promethee-ii", methods.WithPreference(methods.VShape), methods.WithSharedThreshold(0, 2))
	require.NoError(t, err)
	got, err := m.Rank(fromRows(t, prometheeRows), []float64{0.5, 0.3, 0.2}, types(t, 1, 1, 1))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.075, -0.225, 0.15}, got, refTol)

	_, err = methods.ByName("electre")
	require.ErrorIs(t, err, methods.ErrUnknownMethod)
	require.Contains(t, err.Error(), "topsis")
}
