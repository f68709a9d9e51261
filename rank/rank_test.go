// SPDX-License-Identifier: MIT
package rank_test

import (
	"testing"

	"github.com/katalvlaran/mcdm/rank"
	"github.com/stretchr/testify/require"
)

func TestRankdata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         []float64
		descending bool
		want       []float64
	}{
		{"distinct/asc", []float64{0, 3, 2, 5}, false, []float64{1, 3, 2, 4}},
		{"distinct/desc", []float64{0, 3, 2, 5}, true, []float64{4, 2, 3, 1}},
		{"ties/asc", []float64{0, 3, 2, 3}, false, []float64{1, 3.5, 2, 3.5}},
		{"ties/desc", []float64{0, 3, 2, 3}, true, []float64{4, 1.5, 3, 1.5}},
		{"all equal", []float64{7, 7, 7}, false, []float64{2, 2, 2}},
		{"single", []float64{-1}, true, []float64{1}},
		{"empty", nil, false, []float64{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, rank.Rankdata(tc.in, tc.descending))
		})
	}
}

func TestRankdata_DoesNotMutate(t *testing.T) {
	t.Parallel()

	a := []float64{0.3, 0.1, 0.2}
	require.Equal(t, []float64{3, 1, 2}, rank.Ascending(a))
	require.Equal(t, []float64{1, 3, 2}, rank.Descending(a))
	require.Equal(t, []float64{0.3, 0.1, 0.2}, a)
}
