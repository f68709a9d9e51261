// SPDX-License-Identifier: MIT
package criteria_test

import (
	"testing"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want criteria.Type
		ok   bool
	}{
		{"profit", criteria.Profit, true},
		{" MAX ", criteria.Profit, true},
		{"+1", criteria.Profit, true},
		{"benefit", criteria.Profit, true},
		{"cost", criteria.Cost, true},
		{"Min", criteria.Cost, true},
		{"-1", criteria.Cost, true},
		{"0", 0, false},
		{"", 0, false},
		{"2", 0, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			got, err := criteria.ParseType(tc.in)
			if !tc.ok {
				require.ErrorIs(t, err, criteria.ErrInvalidType)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	var ty criteria.Type
	require.NoError(t, ty.UnmarshalText([]byte("cost")))
	require.Equal(t, criteria.Cost, ty)
	b, err := ty.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "cost", string(b))

	_, err = criteria.Type(0).MarshalText()
	require.ErrorIs(t, err, criteria.ErrInvalidType)
	require.Equal(t, "Type(0)", criteria.Type(0).String())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, criteria.Validate([]criteria.Type{criteria.Profit, criteria.Cost}, 2))

	err := criteria.Validate([]criteria.Type{criteria.Profit}, 3)
	require.ErrorIs(t, err, criteria.ErrLengthMismatch)
	require.Contains(t, err.Error(), "got 1 types for 3 criteria")

	err = criteria.Validate([]criteria.Type{criteria.Profit, 0}, 2)
	require.ErrorIs(t, err, criteria.ErrInvalidType)
	require.Contains(t, err.Error(), "types[1]")
}

func TestFromInts(t *testing.T) {
	t.Parallel()

	got, err := criteria.FromInts([]int{1, -1, 1})
	require.NoError(t, err)
	require.Equal(t, []criteria.Type{criteria.Profit, criteria.Cost, criteria.Profit}, got)

	_, err = criteria.FromInts([]int{1, 0})
	require.ErrorIs(t, err, criteria.ErrInvalidType)
	_, err = criteria.FromInts([]int{255})
	require.ErrorIs(t, err, criteria.ErrInvalidType)
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	types := []criteria.Type{criteria.Cost, criteria.Profit, criteria.Cost}
	require.True(t, criteria.HasCost(types))
	require.False(t, criteria.HasCost(criteria.AllProfit(4)))
	require.Equal(t, []criteria.Type{criteria.Profit, criteria.Cost, criteria.Profit}, criteria.Reverse(types))

	profit, cost := criteria.Split(types)
	require.Equal(t, []int{1}, profit)
	require.Equal(t, []int{0, 2}, cost)
	require.Equal(t, -1.0, criteria.Cost.Sign())
	require.True(t, criteria.Cost.IsCost())
}
