// SPDX-License-Identifier: MIT

// Package rank converts preference scores into positional rankings.
//
// Ranks start at 1. Tied values share the average of the positions they
// occupy, so [0, 3, 2, 3] ranks as [1, 3.5, 2, 3.5]. The descending form
// gives position 1 to the largest value and is the usual choice for
// higher-is-better scores.
package rank

import "gonum.org/v1/gonum/floats"

// Rankdata ranks a, smallest first (or largest first when descending).
// Ties receive the mean of their positions. a is not modified.
//
// Inputs are expected to be finite; NaN values compare unordered and their
// resulting positions are unspecified.
//
// Complexity: O(n log n) time, O(n) space.
func Rankdata(a []float64, descending bool) []float64 {
	n := len(a)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	vals := make([]float64, n)
	copy(vals, a)
	inds := make([]int, n)
	floats.Argsort(vals, inds) // vals sorted ascending, inds[k] = origin of vals[k]

	var i, j, k int
	for i = 0; i < n; i = j {
		j = i + 1
		for j < n && vals[j] == vals[i] {
			j++
		}
		avg := float64(i+1+j) / 2 // mean of positions i+1..j
		for k = i; k < j; k++ {
			out[inds[k]] = avg
		}
	}

	if descending {
		for k = range out {
			out[k] = float64(n+1) - out[k]
		}
	}

	return out
}

// Ascending is Rankdata(a, false): the smallest value gets position 1.
func Ascending(a []float64) []float64 { return Rankdata(a, false) }

// Descending is Rankdata(a, true): the largest value gets position 1.
func Descending(a []float64) []float64 { return Rankdata(a, true) }
