// SPDX-License-Identifier: MIT

package methods

// tfn is a triangular fuzzy number (a, m, b): membership 1 at m, falling
// linearly to 0 at a and at b. a == m or m == b gives a one-sided ramp.
type tfn struct{ a, m, b float64 }

// membership returns the degree of x in [0,1].
func (t tfn) membership(x float64) float64 {
	switch {
	case x == t.m:
		return 1
	case t.a < x && x < t.m:
		return (x - t.a) / (t.m - t.a)
	case t.m < x && x < t.b:
		return (t.b - x) / (t.b - t.m)
	default:
		return 0
	}
}

// tfnsFor builds one TFN per characteristic value of a criterion. The first
// and last are one-sided ramps; interior ones span to their neighbours.
func tfnsFor(cv []float64) []tfn {
	k := len(cv)
	out := make([]tfn, k)
	out[0] = tfn{cv[0], cv[0], cv[1]}
	for i := 1; i < k-1; i++ {
		out[i] = tfn{cv[i-1], cv[i], cv[i+1]}
	}
	out[k-1] = tfn{cv[k-2], cv[k-1], cv[k-1]}

	return out
}
