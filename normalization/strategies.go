// SPDX-License-Identifier: MIT

package normalization

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Func normalizes one criterion column. cost selects the cost form.
// Implementations must return a fresh slice of len(x) and leave x untouched.
type Func func(x []float64, cost bool) []float64

// MinMax maps the column onto [0,1]. A constant column maps to ones.
func MinMax(x []float64, cost bool) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	lo, hi := floats.Min(x), floats.Max(x)
	if lo == hi {
		for i := range out {
			out[i] = 1
		}
		return out
	}
	span := hi - lo
	for i, v := range x {
		if cost {
			out[i] = (hi - v) / span
		} else {
			out[i] = (v - lo) / span
		}
	}

	return out
}

// Max divides by the column maximum; the cost form is its complement.
func Max(x []float64, cost bool) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	hi := floats.Max(x)
	for i, v := range x {
		if cost {
			out[i] = 1 - v/hi
		} else {
			out[i] = v / hi
		}
	}

	return out
}

// Sum divides by the column total. The cost form works on reciprocals.
func Sum(x []float64, cost bool) []float64 {
	out := make([]float64, len(x))
	if !cost {
		divideTo(out, x, floats.Sum(x))
		return out
	}
	for i, v := range x {
		out[i] = 1 / v
	}
	divideTo(out, out, floats.Sum(out))

	return out
}

// Vector divides by the Euclidean norm of the column.
func Vector(x []float64, cost bool) []float64 {
	out := make([]float64, len(x))
	divideTo(out, x, floats.Norm(x, 2))
	if cost {
		for i := range out {
			out[i] = 1 - out[i]
		}
	}

	return out
}

// Logarithmic divides ln x by ln Πx. The product is taken as Σ ln x so that
// long columns of large values do not overflow.
func Logarithmic(x []float64, cost bool) []float64 {
	out := make([]float64, len(x))
	var lnProd float64
	for i, v := range x {
		out[i] = math.Log(v)
		lnProd += out[i]
	}
	n := float64(len(x))
	for i := range out {
		if cost {
			out[i] = (1 - out[i]/lnProd) / (n - 1)
		} else {
			out[i] /= lnProd
		}
	}

	return out
}

// Linear divides by the maximum (profit) or divides the minimum by x (cost).
func Linear(x []float64, cost bool) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	if cost {
		lo := floats.Min(x)
		for i, v := range x {
			out[i] = lo / v
		}
		return out
	}
	divideTo(out, x, floats.Max(x))

	return out
}

// Nonlinear squares the profit ratio and cubes the cost ratio.
func Nonlinear(x []float64, cost bool) []float64 {
	out := Linear(x, cost)
	for i, v := range out {
		if cost {
			out[i] = v * v * v
		} else {
			out[i] = v * v
		}
	}

	return out
}

// EnhancedAccuracy spreads the distance to the best value over the column.
func EnhancedAccuracy(x []float64, cost bool) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	lo, hi := floats.Min(x), floats.Max(x)
	for i, v := range x {
		if cost {
			out[i] = v - lo
		} else {
			out[i] = hi - v
		}
	}
	total := floats.Sum(out)
	for i := range out {
		out[i] = 1 - out[i]/total
	}

	return out
}

// LaiHwang divides by the column range; the cost form is negative.
func LaiHwang(x []float64, cost bool) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	span := floats.Max(x) - floats.Min(x)
	if cost {
		span = -span
	}
	divideTo(out, x, span)

	return out
}

// ZavadskasTurskis measures the relative distance to the column extreme.
func ZavadskasTurskis(x []float64, cost bool) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	ref := floats.Min(x)
	if cost {
		ref = floats.Max(x)
	}
	for i, v := range x {
		out[i] = 1 - math.Abs((ref-v)/ref)
	}

	return out
}

// divideTo stores x[i]/d in dst. Dividing keeps x[i]/x[i] exactly 1, which
// scaling by the reciprocal does not.
func divideTo(dst, x []float64, d float64) {
	for i, v := range x {
		dst[i] = v / d
	}
}
