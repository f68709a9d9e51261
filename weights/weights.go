// SPDX-License-Identifier: MIT

package weights

import (
	"math"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Func is the shared weighting signature.
type Func func(m matrix.Matrix, types []criteria.Type) ([]float64, error)

// Equal assigns 1/m to each of the m criteria.
func Equal(m matrix.Matrix, _ []criteria.Type) ([]float64, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, weightsErrorf("Equal", err)
	}
	out := make([]float64, m.Cols())
	for j := range out {
		out[j] = 1 / float64(len(out))
	}

	return out, nil
}

// Entropy weights criteria by 1 − e_j, where e_j is the Shannon entropy of
// the sum-normalized column divided by ln n.
//
// Implementation:
//   - Stage 1: validate (n ≥ 2, no negative values) and sum-normalize columns.
//   - Stage 2: e_j = stat.Entropy(column) / ln n; zero entries contribute 0.
//   - Stage 3: w ∝ 1 − e_j.
//
// Errors:
//   - ErrTooFewAlternatives, ErrNegativeValue, normalization.ErrNonFinite (zero-sum column),
//     ErrDegenerate (every column uniform).
func Entropy(m matrix.Matrix, _ []criteria.Type) ([]float64, error) {
	const op = "Entropy"
	X, err := prepare(op, m, 2)
	if err != nil {
		return nil, err
	}
	if err = requireNonNegative(op, X, false); err != nil {
		return nil, err
	}
	P, err := normalization.Matrix(X, normalization.Sum, nil)
	if err != nil {
		return nil, weightsErrorf(op, err)
	}

	lnN := math.Log(float64(X.Rows()))
	info := make([]float64, X.Cols())
	for j := range info {
		col, _ := P.Col(j)
		info[j] = 1 - stat.Entropy(col)/lnN
	}

	return proportional(op, info)
}

// StandardDeviation weights criteria by the population standard deviation
// of the raw columns.
func StandardDeviation(m matrix.Matrix, _ []criteria.Type) ([]float64, error) {
	const op = "StandardDeviation"
	X, err := prepare(op, m, 1)
	if err != nil {
		return nil, err
	}
	sd := make([]float64, X.Cols())
	for j := range sd {
		col, _ := X.Col(j)
		sd[j] = stat.PopStdDev(col, nil)
	}

	return proportional(op, sd)
}

// Variance weights criteria by the population variance of the min-max
// normalized columns.
func Variance(m matrix.Matrix, _ []criteria.Type) ([]float64, error) {
	const op = "Variance"
	X, err := prepare(op, m, 1)
	if err != nil {
		return nil, err
	}
	N, err := normalization.Matrix(X, normalization.MinMax, nil)
	if err != nil {
		return nil, weightsErrorf(op, err)
	}
	v := make([]float64, N.Cols())
	for j := range v {
		col, _ := N.Col(j)
		v[j] = stat.PopVariance(col, nil)
	}

	return proportional(op, v)
}

// Gini weights criteria by the Gini coefficient of each column,
//
//	G_j = Σ_i Σ_k |x_ij − x_kj| / (2 n² mean_j).
//
// Negative data is rejected; a constant column (all zeros included) scores 0.
func Gini(m matrix.Matrix, _ []criteria.Type) ([]float64, error) {
	const op = "Gini"
	X, err := prepare(op, m, 1)
	if err != nil {
		return nil, err
	}
	if err = requireNonNegative(op, X, false); err != nil {
		return nil, err
	}
	n := float64(X.Rows())
	g := make([]float64, X.Cols())
	for j := range g {
		col, _ := X.Col(j)
		var acc float64
		for _, a := range col {
			for _, b := range col {
				acc += math.Abs(a - b)
			}
		}
		g[j] = acc / (2 * n * n * stat.Mean(col, nil))
		if acc == 0 {
			g[j] = 0 // constant column, including all zeros
		}
	}

	return proportional(op, g)
}

// uniformCosTol is how close to 1 a cosine must be for Angle to treat the
// column as uniform. arccos is too steep near 1 to rely on exact rounding.
const uniformCosTol = 1e-12

// Angle weights criteria by the angle between each sum-normalized column
// and the uniform column (1/m, …, 1/m).
func Angle(m matrix.Matrix, _ []criteria.Type) ([]float64, error) {
	const op = "Angle"
	X, err := prepare(op, m, 1)
	if err != nil {
		return nil, err
	}
	if err = requireNonNegative(op, X, false); err != nil {
		return nil, err
	}
	N, err := normalization.Matrix(X, normalization.Sum, nil)
	if err != nil {
		return nil, weightsErrorf(op, err)
	}

	rows, cols := float64(N.Rows()), float64(N.Cols())
	uniformNorm := math.Sqrt(rows) / cols
	u := make([]float64, N.Cols())
	for j := range u {
		col, _ := N.Col(j)
		cos := (floats.Sum(col) / cols) / (floats.Norm(col, 2) * uniformNorm)
		if 1-cos < uniformCosTol {
			continue // uniform column, zero angle
		}
		u[j] = math.Acos(math.Max(-1, cos))
	}

	return proportional(op, u)
}
