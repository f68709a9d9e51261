// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalization"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// nullSpaceRcond scales the largest singular value into the cut-off below
// which a singular value counts as zero.
const nullSpaceRcond = 1e-10

// CILOS (Criterion Impact LOSs) weights criteria by the relative loss each
// one suffers when another criterion is driven to its best value.
//
// Implementation:
//   - Stage 1: cost columns become min/x, then every column is sum-normalized.
//   - Stage 2: A is the m×m matrix whose row j is the alternative that is
//     best on criterion j.
//   - Stage 3: P_ij = (a_jj − a_ij)/a_jj and F = P − diag(colsum P).
//   - Stage 4: the weights span the null space of F; the right singular
//     vector of the smallest singular value is taken and normalized.
//
// Errors:
//   - ErrNegativeValue for values ≤ 0; criteria validation errors;
//     ErrNoNullSpace when F is numerically regular; ErrDegenerate when the
//     null vector sums to zero.
//
// Determinism:
//   - Ties in Stage 2 pick the first (lowest-index) alternative.
//
// Complexity:
//   - Time O(n·m + m³), Space O(m²).
func CILOS(m matrix.Matrix, types []criteria.Type) ([]float64, error) {
	return cilos("CILOS", m, types)
}

// IDOCRIW (Integrated Determination of Objective CRIteria Weights) combines
// Entropy and CILOS: w ∝ q_j · e_j.
func IDOCRIW(m matrix.Matrix, types []criteria.Type) ([]float64, error) {
	const op = "IDOCRIW"
	e, err := Entropy(m, types)
	if err != nil {
		return nil, weightsErrorf(op, err)
	}
	q, err := cilos(op, m, types)
	if err != nil {
		return nil, err
	}
	prod := make([]float64, len(q))
	floats.MulTo(prod, q, e)

	return proportional(op, prod)
}

func cilos(op string, m matrix.Matrix, types []criteria.Type) ([]float64, error) {
	X, err := prepare(op, m, 1)
	if err != nil {
		return nil, err
	}
	if types, err = resolveTypes(op, types, X.Cols()); err != nil {
		return nil, err
	}
	if err = requireNonNegative(op, X, true); err != nil {
		return nil, err
	}

	cols := X.Cols()
	for j, t := range types {
		if t != criteria.Cost {
			continue
		}
		col, _ := X.Col(j)
		lo := floats.Min(col)
		for i := range col {
			col[i] = lo / col[i]
		}
		if err = X.SetCol(j, col); err != nil {
			return nil, weightsErrorf(op, err)
		}
	}
	N, err := normalization.Matrix(X, normalization.Sum, nil)
	if err != nil {
		return nil, weightsErrorf(op, err)
	}

	// A[j] = row of the best alternative on criterion j.
	A := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		col, _ := N.Col(j)
		best := floats.MaxIdx(col)
		if A[j], err = N.Row(best); err != nil {
			return nil, weightsErrorf(op, err)
		}
	}

	P := make([]float64, cols*cols)
	colSum := make([]float64, cols)
	var i, k int
	for i = 0; i < cols; i++ {
		for k = 0; k < cols; k++ {
			P[i*cols+k] = (A[k][k] - A[i][k]) / A[k][k]
			colSum[k] += P[i*cols+k]
		}
	}
	for k = 0; k < cols; k++ {
		P[k*cols+k] -= colSum[k]
	}
	F := mat.NewDense(cols, cols, P)

	q, err := nullVector(F)
	if err != nil {
		return nil, weightsErrorf(op, err)
	}
	total := floats.Sum(q)
	if math.Abs(total) <= degenerateTol {
		return nil, weightsErrorf(op, ErrDegenerate)
	}
	floats.Scale(1/total, q)

	return proportional(op, q)
}

// nullVector returns a unit vector spanning (part of) the null space of F.
func nullVector(F *mat.Dense) ([]float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(F, mat.SVDFull); !ok {
		return nil, fmt.Errorf("SVD did not converge: %w", ErrNoNullSpace)
	}
	s := svd.Values(nil)
	last := len(s) - 1
	if s[last] > nullSpaceRcond*math.Max(1, s[0]) {
		return nil, fmt.Errorf("smallest singular value %g: %w", s[last], ErrNoNullSpace)
	}
	var v mat.Dense
	svd.VTo(&v)

	return mat.Col(nil, last, &v), nil
}
