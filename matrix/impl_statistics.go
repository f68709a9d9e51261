// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics every MCDM procedure needs (extremes,
//     sums, means, centering, covariance, correlation) as deterministic
//     compositions over canonical kernels (Mul/Transpose/Scale) and ew* micro-kernels.
//
// Exposed API (see api.go):
//   - ColMin/ColMax/ColSums/ColMeans(X) -> per-criterion reductions
//   - RowSums(X)                        -> per-alternative sums
//   - CenterColumns(X) -> (Xc, means)         // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)        // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)   -> (Corr, means, stds) // Pearson corr via z-scoring; degenerate std=0 → zeroed column
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColMin        = "ColMin"
	opColMax        = "ColMax"
	opColSums       = "ColSums"
	opColMeans      = "ColMeans"
	opRowSums       = "RowSums"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// colReduce folds every column with f, seeding each accumulator with the
// first row. Shared by ColMin/ColMax/ColSums.
//
// Implementation:
//   - Stage 1: ValidateNonEmpty.
//   - Stage 2: seed acc[j] = X[0,j]; fold rows 1..r-1 in order.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func colReduce(X Matrix, op string, f func(acc, v float64) float64) ([]float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(op, err)
	}
	r, c := X.Rows(), X.Cols()
	acc := make([]float64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		copy(acc, d.data[:c])
		for i = 1; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				acc[j] = f(acc[j], d.data[base+j])
			}
		}
		return acc, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			if i == 0 {
				acc[j] = v
				continue
			}
			acc[j] = f(acc[j], v)
		}
	}

	return acc, nil
}

func colMin(X Matrix) ([]float64, error) {
	return colReduce(X, opColMin, math.Min)
}

func colMax(X Matrix) ([]float64, error) {
	return colReduce(X, opColMax, math.Max)
}

func colSums(X Matrix) ([]float64, error) {
	return colReduce(X, opColSums, func(acc, v float64) float64 { return acc + v })
}

// colMeans returns Σ_i X[i,j] / r per column.
func colMeans(X Matrix) ([]float64, error) {
	sums, err := colReduce(X, opColMeans, func(acc, v float64) float64 { return acc + v })
	if err != nil {
		return nil, err
	}
	invR := 1.0 / float64(X.Rows())
	for j := range sums {
		sums[j] *= invR
	}

	return sums, nil
}

// rowSums returns Σ_j X[i,j] per row, i.e. the aggregate of each alternative.
// Complexity: O(r*c).
func rowSums(X Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := X.Rows(), X.Cols()
	out := make([]float64, r)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out[i] += d.data[base+j]
			}
		}
		return out, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// centerColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Validate X (non-nil, non-empty).
//   - Stage 2: Compute column means in a deterministic pass.
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - Matrix: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (Matrix, []float64, error) {
	means, err := colMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// covariance computes the sample covariance of columns: (Xcᵀ Xc)/(r-1).
// Implementation:
//   - Stage 1: Validate X, require r>=2.
//   - Stage 2: center columns.
//   - Stage 3: Cov = (Xcᵀ Xc)/(r-1) via canonical kernels.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (r<2).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	// Sample covariance requires at least two observations.
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}

// Compute Pearson correlation of columns via z-scoring: Corr = (Zᵀ Z)/(r-1),
// where Z = (X − mean) * diag(1/std). Degenerate std==0 → that column becomes all zeros.
// Implementation:
//   - Stage 1: Validate X, require r>=2; center columns (means).
//   - Stage 2: Compute sample stds per column; build invStd with 0 for degenerate columns.
//   - Stage 3: Z = Xc * diag(invStd) via ewScaleCols; Corr = (Zᵀ Z)/(r-1).
//
// Behavior highlights:
//   - Symmetric; diagonal is 1 for non-degenerate columns, 0 for degenerate (std==0).
//
// Returns:
//   - Matrix: Correlation (c×c).
//   - []float64: column means.
//   - []float64: column stds (sample).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (r<2).
//
// Complexity:
//   - Time O(r*c + r*c^2), Space O(c^2).
//
// AI-Hints:
//   - Degenerate columns (std==0) become zero columns/rows in Corr by construction,
//     so a constant criterion counts as uncorrelated with every other criterion.
func correlation(X Matrix) (Matrix, []float64, []float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	// std[j] = sqrt( Σ_i Xc[i,j]^2 / (r-1) ).
	stds := make([]float64, c)
	sumsq := make([]float64, c)
	inv := 1.0 / float64(r-1)

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = Xc.At(i, j); err != nil {
				return nil, nil, nil, matrixErrorf(opCorrelation, err)
			}
			sumsq[j] += v * v
		}
	}
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(sumsq[j] * inv)
	}

	// degenerate std==0 => invStd=0 (zero-out the column).
	invStd := make([]float64, c)
	for j = 0; j < c; j++ {
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		}
	}

	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Zt, err := Transpose(Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	G, err := Mul(Zt, Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Corr, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return Corr, means, stds, nil
}
