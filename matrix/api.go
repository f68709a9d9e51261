// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Public facades over the statistics kernels in impl_statistics.go.
//   - Keep one obvious entry point per reduction so consuming packages
//     (normalization, weights, methods) never re-implement column loops.

package matrix

// ColMin returns the minimum of every column (worst profit / best cost value).
// Errors: ErrNilMatrix, ErrInvalidDimensions. Complexity: O(r*c).
func ColMin(m Matrix) ([]float64, error) { return colMin(m) }

// ColMax returns the maximum of every column.
// Errors: ErrNilMatrix, ErrInvalidDimensions. Complexity: O(r*c).
func ColMax(m Matrix) ([]float64, error) { return colMax(m) }

// ColSums returns Σ_i m[i,j] for every column j.
func ColSums(m Matrix) ([]float64, error) { return colSums(m) }

// ColMeans returns the arithmetic mean of every column.
func ColMeans(m Matrix) ([]float64, error) { return colMeans(m) }

// RowSums returns Σ_j m[i,j] for every row i.
func RowSums(m Matrix) ([]float64, error) { return rowSums(m) }

// CenterColumns subtracts per-column means.
// Returns the centered copy and the means.
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// Covariance returns the sample covariance matrix of columns and their means.
func Covariance(X Matrix) (Matrix, []float64, error) { return covariance(X) }

// Correlation returns the Pearson correlation matrix of columns with means and sample stds.
// Zero-variance columns produce zero rows/columns (including the diagonal).
func Correlation(X Matrix) (Matrix, []float64, []float64, error) { return correlation(X) }
