// SPDX-License-Identifier: MIT

// Package matrix provides the decision-matrix abstraction shared by every
// MCDM package in this module.
//
// 🚀 What is a decision matrix?
//
//	A dense r×c table of finite float64 values. Rows are alternatives
//	(the options being ranked), columns are criteria (the dimensions they
//	are judged on). Ranking methods, weighting procedures and
//	normalizations all consume this one shape.
//
// ✨ Key features:
//   - Matrix interface + row-major Dense with safe At/Set (errors, never panics)
//   - numeric policy: NaN/±Inf rejected on ingestion and Set by default
//   - row/column extraction (Row, Col, ToRows, ToCols) and Induced sub-matrices
//   - column reductions (ColMin, ColMax, ColSums, ColMeans, RowSums)
//   - sample Covariance and Pearson Correlation of columns
//   - a small linear-algebra subset (Mul, Transpose, Scale, ScaleCols, Hadamard, MatVec)
//   - centralized validators returning package sentinels
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mcdm/matrix"
//
//	dm, err := matrix.NewDenseFromRows([][]float64{
//	  {1, 3000},
//	  {2, 3750},
//	  {5, 4500},
//	})
//	if err != nil {
//	  // ErrRaggedRows, ErrInvalidDimensions or ErrNaNInf
//	}
//	mins, _ := matrix.ColMin(dm) // [1 3000]
//
// Performance:
//
//   - *Dense arguments take flat-slice fast paths; any other Matrix
//     implementation falls back to At/Set with identical results.
//   - All loops run in fixed i→j order, so results are bit-for-bit
//     reproducible.
package matrix
