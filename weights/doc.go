// SPDX-License-Identifier: MIT

// Package weights derives criterion weights from a decision matrix alone.
//
// 🚀 What is objective weighting?
//
//	Instead of asking a decision maker how important each criterion is, the
//	weight of criterion j is read off the data: how much information the
//	column carries (Entropy), how much it varies (StandardDeviation,
//	Variance, Gini), how much it conflicts with the other columns (CRITIC),
//	how much the overall performance changes when it is removed (MEREC), or
//	how much relative loss it causes (CILOS, IDOCRIW).
//
// ✨ Key features:
//   - Ten functions sharing one signature: Func(m, types) ([]float64, error)
//   - Every result is non-negative and sums to 1
//   - Degenerate input (every column constant, zero total information) is
//     reported with ErrDegenerate instead of returning 0/0
//   - ByName / Names registry for configuration files and the CLI
//
// ⚙️ Usage:
//
//	w, err := weights.Entropy(X, nil)
//	w, err := weights.MEREC(X, types)
//
// Functions that need criterion orientation (MEREC, CILOS, IDOCRIW) treat a
// nil types vector as all profit. The others ignore types.
//
// Numeric rules:
//   - Entropy: a zero normalized entry contributes 0 to its column entropy
//     (0·ln 0 = 0); negative data is rejected.
//   - MEREC: strictly positive data only (logarithms of normalized values).
//   - CRITIC: a constant column has zero correlation with every other column.
//   - Angle: a cosine within 1e-12 of 1 counts as a uniform column (angle 0).
package weights
