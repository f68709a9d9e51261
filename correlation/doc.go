// SPDX-License-Identifier: MIT

// Package correlation compares rankings and score vectors produced by
// different decision methods.
//
// ✨ Coefficients:
//   - Pearson: linear correlation of raw values.
//   - Spearman: Pearson applied to two rank vectors.
//   - WeightedSpearman: Spearman variant that penalizes disagreement near the top.
//   - RankSimilarity: the asymmetric WS coefficient, top positions of x dominate.
//   - KendallTau: Tau-a over all pairs.
//   - GoodmanKruskalGamma: concordance ratio ignoring tied pairs.
//
// All coefficients share the Func signature and return an error instead of
// NaN: mismatched lengths, fewer than two entries, a zero-variance input, or
// a gamma with no untied pair are reported with sentinel errors.
//
// ⚙️ Usage:
//
//	r, err := correlation.Spearman(rank.Descending(a), rank.Descending(b))
//	M, err := correlation.Matrix(rankings, correlation.WeightedSpearman)
package correlation
