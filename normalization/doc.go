// SPDX-License-Identifier: MIT

// Package normalization rescales the columns of a decision matrix so that
// criteria measured in different units become comparable.
//
// 🚀 What is normalization?
//
//	Every criterion column x is mapped to a dimensionless column. Profit
//	criteria keep their orientation (bigger stays better); cost criteria are
//	flipped by the strategy's cost form so that, after normalization, bigger
//	is better everywhere.
//
// ✨ Key features:
//   - Ten strategies sharing one signature: Func(x []float64, cost bool) []float64
//   - Matrix applies a strategy column-by-column according to criteria types
//   - Strict numeric policy: a non-finite result is an error naming the column
//   - ByName / Names registry for configuration files and the CLI
//
// ⚙️ Usage:
//
//	N, err := normalization.Matrix(X, normalization.MinMax, types)
//	if err != nil {
//	    return err
//	}
//
// Strategies (x = column; min, max, Σ taken over the column):
//
//	MinMax            profit (x−min)/(max−min)    cost (max−x)/(max−min)
//	Max               profit x/max                cost 1 − x/max
//	Sum               profit x/Σx                 cost (1/x)/Σ(1/x)
//	Vector            profit x/√Σx²               cost 1 − x/√Σx²
//	Logarithmic       profit ln x/ln Πx           cost (1 − ln x/ln Πx)/(n−1)
//	Linear            profit x/max                cost min/x
//	Nonlinear         profit (x/max)²             cost (min/x)³
//	EnhancedAccuracy  profit 1−(max−x)/Σ(max−x)   cost 1−(x−min)/Σ(x−min)
//	LaiHwang          profit x/(max−min)          cost x/(min−max)
//	ZavadskasTurskis  profit 1−|(min−x)/min|      cost 1−|(max−x)/max|
//
// A constant column under MinMax maps to ones. Every other degenerate column
// (zero sum, zero max, constant column under LaiHwang, ...) produces
// non-finite values, which Matrix rejects with ErrNonFinite.
//
// Performance:
//   - O(n) per column, O(n·m) per matrix. Strategies never mutate their input.
package normalization
