// SPDX-License-Identifier: MIT

// Package mcdm is an in-memory toolkit for multi-criteria decision making:
// rank a set of alternatives judged on several, possibly conflicting,
// criteria.
//
// 🚀 What is in the box?
//
//   - Decision matrices: a validated row-major Dense with NaN/Inf policy
//   - Normalizations: ten strategies, cost-aware, per column
//   - Objective weights: entropy, CRITIC, MEREC, CILOS, IDOCRIW, angle and more
//   - Ranking methods: TOPSIS, VIKOR, COPRAS, SPOTIS, ARAS, COCOSO, CODAS,
//     EDAS, MABAC, MAIRCA, MARCOS, MOORA, OCRA, PROMETHEE II and COMET
//   - Rank utilities: positional ranks with averaged ties, rank correlations
//
// Everything is organized in subpackages:
//
//	matrix/        : Matrix interface, Dense, validators, column statistics
//	criteria/      : profit/cost criterion types
//	normalization/ : column normalization strategies and their registry
//	weights/       : objective weighting procedures
//	methods/       : ranking methods, Evaluate, ranks and return types
//	rank/          : Rankdata (average ties)
//	correlation/   : Spearman, Pearson, WS, Kendall τ, Goodman–Kruskal γ
//	cmd/mcdm       : command line over YAML/TOML problem files
//
// Quick example:
//
//	X, _ := matrix.NewDenseFromRows([][]float64{{1, 3000}, {2, 3750}, {5, 4500}})
//	types := []criteria.Type{criteria.Cost, criteria.Profit}
//	w, _ := weights.Entropy(X, types)
//	res, _ := methods.Evaluate(methods.NewTOPSIS(), X, w, types, methods.ReturnBoth)
//	fmt.Println(res.Ranks)
//
//	go get github.com/katalvlaran/mcdm
package mcdm
