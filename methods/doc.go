// SPDX-License-Identifier: MIT

// Package methods implements multi-criteria decision analysis (MCDA) ranking
// methods over a decision matrix of alternatives (rows) and criteria (columns).
//
// 🚀 What does a method do?
//
//	Given a matrix X (n alternatives × m criteria), a weight vector w and a
//	criteria type vector (profit or cost), a method returns one preference
//	score per alternative. Whether a larger score is better depends on the
//	method and is exposed by Method.Order.
//
// ✨ Key features:
//   - One Method interface shared by fifteen methods
//   - Closed-form methods: TOPSIS, VIKOR, COPRAS, SPOTIS, ARAS, COCOSO, CODAS,
//     EDAS, MABAC, MAIRCA, MARCOS, MOORA, OCRA
//   - PROMETHEE II with five tagged preference functions and PROMETHEE I flows
//   - COMET: characteristic-object lattice, expert or rate-function ranking
//     of the lattice, triangular fuzzy number rating of real alternatives
//   - Shape validation before any arithmetic (*ValidationError)
//   - Explicit numeric policies: a NaN/Inf score is an error, never a result
//
// ⚙️ Usage:
//
//	t := methods.NewTOPSIS()
//	scores, err := t.Rank(X, w, types)
//	if err != nil {
//	    return err
//	}
//	res, err := methods.Evaluate(t, X, w, types, methods.ReturnBoth)
//
// Configuration is fixed at construction through functional options
// (WithV, WithBounds, WithNormalization, ...). A constructed method holds no
// mutable state and may be shared between goroutines.
//
// Order of scores:
//
//	HigherIsBetter  TOPSIS, COPRAS, ARAS, COCOSO, CODAS, EDAS, MABAC, MARCOS,
//	                MOORA, OCRA, PROMETHEE II, COMET
//	LowerIsBetter   VIKOR, SPOTIS, MAIRCA
//
// COMET lattice size:
//
//	The characteristic-object lattice holds Π len(cvalues[j]) objects; with an
//	expert comparator the judgment matrix holds the square of that. The expert
//	path is guarded by DefaultMaxObjects (see WithMaxObjects).
package methods
