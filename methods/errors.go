// SPDX-License-Identifier: MIT

package methods

import (
	"errors"
	"fmt"
)

// Sentinel errors for method input validation and numeric policies.
var (
	// ErrCriteriaMismatch indicates weights, types, bounds or thresholds whose
	// length differs from the number of criteria.
	ErrCriteriaMismatch = errors.New("methods: length does not match criteria count")
	// ErrInvalidType indicates a criteria type other than profit (+1) or cost (−1).
	ErrInvalidType = errors.New("methods: invalid criteria type")
	// ErrInvalidWeights indicates a NaN or ±Inf weight.
	ErrInvalidWeights = errors.New("methods: weights must be finite")
	// ErrNonFiniteScore indicates a NaN or ±Inf preference value.
	ErrNonFiniteScore = errors.New("methods: non-finite score")
	// ErrConstantCriterion indicates a criterion with one value for every alternative (VIKOR).
	ErrConstantCriterion = errors.New("methods: criterion is constant across alternatives")
	// ErrNoCostCriteria indicates an all-profit type vector (COPRAS, MOORA).
	ErrNoCostCriteria = errors.New("methods: at least one cost criterion required")
	// ErrDegenerateBounds indicates SPOTIS bounds whose lower value is not below the upper.
	ErrDegenerateBounds = errors.New("methods: bound lower value must be below upper value")
	// ErrTooFewAlternatives indicates fewer than two alternatives (PROMETHEE).
	ErrTooFewAlternatives = errors.New("methods: at least two alternatives required")
	// ErrMissingThreshold indicates a preference function used without its p threshold.
	ErrMissingThreshold = errors.New("methods: preference function requires p threshold")
	// ErrInvalidThreshold indicates q ≥ p for a function that needs q < p.
	ErrInvalidThreshold = errors.New("methods: indifference threshold q must be below p")
	// ErrUnknownPreference indicates a preference function name outside the known set.
	ErrUnknownPreference = errors.New("methods: unknown preference function")
	// ErrUnknownMethod indicates a method name outside the registry.
	ErrUnknownMethod = errors.New("methods: unknown method")
	// ErrUnknownReturnType indicates a return type other than raw, ranks or both.
	ErrUnknownReturnType = errors.New("methods: unknown return type")

	// ErrCharacteristicValues indicates fewer than two, unsorted or duplicate
	// characteristic values for a criterion (COMET).
	ErrCharacteristicValues = errors.New("methods: characteristic values must be ≥2 strictly increasing finite numbers")
	// ErrNoRankingStrategy indicates COMET built without expert or rate function.
	ErrNoRankingStrategy = errors.New("methods: COMET needs an expert function or a rate function")
	// ErrRateLength indicates a rate function returning the wrong number of scores.
	ErrRateLength = errors.New("methods: rate function returned wrong number of scores")
	// ErrJudgmentRange indicates an expert judgment outside [0,1].
	ErrJudgmentRange = errors.New("methods: expert judgment must lie in [0,1]")
	// ErrLatticeTooLarge indicates a characteristic-object lattice above the configured limit.
	ErrLatticeTooLarge = errors.New("methods: characteristic-object lattice too large")
)

// ValidationError reports malformed method input detected before any arithmetic.
type ValidationError struct {
	Method string // method name, e.g. "TOPSIS"
	Field  string // offending input: "matrix", "weights", "types", "bounds", ...
	Err    error  // wrapped cause; errors.Is matches the sentinels above
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %v", e.Method, e.Field, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *ValidationError) Unwrap() error { return e.Err }

// methodErrorf wraps err with the method name.
func methodErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// invalid builds a *ValidationError.
func invalid(method, field string, err error) error {
	return &ValidationError{Method: method, Field: field, Err: err}
}
