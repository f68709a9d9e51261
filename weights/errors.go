// SPDX-License-Identifier: MIT

package weights

import (
	"errors"
	"fmt"
)

// Sentinel errors for weighting.
var (
	// ErrDegenerate indicates the total information is zero (for example every
	// column is constant), so no proportional weights exist.
	ErrDegenerate = errors.New("weights: degenerate matrix, total information is zero")
	// ErrTooFewAlternatives indicates fewer than two rows.
	ErrTooFewAlternatives = errors.New("weights: at least two alternatives required")
	// ErrNegativeValue indicates data outside the method's domain (negative
	// for Entropy/Gini/Angle, non-positive for MEREC).
	ErrNegativeValue = errors.New("weights: value outside the method's domain")
	// ErrNoNullSpace indicates the CILOS system has no non-trivial solution.
	ErrNoNullSpace = errors.New("weights: relative-loss matrix has no null space")
	// ErrNonFinite indicates an intermediate or final value is NaN or ±Inf.
	ErrNonFinite = errors.New("weights: non-finite value produced")
	// ErrUnknown indicates a weighting name outside the registry.
	ErrUnknown = errors.New("weights: unknown weighting method")
)

// weightsErrorf wraps err with an operation tag.
func weightsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
