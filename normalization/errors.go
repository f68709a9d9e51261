// SPDX-License-Identifier: MIT

package normalization

import (
	"errors"
	"fmt"
)

// Sentinel errors for normalization.
var (
	// ErrNonFinite indicates a strategy produced NaN or ±Inf for a column
	// (zero sum, zero maximum, non-positive logarithm argument, ...).
	ErrNonFinite = errors.New("normalization: non-finite value produced")
	// ErrUnknown indicates a strategy name outside the registry.
	ErrUnknown = errors.New("normalization: unknown strategy")
	// ErrNilFunc indicates a nil strategy was supplied.
	ErrNilFunc = errors.New("normalization: nil strategy")
)

// normErrorf wraps err with an operation tag, following "<Op>: %w".
func normErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
