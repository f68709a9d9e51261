// SPDX-License-Identifier: MIT

// Package criteria defines the orientation of a decision criterion and the
// checks shared by every consumer of a criteria-type vector.
//
// A criterion is either a profit (benefit) criterion, where larger values are
// better, or a cost criterion, where smaller values are better. The numeric
// encoding (+1 / −1) is stable and matches the sign convention used in
// decision-problem files.
package criteria

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for criteria-type handling.
var (
	// ErrInvalidType indicates a value other than Profit (+1) or Cost (−1).
	ErrInvalidType = errors.New("criteria: type must be 1 (profit) or -1 (cost)")
	// ErrLengthMismatch indicates the types vector does not cover every criterion.
	ErrLengthMismatch = errors.New("criteria: types length does not match criteria count")
)

// Type is the orientation of one criterion.
type Type int8

const (
	// Cost marks a criterion where smaller values are preferred.
	Cost Type = -1
	// Profit marks a criterion where larger values are preferred.
	Profit Type = 1
)

// String returns "profit", "cost" or "Type(<n>)" for invalid values.
func (t Type) String() string {
	switch t {
	case Profit:
		return "profit"
	case Cost:
		return "cost"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Valid reports whether t is Profit or Cost.
func (t Type) Valid() bool { return t == Profit || t == Cost }

// IsCost reports whether t is Cost.
func (t Type) IsCost() bool { return t == Cost }

// Sign returns +1 for Profit and −1 for Cost as a float, for signed sums.
func (t Type) Sign() float64 { return float64(t) }

// ParseType accepts the names used in problem files and on the command line:
// "profit", "benefit", "max", "1", "+1" and "cost", "min", "-1".
// Matching is case-insensitive and ignores surrounding spaces.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "profit", "benefit", "max", "1", "+1":
		return Profit, nil
	case "cost", "min", "-1":
		return Cost, nil
	}

	return 0, fmt.Errorf("ParseType(%q): %w", s, ErrInvalidType)
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseType.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(t), ErrInvalidType)
	}

	return []byte(t.String()), nil
}

// Validate checks that types has exactly m entries, each Profit or Cost.
// The returned error names the offending lengths or index.
func Validate(types []Type, m int) error {
	if len(types) != m {
		return fmt.Errorf("Validate: got %d types for %d criteria: %w", len(types), m, ErrLengthMismatch)
	}
	for j, t := range types {
		if !t.Valid() {
			return fmt.Errorf("Validate: types[%d]=%d: %w", j, int(t), ErrInvalidType)
		}
	}

	return nil
}

// FromInts converts a ±1 integer vector, rejecting any other value.
func FromInts(v []int) ([]Type, error) {
	out := make([]Type, len(v))
	for j, x := range v {
		t := Type(x)
		if x < -1 || x > 1 || !t.Valid() {
			return nil, fmt.Errorf("FromInts: types[%d]=%d: %w", j, x, ErrInvalidType)
		}
		out[j] = t
	}

	return out, nil
}

// AllProfit returns m Profit entries.
func AllProfit(m int) []Type {
	out := make([]Type, m)
	for j := range out {
		out[j] = Profit
	}

	return out
}

// Reverse returns a copy with every orientation flipped.
func Reverse(types []Type) []Type {
	out := make([]Type, len(types))
	for j, t := range types {
		out[j] = -t
	}

	return out
}

// HasCost reports whether at least one entry is Cost.
func HasCost(types []Type) bool {
	for _, t := range types {
		if t == Cost {
			return true
		}
	}

	return false
}

// Split partitions criterion indices by orientation, preserving order.
func Split(types []Type) (profit, cost []int) {
	for j, t := range types {
		if t == Cost {
			cost = append(cost, j)
		} else {
			profit = append(profit, j)
		}
	}

	return profit, cost
}
