// SPDX-License-Identifier: MIT

package methods

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/rank"
)

// ReturnType selects which vectors Evaluate fills in.
type ReturnType int

const (
	// ReturnRaw keeps only the raw scores.
	ReturnRaw ReturnType = iota
	// ReturnRanks keeps only the positional ranks (1 = best, ties averaged).
	ReturnRanks
	// ReturnBoth keeps scores and ranks.
	ReturnBoth
)

var returnTypeNames = [...]string{ReturnRaw: "raw", ReturnRanks: "ranks", ReturnBoth: "both"}

// String returns the configuration name of rt.
func (rt ReturnType) String() string {
	if rt < 0 || int(rt) >= len(returnTypeNames) {
		return fmt.Sprintf("ReturnType(%d)", int(rt))
	}

	return returnTypeNames[rt]
}

// ParseReturnType parses "raw", "ranks" or "both" (case-insensitive).
func ParseReturnType(s string) (ReturnType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range returnTypeNames {
		if key == name {
			return ReturnType(i), nil
		}
	}

	return 0, fmt.Errorf("ParseReturnType(%q): %w (allowed: %s)",
		s, ErrUnknownReturnType, strings.Join(returnTypeNames[:], ", "))
}

// Result carries the output of Evaluate. A field not requested is nil.
type Result struct {
	Scores []float64
	Ranks  []float64
}

// Evaluate runs method and shapes its output according to rt.
//
// Ranks are positional: 1 is the best alternative in the method's own order,
// ties share the average of their positions.
func Evaluate(method Method, m matrix.Matrix, w []float64, types []criteria.Type, rt ReturnType) (Result, error) {
	if rt < ReturnRaw || rt > ReturnBoth {
		return Result{}, fmt.Errorf("Evaluate: %s: %w", rt, ErrUnknownReturnType)
	}
	scores, err := method.Rank(m, w, types)
	if err != nil {
		return Result{}, err
	}

	var res Result
	if rt != ReturnRanks {
		res.Scores = scores
	}
	if rt != ReturnRaw {
		res.Ranks = rank.Rankdata(scores, method.Order() == HigherIsBetter)
	}

	return res, nil
}
