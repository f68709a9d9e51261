// SPDX-License-Identifier: MIT

package correlation

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/mcdm/matrix"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for correlation coefficients.
var (
	// ErrLengthMismatch indicates x and y differ in length.
	ErrLengthMismatch = errors.New("correlation: vectors differ in length")
	// ErrTooShort indicates fewer than two entries.
	ErrTooShort = errors.New("correlation: at least two entries required")
	// ErrZeroVariance indicates a constant input vector.
	ErrZeroVariance = errors.New("correlation: zero variance")
	// ErrUndefined indicates every pair is tied, so the coefficient has no value.
	ErrUndefined = errors.New("correlation: coefficient undefined for fully tied input")
	// ErrUnknown indicates a coefficient name outside the registry.
	ErrUnknown = errors.New("correlation: unknown coefficient")
	// ErrNoRankings indicates Matrix was called with nothing to compare.
	ErrNoRankings = errors.New("correlation: no rankings")
)

// Func is the shared coefficient signature.
type Func func(x, y []float64) (float64, error)

// checkPair validates the common preconditions.
func checkPair(op string, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%s: len(x)=%d, len(y)=%d: %w", op, len(x), len(y), ErrLengthMismatch)
	}
	if len(x) < 2 {
		return fmt.Errorf("%s: %w", op, ErrTooShort)
	}

	return nil
}

// Pearson returns the linear correlation of x and y.
func Pearson(x, y []float64) (float64, error) {
	if err := checkPair("Pearson", x, y); err != nil {
		return 0, err
	}
	if constant(x) || constant(y) {
		return 0, fmt.Errorf("Pearson: %w", ErrZeroVariance)
	}

	return stat.Correlation(x, y, nil), nil
}

// Spearman returns Pearson's coefficient of two rank vectors. Callers pass
// ranks (see package rank), not raw scores.
func Spearman(x, y []float64) (float64, error) {
	if err := checkPair("Spearman", x, y); err != nil {
		return 0, err
	}
	if constant(x) || constant(y) {
		return 0, fmt.Errorf("Spearman: %w", ErrZeroVariance)
	}

	return stat.Correlation(x, y, nil), nil
}

// WeightedSpearman returns
//
//	1 − 6 Σ (x−y)² ((N−x+1) + (N−y+1)) / (N⁴ + N³ − N² − N)
//
// over two rank vectors of length N.
func WeightedSpearman(x, y []float64) (float64, error) {
	if err := checkPair("WeightedSpearman", x, y); err != nil {
		return 0, err
	}
	N := float64(len(x))
	var num, d float64
	for i := range x {
		d = x[i] - y[i]
		num += d * d * ((N - x[i] + 1) + (N - y[i] + 1))
	}
	den := N*N*N*N + N*N*N - N*N - N

	return 1 - 6*num/den, nil
}

// RankSimilarity returns the WS coefficient
//
//	1 − Σ 2^(−x) |x−y| / max(|1−x|, |N−x|).
//
// x is the reference ranking; swapping arguments changes the value.
func RankSimilarity(x, y []float64) (float64, error) {
	if err := checkPair("RankSimilarity", x, y); err != nil {
		return 0, err
	}
	N := float64(len(x))
	var acc float64
	for i := range x {
		den := math.Max(math.Abs(1-x[i]), math.Abs(N-x[i]))
		if den == 0 {
			return 0, fmt.Errorf("RankSimilarity: rank %g at %d: %w", x[i], i, ErrUndefined)
		}
		acc += math.Pow(2, -x[i]) * math.Abs(x[i]-y[i]) / den
	}

	return 1 - acc, nil
}

// KendallTau returns Tau-a: the signed pair agreement averaged over all
// n(n−1)/2 pairs. Tied pairs count as zero.
func KendallTau(x, y []float64) (float64, error) {
	if err := checkPair("KendallTau", x, y); err != nil {
		return 0, err
	}
	n := len(x)
	var acc float64
	var i, j int
	for j = 0; j < n; j++ {
		for i = 0; i < j; i++ {
			acc += sign(x[i]-x[j]) * sign(y[i]-y[j])
		}
	}

	return 2 * acc / float64(n*(n-1)), nil
}

// GoodmanKruskalGamma returns (concordant − discordant)/(concordant + discordant).
func GoodmanKruskalGamma(x, y []float64) (float64, error) {
	if err := checkPair("GoodmanKruskalGamma", x, y); err != nil {
		return 0, err
	}
	n := len(x)
	var num, den float64
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			s := sign((x[i] - x[j]) * (y[i] - y[j]))
			num += s
			if s != 0 {
				den++
			}
		}
	}
	if den == 0 {
		return 0, fmt.Errorf("GoodmanKruskalGamma: %w", ErrUndefined)
	}

	return num / den, nil
}

// Matrix evaluates fn on every ordered pair of rankings and returns the k×k
// result; entry (i,j) is fn(rankings[i], rankings[j]).
func Matrix(rankings [][]float64, fn Func) (*matrix.Dense, error) {
	k := len(rankings)
	if k == 0 {
		return nil, fmt.Errorf("Matrix: %w", ErrNoRankings)
	}
	if fn == nil {
		return nil, fmt.Errorf("Matrix: nil coefficient: %w", ErrUnknown)
	}
	out, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, fmt.Errorf("Matrix: %w", err)
	}
	var i, j int
	var v float64
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			if v, err = fn(rankings[i], rankings[j]); err != nil {
				return nil, fmt.Errorf("Matrix(%d,%d): %w", i, j, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Matrix(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}

var registry = map[string]Func{
	"pearson":           Pearson,
	"spearman":          Spearman,
	"weighted_spearman": WeightedSpearman,
	"ws":                RankSimilarity,
	"kendall_tau":       KendallTau,
	"goodman_kruskal":   GoodmanKruskalGamma,
}

// ByName resolves a coefficient by its configuration name.
func ByName(name string) (Func, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if fn, ok := registry[key]; ok {
		return fn, nil
	}

	return nil, fmt.Errorf("ByName(%q): %w (known: %s)", name, ErrUnknown, strings.Join(Names(), ", "))
}

// Names lists registered coefficient names in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func constant(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}

	return true
}
