// SPDX-License-Identifier: MIT

package methods

import (
	"fmt"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
)

// PROMETHEEII ranks alternatives by their net outranking flow.
type PROMETHEEII struct {
	kind PreferenceKind
	opts Options
}

// Flows holds the PROMETHEE outranking flows; Net = Positive − Negative.
// Positive and Negative alone give the PROMETHEE I partial order.
type Flows struct {
	Positive []float64
	Negative []float64
	Net      []float64
}

// NewPROMETHEEII returns PROMETHEE II using the preference shape kind on
// every criterion. Thresholds come from WithThresholds or WithSharedThreshold.
func NewPROMETHEEII(kind PreferenceKind, opts ...Option) *PROMETHEEII {
	if !kind.valid() {
		panic(panicPreference)
	}

	return &PROMETHEEII{kind: kind, opts: gatherOptions(opts...)}
}

// Name implements Method.
func (*PROMETHEEII) Name() string { return "PROMETHEE II" }

// Order implements Method.
func (*PROMETHEEII) Order() Order { return HigherIsBetter }

// Rank returns the net flow.
func (p *PROMETHEEII) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	f, err := p.Flows(m, w, types)
	if err != nil {
		return nil, err
	}

	return f.Net, nil
}

// Flows computes positive, negative and net outranking flows.
//
// Implementation:
//   - Stage 1: validate; resolve one Preference per criterion.
//   - Stage 2: for every ordered pair (a,b), d = x_aj − x_bj (negated for cost);
//     π(a,b) = Σ_j w_j · P_j(d).
//   - Stage 3: F⁺_a = Σ_b π(a,b)/(n−1), F⁻_a = Σ_b π(b,a)/(n−1), FI = F⁺ − F⁻.
//
// Errors:
//   - *ValidationError (including ErrCriteriaMismatch for thresholds of the
//     wrong length, ErrMissingThreshold, ErrInvalidThreshold).
//   - ErrTooFewAlternatives for n < 2.
//
// Complexity:
//   - Time O(n²·m), Space O(n²).
func (p *PROMETHEEII) Flows(m matrix.Matrix, w []float64, types []criteria.Type) (Flows, error) {
	const op = "PROMETHEE II"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return Flows{}, err
	}
	n := X.Rows()
	if n < 2 {
		return Flows{}, invalid(op, "matrix", fmt.Errorf("%d rows: %w", n, ErrTooFewAlternatives))
	}
	prefs, err := p.preferences(op, X.Cols())
	if err != nil {
		return Flows{}, err
	}

	cols := X.ToCols()
	pi := make([][]float64, n)
	for a := range pi {
		pi[a] = make([]float64, n)
	}
	for j, col := range cols {
		sign := types[j].Sign()
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				if a == b {
					continue
				}
				pi[a][b] += w[j] * prefs[j].Degree(sign*(col[a]-col[b]))
			}
		}
	}

	f := Flows{
		Positive: make([]float64, n),
		Negative: make([]float64, n),
		Net:      make([]float64, n),
	}
	den := float64(n - 1)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			f.Positive[a] += pi[a][b]
			f.Negative[a] += pi[b][a]
		}
		f.Positive[a] /= den
		f.Negative[a] /= den
		f.Net[a] = f.Positive[a] - f.Negative[a]
	}
	if _, err = finiteScores(op, f.Net); err != nil {
		return Flows{}, err
	}

	return f, nil
}

// preferences resolves one validated Preference per criterion.
func (p *PROMETHEEII) preferences(op string, cols int) ([]Preference, error) {
	o := p.opts
	for _, th := range []struct {
		name string
		v    []float64
	}{{"q", o.q}, {"p", o.p}} {
		if !o.shared && th.v != nil && len(th.v) != cols {
			return nil, invalid(op, "thresholds",
				fmt.Errorf("got %d %s values for %d criteria: %w", len(th.v), th.name, cols, ErrCriteriaMismatch))
		}
	}

	out := make([]Preference, cols)
	for j := range out {
		pr := Preference{Kind: p.kind}
		switch {
		case o.shared:
			pr.Q, pr.P = o.sharedQ, o.sharedP
		default:
			if o.q != nil {
				pr.Q = o.q[j]
			}
			if o.p != nil {
				pr.P = o.p[j]
			}
		}
		if err := pr.validate(); err != nil {
			return nil, invalid(op, "thresholds", fmt.Errorf("criterion %d: %w", j, err))
		}
		out[j] = pr
	}

	return out, nil
}
