// SPDX-License-Identifier: MIT

// Package methods: functional configuration shared by every method.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on programmer error,
//   - gatherOptions helper (internal).
//
// Options that do not concern a method are ignored by it (WithV has no effect
// on TOPSIS), so one option list can configure any method from the registry.
package methods

import (
	"math"

	"github.com/katalvlaran/mcdm/normalization"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultV is the VIKOR weight of the group-utility term.
	DefaultV = 0.5
	// DefaultLambda is the COCOSO balance between the additive and
	// multiplicative aggregations.
	DefaultLambda = 0.5
	// DefaultTau is the CODAS threshold above which the taxicab distance
	// breaks Euclidean ties.
	DefaultTau = 0.02
	// DefaultMaxObjects caps the COMET lattice when an expert function is used
	// (the judgment matrix holds its square).
	DefaultMaxObjects = 1 << 12
)

// Panic messages for invalid option values.
const (
	panicVRange        = "methods: WithV: v must lie in [0,1]"
	panicLambdaRange   = "methods: WithLambda: lambda must lie in [0,1]"
	panicTauNegative   = "methods: WithTau: tau must be finite and non-negative"
	panicNilNormalizer = "methods: WithNormalization: nil normalization function"
	panicBoundsValue   = "methods: WithBounds: bounds must be finite"
	panicThreshold     = "methods: WithThresholds: thresholds must be finite and non-negative"
	panicNilExpert     = "methods: WithExpert: nil expert function"
	panicNilRate       = "methods: WithRateFunction: nil rate function"
	panicMaxObjects    = "methods: WithMaxObjects: limit must be non-negative"
	panicPreference    = "methods: WithPreference: unknown preference kind"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	v             float64            // VIKOR
	lambda        float64            // COCOSO
	tau           float64            // CODAS
	bounds        [][2]float64       // SPOTIS, nil = column min/max
	normalization normalization.Func // nil = method default
	q, p          []float64          // PROMETHEE per-criterion thresholds
	sharedQ       float64            // PROMETHEE shared thresholds
	sharedP       float64
	shared        bool
	preference    PreferenceKind // PROMETHEE via registry
	expert        ExpertFunc     // COMET
	rate          RateFunc       // COMET
	maxObjects    int            // COMET expert guard, 0 = unlimited
}

// WithV sets the VIKOR strategy weight v ∈ [0,1].
func WithV(v float64) Option {
	if math.IsNaN(v) || v < 0 || v > 1 {
		panic(panicVRange)
	}

	return func(o *Options) { o.v = v }
}

// WithLambda sets the COCOSO strategy coefficient λ ∈ [0,1].
func WithLambda(lambda float64) Option {
	if math.IsNaN(lambda) || lambda < 0 || lambda > 1 {
		panic(panicLambdaRange)
	}

	return func(o *Options) { o.lambda = lambda }
}

// WithTau sets the CODAS threshold τ ≥ 0.
func WithTau(tau float64) Option {
	if math.IsNaN(tau) || math.IsInf(tau, 0) || tau < 0 {
		panic(panicTauNegative)
	}

	return func(o *Options) { o.tau = tau }
}

// WithNormalization overrides the default normalization of methods that
// normalize (TOPSIS, VIKOR, ARAS, COCOSO, CODAS, MABAC, MAIRCA, MOORA).
func WithNormalization(fn normalization.Func) Option {
	if fn == nil {
		panic(panicNilNormalizer)
	}

	return func(o *Options) { o.normalization = fn }
}

// WithBounds sets explicit SPOTIS bounds, one [lower, upper] pair per criterion.
//
// Notes:
//   - The slice is copied. Shape and lower < upper are checked by Rank, since
//     they depend on the matrix.
func WithBounds(bounds [][2]float64) Option {
	cp := make([][2]float64, len(bounds))
	for j, b := range bounds {
		if !finite(b[0]) || !finite(b[1]) {
			panic(panicBoundsValue)
		}
		cp[j] = b
	}

	return func(o *Options) { o.bounds = cp }
}

// WithThresholds sets per-criterion PROMETHEE thresholds. q (indifference)
// or p (preference) may be nil when the preference function does not use it.
func WithThresholds(q, p []float64) Option {
	q, p = copyThresholds(q), copyThresholds(p)

	return func(o *Options) {
		o.q, o.p = q, p
		o.shared = false
	}
}

// WithSharedThreshold applies one (q, p) pair to every criterion.
func WithSharedThreshold(q, p float64) Option {
	if !validThreshold(q) || !validThreshold(p) {
		panic(panicThreshold)
	}

	return func(o *Options) {
		o.sharedQ, o.sharedP = q, p
		o.shared = true
	}
}

// WithPreference selects the PROMETHEE preference function used by ByName.
func WithPreference(kind PreferenceKind) Option {
	if !kind.valid() {
		panic(panicPreference)
	}

	return func(o *Options) { o.preference = kind }
}

// WithExpert makes COMET rank its characteristic objects by pairwise expert
// judgments. It takes precedence over WithRateFunction.
func WithExpert(fn ExpertFunc) Option {
	if fn == nil {
		panic(panicNilExpert)
	}

	return func(o *Options) { o.expert = fn }
}

// WithRateFunction makes COMET rank its characteristic objects with fn.
func WithRateFunction(fn RateFunc) Option {
	if fn == nil {
		panic(panicNilRate)
	}

	return func(o *Options) { o.rate = fn }
}

// WithMaxObjects bounds the COMET lattice in expert mode; 0 disables the guard.
func WithMaxObjects(limit int) Option {
	if limit < 0 {
		panic(panicMaxObjects)
	}

	return func(o *Options) { o.maxObjects = limit }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		v:          DefaultV,
		lambda:     DefaultLambda,
		tau:        DefaultTau,
		preference: Usual,
		maxObjects: DefaultMaxObjects,
	}
}

// gatherOptions applies setters in order over the defaults (last wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// normalizer returns the configured normalization or def.
func (o Options) normalizer(def normalization.Func) normalization.Func {
	if o.normalization != nil {
		return o.normalization
	}

	return def
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func validThreshold(v float64) bool { return finite(v) && v >= 0 }

func copyThresholds(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	for j, x := range v {
		if !validThreshold(x) {
			panic(panicThreshold)
		}
		out[j] = x
	}

	return out
}
