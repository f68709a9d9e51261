// SPDX-License-Identifier: MIT

package methods

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
)

// ExpertFunc compares two characteristic objects and returns a preference
// degree in [0,1]: 1 if a is better, 0 if b is better, 0.5 for a tie.
type ExpertFunc func(a, b []float64) float64

// RateFunc scores every row of the characteristic-object matrix at once.
// Higher is better.
type RateFunc func(co *matrix.Dense) ([]float64, error)

// COMET (Characteristic Objects METhod) rates alternatives against a
// pre-ranked lattice of characteristic objects (CO) through triangular fuzzy
// numbers. It is free of rank reversal: the rating of one alternative does
// not depend on the others.
//
// The lattice, its preferences and the TFNs are built once by NewCOMET and
// never change afterwards.
type COMET struct {
	cvalues [][]float64
	tfns    [][]tfn
	co      *matrix.Dense
	p       []float64
	strides []int

	mej     *matrix.Dense // built by NewCOMET in expert mode
	mejOnce sync.Once
}

// NewCOMET builds the model from per-criterion characteristic values.
//
// MAIN DESCRIPTION:
//   - CO is the Cartesian product of cvalues; the last criterion varies fastest.
//   - CO is ranked once, by WithExpert (pairwise judgments, preferred when
//     both are set) or by WithRateFunction.
//   - The aggregate scores are discretized into k distinct levels: the j-th
//     highest level gets (k−1−j)/(k−1); a single level gives all zeros.
//
// Implementation:
//   - Stage 1: validate cvalues (≥2 strictly increasing finite values each).
//   - Stage 2: build CO; guard the lattice size in expert mode.
//   - Stage 3: score CO (MEJ row sums, or the rate function).
//   - Stage 4: discretize scores into p; build TFNs.
//
// Errors:
//   - ErrCharacteristicValues (naming the criterion), ErrNoRankingStrategy,
//     ErrLatticeTooLarge, ErrJudgmentRange, ErrRateLength, ErrNonFiniteScore,
//     or any error of the rate function.
//
// Complexity:
//   - Lattice size c = Π_j len(cvalues[j]). Expert mode: O(c²) time and memory.
//     Rate mode: the rate function's cost plus O(c log c).
func NewCOMET(cvalues [][]float64, opts ...Option) (*COMET, error) {
	const op = "COMET"
	o := gatherOptions(opts...)
	if len(cvalues) == 0 {
		return nil, methodErrorf(op, fmt.Errorf("no criteria: %w", ErrCharacteristicValues))
	}
	c := &COMET{
		cvalues: make([][]float64, len(cvalues)),
		tfns:    make([][]tfn, len(cvalues)),
		strides: make([]int, len(cvalues)),
	}
	for j, cv := range cvalues {
		if err := checkCharacteristic(cv); err != nil {
			return nil, methodErrorf(op, fmt.Errorf("criterion %d: %w", j, err))
		}
		c.cvalues[j] = append([]float64(nil), cv...)
		c.tfns[j] = tfnsFor(c.cvalues[j])
	}
	if o.expert == nil && o.rate == nil {
		return nil, methodErrorf(op, ErrNoRankingStrategy)
	}

	size := 1
	for j := len(c.cvalues) - 1; j >= 0; j-- {
		c.strides[j] = size
		size *= len(c.cvalues[j])
		if o.expert != nil && o.maxObjects > 0 && size > o.maxObjects {
			return nil, methodErrorf(op, fmt.Errorf("more than %d objects: %w", o.maxObjects, ErrLatticeTooLarge))
		}
	}

	var err error
	if c.co, err = buildLattice(c.cvalues, size); err != nil {
		return nil, methodErrorf(op, err)
	}

	var sj []float64
	if o.expert != nil {
		if c.mej, err = judge(c.co, o.expert); err != nil {
			return nil, methodErrorf(op, err)
		}
		sj, _ = matrix.RowSums(c.mej)
	} else {
		if sj, err = o.rate(c.co.Clone().(*matrix.Dense)); err != nil {
			return nil, methodErrorf(op, err)
		}
		if len(sj) != size {
			return nil, methodErrorf(op, fmt.Errorf("got %d scores for %d objects: %w", len(sj), size, ErrRateLength))
		}
		if _, err = finiteScores(op, sj); err != nil {
			return nil, err
		}
	}
	c.p = discretize(sj)

	return c, nil
}

// Name returns "COMET".
func (*COMET) Name() string { return "COMET" }

// Order reports HigherIsBetter.
func (*COMET) Order() Order { return HigherIsBetter }

// Rate returns the preference of every row of alts.
//
// Implementation:
//   - Stage 1: per criterion, evaluate all of its TFNs at the alternative's value.
//   - Stage 2: walk the Cartesian product of those memberships depth-first in
//     lattice order, skipping zero-membership branches, and accumulate
//     Π memberships · p[object].
//
// Values outside a criterion's characteristic range have zero membership, so
// such an alternative rates 0.
//
// Errors:
//   - *ValidationError (ErrCriteriaMismatch when alts has a different number
//     of criteria than the model, matrix errors for nil/empty/NaN input).
func (c *COMET) Rate(alts matrix.Matrix) ([]float64, error) {
	const op = "COMET"
	if err := matrix.ValidateNonEmpty(alts); err != nil {
		return nil, invalid(op, "matrix", err)
	}
	if err := matrix.ValidateFinite(alts); err != nil {
		return nil, invalid(op, "matrix", err)
	}
	if alts.Cols() != len(c.cvalues) {
		return nil, invalid(op, "matrix",
			fmt.Errorf("got %d criteria, model has %d: %w", alts.Cols(), len(c.cvalues), ErrCriteriaMismatch))
	}

	rows := toRows(alts)
	mem := make([][]float64, len(c.cvalues))
	scores := make([]float64, len(rows))
	for i, row := range rows {
		for j, x := range row {
			if mem[j] == nil {
				mem[j] = make([]float64, len(c.tfns[j]))
			}
			for k, t := range c.tfns[j] {
				mem[j][k] = t.membership(x)
			}
		}
		scores[i] = c.accumulate(mem, 0, 0, 1)
	}

	return scores, nil
}

// Rank lets COMET satisfy Method: it rates m and ignores w and types, which
// are already encoded in the lattice ranking. The shape of w and types is
// still checked against the model.
func (c *COMET) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	if _, err := validateInput("COMET", m, w, types); err != nil {
		return nil, err
	}

	return c.Rate(m)
}

// accumulate walks criterion j onward; idx is the partial lattice index.
func (c *COMET) accumulate(mem [][]float64, j, idx int, prod float64) float64 {
	if j == len(mem) {
		return prod * c.p[idx]
	}
	var sum float64
	for k, mu := range mem[j] {
		if mu == 0 {
			continue
		}
		sum += c.accumulate(mem, j+1, idx+k*c.strides[j], prod*mu)
	}

	return sum
}

// CharacteristicObjects returns a copy of the CO lattice (one object per row).
func (c *COMET) CharacteristicObjects() *matrix.Dense {
	return c.co.Clone().(*matrix.Dense)
}

// Preferences returns a copy of the discretized preference p of every CO.
func (c *COMET) Preferences() []float64 {
	return append([]float64(nil), c.p...)
}

// MEJ returns a copy of the matrix of expert judgment.
//
// In expert mode it is the matrix built by NewCOMET. In rate-function mode it
// is derived from p on first call (p_i > p_j ⇒ 1, equal ⇒ 0.5, else 0) and
// cached; later calls return copies of the same matrix.
func (c *COMET) MEJ() *matrix.Dense {
	c.mejOnce.Do(func() {
		if c.mej == nil {
			c.mej = mejFromPreferences(c.p)
		}
	})

	return c.mej.Clone().(*matrix.Dense)
}

// CharacteristicValues returns [min, max] of every column of m, the simplest
// characteristic values covering the data.
//
// Errors:
//   - matrix validation errors; ErrCharacteristicValues for a constant column.
func CharacteristicValues(m matrix.Matrix) ([][]float64, error) {
	const op = "CharacteristicValues"
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, methodErrorf(op, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, methodErrorf(op, err)
	}
	mins, _ := matrix.ColMin(m)
	maxs, _ := matrix.ColMax(m)
	out := make([][]float64, len(mins))
	for j := range out {
		if mins[j] == maxs[j] {
			return nil, methodErrorf(op, fmt.Errorf("criterion %d is constant: %w", j, ErrCharacteristicValues))
		}
		out[j] = []float64{mins[j], maxs[j]}
	}

	return out, nil
}

// TOPSISRateFunction returns a RateFunc scoring the lattice with TOPSIS
// under weights w and types.
func TOPSISRateFunction(w []float64, types []criteria.Type, opts ...Option) RateFunc {
	t := NewTOPSIS(opts...)
	w = append([]float64(nil), w...)
	types = append([]criteria.Type(nil), types...)

	return func(co *matrix.Dense) ([]float64, error) {
		return t.Rank(co, w, types)
	}
}

// checkCharacteristic validates one criterion's characteristic values.
func checkCharacteristic(cv []float64) error {
	if len(cv) < 2 {
		return fmt.Errorf("%d values: %w", len(cv), ErrCharacteristicValues)
	}
	for k, v := range cv {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("value %d is %g: %w", k, v, ErrCharacteristicValues)
		}
		if k > 0 && !(cv[k-1] < v) {
			return fmt.Errorf("values %d,%d (%g, %g) not increasing: %w", k-1, k, cv[k-1], v, ErrCharacteristicValues)
		}
	}

	return nil
}

// buildLattice enumerates the Cartesian product, last criterion fastest.
func buildLattice(cvalues [][]float64, size int) (*matrix.Dense, error) {
	co, err := matrix.NewDense(size, len(cvalues))
	if err != nil {
		return nil, err
	}
	idx := make([]int, len(cvalues))
	row := make([]float64, len(cvalues))
	for i := 0; i < size; i++ {
		for j, k := range idx {
			row[j] = cvalues[j][k]
		}
		if err = co.SetRow(i, row); err != nil {
			return nil, err
		}
		for j := len(idx) - 1; j >= 0; j-- {
			idx[j]++
			if idx[j] < len(cvalues[j]) {
				break
			}
			idx[j] = 0
		}
	}

	return co, nil
}

// judge builds the MEJ from expert comparisons of every unordered pair.
func judge(co *matrix.Dense, expert ExpertFunc) (*matrix.Dense, error) {
	n := co.Rows()
	mej, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	objs := co.ToRows()
	for i := 0; i < n; i++ {
		_ = mej.Set(i, i, 0.5)
		for j := i + 1; j < n; j++ {
			v := expert(objs[i], objs[j])
			if math.IsNaN(v) || v < 0 || v > 1 {
				return nil, fmt.Errorf("objects %d,%d: judgment %g: %w", i, j, v, ErrJudgmentRange)
			}
			_ = mej.Set(i, j, v)
			_ = mej.Set(j, i, 1-v)
		}
	}
	if err = matrix.ValidateReciprocal(mej, matrix.DefaultEpsilon); err != nil {
		return nil, err
	}

	return mej, nil
}

// mejFromPreferences rebuilds a judgment matrix from discretized preferences.
func mejFromPreferences(p []float64) *matrix.Dense {
	n := len(p)
	mej, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var v float64
			switch {
			case p[i] > p[j]:
				v = 1
			case p[i] == p[j]:
				v = 0.5
			}
			_ = mej.Set(i, j, v)
		}
	}

	return mej
}

// discretize maps scores to k evenly spaced levels in [0,1], highest score
// first. Scores already assigned are masked out of later maximum searches.
func discretize(sj []float64) []float64 {
	levels := append([]float64(nil), sj...)
	sort.Sort(sort.Reverse(sort.Float64Slice(levels)))
	uniq := levels[:0]
	for i, v := range levels {
		if i == 0 || v != uniq[len(uniq)-1] {
			uniq = append(uniq, v)
		}
	}

	p := make([]float64, len(sj))
	k := len(uniq)
	if k == 1 {
		return p
	}
	done := make([]bool, len(sj))
	for lvl, v := range uniq {
		for i, s := range sj {
			if !done[i] && s == v {
				p[i] = float64(k-1-lvl) / float64(k-1)
				done[i] = true
			}
		}
	}

	return p
}
