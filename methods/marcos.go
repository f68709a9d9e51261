// SPDX-License-Identifier: MIT

package methods

import (
	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
)

// MARCOS (Measurement of Alternatives and Ranking according to COmpromise
// Solution) relates every alternative to an ideal and an anti-ideal solution
// through a utility function.
type MARCOS struct{}

// NewMARCOS returns MARCOS. It has no tunable options; its normalization
// is fixed by the method (x/AI for profit, AI/x for cost).
func NewMARCOS(...Option) *MARCOS { return &MARCOS{} }

// Name implements Method.
func (*MARCOS) Name() string { return "MARCOS" }

// Order implements Method.
func (*MARCOS) Order() Order { return HigherIsBetter }

// Rank returns the utility f(K_i) of every alternative.
//
// Implementation:
//   - Stage 1: append AI (best per column) and AAI (worst per column) rows.
//   - Stage 2: n_ij = x_ij/AI_j (profit) or AI_j/x_ij (cost); S_i = Σ w_j n_ij.
//   - Stage 3: K⁻ = S_i/S_AAI, K⁺ = S_i/S_AI,
//     f(K⁻) = K⁺/(K⁺+K⁻), f(K⁺) = K⁻/(K⁺+K⁻),
//     f(K_i) = (K⁺+K⁻) / (1 + (1−f(K⁺))/f(K⁺) + (1−f(K⁻))/f(K⁻)).
//
// Zero raw values on cost criteria (or a zero ideal on profit criteria)
// divide by zero and fail with ErrNonFiniteScore.
func (*MARCOS) Rank(m matrix.Matrix, w []float64, types []criteria.Type) ([]float64, error) {
	const op = "MARCOS"
	X, err := validateInput(op, m, w, types)
	if err != nil {
		return nil, err
	}
	ai, aai := idealRows(X, types)
	rows := append(X.ToRows(), ai, aai)

	S := make([]float64, len(rows))
	for i, row := range rows {
		for j, x := range row {
			if types[j].IsCost() {
				S[i] += w[j] * (ai[j] / x)
			} else {
				S[i] += w[j] * (x / ai[j])
			}
		}
	}

	n := X.Rows()
	sAI, sAAI := S[n], S[n+1]
	scores := make([]float64, n)
	for i := range scores {
		kMinus := S[i] / sAAI
		kPlus := S[i] / sAI
		fMinus := kPlus / (kPlus + kMinus)
		fPlus := kMinus / (kPlus + kMinus)
		scores[i] = (kPlus + kMinus) / (1 + (1-fPlus)/fPlus + (1-fMinus)/fMinus)
	}

	return finiteScores(op, scores)
}
