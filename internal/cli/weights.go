// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/mcdm/internal/config"
	"github.com/katalvlaran/mcdm/internal/problem"
	"github.com/spf13/cobra"
)

const defaultWeighting = "entropy"

type weightsOutput struct {
	Method   string    `json:"method"`
	Criteria []string  `json:"criteria"`
	Types    []string  `json:"types"`
	Weights  []float64 `json:"weights"`
}

func (a *app) weightsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights <problem-file>",
		Short: "Derive objective criterion weights from the decision matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runWeights,
	}
	cmd.Flags().String("method", "", "weighting method (default: configured weights, else entropy)")

	return cmd
}

func (a *app) runWeights(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("method")
	if name == "" {
		name = a.cfg.Weights
	}
	if name == "" {
		name = defaultWeighting
	}

	p, err := problem.Load(args[0])
	if err != nil {
		return err
	}
	X, err := p.Dense()
	if err != nil {
		return err
	}
	types := p.CriteriaTypes()
	w, err := computeWeights(name, X, types)
	if err != nil {
		return err
	}
	a.log.Debug("weights computed", "method", name, "criteria", len(w))

	out := weightsOutput{Method: name, Criteria: p.CriterionLabels(), Weights: w}
	for _, t := range types {
		out.Types = append(out.Types, t.String())
	}
	if a.cfg.Format == config.FormatJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}

	rows := make([][]string, len(w))
	for j := range w {
		rows[j] = []string{out.Criteria[j], out.Types[j], formatFloat(w[j], a.cfg.Precision)}
	}

	return writeTable(cmd.OutOrStdout(), []string{"Criterion", "Type", name}, rows)
}
