// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/mcdm/correlation"
	"github.com/katalvlaran/mcdm/internal/config"
	"github.com/katalvlaran/mcdm/methods"
	"github.com/spf13/cobra"
)

var defaultCompared = []string{"topsis", "vikor", "spotis"}

type compareOutput struct {
	Coefficient  string      `json:"coefficient"`
	Methods      []string    `json:"methods"`
	Alternatives []string    `json:"alternatives"`
	Ranks        [][]float64 `json:"ranks"`
	Correlation  [][]float64 `json:"correlation"`
}

func (a *app) compareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <problem-file>",
		Short: "Rank with several methods and correlate their rankings",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runCompare,
	}

	f := cmd.Flags()
	f.StringSlice("methods", defaultCompared, "comma-separated methods to compare")
	f.String("coefficient", config.DefaultCoefficient, "ranking correlation coefficient")
	f.String("normalization", "", "normalization for methods that normalize")
	f.String("weights", "", "weighting method (default: problem weights, else equal)")
	configFlags(f, "coefficient", "normalization", "weights")

	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, args []string) error {
	names, _ := cmd.Flags().GetStringSlice("methods")
	if len(names) < 2 {
		return fmt.Errorf("compare: need at least two methods, got %d", len(names))
	}
	coef, err := correlation.ByName(a.cfg.Coefficient)
	if err != nil {
		return err
	}
	s, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}

	out := compareOutput{
		Coefficient:  a.cfg.Coefficient,
		Alternatives: s.p.AlternativeLabels(),
	}
	for _, name := range names {
		m, err := methods.ByName(name, s.opts...)
		if err != nil {
			return err
		}
		res, err := methods.Evaluate(m, s.X, s.w, s.types, methods.ReturnRanks)
		if err != nil {
			return fmt.Errorf("compare: %w", err)
		}
		out.Methods = append(out.Methods, m.Name())
		out.Ranks = append(out.Ranks, res.Ranks)
		a.log.Debug("ranked", "method", m.Name())
	}

	corr, err := correlation.Matrix(out.Ranks, coef)
	if err != nil {
		return fmt.Errorf("compare: %s: %w", a.cfg.Coefficient, err)
	}
	out.Correlation = corr.ToRows()

	w := cmd.OutOrStdout()
	if a.cfg.Format == config.FormatJSON {
		return writeJSON(w, out)
	}

	headers := append([]string{"Alternative"}, out.Methods...)
	rows := make([][]string, len(out.Alternatives))
	for i, label := range out.Alternatives {
		row := []string{label}
		for k := range out.Methods {
			row = append(row, formatRank(out.Ranks[k][i]))
		}
		rows[i] = row
	}
	if err := writeTable(w, headers, rows); err != nil {
		return err
	}

	headers = append([]string{out.Coefficient}, out.Methods...)
	rows = make([][]string, len(out.Methods))
	for i, name := range out.Methods {
		row := []string{name}
		for _, v := range out.Correlation[i] {
			row = append(row, formatFloat(v, a.cfg.Precision))
		}
		rows[i] = row
	}

	return writeTable(w, headers, rows)
}
