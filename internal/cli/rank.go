// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/katalvlaran/mcdm/internal/config"
	"github.com/katalvlaran/mcdm/methods"
	"github.com/spf13/cobra"
)

// rankOutput is the JSON form of a ranking. Scores or Ranks is omitted when
// the return type excludes it.
type rankOutput struct {
	Method       string    `json:"method"`
	Order        string    `json:"order"`
	Weights      []float64 `json:"weights"`
	WeightSource string    `json:"weight_source"`
	Alternatives []string  `json:"alternatives"`
	Scores       []float64 `json:"scores,omitempty"`
	Ranks        []float64 `json:"ranks,omitempty"`
}

func (a *app) rankCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <problem-file>",
		Short: "Score and rank the alternatives of a problem",
		Long: `Score and rank the alternatives of a problem file.

Weights come from --weights when given, otherwise from the problem file,
otherwise from the configured weighting (equal weights by default).`,
		Args: cobra.ExactArgs(1),
		RunE: a.runRank,
	}

	f := cmd.Flags()
	f.String("method", config.DefaultMethod, "ranking method (see 'mcdm methods')")
	f.String("normalization", "", "normalization for methods that normalize")
	f.String("weights", "", "weighting method (default: problem weights, else equal)")
	f.String("return", config.DefaultReturn, "output: raw, ranks or both")
	configFlags(f, "method", "normalization", "weights", "return")

	return cmd
}

func (a *app) runRank(cmd *cobra.Command, args []string) error {
	s, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}
	rt, err := methods.ParseReturnType(a.cfg.Return)
	if err != nil {
		return err
	}
	m, err := methods.ByName(a.methodName(cmd, s), s.opts...)
	if err != nil {
		return err
	}
	a.log.Debug("ranking", "method", m.Name(), "return", rt)

	res, err := methods.Evaluate(m, s.X, s.w, s.types, rt)
	if err != nil {
		return err
	}

	return a.writeRanking(cmd.OutOrStdout(), rankOutput{
		Method:       m.Name(),
		Order:        m.Order().String(),
		Weights:      s.w,
		WeightSource: s.wSource,
		Alternatives: s.p.AlternativeLabels(),
		Scores:       res.Scores,
		Ranks:        res.Ranks,
	})
}

// writeRanking prints one ranking in the configured format.
func (a *app) writeRanking(w io.Writer, out rankOutput) error {
	if a.cfg.Format == config.FormatJSON {
		return writeJSON(w, out)
	}

	headers := []string{"Alternative"}
	if out.Scores != nil {
		headers = append(headers, out.Method)
	}
	if out.Ranks != nil {
		headers = append(headers, "Rank")
	}
	rows := make([][]string, len(out.Alternatives))
	for i, label := range out.Alternatives {
		row := []string{label}
		if out.Scores != nil {
			row = append(row, formatFloat(out.Scores[i], a.cfg.Precision))
		}
		if out.Ranks != nil {
			row = append(row, formatRank(out.Ranks[i]))
		}
		rows[i] = row
	}

	return writeTable(w, headers, rows)
}
