// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/mcdm/internal/config"
	"github.com/katalvlaran/mcdm/methods"
	"github.com/spf13/cobra"
)

func (a *app) cometCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comet <problem-file>",
		Short: "Rate alternatives with COMET over a TOPSIS-ranked lattice",
		Long: `Rate alternatives with COMET.

Characteristic values come from method.cvalues in the problem file, or
from each column's [min, max]. The characteristic objects are ranked with
TOPSIS under the resolved weights and normalization.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runComet,
	}

	f := cmd.Flags()
	f.String("normalization", "", "normalization used by the TOPSIS rate function")
	f.String("weights", "", "weighting method (default: problem weights, else equal)")
	f.String("return", config.DefaultReturn, "output: raw, ranks or both")
	configFlags(f, "normalization", "weights", "return")

	return cmd
}

func (a *app) runComet(cmd *cobra.Command, args []string) error {
	s, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}
	rt, err := methods.ParseReturnType(a.cfg.Return)
	if err != nil {
		return err
	}

	cv := s.p.Method.CValues
	if cv == nil {
		if cv, err = methods.CharacteristicValues(s.X); err != nil {
			return err
		}
	}
	c, err := methods.NewCOMET(cv, methods.WithRateFunction(methods.TOPSISRateFunction(s.w, s.types, s.opts...)))
	if err != nil {
		return err
	}
	a.log.Debug("characteristic objects built", "objects", c.CharacteristicObjects().Rows())

	res, err := methods.Evaluate(c, s.X, s.w, s.types, rt)
	if err != nil {
		return err
	}

	return a.writeRanking(cmd.OutOrStdout(), rankOutput{
		Method:       c.Name(),
		Order:        c.Order().String(),
		Weights:      s.w,
		WeightSource: s.wSource,
		Alternatives: s.p.AlternativeLabels(),
		Scores:       res.Scores,
		Ranks:        res.Ranks,
	})
}
