// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/katalvlaran/mcdm/correlation"
	"github.com/katalvlaran/mcdm/internal/config"
	"github.com/katalvlaran/mcdm/methods"
	"github.com/katalvlaran/mcdm/normalization"
	"github.com/katalvlaran/mcdm/weights"
	"github.com/spf13/cobra"
)

// catalog lists every name the CLI and problem files accept.
type catalog struct {
	Methods        []string `json:"methods"`
	Normalizations []string `json:"normalizations"`
	Weights        []string `json:"weights"`
	Coefficients   []string `json:"coefficients"`
	Preferences    []string `json:"preferences"`
	ReturnTypes    []string `json:"return_types"`
}

func newCatalog() catalog {
	c := catalog{
		Methods:        append(methods.Names(), "comet"),
		Normalizations: normalization.Names(),
		Weights:        weights.Names(),
		Coefficients:   correlation.Names(),
	}
	for k := methods.Usual; k <= methods.VShape2; k++ {
		c.Preferences = append(c.Preferences, k.String())
	}
	for rt := methods.ReturnRaw; rt <= methods.ReturnBoth; rt++ {
		c.ReturnTypes = append(c.ReturnTypes, rt.String())
	}

	return c
}

func (a *app) methodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List methods, normalizations, weightings and coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newCatalog()
			if a.cfg.Format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), c)
			}

			rows := [][]string{
				{"methods", strings.Join(c.Methods, ", ")},
				{"normalizations", strings.Join(c.Normalizations, ", ")},
				{"weights", strings.Join(c.Weights, ", ")},
				{"coefficients", strings.Join(c.Coefficients, ", ")},
				{"preferences", strings.Join(c.Preferences, ", ")},
				{"return types", strings.Join(c.ReturnTypes, ", ")},
			}

			return writeTable(cmd.OutOrStdout(), []string{"Kind", "Names"}, rows)
		},
	}
}
