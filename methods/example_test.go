// SPDX-License-Identifier: MIT

package methods_test

import (
	"fmt"

	"github.com/katalvlaran/mcdm/criteria"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/methods"
)

// ExampleTOPSIS ranks three alternatives on a cost and a profit criterion.
func ExampleTOPSIS() {
	X, _ := matrix.NewDenseFromRows([][]float64{{1, 3000}, {2, 3750}, {5, 4500}})
	types := []criteria.Type{criteria.Cost, criteria.Profit}

	res, err := methods.Evaluate(methods.NewTOPSIS(), X, []float64{0.5, 0.5}, types, methods.ReturnBoth)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n%v\n", res.Scores, res.Ranks)
	// Output:
	// [0.500 0.617 0.500]
	// [2.5 1 2.5]
}

// ExamplePROMETHEEII_Flows prints the PROMETHEE I flows and the net flow.
func ExamplePROMETHEEII_Flows() {
	X, _ := matrix.NewDenseFromRows([][]float64{{4, 3, 2}, {3, 2, 4}, {5, 1, 3}})
	f, err := methods.NewPROMETHEEII(methods.Usual).Flows(X, []float64{0.5, 0.3, 0.2}, criteria.AllProfit(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("F+ %.2f\nF- %.2f\nFI %.2f\n", f.Positive, f.Negative, f.Net)
	// Output:
	// F+ [0.55 0.35 0.60]
	// F- [0.45 0.65 0.40]
	// FI [0.10 -0.30 0.20]
}

// ExampleNewCOMET rates alternatives against a 3×3 lattice ranked by an expert.
func ExampleNewCOMET() {
	expert := func(a, b []float64) float64 {
		sa, sb := a[0]+a[1], b[0]+b[1]
		switch {
		case sa > sb:
			return 1
		case sa < sb:
			return 0
		}
		return 0.5
	}
	c, err := methods.NewCOMET([][]float64{{0, 0.5, 1}, {0, 0.5, 1}}, methods.WithExpert(expert))
	if err != nil {
		fmt.Println(err)
		return
	}
	alts, _ := matrix.NewDenseFromRows([][]float64{{0.2, 0.7}, {1, 1}, {0.5, 0.25}})
	scores, _ := c.Rate(alts)
	fmt.Printf("%.3f\n", scores)
	// Output:
	// [0.450 1.000 0.375]
}
