// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/mcdm/matrix"
)

// ExampleMatVec scores three alternatives by a plain weighted sum.
func ExampleMatVec() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{0.2, 1.0},
		{0.6, 0.5},
		{1.0, 0.0},
	})
	scores, _ := matrix.MatVec(X, []float64{0.5, 0.5})
	fmt.Println(scores)
	// Output: [0.6 0.55 0.5]
}

// ExampleColMax shows per-criterion reductions used by normalizations.
func ExampleColMax() {
	X, _ := matrix.NewDenseFromRows([][]float64{{1, 30}, {4, 10}, {2, 20}})
	mx, _ := matrix.ColMax(X)
	mn, _ := matrix.ColMin(X)
	fmt.Println(mx, mn)
	// Output: [4 30] [1 10]
}

// ExampleDense_Induced drops the second criterion.
func ExampleDense_Induced() {
	X, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	sub, _ := X.Induced([]int{0, 1}, []int{0, 2})
	fmt.Print(sub)
	// Output:
	// [1, 3]
	// [4, 6]
}
