package field_test

import (
	"fmt"

	"github.com/katalvlaran/latfield/field"
)

// ExampleField demonstrates assembling a tiny 1D curve-fit system:
// a second-order smoothness prior plus two pinned endpoints.
func ExampleField() {
	w := field.DefaultWeights()
	w.Model2 = 1

	f, _ := field.New(6)
	f.AddFieldConstraints(&w)
	f.AddValueConstraint([]float64{0}, 4, w.DataPos)
	f.AddValueConstraint([]float64{5}, 2, w.DataPos)

	fmt.Println("equations:", f.System.NumRows())
	fmt.Println("non-zeros:", f.System.NNZ())

	// Output:
	// equations: 6
	// non-zeros: 14
}
