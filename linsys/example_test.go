package linsys_test

import (
	"fmt"

	"github.com/katalvlaran/latfield/linsys"
)

// ExampleSystem demonstrates appending weighted equations and reading
// the assembled views.
func ExampleSystem() {
	sys := linsys.NewSystem()

	sys.Append(1.0, 4.0, linsys.Coeff{Col: 0, Value: 1})            // x[0] = 4
	sys.Append(0, 9.0, linsys.Coeff{Col: 1, Value: 1})              // zero weight: skipped
	sys.Append(2.0, 1.0, linsys.Coeff{Col: 1, Value: 0.5})          // 1·x[1] = 2
	fmt.Println("rows:", sys.NumRows(), "nnz:", sys.NNZ())
	fmt.Print(sys)

	// Output:
	// rows: 2 nnz: 2
	// +1.000·x[0] = +4.000
	// +1.000·x[1] = +2.000
}
