package field

import (
	"fmt"

	"github.com/katalvlaran/latfield/lattice"
	"github.com/katalvlaran/latfield/linsys"
)

// Field pairs a lattice of unknowns with the equation system being
// accumulated over it. It is constructed empty, mutated exclusively by
// the Add* constraint methods, then consumed read-only by a solver.
// A Field must not be shared between goroutines while it is mutated.
type Field struct {
	Lattice *lattice.Lattice
	System  *linsys.System
}

// New constructs an empty Field over a lattice of the given per-axis
// sizes. Shape validation errors are forwarded from lattice.New
// (ErrNoAxes, ErrAxisSize, ErrTooManyAxes).
func New(sizes ...int) (*Field, error) {
	lat, err := lattice.New(sizes...)
	if err != nil {
		return nil, err
	}
	return &Field{Lattice: lat, System: linsys.NewSystem()}, nil
}

// checkDim panics when a caller-supplied vector does not match the
// lattice dimensionality. Mismatched lengths are a programmer error,
// not a data condition.
func (f *Field) checkDim(name string, v []float64) {
	if len(v) != f.Lattice.NumDims() {
		panic(fmt.Sprintf("field: %s has %d components, lattice has %d axes",
			name, len(v), f.Lattice.NumDims()))
	}
}
