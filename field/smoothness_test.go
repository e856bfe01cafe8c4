package field_test

import (
	"testing"

	"github.com/katalvlaran/latfield/field"
	"github.com/katalvlaran/latfield/linsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stencilRows counts the order-k rows a sizes-shaped lattice admits:
// per axis, the number of points where the k-wide stencil fits, or one
// row per point for k=0.
func stencilRows(sizes []int, k int) int {
	total := 1
	for _, s := range sizes {
		total *= s
	}
	if k == 0 {
		return total
	}
	rows := 0
	for _, s := range sizes {
		if fit := s - k; fit > 0 {
			rows += total / s * fit
		}
	}
	return rows
}

// TestAddFieldConstraints_EquationCount verifies the closed-form
// equation count: every active model order contributes its per-axis
// stencil rows and the cross prior contributes one row per parallel
// edge pair per cell.
func TestAddFieldConstraints_EquationCount(t *testing.T) {
	sizes := []int{4, 3}
	w := field.Weights{
		Model0: 1, Model1: 1, Model2: 1, Model3: 1, Model4: 1,
		GradientSmoothness: 1,
	}

	f, err := field.New(sizes...)
	require.NoError(t, err)
	f.AddFieldConstraints(&w)

	want := 0
	for k := 0; k <= 4; k++ {
		want += stencilRows(sizes, k)
	}
	// Cross prior: cells × axes × C(2^(D-1), 2) = 6 × 2 × 1.
	want += (4 - 1) * (3 - 1) * 2 * 1
	assert.Equal(t, want, f.System.NumRows())
	assert.Equal(t, 54, want, "hand-computed count for the 4×3 lattice")
}

// TestAddFieldConstraints_InactiveOrdersSkipped verifies that zero
// weights emit nothing at all.
func TestAddFieldConstraints_InactiveOrdersSkipped(t *testing.T) {
	f, err := field.New(8)
	require.NoError(t, err)
	f.AddFieldConstraints(&field.Weights{})

	assert.Equal(t, 0, f.System.NumRows())
	assert.Equal(t, 0, f.System.NNZ())
}

// TestAddFieldConstraints_SecondOrderStencil inspects the actual rows
// of the order-2 prior on a 1D lattice: [+1,−2,+1] at each interior
// start, scaled by the model weight, rhs 0.
func TestAddFieldConstraints_SecondOrderStencil(t *testing.T) {
	f, err := field.New(5)
	require.NoError(t, err)
	f.AddFieldConstraints(&field.Weights{Model2: 0.5})

	require.Equal(t, 3, f.System.NumRows())
	for _, rhs := range f.System.RHS() {
		assert.Zero(t, rhs)
	}
	assert.Equal(t, []linsys.Triplet{
		{Row: 0, Col: 0, Value: 0.5}, {Row: 0, Col: 1, Value: -1}, {Row: 0, Col: 2, Value: 0.5},
		{Row: 1, Col: 1, Value: 0.5}, {Row: 1, Col: 2, Value: -1}, {Row: 1, Col: 3, Value: 0.5},
		{Row: 2, Col: 2, Value: 0.5}, {Row: 2, Col: 3, Value: -1}, {Row: 2, Col: 4, Value: 0.5},
	}, f.System.Triplets())
}

// TestAddFieldConstraints_GradientSmoothness2D inspects the cross
// prior on a single 2×2 cell: B−A = D−C and C−A = D−B.
func TestAddFieldConstraints_GradientSmoothness2D(t *testing.T) {
	f, err := field.New(2, 2)
	require.NoError(t, err)
	f.AddFieldConstraints(&field.Weights{GradientSmoothness: 2})

	// Corners: A=0 B=1 / C=2 D=3.
	require.Equal(t, 2, f.System.NumRows())
	assert.Equal(t, []linsys.Triplet{
		// Axis x: (B−A) − (D−C) = 0.
		{Row: 0, Col: 1, Value: 2}, {Row: 0, Col: 0, Value: -2},
		{Row: 0, Col: 3, Value: -2}, {Row: 0, Col: 2, Value: 2},
		// Axis y: (C−A) − (D−B) = 0.
		{Row: 1, Col: 2, Value: 2}, {Row: 1, Col: 0, Value: -2},
		{Row: 1, Col: 3, Value: -2}, {Row: 1, Col: 1, Value: 2},
	}, f.System.Triplets())
}

// TestAddFieldConstraints_StencilNeverLeaves verifies no stencil row
// references a column outside the lattice, across a mix of shapes and
// orders.
func TestAddFieldConstraints_StencilNeverLeaves(t *testing.T) {
	for _, sizes := range [][]int{{2}, {5}, {3, 4}, {2, 2, 3}} {
		f, err := field.New(sizes...)
		require.NoError(t, err)
		f.AddFieldConstraints(&field.Weights{
			Model0: 1, Model1: 1, Model2: 1, Model3: 1, Model4: 1,
			GradientSmoothness: 0.5,
		})
		for _, tr := range f.System.Triplets() {
			assert.GreaterOrEqual(t, tr.Col, 0)
			assert.Less(t, tr.Col, f.Lattice.Len(), "sizes=%v", sizes)
		}
	}
}
