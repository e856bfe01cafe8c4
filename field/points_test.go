package field_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/latfield/field"
	"github.com/katalvlaran/latfield/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddPoints_ValueAndGradientRows verifies the per-point emission:
// one value row plus one gradient row per axis edge set, with
// out-of-range points silently dropped.
func TestAddPoints_ValueAndGradientRows(t *testing.T) {
	f, err := field.New(8, 8)
	require.NoError(t, err)

	positions := []float64{
		2.5, 2.5, // in range
		-3.0, 1.0, // dropped
		6.0, 6.0, // in range, lattice aligned
	}
	normals := []float64{
		1, 0,
		0, 1,
		0.5, 0.5,
	}
	f.AddPoints(1, field.LinearInterpolation, 1, field.CellEdges, positions, normals, nil)

	// Two surviving points: 1 value row + 4 cell-edge rows each.
	assert.Equal(t, 2*(1+4), f.System.NumRows())
}

// TestAddPoints_PointWeights verifies that per-point weights multiply
// into both constraint families.
func TestAddPoints_PointWeights(t *testing.T) {
	f, err := field.New(8)
	require.NoError(t, err)

	f.AddPoints(2, field.LinearInterpolation, 3, field.GradientNearestNeighbor,
		[]float64{4.0}, []float64{1}, []float64{0.5})

	require.Equal(t, 2, f.System.NumRows())
	tr := f.System.Triplets()
	// Value row: lattice-aligned, single coefficient 2·0.5.
	assert.Equal(t, 1.0, tr[0].Value)
	// Gradient row coefficients carry 3·0.5.
	assert.Equal(t, 1.5, tr[1].Value)
	assert.Equal(t, -1.5, tr[2].Value)
}

// TestAddPoints_NearestKernelNeedsNormals verifies the documented
// fallback to interpolation when no normals are supplied.
func TestAddPoints_NearestKernelNeedsNormals(t *testing.T) {
	f, err := field.New(8)
	require.NoError(t, err)

	f.AddPoints(1, field.NearestNeighbor, 1, field.CellEdges,
		[]float64{2.25}, nil, nil)

	// One interpolated value row over the two cell corners; no
	// gradient rows without normals.
	require.Equal(t, 1, f.System.NumRows())
	assert.Equal(t, 2, f.System.NNZ())
}

// TestSDFFromPoints_Scaling verifies the unit-cube → lattice position
// scaling and the zero right-hand side of the value rows.
func TestSDFFromPoints_Scaling(t *testing.T) {
	w := field.DefaultWeights()
	w.Model2 = 0 // isolate the data rows

	f, err := field.SDFFromPoints([]int{11, 21}, &w,
		[]float64{0.5, 0.5}, []float64{1, 0}, nil)
	require.NoError(t, err)

	// Scaled position (5,10) is lattice aligned: single value
	// coefficient at flat 5 + 10·11.
	tr := f.System.Triplets()
	require.NotEmpty(t, tr)
	assert.Equal(t, 5+10*11, tr[0].Col)
	assert.Zero(t, f.System.RHS()[0], "SDF value rows pin the surface at 0")

	// 1 value row + 4 cell-edge rows.
	assert.Equal(t, 5, f.System.NumRows())
}

// TestSDFFromPoints_BadShape forwards lattice validation errors.
func TestSDFFromPoints_BadShape(t *testing.T) {
	w := field.DefaultWeights()
	_, err := field.SDFFromPoints([]int{0, 4}, &w, nil, nil, nil)
	assert.ErrorIs(t, err, lattice.ErrAxisSize)
}

// TestSDFFromPoints_CircleSystemShape sanity-checks the assembled
// system for a small circle cloud: equations from both the model and
// every point, all finite.
func TestSDFFromPoints_CircleSystemShape(t *testing.T) {
	w := field.DefaultWeights()
	const n = 16
	positions := make([]float64, 0, 2*n)
	normals := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / n
		positions = append(positions, 0.5+0.35*math.Cos(a), 0.5+0.35*math.Sin(a))
		normals = append(normals, math.Cos(a), math.Sin(a))
	}

	f, err := field.SDFFromPoints([]int{16, 16}, &w, positions, normals, nil)
	require.NoError(t, err)

	model := stencilRows([]int{16, 16}, 2)
	assert.Equal(t, model+n*(1+4), f.System.NumRows())
	for _, tr := range f.System.Triplets() {
		assert.False(t, math.IsNaN(tr.Value) || math.IsInf(tr.Value, 0))
	}
}
