package lattice_test

import (
	"testing"

	"github.com/katalvlaran/latfield/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation verifies that malformed shapes are rejected with
// the documented sentinel errors.
func TestNew_Validation(t *testing.T) {
	_, err := lattice.New()
	assert.ErrorIs(t, err, lattice.ErrNoAxes, "no axes must error")

	_, err = lattice.New(4, 0)
	assert.ErrorIs(t, err, lattice.ErrAxisSize, "zero axis size must error")

	_, err = lattice.New(4, -2)
	assert.ErrorIs(t, err, lattice.ErrAxisSize, "negative axis size must error")

	_, err = lattice.New(2, 2, 2, 2)
	assert.ErrorIs(t, err, lattice.ErrTooManyAxes, "more than MaxDim axes must error")
}

// TestNew_StridesAndLen verifies the row-major stride layout.
func TestNew_StridesAndLen(t *testing.T) {
	lat, err := lattice.New(4, 5, 6)
	require.NoError(t, err)

	assert.Equal(t, 3, lat.NumDims())
	assert.Equal(t, 4*5*6, lat.Len())
	assert.Equal(t, 1, lat.Stride(0))
	assert.Equal(t, 4, lat.Stride(1))
	assert.Equal(t, 20, lat.Stride(2))
}

// TestIndex_CoordinateRoundTrip checks Index and Coordinate are inverse
// for every lattice point of a small 3D lattice.
func TestIndex_CoordinateRoundTrip(t *testing.T) {
	lat, err := lattice.New(3, 4, 2)
	require.NoError(t, err)

	coords := make([]int, 3)
	for flat := 0; flat < lat.Len(); flat++ {
		coords = lat.Coordinate(flat, coords)
		assert.True(t, lat.InBounds(coords))
		assert.Equal(t, flat, lat.Index(coords), "round trip at flat=%d", flat)
	}
}

// TestLocate_Interior verifies base/frac decomposition away from any
// boundary.
func TestLocate_Interior(t *testing.T) {
	lat, err := lattice.New(10, 10)
	require.NoError(t, err)

	cell, ok := lat.Locate([]float64{3.25, 7.5})
	require.True(t, ok)
	assert.Equal(t, []int{3, 7}, cell.Base)
	assert.InDelta(t, 0.25, cell.Frac[0], 1e-12)
	assert.InDelta(t, 0.5, cell.Frac[1], 1e-12)
}

// TestLocate_UpperBoundary verifies that a position exactly on the
// upper boundary resolves into the last interior cell with Frac=1, so
// that all corners stay in bounds.
func TestLocate_UpperBoundary(t *testing.T) {
	lat, err := lattice.New(10)
	require.NoError(t, err)

	cell, ok := lat.Locate([]float64{9.0})
	require.True(t, ok, "exact upper boundary must resolve")
	assert.Equal(t, []int{8}, cell.Base)
	assert.Equal(t, 1.0, cell.Frac[0])

	flat, w := cell.Corner(1)
	assert.Equal(t, 9, flat)
	assert.Equal(t, 1.0, w)
	_, w0 := cell.Corner(0)
	assert.Equal(t, 0.0, w0)
}

// TestLocate_OutOfRange mirrors the rejection cases of the constraint
// kernels: slightly negative and past-the-end positions must not
// resolve.
func TestLocate_OutOfRange(t *testing.T) {
	lat, err := lattice.New(10)
	require.NoError(t, err)

	_, ok := lat.Locate([]float64{-0.5})
	assert.False(t, ok)

	_, ok = lat.Locate([]float64{10.01})
	assert.False(t, ok)

	_, ok = lat.Locate([]float64{9.0})
	assert.True(t, ok)
}

// TestCorner_Weights verifies the bilinear corner weights of a 2D cell.
func TestCorner_Weights(t *testing.T) {
	lat, err := lattice.New(4, 4)
	require.NoError(t, err)

	cell, ok := lat.Locate([]float64{1.25, 2.75})
	require.True(t, ok)

	total := 0.0
	weights := map[int]float64{}
	for mask := 0; mask < cell.NumCorners(); mask++ {
		flat, w := cell.Corner(mask)
		weights[flat] = w
		total += w
	}
	assert.Equal(t, 4, cell.NumCorners())
	assert.InDelta(t, 1.0, total, 1e-12, "partition of unity")
	assert.InDelta(t, 0.75*0.25, weights[lat.Index([]int{1, 2})], 1e-12)
	assert.InDelta(t, 0.25*0.25, weights[lat.Index([]int{2, 2})], 1e-12)
	assert.InDelta(t, 0.75*0.75, weights[lat.Index([]int{1, 3})], 1e-12)
	assert.InDelta(t, 0.25*0.75, weights[lat.Index([]int{2, 3})], 1e-12)
}

// TestNearest verifies rounding and the out-of-range contract.
func TestNearest(t *testing.T) {
	lat, err := lattice.New(10)
	require.NoError(t, err)

	coords, ok := lat.Nearest([]float64{3.4}, nil)
	require.True(t, ok)
	assert.Equal(t, []int{3}, coords)

	coords, ok = lat.Nearest([]float64{-0.4}, coords)
	require.True(t, ok, "rounds into range")
	assert.Equal(t, []int{0}, coords)

	_, ok = lat.Nearest([]float64{-0.6}, coords)
	assert.False(t, ok, "rounds below range")

	_, ok = lat.Nearest([]float64{9.6}, coords)
	assert.False(t, ok, "rounds past range")
}

// TestSample_Bilinear evaluates a bilinear field; n-linear sampling
// must reproduce it exactly at arbitrary in-cell positions.
func TestSample_Bilinear(t *testing.T) {
	lat, err := lattice.New(3, 3)
	require.NoError(t, err)

	// f(x,y) = 2x + 3y + 1 (bilinear, so interpolation is exact).
	f := make([]float64, lat.Len())
	coords := make([]int, 2)
	for flat := range f {
		coords = lat.Coordinate(flat, coords)
		f[flat] = 2*float64(coords[0]) + 3*float64(coords[1]) + 1
	}

	v, ok := lat.Sample(f, []float64{0.5, 1.25})
	require.True(t, ok)
	assert.InDelta(t, 2*0.5+3*1.25+1, v, 1e-12)

	v, ok = lat.Sample(f, []float64{2.0, 2.0})
	require.True(t, ok)
	assert.InDelta(t, 2*2+3*2+1, v, 1e-12)

	_, ok = lat.Sample(f, []float64{2.5, 1.0})
	assert.False(t, ok, "out of bounds must not sample")

	_, ok = lat.Sample(f[:4], []float64{1.0, 1.0})
	assert.False(t, ok, "short field must not sample")
}
