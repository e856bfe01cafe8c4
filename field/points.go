package field

import "fmt"

// AddPoints bulk-ingests a point cloud: for every point one value
// constraint at value 0 and, when normals are supplied, one gradient
// constraint with the normal as the observed gradient. Positions are
// interleaved lattice coordinates (xyxy…); normals, when non-nil, use
// the same layout; pointWeights, when non-nil, multiply both the value
// and gradient weight of their point.
//
// The NearestNeighbor value kernel needs a gradient and falls back to
// LinearInterpolation when normals are nil. Points outside the lattice
// are silently dropped, matching the single-constraint methods.
func (f *Field) AddPoints(
	valueWeight float64, valueKernel ValueKernel,
	gradientWeight float64, gradientKernel GradientKernel,
	positions, normals, pointWeights []float64,
) {
	dims := f.Lattice.NumDims()
	if len(positions)%dims != 0 {
		panic(fmt.Sprintf("field: %d position components do not tile %d axes", len(positions), dims))
	}
	numPoints := len(positions) / dims
	if normals != nil && len(normals) != len(positions) {
		panic("field: normals must match positions in length")
	}
	if pointWeights != nil && len(pointWeights) != numPoints {
		panic("field: one point weight per point")
	}

	f.System.Reserve(numPoints*(1+dims), numPoints*(1<<dims+4*dims))

	for i := 0; i < numPoints; i++ {
		pos := positions[i*dims : (i+1)*dims]
		var normal []float64
		if normals != nil {
			normal = normals[i*dims : (i+1)*dims]
		}
		pw := 1.0
		if pointWeights != nil {
			pw = pointWeights[i]
		}

		if valueKernel == NearestNeighbor && normal != nil {
			f.AddValueConstraintNearest(pos, normal, 0, valueWeight*pw)
		} else {
			f.AddValueConstraint(pos, 0, valueWeight*pw)
		}
		if normal != nil {
			f.AddGradientConstraint(pos, normal, gradientWeight*pw, gradientKernel)
		}
	}
}

// SDFFromPoints assembles the full system for an approximate signed
// distance field from an oriented point cloud: a fresh Field of the
// given sizes, the smoothness model from weights, and one value plus
// one gradient constraint per point with the normals as gradients.
//
// Positions are interleaved unit-cube coordinates in [0,1]ᴰ and are
// scaled into lattice coordinates by sizes[d]-1 per axis. The
// resulting distances carry an arbitrary scale and are only accurate
// near the zero level set, which is what iso-surface extraction needs.
func SDFFromPoints(sizes []int, weights *Weights, positions, normals, pointWeights []float64) (*Field, error) {
	f, err := New(sizes...)
	if err != nil {
		return nil, err
	}
	dims := f.Lattice.NumDims()
	if len(positions)%dims != 0 {
		panic(fmt.Sprintf("field: %d position components do not tile %d axes", len(positions), dims))
	}

	f.AddFieldConstraints(weights)

	scaled := make([]float64, len(positions))
	for i := range positions {
		scaled[i] = positions[i] * float64(sizes[i%dims]-1)
	}
	f.AddPoints(weights.DataPos, weights.ValueKernel,
		weights.DataGradient, weights.GradientKernel,
		scaled, normals, pointWeights)
	return f, nil
}
