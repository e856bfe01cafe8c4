package field

import "github.com/katalvlaran/latfield/linsys"

// stencils[k] is the k-th finite-difference operator along one axis:
// binomial coefficients with alternating signs. Row k prefers a field
// whose (k-1)-th order behavior is free and k-th differences vanish.
var stencils = [5][]float64{
	{+1},
	{+1, -1},
	{+1, -2, +1},
	{+1, -3, +3, -1},
	{+1, -4, +6, -4, +1},
}

// AddFieldConstraints appends the smoothness model of the field: for
// every order k with Weights.Model_k > 0, one zero-rhs stencil row per
// lattice point and axis where the k-wide stencil fits (order 0 has no
// axis loop: one row per point). When Weights.GradientSmoothness > 0 it
// additionally appends, per cell and axis, one row for every pair of
// parallel cell edges asking them to change by the same amount.
//
// Complexity: O(N·D·k) per active order plus O(cells·D·pairs) for the
// cross prior.
func (f *Field) AddFieldConstraints(w *Weights) {
	modelWeights := [5]float64{w.Model0, w.Model1, w.Model2, w.Model3, w.Model4}
	f.reserveModel(modelWeights, w.GradientSmoothness)

	if modelWeights[0] > 0 {
		for flat := 0; flat < f.Lattice.Len(); flat++ {
			f.System.Append(modelWeights[0], 0, linsys.Coeff{Col: flat, Value: 1})
		}
	}
	for k := 1; k <= 4; k++ {
		if modelWeights[k] > 0 {
			f.addStencilRows(k, modelWeights[k])
		}
	}
	if w.GradientSmoothness > 0 {
		f.addGradientSmoothness(w.GradientSmoothness)
	}
}

// addStencilRows emits the order-k stencil along every axis at every
// lattice point where the stencil stays inside the lattice.
func (f *Field) addStencilRows(k int, weight float64) {
	lat := f.Lattice
	stencil := stencils[k]
	coeffs := make([]linsys.Coeff, len(stencil))
	for d := 0; d < lat.NumDims(); d++ {
		step := lat.Stride(d)
		size := lat.Size(d)
		if size <= k {
			continue
		}
		coords := make([]int, lat.NumDims())
		for flat := 0; flat < lat.Len(); flat++ {
			coords = lat.Coordinate(flat, coords)
			if coords[d]+k <= size-1 {
				for j, c := range stencil {
					coeffs[j] = linsys.Coeff{Col: flat + j*step, Value: c}
				}
				f.System.Append(weight, 0, coeffs...)
			}
		}
	}
}

// addGradientSmoothness emits, for every cell and axis d, one equation
// per unordered pair of the 2^(D-1) cell edges parallel to d:
// (x[hi1]-x[lo1]) - (x[hi2]-x[lo2]) = 0. In 2D this is the pair of
// constraints B-A = D-C and C-A = D-B per cell; in 3D every parallel
// edge pair of the cube contributes.
func (f *Field) addGradientSmoothness(weight float64) {
	lat := f.Lattice
	if !hasCells(lat) {
		return
	}
	dims := lat.NumDims()
	numCorners := 1 << dims

	// Enumerate cell base corners: coords in [0, size-2] per axis.
	coords := make([]int, dims)
	for {
		base := lat.Index(coords)
		for d := 0; d < dims; d++ {
			step := lat.Stride(d)
			for m1 := 0; m1 < numCorners; m1++ {
				if m1&(1<<d) != 0 {
					continue
				}
				for m2 := m1 + 1; m2 < numCorners; m2++ {
					if m2&(1<<d) != 0 {
						continue
					}
					lo1 := base + cornerOffset(lat, m1)
					lo2 := base + cornerOffset(lat, m2)
					f.System.Append(weight, 0,
						linsys.Coeff{Col: lo1 + step, Value: 1},
						linsys.Coeff{Col: lo1, Value: -1},
						linsys.Coeff{Col: lo2 + step, Value: -1},
						linsys.Coeff{Col: lo2, Value: 1})
				}
			}
		}

		// Odometer over cell bases.
		d := 0
		for ; d < dims; d++ {
			coords[d]++
			if coords[d] <= lat.Size(d)-2 {
				break
			}
			coords[d] = 0
		}
		if d == dims {
			return
		}
	}
}

// reserveModel pre-sizes the builder for the rows AddFieldConstraints
// is about to append. Pure capacity hint; counts mirror the emission
// loops.
func (f *Field) reserveModel(modelWeights [5]float64, gradientSmoothness float64) {
	lat := f.Lattice
	rows, coeffs := 0, 0
	if modelWeights[0] > 0 {
		rows += lat.Len()
		coeffs += lat.Len()
	}
	for k := 1; k <= 4; k++ {
		if modelWeights[k] <= 0 {
			continue
		}
		for d := 0; d < lat.NumDims(); d++ {
			if fit := lat.Size(d) - k; fit > 0 {
				n := lat.Len() / lat.Size(d) * fit
				rows += n
				coeffs += n * (k + 1)
			}
		}
	}
	if gradientSmoothness > 0 && hasCells(lat) {
		cells := 1
		for d := 0; d < lat.NumDims(); d++ {
			cells *= lat.Size(d) - 1
		}
		edges := 1 << (lat.NumDims() - 1)
		pairs := edges * (edges - 1) / 2
		rows += cells * lat.NumDims() * pairs
		coeffs += cells * lat.NumDims() * pairs * 4
	}
	f.System.Reserve(rows, coeffs)
}
