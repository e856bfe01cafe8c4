package field

import (
	"github.com/katalvlaran/latfield/lattice"
	"github.com/katalvlaran/latfield/linsys"
)

// AddValueConstraint appends the observation f(pos) = value with the
// n-linear interpolation kernel: one equation whose coefficients are
// the 2ᴰ corner weights of the enclosing cell (zero-weight corners are
// skipped, so a lattice-aligned position yields a single coefficient).
//
// Returns false, appending nothing, when pos lies outside the lattice:
// out-of-range observations are routine in bulk data and are silently
// dropped rather than treated as errors.
// Complexity: O(2ᴰ·D).
func (f *Field) AddValueConstraint(pos []float64, value, weight float64) bool {
	f.checkDim("pos", pos)
	cell, ok := f.Lattice.Locate(pos)
	if !ok {
		return false
	}
	coeffs := make([]linsys.Coeff, 0, cell.NumCorners())
	for mask := 0; mask < cell.NumCorners(); mask++ {
		flat, w := cell.Corner(mask)
		if w == 0 {
			continue
		}
		coeffs = append(coeffs, linsys.Coeff{Col: flat, Value: w})
	}
	return f.System.Append(weight, value, coeffs...)
}

// AddValueConstraintNearest appends f(pos) = value to the single
// nearest lattice point nn, offsetting the observed value along the
// supplied gradient by the rounding displacement:
//
//	x[nn] = value + g·(nn − pos)
//
// In many cases this replaces AddValueConstraint with a sparser system
// that solves faster. Returns false when nn falls outside the lattice.
// Complexity: O(D).
func (f *Field) AddValueConstraintNearest(pos, gradient []float64, value, weight float64) bool {
	f.checkDim("pos", pos)
	f.checkDim("gradient", gradient)
	nn, ok := f.Lattice.Nearest(pos, nil)
	if !ok {
		return false
	}
	offset := 0.0
	for d, c := range nn {
		offset += gradient[d] * (float64(c) - pos[d])
	}
	return f.System.Append(weight, value+offset,
		linsys.Coeff{Col: f.Lattice.Index(nn), Value: 1})
}

// AddGradientConstraint appends the observation ∇f(pos) = gradient
// using the selected kernel. Axis d's component always constrains the
// finite difference between neighbors along d.
//
// The call is atomic: either every equation of the kernel is appended
// or none is, and false is returned when pos (or the stencil it needs)
// does not fit inside the lattice.
func (f *Field) AddGradientConstraint(pos, gradient []float64, weight float64, kernel GradientKernel) bool {
	f.checkDim("pos", pos)
	f.checkDim("gradient", gradient)
	switch kernel {
	case GradientNearestNeighbor:
		return f.gradientNearest(pos, gradient, weight)
	case CellEdges:
		return f.gradientCellEdges(pos, gradient, weight)
	default: // GradientLinear, including legacy spellings of the kernel
		return f.gradientLinear(pos, gradient, weight)
	}
}

// gradientNearest emits, per axis d, x[nn+e_d] − x[nn] = g[d] at the
// nearest lattice point. Every forward neighbor must exist.
func (f *Field) gradientNearest(pos, gradient []float64, weight float64) bool {
	lat := f.Lattice
	nn, ok := lat.Nearest(pos, nil)
	if !ok {
		return false
	}
	for d, c := range nn {
		if c+1 >= lat.Size(d) {
			return false
		}
	}
	base := lat.Index(nn)
	for d := 0; d < lat.NumDims(); d++ {
		f.System.Append(weight, gradient[d],
			linsys.Coeff{Col: base + lat.Stride(d), Value: 1},
			linsys.Coeff{Col: base, Value: -1})
	}
	return true
}

// gradientCellEdges emits one finite-difference equation per cell edge:
// for each axis d, the 2^(D-1) edges of the enclosing cell parallel to
// d, all with the same rhs g[d] and weight.
func (f *Field) gradientCellEdges(pos, gradient []float64, weight float64) bool {
	lat := f.Lattice
	if !hasCells(lat) {
		return false
	}
	cell, ok := lat.Locate(pos)
	if !ok {
		return false
	}
	base := lat.Index(cell.Base)
	numCorners := 1 << lat.NumDims()
	for d := 0; d < lat.NumDims(); d++ {
		step := lat.Stride(d)
		for mask := 0; mask < numCorners; mask++ {
			if mask&(1<<d) != 0 {
				continue // enumerate each edge once, from its low end
			}
			lo := base + cornerOffset(lat, mask)
			f.System.Append(weight, gradient[d],
				linsys.Coeff{Col: lo + step, Value: 1},
				linsys.Coeff{Col: lo, Value: -1})
		}
	}
	return true
}

// gradientLinear emits one equation per axis: the parallel cell edges
// blended by (D-1)-linear interpolation weights over the remaining
// axes, matching where inside the cell the position actually sits.
func (f *Field) gradientLinear(pos, gradient []float64, weight float64) bool {
	lat := f.Lattice
	if !hasCells(lat) {
		return false
	}
	cell, ok := lat.Locate(pos)
	if !ok {
		return false
	}
	base := lat.Index(cell.Base)
	numCorners := 1 << lat.NumDims()
	coeffs := make([]linsys.Coeff, 0, numCorners)
	for d := 0; d < lat.NumDims(); d++ {
		step := lat.Stride(d)
		coeffs = coeffs[:0]
		for mask := 0; mask < numCorners; mask++ {
			if mask&(1<<d) != 0 {
				continue
			}
			blend := 1.0
			for o := 0; o < lat.NumDims(); o++ {
				if o == d {
					continue
				}
				if mask&(1<<o) != 0 {
					blend *= cell.Frac[o]
				} else {
					blend *= 1 - cell.Frac[o]
				}
			}
			if blend == 0 {
				continue
			}
			lo := base + cornerOffset(lat, mask)
			coeffs = append(coeffs,
				linsys.Coeff{Col: lo + step, Value: blend},
				linsys.Coeff{Col: lo, Value: -blend})
		}
		f.System.Append(weight, gradient[d], coeffs...)
	}
	return true
}

// hasCells reports whether every axis spans at least one full cell, a
// precondition of the edge-based gradient kernels.
func hasCells(lat *lattice.Lattice) bool {
	for d := 0; d < lat.NumDims(); d++ {
		if lat.Size(d) < 2 {
			return false
		}
	}
	return true
}

// cornerOffset translates a corner bitmask into a flat-index offset
// from the cell's base corner.
func cornerOffset(lat *lattice.Lattice, mask int) int {
	off := 0
	for d := 0; d < lat.NumDims(); d++ {
		if mask&(1<<d) != 0 {
			off += lat.Stride(d)
		}
	}
	return off
}
