package lattice

// Upscale resamples a field stored on src onto the shape of dst using
// n-linear interpolation. Target positions are mapped by the strict
// rescale p[d] = q[d]·(srcSize-1)/(dstSize-1) of the closed interval,
// so no extrapolation ever happens; axes with dstSize == 1 map to 0.
//
// Identical shapes short-circuit to a bit-exact copy.
// Returns ErrDimensionMismatch when src and dst differ in
// dimensionality and ErrFieldLength when len(field) != src.Len().
// Complexity: O(dst.Len()·2ᴰ·D).
func Upscale(field []float64, src, dst *Lattice) ([]float64, error) {
	if src.NumDims() != dst.NumDims() {
		return nil, ErrDimensionMismatch
	}
	if len(field) != src.Len() {
		return nil, ErrFieldLength
	}

	same := true
	for d := 0; d < src.NumDims(); d++ {
		if src.sizes[d] != dst.sizes[d] {
			same = false
			break
		}
	}
	if same {
		out := make([]float64, len(field))
		copy(out, field)
		return out, nil
	}

	// Per-axis scale from target to source coordinates.
	scale := make([]float64, dst.NumDims())
	for d := range scale {
		if dst.sizes[d] > 1 {
			scale[d] = float64(src.sizes[d]-1) / float64(dst.sizes[d]-1)
		}
	}

	out := make([]float64, dst.Len())
	coords := make([]int, dst.NumDims())
	pos := make([]float64, dst.NumDims())
	for flat := range out {
		for d, c := range coords {
			pos[d] = float64(c) * scale[d]
		}
		v, _ := src.Sample(field, pos)
		out[flat] = v

		// Row-major odometer increment.
		for d := 0; d < len(coords); d++ {
			coords[d]++
			if coords[d] < dst.sizes[d] {
				break
			}
			coords[d] = 0
		}
	}
	return out, nil
}
