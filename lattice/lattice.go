package lattice

import "math"

// MaxDim bounds the supported dimensionality. There is no algorithmic
// limit, but n-linear kernels touch 2ᴰ lattice points per constraint,
// so higher dimensions get expensive fast.
const MaxDim = 3

// Lattice is an immutable descriptor of a dense, row-major,
// N-dimensional rectangular grid. It carries no field values; fields
// are flat []float64 slices of length Len() indexed via Index.
type Lattice struct {
	sizes   []int
	strides []int
	total   int
}

// New constructs a Lattice from per-axis sizes.
// Returns ErrNoAxes when sizes is empty, ErrAxisSize when any size < 1,
// ErrTooManyAxes when len(sizes) > MaxDim.
// Complexity: O(D).
func New(sizes ...int) (*Lattice, error) {
	if len(sizes) == 0 {
		return nil, ErrNoAxes
	}
	if len(sizes) > MaxDim {
		return nil, ErrTooManyAxes
	}
	l := &Lattice{
		sizes:   make([]int, len(sizes)),
		strides: make([]int, len(sizes)),
		total:   1,
	}
	for d, size := range sizes {
		if size < 1 {
			return nil, ErrAxisSize
		}
		l.sizes[d] = size
		l.strides[d] = l.total
		l.total *= size
	}
	return l, nil
}

// NumDims returns the number of axes.
func (l *Lattice) NumDims() int { return len(l.sizes) }

// Size returns the extent of axis d.
func (l *Lattice) Size(d int) int { return l.sizes[d] }

// Sizes returns a copy of the per-axis sizes.
func (l *Lattice) Sizes() []int {
	out := make([]int, len(l.sizes))
	copy(out, l.sizes)
	return out
}

// Stride returns the flat-index distance between neighbors along axis d.
func (l *Lattice) Stride(d int) int { return l.strides[d] }

// Len returns the total number of lattice points (unknowns).
func (l *Lattice) Len() int { return l.total }

// Index maps integer coordinates to a flat row-major index.
// No bounds checking is performed; use InBounds first when coordinates
// come from untrusted arithmetic.
// Complexity: O(D).
func (l *Lattice) Index(coords []int) int {
	flat := 0
	for d, c := range coords {
		flat += c * l.strides[d]
	}
	return flat
}

// Coordinate is the inverse of Index. The result is written into dst
// when dst has capacity NumDims, else a fresh slice is allocated.
// Complexity: O(D).
func (l *Lattice) Coordinate(flat int, dst []int) []int {
	if cap(dst) < len(l.sizes) {
		dst = make([]int, len(l.sizes))
	}
	dst = dst[:len(l.sizes)]
	for d, size := range l.sizes {
		dst[d] = flat % size
		flat /= size
	}
	return dst
}

// InBounds reports whether integer coordinates lie inside the lattice.
func (l *Lattice) InBounds(coords []int) bool {
	for d, c := range coords {
		if c < 0 || c >= l.sizes[d] {
			return false
		}
	}
	return true
}

// Nearest rounds a real-valued position to the closest lattice point.
// The rounded coordinates are written into dst (allocated when too
// small) and ok is false when the rounded point falls outside the
// lattice, in which case dst must not be used.
// Complexity: O(D).
func (l *Lattice) Nearest(pos []float64, dst []int) (coords []int, ok bool) {
	if cap(dst) < len(l.sizes) {
		dst = make([]int, len(l.sizes))
	}
	dst = dst[:len(l.sizes)]
	for d, p := range pos {
		c := int(math.Round(p))
		if c < 0 || c >= l.sizes[d] {
			return dst, false
		}
		dst[d] = c
	}
	return dst, true
}

// Valid reports whether a real-valued position lies inside the closed
// lattice domain [0, Size(d)-1] on every axis.
func (l *Lattice) Valid(pos []float64) bool {
	for d, p := range pos {
		if !(p >= 0 && p <= float64(l.sizes[d]-1)) {
			return false
		}
	}
	return true
}
