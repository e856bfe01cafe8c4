// Package lattice describes dense, uniform, rectangular grids of scalar
// unknowns and maps between flat storage, integer coordinates and
// real-valued positions on them.
//
// 🚀 What is a lattice?
//
//	An N-dimensional axis-aligned grid (1D, 2D or 3D) with row-major
//	storage. Coordinates along axis d are valid in [0, Size(d)-1]
//	inclusive, and real-valued positions live in the same closed range.
//	The descriptor precomputes per-axis strides so that
//	flat = Σ coords[d]·Stride(d) is a constant-time mapping.
//
// ✨ Key features:
//   - Validated construction: New rejects empty, oversized or
//     non-positive shapes with sentinel errors
//   - Cell location: Locate returns the enclosing cell of a real
//     position plus the fractional offsets used for n-linear weights
//   - Nearest lattice point lookup for nearest-neighbor kernels
//   - Sample: n-linear (bilinear/trilinear) field evaluation
//   - Upscale: resample a field between lattice shapes of the same
//     dimensionality with no extrapolation
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/latfield/lattice"
//
//	lat, err := lattice.New(32, 32)
//	if err != nil { ... }
//
//	cell, ok := lat.Locate([]float64{3.25, 7.5})
//	for mask := 0; mask < cell.NumCorners(); mask++ {
//	  flat, w := cell.Corner(mask)
//	  // accumulate w · field[flat]
//	}
//
// Performance:
//
//   - Index/Coordinate/InBounds: O(D)
//   - Locate/Nearest: O(D); Sample: O(2ᴰ·D)
//   - Upscale: O(len(dst)·2ᴰ·D)
//
// See example_test.go for runnable examples.
package lattice
