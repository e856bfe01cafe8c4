// Package field translates observations and smoothness priors into the
// rows of a sparse least-squares system over a lattice of unknowns.
//
// 🚀 What is field?
//
//	The constraint assembler. A Field pairs a lattice descriptor with
//	an equation builder; every Add* method appends weighted equations
//	that tie lattice unknowns to what you know about the underlying
//	scalar field:
//		• value constraints      f(pos) = v
//		• gradient constraints   ∇f(pos) = g
//		• smoothness priors      k-th finite differences ≈ 0
//
// ✨ Key features:
//   - Two value kernels: n-linear interpolation over the 2ᴰ cell
//     corners, or nearest-neighbor with a gradient-based offset
//   - Three gradient kernels: nearest-neighbor, all cell edges, or
//     n-linear blending of the parallel cell edges
//   - Priors of orders 0-4 plus a cross prior that asks opposing cell
//     edges to change alike, tuned per order through Weights
//   - Bulk ingestion of oriented point clouds and a one-call SDF
//     assembler for iso-surface extraction pipelines
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/latfield/field"
//
//	w := field.DefaultWeights()
//	f, err := field.New(64, 64)
//	if err != nil { ... }
//	f.AddFieldConstraints(&w)
//	ok := f.AddValueConstraint([]float64{12.5, 40.0}, 1.0, w.DataPos)
//	// ok == false means the observation fell outside the lattice and
//	// was silently dropped: routine for bulk data, never an error.
//
//	x := solver.Solve(f.Lattice.Len(), f.System.Triplets(), f.System.RHS())
//
// Weight tuning (rules of thumb):
//
//   - Noisy data → raise the model weights; trustworthy data → lower
//     them (≈1/10 of the data weights)
//   - Model1 biases toward a constant field, Model2 toward a linear
//     one; higher orders cost more equations
//   - When lattice resolution changes, rescale: Model0 ∝ r,
//     Model1 ∝ 1, Model2 ∝ 1/r, Model3 ∝ 1/r²
//
// See example_test.go for the 1D curve-fit walkthrough.
package field
