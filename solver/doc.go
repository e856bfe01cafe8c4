// Package solver computes least-squares solutions of the sparse,
// block-structured systems produced by the constraint assembler, on
// full lattices (exact) or through a multi-resolution pipeline
// (approximate).
//
// 🚀 What is solver?
//
//	Two entry points over the same normal equations AᵀA x = Aᵀb:
//		• Solve — exact: sparse Cholesky factorization with a
//		  fill-reducing reverse Cuthill–McKee reordering, or a dense
//		  gonum factorization for small systems
//		• SolveLattice — approximate: solve a downscaled copy of the
//		  system exactly, upsample the coarse solution as a guess,
//		  refine independent tiles in parallel, then polish with
//		  conjugate gradient
//	plus ErrorMap, which projects each equation's squared residual
//	back onto the lattice as a per-point blame heat-map.
//
// ✨ Key features:
//   - A tiny diagonal ridge keeps the normal matrix positive definite
//     even without a zero-order prior
//   - Tiles own disjoint lattice regions; boundary unknowns come from
//     the upsampled guess, so tiles solve concurrently without locks
//   - The approximate solver never fails and never worsens: whichever
//     of guess, tiled and polished has the smallest true residual
//     ‖Ax−b‖ is returned, falling back to zeros as a last resort
//   - The exact solver reports unsolvable systems by returning nil
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/latfield/solver"
//
//	// Exact, for small lattices or when fidelity matters:
//	x := solver.Solve(lat.Len(), sys.Triplets(), sys.RHS())
//	if x == nil { /* singular or non-finite */ }
//
//	// Approximate, for interactive resolutions:
//	opts := solver.DefaultOptions()
//	x = solver.SolveLattice(sys.Triplets(), sys.RHS(), lat.Sizes(), opts)
//
// Performance:
//
//   - Exact: normal-equation assembly O(Σ nnz(row)²), factorization
//     driven by fill-in after reordering
//   - Approximate: one coarse exact solve + per-tile exact solves
//     (embarrassingly parallel) + O(MaxIterations·nnz) CG
//
// See example_test.go for the 1D curve-fit walkthrough.
package solver
