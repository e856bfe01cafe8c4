// Package latfield reconstructs scalar fields sampled on dense regular
// lattices from sparse value and gradient observations plus smoothness
// priors, by assembling and solving large overdetermined sparse
// least-squares systems.
//
// 🚀 What is latfield?
//
//	A pure-Go library that turns observations into equations and
//	equations into fields:
//		• Equation assembly: weighted sparse rows from value constraints,
//		  gradient constraints and finite-difference smoothness priors
//		• Exact solving: sparse Cholesky on the normal equations with
//		  fill-reducing reordering
//		• Approximate solving: coarse solve → n-linear upsample →
//		  tiled refinement → conjugate-gradient polish
//		• Diagnostics: per-lattice-point residual "blame" maps
//
// ✨ Why choose latfield?
//
//   - Fit smooth curves and surfaces to noisy point data
//   - Generate approximate signed distance fields from oriented point
//     clouds, ready for iso-surface extraction
//   - Tune the data/model trade-off with explicit per-prior weights
//   - Pure Go on top of gonum — no cgo, no I/O, no global state
//
// Everything is organized under four subpackages:
//
//	lattice/ — lattice descriptor, n-linear sampling, field resampling
//	linsys/  — sparse equation builder, CSR assembly, normal equations
//	field/   — constraint kernels, smoothness priors, SDF helpers
//	solver/  — exact and approximate lattice least-squares solvers
//
// Quick ASCII example (1D curve fit, 6 unknowns):
//
//	f(0)=4 ●
//	          ·                  the second-difference prior pulls the
//	             ·               interior toward the straight line
//	                ·            between the two pinned endpoints
//	                   ● f(5)=2
//
// Dive into each package's doc.go for the full API walkthrough.
//
//	go get github.com/katalvlaran/latfield
package latfield
