// Package linsys accumulates weighted linear equations as sparse
// triplets and assembles them into compressed sparse row matrices for
// least-squares solving.
//
// 🚀 What is linsys?
//
//	The equation side of field interpolation. Constraint generators
//	append rows to a System builder one logical equation at a time;
//	solvers consume the builder's read-only triplet and right-hand-side
//	views, assemble a CSR matrix, and work with Ax, Aᵀx and the normal
//	equations AᵀA x = Aᵀb.
//
// ✨ Key features:
//   - Append-only builder: the only mutation is "append one weighted
//     equation"; rows are dense, contiguous and monotonically increasing
//   - Zero-weight equations and zero coefficients are skipped, so the
//     stored system never carries explicit zeros; an equation whose
//     coefficients are all zero still counts as a row with no entries
//   - Reserve hints to pre-size the triplet and rhs storage
//   - CSR assembly with duplicate-entry summing, row/column products
//     and normal-equation triplets
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/latfield/linsys"
//
//	sys := linsys.NewSystem()
//	sys.Reserve(128, 512)
//	sys.Append(1.0, 4.0, linsys.Coeff{Col: 0, Value: 1}) // x[0] = 4
//	sys.Append(0.5, 0,
//	  linsys.Coeff{Col: 0, Value: 1},
//	  linsys.Coeff{Col: 1, Value: -2},
//	  linsys.Coeff{Col: 2, Value: 1}) // smoothness row
//
//	a := linsys.NewCSR(sys.NumRows(), 3, sys.Triplets())
//	fmt.Println(a.Residual(x, sys.RHS()))
//
// Invariants:
//
//   - len(RHS()) == NumRows()
//   - every triplet's Row < NumRows()
//   - the builder stores no zero-valued coefficients
//
// See example_test.go for a runnable walkthrough.
package linsys
