package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/latfield/linsys"
)

// Solve computes the least-squares solution of the overdetermined
// sparse system described by triplets and rhs, over n unknowns:
//
//	minimize ‖A·x − b‖²  via  (AᵀA + ε·I)·x = Aᵀb
//
// The tiny ridge ε keeps the normal matrix invertible when no
// zero-order prior is present. Returns a vector of exactly n entries,
// or nil when the factorization fails or the solution is non-finite —
// the singular-system signal callers are expected to check.
//
// Malformed input (n < 1, triplet indices outside len(rhs)×n) is a
// caller bug and panics.
func Solve(n int, triplets []linsys.Triplet, rhs []float64) []float64 {
	if n < 1 {
		panic(fmt.Sprintf("solver: %d unknowns", n))
	}
	a := linsys.NewCSR(len(rhs), n, triplets)

	normal := a.NormalTriplets()
	for i := 0; i < n; i++ {
		normal = append(normal, linsys.Triplet{Row: i, Col: i, Value: ridge})
	}
	m := linsys.NewCSR(n, n, normal)

	y := make([]float64, n)
	a.MulTransVec(y, rhs)

	x := solveNormal(m, y)
	if x == nil || !allFinite(x) {
		return nil
	}
	return x
}

// allFinite reports whether every entry is a finite number.
func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
