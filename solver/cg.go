package solver

import (
	"math"

	"github.com/katalvlaran/latfield/linsys"
	"gonum.org/v1/gonum/floats"
)

// conjugateGradient iterates x toward the solution of the symmetric
// positive-definite system M x = y, starting from x0, until the
// relative residual ‖M·x − y‖/‖y‖ drops below tol or maxIter rounds
// pass. The input guess is never mutated.
//
// Breakdown (a non-positive or non-finite curvature p·Mp) stops the
// iteration early; the caller compares residuals and discards the
// result if it did not help.
func conjugateGradient(m *linsys.CSR, y, x0 []float64, tol float64, maxIter int) []float64 {
	n := len(y)
	x := make([]float64, n)
	copy(x, x0)

	r := make([]float64, n)
	m.MulVec(r, x)
	floats.AddScaledTo(r, y, -1, r) // r = y - Mx

	ynorm := floats.Norm(y, 2)
	if ynorm == 0 {
		ynorm = 1
	}

	p := make([]float64, n)
	copy(p, r)
	q := make([]float64, n)
	rs := floats.Dot(r, r)

	for iter := 0; iter < maxIter && math.Sqrt(rs) > tol*ynorm; iter++ {
		m.MulVec(q, p)
		curve := floats.Dot(p, q)
		if curve <= 0 || math.IsNaN(curve) || math.IsInf(curve, 0) {
			break
		}
		alpha := rs / curve
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, q)
		rsNext := floats.Dot(r, r)
		if math.IsNaN(rsNext) || math.IsInf(rsNext, 0) {
			break
		}
		beta := rsNext / rs
		rs = rsNext
		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
	}
	return x
}
