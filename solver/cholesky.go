package solver

import (
	"math"
	"sort"

	"github.com/katalvlaran/latfield/linsys"
	"gonum.org/v1/gonum/mat"
)

// solveNormal solves the symmetric positive-definite system M x = y
// (M is the ridged normal matrix AᵀA + εI). Small systems go through
// gonum's dense Cholesky; larger ones through the sparse factorization
// after a fill-reducing reordering. Returns nil when the factorization
// fails, leaving the failure policy to the caller.
func solveNormal(m *linsys.CSR, y []float64) []float64 {
	n, _ := m.Dims()
	if n == 0 {
		return []float64{}
	}
	if n <= denseCutoff {
		return solveNormalDense(m, y)
	}
	return solveNormalSparse(m, y)
}

// solveNormalDense factorizes M densely with gonum.
func solveNormalDense(m *linsys.CSR, y []float64) []float64 {
	n, _ := m.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		cols, vals := m.Row(i)
		for t, j := range cols {
			if j >= i {
				sym.SetSym(i, j, vals[t])
			}
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil
	}
	var x mat.VecDense
	if err := chol.SolveVecTo(&x, mat.NewVecDense(n, y)); err != nil {
		return nil
	}
	out := make([]float64, n)
	copy(out, x.RawVector().Data)
	return out
}

// sparseChol is a lower-triangular sparse Cholesky factor stored by
// columns, diagonal entry first, remaining rows ascending.
type sparseChol struct {
	n       int
	colRows [][]int
	colVals [][]float64
}

// solveNormalSparse permutes M with reverse Cuthill–McKee, factorizes
// P M Pᵀ = L Lᵀ and back-substitutes. Returns nil when M is not
// positive definite.
func solveNormalSparse(m *linsys.CSR, y []float64) []float64 {
	n, _ := m.Dims()
	perm := rcmOrder(m) // perm[new] = old
	inv := make([]int, n)
	for newIdx, oldIdx := range perm {
		inv[oldIdx] = newIdx
	}

	chol, ok := factorize(m, perm, inv)
	if !ok {
		return nil
	}

	// Permute the right-hand side, solve L(Lᵀ xp) = yp, un-permute.
	yp := make([]float64, n)
	for newIdx, oldIdx := range perm {
		yp[newIdx] = y[oldIdx]
	}
	xp := chol.solve(yp)
	x := make([]float64, n)
	for newIdx, oldIdx := range perm {
		x[oldIdx] = xp[newIdx]
	}
	return x
}

// factorize runs a left-looking column Cholesky on the permuted
// matrix. rowCols[i]/rowPos[i] record, for each factored row i, the
// columns k with L[i,k] ≠ 0 and where row i sits inside column k — the
// lists that drive the column updates.
func factorize(m *linsys.CSR, perm, inv []int) (*sparseChol, bool) {
	n := len(perm)
	chol := &sparseChol{
		n:       n,
		colRows: make([][]int, n),
		colVals: make([][]float64, n),
	}
	rowCols := make([][]int, n)
	rowPos := make([][]int, n)

	x := make([]float64, n)       // dense accumulator for one column
	stamp := make([]int, n)       // pattern membership, keyed by column+1
	pattern := make([]int, 0, 64) // rows of the current column

	for j := 0; j < n; j++ {
		pattern = pattern[:0]

		// Scatter column j of the permuted matrix (lower part).
		cols, vals := m.Row(perm[j])
		for t, c := range cols {
			i := inv[c]
			if i < j {
				continue
			}
			if stamp[i] != j+1 {
				stamp[i] = j + 1
				x[i] = 0
				pattern = append(pattern, i)
			}
			x[i] += vals[t]
		}

		// Left-looking update: for every column k with L[j,k] ≠ 0,
		// subtract L[j,k]·L[j:,k].
		for t, k := range rowCols[j] {
			pos := rowPos[j][t]
			ljk := chol.colVals[k][pos]
			rows := chol.colRows[k]
			valsK := chol.colVals[k]
			for s := pos; s < len(rows); s++ {
				i := rows[s]
				if stamp[i] != j+1 {
					stamp[i] = j + 1
					x[i] = 0
					pattern = append(pattern, i)
				}
				x[i] -= ljk * valsK[s]
			}
		}

		sort.Ints(pattern)
		if len(pattern) == 0 || pattern[0] != j {
			return nil, false // structurally missing pivot
		}
		d := x[j]
		if d <= 0 || math.IsNaN(d) {
			return nil, false // not positive definite
		}
		djj := math.Sqrt(d)

		colRows := make([]int, 0, len(pattern))
		colVals := make([]float64, 0, len(pattern))
		colRows = append(colRows, j)
		colVals = append(colVals, djj)
		for _, i := range pattern {
			if i == j {
				continue
			}
			v := x[i] / djj
			if v == 0 {
				continue
			}
			rowCols[i] = append(rowCols[i], j)
			rowPos[i] = append(rowPos[i], len(colRows))
			colRows = append(colRows, i)
			colVals = append(colVals, v)
		}
		chol.colRows[j] = colRows
		chol.colVals[j] = colVals
	}
	return chol, true
}

// solve performs the forward and backward substitutions L(Lᵀx) = b.
func (c *sparseChol) solve(b []float64) []float64 {
	y := make([]float64, c.n)
	copy(y, b)

	// Forward: L y = b, column-oriented.
	for j := 0; j < c.n; j++ {
		rows, vals := c.colRows[j], c.colVals[j]
		y[j] /= vals[0]
		yj := y[j]
		for t := 1; t < len(rows); t++ {
			y[rows[t]] -= vals[t] * yj
		}
	}

	// Backward: Lᵀ x = y.
	x := y
	for j := c.n - 1; j >= 0; j-- {
		rows, vals := c.colRows[j], c.colVals[j]
		sum := x[j]
		for t := 1; t < len(rows); t++ {
			sum -= vals[t] * x[rows[t]]
		}
		x[j] = sum / vals[0]
	}
	return x
}
