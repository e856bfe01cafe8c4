package solver

import "github.com/katalvlaran/latfield/linsys"

// ErrorMap projects the residual of every equation back onto the
// lattice as a blame heat-map: row i's squared residual (Aᵢ·x − bᵢ)²
// is split evenly across the row's stored entries and accumulated per
// column. The result has len(solution) entries and sums to the total
// squared residual Σ(Ax−b)² of the rows that have stored entries; a row
// without entries has no column to blame and contributes nothing.
// Complexity: O(nnz).
func ErrorMap(triplets []linsys.Triplet, solution, rhs []float64) []float64 {
	ax := make([]float64, len(rhs))
	count := make([]int, len(rhs))
	for _, t := range triplets {
		ax[t.Row] += t.Value * solution[t.Col]
		count[t.Row]++
	}

	out := make([]float64, len(solution))
	for _, t := range triplets {
		r := ax[t.Row] - rhs[t.Row]
		out[t.Col] += r * r / float64(count[t.Row])
	}
	return out
}
