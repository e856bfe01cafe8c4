package linsys

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// CSR is an immutable sparse matrix in compressed sparse row form,
// assembled from triplets with duplicate entries summed.
type CSR struct {
	rows, cols int
	rowPtr     []int
	colIdx     []int
	values     []float64
}

// NewCSR assembles a rows×cols CSR matrix from triplets. Entries with
// identical (row, col) are summed; within each row, columns are stored
// in increasing order. Triplets outside the rows×cols shape are a
// caller bug and panic.
// Complexity: O(nnz·log nnz_row) time, O(nnz) memory.
func NewCSR(rows, cols int, triplets []Triplet) *CSR {
	m := &CSR{
		rows:   rows,
		cols:   cols,
		rowPtr: make([]int, rows+1),
		colIdx: make([]int, len(triplets)),
		values: make([]float64, len(triplets)),
	}

	// Counting pass.
	for _, t := range triplets {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			panic(fmt.Sprintf("linsys: triplet (%d,%d) outside %dx%d matrix", t.Row, t.Col, rows, cols))
		}
		m.rowPtr[t.Row+1]++
	}
	for r := 0; r < rows; r++ {
		m.rowPtr[r+1] += m.rowPtr[r]
	}

	// Placement pass.
	next := make([]int, rows)
	copy(next, m.rowPtr[:rows])
	for _, t := range triplets {
		i := next[t.Row]
		m.colIdx[i] = t.Col
		m.values[i] = t.Value
		next[t.Row]++
	}

	// Sort each row by column and merge duplicates in place.
	w := 0
	newPtr := make([]int, rows+1)
	for r := 0; r < rows; r++ {
		lo, hi := m.rowPtr[r], m.rowPtr[r+1]
		sort.Sort(rowSlice{m.colIdx[lo:hi], m.values[lo:hi]})
		for i := lo; i < hi; i++ {
			if w > newPtr[r] && m.colIdx[w-1] == m.colIdx[i] {
				m.values[w-1] += m.values[i]
				continue
			}
			m.colIdx[w] = m.colIdx[i]
			m.values[w] = m.values[i]
			w++
		}
		newPtr[r+1] = w
	}
	m.rowPtr = newPtr
	m.colIdx = m.colIdx[:w]
	m.values = m.values[:w]
	return m
}

// rowSlice sorts one CSR row's columns and values in lockstep.
type rowSlice struct {
	cols []int
	vals []float64
}

func (r rowSlice) Len() int           { return len(r.cols) }
func (r rowSlice) Less(i, j int) bool { return r.cols[i] < r.cols[j] }
func (r rowSlice) Swap(i, j int) {
	r.cols[i], r.cols[j] = r.cols[j], r.cols[i]
	r.vals[i], r.vals[j] = r.vals[j], r.vals[i]
}

// Dims returns the matrix shape.
func (m *CSR) Dims() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored entries after duplicate merging.
func (m *CSR) NNZ() int { return len(m.values) }

// Row returns the column indices and values of row r as read-only
// views into the matrix.
func (m *CSR) Row(r int) (cols []int, vals []float64) {
	lo, hi := m.rowPtr[r], m.rowPtr[r+1]
	return m.colIdx[lo:hi], m.values[lo:hi]
}

// MulVec computes dst = A·x. len(dst) must be rows, len(x) cols.
func (m *CSR) MulVec(dst, x []float64) {
	for r := 0; r < m.rows; r++ {
		sum := 0.0
		for i := m.rowPtr[r]; i < m.rowPtr[r+1]; i++ {
			sum += m.values[i] * x[m.colIdx[i]]
		}
		dst[r] = sum
	}
}

// MulTransVec computes dst = Aᵀ·x. len(dst) must be cols, len(x) rows.
func (m *CSR) MulTransVec(dst, x []float64) {
	for i := range dst {
		dst[i] = 0
	}
	for r := 0; r < m.rows; r++ {
		xr := x[r]
		if xr == 0 {
			continue
		}
		for i := m.rowPtr[r]; i < m.rowPtr[r+1]; i++ {
			dst[m.colIdx[i]] += m.values[i] * xr
		}
	}
}

// Residual returns ‖A·x − b‖₂.
func (m *CSR) Residual(x, b []float64) float64 {
	r := make([]float64, m.rows)
	m.MulVec(r, x)
	floats.AddScaledTo(r, r, -1, b) // r = Ax - b
	return floats.Norm(r, 2)
}

// Normal assembles the normal equations of the least-squares system:
// the symmetric matrix AᵀA in CSR form together with the projected
// right-hand side Aᵀb. Callers that need to augment the matrix first
// (e.g. with a diagonal ridge) use NormalTriplets instead.
// Complexity: O(Σ nnz(row)²).
func (m *CSR) Normal(b []float64) (*CSR, []float64) {
	normal := NewCSR(m.cols, m.cols, m.NormalTriplets())
	y := make([]float64, m.cols)
	m.MulTransVec(y, b)
	return normal, y
}

// NormalTriplets returns the triplets of AᵀA, with one entry per
// (i,j) contribution; assembling them through NewCSR sums the
// duplicates into the symmetric normal matrix.
// Complexity: O(Σ nnz(row)²).
func (m *CSR) NormalTriplets() []Triplet {
	var out []Triplet
	for r := 0; r < m.rows; r++ {
		lo, hi := m.rowPtr[r], m.rowPtr[r+1]
		for i := lo; i < hi; i++ {
			ci, vi := m.colIdx[i], m.values[i]
			for j := lo; j < hi; j++ {
				out = append(out, Triplet{Row: ci, Col: m.colIdx[j], Value: vi * m.values[j]})
			}
		}
	}
	return out
}
