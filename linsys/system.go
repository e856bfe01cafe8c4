package linsys

import (
	"fmt"
	"strings"
)

// Triplet is one (row, column, value) entry of a sparse matrix, stored
// before assembly to compressed form.
type Triplet struct {
	Row, Col int
	Value    float64
}

// Coeff is one column coefficient of a logical equation, before the
// row weight is applied.
type Coeff struct {
	Col   int
	Value float64
}

// System is an append-only builder of weighted sparse equations. The
// zero value is ready to use; NewSystem is provided for symmetry with
// the rest of the module.
//
// A System must not be shared between goroutines while it is being
// mutated.
type System struct {
	triplets []Triplet
	rhs      []float64
}

// NewSystem returns an empty equation builder.
func NewSystem() *System { return &System{} }

// Reserve grows the underlying storage to hold at least rows further
// equations and coeffs further coefficients without reallocation.
// It never shrinks and is purely a performance hint.
func (s *System) Reserve(rows, coeffs int) {
	if need := len(s.rhs) + rows; need > cap(s.rhs) {
		grown := make([]float64, len(s.rhs), need)
		copy(grown, s.rhs)
		s.rhs = grown
	}
	if need := len(s.triplets) + coeffs; need > cap(s.triplets) {
		grown := make([]Triplet, len(s.triplets), need)
		copy(grown, s.triplets)
		s.triplets = grown
	}
}

// Append adds one equation weight·(Σ coeffs[i].Value·x[coeffs[i].Col]) =
// weight·rhs. Every stored coefficient and the right-hand side are
// pre-multiplied by weight. A zero weight makes the call a no-op and
// returns false; zero-valued coefficients are skipped.
// Complexity: O(len(coeffs)).
func (s *System) Append(weight, rhs float64, coeffs ...Coeff) bool {
	if weight == 0 {
		return false
	}
	row := len(s.rhs)
	for _, c := range coeffs {
		if c.Value == 0 {
			continue
		}
		s.triplets = append(s.triplets, Triplet{Row: row, Col: c.Col, Value: weight * c.Value})
	}
	s.rhs = append(s.rhs, weight*rhs)
	return true
}

// NumRows returns the number of logical equations appended so far.
func (s *System) NumRows() int { return len(s.rhs) }

// NNZ returns the number of stored coefficients.
func (s *System) NNZ() int { return len(s.triplets) }

// Triplets returns the accumulated triplets. The slice is a read-only
// view into the builder; callers must not mutate it.
func (s *System) Triplets() []Triplet { return s.triplets }

// RHS returns the accumulated right-hand sides. The slice is a
// read-only view into the builder; callers must not mutate it.
func (s *System) RHS() []float64 { return s.rhs }

// String renders every equation on its own line, in append order.
// Intended for debugging small systems; the output of a large system
// is correspondingly large.
func (s *System) String() string {
	var b strings.Builder
	i := 0
	for row, rhs := range s.rhs {
		first := true
		for i < len(s.triplets) && s.triplets[i].Row == row {
			t := s.triplets[i]
			if first {
				fmt.Fprintf(&b, "%+.3f·x[%d]", t.Value, t.Col)
				first = false
			} else {
				fmt.Fprintf(&b, " %+.3f·x[%d]", t.Value, t.Col)
			}
			i++
		}
		if first {
			b.WriteString("0")
		}
		fmt.Fprintf(&b, " = %+.3f\n", rhs)
	}
	return b.String()
}
