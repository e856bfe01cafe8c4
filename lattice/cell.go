package lattice

import "math"

// Cell identifies the hyper-rectangle of 2ᴰ lattice points enclosing a
// real-valued position, together with the fractional offsets that feed
// the n-linear interpolation weights.
//
// Base holds the floor corner; Frac[d] ∈ [0,1] is the offset toward the
// opposite corner along axis d. Corners are addressed by a bitmask:
// bit d set selects the high corner along axis d.
type Cell struct {
	Base []int
	Frac []float64

	lat *Lattice
}

// Locate returns the enclosing cell of pos. ok is false when pos lies
// outside the closed lattice domain on any axis (including NaN).
//
// Positions exactly on the upper boundary of an axis still resolve:
// the cell is shifted one step down with Frac = 1 so that every corner
// the n-linear weights can touch stays inside the lattice. Axes of
// size 1 degenerate to Base = 0, Frac = 0.
// Complexity: O(D).
func (l *Lattice) Locate(pos []float64) (Cell, bool) {
	if !l.Valid(pos) {
		return Cell{}, false
	}
	c := Cell{
		Base: make([]int, len(l.sizes)),
		Frac: make([]float64, len(l.sizes)),
		lat:  l,
	}
	for d, p := range pos {
		base := int(math.Floor(p))
		frac := p - float64(base)
		if base >= l.sizes[d]-1 {
			// Upper boundary: step into the last interior cell.
			if l.sizes[d] > 1 {
				base = l.sizes[d] - 2
				frac = p - float64(base)
			} else {
				base, frac = 0, 0
			}
		}
		c.Base[d] = base
		c.Frac[d] = frac
	}
	return c, true
}

// NumCorners returns 2ᴰ.
func (c Cell) NumCorners() int { return 1 << len(c.Base) }

// Corner returns the flat index and n-linear weight of the corner
// addressed by mask (bit d set = high corner along axis d). The weight
// is Π (Frac[d] if bit set else 1-Frac[d]); corners with zero weight
// may report a clamped index on degenerate axes and must be skipped by
// weight, not by index.
// Complexity: O(D).
func (c Cell) Corner(mask int) (flat int, weight float64) {
	weight = 1
	for d := range c.Base {
		coord := c.Base[d]
		if mask&(1<<d) != 0 {
			weight *= c.Frac[d]
			if coord+1 < c.lat.sizes[d] {
				coord++
			}
		} else {
			weight *= 1 - c.Frac[d]
		}
		flat += coord * c.lat.strides[d]
	}
	return flat, weight
}

// Sample evaluates the n-linear interpolation of field at pos.
// ok is false when pos is out of bounds or len(field) != Len().
// Complexity: O(2ᴰ·D).
func (l *Lattice) Sample(field []float64, pos []float64) (value float64, ok bool) {
	if len(field) != l.total {
		return 0, false
	}
	cell, ok := l.Locate(pos)
	if !ok {
		return 0, false
	}
	for mask := 0; mask < cell.NumCorners(); mask++ {
		flat, w := cell.Corner(mask)
		if w == 0 {
			continue
		}
		value += w * field[flat]
	}
	return value, true
}
