// Package solver: solve options, their defaults and validation.
package solver

import (
	"errors"

	"github.com/katalvlaran/latfield/linsys"
)

// Tunable limits of the approximate pipeline. Options outside these
// ranges are nonsensical and rejected by Validate.
const (
	// MinDownscaleFactor and MaxDownscaleFactor bound Stage A's
	// resolution reduction.
	MinDownscaleFactor = 2
	MaxDownscaleFactor = 10
	// MinTileSize and MaxTileSize bound Stage B's tile edge; trailing
	// tiles may end up shorter but never below MinTileSize.
	MinTileSize = 2
	MaxTileSize = 128
)

// DefaultDownscaleFactor, DefaultTileSize, DefaultErrorTolerance and
// DefaultMaxIterations are the DefaultOptions values, chosen for
// interactive 2D lattices.
const (
	DefaultDownscaleFactor = 4
	DefaultTileSize        = 16
	DefaultErrorTolerance  = 1e-3
	DefaultMaxIterations   = 300
)

// denseCutoff selects the dense gonum Cholesky path for normal
// systems at or below this many unknowns; sparse factorization with
// reordering takes over above it.
const denseCutoff = 256

// ridge is the tiny diagonal added to AᵀA so the factorization stays
// positive definite when no zero-order prior pins the field.
const ridge = 1e-9

// ErrBadOptions indicates an Options field outside its documented
// range.
var ErrBadOptions = errors.New("solver: options out of range")

// Assembler re-emits the logical constraint system at a different
// lattice resolution. Stage A of the approximate solver calls it with
// the coarse sizes; when absent, the solver restricts the fine system
// algebraically through the upsampling operator instead.
type Assembler func(sizes []int) (triplets []linsys.Triplet, rhs []float64)

// Options configures SolveLattice.
//
// Example:
//
//	opts := solver.DefaultOptions()
//	opts.TileSize = 32      // larger tiles, fewer seams
//	opts.ErrorTolerance = 1e-4
type Options struct {
	// DownscaleFactor divides each axis for the coarse solve,
	// in [MinDownscaleFactor, MaxDownscaleFactor].
	DownscaleFactor int
	// Tile enables Stage B, the parallel per-tile exact refinement.
	Tile bool
	// TileSize is the tile edge length along every axis,
	// in [MinTileSize, MaxTileSize]. Only read when Tile is set.
	TileSize int
	// CG enables Stage C, the conjugate-gradient polish.
	CG bool
	// ErrorTolerance stops CG once the relative residual of the
	// normal equations drops below it. Only read when CG is set.
	ErrorTolerance float64
	// MaxIterations caps CG regardless of tolerance.
	MaxIterations int
	// Assemble optionally rebuilds the constraint system at the
	// coarse resolution; nil selects the algebraic restriction.
	Assemble Assembler
}

// DefaultOptions returns the recommended approximate-solve pipeline:
// 4× coarse solve, 16-wide tiles, CG to a 1e-3 relative residual.
func DefaultOptions() Options {
	return Options{
		DownscaleFactor: DefaultDownscaleFactor,
		Tile:            true,
		TileSize:        DefaultTileSize,
		CG:              true,
		ErrorTolerance:  DefaultErrorTolerance,
		MaxIterations:   DefaultMaxIterations,
	}
}

// Validate reports ErrBadOptions when any field is outside its
// documented range.
func (o Options) Validate() error {
	if o.DownscaleFactor < MinDownscaleFactor || o.DownscaleFactor > MaxDownscaleFactor {
		return ErrBadOptions
	}
	if o.Tile && (o.TileSize < MinTileSize || o.TileSize > MaxTileSize) {
		return ErrBadOptions
	}
	if o.CG {
		if o.ErrorTolerance <= 0 || o.ErrorTolerance >= 1 {
			return ErrBadOptions
		}
		if o.MaxIterations < 1 {
			return ErrBadOptions
		}
	}
	return nil
}
