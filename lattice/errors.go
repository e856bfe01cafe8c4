package lattice

import "errors"

// Sentinel errors for lattice construction and resampling.
var (
	// ErrNoAxes indicates a lattice was requested with zero axes.
	ErrNoAxes = errors.New("lattice: at least one axis is required")
	// ErrAxisSize indicates a non-positive axis size.
	ErrAxisSize = errors.New("lattice: every axis size must be >= 1")
	// ErrTooManyAxes indicates more than MaxDim axes were requested.
	ErrTooManyAxes = errors.New("lattice: too many axes")
	// ErrDimensionMismatch indicates two lattices of different dimensionality.
	ErrDimensionMismatch = errors.New("lattice: dimensionality mismatch")
	// ErrFieldLength indicates a field slice whose length does not match Len().
	ErrFieldLength = errors.New("lattice: field length does not match lattice size")
)
