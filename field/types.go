// Package field: kernel enumerations and the Weights bundle.
package field

// ValueKernel selects how a value observation is applied to the
// lattice.
type ValueKernel int

const (
	// NearestNeighbor constrains the single closest lattice point,
	// offsetting the observed value along the supplied gradient. Keeps
	// the system sparser than LinearInterpolation (1 coefficient
	// instead of 2ᴰ) at the cost of needing a gradient.
	NearestNeighbor ValueKernel = iota
	// LinearInterpolation spreads the observation over the 2ᴰ corners
	// of the enclosing cell with n-linear weights.
	LinearInterpolation
)

// GradientKernel selects how a gradient observation is applied.
type GradientKernel int

const (
	// GradientNearestNeighbor differences the nearest lattice point
	// and its forward neighbor along each axis.
	GradientNearestNeighbor GradientKernel = iota
	// CellEdges emits one finite-difference equation per cell edge,
	// 2^(D-1) edges per axis.
	CellEdges
	// GradientLinear blends the parallel cell edges of each axis with
	// (D-1)-linear weights into a single equation per axis.
	GradientLinear
)

// Weights is the immutable configuration bundle read by the constraint
// generators. Data weights scale observation rows; model weights scale
// the smoothness prior of the matching order.
//
// Picking good parameters: if the field is continuous with abrupt
// changes use a high Model1 and low everything else; if it is smooth
// use a high Model2. Trustworthy data wants low model weights, noisy
// data high ones. Lopsided data (dense here, sparse there) wants a
// lower Model1.
type Weights struct {
	// DataPos weighs value constraints: how much the observed
	// positions/values are trusted.
	DataPos float64
	// DataGradient weighs gradient constraints.
	DataGradient float64

	// Model0 pulls the field toward zero everywhere (regularization).
	// Large values drive everything to zero.
	Model0 float64
	// Model1 pulls the field toward a constant (first differences 0).
	Model1 float64
	// Model2 pulls the field toward a linear ramp (second differences
	// 0). The workhorse smoothness prior.
	Model2 float64
	// Model3 prefers a quadratic field (third differences 0).
	Model3 float64
	// Model4 prefers a cubic field (fourth differences 0).
	Model4 float64

	// GradientSmoothness weighs the cross prior asking opposing
	// parallel edges of every cell to change by the same amount: for a
	// 2D cell with corners A B / C D, the constraints B-A = D-C and
	// C-A = D-B. Improves iso-lines far from the surface but adds a
	// lot of equations.
	GradientSmoothness float64

	// ValueKernel selects the value constraint kernel.
	ValueKernel ValueKernel
	// GradientKernel selects the gradient constraint kernel.
	GradientKernel GradientKernel
}

// DefaultWeights returns the recommended starting configuration:
// unit data weights, a moderate second-order smoothness prior, and the
// interpolating kernels.
func DefaultWeights() Weights {
	return Weights{
		DataPos:        1.0,
		DataGradient:   1.0,
		Model2:         0.5,
		ValueKernel:    LinearInterpolation,
		GradientKernel: CellEdges,
	}
}
