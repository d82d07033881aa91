package mobius

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// New constructs a Strip with centerline radius, width, and per-axis
// resolution, generating the full n×n coordinate mesh immediately.
//
// Contract:
//   - radius > 0, width > 0, resolution ≥ 2; violations return an error
//     wrapping ErrInvalidParameter and no Strip is observable.
//   - NaN parameters fail validation (comparisons with NaN are false).
//
// Complexity: O(n²) time and memory.
func New(radius, width float64, resolution int) (*Strip, error) {
	if err := validateParameters(radius, width, resolution); err != nil {
		return nil, err
	}

	s := &Strip{
		radius:     radius,
		width:      width,
		resolution: resolution,
		uVals:      linspace(0, 2*math.Pi, resolution),
		vVals:      linspace(-width/2, width/2, resolution),
	}
	s.generateMesh()

	return s, nil
}

// validateParameters checks the construction invariants and reports the
// first violation as a tagged wrap of ErrInvalidParameter.
// Complexity: O(1).
func validateParameters(radius, width float64, resolution int) error {
	// radius > 0 written as a negated comparison so NaN is rejected too.
	if !(radius > 0) {
		return fmt.Errorf("New: radius must be positive, got %v: %w", radius, ErrInvalidParameter)
	}
	if !(width > 0) {
		return fmt.Errorf("New: width must be positive, got %v: %w", width, ErrInvalidParameter)
	}
	if resolution < 2 {
		return fmt.Errorf("New: resolution must be at least 2, got %d: %w", resolution, ErrInvalidParameter)
	}

	return nil
}

// linspace returns n samples uniformly covering [start, end], both endpoints
// included (step = (end-start)/(n-1)). Callers guarantee n ≥ 2.
func linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Pin the final sample to the exact endpoint; accumulated rounding in
	// start+i*step may otherwise leave it a few ulps off.
	out[n-1] = end

	return out
}

// generateMesh evaluates the parametric map pointwise over the full
// uVals × vVals product and fills the three coordinate grids:
//
//	x(u,v) = (R + v·cos(u/2))·cos(u)
//	y(u,v) = (R + v·cos(u/2))·sin(u)
//	z(u,v) = v·sin(u/2)
//
// Runs exactly once, at construction. Complexity: O(n²).
func (s *Strip) generateMesh() {
	n := s.resolution
	s.x = mat.NewDense(n, n, nil)
	s.y = mat.NewDense(n, n, nil)
	s.z = mat.NewDense(n, n, nil)

	for i, u := range s.uVals {
		cosU, sinU := math.Cos(u), math.Sin(u)
		cosHalf, sinHalf := math.Cos(u/2), math.Sin(u/2)
		for j, v := range s.vVals {
			radial := s.radius + v*cosHalf
			s.x.Set(i, j, radial*cosU)
			s.y.Set(i, j, radial*sinU)
			s.z.Set(i, j, v*sinHalf)
		}
	}
}
