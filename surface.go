package mobius

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SurfaceArea approximates ∫∫ ‖∂r/∂u × ∂r/∂v‖ du dv over the full
// parameter domain of the strip.
//
// Algorithm:
//  1. du = 2π/(n-1), dv = w/(n-1).
//  2. At every grid cell (i,j), i,j ∈ [0, n-2], estimate the tangent
//     vectors by forward differences over the stored mesh points
//     (the closed form is never re-evaluated):
//     ∂r/∂u ≈ (r[i+1,j] - r[i,j]) / du
//     ∂r/∂v ≈ (r[i,j+1] - r[i,j]) / dv
//  3. The cross-product magnitude is the local area-element density;
//     accumulate density·du·dv.
//
// The last mesh row and column serve only as forward-difference partners;
// excluding them as cell anchors avoids one-sided derivative artifacts at
// the open ends of the sampled range. Central differences with periodic
// wrap-around in u (u=0 and u=2π are geometrically continuous, modulo the
// half-twist's sign flip in v) would raise accuracy to second order; the
// first-order scheme is kept for its fixed, trivially reproducible
// summation order.
//
// The result is non-negative, deterministic for identical (R, w, n)
// (row-major double sum, u-index outer), and first-order accurate: error
// shrinks as O(1/n) at O(n²) cost.
//
// Complexity: O(n²) time, O(1) extra memory.
func (s *Strip) SurfaceArea() float64 {
	n := s.resolution
	du := 2 * math.Pi / float64(n-1)
	dv := s.width / float64(n-1)

	var area float64
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			anchor := s.Point(i, j)
			dru := r3.Scale(1/du, r3.Sub(s.Point(i+1, j), anchor))
			drv := r3.Scale(1/dv, r3.Sub(s.Point(i, j+1), anchor))
			area += r3.Norm(r3.Cross(dru, drv)) * du * dv
		}
	}

	return area
}
