// Package mobius models a Möbius strip as a discretized parametric surface
// and derives its basic geometric quantities numerically.
//
// 🚀 What is mobius?
//
//	A Strip samples the classic Möbius parametric map
//	  x(u,v) = (R + v·cos(u/2))·cos(u)
//	  y(u,v) = (R + v·cos(u/2))·sin(u)
//	  z(u,v) = v·sin(u/2)
//	over an n×n grid of (u,v) pairs, u ∈ [0,2π], v ∈ [-w/2,+w/2],
//	and answers two questions about the sampled surface:
//	  • approximate surface area  (discretized surface integral)
//	  • approximate edge length   (discrete boundary-path length)
//
// ✨ Key features:
//   - one-shot mesh generation: the grid is built at construction and never mutated
//   - finite-difference area estimator with a fixed, reproducible summation order
//   - nearest-match boundary selection (robust to grids that miss v = +w/2 exactly)
//   - read-only mesh accessors for renderers (X/Y/Z grids, parameter values, overlay indices)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mobius"
//
//	strip, err := mobius.New(3.0, 1.0, 100)
//	if err != nil {
//	  // handle ErrInvalidParameter
//	}
//	area := strip.SurfaceArea()
//	edge := strip.EdgeLength()
//
// Performance:
//
//   - Construction:  O(n²) time & memory (three n×n coordinate grids)
//   - SurfaceArea:   O(n²) time, O(1) extra memory
//   - EdgeLength:    O(n) time, O(1) extra memory
//
// Accuracy is first order in the grid step: estimates converge as n grows,
// with diminishing returns against the O(n²) cost. There is no adaptive
// refinement and no closed-form evaluation beyond the mesh itself.
//
// Rendering lives in the render subpackage; the core stays free of any
// drawing or I/O concerns.
package mobius
