// Package mobius defines the Strip value type and its read-only accessors.
//
// A Strip is a plain immutable value: parameters fixed at construction, a
// mesh derived once, and pure query methods over both. There is no mutation
// API and no shared state between instances, so independent strips may be
// constructed and queried from any number of goroutines without coordination.
package mobius

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Strip is a Möbius strip sampled on an n×n parameter grid.
//
// Fields are unexported to guarantee immutability; renderers and other
// consumers read the geometry through the accessors below.
type Strip struct {
	radius     float64 // R: centerline radius, > 0
	width      float64 // w: strip width, > 0
	resolution int     // n: samples per parameter axis, ≥ 2

	uVals []float64 // n samples uniform over [0, 2π], both endpoints included
	vVals []float64 // n samples uniform over [-w/2, +w/2], both endpoints included

	// Coordinate grids: entry (i,j) is the 3D position of (uVals[i], vVals[j]).
	x, y, z *mat.Dense
}

// Radius returns the centerline radius R.
func (s *Strip) Radius() float64 { return s.radius }

// Width returns the strip width w.
func (s *Strip) Width() float64 { return s.width }

// Resolution returns the per-axis sample count n.
func (s *Strip) Resolution() int { return s.resolution }

// UValues returns a copy of the u parameter samples.
// Copied so callers cannot mutate the grid that the mesh was built from.
func (s *Strip) UValues() []float64 {
	out := make([]float64, len(s.uVals))
	copy(out, s.uVals)

	return out
}

// VValues returns a copy of the v parameter samples.
func (s *Strip) VValues() []float64 {
	out := make([]float64, len(s.vVals))
	copy(out, s.vVals)

	return out
}

// X returns the n×n grid of x coordinates as a read-only matrix view.
func (s *Strip) X() mat.Matrix { return s.x }

// Y returns the n×n grid of y coordinates as a read-only matrix view.
func (s *Strip) Y() mat.Matrix { return s.y }

// Z returns the n×n grid of z coordinates as a read-only matrix view.
func (s *Strip) Z() mat.Matrix { return s.z }

// Point returns the 3D mesh position at u-index i and v-index j.
// Indices out of [0,n) panic, matching mat.Dense access semantics
// (out-of-range access is programmer error, not user input).
// Complexity: O(1).
func (s *Strip) Point(i, j int) r3.Vec {
	return r3.Vec{X: s.x.At(i, j), Y: s.y.At(i, j), Z: s.z.At(i, j)}
}

// EdgeIndex returns the v-index whose sample lies closest to +w/2 — the
// boundary row walked by EdgeLength and drawn by renderers as the edge
// overlay. On this grid the last index matches exactly; nearest-match keeps
// the selection correct under parameterizations that miss the boundary value.
// Complexity: O(n).
func (s *Strip) EdgeIndex() int { return NearestIndex(s.vVals, s.width/2) }

// CenterlineIndex returns the v-index whose sample lies closest to 0,
// used by renderers for the centerline overlay.
// Complexity: O(n).
func (s *Strip) CenterlineIndex() int { return NearestIndex(s.vVals, 0) }
