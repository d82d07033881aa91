package mobius

import "gonum.org/v1/gonum/spatial/r3"

// EdgeLength approximates the length of one boundary curve of the strip,
// the sampled row closest to v = +w/2, as a discrete open path:
// consecutive Euclidean distances are summed along the u axis from
// u = 0 to u = 2π in increasing order.
//
// Boundary-path convention: the path is OPEN. No closing segment from the
// last sample back to the first is added, even though the true boundary of
// a Möbius strip is a single closed curve of "twice around" length; callers
// wanting the closed interpretation must add the wrap segment themselves.
// As w → 0 this open single pass therefore approaches one centerline
// circumference, 2πR.
//
// The boundary row is picked by nearest match (NearestIndex against +w/2)
// rather than exact floating-point equality, so the selection stays correct
// under parameterizations whose grid misses the boundary value.
//
// The result is non-negative, finite for valid parameters, and
// deterministic for identical (R, w, n).
//
// Complexity: O(n) time, O(1) extra memory.
func (s *Strip) EdgeLength() float64 {
	j := s.EdgeIndex()

	var length float64
	prev := s.Point(0, j)
	for i := 1; i < s.resolution; i++ {
		curr := s.Point(i, j)
		length += r3.Norm(r3.Sub(curr, prev))
		prev = curr
	}

	return length
}
