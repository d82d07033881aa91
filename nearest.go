package mobius

import "math"

// NearestIndex returns the index i minimizing |values[i] - target| over a
// linear scan; ties resolve to the lowest index. The input need not be
// sorted. Returns -1 for an empty slice.
//
// Used for boundary and centerline row selection, where matching a target
// parameter value by exact floating-point equality would be fragile.
//
// Complexity: O(len(values)) time, O(1) memory.
func NearestIndex(values []float64, target float64) int {
	if len(values) == 0 {
		return -1
	}

	best := 0
	bestDist := math.Abs(values[0] - target)
	for i := 1; i < len(values); i++ {
		if d := math.Abs(values[i] - target); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}
