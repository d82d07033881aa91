package mobius_test

import (
	"testing"

	"github.com/katalvlaran/mobius"
)

// benchmarkStrip builds a strip of the given resolution outside the timed
// loop and runs fn once per iteration.
func benchmarkStrip(b *testing.B, n int, fn func(*mobius.Strip) float64) {
	strip, err := mobius.New(3.0, 1.0, n)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer() // ignore mesh construction time
	for i := 0; i < b.N; i++ {
		_ = fn(strip)
	}
}

// BenchmarkNew_N100 measures construction (grid + mesh) at n=100.
func BenchmarkNew_N100(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := mobius.New(3.0, 1.0, 100); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkSurfaceArea_N100 measures the O(n²) area sum at n=100.
func BenchmarkSurfaceArea_N100(b *testing.B) {
	benchmarkStrip(b, 100, (*mobius.Strip).SurfaceArea)
}

// BenchmarkSurfaceArea_N500 measures the O(n²) area sum at n=500.
func BenchmarkSurfaceArea_N500(b *testing.B) {
	benchmarkStrip(b, 500, (*mobius.Strip).SurfaceArea)
}

// BenchmarkEdgeLength_N500 measures the O(n) boundary walk at n=500.
func BenchmarkEdgeLength_N500(b *testing.B) {
	benchmarkStrip(b, 500, (*mobius.Strip).EdgeLength)
}
