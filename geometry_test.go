package mobius_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mobius"
)

// GeometrySuite exercises the two estimators across the documented
// numerical properties: sign, convergence, determinism, and the
// regression baselines.
type GeometrySuite struct {
	suite.Suite
}

func (s *GeometrySuite) build(radius, width float64, n int) *mobius.Strip {
	strip, err := mobius.New(radius, width, n)
	require.NoError(s.T(), err)

	return strip
}

// TestNonNegative checks both estimates stay non-negative over a spread of
// valid parameter combinations, including the minimal n=2 grid.
func (s *GeometrySuite) TestNonNegative() {
	cases := []struct {
		radius, width float64
		n             int
	}{
		{3.0, 1.0, 2},
		{3.0, 1.0, 10},
		{0.1, 0.01, 50},
		{100, 40, 30},
		{1.0, 5.0, 64},
	}
	for _, tc := range cases {
		strip := s.build(tc.radius, tc.width, tc.n)
		require.GreaterOrEqual(s.T(), strip.SurfaceArea(), 0.0,
			"area for R=%v w=%v n=%d", tc.radius, tc.width, tc.n)
		require.GreaterOrEqual(s.T(), strip.EdgeLength(), 0.0,
			"edge for R=%v w=%v n=%d", tc.radius, tc.width, tc.n)
	}
}

// TestRegressionBaseline pins the R=3, w=1, n=100 scenario: surface area
// near 2πRw ≈ 18.85 and edge length near 19.23, both within ±0.5.
func (s *GeometrySuite) TestRegressionBaseline() {
	strip := s.build(3.0, 1.0, 100)
	require.InDelta(s.T(), 18.85, strip.SurfaceArea(), 0.5)
	require.InDelta(s.T(), 19.23, strip.EdgeLength(), 0.5)
}

// TestConvergence verifies the successive-resolution differences shrink for
// both estimators as n grows (first-order convergence, no oscillation).
func (s *GeometrySuite) TestConvergence() {
	const (
		radius = 3.0
		width  = 1.0
	)
	coarse := s.build(radius, width, 10)
	medium := s.build(radius, width, 50)
	fine := s.build(radius, width, 250)

	aCoarse, aMedium, aFine := coarse.SurfaceArea(), medium.SurfaceArea(), fine.SurfaceArea()
	require.Less(s.T(), math.Abs(aFine-aMedium), math.Abs(aMedium-aCoarse),
		"area differences must shrink: |%v-%v| vs |%v-%v|", aFine, aMedium, aMedium, aCoarse)

	eCoarse, eMedium, eFine := coarse.EdgeLength(), medium.EdgeLength(), fine.EdgeLength()
	require.Less(s.T(), math.Abs(eFine-eMedium), math.Abs(eMedium-eCoarse),
		"edge differences must shrink: |%v-%v| vs |%v-%v|", eFine, eMedium, eMedium, eCoarse)
}

// TestDeterminism requires bit-identical scalars from two independently
// constructed strips with identical parameters.
func (s *GeometrySuite) TestDeterminism() {
	first := s.build(2.5, 0.7, 80)
	second := s.build(2.5, 0.7, 80)
	require.Equal(s.T(), first.SurfaceArea(), second.SurfaceArea())
	require.Equal(s.T(), first.EdgeLength(), second.EdgeLength())
}

// TestDegenerateWidth checks that as w → 0 the open boundary pass collapses
// onto the centerline: edge length approaches one circumference 2πR.
func (s *GeometrySuite) TestDegenerateWidth() {
	const (
		radius = 3.0
		width  = 0.001
	)
	strip := s.build(radius, width, 100)
	// Tolerance budget: polygonal chord deficit at n=100 (~3e-3 of 2πR)
	// plus the O(w) offset of the boundary row.
	require.InDelta(s.T(), 2*math.Pi*radius, strip.EdgeLength(), 0.05)
}

// TestAreaTracksWidth sanity-checks the integral against the thin-strip
// closed form: for small w, area ≈ 2πRw.
func (s *GeometrySuite) TestAreaTracksWidth() {
	const radius = 4.0
	for _, width := range []float64{0.01, 0.1} {
		strip := s.build(radius, width, 120)
		want := 2 * math.Pi * radius * width
		require.InEpsilon(s.T(), want, strip.SurfaceArea(), 0.05,
			"thin strip area for w=%v", width)
	}
}

func TestGeometrySuite(t *testing.T) {
	suite.Run(t, new(GeometrySuite))
}
