package render

import "github.com/gogpu/gg"

// Palette anchor points, interpolated linearly in RGB. Viridis and Plasma
// anchors are sampled from the reference palettes at uniform intervals.
var (
	viridisAnchors = []gg.RGBA{
		gg.RGB(0.267, 0.005, 0.329),
		gg.RGB(0.254, 0.265, 0.530),
		gg.RGB(0.164, 0.471, 0.558),
		gg.RGB(0.128, 0.567, 0.551),
		gg.RGB(0.267, 0.749, 0.441),
		gg.RGB(0.741, 0.873, 0.150),
		gg.RGB(0.993, 0.906, 0.144),
	}
	plasmaAnchors = []gg.RGBA{
		gg.RGB(0.050, 0.030, 0.528),
		gg.RGB(0.417, 0.001, 0.658),
		gg.RGB(0.692, 0.165, 0.564),
		gg.RGB(0.881, 0.392, 0.383),
		gg.RGB(0.988, 0.652, 0.211),
		gg.RGB(0.940, 0.975, 0.131),
	}
	grayscaleAnchors = []gg.RGBA{
		gg.RGB(0.05, 0.05, 0.05),
		gg.RGB(0.95, 0.95, 0.95),
	}
)

// anchors returns the anchor list for a valid palette.
func (m ColorMap) anchors() []gg.RGBA {
	switch m {
	case Plasma:
		return plasmaAnchors
	case Grayscale:
		return grayscaleAnchors
	default:
		return viridisAnchors
	}
}

// sample maps t ∈ [0,1] (clamped) through the palette by piecewise-linear
// interpolation between adjacent anchors.
func (m ColorMap) sample(t float64) gg.RGBA {
	stops := m.anchors()
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}

	scaled := t * float64(len(stops)-1)
	lo := int(scaled)
	frac := scaled - float64(lo)

	return stops[lo].Lerp(stops[lo+1], frac)
}
