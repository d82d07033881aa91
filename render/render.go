package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/mobius"
)

// Default orthographic view, matching the common 3D-plot default.
const (
	defaultAzimuth   = -60 * math.Pi / 180
	defaultElevation = 30 * math.Pi / 180

	// canvasFill is the fraction of the canvas the projected mesh occupies;
	// the remainder is margin.
	canvasFill = 0.9

	surfaceAlpha   = 0.8
	wireframeAlpha = 0.2
	wireframeWidth = 0.75
	overlayWidth   = 2.0
)

// projector holds an orthonormal view basis for orthographic projection.
type projector struct {
	right, up, toward r3.Vec
}

// newProjector builds the view basis for the given azimuth and elevation
// (radians). "toward" points at the viewer; its dot product orders quads
// back-to-front.
func newProjector(azimuth, elevation float64) projector {
	ca, sa := math.Cos(azimuth), math.Sin(azimuth)
	ce, se := math.Cos(elevation), math.Sin(elevation)

	return projector{
		right:  r3.Vec{X: -sa, Y: ca},
		up:     r3.Vec{X: -ca * se, Y: -sa * se, Z: ce},
		toward: r3.Vec{X: ca * ce, Y: sa * ce, Z: se},
	}
}

// project returns screen-plane coordinates and view depth for a 3D point.
func (p projector) project(v r3.Vec) (x, y, depth float64) {
	return r3.Dot(v, p.right), r3.Dot(v, p.up), r3.Dot(v, p.toward)
}

// viewport maps projected screen-plane coordinates onto canvas pixels with
// equal aspect and a uniform margin. Canvas y grows downward, so y flips.
type viewport struct {
	scale                 float64
	midX, midY            float64
	halfWidth, halfHeight float64
}

func newViewport(xs, ys []float64, width, height int) viewport {
	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < len(xs); i++ {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}

	// Equal aspect: one scale for both axes, fit to the tighter dimension.
	extent := math.Max(maxX-minX, maxY-minY)
	if extent == 0 {
		extent = 1 // degenerate projection, avoid division by zero
	}
	scale := canvasFill * math.Min(float64(width), float64(height)) / extent

	return viewport{
		scale:      scale,
		midX:       (minX + maxX) / 2,
		midY:       (minY + maxY) / 2,
		halfWidth:  float64(width) / 2,
		halfHeight: float64(height) / 2,
	}
}

func (vp viewport) toCanvas(x, y float64) (cx, cy float64) {
	return vp.halfWidth + (x-vp.midX)*vp.scale, vp.halfHeight - (y-vp.midY)*vp.scale
}

// Figure renders the strip onto a fresh canvas and returns the drawing
// context as the figure handle (callers may encode it or inspect Image()).
//
// Draw order: filled surface quads back-to-front, then wireframe, then
// overlays, so the boundary and centerline curves stay visible.
//
// Errors: ErrNilStrip, ErrCanvasSize, ErrUnknownColorMap, or a wrapped
// rasterizer error. Complexity: O(n² log n).
func Figure(strip *mobius.Strip, opts Options) (*gg.Context, error) {
	if strip == nil {
		return nil, ErrNilStrip
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("Figure: %dx%d: %w", opts.Width, opts.Height, ErrCanvasSize)
	}
	if !opts.ColorMap.valid() {
		return nil, fmt.Errorf("Figure: %d: %w", int(opts.ColorMap), ErrUnknownColorMap)
	}

	n := strip.Resolution()
	proj := newProjector(defaultAzimuth, defaultElevation)

	// Project the full mesh once; estimator-style index layout (i*n+j).
	xs := make([]float64, n*n)
	ys := make([]float64, n*n)
	depths := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xs[i*n+j], ys[i*n+j], depths[i*n+j] = proj.project(strip.Point(i, j))
		}
	}
	vp := newViewport(xs, ys, opts.Width, opts.Height)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(gg.White)

	if opts.ShowSurface {
		if err := drawSurface(dc, strip, vp, xs, ys, depths, opts.ColorMap); err != nil {
			return nil, err
		}
	}
	if opts.ShowWireframe {
		if err := drawWireframe(dc, n, vp, xs, ys); err != nil {
			return nil, err
		}
	}
	if opts.ShowOverlays {
		if err := drawOverlays(dc, strip, vp, xs, ys); err != nil {
			return nil, err
		}
	}

	return dc, nil
}

// SavePNG renders the strip with opts and writes the figure to path.
func SavePNG(strip *mobius.Strip, opts Options, path string) error {
	dc, err := Figure(strip, opts)
	if err != nil {
		return err
	}
	if err = dc.SavePNG(path); err != nil {
		return fmt.Errorf("SavePNG: %w", err)
	}

	return nil
}

// quad references a mesh cell by its anchor (i,j) along with its mean view
// depth, used for painter's-algorithm ordering.
type quad struct {
	i, j  int
	depth float64
}

// drawSurface fills every mesh quad back-to-front, shaded by the quad's mean
// z-height through the palette.
func drawSurface(dc *gg.Context, strip *mobius.Strip, vp viewport, xs, ys, depths []float64, cm ColorMap) error {
	n := strip.Resolution()
	zMin, zMax := mat.Min(strip.Z()), mat.Max(strip.Z())
	zSpan := zMax - zMin

	quads := make([]quad, 0, (n-1)*(n-1))
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			d := (depths[i*n+j] + depths[(i+1)*n+j] + depths[(i+1)*n+j+1] + depths[i*n+j+1]) / 4
			quads = append(quads, quad{i: i, j: j, depth: d})
		}
	}
	// Farthest first; "toward" grows toward the viewer.
	sort.Slice(quads, func(a, b int) bool { return quads[a].depth < quads[b].depth })

	z := strip.Z()
	for _, q := range quads {
		t := 0.5
		if zSpan > 0 {
			meanZ := (z.At(q.i, q.j) + z.At(q.i+1, q.j) + z.At(q.i+1, q.j+1) + z.At(q.i, q.j+1)) / 4
			t = (meanZ - zMin) / zSpan
		}
		shade := cm.sample(t)
		dc.SetRGBA(shade.R, shade.G, shade.B, surfaceAlpha)

		corners := [4]int{q.i*n + q.j, (q.i+1)*n + q.j, (q.i+1)*n + q.j + 1, q.i*n + q.j + 1}
		cx, cy := vp.toCanvas(xs[corners[0]], ys[corners[0]])
		dc.MoveTo(cx, cy)
		for _, c := range corners[1:] {
			cx, cy = vp.toCanvas(xs[c], ys[c])
			dc.LineTo(cx, cy)
		}
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("Figure: surface fill: %w", err)
		}
	}

	return nil
}

// drawWireframe strokes every grid line (constant-u rows and constant-v
// columns) in translucent black.
func drawWireframe(dc *gg.Context, n int, vp viewport, xs, ys []float64) error {
	dc.SetRGBA(0, 0, 0, wireframeAlpha)
	dc.SetLineWidth(wireframeWidth)

	for i := 0; i < n; i++ {
		if err := strokePolyline(dc, vp, xs, ys, n, func(k int) int { return i*n + k }); err != nil {
			return err
		}
	}
	for j := 0; j < n; j++ {
		if err := strokePolyline(dc, vp, xs, ys, n, func(k int) int { return k*n + j }); err != nil {
			return err
		}
	}

	return nil
}

// drawOverlays strokes the boundary row (red) and centerline row (blue),
// both selected by the strip's nearest-match indices.
func drawOverlays(dc *gg.Context, strip *mobius.Strip, vp viewport, xs, ys []float64) error {
	n := strip.Resolution()
	dc.SetLineWidth(overlayWidth)

	dc.SetRGB(1, 0, 0)
	edge := strip.EdgeIndex()
	if err := strokePolyline(dc, vp, xs, ys, n, func(k int) int { return k*n + edge }); err != nil {
		return err
	}

	dc.SetRGB(0, 0, 1)
	center := strip.CenterlineIndex()

	return strokePolyline(dc, vp, xs, ys, n, func(k int) int { return k*n + center })
}

// strokePolyline strokes the open path visiting count projected points in
// order; index maps the walk position to the flat mesh index.
func strokePolyline(dc *gg.Context, vp viewport, xs, ys []float64, count int, index func(int) int) error {
	cx, cy := vp.toCanvas(xs[index(0)], ys[index(0)])
	dc.MoveTo(cx, cy)
	for k := 1; k < count; k++ {
		cx, cy = vp.toCanvas(xs[index(k)], ys[index(k)])
		dc.LineTo(cx, cy)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("Figure: stroke: %w", err)
	}

	return nil
}
