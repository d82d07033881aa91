// Package render draws a Möbius strip mesh onto a 2D canvas.
//
// What:
//
//   - Figure projects the strip's 3D mesh orthographically (default 3D-plot
//     view: azimuth -60°, elevation 30°) and paints it onto a gg.Context.
//   - Filled surface quads are depth-sorted (painter's algorithm) and shaded
//     by z-height through a selectable color map.
//   - Optional black wireframe over the grid lines, plus overlay curves:
//     the boundary row (red) and the centerline row (blue), both picked by
//     the strip's nearest-match indices.
//   - SavePNG renders and encodes in one call.
//
// Why:
//
//   - The core package computes geometry only; this package is the
//     visualization collaborator that consumes its read-only mesh accessors
//     without recomputing anything.
//
// Options:
//
//   - Options.ShowSurface / Options.ShowWireframe / Options.ShowOverlays
//   - Options.ColorMap: Viridis (default), Plasma, or Grayscale
//   - Options.Width / Options.Height: canvas size in pixels
//
// Errors:
//
//   - ErrNilStrip: Figure/SavePNG called with a nil strip.
//   - ErrCanvasSize: non-positive canvas dimensions.
//   - ErrUnknownColorMap: color map value outside the defined set.
//
// Complexity: O(n² log n) time for the depth sort, O(n²) memory.
package render
