// Package render defines display options and sentinel errors for figure
// rendering.
package render

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for render operations.
var (
	// ErrNilStrip indicates Figure or SavePNG received a nil strip.
	ErrNilStrip = errors.New("render: strip must be non-nil")
	// ErrCanvasSize indicates a non-positive canvas width or height.
	ErrCanvasSize = errors.New("render: canvas dimensions must be positive")
	// ErrUnknownColorMap indicates a ColorMap value outside the defined set.
	ErrUnknownColorMap = errors.New("render: unknown color map")
)

// ColorMap selects the palette used to shade surface quads by z-height.
type ColorMap int

const (
	// Viridis is the default perceptually-uniform palette.
	Viridis ColorMap = iota
	// Plasma is a warm perceptually-uniform palette.
	Plasma
	// Grayscale maps z-height linearly to luminance.
	Grayscale
)

// String returns the lower-case palette name.
func (m ColorMap) String() string {
	switch m {
	case Viridis:
		return "viridis"
	case Plasma:
		return "plasma"
	case Grayscale:
		return "grayscale"
	default:
		return fmt.Sprintf("ColorMap(%d)", int(m))
	}
}

// valid reports whether m names a defined palette.
func (m ColorMap) valid() bool {
	return m >= Viridis && m <= Grayscale
}

// ParseColorMap resolves a palette by case-insensitive name.
// Returns ErrUnknownColorMap (wrapped with the offending name) otherwise.
func ParseColorMap(name string) (ColorMap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "viridis":
		return Viridis, nil
	case "plasma":
		return Plasma, nil
	case "grayscale", "gray", "grey":
		return Grayscale, nil
	default:
		return 0, fmt.Errorf("ParseColorMap: %q: %w", name, ErrUnknownColorMap)
	}
}

// Options contains the recognized display configuration.
type Options struct {
	// Width and Height set the canvas size in pixels.
	Width, Height int
	// ShowSurface paints depth-sorted filled quads shaded by the ColorMap.
	ShowSurface bool
	// ShowWireframe strokes the parameter grid lines in translucent black.
	ShowWireframe bool
	// ShowOverlays draws the boundary row in red and the centerline in blue.
	ShowOverlays bool
	// ColorMap selects the surface palette.
	ColorMap ColorMap
}

// DefaultOptions returns the stock figure configuration: 1000×800 canvas,
// surface + wireframe + overlays on, Viridis palette.
func DefaultOptions() Options {
	return Options{
		Width:         1000,
		Height:        800,
		ShowSurface:   true,
		ShowWireframe: true,
		ShowOverlays:  true,
		ColorMap:      Viridis,
	}
}
