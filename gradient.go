package strata

import (
	"math"
	"sort"

	"github.com/strata-gfx/strata/internal/srgb"
)

// ColorStop represents a color at a specific position in a gradient ramp.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops returns the stops sorted by offset with out-of-range offsets
// clamped to [0, 1]. Storage does not enforce monotonic ordering, so every
// sampler sorts before use.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	for i := range sorted {
		sorted[i].Offset = clamp01(sorted[i].Offset)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// lerpStopColor interpolates two stop colors in linear sRGB space.
func lerpStopColor(c1, c2 RGBA, t float64) RGBA {
	return RGBA{
		R: srgb.Lerp(c1.R, c2.R, t),
		G: srgb.Lerp(c1.G, c2.G, t),
		B: srgb.Lerp(c1.B, c2.B, t),
		A: c1.A + t*(c2.A-c1.A),
	}
}

// colorAtOffset returns the interpolated ramp color at t, clamping t to
// [0, 1] (pad extension). Handles empty, single-stop, and coincident-stop
// cases without error.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = clamp01(t)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	s1 := sorted[idx-1]
	s2 := sorted[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}

	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return lerpStopColor(s1.Color, s2.Color, localT)
}

// gradientAt samples a layer's gradient at untransformed canvas coordinates.
// Linear gradients run top-to-bottom. Radial gradients are centered with
// radius equal to half the larger canvas dimension. Mesh degrades to the
// same centered radial treatment; true multi-point mesh gradients are a
// documented limitation, not supported.
func gradientAt(layer *GradientLayer, stops []ColorStop, x, y, w, h float64) RGBA {
	switch layer.Type {
	case GradientRadial, GradientMesh:
		r := math.Max(w, h) / 2
		if r <= 0 {
			return colorAtOffset(stops, 0)
		}
		dx := x - w/2
		dy := y - h/2
		return colorAtOffset(stops, math.Sqrt(dx*dx+dy*dy)/r)
	default: // GradientLinear
		if h <= 0 {
			return colorAtOffset(stops, 0)
		}
		return colorAtOffset(stops, y/h)
	}
}
