package strata

import (
	"fmt"
	"strings"
)

// CSS converts a composition into a stylesheet approximation: a
// background-color declaration, a background-image stack of gradient
// functions (topmost layer first, per CSS painting order), and an
// optional filter hint when global blur is enabled.
//
// The conversion is lossy and documented as such: blend modes, layer
// blur, glow, grain, noise, halftone, metal, and texture have no CSS
// representation and are dropped. Mesh gradients approximate as centered
// radials. Layer opacity folds into each stop's alpha channel.
func CSS(comp *Composition) string {
	if comp == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "background-color: %s;\n", normalizeHex(comp.Canvas.BackgroundColor))

	var images []string
	// CSS stacks background images top-first; composition layers are
	// stored bottom-first.
	for i := len(comp.Layers) - 1; i >= 0; i-- {
		if img := layerCSS(&comp.Layers[i]); img != "" {
			images = append(images, img)
		}
	}
	if len(images) > 0 {
		fmt.Fprintf(&b, "background-image: %s;\n", strings.Join(images, ", "))
	}

	if comp.Effects.Blur.Enabled && comp.Effects.Blur.Strength > 0 {
		fmt.Fprintf(&b, "filter: blur(%spx); /* approximation */\n",
			trimFloat(comp.Effects.Blur.Strength))
	}
	return b.String()
}

// layerCSS renders one layer as a gradient function, or "" when the
// layer would contribute nothing.
func layerCSS(layer *GradientLayer) string {
	if !layer.Visible {
		return ""
	}
	stops := layer.stops()
	if len(stops) < 2 {
		return ""
	}
	opacity := clamp01(layer.Opacity)
	if opacity == 0 {
		return ""
	}

	parts := make([]string, len(stops))
	for i, s := range stops {
		c := s.Color.WithAlpha(s.Color.A * opacity)
		parts[i] = fmt.Sprintf("%s %s%%", cssColor(c), trimFloat(s.Offset*100))
	}
	stopList := strings.Join(parts, ", ")

	switch layer.Type {
	case GradientLinear:
		angle := layer.Transform.Rotation
		// The raster path paints linear ramps top-to-bottom; CSS's 0deg
		// points bottom-to-top, so the base direction is 180deg.
		return fmt.Sprintf("linear-gradient(%sdeg, %s)", trimFloat(180+angle), stopList)
	default:
		// Radial and mesh approximate identically.
		cx := 50 + layer.Transform.X*50
		cy := 50 + layer.Transform.Y*50
		return fmt.Sprintf("radial-gradient(circle at %s%% %s%%, %s)",
			trimFloat(cx), trimFloat(cy), stopList)
	}
}

// cssColor formats a color as rgb()/rgba() with byte channels.
func cssColor(c RGBA) string {
	r := int(clamp255(c.R * 255))
	g := int(clamp255(c.G * 255))
	bb := int(clamp255(c.B * 255))
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, bb)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, bb, trimFloat(clamp01(c.A)))
}

// normalizeHex re-emits a stored color string as canonical #rrggbb,
// surviving malformed input the same way the raster path does.
func normalizeHex(s string) string {
	c := Hex(s)
	return fmt.Sprintf("#%02x%02x%02x",
		int(clamp255(c.R*255)), int(clamp255(c.G*255)), int(clamp255(c.B*255)))
}

// trimFloat formats a float without trailing zeros: 30 not 30.000000.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
