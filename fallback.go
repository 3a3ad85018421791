package strata

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/fogleman/gg"
)

// StaticRenderer is the last-resort renderer. It draws a simplified,
// effects-free approximation of a composition through a vector context:
// background fill plus each visible layer's gradient with its affine
// transform and blended only by opacity. It must never take the
// application down, so every render is wrapped in a recover boundary and
// malformed layers are skipped rather than reported.
type StaticRenderer struct {
	surface   Surface
	last      *Composition
	destroyed bool
}

// NewStaticRenderer creates the fallback renderer. It cannot fail: a
// surface without a raster context simply makes Render a no-op.
func NewStaticRenderer(surface Surface) *StaticRenderer {
	return &StaticRenderer{surface: surface}
}

// Render draws the simplified composition. Never panics.
func (r *StaticRenderer) Render(comp *Composition) {
	defer func() {
		if rec := recover(); rec != nil {
			Logger().Warn("static render recovered", slog.Any("panic", rec))
		}
	}()
	if r.destroyed || comp == nil {
		return
	}
	r.last = comp

	pm, err := r.surface.RasterContext()
	if err != nil {
		return
	}
	w, h := pm.Width(), pm.Height()

	dc := gg.NewContext(w, h)
	dc.SetColor(toNRGBA(Hex(comp.Canvas.BackgroundColor)))
	dc.Clear()

	for i := range comp.Layers {
		r.paintLayer(dc, &comp.Layers[i], w, h)
	}

	pm.CopyFrom(FromImage(dc.Image()))
}

// Resize updates surface dimensions and re-renders.
func (r *StaticRenderer) Resize(width, height int) {
	if r.destroyed || width < 1 || height < 1 {
		return
	}
	r.surface.SetSize(width, height)
	if r.last != nil {
		r.Render(r.last)
	}
}

// Destroy releases the renderer. Idempotent.
func (r *StaticRenderer) Destroy() {
	r.destroyed = true
}

// paintLayer draws one layer's gradient fill. Mesh gradients render as
// radial; blend modes degrade to source-over with the layer opacity
// folded into each stop's alpha.
func (r *StaticRenderer) paintLayer(dc *gg.Context, layer *GradientLayer, w, h int) {
	if !layer.Visible {
		return
	}
	stops := layer.stops()
	if len(stops) < 2 {
		return
	}
	opacity := clamp01(layer.Opacity)
	if opacity == 0 {
		return
	}

	fw, fh := float64(w), float64(h)
	var grad gg.Gradient
	switch layer.Type {
	case GradientLinear:
		grad = gg.NewLinearGradient(0, 0, 0, fh)
	default:
		// Radial and mesh both approximate as a center-out radial.
		grad = gg.NewRadialGradient(fw/2, fh/2, 0, fw/2, fh/2, math.Max(fw, fh)/2)
	}
	for _, s := range stops {
		grad.AddColorStop(s.Offset, toNRGBA(s.Color.WithAlpha(s.Color.A*opacity)))
	}

	dc.Push()
	t := layer.Transform
	cx, cy := fw/2, fh/2
	scale := t.Scale
	if scale <= 0 {
		scale = 1
	}
	dc.Translate(cx+t.X*cx, cy+t.Y*cy)
	dc.Rotate(t.Rotation * math.Pi / 180)
	dc.Scale(scale, scale)
	dc.Translate(-cx, -cy)
	dc.SetFillStyle(grad)
	// Oversized rect so rotated or scaled-down fills still cover the canvas.
	dc.DrawRectangle(-fw, -fh, fw*3, fh*3)
	dc.Fill()
	dc.Pop()
}

func toNRGBA(c RGBA) color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

var _ image.Image = (*Pixmap)(nil)
