package strata

import (
	"fmt"
	"log/slog"

	"github.com/strata-gfx/strata/internal/assets"
	"github.com/strata-gfx/strata/internal/blend"
	"github.com/strata-gfx/strata/internal/blur"
	"github.com/strata-gfx/strata/internal/cache"
	"github.com/strata-gfx/strata/internal/effect"
)

// ConstrainedCompositor is the capability-adaptive renderer for
// environments that cannot be trusted to honor native per-draw
// filtering (mobile WebKit-class browsers). It differs from Compositor
// in three structural ways:
//
//   - Two-buffer compositing: layers are always drawn to a fully
//     offscreen buffer; global blur reads that buffer as its source and
//     writes to the visible surface, so blur always has a stable,
//     complete source image.
//   - Tier caps: every effect strength is clamped to the device tier's
//     ceiling before use, and grain generates at reduced resolution.
//   - Asset-backed grain: when the texture store is ready, grain
//     composites a tiled pre-rendered texture instead of regenerating
//     per-pixel noise; otherwise procedural generation runs, cached by
//     parameter signature rather than per frame.
//
// Halftone, metal, and texture render simplified variants here; exact
// fidelity parity with Compositor is intentionally not a goal. Enabling
// any effect still visibly changes output, and disabling it is a true
// no-op.
type ConstrainedCompositor struct {
	surface Surface
	caps    Capabilities
	tier    TierCaps
	engine  *blur.Engine
	store   *assets.Store

	back        *Pixmap // offscreen compositing buffer
	scratch     *Pixmap
	bufferCache *cache.Cache[string, []uint8]

	last      *Composition
	destroyed bool
}

// NewConstrainedCompositor creates the capability-adaptive renderer.
// Fails fast if the surface cannot provide a raster context.
func NewConstrainedCompositor(surface Surface, opts ...Option) (*ConstrainedCompositor, error) {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := surface.RasterContext(); err != nil {
		return nil, fmt.Errorf("strata: constrained compositor init: %w", err)
	}

	caps := Probe(surface, o.profile)
	if o.caps != nil {
		caps = *o.caps
	}

	c := &ConstrainedCompositor{
		surface:     surface,
		caps:        caps,
		tier:        caps.Tier.Caps(),
		engine:      blur.New(false), // never trust the native filter here
		store:       o.assets,
		bufferCache: cache.New[string, []uint8](8),
	}
	Logger().Debug("constrained compositor created",
		slog.String("tier", caps.Tier.String()),
		slog.Bool("assets", c.store != nil))
	return c, nil
}

// Capabilities returns the descriptor computed at construction.
func (c *ConstrainedCompositor) Capabilities() Capabilities {
	return c.caps
}

// Render draws the full composition through the offscreen buffer.
func (c *ConstrainedCompositor) Render(comp *Composition) {
	if c.destroyed || comp == nil {
		return
	}
	c.last = comp

	front, err := c.surface.RasterContext()
	if err != nil {
		panic(err) // caught by the Mount failure boundary
	}
	w, h := front.Width(), front.Height()

	if c.back == nil || c.back.Width() != w || c.back.Height() != h {
		c.back = NewPixmap(w, h)
	}

	// All layers composite offscreen, never to the visible surface.
	c.back.Clear(Hex(comp.Canvas.BackgroundColor))
	for i := range comp.Layers {
		c.paintLayer(c.back, &comp.Layers[i], w, h)
	}

	// Global blur reads the completed offscreen buffer as its source;
	// without blur the buffer is copied over unchanged.
	fx := &comp.Effects
	if fx.Blur.Enabled && fx.Blur.Strength > 0 {
		strength := c.clampBlur(fx.Blur.Strength)
		c.engine.Blur(front.Data(), c.back.Data(), w, h, strength)
	} else {
		front.CopyFrom(c.back)
	}

	c.applyGlobalEffects(front, fx, w, h)
}

// Resize updates surface dimensions, invalidates dimension-bound
// buffers, and re-renders the most recent composition.
func (c *ConstrainedCompositor) Resize(width, height int) {
	if c.destroyed || width < 1 || height < 1 {
		return
	}
	c.surface.SetSize(width, height)
	c.back = nil
	c.scratch = nil
	c.bufferCache.Clear()
	if c.last != nil {
		c.Render(c.last)
	}
}

// Destroy releases the renderer. Idempotent.
func (c *ConstrainedCompositor) Destroy() {
	c.destroyed = true
	c.back = nil
	c.scratch = nil
	c.bufferCache.Clear()
}

// clampBlur applies the tier ceiling to a blur strength.
func (c *ConstrainedCompositor) clampBlur(strength float64) float64 {
	if strength > c.tier.MaxBlurStrength {
		return c.tier.MaxBlurStrength
	}
	return strength
}

// blendOp returns the layer's operator, degraded to source-over when the
// tier does not permit complex blending.
func (c *ConstrainedCompositor) blendOp(m BlendMode) blend.Mode {
	if !c.tier.ComplexBlending {
		return blend.ModeSourceOver
	}
	return m.op()
}

func (c *ConstrainedCompositor) layerScratch(w, h int) *Pixmap {
	if c.scratch == nil || c.scratch.Width() != w || c.scratch.Height() != h {
		c.scratch = NewPixmap(w, h)
	}
	return c.scratch
}

// paintLayer renders one layer into the offscreen buffer with tier caps
// applied. Fewer than two stops is a silent no-op.
func (c *ConstrainedCompositor) paintLayer(dst *Pixmap, layer *GradientLayer, w, h int) {
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

	scratch := c.layerScratch(w, h)
	inv := layerMatrix(layer.Transform, float64(w), float64(h)).Invert()
	data := scratch.Data()
	fw, fh := float64(w), float64(h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
			col := gradientAt(layer, stops, p.X, p.Y, fw, fh)
			i := (y*w + x) * 4
			data[i+0] = uint8(clamp255(col.R * 255))
			data[i+1] = uint8(clamp255(col.G * 255))
			data[i+2] = uint8(clamp255(col.B * 255))
			data[i+3] = uint8(clamp255(col.A * 255))
		}
	}

	fx := layer.effects()
	if fx.Blur.Enabled && fx.Blur.Radius > 0 {
		c.engine.BlurInPlace(data, w, h, c.clampBlur(fx.Blur.Radius))
	}
	// Per-layer noise and glow are too costly at this tier; the global
	// stages cover the atmospheric look.

	blend.Composite(dst.Data(), data, c.blendOp(layer.BlendMode), opacity)
}

// applyGlobalEffects runs the post-blur global stages on the visible
// surface with tier caps.
func (c *ConstrainedCompositor) applyGlobalEffects(pm *Pixmap, fx *GlobalEffects, w, h int) {
	data := pm.Data()

	if fx.Grain.Enabled && fx.Grain.Amount > 0 {
		g := c.grainBuffer(fx.Grain, w, h)
		blend.Composite(data, g, blend.ModeOverlay, 1)
	}

	if fx.Noise.Enabled && fx.Noise.Intensity > 0 {
		// Cached procedural noise overlay at tier resolution, additively
		// perturbed into the frame. Regenerated only when the parameter
		// signature changes, never per frame.
		n := c.noiseBuffer(fx.Noise, w, h)
		blend.Composite(data, n, blend.ModeOverlay, clamp01(fx.Noise.Intensity))
	}

	if fx.Halftone.Enabled && fx.Halftone.Opacity > 0 {
		buf := c.halftoneBuffer(fx.Halftone, w, h)
		blend.Composite(data, buf, c.blendOp(fx.Halftone.BlendMode), clamp01(fx.Halftone.Opacity))
	}

	if fx.Metal.Enabled && fx.Metal.Opacity > 0 {
		buf := c.metalBuffer(fx.Metal, w, h)
		blend.Composite(data, buf, c.blendOp(fx.Metal.BlendMode), clamp01(fx.Metal.Opacity))
	}

	if fx.Texture.Enabled && fx.Texture.Opacity > 0 {
		buf := c.textureBuffer(fx.Texture, w, h)
		blend.Composite(data, buf, c.blendOp(fx.Texture.BlendMode), clamp01(fx.Texture.Opacity))
	}
}

// grainBuffer prefers a tiled pre-rendered asset; when the store is not
// ready (or failed) it falls back to cached procedural generation at the
// tier's reduced resolution.
func (c *ConstrainedCompositor) grainBuffer(g GlobalGrain, w, h int) []uint8 {
	if c.store != nil && c.store.Ready() {
		if tiled := c.store.Tiled(w, h, assets.BucketFor(clamp01(g.Amount))); tiled != nil {
			return tiled
		}
	}
	key := fmt.Sprintf("grain:%dx%d:%.3f:%.2f:%d", w, h, g.Amount, g.Size, c.tier.GrainDivisor)
	return c.bufferCache.GetOrCreate(key, func() []uint8 {
		return effect.Grain(w, h, clamp01(g.Amount), g.Size, c.tier.GrainDivisor, sigSeed(key))
	})
}

func (c *ConstrainedCompositor) noiseBuffer(n GlobalNoise, w, h int) []uint8 {
	key := fmt.Sprintf("noise:%dx%d:%.3f:%.2f:%s:%d", w, h, n.Intensity, n.Scale, n.Algorithm, c.tier.GrainDivisor)
	return c.bufferCache.GetOrCreate(key, func() []uint8 {
		size := n.Scale
		if size < 1 {
			size = 1
		}
		return effect.Grain(w, h, clamp01(n.Intensity), size, c.tier.GrainDivisor, sigSeed(key))
	})
}

// halftoneBuffer is the simplified constrained variant: the interpolated
// style always renders with the ordered grid algorithm.
func (c *ConstrainedCompositor) halftoneBuffer(ht GlobalHalftone, w, h int) []uint8 {
	key := fmt.Sprintf("ht:%dx%d:%.4f:%.3f", w, h, ht.GradientPosition, ht.DotSize)
	return c.bufferCache.GetOrCreate(key, func() []uint8 {
		style := halftoneStyleAt(ht.GradientPosition)
		style.Pattern = effect.PatternOrdered
		return effect.Halftone(w, h, style, ht.DotSize, ht.Contrast, ht.NoiseBlend, sigSeed(key))
	})
}

// metalBuffer is the simplified constrained variant: the micro-contrast
// sharpening exponent is skipped.
func (c *ConstrainedCompositor) metalBuffer(m GlobalMetal, w, h int) []uint8 {
	key := fmt.Sprintf("mt:%dx%d:%.3f:%.3f:%.2f:%.2f",
		w, h, m.Distortion, m.MacroIntensity, m.RidgeDensity, m.Angle)
	return c.bufferCache.GetOrCreate(key, func() []uint8 {
		p := metalParams(m)
		p.MicroContrast = 0
		return effect.Metal(w, h, p)
	})
}

// textureBuffer is the simplified constrained variant: every preset id
// renders the frosted-glass generator.
func (c *ConstrainedCompositor) textureBuffer(t GlobalTexture, w, h int) []uint8 {
	key := fmt.Sprintf("tx:%dx%d:%.3f", w, h, t.Scale)
	return c.bufferCache.GetOrCreate(key, func() []uint8 {
		return effect.Texture(w, h, effect.PresetFrostedGlass, t.Scale, sigSeed(key))
	})
}

// sigSeed derives a stable seed from a cache signature so cached buffers
// are reproducible for the lifetime of the signature.
func sigSeed(key string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= 16777619
	}
	return h
}
