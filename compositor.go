package strata

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/strata-gfx/strata/internal/blend"
	"github.com/strata-gfx/strata/internal/blur"
	"github.com/strata-gfx/strata/internal/cache"
	"github.com/strata-gfx/strata/internal/effect"
)

// Compositor is the primary full-fidelity renderer. It walks the
// composition layer stack bottom to top, compositing each visible layer
// with its blend mode and opacity, then applies the global effects in
// their fixed order: blur, grain, noise, halftone, metal, texture.
//
// The compositor owns its caches and capability descriptor; separate
// instances (preview and export, say) never interfere with each other.
type Compositor struct {
	surface Surface
	caps    Capabilities
	engine  *blur.Engine

	// effectCache holds deterministic effect buffers (halftone, metal,
	// texture) keyed by a parameter signature that includes dimensions.
	// Cleared wholesale on resize.
	effectCache *cache.Cache[string, []uint8]

	scratch *Pixmap // per-layer paint buffer, reused across layers

	last      *Composition
	seed      uint32
	seedSet   bool
	frame     uint32
	destroyed bool
}

// NewCompositor creates the primary renderer for a surface. It fails
// fast with ErrNoRasterContext if the surface cannot provide a 2D
// raster context.
func NewCompositor(surface Surface, opts ...Option) (*Compositor, error) {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := surface.RasterContext(); err != nil {
		return nil, fmt.Errorf("strata: compositor init: %w", err)
	}

	caps := Probe(surface, o.profile)
	if o.caps != nil {
		caps = *o.caps
	}

	c := &Compositor{
		surface:     surface,
		caps:        caps,
		engine:      blur.New(caps.NativeFilter),
		effectCache: cache.New[string, []uint8](12),
		seed:        o.seed,
		seedSet:     o.seedSet,
	}
	Logger().Debug("compositor created",
		slog.Bool("nativeFilter", caps.NativeFilter),
		slog.String("tier", caps.Tier.String()))
	return c, nil
}

// Capabilities returns the descriptor computed at construction.
func (c *Compositor) Capabilities() Capabilities {
	return c.caps
}

// Render draws the full composition, overwriting the previous frame.
func (c *Compositor) Render(comp *Composition) {
	if c.destroyed || comp == nil {
		return
	}
	c.last = comp

	pm, err := c.surface.RasterContext()
	if err != nil {
		panic(err) // caught by the Mount failure boundary
	}
	w, h := pm.Width(), pm.Height()

	seed := c.frameSeed()

	// 1. Background.
	pm.Clear(Hex(comp.Canvas.BackgroundColor))

	// 2. Layers, bottom to top.
	for i := range comp.Layers {
		c.paintLayer(pm, &comp.Layers[i], w, h, seed)
	}

	// 3. Global effects in fixed order.
	c.applyGlobalEffects(pm, &comp.Effects, w, h, seed)
}

// Resize updates surface dimensions, drops every dimension-bound cache,
// and re-renders the most recent composition if one exists.
func (c *Compositor) Resize(width, height int) {
	if c.destroyed || width < 1 || height < 1 {
		return
	}
	c.surface.SetSize(width, height)
	c.effectCache.Clear()
	c.scratch = nil
	if c.last != nil {
		c.Render(c.last)
	}
}

// Destroy releases the renderer. Idempotent.
func (c *Compositor) Destroy() {
	c.destroyed = true
	c.effectCache.Clear()
	c.scratch = nil
}

// frameSeed returns the seed for this frame's randomized stages. With
// WithSeed the value is fixed, making renders pixel-stable; otherwise
// every frame draws fresh grain and noise.
func (c *Compositor) frameSeed() uint32 {
	if c.seedSet {
		return c.seed
	}
	c.frame++
	return c.frame * 0x9e3779b9
}

// layerScratch returns the reusable layer paint buffer sized w×h.
func (c *Compositor) layerScratch(w, h int) *Pixmap {
	if c.scratch == nil || c.scratch.Width() != w || c.scratch.Height() != h {
		c.scratch = NewPixmap(w, h)
	}
	return c.scratch
}

// paintLayer renders one gradient layer into the scratch buffer and
// composites it onto dst. A layer with fewer than two color stops is a
// silent no-op; other malformed values are clamped, never errors.
func (c *Compositor) paintLayer(dst *Pixmap, layer *GradientLayer, w, h int, seed uint32) {
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
	fx := layer.effects()

	scratch := c.layerScratch(w, h)
	c.fillGradient(scratch, layer, stops, w, h)
	data := scratch.Data()

	if fx.Noise.Enabled && fx.Noise.Intensity > 0 {
		effect.Perturb(data, w, h, effect.AlgorithmValue,
			clamp01(fx.Noise.Intensity), fx.Noise.Scale, seed^uint32(0x51ab))
	}

	if fx.Blur.Enabled && fx.Blur.Radius > 0 {
		// The engine's clamp-to-edge padding plays the role of expanding
		// the fill rectangle: blur never clips at layer bounds.
		c.engine.BlurInPlace(data, w, h, fx.Blur.Radius)
	}

	blend.Composite(dst.Data(), data, layer.BlendMode.op(), opacity)

	if fx.Glow.Enabled && fx.Glow.Intensity > 0 {
		c.paintGlow(dst, scratch, fx.Glow, w, h)
	}
}

// fillGradient fills the scratch buffer with the layer's gradient under
// its transform, by mapping every destination pixel back through the
// inverse transform and sampling the ramp at the source position.
func (c *Compositor) fillGradient(scratch *Pixmap, layer *GradientLayer, stops []ColorStop, w, h int) {
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
}

// paintGlow approximates a soft bloom: the layer is redrawn three times
// with screen blending, each pass at a progressively larger blur radius
// and geometrically lower opacity.
func (c *Compositor) paintGlow(dst, layerBuf *Pixmap, glow LayerGlow, w, h int) {
	spread := glow.Spread
	if spread < 0 {
		spread = 0
	}
	if spread == 0 {
		spread = 8
	}
	intensity := clamp01(glow.Intensity)

	pass := NewPixmap(w, h)
	for i := 0; i < 3; i++ {
		radius := spread * float64(int(1)<<i)
		c.engine.Blur(pass.Data(), layerBuf.Data(), w, h, radius)
		alpha := intensity * math.Pow(0.5, float64(i+1))
		blend.Composite(dst.Data(), pass.Data(), blend.ModeScreen, alpha)
	}
}

// applyGlobalEffects runs the whole-canvas post-processes in their fixed
// order. A disabled effect is skipped entirely, not applied at zero
// strength.
func (c *Compositor) applyGlobalEffects(pm *Pixmap, fx *GlobalEffects, w, h int, seed uint32) {
	data := pm.Data()

	if fx.Blur.Enabled && fx.Blur.Strength > 0 {
		c.engine.BlurInPlace(data, w, h, fx.Blur.Strength)
	}

	if fx.Grain.Enabled && fx.Grain.Amount > 0 {
		g := effect.Grain(w, h, clamp01(fx.Grain.Amount), fx.Grain.Size, 1, seed)
		blend.Composite(data, g, blend.ModeOverlay, 1)
	}

	if fx.Noise.Enabled && fx.Noise.Intensity > 0 {
		effect.Perturb(data, w, h, noiseAlgorithm(fx.Noise.Algorithm),
			clamp01(fx.Noise.Intensity), fx.Noise.Scale, seed^uint32(0x6015e))
	}

	if fx.Halftone.Enabled && fx.Halftone.Opacity > 0 {
		buf := c.halftoneBuffer(fx.Halftone, w, h)
		blend.Composite(data, buf, fx.Halftone.BlendMode.op(), clamp01(fx.Halftone.Opacity))
	}

	if fx.Metal.Enabled && fx.Metal.Opacity > 0 {
		buf := c.metalBuffer(fx.Metal, w, h)
		blend.Composite(data, buf, fx.Metal.BlendMode.op(), clamp01(fx.Metal.Opacity))
	}

	if fx.Texture.Enabled && fx.Texture.Opacity > 0 {
		buf := c.textureBuffer(fx.Texture, w, h)
		blend.Composite(data, buf, fx.Texture.BlendMode.op(), clamp01(fx.Texture.Opacity))
	}
}

// Deterministic effect buffers are cached by parameter signature; the
// signature includes dimensions, and Resize clears the cache, so a stale
// buffer can never be composited at the wrong size.

func (c *Compositor) halftoneBuffer(ht GlobalHalftone, w, h int) []uint8 {
	key := fmt.Sprintf("ht:%dx%d:%.4f:%.3f:%.3f:%.3f",
		w, h, ht.GradientPosition, ht.DotSize, ht.Contrast, ht.NoiseBlend)
	return c.effectCache.GetOrCreate(key, func() []uint8 {
		style := halftoneStyleAt(ht.GradientPosition)
		return effect.Halftone(w, h, style, ht.DotSize, ht.Contrast, ht.NoiseBlend, 0x47a1f)
	})
}

func (c *Compositor) metalBuffer(m GlobalMetal, w, h int) []uint8 {
	key := fmt.Sprintf("mt:%dx%d:%.3f:%.3f:%d:%.3f:%.2f:%.2f",
		w, h, m.Distortion, m.MacroIntensity, lightingStyle(m.Lighting),
		m.MicroContrast, m.RidgeDensity, m.Angle)
	return c.effectCache.GetOrCreate(key, func() []uint8 {
		return effect.Metal(w, h, metalParams(m))
	})
}

func (c *Compositor) textureBuffer(t GlobalTexture, w, h int) []uint8 {
	key := fmt.Sprintf("tx:%dx%d:%d:%.3f", w, h, texturePreset(t.Preset), t.Scale)
	return c.effectCache.GetOrCreate(key, func() []uint8 {
		return effect.Texture(w, h, texturePreset(t.Preset), t.Scale, 0x7e47)
	})
}
