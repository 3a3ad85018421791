package strata

import (
	"time"

	"github.com/google/uuid"
)

// GradientType identifies how a layer's color ramp is laid out.
type GradientType string

const (
	// GradientLinear runs the ramp top-to-bottom across the canvas.
	GradientLinear GradientType = "linear"
	// GradientRadial radiates from the canvas center out to half the
	// larger canvas dimension.
	GradientRadial GradientType = "radial"
	// GradientMesh is accepted in documents but degrades to the same
	// centered radial treatment as GradientRadial. True multi-point mesh
	// gradients are a documented limitation.
	GradientMesh GradientType = "mesh"
)

// CanvasSettings describes the render target in physical pixels.
type CanvasSettings struct {
	Width           int    `yaml:"width" json:"width"`
	Height          int    `yaml:"height" json:"height"`
	BackgroundColor string `yaml:"backgroundColor" json:"backgroundColor"`
}

// GradientColorStop is a color at a position within a layer's ramp.
// Positions outside [0, 1] and non-monotonic orderings are legal in
// storage; renderers sort and clamp before sampling.
type GradientColorStop struct {
	ID       string  `yaml:"id" json:"id"`
	Color    string  `yaml:"color" json:"color"`
	Position float64 `yaml:"position" json:"position"`
}

// LayerTransform positions a layer relative to the canvas center.
// X and Y are fractions of the canvas half-extent in [-1, 1], Scale is in
// (0, ~2], Rotation is in degrees.
type LayerTransform struct {
	X        float64 `yaml:"x" json:"x"`
	Y        float64 `yaml:"y" json:"y"`
	Scale    float64 `yaml:"scale" json:"scale"`
	Rotation float64 `yaml:"rotation" json:"rotation"`
}

// LayerBlur is the per-layer blur effect.
type LayerBlur struct {
	Enabled bool    `yaml:"enabled" json:"enabled"`
	Radius  float64 `yaml:"radius" json:"radius"`
}

// LayerNoise is the per-layer noise effect.
type LayerNoise struct {
	Enabled   bool    `yaml:"enabled" json:"enabled"`
	Intensity float64 `yaml:"intensity" json:"intensity"`
	Scale     float64 `yaml:"scale" json:"scale"`
}

// LayerGlow is the per-layer bloom effect.
type LayerGlow struct {
	Enabled   bool    `yaml:"enabled" json:"enabled"`
	Intensity float64 `yaml:"intensity" json:"intensity"`
	Spread    float64 `yaml:"spread" json:"spread"`
}

// LayerEffects groups the optional per-layer effects. A nil LayerEffects
// on a layer, or a zero-value effect block, means disabled.
type LayerEffects struct {
	Blur  LayerBlur  `yaml:"blur" json:"blur"`
	Noise LayerNoise `yaml:"noise" json:"noise"`
	Glow  LayerGlow  `yaml:"glow" json:"glow"`
}

// GradientLayer is one gradient fill in the composition stack.
// Rendering order is array order, bottom to top. A layer with fewer than
// two color stops renders nothing.
type GradientLayer struct {
	ID        string              `yaml:"id" json:"id"`
	Name      string              `yaml:"name" json:"name"`
	Type      GradientType        `yaml:"type" json:"type"`
	Visible   bool                `yaml:"visible" json:"visible"`
	Opacity   float64             `yaml:"opacity" json:"opacity"`
	Colors    []GradientColorStop `yaml:"colors" json:"colors"`
	Transform LayerTransform      `yaml:"transform" json:"transform"`
	BlendMode BlendMode           `yaml:"blendMode" json:"blendMode"`
	Effects   *LayerEffects       `yaml:"effects,omitempty" json:"effects,omitempty"`
}

// effects returns the layer's effects, treating nil as all-disabled.
func (l *GradientLayer) effects() LayerEffects {
	if l.Effects == nil {
		return LayerEffects{}
	}
	return *l.Effects
}

// stops converts the layer's document color stops into sampler stops.
func (l *GradientLayer) stops() []ColorStop {
	out := make([]ColorStop, 0, len(l.Colors))
	for _, c := range l.Colors {
		out = append(out, ColorStop{Offset: c.Position, Color: Hex(c.Color)})
	}
	return out
}

// NoiseAlgorithm selects the global noise generator.
type NoiseAlgorithm string

const (
	// NoiseRandom is pure uniform per-pixel random noise.
	NoiseRandom NoiseAlgorithm = "random"
	// NoiseValue is lattice-based smoothed noise (bilinear interpolation
	// of hashed corners with smoothstep weighting).
	NoiseValue NoiseAlgorithm = "value"
	// NoisePerlin is an accepted alias for NoiseValue; the smoothed
	// lattice serves both names.
	NoisePerlin NoiseAlgorithm = "perlin"
	// NoiseSimplex is triangular-lattice noise with the standard
	// skew/unskew and corner contribution kernels.
	NoiseSimplex NoiseAlgorithm = "simplex"
)

// LightingStyle selects the macro-shading gradient of the metal effect.
type LightingStyle string

const (
	// LightingDiagonal shades light-to-dark across the diagonal.
	LightingDiagonal LightingStyle = "diagonal"
	// LightingHorizontal shades strongly across the horizontal axis.
	LightingHorizontal LightingStyle = "horizontal"
)

// TexturePreset names a procedural surface texture generator.
type TexturePreset string

const (
	// TextureFrostedGlass is a soft gradient with diffusion grain.
	TextureFrostedGlass TexturePreset = "frosted-glass"
	// TextureBrushedMetal is a metallic gradient with directional streaks.
	TextureBrushedMetal TexturePreset = "brushed-metal"
	// TextureRippledWater is a noise-warped sinusoidal interference field.
	TextureRippledWater TexturePreset = "rippled-water"
)

// GlobalBlur is the canvas-wide blur, distinct from per-layer blur.
type GlobalBlur struct {
	Enabled  bool    `yaml:"enabled" json:"enabled"`
	Strength float64 `yaml:"strength" json:"strength"`
}

// GlobalGrain is chunky photographic grain composited with overlay blending.
type GlobalGrain struct {
	Enabled bool    `yaml:"enabled" json:"enabled"`
	Amount  float64 `yaml:"amount" json:"amount"`
	Size    float64 `yaml:"size" json:"size"`
}

// GlobalNoise is an additive per-channel noise perturbation.
type GlobalNoise struct {
	Enabled   bool           `yaml:"enabled" json:"enabled"`
	Intensity float64        `yaml:"intensity" json:"intensity"`
	Scale     float64        `yaml:"scale" json:"scale"`
	Algorithm NoiseAlgorithm `yaml:"algorithm" json:"algorithm"`
}

// GlobalHalftone is a procedural dot field interpolated between two named
// source styles by GradientPosition.
type GlobalHalftone struct {
	Enabled          bool      `yaml:"enabled" json:"enabled"`
	GradientPosition float64   `yaml:"gradientPosition" json:"gradientPosition"`
	BlendMode        BlendMode `yaml:"blendMode" json:"blendMode"`
	DotSize          float64   `yaml:"dotSize" json:"dotSize"`
	Contrast         float64   `yaml:"contrast" json:"contrast"`
	NoiseBlend       float64   `yaml:"noiseBlend" json:"noiseBlend"`
	Opacity          float64   `yaml:"opacity" json:"opacity"`
}

// GlobalMetal is the corrugated-metal ridge shading effect.
type GlobalMetal struct {
	Enabled        bool          `yaml:"enabled" json:"enabled"`
	Distortion     float64       `yaml:"distortion" json:"distortion"`
	MacroIntensity float64       `yaml:"macroIntensity" json:"macroIntensity"`
	Lighting       LightingStyle `yaml:"lighting" json:"lighting"`
	MicroContrast  float64       `yaml:"microContrast" json:"microContrast"`
	RidgeDensity   float64       `yaml:"ridgeDensity" json:"ridgeDensity"`
	Angle          float64       `yaml:"angle" json:"angle"`
	Opacity        float64       `yaml:"opacity" json:"opacity"`
	BlendMode      BlendMode     `yaml:"blendMode" json:"blendMode"`
}

// GlobalTexture overlays a named procedural surface texture.
type GlobalTexture struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Preset    TexturePreset `yaml:"preset" json:"preset"`
	Opacity   float64       `yaml:"opacity" json:"opacity"`
	BlendMode BlendMode     `yaml:"blendMode" json:"blendMode"`
	Scale     float64       `yaml:"scale" json:"scale"`
}

// GlobalEffects are whole-canvas post-processes. Application order is
// fixed: blur, grain, noise, halftone, metal, texture. Later effects sit
// visually on top of atmospheric ones.
type GlobalEffects struct {
	Blur     GlobalBlur     `yaml:"blur" json:"blur"`
	Grain    GlobalGrain    `yaml:"grain" json:"grain"`
	Noise    GlobalNoise    `yaml:"noise" json:"noise"`
	Halftone GlobalHalftone `yaml:"halftone" json:"halftone"`
	Metal    GlobalMetal    `yaml:"metal" json:"metal"`
	Texture  GlobalTexture  `yaml:"texture" json:"texture"`
}

// Metadata holds descriptive composition fields.
type Metadata struct {
	Name      string    `yaml:"name" json:"name"`
	CreatedAt time.Time `yaml:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `yaml:"updatedAt" json:"updatedAt"`
}

// Composition is the single unit of truth handed to a renderer.
// Renderers treat it as immutable per render call: editors replace the
// whole value rather than mutating layers in place.
type Composition struct {
	ID       string          `yaml:"id" json:"id"`
	Version  int             `yaml:"version" json:"version"`
	Canvas   CanvasSettings  `yaml:"canvas" json:"canvas"`
	Layers   []GradientLayer `yaml:"layers" json:"layers"`
	Effects  GlobalEffects   `yaml:"effects" json:"effects"`
	Metadata Metadata        `yaml:"metadata" json:"metadata"`
}

// Clone returns a deep copy. Mutating the copy's layers, stops, or
// effects never touches the original.
func (c *Composition) Clone() *Composition {
	out := *c
	out.Layers = make([]GradientLayer, len(c.Layers))
	for i := range c.Layers {
		layer := c.Layers[i]
		layer.Colors = append([]GradientColorStop(nil), c.Layers[i].Colors...)
		if c.Layers[i].Effects != nil {
			fx := *c.Layers[i].Effects
			layer.Effects = &fx
		}
		out.Layers[i] = layer
	}
	return &out
}

// NewComposition creates an empty composition with a fresh id,
// the given canvas, and metadata timestamps set to now.
func NewComposition(name string, canvas CanvasSettings) *Composition {
	now := time.Now().UTC()
	return &Composition{
		ID:      uuid.NewString(),
		Version: 1,
		Canvas:  canvas,
		Metadata: Metadata{
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// NewLayer creates a visible linear layer with a fresh id and neutral
// transform, ready for color stops.
func NewLayer(name string) GradientLayer {
	return GradientLayer{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      GradientLinear,
		Visible:   true,
		Opacity:   1,
		Transform: LayerTransform{Scale: 1},
		BlendMode: BlendNormal,
	}
}

// DefaultComposition returns a small plausible two-layer document, used by
// the CLI when no input file is given and by tests.
func DefaultComposition() *Composition {
	comp := NewComposition("untitled", CanvasSettings{
		Width:           800,
		Height:          600,
		BackgroundColor: "#0a0a0a",
	})

	base := NewLayer("base")
	base.Type = GradientRadial
	base.Colors = []GradientColorStop{
		{ID: uuid.NewString(), Color: "#22c55e", Position: 0},
		{ID: uuid.NewString(), Color: "#0a0a0a", Position: 1},
	}

	wash := NewLayer("wash")
	wash.Opacity = 0.6
	wash.BlendMode = BlendScreen
	wash.Transform = LayerTransform{X: 0.25, Y: -0.2, Scale: 1.4, Rotation: 18}
	wash.Colors = []GradientColorStop{
		{ID: uuid.NewString(), Color: "#1d4ed8", Position: 0.1},
		{ID: uuid.NewString(), Color: "#0a0a0a", Position: 0.9},
	}

	comp.Layers = []GradientLayer{base, wash}
	return comp
}

// longEdge returns the larger of two pixel dimensions.
func longEdge(width, height int) int {
	if width > height {
		return width
	}
	return height
}
