package effect

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Preset names a procedural surface texture generator.
type Preset int

const (
	// PresetFrostedGlass is a soft two-stop gradient base with an
	// overlaid downsampled high-frequency diffusion grain.
	PresetFrostedGlass Preset = iota
	// PresetBrushedMetal is a three-stop metallic gradient with
	// unidirectional streak noise and fine per-pixel speckle.
	PresetBrushedMetal
	// PresetRippledWater is a noise-warped sinusoidal interference field
	// with sharp specular-like highlights.
	PresetRippledWater
)

// Texture renders the named procedural surface into a fresh opaque
// buffer. scale stretches the texture's characteristic feature size; the
// caller composites the result with its chosen blend mode and opacity.
func Texture(w, h int, preset Preset, scale float64, seed uint32) []uint8 {
	if w < 1 || h < 1 {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}

	switch preset {
	case PresetBrushedMetal:
		return brushedMetal(w, h, scale, seed)
	case PresetRippledWater:
		return rippledWater(w, h, scale, seed)
	default:
		return frostedGlass(w, h, scale, seed)
	}
}

// frostedGlass: soft 2-stop vertical gradient plus a monochrome noise
// field generated at reduced resolution and scaled up, simulating
// diffusion grain at a configurable granule scale.
func frostedGlass(w, h int, scale float64, seed uint32) []uint8 {
	out := make([]uint8, w*h*4)

	const top, bottom = 235.0, 205.0
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		g := clampByte(top + (bottom-top)*t)
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			out[i+0] = g
			out[i+1] = g
			out[i+2] = g
			out[i+3] = 255
		}
	}

	// Diffusion grain: granule scale follows the texture scale.
	gw := int(float64(w) / (2 * scale))
	gh := int(float64(h) / (2 * scale))
	if gw < 1 {
		gw = 1
	}
	if gh < 1 {
		gh = 1
	}
	small := image.NewNRGBA(image.Rect(0, 0, gw, gh))
	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			g := clampByte(128 + hashSigned(int32(x), int32(y), seed)*40)
			i := y*small.Stride + x*4
			small.Pix[i+0] = g
			small.Pix[i+1] = g
			small.Pix[i+2] = g
			small.Pix[i+3] = 255
		}
	}
	full := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(full, full.Bounds(), small, small.Bounds(), draw.Src, nil)

	for i := 0; i+3 < len(out); i += 4 {
		d := (float64(full.Pix[i]) - 128) * 0.35
		out[i+0] = clampByte(float64(out[i+0]) + d)
		out[i+1] = clampByte(float64(out[i+1]) + d)
		out[i+2] = clampByte(float64(out[i+2]) + d)
	}
	return out
}

// brushedMetal: 3-stop metallic vertical gradient, 45°-rotated streak
// noise sampled from a 1D noise buffer, and fine per-pixel speckle, all
// additively perturbing RGB.
func brushedMetal(w, h int, scale float64, seed uint32) []uint8 {
	out := make([]uint8, w*h*4)

	// Metallic ramp: light, dark, light.
	ramp := func(t float64) float64 {
		if t < 0.5 {
			return 210 - 60*(t/0.5)
		}
		return 150 + 70*((t-0.5)/0.5)
	}

	// 1D streak noise buffer, smoothed.
	streakLen := w + h
	streaks := make([]float64, streakLen)
	for i := range streaks {
		streaks[i] = valueNoise(float64(i)/(6*scale), 0, seed)
	}

	for y := 0; y < h; y++ {
		base := ramp(float64(y) / float64(h))
		for x := 0; x < w; x++ {
			// Streaks run along the 45°-rotated axis.
			s := int(math.Abs(float64(x)-float64(y))) % streakLen
			streak := streaks[s] * 18

			speckle := hashSigned(int32(x), int32(y), seed^0xc2b2ae35) * 6

			g := clampByte(base + streak + speckle)
			i := (y*w + x) * 4
			out[i+0] = g
			out[i+1] = g
			out[i+2] = g
			out[i+3] = 255
		}
	}
	return out
}

// rippledWater: a sinusoidal field domain-warped by simplex noise, raised
// to a cubic power for sharp specular-like highlights. Monochrome and
// opaque; the caller's blend mode does the tinting.
func rippledWater(w, h int, scale float64, seed uint32) []uint8 {
	out := make([]uint8, w*h*4)

	wavelength := 24 * scale
	warpScale := 60 * scale

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx := float64(x)
			fy := float64(y)

			warp := simplexNoise(fx/warpScale, fy/warpScale, seed) * wavelength
			v := math.Sin((fx+fy/2+warp)*2*math.Pi/wavelength)
			v = (v + 1) / 2
			v = v * v * v // sharpen into specular-like crests

			g := clampByte(v * 255)
			i := (y*w + x) * 4
			out[i+0] = g
			out[i+1] = g
			out[i+2] = g
			out[i+3] = 255
		}
	}
	return out
}
