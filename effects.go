package strata

import (
	"github.com/strata-gfx/strata/internal/effect"
)

// noiseAlgorithm maps the document enum to the generator enum.
// NoisePerlin is an accepted alias for the value lattice.
func noiseAlgorithm(a NoiseAlgorithm) effect.Algorithm {
	switch a {
	case NoiseValue, NoisePerlin:
		return effect.AlgorithmValue
	case NoiseSimplex:
		return effect.AlgorithmSimplex
	default:
		return effect.AlgorithmRandom
	}
}

// texturePreset maps the document preset id to the generator preset.
// Unknown ids degrade to frosted glass rather than erroring.
func texturePreset(p TexturePreset) effect.Preset {
	switch p {
	case TextureBrushedMetal:
		return effect.PresetBrushedMetal
	case TextureRippledWater:
		return effect.PresetRippledWater
	default:
		return effect.PresetFrostedGlass
	}
}

// lightingStyle maps the document lighting enum to the generator enum.
func lightingStyle(l LightingStyle) effect.Lighting {
	if l == LightingHorizontal {
		return effect.LightingHorizontal
	}
	return effect.LightingDiagonal
}

// metalParams converts the document metal settings, clamping out-of-range
// values.
func metalParams(m GlobalMetal) effect.MetalParams {
	density := m.RidgeDensity
	if density < 0 {
		density = 0
	}
	return effect.MetalParams{
		Distortion:     clamp01(m.Distortion),
		MacroIntensity: clamp01(m.MacroIntensity),
		Lighting:       lightingStyle(m.Lighting),
		MicroContrast:  clamp01(m.MicroContrast),
		RidgeDensity:   density,
		Angle:          m.Angle,
	}
}

// halftoneStyleAt interpolates the two named source styles at the given
// gradient position.
func halftoneStyleAt(position float64) effect.HalftoneStyle {
	return effect.InterpolateHalftone(effect.Newsprint, effect.Zine, clamp01(position))
}
