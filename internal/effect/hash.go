// Package effect implements the procedural effect generators: grain,
// multi-algorithm noise, halftone dot fields, corrugated-metal ridge
// shading, and named surface textures.
//
// Every generator is a pure transform from (dimensions, parameters, seed)
// to a pixel buffer; the same inputs always produce the same output. All
// randomness flows through the deterministic 2D hash below, never through
// a shared random source.
//
// Buffers are non-premultiplied RGBA, 4 bytes per pixel, matching the
// renderer's surface format. Compositing the result back is the caller's
// job, except for the additive noise perturbation which mutates in place.
package effect

import "math"

// hash2 mixes integer lattice coordinates and a seed into 32 well
// distributed bits. The constants are from Chris Wellons' triple32 mix.
func hash2(x, y int32, seed uint32) uint32 {
	h := uint32(x)*0x85ebca6b ^ uint32(y)*0xc2b2ae35 ^ seed
	h ^= h >> 17
	h *= 0xed5ad4bb
	h ^= h >> 11
	h *= 0xac4c1b51
	h ^= h >> 15
	h *= 0x31848bab
	h ^= h >> 14
	return h
}

// hash01 maps lattice coordinates to a float in [0, 1).
func hash01(x, y int32, seed uint32) float64 {
	return float64(hash2(x, y, seed)) / float64(1<<32)
}

// hashSigned maps lattice coordinates to a float in [-1, 1).
func hashSigned(x, y int32, seed uint32) float64 {
	return hash01(x, y, seed)*2 - 1
}

// smoothstep is the cubic Hermite fade 3t²-2t³.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// floorInt32 is floor for lattice indexing; int conversion truncates
// toward zero, which is wrong for negative coordinates.
func floorInt32(v float64) int32 {
	return int32(math.Floor(v))
}
