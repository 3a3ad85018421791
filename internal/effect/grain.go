package effect

import (
	"image"

	"golang.org/x/image/draw"
)

// Grain generates a gray-centered photographic grain buffer. The field is
// generated at reduced resolution (dimensions divided by size) and scaled
// up with nearest-neighbor sampling, deliberately without smoothing, to
// keep granules chunky. amount in [0, 1] scales the excursion around the
// mid gray of 128. The buffer is opaque and is meant to be composited
// with overlay blending.
//
// divisor further reduces generation resolution; constrained tiers pass
// their tier's grain divisor to trade fidelity for throughput.
func Grain(w, h int, amount, size float64, divisor int, seed uint32) []uint8 {
	if w < 1 || h < 1 {
		return nil
	}
	if size < 1 {
		size = 1
	}
	if divisor < 1 {
		divisor = 1
	}

	step := size * float64(divisor)
	gw := int(float64(w) / step)
	gh := int(float64(h) / step)
	if gw < 1 {
		gw = 1
	}
	if gh < 1 {
		gh = 1
	}

	amp := clamp01(amount) * 127
	small := image.NewNRGBA(image.Rect(0, 0, gw, gh))
	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			g := clampByte(128 + hashSigned(int32(x), int32(y), seed)*amp)
			i := y*small.Stride + x*4
			small.Pix[i+0] = g
			small.Pix[i+1] = g
			small.Pix[i+2] = g
			small.Pix[i+3] = 255
		}
	}

	if gw == w && gh == h {
		out := make([]uint8, w*h*4)
		copy(out, small.Pix)
		return out
	}

	full := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(full, full.Bounds(), small, small.Bounds(), draw.Src, nil)
	return full.Pix
}

// TileableGrain generates a seamlessly tileable grain tile of the given
// edge size. The field is smoothed value noise on a lattice whose indices
// wrap at the tile boundary, so opposite edges see identical neighborhoods
// and the tile repeats without seams. amount as in Grain. Used by the
// asset-backed fallback path.
func TileableGrain(edge int, amount float64, seed uint32) []uint8 {
	if edge < 1 {
		edge = 1
	}
	const cell = 2.0 // granule size in pixels
	n := int32(float64(edge) / cell)
	if n < 1 {
		n = 1
	}

	wrapped := func(ix, iy int32) float64 {
		return hashSigned(((ix%n)+n)%n, ((iy%n)+n)%n, seed)
	}

	amp := clamp01(amount) * 127
	out := make([]uint8, edge*edge*4)
	for y := 0; y < edge; y++ {
		for x := 0; x < edge; x++ {
			fx := float64(x) / cell
			fy := float64(y) / cell
			x0 := floorInt32(fx)
			y0 := floorInt32(fy)
			sx := smoothstep(fx - float64(x0))
			sy := smoothstep(fy - float64(y0))

			top := wrapped(x0, y0) + sx*(wrapped(x0+1, y0)-wrapped(x0, y0))
			bottom := wrapped(x0, y0+1) + sx*(wrapped(x0+1, y0+1)-wrapped(x0, y0+1))
			v := top + sy*(bottom-top)

			g := clampByte(128 + v*amp)
			i := (y*edge + x) * 4
			out[i+0] = g
			out[i+1] = g
			out[i+2] = g
			out[i+3] = 255
		}
	}
	return out
}
