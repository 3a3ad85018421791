// Package blur provides Gaussian-like blur for RGBA surface buffers.
//
// Two paths exist. The native path delegates to the platform filter
// (disintegration/imaging's Gaussian). The fallback path, for
// environments whose native filtering cannot be trusted, approximates a
// Gaussian with three passes of a sliding-window box blur.
//
// Before the fallback blurs, it pads the working buffer by extending edge
// and corner pixels outward (clamp-to-edge) proportionally to strength,
// blurs the padded buffer, and copies back only the original region.
// Without the padding, any uniform or gradient composition develops dark
// vignetting at the blurred canvas border.
package blur

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Engine performs blurs for one renderer instance. It reuses internal
// scratch buffers between calls; the buffers are keyed by padded
// dimensions and grow as needed, so resizes or strength changes simply
// reallocate. Engines are not safe for concurrent use, matching the
// renderer's single-threaded contract.
type Engine struct {
	native  bool
	scratch []uint8
	tmp     []uint8
}

// New creates an engine. native selects the platform filter path; pass
// false for environments where per-draw filtering is unreliable.
func New(native bool) *Engine {
	return &Engine{native: native}
}

// Native reports whether the engine uses the platform filter path.
func (e *Engine) Native() bool {
	return e.native
}

// Blur reads src and writes a blurred copy into dst, replacing dst's
// contents entirely. Both are w×h non-premultiplied RGBA buffers.
// A strength of zero or less is a pass-through copy.
func (e *Engine) Blur(dst, src []uint8, w, h int, strength float64) {
	if len(dst) != len(src) || len(src) != w*h*4 {
		return
	}
	if strength <= 0 {
		copy(dst, src)
		return
	}

	if e.native {
		e.nativeBlur(dst, src, w, h, strength)
		return
	}
	e.boxBlur(dst, src, w, h, strength)
}

// BlurInPlace blurs a buffer in place.
func (e *Engine) BlurInPlace(data []uint8, w, h int, strength float64) {
	if strength <= 0 {
		return
	}
	if cap(e.tmp) < len(data) {
		e.tmp = make([]uint8, len(data))
	}
	tmp := e.tmp[:len(data)]
	copy(tmp, data)
	e.Blur(data, tmp, w, h, strength)
}

// nativeBlur applies the platform Gaussian during a copy of src onto dst.
func (e *Engine) nativeBlur(dst, src []uint8, w, h int, strength float64) {
	img := &image.NRGBA{Pix: src, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	out := imaging.Blur(img, strength/2)
	copy(dst, out.Pix)
}

// boxBlur is the fallback path: clamp-to-edge padding, then three passes
// of horizontal plus vertical sliding-window box blur.
func (e *Engine) boxBlur(dst, src []uint8, w, h int, strength float64) {
	sigma := strength / 2

	// Padding proportional to strength, capped to the smaller surface
	// dimension to bound buffer growth.
	pad := int(math.Ceil(strength))
	if maxPad := min(w, h); pad > maxPad {
		pad = maxPad
	}

	pw := w + 2*pad
	ph := h + 2*pad
	size := pw * ph * 4
	if cap(e.scratch) < size {
		e.scratch = make([]uint8, size)
	}
	if cap(e.tmp) < size {
		e.tmp = make([]uint8, size)
	}
	padded := e.scratch[:size]
	tmp := e.tmp[:size]

	padClampToEdge(padded, src, w, h, pad)

	for _, radius := range boxRadii(sigma, 3) {
		if radius < 1 {
			continue
		}
		boxBlurHorizontal(tmp, padded, pw, ph, radius)
		boxBlurVertical(padded, tmp, pw, ph, radius)
	}

	// Copy back only the original-sized region, offset by the padding.
	for y := 0; y < h; y++ {
		srcOff := ((y+pad)*pw + pad) * 4
		copy(dst[y*w*4:(y+1)*w*4], padded[srcOff:srcOff+w*4])
	}
}

// padClampToEdge writes src into the center of a padded buffer, filling
// the borders by repeating the nearest edge and corner pixels.
func padClampToEdge(padded, src []uint8, w, h, pad int) {
	pw := w + 2*pad
	for py := 0; py < h+2*pad; py++ {
		sy := py - pad
		if sy < 0 {
			sy = 0
		} else if sy >= h {
			sy = h - 1
		}
		row := src[sy*w*4 : (sy+1)*w*4]

		out := padded[py*pw*4 : (py+1)*pw*4]
		// Left edge.
		for px := 0; px < pad; px++ {
			copy(out[px*4:px*4+4], row[0:4])
		}
		// Center.
		copy(out[pad*4:(pad+w)*4], row)
		// Right edge.
		last := row[(w-1)*4 : w*4]
		for px := pad + w; px < pw; px++ {
			copy(out[px*4:px*4+4], last)
		}
	}
}

// boxRadii computes n box-blur radii whose composition approximates a
// Gaussian of the given sigma (the standard "boxes for Gaussian"
// derivation).
func boxRadii(sigma float64, n int) []int {
	if sigma <= 0 || n < 1 {
		return nil
	}
	ideal := math.Sqrt(12*sigma*sigma/float64(n) + 1)
	wl := int(math.Floor(ideal))
	if wl%2 == 0 {
		wl--
	}
	if wl < 1 {
		wl = 1
	}
	wu := wl + 2

	mIdeal := (12*sigma*sigma - float64(n*wl*wl) - float64(4*n*wl) - float64(3*n)) /
		(float64(-4*wl) - 4)
	m := int(math.Round(mIdeal))

	radii := make([]int, n)
	for i := 0; i < n; i++ {
		if i < m {
			radii[i] = (wl - 1) / 2
		} else {
			radii[i] = (wu - 1) / 2
		}
	}
	return radii
}

// boxBlurHorizontal runs a sliding-window horizontal box blur. The window
// sum is updated incrementally, one add and one subtract per pixel, so
// the cost is independent of the radius. Out-of-range window indices
// reuse the nearest in-range pixel (clamp, never wrap or zero-fill).
func boxBlurHorizontal(dst, src []uint8, w, h, radius int) {
	norm := float64(2*radius + 1)
	for y := 0; y < h; y++ {
		row := src[y*w*4 : (y+1)*w*4]
		out := dst[y*w*4 : (y+1)*w*4]

		var sumR, sumG, sumB, sumA float64
		for k := -radius; k <= radius; k++ {
			i := clampIndex(k, w) * 4
			sumR += float64(row[i+0])
			sumG += float64(row[i+1])
			sumB += float64(row[i+2])
			sumA += float64(row[i+3])
		}

		for x := 0; x < w; x++ {
			out[x*4+0] = uint8(sumR/norm + 0.5)
			out[x*4+1] = uint8(sumG/norm + 0.5)
			out[x*4+2] = uint8(sumB/norm + 0.5)
			out[x*4+3] = uint8(sumA/norm + 0.5)

			drop := clampIndex(x-radius, w) * 4
			add := clampIndex(x+radius+1, w) * 4
			sumR += float64(row[add+0]) - float64(row[drop+0])
			sumG += float64(row[add+1]) - float64(row[drop+1])
			sumB += float64(row[add+2]) - float64(row[drop+2])
			sumA += float64(row[add+3]) - float64(row[drop+3])
		}
	}
}

// boxBlurVertical is the column analogue of boxBlurHorizontal.
func boxBlurVertical(dst, src []uint8, w, h, radius int) {
	norm := float64(2*radius + 1)
	stride := w * 4
	for x := 0; x < w; x++ {
		var sumR, sumG, sumB, sumA float64
		for k := -radius; k <= radius; k++ {
			i := clampIndex(k, h)*stride + x*4
			sumR += float64(src[i+0])
			sumG += float64(src[i+1])
			sumB += float64(src[i+2])
			sumA += float64(src[i+3])
		}

		for y := 0; y < h; y++ {
			o := y*stride + x*4
			dst[o+0] = uint8(sumR/norm + 0.5)
			dst[o+1] = uint8(sumG/norm + 0.5)
			dst[o+2] = uint8(sumB/norm + 0.5)
			dst[o+3] = uint8(sumA/norm + 0.5)

			drop := clampIndex(y-radius, h)*stride + x*4
			add := clampIndex(y+radius+1, h)*stride + x*4
			sumR += float64(src[add+0]) - float64(src[drop+0])
			sumG += float64(src[add+1]) - float64(src[drop+1])
			sumB += float64(src[add+2]) - float64(src[drop+2])
			sumA += float64(src[add+3]) - float64(src[drop+3])
		}
	}
}

// clampIndex clamps an index into [0, n).
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
