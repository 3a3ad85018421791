// Package blend provides color compositing operators.
//
// Separable blend modes follow the W3C Compositing and Blending Level 1
// specification: the blend function B operates on unmultiplied channels and
// the result is mixed with source and backdrop by their alphas,
//
//	co = (1-αs)·Cd·αd + (1-αd)·Cs·αs + αs·αd·B(Cs, Cd)
//	αo = αs + αd·(1-αs)
//
// Buffers are non-premultiplied RGBA, 4 bytes per pixel.
package blend

// Mode represents a compositing operator.
type Mode int

const (
	// ModeSourceOver is the default alpha compositing operator.
	ModeSourceOver Mode = iota
	// ModeSourceCopy replaces the destination with the source.
	ModeSourceCopy
	// ModeMultiply multiplies source and backdrop channels.
	ModeMultiply
	// ModeScreen inverts, multiplies, and inverts again.
	ModeScreen
	// ModeOverlay is hard light with source and backdrop swapped.
	ModeOverlay
	// ModeDarken keeps the darker channel.
	ModeDarken
	// ModeLighten keeps the lighter channel.
	ModeLighten
	// ModeColorDodge brightens the backdrop toward the source.
	ModeColorDodge
	// ModeColorBurn darkens the backdrop toward the source.
	ModeColorBurn
	// ModeHardLight multiplies or screens depending on the source.
	ModeHardLight
	// ModeSoftLight is a softer variant of hard light.
	ModeSoftLight
	// ModeDifference takes the absolute channel difference.
	ModeDifference
	// ModeExclusion is a lower-contrast difference.
	ModeExclusion
)

// Composite blends src into dst in place. Both buffers must be
// non-premultiplied RGBA of equal length. opacity in [0, 1] scales the
// source alpha before compositing; an opacity of 0 leaves dst untouched.
func Composite(dst, src []uint8, mode Mode, opacity float64) {
	if len(dst) != len(src) {
		return
	}
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}

	for i := 0; i+3 < len(dst); i += 4 {
		sa := float64(src[i+3]) / 255 * opacity
		if sa == 0 {
			continue
		}
		sr := float64(src[i+0]) / 255
		sg := float64(src[i+1]) / 255
		sb := float64(src[i+2]) / 255

		if mode == ModeSourceCopy {
			dst[i+0] = src[i+0]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+2]
			dst[i+3] = to255(sa)
			continue
		}

		da := float64(dst[i+3]) / 255
		dr := float64(dst[i+0]) / 255
		dg := float64(dst[i+1]) / 255
		db := float64(dst[i+2]) / 255

		r, g, b, a := blendPixel(sr, sg, sb, sa, dr, dg, db, da, mode)
		dst[i+0] = to255(r)
		dst[i+1] = to255(g)
		dst[i+2] = to255(b)
		dst[i+3] = to255(a)
	}
}

// blendPixel composites one non-premultiplied source pixel over a backdrop
// pixel and returns the non-premultiplied result.
func blendPixel(sr, sg, sb, sa, dr, dg, db, da float64, mode Mode) (r, g, b, a float64) {
	a = sa + da*(1-sa)
	if a == 0 {
		return 0, 0, 0, 0
	}

	blend := blendFunc(mode)
	if blend == nil {
		// Plain source-over: no channel mixing beyond alpha weights.
		r = (sr*sa + dr*da*(1-sa)) / a
		g = (sg*sa + dg*da*(1-sa)) / a
		b = (sb*sa + db*da*(1-sa)) / a
		return r, g, b, a
	}

	r = composeChannel(sr, sa, dr, da, blend) / a
	g = composeChannel(sg, sa, dg, da, blend) / a
	b = composeChannel(sb, sa, db, da, blend) / a
	return clamp01(r), clamp01(g), clamp01(b), a
}

// composeChannel applies the W3C mixing formula for one channel,
// returning the premultiplied result.
func composeChannel(cs, sa, cd, da float64, blend func(s, d float64) float64) float64 {
	return (1-da)*cs*sa + (1-sa)*cd*da + sa*da*blend(cs, cd)
}

func to255(v float64) uint8 {
	v = v*255 + 0.5
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
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
