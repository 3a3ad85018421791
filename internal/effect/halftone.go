package effect

import "math"

// Pattern selects the dot-placement algorithm of a halftone style.
type Pattern int

const (
	// PatternOrdered places dots on a regular grid with per-dot jitter.
	PatternOrdered Pattern = iota
	// PatternStochastic scatters a density-derived dot count at
	// uniform-random positions.
	PatternStochastic
)

// Bucket is a coarse low/medium/high attribute level. Bucketed style
// attributes step between levels rather than interpolating smoothly.
type Bucket int

const (
	// BucketLow is the lowest attribute level.
	BucketLow Bucket = iota
	// BucketMedium is the middle attribute level.
	BucketMedium
	// BucketHigh is the highest attribute level.
	BucketHigh
)

// HalftoneStyle is one named dot-style source definition.
type HalftoneStyle struct {
	DotMin     float64 // smallest dot radius in pixels
	DotMax     float64 // largest dot radius in pixels
	Density    Bucket
	Contrast   Bucket
	NoiseLevel Bucket
	Pattern    Pattern
	Paper      [3]float64 // base color, channels in [0, 1]
	Ink        [3]float64 // dot color, channels in [0, 1]
}

// The two source styles a halftone interpolates between.
var (
	// Newsprint is a tight ordered grid of small dots on warm paper.
	Newsprint = HalftoneStyle{
		DotMin:     1.5,
		DotMax:     3.5,
		Density:    BucketHigh,
		Contrast:   BucketMedium,
		NoiseLevel: BucketLow,
		Pattern:    PatternOrdered,
		Paper:      [3]float64{0.93, 0.91, 0.86},
		Ink:        [3]float64{0.12, 0.11, 0.10},
	}

	// Zine is a loose stochastic scatter of large high-contrast dots.
	Zine = HalftoneStyle{
		DotMin:     2.5,
		DotMax:     7,
		Density:    BucketLow,
		Contrast:   BucketHigh,
		NoiseLevel: BucketHigh,
		Pattern:    PatternStochastic,
		Paper:      [3]float64{0.98, 0.97, 0.95},
		Ink:        [3]float64{0.05, 0.05, 0.08},
	}
)

// bucketAt steps a bucketed attribute between two sources: below 1/3 the
// first source's level, above 2/3 the second's, medium in between.
func bucketAt(a, b Bucket, t float64) Bucket {
	switch {
	case t < 1.0/3:
		return a
	case t > 2.0/3:
		return b
	default:
		return BucketMedium
	}
}

// InterpolateHalftone blends two source styles by t in [0, 1]. Colors and
// the dot-size range interpolate per channel; bucketed attributes step at
// the 1/3 and 2/3 thresholds; the pattern type switches at t = 0.5.
func InterpolateHalftone(a, b HalftoneStyle, t float64) HalftoneStyle {
	t = clamp01(t)

	lerp := func(x, y float64) float64 { return x + t*(y-x) }
	lerp3 := func(x, y [3]float64) [3]float64 {
		return [3]float64{lerp(x[0], y[0]), lerp(x[1], y[1]), lerp(x[2], y[2])}
	}

	pattern := a.Pattern
	if t >= 0.5 {
		pattern = b.Pattern
	}

	return HalftoneStyle{
		DotMin:     lerp(a.DotMin, b.DotMin),
		DotMax:     lerp(a.DotMax, b.DotMax),
		Density:    bucketAt(a.Density, b.Density, t),
		Contrast:   bucketAt(a.Contrast, b.Contrast, t),
		NoiseLevel: bucketAt(a.NoiseLevel, b.NoiseLevel, t),
		Pattern:    pattern,
		Paper:      lerp3(a.Paper, b.Paper),
		Ink:        lerp3(a.Ink, b.Ink),
	}
}

// densityMultiplier converts a density bucket into a grid-spacing
// multiplier for the ordered pattern (denser means tighter spacing).
func densityMultiplier(b Bucket) float64 {
	switch b {
	case BucketLow:
		return 3.2
	case BucketHigh:
		return 1.6
	default:
		return 2.4
	}
}

// densityRate converts a density bucket into a dots-per-pixel rate for
// the stochastic pattern.
func densityRate(b Bucket) float64 {
	switch b {
	case BucketLow:
		return 0.004
	case BucketHigh:
		return 0.016
	default:
		return 0.009
	}
}

// bucketScale maps a bucket to a 0.5/1.0/1.5 modulation factor.
func bucketScale(b Bucket) float64 {
	switch b {
	case BucketLow:
		return 0.5
	case BucketHigh:
		return 1.5
	default:
		return 1
	}
}

// Halftone renders a dot field into a fresh opaque buffer. dotScale
// multiplies the style's dot-size range, contrast in [0, 1] deepens size
// modulation, noiseBlend in [0, 1] adds hashed per-dot irregularity.
func Halftone(w, h int, style HalftoneStyle, dotScale, contrast, noiseBlend float64, seed uint32) []uint8 {
	if w < 1 || h < 1 {
		return nil
	}
	if dotScale <= 0 {
		dotScale = 1
	}
	contrast = clamp01(contrast)
	noiseBlend = clamp01(noiseBlend)

	out := make([]uint8, w*h*4)
	paper := [3]uint8{
		clampByte(style.Paper[0] * 255),
		clampByte(style.Paper[1] * 255),
		clampByte(style.Paper[2] * 255),
	}
	for i := 0; i < len(out); i += 4 {
		out[i+0] = paper[0]
		out[i+1] = paper[1]
		out[i+2] = paper[2]
		out[i+3] = 255
	}

	dotMin := style.DotMin * dotScale
	dotMax := style.DotMax * dotScale
	if dotMax < dotMin {
		dotMax = dotMin
	}

	if style.Pattern == PatternOrdered {
		orderedDots(out, w, h, style, dotMin, dotMax, contrast, noiseBlend, seed)
	} else {
		stochasticDots(out, w, h, style, dotMin, dotMax, contrast, noiseBlend, seed)
	}
	return out
}

// orderedDots places dots on a regular grid with spacing derived from the
// average dot size and the density bucket, with small positional and size
// jitter scaled by the contrast and noise parameters.
func orderedDots(out []uint8, w, h int, style HalftoneStyle, dotMin, dotMax, contrast, noiseBlend float64, seed uint32) {
	avg := (dotMin + dotMax) / 2
	spacing := avg * densityMultiplier(style.Density)
	if spacing < 2 {
		spacing = 2
	}

	jitterAmp := spacing * 0.25 * (noiseBlend + 0.5*bucketScale(style.NoiseLevel)) / 1.5
	sizeJitter := 0.3 * (contrast + 0.5*bucketScale(style.Contrast)) / 1.5

	cols := int(float64(w)/spacing) + 2
	rows := int(float64(h)/spacing) + 2
	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < cols; gx++ {
			cx := float64(gx)*spacing + jitterAmp*hashSigned(int32(gx), int32(gy), seed)
			cy := float64(gy)*spacing + jitterAmp*hashSigned(int32(gx), int32(gy), seed^0x9e3779b9)
			r := avg / 2 * (1 + sizeJitter*hashSigned(int32(gx), int32(gy), seed^0x85ebca6b))
			if r < 0.5 {
				r = 0.5
			}
			fillDot(out, w, h, cx, cy, r, style.Ink)
		}
	}
}

// stochasticDots scatters a dot count proportional to area times the
// density bucket's rate at uniform-random positions, with sizes drawn from
// the configured range and modulated by contrast and a hashed noise term.
func stochasticDots(out []uint8, w, h int, style HalftoneStyle, dotMin, dotMax, contrast, noiseBlend float64, seed uint32) {
	count := int(float64(w) * float64(h) * densityRate(style.Density))
	if count < 1 {
		count = 1
	}

	for i := 0; i < count; i++ {
		cx := hash01(int32(i), 0, seed) * float64(w)
		cy := hash01(int32(i), 1, seed) * float64(h)
		base := dotMin + hash01(int32(i), 2, seed)*(dotMax-dotMin)
		mod := 1 + 0.4*contrast*hashSigned(int32(i), 3, seed) +
			0.4*noiseBlend*hashSigned(int32(i), 4, seed)
		r := base / 2 * mod
		if r < 0.5 {
			r = 0.5
		}
		fillDot(out, w, h, cx, cy, r, style.Ink)
	}
}

// fillDot rasterizes one anti-aliased filled circle of ink.
func fillDot(out []uint8, w, h int, cx, cy, r float64, ink [3]float64) {
	x0 := int(math.Floor(cx - r - 1))
	x1 := int(math.Ceil(cx + r + 1))
	y0 := int(math.Floor(cy - r - 1))
	y1 := int(math.Ceil(cy + r + 1))

	for y := y0; y <= y1; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= w {
				continue
			}
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := math.Sqrt(dx*dx + dy*dy)
			cov := clamp01(r - d + 0.5)
			if cov <= 0 {
				continue
			}
			i := (y*w + x) * 4
			out[i+0] = clampByte(float64(out[i+0])*(1-cov) + ink[0]*255*cov)
			out[i+1] = clampByte(float64(out[i+1])*(1-cov) + ink[1]*255*cov)
			out[i+2] = clampByte(float64(out[i+2])*(1-cov) + ink[2]*255*cov)
		}
	}
}
