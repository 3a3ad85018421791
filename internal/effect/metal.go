package effect

import "math"

// Lighting selects the macro-shading gradient of the metal effect.
type Lighting int

const (
	// LightingDiagonal shades light-to-dark across the canvas diagonal.
	LightingDiagonal Lighting = iota
	// LightingHorizontal shades strongly across the horizontal axis.
	LightingHorizontal
)

// MetalParams configures the corrugated-metal ridge field.
type MetalParams struct {
	Distortion     float64  // [0, 1]: secondary wave amplitude (wavy ridges)
	MacroIntensity float64  // [0, 1]: strength of the directional shading
	Lighting       Lighting // macro-shading gradient style
	MicroContrast  float64  // [0, 1]: highlight-sharpening exponent
	RidgeDensity   float64  // ridges across the short canvas edge
	Angle          float64  // ridge rotation in degrees
}

// Metal renders a corrugated ridge field into a fresh opaque grayscale
// buffer. Per pixel: the coordinate frame is rotated by the configured
// angle, a sinusoid along the rotated axis forms ridges, a secondary
// sinusoid along the ridge axis perturbs their phase so ridges wave
// rather than run straight, the result is raised to a contrast power to
// sharpen highlights, and finally multiplied by a macro-shading gradient
// simulating directional lighting across the whole field.
func Metal(w, h int, p MetalParams) []uint8 {
	if w < 1 || h < 1 {
		return nil
	}

	density := p.RidgeDensity
	if density <= 0 {
		density = 12
	}
	short := math.Min(float64(w), float64(h))
	freq := density * 2 * math.Pi / short

	rad := p.Angle * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	distortion := clamp01(p.Distortion)
	waveAmp := distortion * short / density // grows with distortion
	waveFreq := 2 * math.Pi / (short / 2)

	exponent := 1 + clamp01(p.MicroContrast)*4
	macro := clamp01(p.MacroIntensity)

	out := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx := float64(x)
			fy := float64(y)

			// Rotated coordinates: u across ridges, v along them.
			u := fx*cos + fy*sin
			v := -fx*sin + fy*cos

			wave := math.Sin(v*waveFreq) * waveAmp
			ridge := 0.5 + 0.5*math.Sin((u+wave)*freq)
			ridge = math.Pow(ridge, exponent)

			var shade float64
			if p.Lighting == LightingHorizontal {
				shade = fx / float64(w)
			} else {
				shade = (fx/float64(w) + fy/float64(h)) / 2
			}
			ridge *= 1 - macro*shade

			g := clampByte(ridge * 255)
			i := (y*w + x) * 4
			out[i+0] = g
			out[i+1] = g
			out[i+2] = g
			out[i+3] = 255
		}
	}
	return out
}
