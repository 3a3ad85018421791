package effect

import "math"

// Algorithm selects a noise generator.
type Algorithm int

const (
	// AlgorithmRandom is pure uniform per-pixel noise.
	AlgorithmRandom Algorithm = iota
	// AlgorithmValue is lattice noise: 4-corner bilinear interpolation of
	// hashed values with smoothstep weighting.
	AlgorithmValue
	// AlgorithmSimplex is triangular-lattice gradient noise with the
	// standard skew/unskew transform and corner contribution kernels.
	AlgorithmSimplex
)

// Sample evaluates the selected noise algorithm at (x, y).
// The result is in [-1, 1].
func Sample(alg Algorithm, x, y float64, seed uint32) float64 {
	switch alg {
	case AlgorithmValue:
		return valueNoise(x, y, seed)
	case AlgorithmSimplex:
		return simplexNoise(x, y, seed)
	default:
		return hashSigned(floorInt32(x), floorInt32(y), seed)
	}
}

// Perturb additively perturbs the RGB channels of a surface buffer with
// noise. intensity in [0, 1] scales a maximum excursion of ±64 levels.
// scale stretches the noise field; larger values produce coarser noise.
// Alpha is left untouched, and fully transparent pixels are skipped.
func Perturb(data []uint8, w, h int, alg Algorithm, intensity, scale float64, seed uint32) {
	if intensity <= 0 || w < 1 || h < 1 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	amp := clamp01(intensity) * 64

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			if data[i+3] == 0 {
				continue
			}
			n := Sample(alg, float64(x)/scale, float64(y)/scale, seed)
			d := n * amp
			data[i+0] = clampByte(float64(data[i+0]) + d)
			data[i+1] = clampByte(float64(data[i+1]) + d)
			data[i+2] = clampByte(float64(data[i+2]) + d)
		}
	}
}

// valueNoise interpolates hashed lattice values bilinearly with
// smoothstep-weighted fractional coordinates.
func valueNoise(x, y float64, seed uint32) float64 {
	x0 := floorInt32(x)
	y0 := floorInt32(y)
	fx := x - float64(x0)
	fy := y - float64(y0)

	v00 := hashSigned(x0, y0, seed)
	v10 := hashSigned(x0+1, y0, seed)
	v01 := hashSigned(x0, y0+1, seed)
	v11 := hashSigned(x0+1, y0+1, seed)

	sx := smoothstep(fx)
	sy := smoothstep(fy)

	top := v00 + sx*(v10-v00)
	bottom := v01 + sx*(v11-v01)
	return top + sy*(bottom-top)
}

// Skew factors for 2D simplex noise: F = (√3-1)/2, G = (3-√3)/6.
var (
	simplexF = (math.Sqrt(3) - 1) / 2
	simplexG = (3 - math.Sqrt(3)) / 6
)

// simplexGrad returns a pseudo-random unit-ish gradient dotted with (dx, dy).
func simplexGrad(ix, iy int32, dx, dy float64, seed uint32) float64 {
	switch hash2(ix, iy, seed) & 7 {
	case 0:
		return dx + dy
	case 1:
		return -dx + dy
	case 2:
		return dx - dy
	case 3:
		return -dx - dy
	case 4:
		return dx
	case 5:
		return -dx
	case 6:
		return dy
	default:
		return -dy
	}
}

// simplexNoise evaluates 2D simplex-style noise: skew into the triangular
// lattice, find the containing simplex, and sum the three corner kernels
// (0.5 - d²)⁴ · grad·d.
func simplexNoise(x, y float64, seed uint32) float64 {
	s := (x + y) * simplexF
	i := floorInt32(x + s)
	j := floorInt32(y + s)

	t := float64(i+j) * simplexG
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Which triangle of the skewed cell are we in?
	var i1, j1 int32
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + simplexG
	y1 := y0 - float64(j1) + simplexG
	x2 := x0 - 1 + 2*simplexG
	y2 := y0 - 1 + 2*simplexG

	var total float64
	corner := func(ix, iy int32, dx, dy float64) {
		f := 0.5 - dx*dx - dy*dy
		if f <= 0 {
			return
		}
		f *= f
		total += f * f * simplexGrad(ix, iy, dx, dy, seed)
	}
	corner(i, j, x0, y0)
	corner(i+i1, j+j1, x1, y1)
	corner(i+1, j+1, x2, y2)

	// Scale to roughly [-1, 1].
	n := total * 70
	if n > 1 {
		return 1
	}
	if n < -1 {
		return -1
	}
	return n
}
