package blur

import (
	"bytes"
	"testing"
)

// uniformBuffer builds a w×h RGBA buffer filled with one pixel value.
func uniformBuffer(w, h int, r, g, b, a uint8) []uint8 {
	buf := make([]uint8, w*h*4)
	for i := 0; i < len(buf); i += 4 {
		buf[i+0] = r
		buf[i+1] = g
		buf[i+2] = b
		buf[i+3] = a
	}
	return buf
}

// impulseBuffer builds an opaque black buffer with one white pixel.
func impulseBuffer(w, h, px, py int) []uint8 {
	buf := uniformBuffer(w, h, 0, 0, 0, 255)
	i := (py*w + px) * 4
	buf[i+0] = 255
	buf[i+1] = 255
	buf[i+2] = 255
	return buf
}

func TestBlurZeroStrengthIsIdentity(t *testing.T) {
	for _, native := range []bool{true, false} {
		e := New(native)
		src := impulseBuffer(16, 16, 8, 8)
		dst := make([]uint8, len(src))

		e.Blur(dst, src, 16, 16, 0)
		if !bytes.Equal(dst, src) {
			t.Errorf("native=%v: strength 0 modified pixels", native)
		}

		e.Blur(dst, src, 16, 16, -5)
		if !bytes.Equal(dst, src) {
			t.Errorf("native=%v: negative strength modified pixels", native)
		}
	}
}

func TestBlurUniformStaysUniform(t *testing.T) {
	// The edge-clamping padding must prevent any vignetting: blurring a
	// uniform surface yields the same uniform surface, corners included.
	for _, native := range []bool{true, false} {
		for _, strength := range []float64{1, 8, 30, 100} {
			e := New(native)
			src := uniformBuffer(32, 24, 90, 140, 200, 255)
			dst := make([]uint8, len(src))
			e.Blur(dst, src, 32, 24, strength)

			for i := 0; i < len(dst); i += 4 {
				if diff8(dst[i+0], 90) > 1 || diff8(dst[i+1], 140) > 1 ||
					diff8(dst[i+2], 200) > 1 || diff8(dst[i+3], 255) > 1 {
					t.Fatalf("native=%v strength=%v: pixel %d = (%d,%d,%d,%d), want uniform (90,140,200,255)",
						native, strength, i/4, dst[i], dst[i+1], dst[i+2], dst[i+3])
				}
			}
		}
	}
}

func TestBlurSpreadsImpulse(t *testing.T) {
	e := New(false)
	src := impulseBuffer(17, 17, 8, 8)
	dst := make([]uint8, len(src))
	e.Blur(dst, src, 17, 17, 6)

	center := dst[(8*17+8)*4]
	neighbor := dst[(8*17+10)*4]
	if center == 255 {
		t.Error("center pixel unchanged, impulse not spread")
	}
	if neighbor == 0 {
		t.Error("neighbor pixel unchanged, impulse not spread")
	}
	if neighbor > center {
		t.Errorf("neighbor (%d) brighter than center (%d)", neighbor, center)
	}
}

func TestBlurDeterministic(t *testing.T) {
	src := impulseBuffer(20, 20, 5, 12)
	a := make([]uint8, len(src))
	b := make([]uint8, len(src))

	New(false).Blur(a, src, 20, 20, 10)
	New(false).Blur(b, src, 20, 20, 10)
	if !bytes.Equal(a, b) {
		t.Error("identical inputs blurred to different outputs")
	}
}

func TestBlurInPlaceMatchesBlur(t *testing.T) {
	src := impulseBuffer(12, 12, 3, 3)
	want := make([]uint8, len(src))
	e := New(false)
	e.Blur(want, src, 12, 12, 4)

	got := impulseBuffer(12, 12, 3, 3)
	New(false).BlurInPlace(got, 12, 12, 4)
	if !bytes.Equal(got, want) {
		t.Error("BlurInPlace differs from Blur")
	}
}

func TestBlurMismatchedBuffers(t *testing.T) {
	e := New(false)
	dst := make([]uint8, 16)
	src := make([]uint8, 64)
	e.Blur(dst, src, 4, 4, 5) // must not panic or write
	for i, v := range dst {
		if v != 0 {
			t.Fatalf("dst[%d] = %d, want untouched", i, v)
		}
	}
}

func TestBoxRadii(t *testing.T) {
	tests := []struct {
		name  string
		sigma float64
		n     int
	}{
		{"small sigma", 1, 3},
		{"medium sigma", 5, 3},
		{"large sigma", 30, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			radii := boxRadii(tt.sigma, tt.n)
			if len(radii) != tt.n {
				t.Fatalf("len = %d, want %d", len(radii), tt.n)
			}
			for i, r := range radii {
				if r < 0 {
					t.Errorf("radius %d = %d, want >= 0", i, r)
				}
			}
			// Radii are non-decreasing: smaller boxes run first.
			for i := 1; i < len(radii); i++ {
				if radii[i] < radii[i-1] {
					t.Errorf("radii %v not non-decreasing", radii)
				}
			}
		})
	}

	if got := boxRadii(0, 3); got != nil {
		t.Errorf("boxRadii(0, 3) = %v, want nil", got)
	}
}

func diff8(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
