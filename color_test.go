package strata

import (
	"math"
	"testing"
)

const colorEpsilon = 0.005

func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"6-digit with hash", "#22c55e", RGBA{0x22 / 255.0, 0xc5 / 255.0, 0x5e / 255.0, 1}},
		{"6-digit without hash", "ff0000", RGBA{1, 0, 0, 1}},
		{"3-digit shorthand", "#fff", White},
		{"3-digit expands by 17", "#abc", RGBA{0xaa / 255.0, 0xbb / 255.0, 0xcc / 255.0, 1}},
		{"4-digit with alpha", "#f00a", RGBA{1, 0, 0, 0xaa / 255.0}},
		{"8-digit with alpha", "#ff000080", RGBA{1, 0, 0, 0x80 / 255.0}},
		{"uppercase", "#FF00FF", RGBA{1, 0, 1, 1}},
		{"near black", "#0a0a0a", RGBA{10 / 255.0, 10 / 255.0, 10 / 255.0, 1}},
		{"empty is opaque black", "", RGBA{0, 0, 0, 1}},
		{"wrong length is opaque black", "#12345", RGBA{0, 0, 0, 1}},
		{"garbage is opaque black", "#zzzzz", RGBA{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorsEqual(got, tt.want, colorEpsilon) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a := RGBA{0, 0, 0, 0}
	b := RGBA{1, 1, 1, 1}

	if got := a.Lerp(b, 0); !colorsEqual(got, a, colorEpsilon) {
		t.Errorf("Lerp t=0 = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); !colorsEqual(got, b, colorEpsilon) {
		t.Errorf("Lerp t=1 = %+v, want %+v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if !colorsEqual(mid, RGBA{0.5, 0.5, 0.5, 0.5}, colorEpsilon) {
		t.Errorf("Lerp t=0.5 = %+v", mid)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)
	got := c.WithAlpha(0.25)
	if got.R != 0.2 || got.G != 0.4 || got.B != 0.6 || got.A != 0.25 {
		t.Errorf("WithAlpha = %+v", got)
	}
}
