package strata

import (
	"math"
	"testing"
)

const matrixEpsilon = 1e-9

func pointsClose(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestMatrixIdentity(t *testing.T) {
	p := Pt(3, 7)
	if got := Identity().TransformPoint(p); !pointsClose(got, p, matrixEpsilon) {
		t.Errorf("identity moved point: %+v", got)
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Translate(10, -4).Multiply(Rotate(0.7)).Multiply(Scale(2.5))
	inv := m.Invert()

	p := Pt(11, -3)
	back := inv.TransformPoint(m.TransformPoint(p))
	if !pointsClose(back, p, 1e-6) {
		t.Errorf("invert round trip = %+v, want %+v", back, p)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	singular := Matrix{A: 0, B: 0, C: 5, D: 0, E: 0, F: 5}
	if got := singular.Invert(); got != Identity() {
		t.Errorf("singular inverse = %+v, want identity", got)
	}
}

func TestLayerMatrix(t *testing.T) {
	const w, h = 200.0, 100.0
	center := Pt(w/2, h/2)

	tests := []struct {
		name      string
		transform LayerTransform
		in        Point
		want      Point
	}{
		{
			name:      "neutral transform is identity",
			transform: LayerTransform{Scale: 1},
			in:        Pt(30, 40),
			want:      Pt(30, 40),
		},
		{
			name:      "zero scale defaults to one",
			transform: LayerTransform{},
			in:        Pt(30, 40),
			want:      Pt(30, 40),
		},
		{
			name:      "center is fixed under rotation and scale",
			transform: LayerTransform{Scale: 1.7, Rotation: 123},
			in:        center,
			want:      center,
		},
		{
			name:      "fractional offset moves by half-extent",
			transform: LayerTransform{X: 1, Y: -1, Scale: 1},
			in:        center,
			want:      Pt(w/2+w/2, h/2-h/2),
		},
		{
			name:      "scale doubles distance from center",
			transform: LayerTransform{Scale: 2},
			in:        Pt(w/2+10, h/2),
			want:      Pt(w/2+20, h/2),
		},
		{
			name:      "rotation by 90 degrees",
			transform: LayerTransform{Scale: 1, Rotation: 90},
			in:        Pt(w/2+10, h/2),
			want:      Pt(w/2, h/2+10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := layerMatrix(tt.transform, w, h)
			got := m.TransformPoint(tt.in)
			if !pointsClose(got, tt.want, 1e-6) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
