package effect

import (
	"bytes"
	"testing"
)

func TestGrainDimensionsAndOpacity(t *testing.T) {
	buf := Grain(40, 30, 0.8, 2, 1, 5)
	if len(buf) != 40*30*4 {
		t.Fatalf("len = %d, want %d", len(buf), 40*30*4)
	}
	for i := 0; i < len(buf); i += 4 {
		if buf[i+3] != 255 {
			t.Fatalf("pixel %d alpha = %d, want opaque", i/4, buf[i+3])
		}
		if buf[i] != buf[i+1] || buf[i+1] != buf[i+2] {
			t.Fatalf("pixel %d not gray: (%d, %d, %d)", i/4, buf[i], buf[i+1], buf[i+2])
		}
	}
}

func TestGrainCenteredOnMidGray(t *testing.T) {
	// amount 0 collapses every granule to exactly 128.
	buf := Grain(16, 16, 0, 1, 1, 5)
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != 128 {
			t.Fatalf("pixel %d = %d, want 128 at zero amount", i/4, buf[i])
		}
	}

	// At amount 1 the excursion stays within 128±127.
	buf = Grain(16, 16, 1, 1, 1, 5)
	lo, hi := buf[0], buf[0]
	for i := 0; i < len(buf); i += 4 {
		if buf[i] < lo {
			lo = buf[i]
		}
		if buf[i] > hi {
			hi = buf[i]
		}
	}
	if lo == hi {
		t.Error("full-amount grain has no variation")
	}
}

func TestGrainDeterministic(t *testing.T) {
	a := Grain(24, 24, 0.5, 2, 1, 9)
	b := Grain(24, 24, 0.5, 2, 1, 9)
	if !bytes.Equal(a, b) {
		t.Error("same seed generated different grain")
	}
	c := Grain(24, 24, 0.5, 2, 1, 10)
	if bytes.Equal(a, c) {
		t.Error("different seed generated identical grain")
	}
}

func TestGrainDivisorCoarsens(t *testing.T) {
	// A higher divisor generates at lower resolution, so upscaled granules
	// repeat across adjacent pixels.
	buf := Grain(32, 32, 1, 1, 4, 3)
	if len(buf) != 32*32*4 {
		t.Fatalf("len = %d", len(buf))
	}
	// With step 4, pixels 0 and 1 in a row come from the same source cell.
	if buf[0] != buf[4] {
		t.Errorf("adjacent pixels differ (%d vs %d) despite divisor 4", buf[0], buf[4])
	}
}

func TestTileableGrainSeamless(t *testing.T) {
	// With edge 4 and the 2px cell, the lattice has two columns and the
	// pixel at x=3 interpolates halfway between lattice column 1 and the
	// wrapped column 0. Columns 0 and 2 sit exactly on lattice points, so
	// the final pixel of each lattice-aligned row must land midway between
	// its neighbors, proving the field wraps instead of hashing off the
	// tile edge. amount 0.5 keeps values clear of the clamp.
	const edge = 4
	buf := TileableGrain(edge, 0.5, 21)
	if len(buf) != edge*edge*4 {
		t.Fatalf("len = %d", len(buf))
	}

	for _, y := range []int{0, 2} {
		row := func(x int) float64 { return float64(buf[(y*edge+x)*4]) }
		want := (row(0) + row(2)) / 2
		if got := row(3); got < want-2 || got > want+2 {
			t.Errorf("row %d: seam pixel = %v, want midpoint %v of wrapped neighbors", y, got, want)
		}
	}
}

func TestTileableGrainDeterministic(t *testing.T) {
	a := TileableGrain(32, 0.5, 4)
	b := TileableGrain(32, 0.5, 4)
	if !bytes.Equal(a, b) {
		t.Error("same seed generated different tile")
	}
}
