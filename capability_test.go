package strata

import "testing"

func TestClassifyTier(t *testing.T) {
	tests := []struct {
		name    string
		profile DeviceProfile
		want    Tier
	}{
		{"small phone", DeviceProfile{ScreenWidth: 375, ScreenHeight: 667, PixelRatio: 2}, TierLow},
		{"desktop 1080p", DeviceProfile{ScreenWidth: 1920, ScreenHeight: 1080, PixelRatio: 1}, TierMedium},
		{"desktop 4k", DeviceProfile{ScreenWidth: 3840, ScreenHeight: 2160, PixelRatio: 1}, TierHigh},
		{"retina laptop", DeviceProfile{ScreenWidth: 1440, ScreenHeight: 900, PixelRatio: 2}, TierHigh},
		{"dense small screen", DeviceProfile{ScreenWidth: 500, ScreenHeight: 900, PixelRatio: 3}, TierMedium},
		{"zero profile", DeviceProfile{}, TierMedium},
		{"missing ratio defaults to one", DeviceProfile{ScreenWidth: 800, ScreenHeight: 600}, TierLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyTier(tt.profile); got != tt.want {
				t.Errorf("classifyTier(%+v) = %v, want %v", tt.profile, got, tt.want)
			}
		})
	}
}

func TestTierCaps(t *testing.T) {
	low := TierLow.Caps()
	med := TierMedium.Caps()
	high := TierHigh.Caps()

	if !(low.MaxBlurStrength < med.MaxBlurStrength && med.MaxBlurStrength < high.MaxBlurStrength) {
		t.Error("blur ceilings not increasing with tier")
	}
	if !(low.GrainDivisor > med.GrainDivisor && med.GrainDivisor >= high.GrainDivisor) {
		t.Error("grain divisors not decreasing with tier")
	}
	if low.ComplexBlending {
		t.Error("low tier permits complex blending")
	}
	if !high.ComplexBlending {
		t.Error("high tier forbids complex blending")
	}
}

func TestProbe(t *testing.T) {
	desktop := DefaultDeviceProfile()

	t.Run("filter-retaining surface", func(t *testing.T) {
		caps := Probe(NewImageSurface(8, 8), desktop)
		if !caps.NativeFilter {
			t.Error("filter-retaining surface probed as unsupported")
		}
		if caps.Constrained {
			t.Error("desktop profile with native filter should not be constrained")
		}
	})

	t.Run("plain surface has no filter", func(t *testing.T) {
		caps := Probe(&brokenSurface{}, desktop)
		if caps.NativeFilter {
			t.Error("surface without filter support probed as supported")
		}
		if !caps.Constrained {
			t.Error("missing native filter must force the constrained variant")
		}
	})

	t.Run("mobile webkit is never trusted", func(t *testing.T) {
		profile := desktop
		profile.MobileWebKit = true
		caps := Probe(NewImageSurface(8, 8), profile)
		if caps.NativeFilter {
			t.Error("mobile webkit must report no native filter despite probe success")
		}
		if !caps.Constrained {
			t.Error("mobile webkit must be constrained")
		}
	})

	t.Run("low tier constrains even with filter", func(t *testing.T) {
		profile := DeviceProfile{ScreenWidth: 800, ScreenHeight: 600, PixelRatio: 1}
		caps := Probe(NewImageSurface(8, 8), profile)
		if caps.Tier != TierLow {
			t.Fatalf("tier = %v, want low", caps.Tier)
		}
		if !caps.Constrained {
			t.Error("low tier must be constrained")
		}
	})
}

func TestProbeResetsFilter(t *testing.T) {
	s := NewImageSurface(8, 8)
	Probe(s, DefaultDeviceProfile())
	if s.Filter() != 0 {
		t.Errorf("probe left filter at %v, want reset to 0", s.Filter())
	}
}

func TestImageSurface(t *testing.T) {
	s := NewImageSurface(10, 6)
	if w, h := s.Size(); w != 10 || h != 6 {
		t.Fatalf("size = %dx%d", w, h)
	}

	pm, err := s.RasterContext()
	if err != nil {
		t.Fatal(err)
	}
	pm.SetPixel(3, 3, White)

	// Resizing discards content.
	s.SetSize(20, 12)
	pm, err = s.RasterContext()
	if err != nil {
		t.Fatal(err)
	}
	if w, h := s.Size(); w != 20 || h != 12 {
		t.Fatalf("size after SetSize = %dx%d", w, h)
	}
	if got := pm.GetPixel(3, 3); got.A != 0 {
		t.Error("content survived resize")
	}

	// Same-size SetSize keeps the buffer.
	pm.SetPixel(1, 1, White)
	s.SetSize(20, 12)
	pm, _ = s.RasterContext()
	if got := pm.GetPixel(1, 1); got.A == 0 {
		t.Error("same-size SetSize discarded content")
	}
}
