package strata

// Tier is a coarse device-capability classification used to cap effect
// cost on constrained platforms.
type Tier int

const (
	// TierLow is small or heavily constrained hardware.
	TierLow Tier = iota
	// TierMedium is typical mobile hardware.
	TierMedium
	// TierHigh is desktop-class hardware.
	TierHigh
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierHigh:
		return "high"
	default:
		return "medium"
	}
}

// TierCaps are the quality ceilings associated with a tier.
type TierCaps struct {
	// MaxBlurStrength clamps every blur strength before use.
	MaxBlurStrength float64
	// GrainDivisor divides grain/noise generation resolution; lower
	// tiers generate at reduced resolution and scale up.
	GrainDivisor int
	// ComplexBlending permits the non-trivial blend modes; without it
	// layers composite with plain source-over.
	ComplexBlending bool
}

// Caps returns the quality ceilings for a tier.
func (t Tier) Caps() TierCaps {
	switch t {
	case TierLow:
		return TierCaps{MaxBlurStrength: 12, GrainDivisor: 4, ComplexBlending: false}
	case TierHigh:
		return TierCaps{MaxBlurStrength: 60, GrainDivisor: 1, ComplexBlending: true}
	default:
		return TierCaps{MaxBlurStrength: 25, GrainDivisor: 2, ComplexBlending: true}
	}
}

// DeviceProfile describes the host display. Finer-grained hardware
// introspection is not available in the target environments, so tier
// classification is a coarse heuristic over these values.
type DeviceProfile struct {
	// ScreenWidth and ScreenHeight are logical screen dimensions.
	ScreenWidth  int
	ScreenHeight int
	// PixelRatio is physical pixels per logical pixel.
	PixelRatio float64
	// MobileWebKit marks WebKit-class mobile browsers, which cannot be
	// trusted to honor per-draw filtering regardless of probe results.
	MobileWebKit bool
}

// DefaultDeviceProfile is a desktop-class profile used when the host
// provides no display information.
func DefaultDeviceProfile() DeviceProfile {
	return DeviceProfile{ScreenWidth: 1920, ScreenHeight: 1080, PixelRatio: 1}
}

// Capabilities is the immutable capability descriptor computed once at
// renderer construction. It is never re-evaluated per frame; reconstruct
// the renderer to re-probe.
type Capabilities struct {
	// NativeFilter reports whether the surface honors per-draw blur
	// filters.
	NativeFilter bool
	// Tier is the device performance classification.
	Tier Tier
	// Constrained selects the capability-adaptive renderer variant.
	Constrained bool
}

// Probe computes the capability descriptor for a surface and device
// profile. Filter support is detected by setting a blur filter on the
// surface's scratch context and checking the value was retained.
func Probe(surface Surface, profile DeviceProfile) Capabilities {
	caps := Capabilities{
		NativeFilter: probeFilter(surface),
		Tier:         classifyTier(profile),
	}
	if profile.MobileWebKit {
		caps.NativeFilter = false
	}
	caps.Constrained = !caps.NativeFilter || caps.Tier == TierLow
	return caps
}

// probeFilter round-trips a filter value through the surface.
func probeFilter(surface Surface) bool {
	fs, ok := surface.(FilterSurface)
	if !ok {
		return false
	}
	const probePx = 4
	if !fs.SetFilter(probePx) {
		return false
	}
	retained := fs.Filter() == probePx
	fs.SetFilter(0)
	return retained
}

// classifyTier derives a tier from screen dimensions and pixel density.
// Thresholds are deliberately coarse.
func classifyTier(p DeviceProfile) Tier {
	ratio := p.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	w := float64(p.ScreenWidth) * ratio
	h := float64(p.ScreenHeight) * ratio
	long := w
	if h > long {
		long = h
	}

	switch {
	case long <= 0:
		return TierMedium
	case long < 1500:
		return TierLow
	case long >= 2200 && ratio <= 2:
		return TierHigh
	default:
		return TierMedium
	}
}
