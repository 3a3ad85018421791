package strata

import "github.com/strata-gfx/strata/internal/assets"

// Option configures a renderer during construction.
// Use functional options to customize behavior.
//
// Example:
//
//	r, err := strata.Mount(surface,
//	    strata.WithDeviceProfile(profile),
//	    strata.WithSeed(7))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for renderer creation.
type rendererOptions struct {
	profile  DeviceProfile
	caps     *Capabilities
	assets   *assets.Store
	seed     uint32
	seedSet  bool
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		profile: DefaultDeviceProfile(),
	}
}

// WithDeviceProfile sets the display profile used for tier
// classification. Defaults to a desktop-class profile.
func WithDeviceProfile(p DeviceProfile) Option {
	return func(o *rendererOptions) {
		o.profile = p
	}
}

// WithCapabilities injects a pre-computed capability descriptor,
// bypassing the construction-time probe. Useful for tests and for hosts
// that probe once and construct many renderers.
func WithCapabilities(caps Capabilities) Option {
	return func(o *rendererOptions) {
		c := caps
		o.caps = &c
	}
}

// WithAssets attaches a texture asset store for the constrained path.
// If the store is not ready at render time, effects fall back to
// procedural generation.
func WithAssets(store *assets.Store) Option {
	return func(o *rendererOptions) {
		o.assets = store
	}
}

// WithSeed fixes the seed of the randomized effect stages (grain,
// noise), making repeated renders of an identical composition pixel
// stable. Without it, every render draws fresh grain.
func WithSeed(seed uint32) Option {
	return func(o *rendererOptions) {
		o.seed = seed
		o.seedSet = true
	}
}
