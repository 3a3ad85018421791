package strata

import (
	"log/slog"
)

// fallbackRenderer wraps a primary renderer and degrades permanently to
// the static renderer the first time the primary panics. Degradation is
// one-way: once static, every later frame stays static.
type fallbackRenderer struct {
	primary  Renderer
	static   *StaticRenderer
	degraded bool
}

func (f *fallbackRenderer) Render(comp *Composition) {
	if f.degraded {
		f.static.Render(comp)
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			Logger().Warn("renderer failed, degrading to static fallback",
				slog.Any("panic", rec))
			f.primary.Destroy()
			f.degraded = true
			f.static.Render(comp)
		}
	}()
	f.primary.Render(comp)
}

func (f *fallbackRenderer) Resize(width, height int) {
	if f.degraded {
		f.static.Resize(width, height)
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			Logger().Warn("renderer failed during resize, degrading to static fallback",
				slog.Any("panic", rec))
			f.primary.Destroy()
			f.degraded = true
			f.static.Resize(width, height)
		}
	}()
	f.primary.Resize(width, height)
}

func (f *fallbackRenderer) Destroy() {
	if !f.degraded {
		f.primary.Destroy()
	}
	f.static.Destroy()
}

// Mount probes the surface once and selects the best renderer it
// supports: the full compositor on capable devices, the constrained
// compositor where native filtering cannot be trusted or the device tier
// is low, and the static renderer when neither can be constructed. The
// returned renderer degrades permanently to static output if a render
// panics; it never propagates the panic to the caller.
func Mount(surface Surface, opts ...Option) Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	caps := Probe(surface, o.profile)
	if o.caps != nil {
		caps = *o.caps
	}
	// Downstream constructors must agree with the probe above.
	withCaps := append(opts[:len(opts):len(opts)], WithCapabilities(caps))

	var primary Renderer
	var err error
	if caps.Constrained {
		primary, err = NewConstrainedCompositor(surface, withCaps...)
	} else {
		primary, err = NewCompositor(surface, withCaps...)
	}
	if err != nil {
		Logger().Warn("compositor unavailable, mounting static renderer",
			slog.Bool("constrained", caps.Constrained),
			slog.Any("error", err))
		return NewStaticRenderer(surface)
	}

	Logger().Debug("renderer mounted",
		slog.String("tier", caps.Tier.String()),
		slog.Bool("constrained", caps.Constrained),
		slog.Bool("nativeFilter", caps.NativeFilter))
	return &fallbackRenderer{
		primary: primary,
		static:  NewStaticRenderer(surface),
	}
}
