package strata

// Renderer draws compositions onto an owned surface. Compositor,
// ConstrainedCompositor, and StaticRenderer all satisfy it; the variant
// is selected once at mount time from the capability descriptor, never
// by runtime type checks in the render path.
//
// Calls are synchronous and must be serialized by the caller; nothing
// inside blocks or yields, so no reentrancy guard exists.
type Renderer interface {
	// Render draws the full composition, completely overwriting the
	// previous frame. Safe to call at arbitrary rate.
	Render(comp *Composition)

	// Resize updates the surface dimensions, invalidates every cached
	// buffer tied to the old dimensions, and re-renders the most recent
	// composition if one exists.
	Resize(width, height int)

	// Destroy cancels pending scheduled work. Idempotent; safe when no
	// work is pending.
	Destroy()
}
