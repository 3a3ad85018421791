// Package strata renders layered gradient compositions to pixel surfaces.
//
// # Overview
//
// strata is a pure Go CPU compositing pipeline. A Composition describes a
// canvas, an ordered stack of gradient layers (color stops, affine transform,
// blend mode, opacity, per-layer effects) and a set of global post-process
// effects (blur, grain, noise, halftone, corrugated metal, procedural
// textures). A renderer walks the composition and produces pixels on a
// Surface, fully overwriting the previous frame on every call.
//
// # Quick Start
//
//	import "github.com/strata-gfx/strata"
//
//	surface := strata.NewImageSurface(800, 600)
//	r, err := strata.Mount(surface)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Destroy()
//
//	r.Render(strata.DefaultComposition())
//
//	pm, _ := surface.RasterContext()
//	_ = pm.SavePNG("out.png")
//
// # Renderers
//
// Three variants implement the same Renderer interface:
//
//   - Compositor: the full-fidelity pipeline.
//   - ConstrainedCompositor: capability-adaptive variant for environments
//     without reliable native filtering. Blur always reads a fully
//     composited offscreen buffer, and effect strength is capped by the
//     device tier.
//   - StaticRenderer: effect-free terminal fallback.
//
// Mount probes the surface once, selects a variant, and wraps it in a
// failure boundary that permanently degrades to the static fallback if the
// selected renderer fails to construct or panics during a render.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Layer
// transforms apply translate → rotate → scale around the canvas center.
// Rotation in the composition model is in degrees, matching the document
// format produced by editors.
package strata

// Version is the current version of the library.
const Version = "0.9.0"
