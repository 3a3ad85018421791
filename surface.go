package strata

import "errors"

// ErrNoRasterContext indicates a surface could not provide a 2D raster
// context. Renderer constructors fail fast with this error; the Mount
// failure boundary exists to catch it.
var ErrNoRasterContext = errors.New("strata: no raster context")

// Surface is a drawing target with mutable dimensions and an obtainable
// 2D raster context. Renderers own exactly one surface for their
// lifetime and draw into the pixmap returned by RasterContext.
type Surface interface {
	// Size returns the current surface dimensions in physical pixels.
	Size() (width, height int)

	// SetSize changes the surface dimensions. Existing pixel content is
	// discarded; the next RasterContext reflects the new dimensions.
	SetSize(width, height int)

	// RasterContext returns the surface's pixel buffer, or
	// ErrNoRasterContext if a 2D context cannot be obtained.
	RasterContext() (*Pixmap, error)
}

// FilterSurface is an optional Surface extension for targets whose raster
// context honors a native per-draw blur filter. The capability probe sets
// a filter on a scratch context and checks whether the value is retained;
// environments with unreliable filtering report it dropped.
type FilterSurface interface {
	Surface

	// SetFilter requests a blur filter for subsequent draws and reports
	// whether the context retained the value.
	SetFilter(blurPx float64) bool

	// Filter returns the currently retained filter value, 0 if none.
	Filter() float64
}

// ImageSurface is the default in-memory Surface backed by a Pixmap.
// It retains filter state, so it probes as supporting native filtering.
type ImageSurface struct {
	pm     *Pixmap
	filter float64
}

// NewImageSurface creates an in-memory surface with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{pm: NewPixmap(width, height)}
}

// Size returns the current surface dimensions.
func (s *ImageSurface) Size() (int, int) {
	return s.pm.Width(), s.pm.Height()
}

// SetSize reallocates the backing pixmap, discarding existing content.
func (s *ImageSurface) SetSize(width, height int) {
	if width == s.pm.Width() && height == s.pm.Height() {
		return
	}
	s.pm = NewPixmap(width, height)
}

// RasterContext returns the backing pixmap.
func (s *ImageSurface) RasterContext() (*Pixmap, error) {
	if s.pm == nil {
		return nil, ErrNoRasterContext
	}
	return s.pm, nil
}

// SetFilter retains the requested blur filter value.
func (s *ImageSurface) SetFilter(blurPx float64) bool {
	s.filter = blurPx
	return true
}

// Filter returns the retained filter value.
func (s *ImageSurface) Filter() float64 {
	return s.filter
}
