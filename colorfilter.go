package drawable

import "github.com/gogpu/gg"

// ColorFilter transforms every color a paint produces before it reaches the
// canvas. Filters installed explicitly on a paint take precedence over a
// drawable's tint filter.
type ColorFilter interface {
	// Filter maps a painted color to the color actually drawn.
	Filter(c gg.RGBA) gg.RGBA
}

// BlendColorFilter is a ColorFilter that composites a fixed color onto the
// painted color with a Porter-Duff operator. The filter color acts as the
// source and the painted color as the destination, so BlendSrcIn replaces
// the painted color while keeping its alpha coverage.
//
// The color and mode are mutable in place; tint resolution updates the color
// on state-set transitions without reallocating the filter.
type BlendColorFilter struct {
	color ARGB
	mode  BlendMode
}

// NewBlendColorFilter creates a filter composing color under mode.
func NewBlendColorFilter(color ARGB, mode BlendMode) *BlendColorFilter {
	return &BlendColorFilter{color: color, mode: mode}
}

// Color returns the filter color.
func (f *BlendColorFilter) Color() ARGB { return f.color }

// SetColor replaces the filter color.
func (f *BlendColorFilter) SetColor(c ARGB) { f.color = c }

// Mode returns the compositing operator.
func (f *BlendColorFilter) Mode() BlendMode { return f.mode }

// SetMode replaces the compositing operator.
func (f *BlendColorFilter) SetMode(m BlendMode) { f.mode = m }

// Filter implements ColorFilter.
func (f *BlendColorFilter) Filter(c gg.RGBA) gg.RGBA {
	return f.mode.Compose(f.color.Color(), c)
}
