package drawable

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/drawable/shapes"
)

// Style selects how painted geometry is rendered.
type Style int

const (
	// StyleFill fills geometry.
	StyleFill Style = iota
	// StyleStroke strokes geometry outlines.
	StyleStroke
	// StyleFillStroke fills and then strokes.
	StyleFillStroke
)

// ShadowLayer describes a drop shadow attached to a paint. The host canvas
// has no blur primitive, so the layer is carried as paint state: it marks the
// paint as visually active even at zero alpha, which keeps the draw decision
// faithful for callers that composite shadows themselves.
type ShadowLayer struct {
	Radius float64
	DX     float64
	DY     float64
	Color  ARGB
}

// Paint holds the styling applied when a drawable renders geometry: a solid
// color or shader brush, an optional color filter and transfer mode, stroke
// settings, and rendering flags. The alpha byte of the color is the paint
// alpha; drawables modulate it transiently while drawing.
type Paint struct {
	color       ARGB
	shader      gg.Brush
	filter      ColorFilter
	blend       *BlendMode
	shadow      *ShadowLayer
	style       Style
	strokeWidth float64
	dither      bool
	antialias   bool
}

// NewPaint creates an antialiased paint with an opaque black color, fill
// style, and a stroke width of 1.
func NewPaint() *Paint {
	return &Paint{
		color:       0xFF000000,
		strokeWidth: 1,
		antialias:   true,
	}
}

// Clone creates a copy of the paint. The shader and color filter references
// are shared; everything else is copied by value.
func (p *Paint) Clone() *Paint {
	c := *p
	if p.blend != nil {
		b := *p.blend
		c.blend = &b
	}
	if p.shadow != nil {
		s := *p.shadow
		c.shadow = &s
	}
	return &c
}

// Color returns the paint color.
func (p *Paint) Color() ARGB { return p.color }

// SetColor replaces the paint color, including its alpha byte.
func (p *Paint) SetColor(c ARGB) { p.color = c }

// Alpha returns the paint alpha in [0, 255].
func (p *Paint) Alpha() int { return int(p.color.A()) }

// SetAlpha replaces the alpha byte of the paint color, clamped to [0, 255].
func (p *Paint) SetAlpha(a int) {
	if a < 0 {
		a = 0
	}
	if a > 255 {
		a = 255
	}
	p.color = p.color.WithAlpha(uint8(a))
}

// Shader returns the installed shader brush, or nil.
func (p *Paint) Shader() gg.Brush { return p.shader }

// SetShader installs a shader brush. When set, the shader supplies the paint
// color per position and the paint alpha modulates its output. Nil removes
// the shader.
func (p *Paint) SetShader(b gg.Brush) { p.shader = b }

// ColorFilter returns the installed color filter, or nil.
func (p *Paint) ColorFilter() ColorFilter { return p.filter }

// SetColorFilter installs a color filter. Nil removes it.
func (p *Paint) SetColorFilter(f ColorFilter) { p.filter = f }

// Blend returns the transfer mode, or nil for default source-over.
func (p *Paint) Blend() *BlendMode { return p.blend }

// SetBlend sets the transfer mode. Nil restores the default source-over.
func (p *Paint) SetBlend(m *BlendMode) {
	if m == nil {
		p.blend = nil
		return
	}
	b := *m
	p.blend = &b
}

// Dither returns the dithering flag.
func (p *Paint) Dither() bool { return p.dither }

// SetDither sets the dithering flag. The flag is carried for callers whose
// output targets benefit from it; the gg software renderer ignores it.
func (p *Paint) SetDither(d bool) { p.dither = d }

// Antialias returns the antialiasing flag.
func (p *Paint) Antialias() bool { return p.antialias }

// SetAntialias sets the antialiasing flag.
func (p *Paint) SetAntialias(aa bool) { p.antialias = aa }

// Style returns the paint style.
func (p *Paint) Style() Style { return p.style }

// SetStyle sets the paint style.
func (p *Paint) SetStyle(s Style) { p.style = s }

// StrokeWidth returns the stroke width.
func (p *Paint) StrokeWidth() float64 { return p.strokeWidth }

// SetStrokeWidth sets the stroke width.
func (p *Paint) SetStrokeWidth(w float64) { p.strokeWidth = w }

// Shadow returns the shadow layer, or nil.
func (p *Paint) Shadow() *ShadowLayer { return p.shadow }

// SetShadowLayer attaches a shadow layer to the paint.
func (p *Paint) SetShadowLayer(radius, dx, dy float64, color ARGB) {
	p.shadow = &ShadowLayer{Radius: radius, DX: dx, DY: dy, Color: color}
}

// ClearShadowLayer removes the shadow layer.
func (p *Paint) ClearShadowLayer() { p.shadow = nil }

// HasShadow reports whether a shadow layer is attached.
func (p *Paint) HasShadow() bool { return p.shadow != nil }

// op maps the paint style to a shapes paint operation.
func (p *Paint) op() shapes.Op {
	switch p.style {
	case StyleStroke:
		return shapes.OpStroke
	case StyleFillStroke:
		return shapes.OpFillStroke
	}
	return shapes.OpFill
}

// apply installs the paint's effective brushes and stroke settings on dc.
func (p *Paint) apply(dc shapes.Canvas) {
	b := p.effectiveBrush()
	dc.SetFillBrush(b)
	dc.SetStrokeBrush(b)
	dc.SetLineWidth(p.strokeWidth)
}

// effectiveBrush resolves the brush actually drawn with: the shader output
// modulated by the paint alpha, or the solid paint color, with the color
// filter applied last in both cases.
func (p *Paint) effectiveBrush() gg.Brush {
	if p.shader == nil {
		c := p.color.Color()
		if p.filter != nil {
			c = p.filter.Filter(c)
		}
		return gg.Solid(c)
	}

	shader := p.shader
	filter := p.filter
	alpha := float64(p.Alpha()) / 255
	return gg.CustomBrush{
		Func: func(x, y float64) gg.RGBA {
			c := shader.ColorAt(x, y)
			c.A *= alpha
			if filter != nil {
				c = filter.Filter(c)
			}
			return c
		},
		Name: "paint",
	}
}
