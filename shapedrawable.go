package drawable

import (
	"fmt"
	"image"

	"github.com/gogpu/drawable/shapes"
)

// ShapeDrawable renders a shapes.Shape inside its bounds, applying paint,
// tint, and alpha compositing. With no shape set it fills the bounds
// rectangle directly.
//
// Configuration lives in a constant-state block that instances created from
// the same prototype share; see Mutate for making an instance independent.
type ShapeDrawable struct {
	base

	state      *shapeState
	tintFilter *BlendColorFilter
	mutated    bool

	// DrawShapeFunc, when set, replaces the default shape rendering step.
	// The canvas origin is already translated to the bounds top-left.
	// Wrappers use it for layered or multi-pass effects.
	DrawShapeFunc func(s shapes.Shape, dc Canvas, p *Paint) error

	// ChildHandler, when set, is consulted first for child elements during
	// Inflate. Returning true marks the element as handled.
	ChildHandler func(res *Resources, name string, attrs []Attr) bool
}

var _ Drawable = (*ShapeDrawable)(nil)
var _ ConstantState = (*shapeState)(nil)

// shapeState is the constant-state block behind one or more ShapeDrawable
// instances. Prototype duplication copies the struct, so per-instance fields
// like alpha diverge, while the paint, shape, padding, tint, and shader
// factory stay shared by reference until Mutate.
type shapeState struct {
	paint           *Paint
	shape           shapes.Shape
	tint            *ColorList
	tintMode        BlendMode
	padding         *Insets
	intrinsicWidth  int
	intrinsicHeight int
	alpha           int
	shaderFactory   ShaderFactory
	configs         uint32
}

func newShapeState() *shapeState {
	return &shapeState{
		paint:    NewPaint(),
		tintMode: BlendSrcIn,
		alpha:    255,
	}
}

// NewDrawable implements ConstantState.
func (s *shapeState) NewDrawable() Drawable {
	return newShapeDrawable(s)
}

// ChangingConfigurations implements ConstantState.
func (s *shapeState) ChangingConfigurations() uint32 {
	return s.configs
}

// Option configures a ShapeDrawable during creation.
type Option func(*ShapeDrawable)

// WithShape sets the initial shape.
func WithShape(s shapes.Shape) Option {
	return func(d *ShapeDrawable) { d.state.shape = s }
}

// WithShaderFactory sets the initial shader factory.
func WithShaderFactory(f ShaderFactory) Option {
	return func(d *ShapeDrawable) { d.state.shaderFactory = f }
}

// WithIntrinsicSize sets the intrinsic width and height in pixels.
func WithIntrinsicSize(width, height int) Option {
	return func(d *ShapeDrawable) {
		d.state.intrinsicWidth = width
		d.state.intrinsicHeight = height
	}
}

// WithTint sets the initial tint color list, blended with the default
// src_in mode.
func WithTint(tint *ColorList) Option {
	return func(d *ShapeDrawable) { d.SetTint(tint) }
}

// NewShapeDrawable creates a drawable with a fresh constant state. Without a
// WithShape option it fills its bounds rectangle when drawn.
func NewShapeDrawable(opts ...Option) *ShapeDrawable {
	d := newShapeDrawable(nil)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// newShapeDrawable builds an instance over st, or over a fresh state when st
// is nil. Prototype instances derive their tint filter immediately when the
// shared state carries a tint; otherwise the filter stays nil until SetTint.
func newShapeDrawable(st *shapeState) *ShapeDrawable {
	d := &ShapeDrawable{}
	if st == nil {
		d.state = newShapeState()
		return d
	}

	shared := *st
	d.state = &shared
	if shared.tint != nil {
		color := shared.tint.ColorForState(d.stateSet, 0)
		d.tintFilter = NewBlendColorFilter(color, shared.tintMode)
	}
	return d
}

// Shape returns the drawable's shape, or nil.
func (d *ShapeDrawable) Shape() shapes.Shape {
	return d.state.shape
}

// SetShape replaces the drawable's shape and resizes it to the current
// bounds.
func (d *ShapeDrawable) SetShape(s shapes.Shape) {
	d.state.shape = s
	d.updateShape()
}

// ShaderFactory returns the shader factory, or nil.
func (d *ShapeDrawable) ShaderFactory() ShaderFactory {
	return d.state.shaderFactory
}

// SetShaderFactory installs a factory consulted on every bounds change for a
// shader sized to the new dimensions.
func (d *ShapeDrawable) SetShaderFactory(f ShaderFactory) {
	d.state.shaderFactory = f
}

// Paint returns the paint used to draw the shape. The paint is shared with
// every drawable created from the same constant state until Mutate.
func (d *ShapeDrawable) Paint() *Paint {
	return d.state.paint
}

// SetPadding sets the padding override in pixels. All zeros clears the
// override, so Padding reports no value.
func (d *ShapeDrawable) SetPadding(left, top, right, bottom int) {
	if left == 0 && top == 0 && right == 0 && bottom == 0 {
		d.state.padding = nil
	} else {
		if d.state.padding == nil {
			d.state.padding = &Insets{}
		}
		*d.state.padding = Insets{Left: left, Top: top, Right: right, Bottom: bottom}
	}
	d.invalidateSelf()
}

// SetPaddingInsets sets the padding override from an Insets value.
func (d *ShapeDrawable) SetPaddingInsets(in Insets) {
	d.SetPadding(in.Left, in.Top, in.Right, in.Bottom)
}

// Padding returns the padding override and whether one is set.
func (d *ShapeDrawable) Padding() (Insets, bool) {
	if d.state.padding == nil {
		return Insets{}, false
	}
	return *d.state.padding, true
}

// IntrinsicWidth returns the intrinsic width in pixels.
func (d *ShapeDrawable) IntrinsicWidth() int { return d.state.intrinsicWidth }

// SetIntrinsicWidth sets the intrinsic width in pixels.
func (d *ShapeDrawable) SetIntrinsicWidth(w int) {
	d.state.intrinsicWidth = w
	d.invalidateSelf()
}

// IntrinsicHeight returns the intrinsic height in pixels.
func (d *ShapeDrawable) IntrinsicHeight() int { return d.state.intrinsicHeight }

// SetIntrinsicHeight sets the intrinsic height in pixels.
func (d *ShapeDrawable) SetIntrinsicHeight(h int) {
	d.state.intrinsicHeight = h
	d.invalidateSelf()
}

// Alpha returns the drawable-level alpha in [0, 255].
func (d *ShapeDrawable) Alpha() int { return d.state.alpha }

// SetAlpha sets the drawable-level alpha. The paint color carries its own
// alpha; the two combine during drawing, so a 75% paint alpha (192) under a
// 50% drawable alpha (128) draws at 37.5% (96).
func (d *ShapeDrawable) SetAlpha(a int) {
	if a < 0 {
		a = 0
	}
	if a > 255 {
		a = 255
	}
	d.state.alpha = a
	d.invalidateSelf()
}

// Tint returns the tint color list, or nil.
func (d *ShapeDrawable) Tint() *ColorList { return d.state.tint }

// SetTint sets the tint color list, or clears it with nil. An explicit color
// filter installed with SetColorFilter overrides tint while it is present.
func (d *ShapeDrawable) SetTint(tint *ColorList) {
	d.state.tint = tint
	if d.tintFilter == nil {
		if tint != nil {
			color := tint.ColorForState(d.stateSet, 0)
			d.tintFilter = NewBlendColorFilter(color, d.state.tintMode)
		}
	} else if tint == nil {
		d.tintFilter = nil
	}
	d.invalidateSelf()
}

// TintBlendMode returns the mode used to apply tint.
func (d *ShapeDrawable) TintBlendMode() BlendMode { return d.state.tintMode }

// SetTintBlendMode sets the mode used to apply tint, updating a live tint
// filter in place.
func (d *ShapeDrawable) SetTintBlendMode(m BlendMode) {
	d.state.tintMode = m
	if d.tintFilter != nil {
		d.tintFilter.SetMode(m)
	}
	d.invalidateSelf()
}

// SetColorFilter installs a color filter on the paint, taking precedence
// over any tint. Nil removes it.
func (d *ShapeDrawable) SetColorFilter(f ColorFilter) {
	d.state.paint.SetColorFilter(f)
	d.invalidateSelf()
}

// SetDither sets the paint's dithering flag.
func (d *ShapeDrawable) SetDither(dither bool) {
	d.state.paint.SetDither(dither)
	d.invalidateSelf()
}

// Opacity classifies the drawable's pixel coverage. Only the no-shape
// bounds fill with a default transfer mode can be classified exactly; shaped
// content reports translucent.
func (d *ShapeDrawable) Opacity() Opacity {
	if d.state.shape == nil {
		p := d.state.paint
		if p.Blend() == nil {
			switch p.Alpha() {
			case 0:
				return OpacityTransparent
			case 255:
				return OpacityOpaque
			}
		}
	}
	return OpacityTranslucent
}

// IsStateful reports whether appearance varies with the state set.
func (d *ShapeDrawable) IsStateful() bool {
	return d.state.tint != nil && d.state.tint.IsStateful()
}

// SetState replaces the active state set and reports whether the change
// altered the drawable's appearance.
func (d *ShapeDrawable) SetState(s StateSet) bool {
	if d.stateSet == s {
		return false
	}
	d.stateSet = s
	return d.onStateChange(s)
}

// onStateChange refreshes the tint filter for the new state set.
func (d *ShapeDrawable) onStateChange(s StateSet) bool {
	tint := d.state.tint
	if tint == nil || d.tintFilter == nil {
		return false
	}
	newColor := tint.ColorForState(s, 0)
	if d.tintFilter.Color() == newColor {
		return false
	}
	d.tintFilter.SetColor(newColor)
	d.invalidateSelf()
	return true
}

// SetBounds moves and sizes the drawable, resizing the shape and refreshing
// the shader to the new dimensions.
func (d *ShapeDrawable) SetBounds(r image.Rectangle) {
	if d.bounds == r {
		return
	}
	d.bounds = r
	d.updateShape()
}

// updateShape resizes the shape to the current bounds and reinstalls the
// shader from the factory, sized to match.
func (d *ShapeDrawable) updateShape() {
	st := d.state
	if st.shape != nil {
		w := d.bounds.Dx()
		h := d.bounds.Dy()
		st.shape.Resize(float64(w), float64(h))
		if st.shaderFactory != nil {
			st.paint.SetShader(st.shaderFactory.Resize(w, h))
		}
	}
	d.invalidateSelf()
}

// modulateAlpha combines a paint alpha with a drawable alpha, both in
// [0, 255], using integer arithmetic: the drawable alpha maps to a 0..256
// multiplier so that 255 is an exact identity.
func modulateAlpha(paintAlpha, alpha int) int {
	scale := alpha + alpha>>7
	return paintAlpha * scale >> 8
}

// Draw renders the shape into the current bounds. The paint alpha is
// modulated by the drawable alpha for the duration of the call and restored
// afterward. Drawing is skipped entirely when the modulated alpha is zero,
// no transfer mode is set, and no shadow is active. A tint filter, when
// present, is installed only while drawing and only if the paint has no
// explicit color filter.
func (d *ShapeDrawable) Draw(dc Canvas) error {
	r := d.bounds
	st := d.state
	p := st.paint

	prevAlpha := p.Alpha()
	p.SetAlpha(modulateAlpha(prevAlpha, st.alpha))
	defer p.SetAlpha(prevAlpha)

	// only draw if it may affect output
	if p.Alpha() == 0 && p.Blend() == nil && !p.HasShadow() {
		return nil
	}

	if d.tintFilter != nil && p.ColorFilter() == nil {
		p.SetColorFilter(d.tintFilter)
		defer p.SetColorFilter(nil)
	}

	if st.shape != nil {
		// the save covers both the translate and whatever the shape does
		dc.Push()
		dc.Translate(float64(r.Min.X), float64(r.Min.Y))
		err := d.drawShape(st.shape, dc, p)
		dc.Pop()
		return err
	}

	p.apply(dc)
	dc.ClearPath()
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	return dc.Fill()
}

// drawShape renders the shape with the canvas origin at the bounds top-left.
func (d *ShapeDrawable) drawShape(s shapes.Shape, dc Canvas, p *Paint) error {
	if d.DrawShapeFunc != nil {
		return d.DrawShapeFunc(s, dc, p)
	}
	p.apply(dc)
	return s.Draw(dc, p.op())
}

// ChangingConfigurations returns the combined configuration-change bitmask
// of the instance and its constant state.
func (d *ShapeDrawable) ChangingConfigurations() uint32 {
	return d.configs | d.state.configs
}

// ConstantState returns the shared state block, stamped with the current
// configuration-change bitmask.
func (d *ShapeDrawable) ConstantState() ConstantState {
	d.state.configs = d.ChangingConfigurations()
	return d.state
}

// Mutate makes the drawable's paint, padding, and shape independent of every
// other drawable sharing its constant state. The tint and shader factory
// remain shared. Mutate is a no-op after the first successful call.
//
// When the shape cannot be cloned, Mutate returns the error and leaves the
// drawable unchanged and still shared; callers must not assume independence
// on error.
func (d *ShapeDrawable) Mutate() error {
	if d.mutated {
		return nil
	}

	st := d.state
	owned := *st
	if st.paint != nil {
		owned.paint = st.paint.Clone()
	} else {
		owned.paint = NewPaint()
	}
	if st.padding != nil {
		padding := *st.padding
		owned.padding = &padding
	} else {
		owned.padding = &Insets{}
	}
	if st.shape != nil {
		clone, err := st.shape.Clone()
		if err != nil {
			return fmt.Errorf("drawable: mutate: %w", err)
		}
		owned.shape = clone
	}

	d.state = &owned
	d.mutated = true
	return nil
}

// invalidateSelf requests a redraw through the callback, if one is set.
func (d *ShapeDrawable) invalidateSelf() {
	d.invalidate(d)
}
