package drawable

import (
	"image"

	"github.com/gogpu/drawable/shapes"
)

// Canvas is the drawing surface drawables render onto. *gg.Context satisfies
// it; see shapes.Canvas for the method set.
type Canvas = shapes.Canvas

// Opacity classifies how a drawable covers the pixels inside its bounds.
type Opacity int

const (
	// OpacityTranslucent means the drawable may draw partially transparent
	// pixels; this is the safe answer when the content is unknown.
	OpacityTranslucent Opacity = iota
	// OpacityTransparent means the drawable draws nothing.
	OpacityTransparent
	// OpacityOpaque means the drawable fully covers its bounds.
	OpacityOpaque
)

// Insets is a padding value: offsets inward from each edge, in pixels.
type Insets struct {
	Left, Top, Right, Bottom int
}

// IsZero reports whether every edge is zero.
func (i Insets) IsZero() bool {
	return i == Insets{}
}

// Callback receives redraw requests from a drawable. Hosts embed drawables
// in views and schedule repaints from here.
type Callback interface {
	// InvalidateDrawable signals that d needs to be redrawn.
	InvalidateDrawable(d Drawable)
}

// ConstantState is a shareable configuration snapshot enabling cheap
// drawable duplication: every drawable created from the same state shares
// its paint, geometry, and tint until one of them is mutated.
type ConstantState interface {
	// NewDrawable creates a drawable sharing this state.
	NewDrawable() Drawable

	// ChangingConfigurations returns the configuration-change bitmask
	// recorded on the state.
	ChangingConfigurations() uint32
}

// Drawable is a renderable visual unit with bounds, state-dependent
// appearance, and a draw contract.
type Drawable interface {
	// Draw renders the drawable into its current bounds on dc.
	Draw(dc Canvas) error

	// Bounds returns the target bounds.
	Bounds() image.Rectangle

	// SetBounds moves and sizes the drawable.
	SetBounds(r image.Rectangle)

	// State returns the active visual state set.
	State() StateSet

	// SetState replaces the active state set and reports whether the
	// change altered the drawable's appearance.
	SetState(s StateSet) bool

	// IsStateful reports whether appearance can vary with the state set.
	IsStateful() bool

	// Alpha returns the drawable-level alpha in [0, 255].
	Alpha() int

	// SetAlpha sets the drawable-level alpha, combined with the paint
	// alpha during drawing.
	SetAlpha(a int)

	// SetColorFilter installs a color filter on the drawable's paint,
	// overriding any tint. Nil removes it.
	SetColorFilter(f ColorFilter)

	// Opacity classifies the drawable's pixel coverage.
	Opacity() Opacity

	// Padding returns the padding override and whether one is set.
	Padding() (Insets, bool)

	// IntrinsicWidth returns the preferred width in pixels, or 0.
	IntrinsicWidth() int

	// IntrinsicHeight returns the preferred height in pixels, or 0.
	IntrinsicHeight() int

	// Callback returns the invalidation callback, or nil.
	Callback() Callback

	// SetCallback installs the invalidation callback.
	SetCallback(cb Callback)

	// ChangingConfigurations returns the combined configuration-change
	// bitmask of the drawable and its constant state.
	ChangingConfigurations() uint32

	// ConstantState returns the shared state block, or nil when the
	// drawable cannot be duplicated.
	ConstantState() ConstantState
}

// base carries the per-instance plumbing every drawable needs: bounds, the
// active state set, the invalidation callback, and the instance-level
// configuration-change bitmask.
type base struct {
	bounds   image.Rectangle
	stateSet StateSet
	callback Callback
	configs  uint32
}

// Bounds returns the target bounds.
func (b *base) Bounds() image.Rectangle { return b.bounds }

// State returns the active visual state set.
func (b *base) State() StateSet { return b.stateSet }

// Callback returns the invalidation callback, or nil.
func (b *base) Callback() Callback { return b.callback }

// SetCallback installs the invalidation callback.
func (b *base) SetCallback(cb Callback) { b.callback = cb }

// SetChangingConfigurations sets the instance-level configuration-change
// bitmask.
func (b *base) SetChangingConfigurations(configs uint32) { b.configs = configs }

// invalidate notifies the callback, if any, that d needs a redraw.
func (b *base) invalidate(d Drawable) {
	if b.callback != nil {
		b.callback.InvalidateDrawable(d)
	}
}
