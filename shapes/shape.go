// Package shapes provides resizable geometry for shape drawables.
//
// A Shape defines a fillable and strokeable outline that is resized to pixel
// dimensions and drawn through the Canvas interface. *gg.Context satisfies
// Canvas, so shapes render directly onto a gg drawing context.
package shapes

import (
	"errors"

	"github.com/gogpu/gg"
)

// ErrCloneUnsupported is returned by Shape.Clone when the variant cannot
// produce an independent copy.
var ErrCloneUnsupported = errors.New("shapes: clone unsupported")

// Canvas is the drawing surface shapes render onto. It is the structural
// subset of *gg.Context this module uses; any type with the same method set
// works, which keeps rendering testable without a rasterizer.
type Canvas interface {
	Push()
	Pop()
	Translate(x, y float64)
	Scale(x, y float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	NewSubPath()
	ClearPath()

	DrawRectangle(x, y, w, h float64)
	DrawEllipse(x, y, rx, ry float64)

	SetFillRule(rule gg.FillRule)
	SetFillBrush(b gg.Brush)
	SetStrokeBrush(b gg.Brush)
	SetLineWidth(width float64)

	Fill() error
	FillPreserve() error
	Stroke() error
}

// Op selects how a traced outline is painted.
type Op int

const (
	// OpFill fills the outline.
	OpFill Op = iota
	// OpStroke strokes the outline.
	OpStroke
	// OpFillStroke fills, then strokes the same outline.
	OpFillStroke
)

// Shape is a pluggable geometry: an outline resized to pixel dimensions and
// drawn in the shape's local coordinate space with (0,0) at the top-left.
type Shape interface {
	// Resize sets the shape's dimensions. Negative values clamp to zero.
	// Resizing to the current dimensions is a no-op.
	Resize(width, height float64)

	// Width returns the current width.
	Width() float64

	// Height returns the current height.
	Height() float64

	// Draw traces the outline onto dc and paints it with op, using the
	// brushes currently installed on dc.
	Draw(dc Canvas, op Op) error

	// Clone returns an independent copy of the shape, or
	// ErrCloneUnsupported when the variant cannot be copied.
	Clone() (Shape, error)
}

// size holds the dimensions common to all shape variants.
type size struct {
	width  float64
	height float64
}

// set clamps negatives to zero and reports whether the dimensions changed.
func (s *size) set(w, h float64) bool {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == s.width && h == s.height {
		return false
	}
	s.width = w
	s.height = h
	return true
}

// Width returns the current width.
func (s *size) Width() float64 { return s.width }

// Height returns the current height.
func (s *size) Height() float64 { return s.height }

// paintOutline applies op to the outline currently traced on dc.
func paintOutline(dc Canvas, op Op) error {
	switch op {
	case OpStroke:
		return dc.Stroke()
	case OpFillStroke:
		if err := dc.FillPreserve(); err != nil {
			return err
		}
		return dc.Stroke()
	default:
		return dc.Fill()
	}
}
