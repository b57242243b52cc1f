package shapes

import "github.com/gogpu/gg"

// Inset describes the distance from each outer edge to an inner cutout.
type Inset struct {
	Left, Top, Right, Bottom float64
}

// IsZero reports whether every edge is zero.
func (i Inset) IsZero() bool {
	return i == Inset{}
}

// RoundRectShape is a rounded rectangle, optionally with a rounded inner
// rectangle carved out of it. The cutout is produced with the even-odd fill
// rule, so only the ring between outer and inner rectangle is painted.
type RoundRectShape struct {
	size
	outerRadius float64
	inset       Inset
	innerRadius float64
}

// NewRoundRectShape creates a rounded rectangle with the given outer corner
// radius. A non-zero inset carves an inner rounded rectangle with
// innerRadius corners out of the interior.
func NewRoundRectShape(outerRadius float64, inset Inset, innerRadius float64) *RoundRectShape {
	if outerRadius < 0 {
		outerRadius = 0
	}
	if innerRadius < 0 {
		innerRadius = 0
	}
	return &RoundRectShape{
		outerRadius: outerRadius,
		inset:       inset,
		innerRadius: innerRadius,
	}
}

// OuterRadius returns the outer corner radius.
func (s *RoundRectShape) OuterRadius() float64 { return s.outerRadius }

// Resize implements Shape.
func (s *RoundRectShape) Resize(width, height float64) {
	s.set(width, height)
}

// Draw implements Shape.
func (s *RoundRectShape) Draw(dc Canvas, op Op) error {
	dc.ClearPath()
	s.outline(dc, 0, 0, s.width, s.height, s.outerRadius)

	if !s.inset.IsZero() {
		x := s.inset.Left
		y := s.inset.Top
		w := s.width - s.inset.Left - s.inset.Right
		h := s.height - s.inset.Top - s.inset.Bottom
		if w > 0 && h > 0 {
			dc.NewSubPath()
			s.outline(dc, x, y, w, h, s.innerRadius)
			dc.SetFillRule(gg.FillRuleEvenOdd)
			defer dc.SetFillRule(gg.FillRuleNonZero)
		}
	}
	return paintOutline(dc, op)
}

// outline traces one rounded rectangle clockwise, falling back to a plain
// rectangle when the radius does not fit. Corners are quarter-circle cubics.
func (s *RoundRectShape) outline(dc Canvas, x, y, w, h, r float64) {
	max := w / 2
	if h/2 < max {
		max = h / 2
	}
	if r > max {
		r = max
	}
	if r <= 0 {
		dc.DrawRectangle(x, y, w, h)
		return
	}

	const k = 0.5522847498307936
	o := r * k
	dc.MoveTo(x+r, y)
	dc.LineTo(x+w-r, y)
	dc.CubicTo(x+w-r+o, y, x+w, y+r-o, x+w, y+r)
	dc.LineTo(x+w, y+h-r)
	dc.CubicTo(x+w, y+h-r+o, x+w-r+o, y+h, x+w-r, y+h)
	dc.LineTo(x+r, y+h)
	dc.CubicTo(x+r-o, y+h, x, y+h-r+o, x, y+h-r)
	dc.LineTo(x, y+r)
	dc.CubicTo(x, y+r-o, x+r-o, y, x+r, y)
	dc.ClosePath()
}

// Clone implements Shape.
func (s *RoundRectShape) Clone() (Shape, error) {
	c := *s
	return &c, nil
}
