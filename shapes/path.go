package shapes

import "github.com/gogpu/gg"

// PathShape draws an arbitrary gg.Path. The path is authored in a standard
// coordinate space of stdWidth by stdHeight units and scaled to the shape's
// current dimensions when drawn.
type PathShape struct {
	size
	path      *gg.Path
	stdWidth  float64
	stdHeight float64
}

// NewPathShape creates a shape drawing path, interpreted in a stdWidth by
// stdHeight coordinate space.
func NewPathShape(path *gg.Path, stdWidth, stdHeight float64) *PathShape {
	return &PathShape{path: path, stdWidth: stdWidth, stdHeight: stdHeight}
}

// Path returns the underlying path.
func (s *PathShape) Path() *gg.Path { return s.path }

// Resize implements Shape.
func (s *PathShape) Resize(width, height float64) {
	s.set(width, height)
}

// Draw implements Shape.
func (s *PathShape) Draw(dc Canvas, op Op) error {
	if s.path == nil || s.stdWidth <= 0 || s.stdHeight <= 0 {
		return nil
	}

	dc.Push()
	dc.Scale(s.width/s.stdWidth, s.height/s.stdHeight)
	dc.ClearPath()
	replayPath(dc, s.path)
	err := paintOutline(dc, op)
	dc.Pop()
	return err
}

// replayPath feeds the path's elements into the canvas path builder.
func replayPath(dc Canvas, p *gg.Path) {
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}

// Clone implements Shape.
func (s *PathShape) Clone() (Shape, error) {
	c := *s
	if s.path != nil {
		c.path = s.path.Clone()
	}
	return &c, nil
}
