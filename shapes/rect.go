package shapes

// RectShape is a rectangle filling the shape's dimensions.
type RectShape struct {
	size
}

// NewRectShape creates a zero-sized rectangle shape.
func NewRectShape() *RectShape {
	return &RectShape{}
}

// Resize implements Shape.
func (s *RectShape) Resize(width, height float64) {
	s.set(width, height)
}

// Draw implements Shape.
func (s *RectShape) Draw(dc Canvas, op Op) error {
	dc.ClearPath()
	dc.DrawRectangle(0, 0, s.width, s.height)
	return paintOutline(dc, op)
}

// Clone implements Shape.
func (s *RectShape) Clone() (Shape, error) {
	c := *s
	return &c, nil
}
