package shapes

// OvalShape is an ellipse inscribed in the shape's dimensions.
type OvalShape struct {
	size
}

// NewOvalShape creates a zero-sized oval shape.
func NewOvalShape() *OvalShape {
	return &OvalShape{}
}

// Resize implements Shape.
func (s *OvalShape) Resize(width, height float64) {
	s.set(width, height)
}

// Draw implements Shape.
func (s *OvalShape) Draw(dc Canvas, op Op) error {
	dc.ClearPath()
	dc.DrawEllipse(s.width/2, s.height/2, s.width/2, s.height/2)
	return paintOutline(dc, op)
}

// Clone implements Shape.
func (s *OvalShape) Clone() (Shape, error) {
	c := *s
	return &c, nil
}
