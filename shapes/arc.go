package shapes

import "math"

// ArcShape is a pie wedge: an elliptical arc through the center of the
// shape's dimensions. Angles are in degrees, measured clockwise with 0 at
// 3 o'clock. A sweep of 360 degrees or more draws the full ellipse.
type ArcShape struct {
	size
	startAngle float64
	sweepAngle float64
}

// NewArcShape creates an arc starting at startAngle and sweeping clockwise
// by sweepAngle, both in degrees.
func NewArcShape(startAngle, sweepAngle float64) *ArcShape {
	return &ArcShape{startAngle: startAngle, sweepAngle: sweepAngle}
}

// StartAngle returns the start angle in degrees.
func (s *ArcShape) StartAngle() float64 { return s.startAngle }

// SweepAngle returns the sweep angle in degrees.
func (s *ArcShape) SweepAngle() float64 { return s.sweepAngle }

// Resize implements Shape.
func (s *ArcShape) Resize(width, height float64) {
	s.set(width, height)
}

// Draw implements Shape.
func (s *ArcShape) Draw(dc Canvas, op Op) error {
	cx := s.width / 2
	cy := s.height / 2

	dc.ClearPath()
	if math.Abs(s.sweepAngle) >= 360 {
		dc.DrawEllipse(cx, cy, cx, cy)
		return paintOutline(dc, op)
	}

	a1 := s.startAngle * math.Pi / 180
	sweep := s.sweepAngle * math.Pi / 180

	dc.MoveTo(cx, cy)
	dc.LineTo(cx+cx*math.Cos(a1), cy+cy*math.Sin(a1))
	segments := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := sweep / float64(segments)
	for i := 0; i < segments; i++ {
		arcSegment(dc, cx, cy, cx, cy, a1+float64(i)*step, a1+float64(i+1)*step)
	}
	dc.ClosePath()
	return paintOutline(dc, op)
}

// arcSegment appends one cubic approximating the elliptical arc from a1 to
// a2, at most a quarter turn, continuing from the arc point at a1.
func arcSegment(dc Canvas, cx, cy, rx, ry, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x2 := cx + rx*cos2
	y2 := cy + ry*sin2

	dc.CubicTo(
		cx+rx*cos1-alpha*rx*sin1, cy+ry*sin1+alpha*ry*cos1,
		x2+alpha*rx*sin2, y2-alpha*ry*cos2,
		x2, y2)
}

// Clone implements Shape.
func (s *ArcShape) Clone() (Shape, error) {
	c := *s
	return &c, nil
}
