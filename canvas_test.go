package drawable

import (
	"fmt"

	"github.com/gogpu/gg"
)

// recordingCanvas implements shapes.Canvas and records every call, so tests
// can assert on the draw sequence without a rasterizer.
type recordingCanvas struct {
	ops         []string
	fillBrush   gg.Brush
	strokeBrush gg.Brush
	lineWidth   float64
	fillRule    gg.FillRule
}

func (c *recordingCanvas) record(format string, args ...any) {
	c.ops = append(c.ops, fmt.Sprintf(format, args...))
}

func (c *recordingCanvas) Push()                { c.record("push") }
func (c *recordingCanvas) Pop()                 { c.record("pop") }
func (c *recordingCanvas) Translate(x, y float64) { c.record("translate %g %g", x, y) }
func (c *recordingCanvas) Scale(x, y float64)   { c.record("scale %g %g", x, y) }

func (c *recordingCanvas) MoveTo(x, y float64)                  { c.record("moveto") }
func (c *recordingCanvas) LineTo(x, y float64)                  { c.record("lineto") }
func (c *recordingCanvas) QuadraticTo(cx, cy, x, y float64)     { c.record("quadto") }
func (c *recordingCanvas) CubicTo(a, b, d, e, x, y float64)     { c.record("cubicto") }
func (c *recordingCanvas) ClosePath()                           { c.record("closepath") }
func (c *recordingCanvas) NewSubPath()                          { c.record("newsubpath") }
func (c *recordingCanvas) ClearPath()                           { c.record("clearpath") }

func (c *recordingCanvas) DrawRectangle(x, y, w, h float64) {
	c.record("rect %g %g %g %g", x, y, w, h)
}
func (c *recordingCanvas) DrawEllipse(x, y, rx, ry float64) {
	c.record("ellipse %g %g %g %g", x, y, rx, ry)
}

func (c *recordingCanvas) SetFillRule(rule gg.FillRule) {
	c.fillRule = rule
	c.record("fillrule %d", int(rule))
}
func (c *recordingCanvas) SetFillBrush(b gg.Brush) {
	c.fillBrush = b
	c.record("fillbrush")
}
func (c *recordingCanvas) SetStrokeBrush(b gg.Brush) {
	c.strokeBrush = b
	c.record("strokebrush")
}
func (c *recordingCanvas) SetLineWidth(w float64) {
	c.lineWidth = w
	c.record("linewidth %g", w)
}

func (c *recordingCanvas) Fill() error {
	c.record("fill")
	return nil
}
func (c *recordingCanvas) FillPreserve() error {
	c.record("fillpreserve")
	return nil
}
func (c *recordingCanvas) Stroke() error {
	c.record("stroke")
	return nil
}

func (c *recordingCanvas) has(op string) bool {
	for _, o := range c.ops {
		if o == op {
			return true
		}
	}
	return false
}
