package drawable

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestNewPaint(t *testing.T) {
	p := NewPaint()
	if p.Color() != 0xFF000000 {
		t.Errorf("Color = %v, want opaque black", p.Color())
	}
	if p.Alpha() != 255 {
		t.Errorf("Alpha = %d, want 255", p.Alpha())
	}
	if !p.Antialias() {
		t.Error("Antialias = false, want true")
	}
	if p.Style() != StyleFill {
		t.Errorf("Style = %v, want StyleFill", p.Style())
	}
	if p.StrokeWidth() != 1 {
		t.Errorf("StrokeWidth = %v, want 1", p.StrokeWidth())
	}
	if p.Shader() != nil || p.ColorFilter() != nil || p.Blend() != nil {
		t.Error("fresh paint carries shader, filter, or blend")
	}
	if p.Dither() || p.HasShadow() {
		t.Error("fresh paint dithers or has a shadow")
	}
}

func TestPaintAlpha(t *testing.T) {
	p := NewPaint()
	p.SetColor(0xC0112233)
	if p.Alpha() != 0xC0 {
		t.Errorf("Alpha = %d, want 192", p.Alpha())
	}

	p.SetAlpha(128)
	if p.Color() != 0x80112233 {
		t.Errorf("SetAlpha kept color %v", p.Color())
	}

	p.SetAlpha(300)
	if p.Alpha() != 255 {
		t.Errorf("SetAlpha(300) = %d, want clamp to 255", p.Alpha())
	}
	p.SetAlpha(-5)
	if p.Alpha() != 0 {
		t.Errorf("SetAlpha(-5) = %d, want clamp to 0", p.Alpha())
	}
}

func TestPaintClone(t *testing.T) {
	p := NewPaint()
	p.SetColor(0x80FF0000)
	p.SetStyle(StyleFillStroke)
	p.SetStrokeWidth(3)
	shader := gg.Solid(gg.Blue)
	p.SetShader(shader)
	filter := NewBlendColorFilter(0xFF00FF00, BlendSrcIn)
	p.SetColorFilter(filter)
	mode := BlendScreen
	p.SetBlend(&mode)
	p.SetShadowLayer(2, 1, 1, 0x80000000)

	c := p.Clone()
	if c.Color() != p.Color() || c.Style() != p.Style() || c.StrokeWidth() != p.StrokeWidth() {
		t.Error("clone differs from original")
	}
	// Shader and filter stay shared by reference.
	if c.Shader() != gg.Brush(shader) {
		t.Error("clone does not share the shader")
	}
	if c.ColorFilter() != ColorFilter(filter) {
		t.Error("clone does not share the color filter")
	}

	// Value state is independent.
	c.SetColor(0xFF00FF00)
	c.SetBlend(nil)
	c.ClearShadowLayer()
	if p.Color() != 0x80FF0000 {
		t.Error("mutating clone changed original color")
	}
	if p.Blend() == nil || !p.HasShadow() {
		t.Error("mutating clone changed original blend or shadow")
	}
}

func TestPaintEffectiveBrushSolid(t *testing.T) {
	p := NewPaint()
	p.SetColor(0x80FF0000)
	b := p.effectiveBrush()
	got := b.ColorAt(0, 0)
	want := ARGB(0x80FF0000).Color()
	if !colorsClose(got, want) {
		t.Errorf("solid brush color = %+v, want %+v", got, want)
	}
}

func TestPaintEffectiveBrushFilter(t *testing.T) {
	p := NewPaint()
	p.SetColor(0xFFFF0000)
	p.SetColorFilter(NewBlendColorFilter(0xFF0000FF, BlendSrcIn))
	got := p.effectiveBrush().ColorAt(0, 0)
	want := gg.RGBA{B: 1, A: 1}
	if !colorsClose(got, want) {
		t.Errorf("filtered brush color = %+v, want %+v", got, want)
	}
}

func TestPaintEffectiveBrushShaderAlpha(t *testing.T) {
	p := NewPaint()
	p.SetShader(gg.Solid(gg.White))
	p.SetAlpha(128)
	got := p.effectiveBrush().ColorAt(10, 10)
	if got.R != 1 || got.G != 1 || got.B != 1 {
		t.Errorf("shader color changed: %+v", got)
	}
	want := float64(128) / 255
	if diff := got.A - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("shader alpha = %v, want %v", got.A, want)
	}
}
