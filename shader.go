package drawable

import "github.com/gogpu/gg"

// ShaderFactory builds a shader brush sized to a drawable's bounds. The
// factory is invoked on every bounds change and its result replaces the
// paint's previous shader; returning nil uninstalls the shader.
type ShaderFactory interface {
	// Resize returns a shader for a drawable of the given pixel size.
	Resize(width, height int) gg.Brush
}

// ShaderFactoryFunc adapts a function to the ShaderFactory interface.
type ShaderFactoryFunc func(width, height int) gg.Brush

// Resize implements ShaderFactory.
func (f ShaderFactoryFunc) Resize(width, height int) gg.Brush {
	return f(width, height)
}

// LinearGradientFactory produces linear gradients scaled to the drawable.
// Start and End are in the unit square: (0,0) is the top-left of the bounds
// and (1,1) the bottom-right.
type LinearGradientFactory struct {
	Start  gg.Point
	End    gg.Point
	Stops  []gg.ColorStop
	Extend gg.ExtendMode
}

// Resize implements ShaderFactory.
func (f *LinearGradientFactory) Resize(width, height int) gg.Brush {
	w := float64(width)
	h := float64(height)
	g := gg.NewLinearGradientBrush(f.Start.X*w, f.Start.Y*h, f.End.X*w, f.End.Y*h)
	g.Stops = append(g.Stops, f.Stops...)
	g.Extend = f.Extend
	return g
}

// RadialGradientFactory produces radial gradients scaled to the drawable.
// Center is in the unit square; Radius is relative to half the smaller
// bounds dimension, so 1 reaches the nearest edge from a centered gradient.
type RadialGradientFactory struct {
	Center gg.Point
	Radius float64
	Stops  []gg.ColorStop
	Extend gg.ExtendMode
}

// Resize implements ShaderFactory.
func (f *RadialGradientFactory) Resize(width, height int) gg.Brush {
	w := float64(width)
	h := float64(height)
	half := w / 2
	if h/2 < half {
		half = h / 2
	}
	g := gg.NewRadialGradientBrush(f.Center.X*w, f.Center.Y*h, 0, f.Radius*half)
	g.Stops = append(g.Stops, f.Stops...)
	g.Extend = f.Extend
	return g
}

// SweepGradientFactory produces sweep gradients centered in the unit square.
// StartAngle is in radians.
type SweepGradientFactory struct {
	Center     gg.Point
	StartAngle float64
	Stops      []gg.ColorStop
}

// Resize implements ShaderFactory.
func (f *SweepGradientFactory) Resize(width, height int) gg.Brush {
	g := gg.NewSweepGradientBrush(f.Center.X*float64(width), f.Center.Y*float64(height), f.StartAngle)
	g.Stops = append(g.Stops, f.Stops...)
	return g
}
