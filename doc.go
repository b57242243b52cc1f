// Package drawable provides shape-backed renderables for the GoGPU 2D stack.
//
// # Overview
//
// A Drawable is a visual unit with bounds, a state-dependent appearance, and
// a draw contract. The central type is ShapeDrawable: it delegates geometry
// to a pluggable shapes.Shape, applies paint, tint, and alpha compositing on
// top of a gg canvas, and supports cheap duplication through shared constant
// state with explicit copy-on-write mutation.
//
// # Quick Start
//
//	import (
//	    "image"
//
//	    "github.com/gogpu/drawable"
//	    "github.com/gogpu/drawable/shapes"
//	    "github.com/gogpu/gg"
//	)
//
//	dc := gg.NewContext(256, 256)
//
//	d := drawable.NewShapeDrawable(drawable.WithShape(shapes.NewOvalShape()))
//	d.Paint().SetColor(0xFF2266CC)
//	d.SetBounds(image.Rect(16, 16, 240, 240))
//	d.Draw(dc)
//
// # Constant State
//
// Every ShapeDrawable references a constant-state block that can be shared
// between instances. ConstantState().NewDrawable() creates a new drawable
// that shares paint, shape, padding, tint, and shader factory with the
// prototype. Call Mutate before changing a shared instance's paint, padding,
// or shape; tint and shader factory remain shared after mutation.
//
// # Declarative Markup
//
// ShapeDrawable can be inflated from an XML element carrying color, dither,
// width, and height attributes and an optional <padding> child. See
// ShapeDrawable.Inflate.
//
// # Rendering
//
// Drawing targets the shapes.Canvas interface, which *gg.Context satisfies.
// Any canvas implementing the same method set works, including test
// recorders.
package drawable
