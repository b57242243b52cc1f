package drawable

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Attr is a markup attribute as delivered by encoding/xml.
type Attr = xml.Attr

// Resources carries the environment declarative markup is resolved against.
type Resources struct {
	// Density is the display density: the number of physical pixels per
	// device-independent unit.
	Density float64
}

// NewResources creates a Resources with density 1.
func NewResources() *Resources {
	return &Resources{Density: 1}
}

// Dimension parses a markup size value into pixels. Accepted forms are a
// bare number or "12px" (raw pixels) and "12dp" (device-independent units,
// scaled by the density).
func (r *Resources) Dimension(s string) (float64, error) {
	scale := 1.0
	switch {
	case strings.HasSuffix(s, "dp"):
		s = strings.TrimSuffix(s, "dp")
		scale = r.Density
	case strings.HasSuffix(s, "dip"):
		s = strings.TrimSuffix(s, "dip")
		scale = r.Density
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("drawable: invalid dimension %q", s)
	}
	return v * scale, nil
}

// Inflate configures the drawable from a markup element. The start element
// carries the top-level attributes:
//
//	color   fill color (default: current paint color)
//	dither  dithering flag (default: false)
//	width   intrinsic width, a dimension (default: 0)
//	height  intrinsic height, a dimension (default: 0)
//
// Child elements are read until the matching end tag. The one recognized
// child is <padding left="" top="" right="" bottom=""/>, each attribute a
// dimension defaulting to 0. Unrecognized children are logged at Warn and
// skipped, nested elements included; ChildHandler extends recognition.
//
// dec must be positioned immediately after start, as it is when start was
// the last token returned by dec.Token.
func (d *ShapeDrawable) Inflate(res *Resources, dec *xml.Decoder, start xml.StartElement) error {
	if res == nil {
		res = NewResources()
	}

	p := d.state.paint
	color := p.Color()
	dither := false
	var width, height float64
	for _, attr := range start.Attr {
		var err error
		switch attr.Name.Local {
		case "color":
			color, err = ParseColor(attr.Value)
		case "dither":
			dither, err = strconv.ParseBool(attr.Value)
		case "width":
			width, err = res.Dimension(attr.Value)
		case "height":
			height, err = res.Dimension(attr.Value)
		}
		if err != nil {
			return fmt.Errorf("drawable: attribute %s: %w", attr.Name.Local, err)
		}
	}
	p.SetColor(color)
	p.SetDither(dither)
	d.SetIntrinsicWidth(int(width))
	d.SetIntrinsicHeight(int(height))

	// Walk children, tracking depth so nested unknown elements cannot
	// terminate the loop early. Depth 0 is a direct child; the end tag
	// that drops below 0 closes the element Inflate started on.
	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("drawable: inflate: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				handled, err := d.inflateChild(res, t.Name.Local, t.Attr)
				if err != nil {
					return err
				}
				if !handled {
					Logger().Warn("unknown element in shape drawable markup",
						"element", t.Name.Local)
				}
			}
			depth++
		case xml.EndElement:
			depth--
			if depth < 0 {
				return nil
			}
		}
	}
}

// inflateChild recognizes one direct child element, consulting ChildHandler
// first so embedders can extend the element set.
func (d *ShapeDrawable) inflateChild(res *Resources, name string, attrs []Attr) (bool, error) {
	if d.ChildHandler != nil && d.ChildHandler(res, name, attrs) {
		return true, nil
	}
	if name != "padding" {
		return false, nil
	}

	var edges [4]int
	names := [4]string{"left", "top", "right", "bottom"}
	for _, attr := range attrs {
		for i, edge := range names {
			if attr.Name.Local != edge {
				continue
			}
			v, err := res.Dimension(attr.Value)
			if err != nil {
				return true, fmt.Errorf("drawable: padding %s: %w", edge, err)
			}
			edges[i] = int(v)
		}
	}
	d.SetPadding(edges[0], edges[1], edges[2], edges[3])
	return true, nil
}
