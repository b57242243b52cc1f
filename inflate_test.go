package drawable

import (
	"bytes"
	"encoding/xml"
	"io"
	"log/slog"
	"strings"
	"testing"
)

// decodeStart positions a decoder on the first start element of markup.
func decodeStart(t *testing.T, markup string) (*xml.Decoder, xml.StartElement) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(markup))
	for {
		tok, err := dec.Token()
		if err != nil {
			t.Fatalf("no start element in %q: %v", markup, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return dec, start
		}
	}
}

func TestInflate(t *testing.T) {
	markup := `<shape color="#FF112233" dither="true" width="48dp" height="24px">
		<padding left="2" top="3" right="4" bottom="5"/>
	</shape>`
	dec, start := decodeStart(t, markup)

	d := NewShapeDrawable()
	res := &Resources{Density: 2}
	if err := d.Inflate(res, dec, start); err != nil {
		t.Fatalf("Inflate: %v", err)
	}

	if d.Paint().Color() != 0xFF112233 {
		t.Errorf("color = %v", d.Paint().Color())
	}
	if !d.Paint().Dither() {
		t.Error("dither not set")
	}
	if d.IntrinsicWidth() != 96 {
		t.Errorf("width = %d, want 96 (48dp at density 2)", d.IntrinsicWidth())
	}
	if d.IntrinsicHeight() != 24 {
		t.Errorf("height = %d, want 24 (px ignores density)", d.IntrinsicHeight())
	}
	in, ok := d.Padding()
	if !ok || in != (Insets{Left: 2, Top: 3, Right: 4, Bottom: 5}) {
		t.Errorf("padding = %+v, %v", in, ok)
	}

	// The decoder is left just past the element's end tag.
	if _, err := dec.Token(); err != io.EOF {
		t.Errorf("decoder not consumed to EOF: %v", err)
	}
}

func TestInflateDefaults(t *testing.T) {
	dec, start := decodeStart(t, `<shape/>`)

	d := NewShapeDrawable()
	d.Paint().SetColor(0xFFABCDEF)
	if err := d.Inflate(nil, dec, start); err != nil {
		t.Fatalf("Inflate: %v", err)
	}

	if d.Paint().Color() != 0xFFABCDEF {
		t.Errorf("color default = %v, want current paint color", d.Paint().Color())
	}
	if d.Paint().Dither() {
		t.Error("dither default should be false")
	}
	if d.IntrinsicWidth() != 0 || d.IntrinsicHeight() != 0 {
		t.Errorf("intrinsic size default = %dx%d", d.IntrinsicWidth(), d.IntrinsicHeight())
	}
	if _, ok := d.Padding(); ok {
		t.Error("padding set without a padding element")
	}
}

func TestInflatePaddingAttributeDefaults(t *testing.T) {
	dec, start := decodeStart(t, `<shape><padding left="7"/></shape>`)

	d := NewShapeDrawable()
	if err := d.Inflate(nil, dec, start); err != nil {
		t.Fatalf("Inflate: %v", err)
	}
	in, ok := d.Padding()
	if !ok || in != (Insets{Left: 7}) {
		t.Errorf("padding = %+v, %v", in, ok)
	}
}

func TestInflateUnknownElements(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	// The nested <inner> element must not terminate the loop early: the
	// <padding> after <glow> is still applied.
	markup := `<shape>
		<glow radius="3"><inner><deep/></inner></glow>
		<padding left="1" top="1" right="1" bottom="1"/>
	</shape>`
	dec, start := decodeStart(t, markup)

	d := NewShapeDrawable()
	if err := d.Inflate(nil, dec, start); err != nil {
		t.Fatalf("Inflate: %v", err)
	}

	if _, ok := d.Padding(); !ok {
		t.Error("padding after unknown element was not applied")
	}
	logged := buf.String()
	if !strings.Contains(logged, "glow") {
		t.Errorf("unknown element not logged: %s", logged)
	}
	if strings.Contains(logged, "inner") || strings.Contains(logged, "deep") {
		t.Errorf("nested elements of an unknown child were reported: %s", logged)
	}
}

func TestInflateChildHandler(t *testing.T) {
	markup := `<shape><glow radius="3"/></shape>`
	dec, start := decodeStart(t, markup)

	var gotName string
	d := NewShapeDrawable()
	d.ChildHandler = func(res *Resources, name string, attrs []Attr) bool {
		gotName = name
		return name == "glow"
	}

	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	if err := d.Inflate(nil, dec, start); err != nil {
		t.Fatalf("Inflate: %v", err)
	}
	if gotName != "glow" {
		t.Errorf("handler saw %q", gotName)
	}
	if strings.Contains(buf.String(), "glow") {
		t.Error("handled element still logged as unknown")
	}
}

func TestInflateBadAttributes(t *testing.T) {
	for _, markup := range []string{
		`<shape color="#XYZ"/>`,
		`<shape dither="perhaps"/>`,
		`<shape width="wide"/>`,
		`<shape><padding left="thin"/></shape>`,
	} {
		dec, start := decodeStart(t, markup)
		d := NewShapeDrawable()
		if err := d.Inflate(nil, dec, start); err == nil {
			t.Errorf("Inflate(%s) succeeded, want error", markup)
		}
	}
}

func TestResourcesDimension(t *testing.T) {
	res := &Resources{Density: 2.5}
	tests := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"10px", 10},
		{"10dp", 25},
		{"10dip", 25},
		{"1.5dp", 3.75},
	}
	for _, tt := range tests {
		got, err := res.Dimension(tt.in)
		if err != nil {
			t.Errorf("Dimension(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Dimension(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := res.Dimension("abc"); err == nil {
		t.Error("Dimension(abc) succeeded, want error")
	}
}
