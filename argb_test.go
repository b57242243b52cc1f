package drawable

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want ARGB
	}{
		{"#F00", 0xFFFF0000},
		{"#8F00", 0x88FF0000},
		{"#112233", 0xFF112233},
		{"#80112233", 0x80112233},
		{"red", 0xFFFF0000},
		{"Black", 0xFF000000},
		{"cornflowerblue", 0xFF6495ED},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#GG0011", "#123456789", "notacolor"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

func TestARGBComponents(t *testing.T) {
	c := ARGB(0x80112233)
	if c.A() != 0x80 || c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 {
		t.Errorf("components of %v = %d %d %d %d", c, c.A(), c.R(), c.G(), c.B())
	}
}

func TestARGBWithAlpha(t *testing.T) {
	c := ARGB(0xFF112233).WithAlpha(0x40)
	if c != 0x40112233 {
		t.Errorf("WithAlpha = %v, want #40112233", c)
	}
}

func TestARGBRoundTrip(t *testing.T) {
	orig := ARGB(0x80FF8040)
	got := FromRGBA(orig.Color())
	if got != orig {
		t.Errorf("FromRGBA(Color()) = %v, want %v", got, orig)
	}
}

func TestFromRGBAClamps(t *testing.T) {
	got := FromRGBA(gg.RGBA{R: 2, G: -1, B: 0.5, A: 1})
	if got.R() != 255 || got.G() != 0 {
		t.Errorf("FromRGBA out-of-range = %v", got)
	}
}
