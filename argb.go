package drawable

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ARGB is a 32-bit color in 0xAARRGGBB layout, the representation used by
// paints, color lists, and markup attributes. Alpha lives in the top byte so
// that alpha arithmetic stays integer-exact.
type ARGB uint32

// A returns the alpha component.
func (c ARGB) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c ARGB) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c ARGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c ARGB) B() uint8 { return uint8(c) }

// WithAlpha returns the color with its alpha byte replaced.
func (c ARGB) WithAlpha(a uint8) ARGB {
	return c&0x00FFFFFF | ARGB(a)<<24
}

// Color converts the color to a gg.RGBA with components in [0, 1].
func (c ARGB) Color() gg.RGBA {
	return gg.RGBA{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
		A: float64(c.A()) / 255,
	}
}

// FromRGBA converts a gg.RGBA to an ARGB, rounding each component.
func FromRGBA(c gg.RGBA) ARGB {
	r := uint32(math.Round(clamp01(c.R) * 255))
	g := uint32(math.Round(clamp01(c.G) * 255))
	b := uint32(math.Round(clamp01(c.B) * 255))
	a := uint32(math.Round(clamp01(c.A) * 255))
	return ARGB(a<<24 | r<<16 | g<<8 | b)
}

// String formats the color as a #AARRGGBB hex literal.
func (c ARGB) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor parses a markup color value. Hex forms use the attribute layout
// with alpha first: #RGB, #ARGB, #RRGGBB, and #AARRGGBB. Anything else is
// looked up as an SVG 1.1 color name ("red", "cornflowerblue", ...).
func ParseColor(s string) (ARGB, error) {
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return ARGB(uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)), nil
	}
	return 0, fmt.Errorf("drawable: unknown color %q", s)
}

func parseHexColor(hex string) (ARGB, error) {
	var digits [8]uint32
	if len(hex) > len(digits) {
		return 0, fmt.Errorf("drawable: invalid color literal #%s", hex)
	}
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return 0, fmt.Errorf("drawable: invalid color literal #%s", hex)
		}
		digits[i] = d
	}

	var a, r, g, b uint32
	a = 255
	switch len(hex) {
	case 3: // RGB
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	case 4: // ARGB
		a, r, g, b = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6: // RRGGBB
		r = digits[0]<<4 | digits[1]
		g = digits[2]<<4 | digits[3]
		b = digits[4]<<4 | digits[5]
	case 8: // AARRGGBB
		a = digits[0]<<4 | digits[1]
		r = digits[2]<<4 | digits[3]
		g = digits[4]<<4 | digits[5]
		b = digits[6]<<4 | digits[7]
	default:
		return 0, fmt.Errorf("drawable: invalid color literal #%s", hex)
	}
	return ARGB(a<<24 | r<<16 | g<<8 | b), nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
