package drawable

import (
	"fmt"

	"github.com/gogpu/gg"
)

// BlendMode is a Porter-Duff compositing operator. It describes how a source
// color combines with a destination color, and is used both as a paint
// transfer mode and as the operator of a BlendColorFilter.
type BlendMode int

const (
	// BlendClear produces transparency everywhere.
	BlendClear BlendMode = iota
	// BlendSrc keeps only the source.
	BlendSrc
	// BlendDst keeps only the destination.
	BlendDst
	// BlendSrcOver composites the source over the destination.
	BlendSrcOver
	// BlendDstOver composites the destination over the source.
	BlendDstOver
	// BlendSrcIn keeps the source where the destination is opaque.
	BlendSrcIn
	// BlendDstIn keeps the destination where the source is opaque.
	BlendDstIn
	// BlendSrcOut keeps the source where the destination is transparent.
	BlendSrcOut
	// BlendDstOut keeps the destination where the source is transparent.
	BlendDstOut
	// BlendSrcAtop draws the source only on top of the destination.
	BlendSrcAtop
	// BlendDstAtop draws the destination only on top of the source.
	BlendDstAtop
	// BlendXor keeps source and destination where they do not overlap.
	BlendXor
	// BlendPlus adds source and destination, clamped.
	BlendPlus
	// BlendModulate multiplies source and destination componentwise.
	BlendModulate
	// BlendScreen inverts, multiplies, and inverts again.
	BlendScreen
)

var blendNames = map[string]BlendMode{
	"clear":    BlendClear,
	"src":      BlendSrc,
	"dst":      BlendDst,
	"src_over": BlendSrcOver,
	"dst_over": BlendDstOver,
	"src_in":   BlendSrcIn,
	"dst_in":   BlendDstIn,
	"src_out":  BlendSrcOut,
	"dst_out":  BlendDstOut,
	"src_atop": BlendSrcAtop,
	"dst_atop": BlendDstAtop,
	"xor":      BlendXor,
	"plus":     BlendPlus,
	"modulate": BlendModulate,
	"screen":   BlendScreen,
}

// ParseBlendMode parses the markup spelling of a blend mode ("src_in",
// "screen", ...).
func ParseBlendMode(s string) (BlendMode, error) {
	if m, ok := blendNames[s]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("drawable: unknown blend mode %q", s)
}

// String returns the markup spelling of the mode.
func (m BlendMode) String() string {
	for name, mode := range blendNames {
		if mode == m {
			return name
		}
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// Compose combines src with dst under the mode. Inputs and output are
// straight-alpha gg colors; the arithmetic runs in premultiplied space.
func (m BlendMode) Compose(src, dst gg.RGBA) gg.RGBA {
	s := src.Premultiply()
	d := dst.Premultiply()

	var out gg.RGBA
	switch m {
	case BlendModulate:
		out = gg.RGBA{R: s.R * d.R, G: s.G * d.G, B: s.B * d.B, A: s.A * d.A}
	case BlendScreen:
		out = gg.RGBA{
			R: s.R + d.R - s.R*d.R,
			G: s.G + d.G - s.G*d.G,
			B: s.B + d.B - s.B*d.B,
			A: s.A + d.A - s.A*d.A,
		}
	default:
		fa, fb := m.coefficients(s.A, d.A)
		out = gg.RGBA{
			R: fa*s.R + fb*d.R,
			G: fa*s.G + fb*d.G,
			B: fa*s.B + fb*d.B,
			A: fa*s.A + fb*d.A,
		}
	}

	out.R = clamp01(out.R)
	out.G = clamp01(out.G)
	out.B = clamp01(out.B)
	out.A = clamp01(out.A)
	return out.Unpremultiply()
}

// coefficients returns the source and destination factors for the separable
// Porter-Duff operators, given premultiplied alphas.
func (m BlendMode) coefficients(sa, da float64) (fa, fb float64) {
	switch m {
	case BlendClear:
		return 0, 0
	case BlendSrc:
		return 1, 0
	case BlendDst:
		return 0, 1
	case BlendSrcOver:
		return 1, 1 - sa
	case BlendDstOver:
		return 1 - da, 1
	case BlendSrcIn:
		return da, 0
	case BlendDstIn:
		return 0, sa
	case BlendSrcOut:
		return 1 - da, 0
	case BlendDstOut:
		return 0, 1 - sa
	case BlendSrcAtop:
		return da, 1 - sa
	case BlendDstAtop:
		return 1 - da, sa
	case BlendXor:
		return 1 - da, 1 - sa
	case BlendPlus:
		return 1, 1
	}
	return 1, 1 - sa
}
