// Package blend implements the per-pixel compositing operators of the paint
// core.
//
// Pixels are stored with straight alpha. Every operator premultiplies
// internally, composites, and converts the result back to straight alpha.
// Intermediate values keep a 255² scale so that the fully opaque and fully
// transparent cases reproduce their input exactly.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "github.com/gogpu/paint/internal/image"

// Mode represents a compositing operator.
type Mode uint8

const (
	// ModeSourceOver paints the source over the destination. Default.
	ModeSourceOver Mode = iota
	// ModeDestinationOut removes destination coverage where the source is
	// opaque. Source color is ignored.
	ModeDestinationOut
)

// String returns the operator name.
func (m Mode) String() string {
	switch m {
	case ModeSourceOver:
		return "source-over"
	case ModeDestinationOut:
		return "destination-out"
	default:
		return "unknown"
	}
}

// Blend composites src onto dst with the given mode.
func Blend(src, dst image.RGBA, mode Mode) image.RGBA {
	switch mode {
	case ModeDestinationOut:
		return Erase(dst, src.A)
	default:
		return Over(src, dst)
	}
}

// Over composites src over dst (the "over" operator).
//
//	outA = Sa + Da*(1-Sa)
//	outC = (Sc*Sa + Dc*Da*(1-Sa)) / outA
func Over(src, dst image.RGBA) image.RGBA {
	switch src.A {
	case 0:
		return dst
	case 255:
		return src
	}

	sa := uint32(src.A)
	invSa := 255 - sa
	da := uint32(dst.A)

	// Both terms are scaled by 255.
	outA := sa*255 + da*invSa
	if outA == 0 {
		return image.Transparent
	}
	sw := sa * 255
	dw := da * invSa
	return image.RGBA{
		R: unpremul(uint32(src.R)*sw+uint32(dst.R)*dw, outA),
		G: unpremul(uint32(src.G)*sw+uint32(dst.G)*dw, outA),
		B: unpremul(uint32(src.B)*sw+uint32(dst.B)*dw, outA),
		A: uint8((outA + 127) / 255),
	}
}

// Erase reduces the coverage of dst by the given source alpha
// (destination-out). The resulting alpha is never larger than dst.A.
// A pixel that loses all coverage becomes transparent black.
func Erase(dst image.RGBA, coverage uint8) image.RGBA {
	a := mulDiv255(dst.A, 255-coverage)
	if a == 0 {
		return image.Transparent
	}
	dst.A = a
	return dst
}

// OverBackground composites c over an opaque background color and returns
// an opaque pixel.
func OverBackground(c, bg image.RGBA) image.RGBA {
	inv := 255 - c.A
	return image.RGBA{
		R: addClamp(mulDiv255(c.R, c.A), mulDiv255(bg.R, inv)),
		G: addClamp(mulDiv255(c.G, c.A), mulDiv255(bg.G, inv)),
		B: addClamp(mulDiv255(c.B, c.A), mulDiv255(bg.B, inv)),
		A: 255,
	}
}

// WithOpacity scales the alpha of c by opacity (0-255).
func WithOpacity(c image.RGBA, opacity uint8) image.RGBA {
	c.A = mulDiv255(c.A, opacity)
	return c
}

// unpremul divides a 255²-scaled premultiplied channel by a 255-scaled alpha,
// rounding to nearest.
func unpremul(c, a uint32) uint8 {
	v := (c + a/2) / a
	if v > 255 {
		return 255
	}
	return uint8(v)
}
