package paint

import (
	"fmt"
	"strings"

	intImage "github.com/gogpu/paint/internal/image"
)

// Color is an opaque brush color. Transparency comes from the brush opacity.
type Color struct {
	R, G, B uint8
}

// Palette colors offered by the toolbar.
var (
	Black  = Color{0, 0, 0}
	White  = Color{255, 255, 255}
	Red    = Color{255, 0, 0}
	Green  = Color{0, 128, 0}
	Blue   = Color{0, 0, 255}
	Yellow = Color{255, 255, 0}
	Purple = Color{128, 0, 128}
)

// PaletteNames lists the named colors in toolbar order.
var PaletteNames = []string{"black", "red", "blue", "green", "yellow", "purple"}

var namedColors = map[string]Color{
	"black":  Black,
	"white":  White,
	"red":    Red,
	"green":  Green,
	"blue":   Blue,
	"yellow": Yellow,
	"purple": Purple,
}

// ParseColor parses a palette name or a hex string.
// Supported hex formats: "RGB" and "RRGGBB", with optional '#' prefix.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	var r, g, b uint32
	var ok bool
	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	default:
		ok = false
	}
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// String returns the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Pixel returns the color as a straight-alpha pixel with the given alpha.
func (c Color) Pixel(alpha uint8) Pixel {
	return intImage.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// parseHex is a helper for hex parsing. It reports false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
