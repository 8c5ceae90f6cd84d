package paint

import (
	"fmt"
	"math"

	"github.com/gogpu/paint/internal/blend"
	"github.com/gogpu/paint/internal/raster"
)

// Default brush settings.
const (
	DefaultBrushSize = 4
	DefaultOpacity   = 255
)

// MaxBrushSize is the largest accepted brush diameter.
const MaxBrushSize = 1024

// BrushMode identifies how a brush marks a buffer.
type BrushMode uint8

const (
	// BrushSolid draws round-capped lines in the brush color.
	BrushSolid BrushMode = iota
	// BrushStamp repeats the stamp image, scaled to size×size, along the path.
	BrushStamp
)

// String returns the mode name.
func (m BrushMode) String() string {
	if m == BrushStamp {
		return "stamp"
	}
	return "solid"
}

// Brush describes how a stroke marks a layer: size, opacity, color or stamp
// image, and the eraser flag.
//
// Solid footprint: a pixel (x, y) belongs to a mark centered at c when its
// distance to c is at most max(size/2, 0.5). Line segments use the same
// radius around the segment, giving round caps. Marks are hard-edged.
//
// Stamp footprint: the stamp scaled to size×size with its center on c.
// A loaded stamp takes precedence over solid mode.
//
// In eraser mode the brush color is ignored and the footprint reduces alpha
// by the mark's coverage (destination-out).
type Brush struct {
	size    int
	opacity uint8
	color   Color
	eraser  bool

	stamp  *PixelBuffer
	scaled *PixelBuffer // stamp resampled to size×size, built lazily
}

// NewBrush returns a solid black brush of DefaultBrushSize at full opacity.
func NewBrush() *Brush {
	return &Brush{
		size:    DefaultBrushSize,
		opacity: DefaultOpacity,
		color:   Black,
	}
}

// Clone returns an independent copy of the brush.
func (b *Brush) Clone() *Brush {
	c := *b
	if b.stamp != nil {
		c.stamp = b.stamp.Clone()
	}
	c.scaled = nil
	return &c
}

// Size returns the brush diameter in pixels.
func (b *Brush) Size() int { return b.size }

// Opacity returns the brush opacity (0 transparent, 255 opaque).
func (b *Brush) Opacity() int { return int(b.opacity) }

// Color returns the solid-mode color.
func (b *Brush) Color() Color { return b.color }

// Eraser reports whether the brush erases.
func (b *Brush) Eraser() bool { return b.eraser }

// Stamp returns the stamp image, or nil in solid mode.
func (b *Brush) Stamp() *PixelBuffer { return b.stamp }

// Mode returns the active paint mode.
func (b *Brush) Mode() BrushMode {
	if b.stamp != nil {
		return BrushStamp
	}
	return BrushSolid
}

// SetSize sets the diameter. Sizes outside [1, MaxBrushSize] are rejected
// with ErrInvalidNumericInput and the previous size is kept.
func (b *Brush) SetSize(size int) error {
	if size <= 0 || size > MaxBrushSize {
		return fmt.Errorf("%w: brush size %d", ErrInvalidNumericInput, size)
	}
	if size != b.size {
		b.size = size
		b.scaled = nil
	}
	return nil
}

// SetOpacity sets the opacity. Values outside [0, 255] are rejected with
// ErrInvalidNumericInput and the previous opacity is kept.
func (b *Brush) SetOpacity(opacity int) error {
	if opacity < 0 || opacity > 255 {
		return fmt.Errorf("%w: opacity %d", ErrInvalidNumericInput, opacity)
	}
	b.opacity = uint8(opacity)
	return nil
}

// SetColor sets the solid-mode color. Picking a color leaves eraser mode.
func (b *Brush) SetColor(c Color) {
	b.color = c
	b.eraser = false
}

// SetEraser sets the eraser flag.
func (b *Brush) SetEraser(on bool) { b.eraser = on }

// ToggleEraser flips the eraser flag and returns the new state.
func (b *Brush) ToggleEraser() bool {
	b.eraser = !b.eraser
	return b.eraser
}

// SetStamp loads a stamp image, switching the brush to stamp mode.
// The brush keeps its own copy. Passing nil returns to solid mode.
func (b *Brush) SetStamp(stamp *PixelBuffer) {
	if stamp == nil {
		b.stamp = nil
	} else {
		b.stamp = stamp.Clone()
	}
	b.scaled = nil
}

// MarkAt applies one mark of the brush centered at (x, y) onto buf, blending
// every pixel of the footprint once. Footprint pixels outside buf are clipped.
func (b *Brush) MarkAt(buf *PixelBuffer, x, y float64) {
	b.mark(buf, raster.Point{X: x, Y: y}, nil)
}

// mark is MarkAt with an optional per-stroke mask. Pixels already set in
// mask are skipped and newly painted pixels are recorded.
func (b *Brush) mark(buf *PixelBuffer, p raster.Point, mask *strokeMask) {
	if b.Mode() == BrushStamp {
		b.dab(buf, p)
		return
	}
	raster.Disc(p, raster.Radius(b.size), buf.Width(), buf.Height(), func(x, y int) {
		if mask.claim(x, y) {
			b.paintSolid(buf, x, y)
		}
	})
}

// segment paints a solid capsule from a to c.
func (b *Brush) segment(buf *PixelBuffer, a, c raster.Point, mask *strokeMask) {
	raster.Capsule(a, c, raster.Radius(b.size), buf.Width(), buf.Height(), func(x, y int) {
		if mask.claim(x, y) {
			b.paintSolid(buf, x, y)
		}
	})
}

// blendMode returns the operator the brush marks with.
func (b *Brush) blendMode() blend.Mode {
	if b.eraser {
		return blend.ModeDestinationOut
	}
	return blend.ModeSourceOver
}

// paintSolid blends one footprint pixel. (x, y) is already clipped.
// In eraser mode only the source alpha matters, so the color stays as is.
func (b *Brush) paintSolid(buf *PixelBuffer, x, y int) {
	_ = buf.Set(x, y, blend.Blend(b.color.Pixel(b.opacity), buf.Pixel(x, y), b.blendMode()))
}

// dab stamps the scaled stamp image centered on p.
func (b *Brush) dab(buf *PixelBuffer, p raster.Point) {
	st := b.scaledStamp()
	if st == nil {
		return
	}

	mode := b.blendMode()
	x0 := int(math.Floor(p.X - float64(b.size)/2 + 0.5))
	y0 := int(math.Floor(p.Y - float64(b.size)/2 + 0.5))
	for sy := range st.Height() {
		y := y0 + sy
		if y < 0 || y >= buf.Height() {
			continue
		}
		for sx := range st.Width() {
			x := x0 + sx
			if x < 0 || x >= buf.Width() {
				continue
			}
			src := blend.WithOpacity(st.Pixel(sx, sy), b.opacity)
			if src.A == 0 {
				continue
			}
			_ = buf.Set(x, y, blend.Blend(src, buf.Pixel(x, y), mode))
		}
	}
}

// scaledStamp returns the stamp resampled to size×size, caching the result.
func (b *Brush) scaledStamp() *PixelBuffer {
	if b.stamp == nil {
		return nil
	}
	if b.scaled == nil {
		scaled, err := b.stamp.Scale(b.size, b.size)
		if err != nil {
			return nil
		}
		b.scaled = scaled
	}
	return b.scaled
}

// strokeMask records which pixels a solid stroke has already painted so each
// pixel is blended at most once per stroke. A nil mask claims every pixel.
type strokeMask struct {
	width int
	bits  []bool
}

// reset sizes the mask for a buffer and clears it.
func (m *strokeMask) reset(width, height int) {
	n := width * height
	if cap(m.bits) < n {
		m.bits = make([]bool, n)
	} else {
		m.bits = m.bits[:n]
		clear(m.bits)
	}
	m.width = width
}

// claim marks (x, y) and reports whether it was unmarked.
func (m *strokeMask) claim(x, y int) bool {
	if m == nil {
		return true
	}
	i := y*m.width + x
	if m.bits[i] {
		return false
	}
	m.bits[i] = true
	return true
}
