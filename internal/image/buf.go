// Package image provides the pixel buffer used by every layer of a paint
// document.
//
// An ImageBuf stores straight (non-premultiplied) RGBA with 8 bits per
// channel in a contiguous byte slice, row-major, 4 bytes per pixel. Straight
// alpha is the storage format; compositing code in internal/blend
// premultiplies internally and converts back.
package image

import (
	"errors"
	"image"
	"image/color"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// bytesPerPixel is the size of one RGBA8 pixel.
const bytesPerPixel = 4

// Size limits for a single buffer. MaxPixels keeps one buffer at 256 MiB.
const (
	MaxDimension = 1 << 15
	MaxPixels    = 1 << 26
)

// CheckDimensions reports ErrInvalidDimensions unless width×height is a
// positive size within MaxDimension per side and MaxPixels in total.
func CheckDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return ErrInvalidDimensions
	}
	if width*height > MaxPixels {
		return ErrInvalidDimensions
	}
	return nil
}

// RGBA is a straight-alpha pixel value with channels in [0, 255].
type RGBA struct {
	R, G, B, A uint8
}

// Transparent is the fully transparent pixel every new layer is filled with.
var Transparent = RGBA{}

// ImageBuf is a rectangular grid of straight RGBA8 pixels.
//
// Thread safety: ImageBuf is not safe for concurrent mutation. Goroutines
// sharing one buffer must write disjoint rows.
type ImageBuf struct {
	data   []byte
	width  int
	height int
}

// NewImageBuf creates a new buffer with every pixel set to fill.
// Returns ErrInvalidDimensions if the size fails CheckDimensions.
func NewImageBuf(width, height int, fill RGBA) (*ImageBuf, error) {
	if err := CheckDimensions(width, height); err != nil {
		return nil, err
	}

	b := &ImageBuf{
		data:   make([]byte, width*height*bytesPerPixel),
		width:  width,
		height: height,
	}
	if fill != Transparent {
		b.Fill(fill)
	}
	return b, nil
}

// Clone creates a deep copy of the buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &ImageBuf{data: data, width: b.width, height: b.height}
}

// Width returns the buffer width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Size returns the buffer dimensions as (width, height).
func (b *ImageBuf) Size() (int, int) {
	return b.width, b.height
}

// Stride returns the number of bytes per row.
func (b *ImageBuf) Stride() int {
	return b.width * bytesPerPixel
}

// Data returns the raw pixel data slice.
// Modifying this data modifies the buffer.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.Stride()
	return b.data[start : start+b.Stride()]
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *ImageBuf) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if !b.InBounds(x, y) {
		return -1
	}
	return (y*b.width + x) * bytesPerPixel
}

// Get returns the pixel at (x, y).
// Returns ErrOutOfBounds if coordinates are outside the buffer.
func (b *ImageBuf) Get(x, y int) (RGBA, error) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return RGBA{}, ErrOutOfBounds
	}
	return RGBA{R: b.data[off], G: b.data[off+1], B: b.data[off+2], A: b.data[off+3]}, nil
}

// Set stores c at (x, y).
// Returns ErrOutOfBounds if coordinates are outside the buffer; the buffer is
// not modified in that case.
func (b *ImageBuf) Set(x, y int, c RGBA) error {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	b.data[off] = c.R
	b.data[off+1] = c.G
	b.data[off+2] = c.B
	b.data[off+3] = c.A
	return nil
}

// Pixel is Get without the error, for callers that already clipped (x, y).
// Out-of-range coordinates yield Transparent.
func (b *ImageBuf) Pixel(x, y int) RGBA {
	c, _ := b.Get(x, y)
	return c
}

// Fill sets all pixels to c.
func (b *ImageBuf) Fill(c RGBA) {
	for i := 0; i < len(b.data); i += bytesPerPixel {
		b.data[i] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
		b.data[i+3] = c.A
	}
}

// Equal reports whether both buffers have identical size and pixels.
func (b *ImageBuf) Equal(o *ImageBuf) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	return string(b.data) == string(o.data)
}

// At implements the image.Image interface.
func (b *ImageBuf) At(x, y int) color.Color {
	c := b.Pixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements the image.Image interface.
func (b *ImageBuf) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *ImageBuf) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToStdImage returns a *image.NRGBA copy of the buffer.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	copy(img.Pix, b.data)
	return img
}

// fromNRGBA copies an NRGBA image into a new buffer.
func fromNRGBA(img *image.NRGBA) *ImageBuf {
	r := img.Bounds()
	w, h := r.Dx(), r.Dy()
	b := &ImageBuf{data: make([]byte, w*h*bytesPerPixel), width: w, height: h}
	for y := range h {
		src := img.Pix[img.PixOffset(r.Min.X, r.Min.Y+y):]
		copy(b.RowBytes(y), src[:w*bytesPerPixel])
	}
	return b
}
