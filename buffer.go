package paint

import (
	intImage "github.com/gogpu/paint/internal/image"
)

// PixelBuffer is a rectangular grid of straight-alpha RGBA8 pixels.
// It implements image.Image.
type PixelBuffer = intImage.ImageBuf

// Pixel is one straight-alpha RGBA8 value.
type Pixel = intImage.RGBA

// Transparent is the pixel new layers are filled with.
var Transparent = intImage.Transparent

// Size limits of a single buffer, and so of the canvas.
const (
	MaxDimension = intImage.MaxDimension
	MaxPixels    = intImage.MaxPixels
)

// NewPixelBuffer creates a buffer of the given size with every pixel set to fill.
// Returns ErrInvalidDimension if a side is non-positive or above MaxDimension,
// or the pixel count is above MaxPixels.
func NewPixelBuffer(width, height int, fill Pixel) (*PixelBuffer, error) {
	return intImage.NewImageBuf(width, height, fill)
}

// DecodePixelBuffer reads an image file into a new buffer.
// The error wraps ErrDecode.
func DecodePixelBuffer(path string) (*PixelBuffer, error) {
	buf, err := intImage.LoadImage(path)
	if err != nil {
		return nil, wrapDecode(err)
	}
	return buf, nil
}

// DecodePixelBufferBytes decodes an in-memory image into a new buffer.
// The error wraps ErrDecode.
func DecodePixelBufferBytes(data []byte) (*PixelBuffer, error) {
	buf, err := intImage.DecodeBytes(data)
	if err != nil {
		return nil, wrapDecode(err)
	}
	return buf, nil
}
