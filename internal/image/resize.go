package image

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Resize returns a new buffer of the requested size holding the content of b
// anchored at the top-left origin. Pixels outside the new bounds are
// discarded; newly exposed pixels are transparent. No scaling is applied.
func (b *ImageBuf) Resize(width, height int) (*ImageBuf, error) {
	dst, err := NewImageBuf(width, height, Transparent)
	if err != nil {
		return nil, err
	}

	rowBytes := min(b.width, width) * bytesPerPixel
	for y := range min(b.height, height) {
		copy(dst.RowBytes(y)[:rowBytes], b.RowBytes(y)[:rowBytes])
	}
	return dst, nil
}

// Scale returns a new buffer with the content of b resampled to the requested
// size using the Catmull-Rom filter.
func (b *ImageBuf) Scale(width, height int) (*ImageBuf, error) {
	if err := CheckDimensions(width, height); err != nil {
		return nil, err
	}
	if width == b.width && height == b.height {
		return b.Clone(), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), b.ToStdImage(), b.Bounds(), xdraw.Src, nil)
	return fromNRGBA(dst), nil
}

// Thumbnail returns a cheap downscaled view of b whose longer side is at most
// maxSide pixels. The aspect ratio is preserved and no side drops below 1.
// Buffers already small enough are cloned.
func (b *ImageBuf) Thumbnail(maxSide int) (*ImageBuf, error) {
	if maxSide <= 0 {
		return nil, ErrInvalidDimensions
	}
	longer := max(b.width, b.height)
	if longer <= maxSide {
		return b.Clone(), nil
	}

	w := max(1, b.width*maxSide/longer)
	h := max(1, b.height*maxSide/longer)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), b.ToStdImage(), b.Bounds(), xdraw.Src, nil)
	return fromNRGBA(dst), nil
}
