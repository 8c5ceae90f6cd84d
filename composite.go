package paint

import (
	"fmt"

	"github.com/gogpu/paint/internal/blend"
	"github.com/gogpu/paint/internal/parallel"
)

// ExportBackground is the opaque color a document is flattened onto before
// it is written to an image file.
var ExportBackground = White

// Flatten composites the stack back to front with the over operator into a
// new canvas-sized buffer. Layer 0 is the backmost. The stack is not
// modified. Order matters: swapping two partially transparent layers of
// different colors yields a different image.
func Flatten(s *LayerStack) *PixelBuffer {
	w, h := s.Size()
	out, err := FlattenBuffers(w, h, s.Buffers()...)
	if err != nil {
		// Unreachable: the stack keeps every layer at canvas size.
		panic(err)
	}
	return out
}

// FlattenBuffers composites layers back to front into a new width×height
// buffer. Every layer must have exactly that size.
func FlattenBuffers(width, height int, layers ...*PixelBuffer) (*PixelBuffer, error) {
	if len(layers) == 0 {
		return NewPixelBuffer(width, height, Transparent)
	}
	for i, l := range layers {
		if l.Width() != width || l.Height() != height {
			return nil, fmt.Errorf("%w: layer %d is %dx%d, canvas is %dx%d",
				ErrInvalidDimension, i, l.Width(), l.Height(), width, height)
		}
	}

	out := layers[0].Clone()
	if len(layers) == 1 {
		return out, nil
	}
	stride := out.Stride()
	dst := out.Data()
	parallel.Bands(height, func(y0, y1 int) {
		lo, hi := y0*stride, y1*stride
		for _, l := range layers[1:] {
			overRow(dst[lo:hi], l.Data()[lo:hi])
		}
	})
	return out, nil
}

// FlattenOpaque flattens the stack and composites the result over an opaque
// background. Every pixel of the result has alpha 255.
func FlattenOpaque(s *LayerStack, background Color) *PixelBuffer {
	out := Flatten(s)
	bg := background.Pixel(255)
	stride := out.Stride()
	data := out.Data()
	parallel.Bands(out.Height(), func(y0, y1 int) {
		row := data[y0*stride : y1*stride]
		for i := 0; i < len(row); i += 4 {
			p := blend.OverBackground(Pixel{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}, bg)
			row[i], row[i+1], row[i+2], row[i+3] = p.R, p.G, p.B, p.A
		}
	})
	return out
}

// overRow composites src over dst in place. Both hold the same pixels.
func overRow(dst, src []byte) {
	for i := 0; i < len(dst); i += 4 {
		if src[i+3] == 0 {
			continue
		}
		p := blend.Over(
			Pixel{R: src[i], G: src[i+1], B: src[i+2], A: src[i+3]},
			Pixel{R: dst[i], G: dst[i+1], B: dst[i+2], A: dst[i+3]},
		)
		dst[i], dst[i+1], dst[i+2], dst[i+3] = p.R, p.G, p.B, p.A
	}
}
