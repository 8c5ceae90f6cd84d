package paint

import (
	"github.com/gogpu/paint/internal/raster"
)

// DefaultDabSpacing is the stamp spacing as a fraction of the brush size.
const DefaultDabSpacing = 0.25

// Rasterizer turns the pointer positions of one stroke into buffer writes.
//
// In solid mode every segment between consecutive positions is drawn as a
// continuous capsule, so fast pointer motion leaves no gaps, and each pixel
// is blended at most once per stroke. In stamp mode dabs are placed every
// max(1, size×spacing) pixels along the path.
//
// Begin does not mark the buffer; the first mark comes with the first Extend.
// Extend and End are no-ops while no stroke is active.
type Rasterizer struct {
	brush      *Brush
	dabSpacing float64

	target  *PixelBuffer
	drawing bool
	last    raster.Point
	mask    strokeMask
	spacer  *raster.Spacer
}

// NewRasterizer returns a rasterizer that paints with brush. The brush is
// read at every Extend, so setting changes apply to the next segment.
func NewRasterizer(brush *Brush) *Rasterizer {
	return &Rasterizer{brush: brush, dabSpacing: DefaultDabSpacing}
}

// SetDabSpacing sets the stamp spacing as a fraction of the brush size.
// Non-positive values are ignored.
func (r *Rasterizer) SetDabSpacing(fraction float64) {
	if fraction > 0 {
		r.dabSpacing = fraction
	}
}

// Drawing reports whether a stroke is in progress.
func (r *Rasterizer) Drawing() bool { return r.drawing }

// LastPoint returns the last recorded pointer position and whether a stroke
// is in progress.
func (r *Rasterizer) LastPoint() (x, y float64, ok bool) {
	return r.last.X, r.last.Y, r.drawing
}

// Begin starts a stroke into target at (x, y).
// A stroke already in progress is ended first.
func (r *Rasterizer) Begin(target *PixelBuffer, x, y float64) {
	r.End()
	r.target = target
	r.drawing = true
	r.last = raster.Point{X: x, Y: y}
	r.mask.reset(target.Width(), target.Height())
	r.spacer = raster.NewSpacer(float64(r.brush.Size()) * r.dabSpacing)
	r.spacer.Reset()
	Logger().Debug("stroke begin", "x", x, "y", y, "mode", r.brush.Mode().String(), "blend", r.brush.blendMode().String())
}

// Extend draws from the last recorded position to (x, y) and records (x, y).
// It reports whether anything was drawn.
func (r *Rasterizer) Extend(x, y float64) bool {
	if !r.drawing {
		return false
	}

	p := raster.Point{X: x, Y: y}
	switch r.brush.Mode() {
	case BrushStamp:
		r.spacer.SetSpacing(float64(r.brush.Size()) * r.dabSpacing)
		r.spacer.Walk(r.last, p, func(d raster.Point) {
			r.brush.dab(r.target, d)
		})
	default:
		r.brush.segment(r.target, r.last, p, &r.mask)
	}
	r.last = p
	return true
}

// End finishes the stroke and clears the last position.
func (r *Rasterizer) End() {
	if !r.drawing {
		return
	}
	r.drawing = false
	r.last = raster.Point{}
	r.target = nil
	Logger().Debug("stroke end")
}
