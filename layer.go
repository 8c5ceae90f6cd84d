package paint

import (
	"fmt"

	"github.com/google/uuid"

	intImage "github.com/gogpu/paint/internal/image"
)

// ResizeMode selects how layer content is carried through a canvas resize.
type ResizeMode uint8

const (
	// ResizeCrop keeps content anchored at the top-left origin, discarding
	// pixels outside the new bounds and filling exposed area with
	// transparent pixels. Default.
	ResizeCrop ResizeMode = iota
	// ResizeScale resamples content to the new size (Catmull-Rom).
	ResizeScale
)

// String returns the mode name.
func (m ResizeMode) String() string {
	if m == ResizeScale {
		return "scale"
	}
	return "crop"
}

// ParseResizeMode parses "crop" or "scale".
func ParseResizeMode(s string) (ResizeMode, error) {
	switch s {
	case "", "crop":
		return ResizeCrop, nil
	case "scale":
		return ResizeScale, nil
	default:
		return 0, fmt.Errorf("paint: unknown resize mode %q", s)
	}
}

// Layer is one transparent pixel buffer of the document.
type Layer struct {
	id   string
	name string
	buf  *PixelBuffer
}

// ID returns the layer's stable identifier.
func (l *Layer) ID() string { return l.id }

// Name returns the display name ("Layer 1", "Layer 2", ...).
func (l *Layer) Name() string { return l.name }

// Buffer returns the layer's pixels. The buffer is owned by the stack and is
// replaced on resize or load.
func (l *Layer) Buffer() *PixelBuffer { return l.buf }

// LayerStack is the ordered set of layers forming a document. Layer 0 is the
// backmost. The stack always holds at least one layer and every layer has the
// canvas size.
//
// Thread safety: LayerStack is not safe for concurrent access. It has a
// single owner, the Session, which receives events serially.
type LayerStack struct {
	layers  []*Layer
	current int
	width   int
	height  int
	serial  int
}

// NewLayerStack creates a stack with one transparent layer of the given size.
func NewLayerStack(width, height int) (*LayerStack, error) {
	if err := checkCanvasSize(width, height); err != nil {
		return nil, err
	}
	s := &LayerStack{width: width, height: height}
	if _, err := s.AddLayer(); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of layers.
func (s *LayerStack) Len() int { return len(s.layers) }

// Size returns the canvas dimensions.
func (s *LayerStack) Size() (width, height int) { return s.width, s.height }

// Current returns the index of the active layer.
func (s *LayerStack) Current() int { return s.current }

// Layer returns the layer at index i.
func (s *LayerStack) Layer(i int) (*Layer, error) {
	if i < 0 || i >= len(s.layers) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(s.layers))
	}
	return s.layers[i], nil
}

// Layers returns the layers back to front. The slice is a copy.
func (s *LayerStack) Layers() []*Layer {
	out := make([]*Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Buffers returns the layer buffers back to front.
func (s *LayerStack) Buffers() []*PixelBuffer {
	out := make([]*PixelBuffer, len(s.layers))
	for i, l := range s.layers {
		out[i] = l.buf
	}
	return out
}

// ActiveBuffer returns the buffer strokes draw into: the current layer's.
func (s *LayerStack) ActiveBuffer() *PixelBuffer {
	return s.layers[s.current].buf
}

// AddLayer appends a fully transparent layer of canvas size, selects it and
// returns its index.
func (s *LayerStack) AddLayer() (int, error) {
	buf, err := NewPixelBuffer(s.width, s.height, Transparent)
	if err != nil {
		return 0, err
	}
	s.layers = append(s.layers, s.newLayer(buf))
	s.current = len(s.layers) - 1
	Logger().Debug("layer added", "index", s.current, "count", len(s.layers))
	return s.current, nil
}

// SelectLayer makes layer i current. An index outside [0, Len()) returns
// ErrIndexOutOfRange and keeps the current selection.
func (s *LayerStack) SelectLayer(i int) error {
	if i < 0 || i >= len(s.layers) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(s.layers))
	}
	s.current = i
	return nil
}

// NextLayer selects the layer above the current one, staying put at the top.
func (s *LayerStack) NextLayer() int {
	if s.current < len(s.layers)-1 {
		s.current++
	}
	return s.current
}

// PreviousLayer selects the layer below the current one, staying put at the
// bottom.
func (s *LayerStack) PreviousLayer() int {
	if s.current > 0 {
		s.current--
	}
	return s.current
}

// ResizeAll resizes every layer to width×height. Either all layers are
// replaced and the canvas size updated, or nothing changes.
func (s *LayerStack) ResizeAll(width, height int, mode ResizeMode) error {
	if err := checkCanvasSize(width, height); err != nil {
		return err
	}

	resized := make([]*PixelBuffer, len(s.layers))
	for i, l := range s.layers {
		var (
			buf *PixelBuffer
			err error
		)
		if mode == ResizeScale {
			buf, err = l.buf.Scale(width, height)
		} else {
			buf, err = l.buf.Resize(width, height)
		}
		if err != nil {
			return fmt.Errorf("paint: resize layer %d: %w", i, err)
		}
		resized[i] = buf
	}

	for i, l := range s.layers {
		l.buf = resized[i]
	}
	s.width, s.height = width, height
	return nil
}

// ReplaceWithSingleLayer discards every layer and adopts buf as the only
// one. The canvas takes buf's size. The stack owns buf afterwards.
func (s *LayerStack) ReplaceWithSingleLayer(buf *PixelBuffer) error {
	if buf == nil || buf.Width() <= 0 || buf.Height() <= 0 {
		return ErrInvalidDimension
	}
	s.serial = 0
	s.layers = []*Layer{s.newLayer(buf)}
	s.current = 0
	s.width, s.height = buf.Width(), buf.Height()
	return nil
}

// Thumbnail returns a downscaled copy of layer i whose longer side is at most
// maxSide pixels. The result is independent of the layer.
func (s *LayerStack) Thumbnail(i, maxSide int) (*PixelBuffer, error) {
	l, err := s.Layer(i)
	if err != nil {
		return nil, err
	}
	return l.buf.Thumbnail(maxSide)
}

// checkCanvasSize rejects sizes a single layer buffer cannot hold.
func checkCanvasSize(width, height int) error {
	if err := intImage.CheckDimensions(width, height); err != nil {
		return fmt.Errorf("%w: %dx%d", err, width, height)
	}
	return nil
}

func (s *LayerStack) newLayer(buf *PixelBuffer) *Layer {
	s.serial++
	return &Layer{
		id:   uuid.NewString(),
		name: fmt.Sprintf("Layer %d", s.serial),
		buf:  buf,
	}
}
