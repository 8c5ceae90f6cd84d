package paint

import (
	"io"
	"log/slog"

	"github.com/gogpu/paint/internal/export"
)

// Display receives flattened frames for on-screen presentation. The frame is
// a fresh buffer the display may keep.
type Display interface {
	Present(frame *PixelBuffer)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(frame *PixelBuffer)

// Present implements Display.
func (f DisplayFunc) Present(frame *PixelBuffer) { f(frame) }

// Session is one open document together with the brush and stroke state
// that mutate it. It is the entry point for UI events.
//
// Events must be delivered serially. Every method that fails leaves the
// document and brush as they were.
type Session struct {
	stack      *LayerStack
	brush      *Brush
	raster     *Rasterizer
	sched      *Scheduler
	display    Display
	resizeMode ResizeMode
}

// NewSession creates a session with a single transparent layer.
func NewSession(opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	stack, err := NewLayerStack(o.width, o.height)
	if err != nil {
		return nil, err
	}

	brush := NewBrush()
	if err := brush.SetSize(o.size); err != nil {
		return nil, err
	}
	if err := brush.SetOpacity(o.opacity); err != nil {
		return nil, err
	}
	brush.SetColor(o.color)

	r := NewRasterizer(brush)
	r.SetDabSpacing(o.dabSpacing)

	return &Session{
		stack:      stack,
		brush:      brush,
		raster:     r,
		sched:      NewScheduler(o.clock, o.redrawInterval),
		display:    o.display,
		resizeMode: o.resizeMode,
	}, nil
}

// Stack returns the document's layers.
func (s *Session) Stack() *LayerStack { return s.stack }

// Brush returns the brush used by new strokes.
func (s *Session) Brush() *Brush { return s.brush }

// Scheduler returns the redraw scheduler.
func (s *Session) Scheduler() *Scheduler { return s.sched }

// CanvasSize returns the document dimensions.
func (s *Session) CanvasSize() (width, height int) { return s.stack.Size() }

// Drawing reports whether a stroke is in progress.
func (s *Session) Drawing() bool { return s.raster.Drawing() }

// SetDisplay replaces the display frames are pushed to.
func (s *Session) SetDisplay(d Display) { s.display = d }

// Flatten returns the composite of all layers.
func (s *Session) Flatten() *PixelBuffer { return Flatten(s.stack) }

// Redraw flattens the document and pushes it to the display immediately.
func (s *Session) Redraw() {
	s.sched.Force()
	s.present()
}

func (s *Session) present() {
	if s.display == nil {
		return
	}
	s.display.Present(Flatten(s.stack))
}

// PointerDown starts a stroke on the active layer at canvas position (x, y).
func (s *Session) PointerDown(x, y int) {
	s.raster.Begin(s.stack.ActiveBuffer(), float64(x), float64(y))
}

// PointerMove extends the active stroke to (x, y). Pixels are written
// immediately; the display refresh is throttled. Without an active stroke
// the call does nothing.
func (s *Session) PointerMove(x, y int) {
	if !s.raster.Extend(float64(x), float64(y)) {
		return
	}
	if s.sched.Move() {
		s.present()
	}
}

// PointerUp ends the active stroke and always redraws. If (x, y) differs
// from the last recorded position the stroke is first extended to it.
func (s *Session) PointerUp(x, y int) {
	if !s.raster.Drawing() {
		return
	}
	if lx, ly, _ := s.raster.LastPoint(); lx != float64(x) || ly != float64(y) {
		s.raster.Extend(float64(x), float64(y))
	}
	s.raster.End()
	s.Redraw()
}

// SetBrushSize sets the brush diameter. Values outside [1, MaxBrushSize]
// are rejected with ErrInvalidNumericInput. A stroke in progress picks the
// new size up at its next segment.
func (s *Session) SetBrushSize(size int) error {
	if err := s.brush.SetSize(size); err != nil {
		warn("brush size rejected", err)
		return err
	}
	return nil
}

// SetOpacity sets the brush opacity. Values outside [0, 255] are rejected
// with ErrInvalidNumericInput.
func (s *Session) SetOpacity(opacity int) error {
	if err := s.brush.SetOpacity(opacity); err != nil {
		warn("opacity rejected", err)
		return err
	}
	return nil
}

// SetColor sets the brush color and leaves eraser mode.
func (s *Session) SetColor(c Color) { s.brush.SetColor(c) }

// ToggleEraser flips eraser mode and returns the new state.
func (s *Session) ToggleEraser() bool { return s.brush.ToggleEraser() }

// LoadBrushStamp switches the brush to stamp mode with a copy of stamp.
// Nil returns to solid mode.
func (s *Session) LoadBrushStamp(stamp *PixelBuffer) { s.brush.SetStamp(stamp) }

// LoadBrushStampFile decodes an image file and uses it as the brush stamp.
// An empty path is a no-op. On failure the brush is unchanged.
func (s *Session) LoadBrushStampFile(path string) error {
	if path == "" {
		return nil
	}
	stamp, err := DecodePixelBuffer(path)
	if err != nil {
		warn("stamp load failed", err, "path", path)
		return err
	}
	s.brush.SetStamp(stamp)
	return nil
}

// AddLayer appends a transparent layer, selects it and returns its index.
func (s *Session) AddLayer() (int, error) {
	i, err := s.stack.AddLayer()
	if err != nil {
		return 0, err
	}
	s.Redraw()
	return i, nil
}

// SelectLayer makes layer i current. Out-of-range indices return
// ErrIndexOutOfRange and keep the selection.
func (s *Session) SelectLayer(i int) error {
	if err := s.stack.SelectLayer(i); err != nil {
		warn("layer selection rejected", err)
		return err
	}
	return nil
}

// NextLayer selects the layer above the current one, if any.
func (s *Session) NextLayer() int { return s.stack.NextLayer() }

// PreviousLayer selects the layer below the current one, if any.
func (s *Session) PreviousLayer() int { return s.stack.PreviousLayer() }

// ResizeCanvas resizes every layer to width×height. Invalid sizes return
// ErrInvalidDimension, an active stroke returns ErrBusy.
func (s *Session) ResizeCanvas(width, height int) error {
	if s.raster.Drawing() {
		warn("resize rejected", ErrBusy)
		return ErrBusy
	}
	if err := s.stack.ResizeAll(width, height, s.resizeMode); err != nil {
		warn("resize rejected", err)
		return err
	}
	Logger().Info("canvas resized", "width", width, "height", height, "mode", s.resizeMode.String())
	s.Redraw()
	return nil
}

// Save flattens the document over ExportBackground and encodes it to path.
// The format follows the extension (.png when absent, .jpg, .jpeg, .bmp).
// The written image has no transparency. An empty path is a no-op.
func (s *Session) Save(path string) error {
	if path == "" {
		return nil
	}
	img := FlattenOpaque(s.stack, ExportBackground)
	if err := img.Save(path); err != nil {
		err = wrapEncode(err)
		warn("save failed", err, "path", path)
		return err
	}
	Logger().Info("document saved", "path", path, "width", img.Width(), "height", img.Height())
	return nil
}

// Load replaces the document with the decoded image at path as the single
// layer; the canvas adopts its size. An empty path is a no-op. On failure the
// document is untouched.
func (s *Session) Load(path string) error {
	if path == "" {
		return nil
	}
	if s.raster.Drawing() {
		warn("load rejected", ErrBusy, "path", path)
		return ErrBusy
	}
	buf, err := DecodePixelBuffer(path)
	if err != nil {
		warn("load failed", err, "path", path)
		return err
	}
	if err := s.stack.ReplaceWithSingleLayer(buf); err != nil {
		return wrapDecode(err)
	}
	Logger().Info("document loaded", "path", path, "width", buf.Width(), "height", buf.Height())
	s.Redraw()
	return nil
}

// ExportPDF writes the flattened document, over ExportBackground, as a
// single-page PDF sized to the canvas. An empty path is a no-op.
func (s *Session) ExportPDF(path string) error {
	if path == "" {
		return nil
	}
	img := FlattenOpaque(s.stack, ExportBackground)
	if err := export.PDF(path, img); err != nil {
		err = wrapEncode(err)
		warn("pdf export failed", err, "path", path)
		return err
	}
	Logger().Info("pdf exported", "path", path)
	return nil
}

// WritePDF is ExportPDF writing to w.
func (s *Session) WritePDF(w io.Writer) error {
	img := FlattenOpaque(s.stack, ExportBackground)
	if err := export.WritePDF(w, img); err != nil {
		err = wrapEncode(err)
		warn("pdf export failed", err)
		return err
	}
	Logger().Info("pdf exported")
	return nil
}

// warn logs a rejected operation.
func warn(msg string, err error, args ...any) {
	Logger().Warn(msg, append([]any{slog.Any("err", err)}, args...)...)
}
