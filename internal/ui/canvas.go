// Package ui is the Fyne front end of the paint program.
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/paint"
)

// Canvas shows a session's flattened document and turns mouse input into
// pointer events in canvas pixel coordinates.
type Canvas struct {
	widget.BaseWidget

	session *paint.Session
	image   *canvas.Image
	frameW  int
	frameH  int
	last    fyne.Position
	down    bool

	// OnStrokeEnd, if set, runs after a stroke has been committed.
	OnStrokeEnd func()
}

var _ fyne.Widget = (*Canvas)(nil)
var _ fyne.Draggable = (*Canvas)(nil)
var _ desktop.Mouseable = (*Canvas)(nil)
var _ desktop.Hoverable = (*Canvas)(nil)
var _ paint.Display = (*Canvas)(nil)

// NewCanvas creates the widget and registers it as the session's display.
func NewCanvas(s *paint.Session) *Canvas {
	c := &Canvas{session: s}
	c.image = canvas.NewImageFromImage(nil)
	c.image.FillMode = canvas.ImageFillStretch
	c.image.ScaleMode = canvas.ImageScalePixels
	c.ExtendBaseWidget(c)
	s.SetDisplay(c)
	s.Redraw()
	return c
}

// Present implements paint.Display. It must run on the UI goroutine.
func (c *Canvas) Present(frame *paint.PixelBuffer) {
	c.image.Image = frame.ToStdImage()
	if w, h := frame.Size(); w != c.frameW || h != c.frameH {
		c.frameW, c.frameH = w, h
		c.image.SetMinSize(fyne.NewSize(float32(w), float32(h)))
		c.Refresh()
	}
	c.image.Refresh()
}

// toCanvas maps a widget position to canvas pixel coordinates.
func (c *Canvas) toCanvas(pos fyne.Position) (x, y int) {
	size := c.Size()
	w, h := c.session.CanvasSize()
	if size.Width <= 0 || size.Height <= 0 {
		return int(pos.X), int(pos.Y)
	}
	return int(pos.X * float32(w) / size.Width), int(pos.Y * float32(h) / size.Height)
}

// MouseDown starts a stroke on the primary button.
func (c *Canvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.down = true
	c.last = e.Position
	c.session.PointerDown(c.toCanvas(e.Position))
}

// MouseUp ends the stroke.
func (c *Canvas) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !c.down {
		return
	}
	c.down = false
	c.session.PointerUp(c.toCanvas(e.Position))
	c.strokeEnded()
}

// Dragged extends the stroke.
func (c *Canvas) Dragged(e *fyne.DragEvent) {
	if !c.down {
		return
	}
	c.last = e.Position
	c.session.PointerMove(c.toCanvas(e.Position))
}

// DragEnd ends the stroke at the last dragged position when no MouseUp
// arrives.
func (c *Canvas) DragEnd() {
	if !c.down {
		return
	}
	c.down = false
	c.session.PointerUp(c.toCanvas(c.last))
	c.strokeEnded()
}

func (c *Canvas) strokeEnded() {
	if c.OnStrokeEnd != nil {
		c.OnStrokeEnd()
	}
}

// MouseIn implements desktop.Hoverable. Hovering does not paint.
func (c *Canvas) MouseIn(*desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable. Only drags extend a stroke.
func (c *Canvas) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable. A stroke leaving the widget keeps
// going until DragEnd or MouseUp.
func (c *Canvas) MouseOut() {}

// CreateRenderer implements fyne.Widget.
func (c *Canvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.White)
	return &canvasRenderer{canvas: c, background: bg}
}

type canvasRenderer struct {
	canvas     *Canvas
	background *canvas.Rectangle
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.canvas.image}
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.canvas.image.Resize(size)
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.canvas.frameW), float32(r.canvas.frameH))
}

func (r *canvasRenderer) Refresh() {
	r.background.Refresh()
	r.canvas.image.Refresh()
}

func (r *canvasRenderer) Destroy() {}
