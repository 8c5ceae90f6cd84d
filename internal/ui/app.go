package ui

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/paint"
)

// Editor is the main window: toolbar, canvas and status line around one
// session. Fyne delivers all callbacks on one goroutine, which is what the
// session requires.
type Editor struct {
	session *paint.Session
	window  fyne.Window
	canvas  *Canvas
	tools   *toolbar
	layers  *layerPanel
	status  *widget.Label
}

// NewEditor builds the window contents for s inside w.
func NewEditor(w fyne.Window, s *paint.Session, palette []paint.Color) *Editor {
	e := &Editor{
		session: s,
		window:  w,
		status:  widget.NewLabel("Ready"),
	}
	e.canvas = NewCanvas(s)
	e.layers = e.newLayerPanel()
	e.canvas.OnStrokeEnd = e.layers.strokeEnded
	bar := e.newToolbar(palette)

	body := container.NewScroll(container.NewCenter(e.canvas))
	side := container.NewBorder(widget.NewLabel("Layers"), nil, nil, nil, e.layers.list)
	w.SetContent(container.NewBorder(bar, e.status, nil, side, body))
	return e
}

// Canvas returns the drawing widget.
func (e *Editor) Canvas() *Canvas { return e.canvas }

// Run opens a window for s and blocks until it is closed.
func Run(s *paint.Session, palette []paint.Color) {
	a := app.New()
	w := a.NewWindow("Paint")
	NewEditor(w, s, palette)
	cw, ch := s.CanvasSize()
	w.Resize(fyne.NewSize(float32(cw)+180, float32(ch)+140))
	w.ShowAndRun()
}

// run dispatches a command and reports the outcome in the status line.
func (e *Editor) run(name string, args ...string) {
	err := e.session.Dispatch(name, args...)
	if name == "resize" && err == nil {
		e.layers.invalidate()
	}
	e.syncToolbar()
	if err != nil {
		e.status.SetText(err.Error())
		return
	}
	e.status.SetText(statusFor(name, args))
}

func statusFor(name string, args []string) string {
	switch {
	case len(args) == 1 && args[0] != "":
		return fmt.Sprintf("%s: %s", name, args[0])
	case len(args) == 0:
		return name
	default:
		return fmt.Sprintf("%s %v", name, args)
	}
}

// fail shows an error that did not come from a command.
func (e *Editor) fail(err error) {
	paint.Logger().Warn("ui operation failed", "err", err)
	e.status.SetText(err.Error())
	dialog.ShowError(err, e.window)
}

// runFile dispatches a file command and pops up a dialog when it fails.
func (e *Editor) runFile(name, path string) {
	if err := e.session.Dispatch(name, path); err != nil {
		e.syncToolbar()
		e.fail(err)
		return
	}
	e.syncToolbar()
	e.status.SetText(statusFor(name, []string{path}))
}

func (e *Editor) openDocument() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			e.fail(err)
			return
		}
		if r == nil {
			return
		}
		path := r.URI().Path()
		_ = r.Close()
		e.runFile("load", path)
	}, e.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".webp", ".tiff"}))
	d.Show()
}

func (e *Editor) openStamp() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			e.fail(err)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()
		if err := e.loadStamp(r); err != nil {
			e.fail(err)
			return
		}
		e.status.SetText(statusFor("stamp", []string{r.URI().Name()}))
	}, e.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".bmp", ".gif"}))
	d.Show()
}

// loadStamp decodes a stamp image from r. Reading through the URI rather
// than a file path also works for documents without a local path.
func (e *Editor) loadStamp(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	stamp, err := paint.DecodePixelBufferBytes(data)
	if err != nil {
		return err
	}
	e.session.LoadBrushStamp(stamp)
	return nil
}

func (e *Editor) saveDocument() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			e.fail(err)
			return
		}
		if wc == nil {
			return
		}
		path := wc.URI().Path()
		_ = wc.Close()
		e.runFile("save", path)
	}, e.window)
	d.SetFileName("untitled.png")
	d.Show()
}

func (e *Editor) exportPDF() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			e.fail(err)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()
		if err := e.session.WritePDF(wc); err != nil {
			e.fail(err)
			return
		}
		e.status.SetText(statusFor("export-pdf", []string{wc.URI().Name()}))
	}, e.window)
	d.SetFileName("untitled.pdf")
	d.Show()
}
