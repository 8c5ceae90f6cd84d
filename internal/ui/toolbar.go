package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/paint"
)

// colorSwatch is a tappable palette entry.
type colorSwatch struct {
	widget.BaseWidget
	Color    paint.Color
	OnTapped func(paint.Color)
}

func newColorSwatch(c paint.Color, tapped func(paint.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(color.NRGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: 255})
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// toolbar holds the input widgets whose text mirrors session state.
type toolbar struct {
	width, height *widget.Entry
	size          *widget.Entry
	opacity       *widget.Slider
	eraser        *widget.Check
	layer         *widget.Label
}

// newToolbar builds the two toolbar rows. Every control goes through
// Editor.run so failures surface the same way.
func (e *Editor) newToolbar(palette []paint.Color) fyne.CanvasObject {
	t := &toolbar{
		width:  widget.NewEntry(),
		height: widget.NewEntry(),
		size:   widget.NewEntry(),
		layer:  widget.NewLabel(""),
	}
	e.tools = t

	t.width.OnSubmitted = func(string) { e.resize() }
	t.height.OnSubmitted = func(string) { e.resize() }
	t.size.OnSubmitted = func(text string) { e.run("brush-size", text) }

	t.opacity = widget.NewSlider(0, 255)
	t.opacity.Step = 1
	t.opacity.OnChangeEnded = func(v float64) {
		e.run("opacity", strconv.Itoa(int(v)))
	}

	t.eraser = widget.NewCheck("Eraser", func(on bool) {
		if on != e.session.Brush().Eraser() {
			e.run("eraser")
		}
	})

	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, func(c paint.Color) {
			e.run("color", c.String())
		}))
	}

	files := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), e.openDocument),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), e.saveDocument),
		widget.NewToolbarAction(theme.DownloadIcon(), e.exportPDF),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MediaPhotoIcon(), e.openStamp),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() { e.run("stamp") }),
	)
	layers := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentAddIcon(), func() { e.run("add-layer") }),
		widget.NewToolbarAction(theme.NavigateBackIcon(), func() { e.run("prev-layer") }),
		widget.NewToolbarAction(theme.NavigateNextIcon(), func() { e.run("next-layer") }),
	)

	entry := func(w *widget.Entry) fyne.CanvasObject {
		return container.New(layout.NewGridWrapLayout(fyne.NewSize(70, 36)), w)
	}
	top := container.NewHBox(
		files,
		widget.NewSeparator(),
		widget.NewLabel("Canvas:"), entry(t.width), widget.NewLabel("×"), entry(t.height),
		widget.NewButton("Resize", e.resize),
		widget.NewSeparator(),
		layers, t.layer,
		layout.NewSpacer(),
	)
	bottom := container.NewHBox(
		widget.NewLabel("Size:"), entry(t.size),
		widget.NewLabel("Opacity:"),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 36)), t.opacity),
		t.eraser,
		widget.NewSeparator(),
		widget.NewLabel("Color:"), swatches,
		layout.NewSpacer(),
	)
	e.syncToolbar()
	return container.NewVBox(top, bottom)
}

// syncToolbar copies session state into the toolbar widgets.
func (e *Editor) syncToolbar() {
	t := e.tools
	if t == nil {
		return
	}
	w, h := e.session.CanvasSize()
	b := e.session.Brush()
	stack := e.session.Stack()

	t.width.SetText(strconv.Itoa(w))
	t.height.SetText(strconv.Itoa(h))
	t.size.SetText(strconv.Itoa(b.Size()))
	t.opacity.SetValue(float64(b.Opacity()))
	t.eraser.SetChecked(b.Eraser())
	t.layer.SetText(fmt.Sprintf("Layer %d/%d", stack.Current()+1, stack.Len()))
	if e.layers != nil {
		e.layers.sync()
	}
}

func (e *Editor) resize() {
	e.run("resize", e.tools.width.Text, e.tools.height.Text)
}
