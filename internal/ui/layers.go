package ui

import (
	"image"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/paint"
)

// thumbnailSide bounds the longer side of a layer preview.
const thumbnailSide = 48

// layerPanel lists the document's layers, each with a preview and its name.
// Previews are cached by layer ID and rebuilt only when that layer changes.
type layerPanel struct {
	editor  *Editor
	list    *widget.List
	thumbs  map[string]image.Image
	syncing bool
}

func (e *Editor) newLayerPanel() *layerPanel {
	p := &layerPanel{editor: e, thumbs: make(map[string]image.Image)}
	p.list = widget.NewList(p.length, p.createRow, p.updateRow)
	p.list.OnSelected = p.selected
	return p
}

func (p *layerPanel) length() int { return p.editor.session.Stack().Len() }

func (p *layerPanel) createRow() fyne.CanvasObject {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(thumbnailSide, thumbnailSide))
	return container.NewHBox(img, widget.NewLabel("Layer 00"))
}

func (p *layerPanel) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	l, err := p.editor.session.Stack().Layer(id)
	if err != nil {
		return
	}
	row := obj.(*fyne.Container)
	img := row.Objects[0].(*canvas.Image)
	img.Image = p.thumbnail(id, l)
	img.Refresh()
	row.Objects[1].(*widget.Label).SetText(l.Name())
}

// thumbnail returns the cached preview of layer i, building it on a miss.
func (p *layerPanel) thumbnail(i int, l *paint.Layer) image.Image {
	if t, ok := p.thumbs[l.ID()]; ok {
		return t
	}
	buf, err := p.editor.session.Stack().Thumbnail(i, thumbnailSide)
	if err != nil {
		paint.Logger().Warn("layer thumbnail failed", "layer", l.Name(), "err", err)
		return nil
	}
	t := buf.ToStdImage()
	p.thumbs[l.ID()] = t
	return t
}

func (p *layerPanel) selected(id widget.ListItemID) {
	if p.syncing || id == p.editor.session.Stack().Current() {
		return
	}
	p.editor.run("select-layer", strconv.Itoa(id))
}

// invalidate drops every cached preview.
func (p *layerPanel) invalidate() {
	clear(p.thumbs)
}

// sync forgets previews of layers that no longer exist, redraws the rows and
// moves the selection to the active layer.
func (p *layerPanel) sync() {
	stack := p.editor.session.Stack()
	live := make(map[string]bool, stack.Len())
	for _, l := range stack.Layers() {
		live[l.ID()] = true
	}
	for id := range p.thumbs {
		if !live[id] {
			delete(p.thumbs, id)
		}
	}
	p.list.Refresh()

	p.syncing = true
	p.list.Select(stack.Current())
	p.syncing = false
}

// strokeEnded rebuilds the preview of the layer a stroke just painted.
func (p *layerPanel) strokeEnded() {
	stack := p.editor.session.Stack()
	cur := stack.Current()
	if l, err := stack.Layer(cur); err == nil {
		delete(p.thumbs, l.ID())
	}
	p.list.RefreshItem(cur)
}
