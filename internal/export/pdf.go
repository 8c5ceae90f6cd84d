// Package export writes flattened documents to formats other than raster
// image files.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("export: empty image")

// canvasImage is the name the page image is registered under.
const canvasImage = "canvas"

// PDF writes img as a single page of exactly the image's size, one point
// per pixel.
func PDF(path string, img image.Image) error {
	doc, err := newDocument(img)
	if err != nil {
		return err
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}

// WritePDF is PDF writing to w.
func WritePDF(w io.Writer, img image.Image) error {
	doc, err := newDocument(img)
	if err != nil {
		return err
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}

func newDocument(img image.Image) (*gofpdf.Fpdf, error) {
	r := img.Bounds()
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	var data bytes.Buffer
	if err := png.Encode(&data, img); err != nil {
		return nil, fmt.Errorf("export: encode page image: %w", err)
	}

	w, h := float64(r.Dx()), float64(r.Dy())
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(canvasImage, opts, &data)
	doc.ImageOptions(canvasImage, 0, 0, w, h, false, opts, 0, "")
	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("export: build pdf: %w", err)
	}
	return doc, nil
}
