package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Format identifies an encoder.
type Format uint8

const (
	// FormatPNG is the canonical, lossless export format.
	FormatPNG Format = iota
	// FormatJPEG is lossy; quality is fixed at jpegQuality.
	FormatJPEG
	// FormatBMP is uncompressed.
	FormatBMP
)

const jpegQuality = 95

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the encoder for path by its extension.
// A path without extension is encoded as PNG.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Decode decodes an image from r, auto-detecting the format.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP. The result is always
// straight RGBA; formats without alpha come out with alpha 255 everywhere.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (*ImageBuf, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// LoadImage loads an image from the given file path.
func LoadImage(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// FromStdImage converts any image.Image into a new straight RGBA buffer.
func FromStdImage(img image.Image) (*ImageBuf, error) {
	r := img.Bounds()
	if err := CheckDimensions(r.Dx(), r.Dy()); err != nil {
		return nil, err
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		return fromNRGBA(nrgba), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, r.Min, xdraw.Src)
	return fromNRGBA(dst), nil
}

// Encode writes b to w in the given format.
func (b *ImageBuf) Encode(w io.Writer, format Format) error {
	img := b.ToStdImage()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return ErrUnsupportedFormat
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// EncodeToBytes encodes the buffer in the given format and returns the bytes.
func (b *ImageBuf) EncodeToBytes(format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save encodes the buffer to path, choosing the format from its extension.
// The file is only created after the format is known to be supported.
func (b *ImageBuf) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := b.EncodeToBytes(format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil { //nolint:gosec // user-chosen document path
		return fmt.Errorf("image: write file: %w", err)
	}
	return nil
}
