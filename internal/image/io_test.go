package image

import (
	"bytes"
	"errors"
	stdimage "image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out.png", FormatPNG, false},
		{"OUT.PNG", FormatPNG, false},
		{"noext", FormatPNG, false},
		{"photo.jpg", FormatJPEG, false},
		{"photo.jpeg", FormatJPEG, false},
		{"scan.bmp", FormatBMP, false},
		{"anim.gif", 0, true},
		{"doc.txt", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("error = %v, want ErrUnsupportedFormat", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("FormatFromPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPNGRoundTrip(t *testing.T) {
	src := gradient(t, 16, 9)
	_ = src.Set(2, 2, RGBA{R: 9, G: 8, B: 7, A: 100})

	data, err := src.EncodeToBytes(FormatPNG)
	if err != nil {
		t.Fatalf("EncodeToBytes() error = %v", err)
	}
	got, err := DecodeBytes(data)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if !got.Equal(src) {
		t.Error("PNG round trip changed pixels")
	}
}

func TestDecodeOpaqueFormats(t *testing.T) {
	rgba := stdimage.NewRGBA(stdimage.Rect(0, 0, 4, 4))
	for i := range rgba.Pix {
		rgba.Pix[i] = 255
	}
	pal := stdimage.NewPaletted(stdimage.Rect(0, 0, 4, 4), color.Palette{color.Black, color.White})

	encoders := map[string]func(*bytes.Buffer) error{
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, rgba) },
		"jpeg": func(b *bytes.Buffer) error { return jpeg.Encode(b, rgba, nil) },
		"gif":  func(b *bytes.Buffer) error { return gif.Encode(b, pal, nil) },
	}

	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			var b bytes.Buffer
			if err := enc(&b); err != nil {
				t.Fatal(err)
			}
			buf, err := Decode(&b)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if buf.Width() != 4 || buf.Height() != 4 {
				t.Fatalf("size = %dx%d, want 4x4", buf.Width(), buf.Height())
			}
			for y := range 4 {
				for x := range 4 {
					if a := buf.Pixel(x, y).A; a != 255 {
						t.Fatalf("Pixel(%d,%d).A = %d, want 255", x, y, a)
					}
				}
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := DecodeBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodeBytes(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := DecodeBytes([]byte("definitely not an image")); err == nil {
		t.Error("DecodeBytes(garbage) succeeded")
	}
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("LoadImage(missing) succeeded")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	src := gradient(t, 5, 5)

	path := filepath.Join(dir, "out.bmp")
	if err := src.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if !got.Equal(src) {
		t.Error("BMP round trip changed pixels")
	}

	bad := filepath.Join(dir, "out.xyz")
	if err := src.Save(bad); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.xyz) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(bad); !os.IsNotExist(err) {
		t.Error("Save(.xyz) created a file")
	}
}
