package paint

import (
	"errors"
	"testing"

	"github.com/gogpu/paint/internal/blend"
)

func newTestBuffer(t *testing.T, w, h int, fill Pixel) *PixelBuffer {
	t.Helper()
	buf, err := NewPixelBuffer(w, h, fill)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	return buf
}

func TestBrushSetSize(t *testing.T) {
	b := NewBrush()
	if err := b.SetSize(12); err != nil {
		t.Fatalf("SetSize(12) error = %v", err)
	}
	for _, size := range []int{0, -3, MaxBrushSize + 1, 1 << 31} {
		err := b.SetSize(size)
		if !errors.Is(err, ErrInvalidNumericInput) {
			t.Errorf("SetSize(%d) error = %v, want ErrInvalidNumericInput", size, err)
		}
	}
	if b.Size() != 12 {
		t.Errorf("Size() = %d after rejected sizes, want 12", b.Size())
	}
	if err := b.SetSize(MaxBrushSize); err != nil {
		t.Errorf("SetSize(MaxBrushSize) error = %v", err)
	}
}

func TestBrushSetOpacity(t *testing.T) {
	b := NewBrush()
	for _, v := range []int{0, 128, 255} {
		if err := b.SetOpacity(v); err != nil {
			t.Errorf("SetOpacity(%d) error = %v", v, err)
		}
	}
	for _, v := range []int{-1, 256, 1000} {
		if err := b.SetOpacity(v); !errors.Is(err, ErrInvalidNumericInput) {
			t.Errorf("SetOpacity(%d) error = %v, want ErrInvalidNumericInput", v, err)
		}
	}
	if b.Opacity() != 255 {
		t.Errorf("Opacity() = %d, want 255", b.Opacity())
	}
}

func TestBrushColorLeavesEraser(t *testing.T) {
	b := NewBrush()
	if !b.ToggleEraser() {
		t.Fatal("ToggleEraser() = false, want true")
	}
	b.SetColor(Red)
	if b.Eraser() {
		t.Error("SetColor did not leave eraser mode")
	}
	if b.Color() != Red {
		t.Errorf("Color() = %v, want red", b.Color())
	}
}

func TestBrushStampMode(t *testing.T) {
	b := NewBrush()
	if b.Mode() != BrushSolid {
		t.Fatalf("Mode() = %v, want solid", b.Mode())
	}
	stamp := newTestBuffer(t, 2, 2, Red.Pixel(255))
	b.SetStamp(stamp)
	if b.Mode() != BrushStamp {
		t.Fatalf("Mode() = %v, want stamp", b.Mode())
	}

	// The brush keeps its own copy.
	stamp.Fill(Blue.Pixel(255))
	if got := b.Stamp().Pixel(0, 0); got != Red.Pixel(255) {
		t.Errorf("stamp changed with caller's buffer: %v", got)
	}

	b.SetStamp(nil)
	if b.Mode() != BrushSolid || b.Stamp() != nil {
		t.Error("SetStamp(nil) did not return to solid mode")
	}
}

func TestBrushClone(t *testing.T) {
	b := NewBrush()
	b.SetStamp(newTestBuffer(t, 1, 1, Red.Pixel(255)))
	c := b.Clone()
	_ = c.SetSize(20)
	c.SetColor(Blue)
	if b.Size() == 20 || b.Color() == Blue {
		t.Error("changing the clone changed the original")
	}
	if c.Stamp() == b.Stamp() {
		t.Error("clone shares the stamp buffer")
	}
}

func TestMarkAtFootprint(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		covered []struct{ x, y int }
		clear   []struct{ x, y int }
	}{
		{
			name:    "size 1 is a single pixel",
			size:    1,
			covered: []struct{ x, y int }{{5, 5}},
			clear:   []struct{ x, y int }{{4, 5}, {6, 5}, {5, 4}, {5, 6}},
		},
		{
			name:    "size 4 reaches radius 2",
			size:    4,
			covered: []struct{ x, y int }{{5, 5}, {3, 5}, {7, 5}, {5, 3}, {5, 7}, {4, 4}},
			clear:   []struct{ x, y int }{{2, 5}, {8, 5}, {3, 3}, {7, 7}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newTestBuffer(t, 11, 11, Transparent)
			b := NewBrush()
			_ = b.SetSize(tt.size)
			b.MarkAt(buf, 5, 5)
			for _, p := range tt.covered {
				if got := buf.Pixel(p.x, p.y); got != Black.Pixel(255) {
					t.Errorf("(%d,%d) = %v, want opaque black", p.x, p.y, got)
				}
			}
			for _, p := range tt.clear {
				if got := buf.Pixel(p.x, p.y); got != Transparent {
					t.Errorf("(%d,%d) = %v, want transparent", p.x, p.y, got)
				}
			}
		})
	}
}

func TestMarkAtClipsAtEdges(t *testing.T) {
	buf := newTestBuffer(t, 4, 4, Transparent)
	b := NewBrush()
	_ = b.SetSize(6)
	b.MarkAt(buf, 0, 0)
	b.MarkAt(buf, -100, -100)
	if got := buf.Pixel(0, 0); got.A != 255 {
		t.Errorf("corner pixel = %v, want painted", got)
	}
}

func TestMarkAtEraser(t *testing.T) {
	buf := newTestBuffer(t, 5, 5, Red.Pixel(200))
	b := NewBrush()
	_ = b.SetSize(1)
	_ = b.SetOpacity(128)
	b.SetEraser(true)

	b.MarkAt(buf, 2, 2)
	got := buf.Pixel(2, 2)
	if got.A >= 200 {
		t.Errorf("erased alpha = %d, want below 200", got.A)
	}
	if got.R != 255 {
		t.Errorf("erase changed color: %v", got)
	}
	if buf.Pixel(0, 0) != Red.Pixel(200) {
		t.Error("erase touched a pixel outside the footprint")
	}

	_ = b.SetOpacity(255)
	b.MarkAt(buf, 2, 2)
	if got := buf.Pixel(2, 2); got != Transparent {
		t.Errorf("full erase = %v, want transparent", got)
	}
}

func TestMarkAtStamp(t *testing.T) {
	buf := newTestBuffer(t, 10, 10, Transparent)
	b := NewBrush()
	_ = b.SetSize(4)
	b.SetStamp(newTestBuffer(t, 8, 8, Green.Pixel(255)))

	b.MarkAt(buf, 5, 5)
	// A 4×4 stamp centered on (5,5) covers [3,7)×[3,7).
	for y := range 10 {
		for x := range 10 {
			inside := x >= 3 && x < 7 && y >= 3 && y < 7
			got := buf.Pixel(x, y)
			if inside && got != Green.Pixel(255) {
				t.Errorf("(%d,%d) = %v, want green", x, y, got)
			}
			if !inside && got != Transparent {
				t.Errorf("(%d,%d) = %v, want transparent", x, y, got)
			}
		}
	}
}

func TestMarkAtStampOpacity(t *testing.T) {
	buf := newTestBuffer(t, 4, 4, Transparent)
	b := NewBrush()
	_ = b.SetSize(2)
	_ = b.SetOpacity(0)
	b.SetStamp(newTestBuffer(t, 2, 2, Red.Pixel(255)))
	b.MarkAt(buf, 2, 2)
	want := newTestBuffer(t, 4, 4, Transparent)
	if !buf.Equal(want) {
		t.Error("zero-opacity stamp changed the buffer")
	}
}

func TestBrushModeString(t *testing.T) {
	if BrushSolid.String() != "solid" || BrushStamp.String() != "stamp" {
		t.Errorf("String() = %q, %q", BrushSolid, BrushStamp)
	}
}

func TestMarkAtUsesBrushBlendMode(t *testing.T) {
	dst := Blue.Pixel(200)
	tests := []struct {
		name   string
		eraser bool
		mode   blend.Mode
	}{
		{"paint", false, blend.ModeSourceOver},
		{"erase", true, blend.ModeDestinationOut},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBrush()
			b.SetColor(Red)
			b.SetEraser(tt.eraser)
			_ = b.SetOpacity(128)
			if got := b.blendMode(); got != tt.mode {
				t.Fatalf("blendMode() = %v, want %v", got, tt.mode)
			}

			buf := newTestBuffer(t, 5, 5, dst)
			b.MarkAt(buf, 2, 2)
			want := blend.Blend(Red.Pixel(128), dst, tt.mode)
			if got := buf.Pixel(2, 2); got != want {
				t.Errorf("Pixel(2,2) = %v, want %v", got, want)
			}
			if got := buf.Pixel(0, 0); got != dst {
				t.Errorf("Pixel(0,0) = %v, outside the footprint", got)
			}
		})
	}
}
