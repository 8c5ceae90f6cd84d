package paint

import (
	"errors"
	"testing"
)

func newTestStack(t *testing.T, w, h int) *LayerStack {
	t.Helper()
	s, err := NewLayerStack(w, h)
	if err != nil {
		t.Fatalf("NewLayerStack(%d, %d) error = %v", w, h, err)
	}
	return s
}

func TestNewLayerStack(t *testing.T) {
	s := newTestStack(t, 8, 6)
	if s.Len() != 1 || s.Current() != 0 {
		t.Fatalf("Len() = %d Current() = %d, want 1 and 0", s.Len(), s.Current())
	}
	l, err := s.Layer(0)
	if err != nil {
		t.Fatal(err)
	}
	if l.Name() != "Layer 1" || l.ID() == "" {
		t.Errorf("layer name %q id %q", l.Name(), l.ID())
	}
	if !l.Buffer().Equal(newTestBuffer(t, 8, 6, Transparent)) {
		t.Error("new layer is not transparent")
	}

	for _, sz := range [][2]int{{0, 5}, {5, 0}, {-1, -1}, {MaxDimension + 1, 1}, {1 << 31, 1 << 31}} {
		if _, err := NewLayerStack(sz[0], sz[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewLayerStack(%d, %d) error = %v, want ErrInvalidDimension", sz[0], sz[1], err)
		}
	}
}

func TestAddLayerSelectsIt(t *testing.T) {
	s := newTestStack(t, 4, 4)
	for want := 1; want < 4; want++ {
		i, err := s.AddLayer()
		if err != nil {
			t.Fatal(err)
		}
		if i != want || s.Current() != want || s.Len() != want+1 {
			t.Fatalf("AddLayer() = %d, Current() = %d, Len() = %d", i, s.Current(), s.Len())
		}
	}
	ids := map[string]bool{}
	for _, l := range s.Layers() {
		if ids[l.ID()] {
			t.Errorf("duplicate layer id %s", l.ID())
		}
		ids[l.ID()] = true
	}
}

func TestSelectLayer(t *testing.T) {
	s := newTestStack(t, 4, 4)
	_, _ = s.AddLayer()
	_, _ = s.AddLayer()

	if err := s.SelectLayer(1); err != nil {
		t.Fatalf("SelectLayer(1) error = %v", err)
	}
	for _, i := range []int{-1, 3, 100} {
		if err := s.SelectLayer(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SelectLayer(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
		if s.Current() != 1 {
			t.Errorf("SelectLayer(%d) changed selection to %d", i, s.Current())
		}
	}
	if _, err := s.Layer(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Layer(3) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestNextPreviousLayerClamp(t *testing.T) {
	s := newTestStack(t, 4, 4)
	_, _ = s.AddLayer()
	_, _ = s.AddLayer()

	if got := s.NextLayer(); got != 2 {
		t.Errorf("NextLayer() at top = %d, want 2", got)
	}
	if got := s.PreviousLayer(); got != 1 {
		t.Errorf("PreviousLayer() = %d, want 1", got)
	}
	s.PreviousLayer()
	if got := s.PreviousLayer(); got != 0 {
		t.Errorf("PreviousLayer() at bottom = %d, want 0", got)
	}
	if got := s.NextLayer(); got != 1 {
		t.Errorf("NextLayer() = %d, want 1", got)
	}
}

func TestActiveBufferFollowsSelection(t *testing.T) {
	s := newTestStack(t, 4, 4)
	_, _ = s.AddLayer()
	_ = s.SelectLayer(0)
	l0, _ := s.Layer(0)
	if s.ActiveBuffer() != l0.Buffer() {
		t.Error("ActiveBuffer() is not layer 0's buffer")
	}
}

// Scenario C: shrinking crops at the origin, growing exposes transparency.
func TestResizeAllCrop(t *testing.T) {
	s := newTestStack(t, 100, 100)
	_, _ = s.AddLayer()
	for _, buf := range s.Buffers() {
		for y := range 100 {
			for x := range 100 {
				_ = buf.Set(x, y, Pixel{R: uint8(x), G: uint8(y), B: 7, A: 255})
			}
		}
	}
	if err := s.ResizeAll(50, 50, ResizeCrop); err != nil {
		t.Fatalf("ResizeAll() error = %v", err)
	}
	if w, h := s.Size(); w != 50 || h != 50 {
		t.Fatalf("Size() = %dx%d, want 50x50", w, h)
	}
	for i, buf := range s.Buffers() {
		if buf.Width() != 50 || buf.Height() != 50 {
			t.Fatalf("layer %d is %dx%d", i, buf.Width(), buf.Height())
		}
		for y := range 50 {
			for x := range 50 {
				want := Pixel{R: uint8(x), G: uint8(y), B: 7, A: 255}
				if got := buf.Pixel(x, y); got != want {
					t.Fatalf("layer %d (%d,%d) = %v, want %v", i, x, y, got, want)
				}
			}
		}
	}

	if err := s.ResizeAll(60, 55, ResizeCrop); err != nil {
		t.Fatal(err)
	}
	buf := s.ActiveBuffer()
	if got := buf.Pixel(55, 10); got != Transparent {
		t.Errorf("exposed pixel = %v, want transparent", got)
	}
	if got := buf.Pixel(49, 49); got.A != 255 {
		t.Errorf("kept pixel = %v, want opaque", got)
	}
}

func TestResizeAllScale(t *testing.T) {
	s := newTestStack(t, 10, 10)
	s.ActiveBuffer().Fill(Red.Pixel(255))
	if err := s.ResizeAll(20, 5, ResizeScale); err != nil {
		t.Fatal(err)
	}
	buf := s.ActiveBuffer()
	if buf.Width() != 20 || buf.Height() != 5 {
		t.Fatalf("scaled to %dx%d", buf.Width(), buf.Height())
	}
	if got := buf.Pixel(19, 4); got != Red.Pixel(255) {
		t.Errorf("scaled pixel = %v, want red", got)
	}
}

func TestResizeAllInvalidKeepsStack(t *testing.T) {
	s := newTestStack(t, 10, 10)
	before := s.ActiveBuffer()
	for _, sz := range [][2]int{{0, 10}, {1 << 31, 1 << 31}, {100000, 100000}} {
		for _, mode := range []ResizeMode{ResizeCrop, ResizeScale} {
			if err := s.ResizeAll(sz[0], sz[1], mode); !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("ResizeAll(%d, %d, %v) error = %v, want ErrInvalidDimension", sz[0], sz[1], mode, err)
			}
		}
	}
	if w, h := s.Size(); w != 10 || h != 10 || s.ActiveBuffer() != before {
		t.Error("failed resize modified the stack")
	}
}

func TestReplaceWithSingleLayer(t *testing.T) {
	s := newTestStack(t, 10, 10)
	_, _ = s.AddLayer()
	_, _ = s.AddLayer()
	img := newTestBuffer(t, 3, 7, Green.Pixel(255))
	if err := s.ReplaceWithSingleLayer(img); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 || s.Current() != 0 {
		t.Errorf("Len() = %d Current() = %d", s.Len(), s.Current())
	}
	if w, h := s.Size(); w != 3 || h != 7 {
		t.Errorf("Size() = %dx%d, want 3x7", w, h)
	}
	l, _ := s.Layer(0)
	if l.Name() != "Layer 1" {
		t.Errorf("Name() = %q, want numbering restarted", l.Name())
	}
	if err := s.ReplaceWithSingleLayer(nil); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("ReplaceWithSingleLayer(nil) error = %v", err)
	}
}

func TestLayerThumbnail(t *testing.T) {
	s := newTestStack(t, 200, 100)
	th, err := s.Thumbnail(0, 50)
	if err != nil {
		t.Fatal(err)
	}
	if th.Width() != 50 || th.Height() != 25 {
		t.Errorf("thumbnail is %dx%d, want 50x25", th.Width(), th.Height())
	}
	if _, err := s.Thumbnail(4, 50); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Thumbnail(4) error = %v", err)
	}
}

func TestParseResizeMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ResizeMode
		wantErr bool
	}{
		{"", ResizeCrop, false},
		{"crop", ResizeCrop, false},
		{"scale", ResizeScale, false},
		{"stretch", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseResizeMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseResizeMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseResizeMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewPixelBufferRejectsOversize(t *testing.T) {
	for _, sz := range [][2]int{{1 << 31, 1 << 31}, {MaxDimension, MaxDimension}} {
		buf, err := NewPixelBuffer(sz[0], sz[1], Red.Pixel(255))
		if !errors.Is(err, ErrInvalidDimension) || buf != nil {
			t.Errorf("NewPixelBuffer(%d, %d) = %v, %v, want nil, ErrInvalidDimension", sz[0], sz[1], buf, err)
		}
	}
}
