// Package paint is the core of a layered raster painting program.
//
// # Overview
//
// A document is a stack of equally sized, transparent-capable layers of
// straight-alpha RGBA8 pixels. Freehand strokes are rasterized into the
// active layer, the layers are composited back to front with the over
// operator for display, and documents are saved and loaded as flat images.
//
// # Quick Start
//
//	import "github.com/gogpu/paint"
//
//	s, err := paint.NewSession(paint.WithCanvasSize(200, 100))
//	if err != nil {
//	    return err
//	}
//	s.SetColor(paint.Red)
//	s.PointerDown(10, 10)
//	s.PointerMove(190, 90)
//	s.PointerUp(190, 90)
//	err = s.Save("out.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Session, LayerStack, Brush, Rasterizer, Scheduler
//   - Internal: image (buffers, resampling, codecs), blend (compositing),
//     raster (stroke footprints), export (PDF), config (YAML settings)
//   - Front end: internal/ui (Fyne widgets) and cmd/paint
//
// # Coordinate System
//
// Canvas coordinates are integer pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Threading
//
// A Session and everything it owns is single-threaded. UI toolkits must
// deliver pointer and toolbar events on one goroutine.
package paint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
