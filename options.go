package paint

import "time"

// Default canvas size of a new session.
const (
	DefaultCanvasWidth  = 750
	DefaultCanvasHeight = 500
)

// Option configures a Session during creation.
// Use functional options to customize Session behavior.
//
// Example:
//
//	s, err := paint.NewSession(
//	    paint.WithCanvasSize(1024, 768),
//	    paint.WithDisplay(paint.DisplayFunc(show)),
//	)
type Option func(*options)

// options holds optional configuration for Session creation.
type options struct {
	width, height  int
	size           int
	opacity        int
	color          Color
	clock          Clock
	display        Display
	redrawInterval time.Duration
	resizeMode     ResizeMode
	dabSpacing     float64
}

// defaultOptions returns the default session options.
func defaultOptions() options {
	return options{
		width:          DefaultCanvasWidth,
		height:         DefaultCanvasHeight,
		size:           DefaultBrushSize,
		opacity:        DefaultOpacity,
		color:          Black,
		clock:          SystemClock{},
		redrawInterval: DefaultRedrawInterval,
		resizeMode:     ResizeCrop,
		dabSpacing:     DefaultDabSpacing,
	}
}

// WithCanvasSize sets the initial canvas size.
func WithCanvasSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithBrushSize sets the initial brush diameter.
func WithBrushSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithOpacity sets the initial brush opacity (0-255).
func WithOpacity(opacity int) Option {
	return func(o *options) {
		o.opacity = opacity
	}
}

// WithColor sets the initial brush color.
func WithColor(c Color) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithClock injects the clock used for redraw throttling.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithDisplay sets where flattened frames are pushed.
func WithDisplay(d Display) Option {
	return func(o *options) {
		o.display = d
	}
}

// WithRedrawInterval sets the minimum time between redraws during a stroke.
// Zero redraws on every move.
func WithRedrawInterval(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.redrawInterval = d
		}
	}
}

// WithResizeMode selects how ResizeCanvas carries layer content.
func WithResizeMode(m ResizeMode) Option {
	return func(o *options) {
		o.resizeMode = m
	}
}

// WithDabSpacing sets the stamp spacing as a fraction of the brush size.
func WithDabSpacing(fraction float64) Option {
	return func(o *options) {
		if fraction > 0 {
			o.dabSpacing = fraction
		}
	}
}
