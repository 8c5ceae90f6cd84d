package paint

import (
	"errors"
	"fmt"

	intImage "github.com/gogpu/paint/internal/image"
)

// Errors returned by the paint core. Every failing operation leaves the
// document and brush exactly as they were before the call.
var (
	// ErrInvalidDimension is returned for non-positive canvas or buffer sizes.
	ErrInvalidDimension = intImage.ErrInvalidDimensions

	// ErrOutOfBounds is returned by pixel access outside a buffer. Seeing it
	// from a pointer event means the caller mapped coordinates incorrectly.
	ErrOutOfBounds = intImage.ErrOutOfBounds

	// ErrIndexOutOfRange is returned when selecting a layer that does not exist.
	ErrIndexOutOfRange = errors.New("paint: layer index out of range")

	// ErrDecode wraps failures to read or decode an image file.
	ErrDecode = errors.New("paint: decode failed")

	// ErrEncode wraps failures to encode or write an image file.
	ErrEncode = errors.New("paint: encode failed")

	// ErrInvalidNumericInput is returned for text that is not an integer, or
	// for a brush size or opacity outside its valid range.
	ErrInvalidNumericInput = errors.New("paint: invalid numeric input")

	// ErrInvalidColor is returned for color names or hex strings that cannot
	// be parsed.
	ErrInvalidColor = errors.New("paint: invalid color")

	// ErrBusy is returned when a resize or load is requested while a stroke
	// is in progress.
	ErrBusy = errors.New("paint: stroke in progress")

	// ErrUnknownCommand is returned by Dispatch for unregistered command names.
	ErrUnknownCommand = errors.New("paint: unknown command")
)

func wrapDecode(err error) error {
	return fmt.Errorf("%w: %w", ErrDecode, err)
}

func wrapEncode(err error) error {
	return fmt.Errorf("%w: %w", ErrEncode, err)
}
