package bjpeg

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers distinguish failure classes with errors.Is;
// the cause attached by the constructors below carries the detail.
var (
	// ErrFormat marks a malformed input raster handed to RGBToImage or
	// GrayToImage: non-positive dimensions, or a pixel buffer shorter than
	// the dimensions require. Errors from the ppm package do not wrap it.
	ErrFormat = errors.New("bjpeg: input format error")

	// ErrIO marks a failure writing the encoded stream to Encode's writer.
	ErrIO = errors.New("bjpeg: i/o error")

	// ErrInvariant marks a condition that must never happen on valid
	// input: a bug in this package rather than a problem with the caller's
	// data. Encoding aborts immediately.
	ErrInvariant = errors.New("bjpeg: internal invariant violated")
)

// formatError wraps cause so that errors.Is(err, ErrFormat) succeeds.
func formatError(cause error) error {
	return &wrappedError{kind: ErrFormat, cause: cause}
}

// formatErrorf is formatError with a formatted cause.
func formatErrorf(format string, args ...any) error {
	return formatError(fmt.Errorf(format, args...))
}

// ioError wraps cause so that errors.Is(err, ErrIO) succeeds.
func ioError(cause error) error {
	return &wrappedError{kind: ErrIO, cause: cause}
}

// invariantError wraps cause so that errors.Is(err, ErrInvariant) succeeds.
func invariantError(cause error) error {
	return &wrappedError{kind: ErrInvariant, cause: cause}
}

type wrappedError struct {
	kind  error
	cause error
}

func (e *wrappedError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *wrappedError) Unwrap() []error {
	return []error{e.kind, e.cause}
}
