package imageio

import "errors"

var (
	// ErrFormatNotFound is returned when no registered format matches.
	ErrFormatNotFound = errors.New("imageio: format not found")

	// ErrNoSuchSubimage is returned for out-of-range subimage seeks.
	ErrNoSuchSubimage = errors.New("imageio: no such subimage")

	// ErrScanlineRange is returned for out-of-range scanline reads.
	ErrScanlineRange = errors.New("imageio: scanline out of range")

	// ErrShortBuffer is returned when a scanline buffer is too small.
	ErrShortBuffer = errors.New("imageio: scanline buffer too small")

	// ErrClosed is returned when reading from a closed input.
	ErrClosed = errors.New("imageio: input is closed")
)
