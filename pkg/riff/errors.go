package riff

import "errors"

var (
	// ErrTooShort is returned when the data is smaller than the
	// container header.
	ErrTooShort = errors.New("riff: data shorter than WebP header")

	// ErrNotWebP is returned when the RIFF/WEBP magic is missing.
	ErrNotWebP = errors.New("riff: not a WebP file")

	// ErrTruncated is returned when a chunk extends past the end of
	// the data.
	ErrTruncated = errors.New("riff: truncated chunk")

	// ErrNoBitstream is returned when the container holds no VP8 or
	// VP8L image data.
	ErrNoBitstream = errors.New("riff: no image bitstream found")

	// ErrBadFrame is returned when an animation frame chunk is malformed.
	ErrBadFrame = errors.New("riff: malformed animation frame")
)
