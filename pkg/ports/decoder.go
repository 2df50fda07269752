package ports

import "image"

// FrameDecoder abstracts decoding of a single encoded image frame.
//
// A frame is a standalone bitstream: either a whole still image file or
// one animation frame re-wrapped by the demuxer so that a whole-image
// decoder can handle it.
type FrameDecoder interface {
	// Decode decodes an encoded frame into pixels.
	Decode(data []byte) (image.Image, error)

	// DecodeConfig parses only the frame header and returns dimensions
	// and color model without decoding pixel data.
	DecodeConfig(data []byte) (image.Config, error)
}
