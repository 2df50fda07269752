package ports

import (
	"image"
)

// FrameSink abstracts output of extracted frames and metadata.
type FrameSink interface {
	// Enabled returns true if the sink produces output.
	Enabled() bool

	// SaveFrame saves one reconstructed frame.
	SaveFrame(index int, img image.Image) error

	// SaveMetadata saves the image metadata as JSON.
	SaveMetadata(data []byte) error

	// SaveSheet saves a contact sheet image.
	SaveSheet(img image.Image) error
}
