// Package nullsink provides a no-op frame sink.
package nullsink

import (
	"image"

	"github.com/user/webpread/pkg/ports"
)

// Sink discards all output. Used for dry runs where only decoding is
// of interest.
type Sink struct{}

// New creates a new null Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveFrame does nothing.
func (s *Sink) SaveFrame(index int, img image.Image) error {
	return nil
}

// SaveMetadata does nothing.
func (s *Sink) SaveMetadata(data []byte) error {
	return nil
}

// SaveSheet does nothing.
func (s *Sink) SaveSheet(img image.Image) error {
	return nil
}

// Ensure Sink implements ports.FrameSink
var _ ports.FrameSink = (*Sink)(nil)
