// Package webpdecoder adapts the pure Go WebP bitstream decoder from
// golang.org/x/image to the FrameDecoder port.
package webpdecoder

import (
	"bytes"
	"fmt"
	"image"

	"golang.org/x/image/webp"

	"github.com/user/webpread/pkg/ports"
)

// Decoder decodes standalone WebP bitstreams (VP8, VP8L, optional ALPH).
type Decoder struct{}

// New creates a new Decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode decodes an encoded frame into pixels.
func (d *Decoder) Decode(data []byte) (image.Image, error) {
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode webp bitstream: %w", err)
	}
	return img, nil
}

// DecodeConfig parses only the frame header.
func (d *Decoder) DecodeConfig(data []byte) (image.Config, error) {
	cfg, err := webp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, fmt.Errorf("decode webp header: %w", err)
	}
	return cfg, nil
}

// Ensure Decoder implements ports.FrameDecoder
var _ ports.FrameDecoder = (*Decoder)(nil)
