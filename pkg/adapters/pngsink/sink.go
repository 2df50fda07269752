// Package pngsink provides a frame sink that writes PNG files.
package pngsink

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/user/webpread/pkg/ports"
)

// Sink saves extracted frames as PNG files under a base directory.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink writes output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveFrame saves one reconstructed frame as frame-NNNN.png.
func (s *Sink) SaveFrame(index int, img image.Image) error {
	data, err := encodePNG(img)
	if err != nil {
		return fmt.Errorf("encode frame %d: %w", index, err)
	}
	path := filepath.Join(s.baseDir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// SaveMetadata saves the image metadata as metadata.json.
func (s *Sink) SaveMetadata(data []byte) error {
	path := filepath.Join(s.baseDir, "metadata.json")
	return s.fs.WriteFile(path, data)
}

// SaveSheet saves a contact sheet image as sheet.png.
func (s *Sink) SaveSheet(img image.Image) error {
	data, err := encodePNG(img)
	if err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}
	path := filepath.Join(s.baseDir, "sheet.png")
	return s.fs.WriteFile(path, data)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ensure Sink implements ports.FrameSink
var _ ports.FrameSink = (*Sink)(nil)
