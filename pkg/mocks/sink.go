package mocks

import (
	"image"
	"sync"

	"github.com/user/webpread/pkg/ports"
)

// FrameSink is a mock implementation of ports.FrameSink that records
// everything saved to it.
type FrameSink struct {
	mu       sync.Mutex
	frames   map[int]image.Image
	metadata []byte
	sheet    image.Image

	// Disabled makes Enabled report false (simulates a dry-run sink).
	Disabled bool

	SaveFrameFunc func(index int, img image.Image) error
}

// NewFrameSink creates a new mock FrameSink.
func NewFrameSink() *FrameSink {
	return &FrameSink{frames: make(map[int]image.Image)}
}

func (m *FrameSink) Enabled() bool {
	return !m.Disabled
}

func (m *FrameSink) SaveFrame(index int, img image.Image) error {
	if m.SaveFrameFunc != nil {
		return m.SaveFrameFunc(index, img)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames[index] = img
	return nil
}

func (m *FrameSink) SaveMetadata(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadata = append([]byte(nil), data...)
	return nil
}

func (m *FrameSink) SaveSheet(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheet = img
	return nil
}

// Frame returns a saved frame (for test verification).
func (m *FrameSink) Frame(index int) (image.Image, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	img, ok := m.frames[index]
	return img, ok
}

// FrameCount returns the number of saved frames.
func (m *FrameSink) FrameCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.frames)
}

// Metadata returns the saved metadata JSON.
func (m *FrameSink) Metadata() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.metadata
}

// Sheet returns the saved contact sheet.
func (m *FrameSink) Sheet() image.Image {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sheet
}

var _ ports.FrameSink = (*FrameSink)(nil)
