package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/webpread/pkg/ports"
	"github.com/user/webpread/pkg/riff"
)

// FrameDecoder is a mock implementation of ports.FrameDecoder.
//
// By default it parses only the container header of the handed
// bitstream and synthesizes a solid-color NRGBA image of the right
// size, cycling through Colors per call.
type FrameDecoder struct {
	mu      sync.Mutex
	calls   int
	Colors  []color.NRGBA
	History [][]byte

	DecodeFunc       func(data []byte) (image.Image, error)
	DecodeConfigFunc func(data []byte) (image.Config, error)
}

// NewFrameDecoder creates a mock decoder producing opaque gray frames.
func NewFrameDecoder(colors ...color.NRGBA) *FrameDecoder {
	if len(colors) == 0 {
		colors = []color.NRGBA{{R: 0x80, G: 0x80, B: 0x80, A: 0xff}}
	}
	return &FrameDecoder{Colors: colors}
}

func (m *FrameDecoder) Decode(data []byte) (image.Image, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	m.mu.Lock()
	col := m.Colors[m.calls%len(m.Colors)]
	m.calls++
	m.History = append(m.History, data)
	m.mu.Unlock()

	w, h, ok := riff.GetInfo(data)
	if !ok {
		w, h = 1, 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = col.R
		img.Pix[i+1] = col.G
		img.Pix[i+2] = col.B
		img.Pix[i+3] = col.A
	}
	return img, nil
}

func (m *FrameDecoder) DecodeConfig(data []byte) (image.Config, error) {
	if m.DecodeConfigFunc != nil {
		return m.DecodeConfigFunc(data)
	}
	w, h, _ := riff.GetInfo(data)
	return image.Config{ColorModel: color.NRGBAModel, Width: w, Height: h}, nil
}

// DecodeCalls returns the number of Decode invocations (for test verification).
func (m *FrameDecoder) DecodeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ ports.FrameDecoder = (*FrameDecoder)(nil)
