package riff

import (
	"encoding/binary"
	"image/color"
)

// Helpers for building WebP containers in tests. The bitstream payloads
// carry valid headers but dummy entropy-coded data, which is enough for
// container-level code and mock decoders.

// TestChunk is one chunk of a test container.
type TestChunk struct {
	FourCC  string
	Payload []byte
}

// BuildTestWebP assembles a RIFF/WEBP container from chunks.
func BuildTestWebP(chunks ...TestChunk) []byte {
	total := HeaderSize
	for _, c := range chunks {
		total += chunkHeaderSize + len(c.Payload) + len(c.Payload)&1
	}

	buf := make([]byte, 0, total)
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(total-8))
	buf = append(buf, "WEBP"...)
	for _, c := range chunks {
		buf = appendChunk(buf, c.FourCC, c.Payload)
	}
	return buf
}

// TestVP8Payload returns a VP8 chunk payload with a valid keyframe header.
func TestVP8Payload(width, height int) []byte {
	p := make([]byte, 12)
	// 3-byte frame tag: keyframe, version 0, show frame.
	p[3] = 0x9d
	p[4] = 0x01
	p[5] = 0x2a
	binary.LittleEndian.PutUint16(p[6:8], uint16(width))
	binary.LittleEndian.PutUint16(p[8:10], uint16(height))
	return p
}

// TestVP8LPayload returns a VP8L chunk payload with a valid stream header.
func TestVP8LPayload(width, height int, alpha bool) []byte {
	bits := uint32(width-1) | uint32(height-1)<<14
	if alpha {
		bits |= 1 << 28
	}
	p := make([]byte, 6)
	p[0] = 0x2f
	binary.LittleEndian.PutUint32(p[1:5], bits)
	return p
}

// TestVP8XChunk returns a VP8X chunk for the given feature flags and
// canvas size.
func TestVP8XChunk(flags byte, width, height int) TestChunk {
	p := make([]byte, 10)
	p[0] = flags
	putLE24(p[4:7], width-1)
	putLE24(p[7:10], height-1)
	return TestChunk{FourCC: fccVP8X, Payload: p}
}

// TestANIMChunk returns an ANIM chunk with the given background color
// and loop count.
func TestANIMChunk(bg color.NRGBA, loopCount int) TestChunk {
	p := make([]byte, 6)
	p[0] = bg.B
	p[1] = bg.G
	p[2] = bg.R
	p[3] = bg.A
	binary.LittleEndian.PutUint16(p[4:6], uint16(loopCount))
	return TestChunk{FourCC: fccANIM, Payload: p}
}

// TestANMFChunk returns an ANMF chunk wrapping the given sub-chunks.
// Offsets must be even, matching the container's halved encoding.
func TestANMFChunk(x, y, width, height, durationMs int, blend, disposeBackground bool, sub ...TestChunk) TestChunk {
	p := make([]byte, 16)
	putLE24(p[0:3], x/2)
	putLE24(p[3:6], y/2)
	putLE24(p[6:9], width-1)
	putLE24(p[9:12], height-1)
	putLE24(p[12:15], durationMs)
	if !blend {
		p[15] |= 0x02
	}
	if disposeBackground {
		p[15] |= 0x01
	}
	for _, c := range sub {
		p = appendChunk(p, c.FourCC, c.Payload)
	}
	return TestChunk{FourCC: fccANMF, Payload: p}
}

// TestStillWebP returns a minimal lossless still image container.
func TestStillWebP(width, height int, alpha bool) []byte {
	return BuildTestWebP(TestChunk{FourCC: fccVP8L, Payload: TestVP8LPayload(width, height, alpha)})
}

// TestAnimatedWebP returns an animated container whose frames all have
// the given size and duration, laid out at the origin.
func TestAnimatedWebP(width, height, frameCount, durationMs int) []byte {
	chunks := []TestChunk{
		TestVP8XChunk(0x02, width, height),
		TestANIMChunk(color.NRGBA{}, 0),
	}
	for i := 0; i < frameCount; i++ {
		chunks = append(chunks, TestANMFChunk(0, 0, width, height, durationMs, true, false,
			TestChunk{FourCC: fccVP8L, Payload: TestVP8LPayload(width, height, false)}))
	}
	return BuildTestWebP(chunks...)
}
