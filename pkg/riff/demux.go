package riff

import (
	"encoding/binary"
	"fmt"
	"image/color"
)

// Frame is one demuxed image fragment: the whole bitstream for a still
// image, or one ANMF entry of an animation.
type Frame struct {
	// X and Y are the frame's offsets on the canvas, in pixels.
	X int
	Y int

	// Width and Height are the frame dimensions in pixels.
	Width  int
	Height int

	// DurationMs is the display duration in milliseconds (0 for stills).
	DurationMs int

	// Blend is true when the frame alpha-blends onto the canvas and
	// false when it overwrites the frame rectangle.
	Blend bool

	// DisposeBackground is true when the frame rectangle must be
	// filled with the background color after the frame is displayed.
	DisposeBackground bool

	// HasAlpha is true when the frame bitstream signals an alpha
	// channel (ALPH chunk or the VP8L header alpha bit).
	HasAlpha bool

	// Bitstream is the frame re-wrapped as a standalone WebP file so
	// that a whole-image decoder can decode it.
	Bitstream []byte
}

// Demuxer holds the parsed structure of a WebP container.
type Demuxer struct {
	// CanvasWidth and CanvasHeight are the canvas dimensions.
	CanvasWidth  int
	CanvasHeight int

	// Animated is true when the container carries an ANIM chunk with
	// at least one frame.
	Animated bool

	// HasAlpha is true when any frame signals an alpha channel.
	HasAlpha bool

	// LoopCount is the animation repeat count (0 = infinite).
	LoopCount int

	// BackgroundColor is the canvas background for animations.
	BackgroundColor color.NRGBA

	// ICCP, EXIF and XMP hold raw metadata chunk payloads, if present.
	ICCP []byte
	EXIF []byte
	XMP  []byte

	// Frames lists the demuxed frames in display order. Still images
	// are represented as a single frame covering the canvas.
	Frames []Frame
}

// FrameCount returns the number of demuxed frames.
func (d *Demuxer) FrameCount() int {
	return len(d.Frames)
}

// Demux parses a whole WebP file held in memory.
func Demux(data []byte) (*Demuxer, error) {
	if len(data) < HeaderSize {
		return nil, ErrTooShort
	}
	if !IsWebP(data) {
		return nil, ErrNotWebP
	}

	// The RIFF size field covers everything after the first 8 bytes.
	// Tolerate files whose actual size disagrees by clamping to the
	// smaller of the two.
	end := len(data)
	if riffEnd := 8 + int(le32(data[4:8])); riffEnd >= HeaderSize && riffEnd < end {
		end = riffEnd
	}

	d := &Demuxer{}
	var (
		sawVP8X     bool
		flags       byte
		stillFourCC string
		stillBits   []byte
		stillAlpha  []byte
	)

	off := HeaderSize
	for off+chunkHeaderSize <= end {
		fourCC := string(data[off : off+4])
		size := int(le32(data[off+4 : off+8]))
		payloadStart := off + chunkHeaderSize
		if size < 0 || payloadStart+size > end {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrTruncated, fourCC, off)
		}
		p := data[payloadStart : payloadStart+size]

		switch fourCC {
		case fccVP8X:
			if len(p) < 10 {
				return nil, fmt.Errorf("%w: %q payload too small", ErrTruncated, fourCC)
			}
			sawVP8X = true
			flags = p[0]
			d.CanvasWidth = le24(p[4:7]) + 1
			d.CanvasHeight = le24(p[7:10]) + 1

		case fccANIM:
			if len(p) < 6 {
				return nil, fmt.Errorf("%w: %q payload too small", ErrTruncated, fourCC)
			}
			// Background color is stored as B, G, R, A.
			d.BackgroundColor = color.NRGBA{R: p[2], G: p[1], B: p[0], A: p[3]}
			d.LoopCount = le16(p[4:6])

		case fccANMF:
			frame, err := parseFrame(p)
			if err != nil {
				return nil, err
			}
			d.Frames = append(d.Frames, frame)

		case fccALPH:
			stillAlpha = p

		case fccVP8, fccVP8L:
			if stillFourCC == "" {
				stillFourCC = fourCC
				stillBits = p
			}

		case fccICCP:
			d.ICCP = p
		case fccEXIF:
			d.EXIF = p
		case fccXMP:
			d.XMP = p
		}

		// Chunk payloads are padded to even sizes.
		off = payloadStart + size + size&1
	}

	d.Animated = flags&flagAnimation != 0 && len(d.Frames) > 0

	if !d.Animated {
		if stillFourCC == "" {
			return nil, ErrNoBitstream
		}
		if !sawVP8X {
			w, h, ok := bitstreamDimensions(stillFourCC, stillBits)
			if !ok {
				return nil, fmt.Errorf("%w: bad %q header", ErrNoBitstream, stillFourCC)
			}
			d.CanvasWidth, d.CanvasHeight = w, h
		}
		frame := Frame{
			Width:    d.CanvasWidth,
			Height:   d.CanvasHeight,
			HasAlpha: stillAlpha != nil || (stillFourCC == fccVP8L && vp8lHasAlpha(stillBits)),
		}
		frame.Bitstream = wrapBitstream(frame.Width, frame.Height, stillFourCC, stillAlpha, stillBits)
		d.Frames = []Frame{frame}
	}

	d.HasAlpha = flags&flagAlpha != 0
	for i := range d.Frames {
		if d.Frames[i].HasAlpha {
			d.HasAlpha = true
		}
	}

	return d, nil
}

func bitstreamDimensions(fourCC string, p []byte) (int, int, bool) {
	if fourCC == fccVP8L {
		return vp8lDimensions(p)
	}
	return vp8Dimensions(p)
}

// parseFrame parses one ANMF chunk payload.
func parseFrame(p []byte) (Frame, error) {
	// 16-byte frame header followed by the frame's own chunk list.
	const frameHeaderSize = 16
	if len(p) < frameHeaderSize+chunkHeaderSize {
		return Frame{}, fmt.Errorf("%w: payload of %d bytes", ErrBadFrame, len(p))
	}

	f := Frame{
		// Offsets are stored halved in the container.
		X:          2 * le24(p[0:3]),
		Y:          2 * le24(p[3:6]),
		Width:      le24(p[6:9]) + 1,
		Height:     le24(p[9:12]) + 1,
		DurationMs: le24(p[12:15]),
	}
	frameFlags := p[15]
	f.Blend = frameFlags&0x02 == 0
	f.DisposeBackground = frameFlags&0x01 != 0

	var (
		fourCC string
		bits   []byte
		alpha  []byte
	)
	off := frameHeaderSize
	for off+chunkHeaderSize <= len(p) {
		cc := string(p[off : off+4])
		size := int(le32(p[off+4 : off+8]))
		payloadStart := off + chunkHeaderSize
		if size < 0 || payloadStart+size > len(p) {
			return Frame{}, fmt.Errorf("%w: %q sub-chunk truncated", ErrBadFrame, cc)
		}
		switch cc {
		case fccALPH:
			alpha = p[payloadStart : payloadStart+size]
		case fccVP8, fccVP8L:
			if fourCC == "" {
				fourCC = cc
				bits = p[payloadStart : payloadStart+size]
			}
		}
		off = payloadStart + size + size&1
	}
	if fourCC == "" {
		return Frame{}, fmt.Errorf("%w: no image bitstream", ErrBadFrame)
	}

	f.HasAlpha = alpha != nil || (fourCC == fccVP8L && vp8lHasAlpha(bits))
	f.Bitstream = wrapBitstream(f.Width, f.Height, fourCC, alpha, bits)
	return f, nil
}

// wrapBitstream re-wraps a frame's chunks as a standalone WebP file.
// Frames with a separate alpha plane need a synthesized VP8X chunk, as
// decoders only accept ALPH inside the extended format.
func wrapBitstream(width, height int, fourCC string, alpha, bits []byte) []byte {
	total := HeaderSize + chunkHeaderSize + len(bits) + len(bits)&1
	if alpha != nil {
		total += chunkHeaderSize + 10
		total += chunkHeaderSize + len(alpha) + len(alpha)&1
	}

	buf := make([]byte, 0, total)
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(total-8))
	buf = append(buf, "WEBP"...)

	if alpha != nil {
		var vp8x [10]byte
		vp8x[0] = flagAlpha
		putLE24(vp8x[4:7], width-1)
		putLE24(vp8x[7:10], height-1)
		buf = appendChunk(buf, fccVP8X, vp8x[:])
		buf = appendChunk(buf, fccALPH, alpha)
	}
	return appendChunk(buf, fourCC, bits)
}

func appendChunk(buf []byte, fourCC string, payload []byte) []byte {
	buf = append(buf, fourCC...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(payload)))
	buf = append(buf, payload...)
	if len(payload)&1 == 1 {
		buf = append(buf, 0)
	}
	return buf
}
