// Package riff implements container-level parsing of WebP files: header
// validation, feature detection and demuxing of still images and
// ANIM/ANMF animation frame lists.
//
// The package never touches the VP8/VP8L entropy-coded payloads; frames
// are handed to a bitstream decoder as re-wrapped standalone files.
package riff

import "encoding/binary"

// HeaderSize is the size of the RIFF container header
// ("RIFF" + file size + "WEBP"). Files shorter than this are rejected.
const HeaderSize = 12

const chunkHeaderSize = 8

// Chunk FourCCs of the WebP container.
const (
	fccVP8  = "VP8 "
	fccVP8L = "VP8L"
	fccVP8X = "VP8X"
	fccANIM = "ANIM"
	fccANMF = "ANMF"
	fccALPH = "ALPH"
	fccICCP = "ICCP"
	fccEXIF = "EXIF"
	fccXMP  = "XMP "
)

// VP8X feature flags.
const (
	flagAnimation = 0x02
	flagXMP       = 0x04
	flagEXIF      = 0x08
	flagAlpha     = 0x10
	flagICC       = 0x20
)

func le16(b []byte) int {
	return int(binary.LittleEndian.Uint16(b))
}

func le24(b []byte) int {
	return int(b[0]) | int(b[1])<<8 | int(b[2])<<16
}

func le32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func putLE24(b []byte, v int) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}

// IsWebP reports whether the data prefix carries the RIFF/WEBP magic.
func IsWebP(prefix []byte) bool {
	return len(prefix) >= HeaderSize &&
		string(prefix[0:4]) == "RIFF" &&
		string(prefix[8:12]) == "WEBP"
}

// GetInfo validates the container magic and extracts the canvas
// dimensions from the first chunk. It works on a bounded prefix of the
// file (the container header plus the first chunk's fixed header fields)
// and never reads entropy-coded data.
func GetInfo(prefix []byte) (width, height int, ok bool) {
	if !IsWebP(prefix) {
		return 0, 0, false
	}

	off := HeaderSize
	if len(prefix) < off+chunkHeaderSize {
		return 0, 0, false
	}
	fourCC := string(prefix[off : off+4])
	p := prefix[off+chunkHeaderSize:]

	switch fourCC {
	case fccVP8X:
		// 1 byte flags, 3 reserved, then canvas width-1 and height-1
		// as 24-bit little-endian values.
		if len(p) < 10 {
			return 0, 0, false
		}
		return le24(p[4:7]) + 1, le24(p[7:10]) + 1, true

	case fccVP8:
		return vp8Dimensions(p)

	case fccVP8L:
		return vp8lDimensions(p)
	}
	return 0, 0, false
}

// vp8Dimensions reads the dimensions from a VP8 keyframe header.
func vp8Dimensions(p []byte) (int, int, bool) {
	// 3-byte frame tag, 3-byte sync code, then 16-bit dimensions with
	// the upper 2 bits used as scaling hints.
	if len(p) < 10 {
		return 0, 0, false
	}
	frameTag := le24(p[0:3])
	if frameTag&1 != 0 {
		// Interframe; a valid still image starts with a keyframe.
		return 0, 0, false
	}
	if p[3] != 0x9d || p[4] != 0x01 || p[5] != 0x2a {
		return 0, 0, false
	}
	return le16(p[6:8]) & 0x3fff, le16(p[8:10]) & 0x3fff, true
}

// vp8lDimensions reads the dimensions from a VP8L stream header.
func vp8lDimensions(p []byte) (int, int, bool) {
	// 1-byte signature, then 14-bit width-1, 14-bit height-1,
	// 1 alpha bit and a 3-bit version packed little-endian.
	if len(p) < 5 {
		return 0, 0, false
	}
	if p[0] != 0x2f {
		return 0, 0, false
	}
	bits := le32(p[1:5])
	if bits>>29 != 0 { // version must be 0
		return 0, 0, false
	}
	return int(bits&0x3fff) + 1, int(bits>>14&0x3fff) + 1, true
}

// vp8lHasAlpha reads the alpha-hint bit from a VP8L stream header.
func vp8lHasAlpha(p []byte) bool {
	if len(p) < 5 || p[0] != 0x2f {
		return false
	}
	return le32(p[1:5])>>28&1 == 1
}
