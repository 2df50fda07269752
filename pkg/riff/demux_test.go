package riff

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

func testBG() color.NRGBA {
	return color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}
}

func TestDemuxStillLossless(t *testing.T) {
	data := TestStillWebP(64, 48, false)

	d, err := Demux(data)
	if err != nil {
		t.Fatalf("Demux failed: %v", err)
	}

	if d.CanvasWidth != 64 || d.CanvasHeight != 48 {
		t.Errorf("expected canvas 64x48, got %dx%d", d.CanvasWidth, d.CanvasHeight)
	}
	if d.Animated {
		t.Error("still image reported as animated")
	}
	if d.FrameCount() != 1 {
		t.Fatalf("expected 1 frame, got %d", d.FrameCount())
	}
	if d.HasAlpha {
		t.Error("expected no alpha")
	}

	f := d.Frames[0]
	if f.Width != 64 || f.Height != 48 || f.X != 0 || f.Y != 0 {
		t.Errorf("unexpected frame geometry: %+v", f)
	}
	if f.DurationMs != 0 {
		t.Errorf("expected 0 duration for still, got %d", f.DurationMs)
	}

	// The re-wrapped bitstream must itself be a decodable container.
	w, h, ok := GetInfo(f.Bitstream)
	if !ok || w != 64 || h != 48 {
		t.Errorf("frame bitstream not decodable: ok=%v %dx%d", ok, w, h)
	}
}

func TestDemuxStillAlphaHint(t *testing.T) {
	d, err := Demux(TestStillWebP(8, 8, true))
	if err != nil {
		t.Fatalf("Demux failed: %v", err)
	}
	if !d.HasAlpha {
		t.Error("expected VP8L alpha hint to be detected")
	}
}

func TestDemuxStillLossyWithAlphaPlane(t *testing.T) {
	alph := []byte{0x00, 0x01, 0x02}
	data := BuildTestWebP(
		TestVP8XChunk(0x10, 32, 16),
		TestChunk{FourCC: fccALPH, Payload: alph},
		TestChunk{FourCC: fccVP8, Payload: TestVP8Payload(32, 16)},
	)

	d, err := Demux(data)
	if err != nil {
		t.Fatalf("Demux failed: %v", err)
	}
	if !d.HasAlpha {
		t.Error("expected alpha plane to be detected")
	}

	f := d.Frames[0]
	w, h, ok := GetInfo(f.Bitstream)
	if !ok || w != 32 || h != 16 {
		t.Fatalf("frame bitstream not decodable: ok=%v %dx%d", ok, w, h)
	}
	// The wrapped bitstream must carry the alpha plane along with the
	// synthesized extended header.
	if !bytes.Contains(f.Bitstream, []byte(fccALPH)) {
		t.Error("expected ALPH chunk in wrapped bitstream")
	}
	if !bytes.Contains(f.Bitstream, []byte(fccVP8X)) {
		t.Error("expected VP8X chunk in wrapped bitstream")
	}
}

func TestDemuxAnimated(t *testing.T) {
	data := BuildTestWebP(
		TestVP8XChunk(0x02, 100, 80),
		TestANIMChunk(testBG(), 5),
		TestANMFChunk(0, 0, 100, 80, 40, true, false,
			TestChunk{FourCC: fccVP8L, Payload: TestVP8LPayload(100, 80, false)}),
		TestANMFChunk(20, 10, 60, 40, 80, false, true,
			TestChunk{FourCC: fccVP8L, Payload: TestVP8LPayload(60, 40, false)}),
	)

	d, err := Demux(data)
	if err != nil {
		t.Fatalf("Demux failed: %v", err)
	}

	if !d.Animated {
		t.Fatal("expected animated container")
	}
	if d.FrameCount() != 2 {
		t.Fatalf("expected 2 frames, got %d", d.FrameCount())
	}
	if d.LoopCount != 5 {
		t.Errorf("expected loop count 5, got %d", d.LoopCount)
	}
	if d.BackgroundColor != testBG() {
		t.Errorf("expected background %+v, got %+v", testBG(), d.BackgroundColor)
	}
	if d.CanvasWidth != 100 || d.CanvasHeight != 80 {
		t.Errorf("expected canvas 100x80, got %dx%d", d.CanvasWidth, d.CanvasHeight)
	}

	f0 := d.Frames[0]
	if f0.DurationMs != 40 {
		t.Errorf("expected frame 0 duration 40, got %d", f0.DurationMs)
	}
	if !f0.Blend || f0.DisposeBackground {
		t.Errorf("unexpected frame 0 flags: %+v", f0)
	}

	f1 := d.Frames[1]
	if f1.X != 20 || f1.Y != 10 {
		t.Errorf("expected frame 1 at (20,10), got (%d,%d)", f1.X, f1.Y)
	}
	if f1.Width != 60 || f1.Height != 40 {
		t.Errorf("expected frame 1 size 60x40, got %dx%d", f1.Width, f1.Height)
	}
	if f1.Blend || !f1.DisposeBackground {
		t.Errorf("unexpected frame 1 flags: %+v", f1)
	}

	w, h, ok := GetInfo(f1.Bitstream)
	if !ok || w != 60 || h != 40 {
		t.Errorf("frame 1 bitstream not decodable: ok=%v %dx%d", ok, w, h)
	}
}

func TestDemuxMetadataChunks(t *testing.T) {
	icc := []byte{1, 2, 3}
	exif := []byte{4, 5, 6, 7}
	data := BuildTestWebP(
		TestVP8XChunk(0x20|0x08, 10, 10),
		TestChunk{FourCC: fccICCP, Payload: icc},
		TestChunk{FourCC: fccVP8L, Payload: TestVP8LPayload(10, 10, false)},
		TestChunk{FourCC: fccEXIF, Payload: exif},
	)

	d, err := Demux(data)
	if err != nil {
		t.Fatalf("Demux failed: %v", err)
	}
	if !bytes.Equal(d.ICCP, icc) {
		t.Errorf("expected ICCP %v, got %v", icc, d.ICCP)
	}
	if !bytes.Equal(d.EXIF, exif) {
		t.Errorf("expected EXIF %v, got %v", exif, d.EXIF)
	}
	if d.XMP != nil {
		t.Error("expected no XMP")
	}

	// The odd-sized ICCP chunk is padded; the VP8L chunk after it must
	// still be found.
	if d.CanvasWidth != 10 || d.CanvasHeight != 10 {
		t.Errorf("expected canvas 10x10, got %dx%d", d.CanvasWidth, d.CanvasHeight)
	}
}

func TestDemuxErrors(t *testing.T) {
	valid := TestStillWebP(8, 8, false)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"too short", valid[:8], ErrTooShort},
		{"bad magic", append([]byte("JUNK"), valid[4:]...), ErrNotWebP},
		{"truncated chunk", valid[:HeaderSize+chunkHeaderSize+2], ErrTruncated},
		{"no bitstream", BuildTestWebP(), ErrNoBitstream},
		{"bad frame", BuildTestWebP(
			TestVP8XChunk(0x02, 8, 8),
			TestANIMChunk(color.NRGBA{}, 0),
			TestChunk{FourCC: fccANMF, Payload: make([]byte, 4)},
		), ErrBadFrame},
		{"frame without bitstream", BuildTestWebP(
			TestVP8XChunk(0x02, 8, 8),
			TestANIMChunk(color.NRGBA{}, 0),
			TestANMFChunk(0, 0, 8, 8, 10, true, false,
				TestChunk{FourCC: fccALPH, Payload: []byte{0}}),
		), ErrBadFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Demux(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDemuxClampsToRIFFSize(t *testing.T) {
	// Trailing garbage beyond the declared RIFF size must be ignored.
	data := append(TestStillWebP(8, 8, false), []byte("GARBAGEGARBAGE")...)

	d, err := Demux(data)
	if err != nil {
		t.Fatalf("Demux failed: %v", err)
	}
	if d.FrameCount() != 1 {
		t.Errorf("expected 1 frame, got %d", d.FrameCount())
	}
}
