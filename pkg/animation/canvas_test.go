package animation

import (
	"image"
	"image/color"
	"testing"
	"time"
)

func solidNRGBA(w, h int, col color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = col.R
		img.Pix[i+1] = col.G
		img.Pix[i+2] = col.B
		img.Pix[i+3] = col.A
	}
	return img
}

func TestNewCanvasClearsToBackground(t *testing.T) {
	bg := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	c := NewCanvas(4, 3, bg)

	snap := c.Apply(&Frame{Image: image.NewNRGBA(image.Rect(0, 0, 0, 0))})
	if got := snap.NRGBAAt(2, 1); got != bg {
		t.Errorf("expected background %+v, got %+v", bg, got)
	}
	if snap.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("unexpected snapshot bounds %v", snap.Bounds())
	}
}

func TestApplyOffsetFrame(t *testing.T) {
	bg := color.NRGBA{A: 255}
	red := color.NRGBA{R: 255, A: 255}
	c := NewCanvas(8, 8, bg)

	snap := c.Apply(&Frame{
		Image:   solidNRGBA(2, 2, red),
		OffsetX: 3,
		OffsetY: 4,
	})

	if got := snap.NRGBAAt(3, 4); got != red {
		t.Errorf("expected frame pixel %+v at (3,4), got %+v", red, got)
	}
	if got := snap.NRGBAAt(4, 5); got != red {
		t.Errorf("expected frame pixel %+v at (4,5), got %+v", red, got)
	}
	if got := snap.NRGBAAt(0, 0); got != bg {
		t.Errorf("expected background outside frame, got %+v", got)
	}
	if got := snap.NRGBAAt(5, 4); got != bg {
		t.Errorf("expected background right of frame, got %+v", got)
	}
}

func TestApplyClipsOutOfBoundsFrame(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	c := NewCanvas(4, 4, color.NRGBA{})

	// Frame extends past the canvas edge; only the overlap is drawn.
	snap := c.Apply(&Frame{
		Image:   solidNRGBA(4, 4, red),
		OffsetX: 2,
		OffsetY: 2,
	})

	if got := snap.NRGBAAt(3, 3); got != red {
		t.Errorf("expected clipped frame pixel, got %+v", got)
	}
	if got := snap.NRGBAAt(1, 1); (got != color.NRGBA{}) {
		t.Errorf("expected untouched pixel, got %+v", got)
	}
}

func TestBlendAlphaOverBlendNone(t *testing.T) {
	opaque := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	halfClear := color.NRGBA{R: 0, G: 0, B: 0, A: 0}
	c := NewCanvas(2, 2, color.NRGBA{})

	c.Apply(&Frame{Image: solidNRGBA(2, 2, opaque), Blend: BlendAlpha})

	// A fully transparent frame alpha-blended on top leaves the canvas
	// unchanged.
	snap := c.Apply(&Frame{Image: solidNRGBA(2, 2, halfClear), Blend: BlendAlpha})
	if got := snap.NRGBAAt(0, 0); got != opaque {
		t.Errorf("expected previous pixel to survive alpha blend, got %+v", got)
	}

	// The same frame with blending disabled overwrites the rectangle.
	snap = c.Apply(&Frame{Image: solidNRGBA(2, 2, halfClear), Blend: BlendNone})
	if got := snap.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("expected overwrite to clear alpha, got %+v", got)
	}
}

func TestDisposeBackgroundAfterSnapshot(t *testing.T) {
	bg := color.NRGBA{B: 255, A: 255}
	red := color.NRGBA{R: 255, A: 255}
	green := color.NRGBA{G: 255, A: 255}
	c := NewCanvas(4, 4, bg)

	// The disposing frame itself must still show its own pixels.
	snap := c.Apply(&Frame{
		Image:   solidNRGBA(2, 2, red),
		Dispose: DisposeBackground,
	})
	if got := snap.NRGBAAt(0, 0); got != red {
		t.Errorf("expected frame pixel before dispose, got %+v", got)
	}

	// The next frame sees the disposed region filled with background.
	snap = c.Apply(&Frame{
		Image:   solidNRGBA(1, 1, green),
		OffsetX: 3,
		OffsetY: 3,
	})
	if got := snap.NRGBAAt(0, 0); got != bg {
		t.Errorf("expected disposed region to be background, got %+v", got)
	}
	if got := snap.NRGBAAt(3, 3); got != green {
		t.Errorf("expected new frame pixel, got %+v", got)
	}
}

func TestResetRestoresBackground(t *testing.T) {
	bg := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	c := NewCanvas(3, 3, bg)
	c.Apply(&Frame{Image: solidNRGBA(3, 3, color.NRGBA{R: 255, A: 255})})

	c.Reset()

	snap := c.Apply(&Frame{Image: image.NewNRGBA(image.Rect(0, 0, 0, 0))})
	if got := snap.NRGBAAt(1, 1); got != bg {
		t.Errorf("expected background after reset, got %+v", got)
	}
}

func TestFrameBounds(t *testing.T) {
	f := Frame{
		Image:    solidNRGBA(5, 7, color.NRGBA{A: 255}),
		OffsetX:  10,
		OffsetY:  20,
		Duration: 40 * time.Millisecond,
	}
	want := image.Rect(10, 20, 15, 27)
	if got := f.Bounds(); got != want {
		t.Errorf("expected bounds %v, got %v", want, got)
	}
}
