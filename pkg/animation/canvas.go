package animation

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas composites frames sequentially onto a persistent buffer.
//
// Frames must be applied in display order; reconstruction of an earlier
// state requires Reset followed by re-applying frames from the start.
// Pixel data is kept with unassociated alpha.
type Canvas struct {
	buf        *image.NRGBA
	background color.NRGBA
}

// NewCanvas creates a canvas of the given size, cleared to the
// background color.
func NewCanvas(width, height int, background color.NRGBA) *Canvas {
	c := &Canvas{
		buf:        image.NewNRGBA(image.Rect(0, 0, width, height)),
		background: background,
	}
	c.Reset()
	return c
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.buf.Bounds()
}

// Reset clears the canvas back to the background color.
func (c *Canvas) Reset() {
	fill(c.buf, c.buf.Bounds(), c.background)
}

// Apply composites one frame onto the canvas and returns a snapshot of
// the displayed result. The frame's dispose method is applied to the
// canvas after the snapshot is taken, readying it for the next frame.
func (c *Canvas) Apply(f *Frame) *image.NRGBA {
	rect := f.Bounds().Intersect(c.buf.Bounds())

	op := draw.Over
	if f.Blend == BlendNone {
		op = draw.Src
	}
	sp := f.Image.Bounds().Min
	draw.Draw(c.buf, rect, f.Image, sp, op)

	snapshot := image.NewNRGBA(c.buf.Bounds())
	copy(snapshot.Pix, c.buf.Pix)

	if f.Dispose == DisposeBackground {
		fill(c.buf, rect, c.background)
	}
	return snapshot
}

func fill(dst *image.NRGBA, rect image.Rectangle, col color.NRGBA) {
	draw.Draw(dst, rect, image.NewUniform(col), image.Point{}, draw.Src)
}
