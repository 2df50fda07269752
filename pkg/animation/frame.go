// Package animation implements canvas reconstruction for animated
// images: compositing decoded frames onto a persistent canvas honoring
// per-frame offsets, blend and dispose methods.
package animation

import (
	"image"
	"time"
)

// DisposeMethod controls how the frame region is treated after the
// frame has been displayed.
type DisposeMethod int

const (
	// DisposeNone leaves the canvas as-is.
	DisposeNone DisposeMethod = iota
	// DisposeBackground fills the frame rectangle with the background
	// color before the next frame is rendered.
	DisposeBackground
)

// BlendMethod controls how a frame is composited onto the canvas.
type BlendMethod int

const (
	// BlendAlpha alpha-blends the frame onto the existing canvas.
	BlendAlpha BlendMethod = iota
	// BlendNone overwrites the frame rectangle without blending.
	BlendNone
)

// Frame is one decoded animation frame with its rendering parameters.
type Frame struct {
	// Image is the decoded frame image.
	Image image.Image

	// OffsetX and OffsetY position the frame on the canvas.
	OffsetX int
	OffsetY int

	// Duration is the display duration of the frame.
	Duration time.Duration

	// Dispose specifies canvas cleanup after the frame is displayed.
	Dispose DisposeMethod

	// Blend specifies how the frame is composited onto the canvas.
	Blend BlendMethod
}

// Bounds returns the frame's rectangle on the canvas.
func (f *Frame) Bounds() image.Rectangle {
	b := f.Image.Bounds()
	return image.Rect(f.OffsetX, f.OffsetY, f.OffsetX+b.Dx(), f.OffsetY+b.Dy())
}
