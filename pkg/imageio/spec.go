// Package imageio defines the generic image-input abstraction that format
// plugins bind to: an image spec, a pull-based scanline reader and a
// format registry with magic-number detection.
package imageio

// Rational is an exact ratio, used for frame rates.
type Rational struct {
	Num int
	Den int
}

// Float returns the rational as a float64, or 0 when the denominator is 0.
func (r Rational) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// Spec describes the geometry and metadata of an open image.
type Spec struct {
	// Width and Height are the canvas dimensions in pixels.
	Width  int
	Height int

	// Channels is the number of interleaved channels per pixel.
	Channels int

	// ColorSpace names the color space of the pixel data (e.g. "sRGB").
	ColorSpace string

	// HasAlpha is true when the image carries an alpha channel with
	// meaningful coverage (not constant full opacity).
	HasAlpha bool

	// Animated is true for multi-frame images. Each frame is exposed
	// as one subimage.
	Animated bool

	// FrameCount is the number of subimages. Always >= 1.
	FrameCount int

	// LoopCount is the animation repeat count (0 = infinite).
	// Only meaningful when Animated is true.
	LoopCount int

	// FramesPerSecond is the nominal animation rate derived from the
	// first frame's duration. Zero-valued when unknown.
	FramesPerSecond Rational

	// FrameDurationsMs lists each frame's display duration in
	// milliseconds. Empty for still images.
	FrameDurationsMs []int
}

// ScanlineSize returns the size in bytes of one row of pixel data.
func (s Spec) ScanlineSize() int {
	return s.Width * s.Channels
}
