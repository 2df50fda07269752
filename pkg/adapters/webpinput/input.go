// Package webpinput implements the WebP format plugin: it adapts the
// container demuxer and a frame bitstream decoder to the imageio
// scanline-read interface, including multi-frame animation.
package webpinput

import (
	"fmt"
	"sync"
	"time"

	"github.com/user/webpread/pkg/adapters/logger"
	"github.com/user/webpread/pkg/adapters/osfilesystem"
	"github.com/user/webpread/pkg/adapters/webpdecoder"
	"github.com/user/webpread/pkg/animation"
	"github.com/user/webpread/pkg/colorspace"
	"github.com/user/webpread/pkg/imageio"
	"github.com/user/webpread/pkg/ports"
	"github.com/user/webpread/pkg/riff"
)

// Options configures an Input. The zero value selects the OS
// filesystem, the pure Go bitstream decoder, no logging and the default
// alpha-association pass.
type Options struct {
	// FileSystem reads the input file. Defaults to the OS filesystem.
	FileSystem ports.FileSystem

	// Decoder decodes frame bitstreams. Defaults to webpdecoder.
	Decoder ports.FrameDecoder

	// Logger receives component debug logs. Defaults to a no-op logger.
	Logger ports.Logger

	// Gamma is the exponent of the alpha-association pass.
	// Defaults to colorspace.DefaultGamma.
	Gamma float64

	// KeepUnassociatedAlpha skips the alpha-association pass and
	// exposes the decoder output as-is.
	KeepUnassociatedAlpha bool
}

// Input reads a WebP file frame by frame through the scanline API.
//
// The whole file is held in memory; frames are decoded lazily when a
// subimage is first seeked to. A single mutex guards all mutable state,
// making scanline reads safe for concurrent callers.
type Input struct {
	mu sync.Mutex

	path  string
	spec  imageio.Spec
	demux *riff.Demuxer
	dec   ports.FrameDecoder
	log   ports.Logger

	gamma       float64
	premultiply bool

	canvas    *animation.Canvas
	composed  int // index of the last frame applied to the canvas
	subimage  int // current subimage, -1 before the first seek
	scanlines []byte
	rowBytes  int
	closed    bool
}

// Open reads a WebP file from the filesystem and positions it at
// subimage 0.
func Open(path string, opts Options) (*Input, error) {
	fs := opts.FileSystem
	if fs == nil {
		fs = osfilesystem.New()
	}

	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}
	if !info.Regular {
		return nil, fmt.Errorf("%q is not a regular file", path)
	}
	if info.Size < riff.HeaderSize {
		return nil, fmt.Errorf("%q: %w", path, riff.ErrTooShort)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	in, err := OpenBytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	in.path = path
	return in, nil
}

// OpenBytes opens an in-memory WebP file and positions it at subimage 0.
func OpenBytes(data []byte, opts Options) (*Input, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoop()
	}
	log = log.WithComponent("webp")

	dec := opts.Decoder
	if dec == nil {
		dec = webpdecoder.New()
	}

	gamma := opts.Gamma
	if gamma <= 0 {
		gamma = colorspace.DefaultGamma
	}

	// Validate the magic on a bounded header prefix before committing
	// to a full container parse.
	prefix := data
	if len(prefix) > 64 {
		prefix = prefix[:64]
	}
	if _, _, ok := riff.GetInfo(prefix); !ok {
		return nil, riff.ErrNotWebP
	}

	dm, err := riff.Demux(data)
	if err != nil {
		return nil, fmt.Errorf("demux: %w", err)
	}
	log.Debug("Container parsed: %dx%d, %d frame(s)", dm.CanvasWidth, dm.CanvasHeight, dm.FrameCount())

	spec := imageio.Spec{
		Width:      dm.CanvasWidth,
		Height:     dm.CanvasHeight,
		Channels:   4,
		ColorSpace: "sRGB", // WebP is always sRGB
		HasAlpha:   dm.HasAlpha,
		Animated:   dm.Animated,
		FrameCount: dm.FrameCount(),
		LoopCount:  dm.LoopCount,
	}
	if dm.Animated {
		if delay := dm.Frames[0].DurationMs; delay > 0 {
			spec.FramesPerSecond = imageio.Rational{Num: 1000, Den: delay}
		}
		spec.FrameDurationsMs = make([]int, len(dm.Frames))
		for i, f := range dm.Frames {
			spec.FrameDurationsMs[i] = f.DurationMs
		}
	}

	in := &Input{
		spec:        spec,
		demux:       dm,
		dec:         dec,
		log:         log,
		gamma:       gamma,
		premultiply: !opts.KeepUnassociatedAlpha,
		canvas:      animation.NewCanvas(dm.CanvasWidth, dm.CanvasHeight, dm.BackgroundColor),
		composed:    -1,
		subimage:    -1,
		rowBytes:    spec.ScanlineSize(),
	}

	if err := in.seekLocked(0); err != nil {
		return nil, err
	}
	return in, nil
}

// Spec returns the image spec established at open time.
func (in *Input) Spec() imageio.Spec {
	return in.spec
}

// CurrentSubimage returns the subimage the input is positioned at.
func (in *Input) CurrentSubimage() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.subimage
}

// SeekSubimage positions the input at the given subimage.
func (in *Input) SeekSubimage(n int) error {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.seekLocked(n)
}

// seekLocked decodes and composites frames until subimage n is the
// displayed canvas. Seeking backward recomposes from frame 0, as
// animation frames depend on their predecessors.
func (in *Input) seekLocked(n int) error {
	if in.closed {
		return imageio.ErrClosed
	}
	if n == in.subimage {
		return nil
	}
	if n < 0 || n >= in.demux.FrameCount() {
		return fmt.Errorf("%w: %d (have %d)", imageio.ErrNoSuchSubimage, n, in.demux.FrameCount())
	}

	start := in.composed + 1
	if n <= in.composed {
		in.canvas.Reset()
		start = 0
	}

	var shown []byte
	for i := start; i <= n; i++ {
		frame := in.demux.Frames[i]
		in.log.Debug("Decoding frame %d/%d", i+1, in.demux.FrameCount())

		img, err := in.dec.Decode(frame.Bitstream)
		if err != nil {
			return fmt.Errorf("decode frame %d: %w", i+1, err)
		}

		dispose := animation.DisposeNone
		if frame.DisposeBackground {
			dispose = animation.DisposeBackground
		}
		blend := animation.BlendNone
		if frame.Blend {
			blend = animation.BlendAlpha
		}

		snapshot := in.canvas.Apply(&animation.Frame{
			Image:    img,
			OffsetX:  frame.X,
			OffsetY:  frame.Y,
			Duration: time.Duration(frame.DurationMs) * time.Millisecond,
			Dispose:  dispose,
			Blend:    blend,
		})
		in.composed = i
		shown = snapshot.Pix
	}

	if in.premultiply {
		colorspace.Premultiply(shown, in.gamma)
		in.log.Debug("Alpha association applied (gamma %.1f)", in.gamma)
	}
	in.scanlines = shown
	in.subimage = n
	return nil
}

// ReadScanline copies row y of the given subimage into dst.
func (in *Input) ReadScanline(subimage, y int, dst []byte) error {
	in.mu.Lock()
	defer in.mu.Unlock()

	if err := in.seekLocked(subimage); err != nil {
		return err
	}
	if y < 0 || y >= in.spec.Height {
		return fmt.Errorf("%w: y=%d (height %d)", imageio.ErrScanlineRange, y, in.spec.Height)
	}
	if len(dst) < in.rowBytes {
		return fmt.Errorf("%w: need %d bytes, have %d", imageio.ErrShortBuffer, in.rowBytes, len(dst))
	}
	copy(dst, in.scanlines[y*in.rowBytes:(y+1)*in.rowBytes])
	return nil
}

// Close releases decoded buffers. Close is idempotent.
func (in *Input) Close() error {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.closed {
		return nil
	}
	in.closed = true
	in.scanlines = nil
	in.canvas = nil
	in.demux = nil
	in.log.Debug("Input closed")
	return nil
}

// Ensure Input implements imageio.Input
var _ imageio.Input = (*Input)(nil)
