// Package sheet renders the frames of an animation into a labeled
// contact sheet image.
package sheet

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/webpread/pkg/imageio"
)

// Frame is one cell of the contact sheet.
type Frame struct {
	Image      image.Image
	Index      int
	DurationMs int
}

// Theme holds the sheet colors.
type Theme struct {
	Background color.Color
	Text       color.Color
	Border     color.Color
}

// DefaultTheme returns the default light theme.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff},
		Text:       color.RGBA{R: 0x32, G: 0x32, B: 0x32, A: 0xff},
		Border:     color.RGBA{R: 0xb4, G: 0xb4, B: 0xb4, A: 0xff},
	}
}

// Config controls the sheet layout.
type Config struct {
	// Columns is the number of cells per row.
	Columns int
	// CellWidth is the thumbnail width; frames are scaled to fit,
	// preserving aspect ratio.
	CellWidth int
	// Gap is the spacing between cells in pixels.
	Gap int
	// Padding is the outer margin in pixels.
	Padding int
	// BorderWidth is the cell border stroke width.
	BorderWidth int
	// Theme selects the colors.
	Theme Theme
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Columns:     4,
		CellWidth:   160,
		Gap:         12,
		Padding:     16,
		BorderWidth: 1,
		Theme:       DefaultTheme(),
	}
}

// captionHeight is the vertical space reserved under each thumbnail.
const captionHeight = 18

// Collect pulls every subimage of an input through the scanline
// interface and returns them as sheet frames.
func Collect(in imageio.Input) ([]Frame, error) {
	spec := in.Spec()
	rowBytes := spec.ScanlineSize()

	frames := make([]Frame, 0, spec.FrameCount)
	for n := 0; n < spec.FrameCount; n++ {
		img := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
		for y := 0; y < spec.Height; y++ {
			dst := img.Pix[y*img.Stride : y*img.Stride+rowBytes]
			if err := in.ReadScanline(n, y, dst); err != nil {
				return nil, fmt.Errorf("read subimage %d: %w", n, err)
			}
		}
		f := Frame{Image: img, Index: n}
		if n < len(spec.FrameDurationsMs) {
			f.DurationMs = spec.FrameDurationsMs[n]
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Render draws the frames into a contact sheet.
func Render(frames []Frame, cfg Config) (image.Image, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames to render")
	}

	cols := cfg.Columns
	if cols <= 0 {
		cols = DefaultConfig().Columns
	}
	if cols > len(frames) {
		cols = len(frames)
	}
	cellW := cfg.CellWidth
	if cellW <= 0 {
		cellW = DefaultConfig().CellWidth
	}

	// All frames share the canvas size, so the first frame fixes the
	// thumbnail aspect ratio.
	b := frames[0].Image.Bounds()
	cellH := cellW * b.Dy() / b.Dx()
	if cellH <= 0 {
		cellH = 1
	}

	rows := (len(frames) + cols - 1) / cols
	sheetW := 2*cfg.Padding + cols*cellW + (cols-1)*cfg.Gap
	sheetH := 2*cfg.Padding + rows*(cellH+captionHeight) + (rows-1)*cfg.Gap

	dc := gg.NewContext(sheetW, sheetH)
	dc.SetColor(cfg.Theme.Background)
	dc.Clear()

	for i, f := range frames {
		col := i % cols
		row := i / cols
		x := cfg.Padding + col*(cellW+cfg.Gap)
		y := cfg.Padding + row*(cellH+captionHeight+cfg.Gap)

		thumb := scale(f.Image, cellW, cellH)
		dc.DrawImage(thumb, x, y)

		if cfg.BorderWidth > 0 {
			dc.SetColor(cfg.Theme.Border)
			dc.SetLineWidth(float64(cfg.BorderWidth))
			dc.DrawRectangle(float64(x), float64(y), float64(cellW), float64(cellH))
			dc.Stroke()
		}

		caption := fmt.Sprintf("#%d", f.Index)
		if f.DurationMs > 0 {
			caption = fmt.Sprintf("#%d  %d ms", f.Index, f.DurationMs)
		}
		dc.SetColor(cfg.Theme.Text)
		dc.DrawStringAnchored(caption, float64(x+cellW/2), float64(y+cellH+captionHeight/2), 0.5, 0.35)
	}

	return dc.Image(), nil
}

func scale(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
