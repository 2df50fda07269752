package main

import (
	"github.com/user/webpread/pkg/imageio"
	"github.com/user/webpread/pkg/report"
	"github.com/user/webpread/pkg/riff"
)

// buildReport assembles an inspection report from the image spec and
// the demuxed container structure.
func buildReport(path string, size int64, spec imageio.Spec, dm *riff.Demuxer) *report.Report {
	b := report.NewBuilder().
		WithFile(path, size).
		WithImage(report.ImageInfo{
			Width:      spec.Width,
			Height:     spec.Height,
			Channels:   spec.Channels,
			ColorSpace: spec.ColorSpace,
			HasAlpha:   spec.HasAlpha,
		}).
		WithAnimation(report.AnimationInfo{
			Animated:        spec.Animated,
			FrameCount:      spec.FrameCount,
			LoopCount:       spec.LoopCount,
			FramesPerSecond: spec.FramesPerSecond.Float(),
		}).
		WithFeatures(report.FeatureInfo{
			ICC:  len(dm.ICCP) > 0,
			EXIF: len(dm.EXIF) > 0,
			XMP:  len(dm.XMP) > 0,
		})

	if dm.Animated {
		for i, f := range dm.Frames {
			dispose := "none"
			if f.DisposeBackground {
				dispose = "background"
			}
			blend := "none"
			if f.Blend {
				blend = "alpha"
			}
			b.AddFrame(report.FrameInfo{
				Index:      i,
				OffsetX:    f.X,
				OffsetY:    f.Y,
				Width:      f.Width,
				Height:     f.Height,
				DurationMs: f.DurationMs,
				Dispose:    dispose,
				Blend:      blend,
				HasAlpha:   f.HasAlpha,
			})
		}
	}

	return b.Build()
}
