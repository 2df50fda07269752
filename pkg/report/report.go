// Package report provides summary generation for inspected image files.
package report

import "time"

// Report contains all data collected while inspecting a file.
type Report struct {
	// Metadata
	GeneratedAt time.Time

	// File information
	File FileInfo

	// Image geometry and color
	Image ImageInfo

	// Animation details
	Animation AnimationInfo

	// Container features
	Features FeatureInfo

	// Per-frame details, in display order
	Frames []FrameInfo
}

// FileInfo identifies the inspected file.
type FileInfo struct {
	Path string
	Size int64
}

// ImageInfo contains the decoded image geometry.
type ImageInfo struct {
	Width      int
	Height     int
	Channels   int
	ColorSpace string
	HasAlpha   bool
}

// AnimationInfo contains animation parameters.
type AnimationInfo struct {
	Animated        bool
	FrameCount      int
	LoopCount       int // 0 = infinite
	FramesPerSecond float64
}

// FeatureInfo lists optional container payloads.
type FeatureInfo struct {
	ICC  bool
	EXIF bool
	XMP  bool
}

// FrameInfo describes one animation frame.
type FrameInfo struct {
	Index      int
	OffsetX    int
	OffsetY    int
	Width      int
	Height     int
	DurationMs int
	Dispose    string
	Blend      string
	HasAlpha   bool
}

// NewReport creates a new Report with the current timestamp.
func NewReport() *Report {
	return &Report{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Report.
type Builder struct {
	report *Report
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		report: NewReport(),
	}
}

// WithFile sets file information.
func (b *Builder) WithFile(path string, size int64) *Builder {
	b.report.File = FileInfo{
		Path: path,
		Size: size,
	}
	return b
}

// WithImage sets image geometry.
func (b *Builder) WithImage(info ImageInfo) *Builder {
	b.report.Image = info
	return b
}

// WithAnimation sets animation parameters.
func (b *Builder) WithAnimation(info AnimationInfo) *Builder {
	b.report.Animation = info
	return b
}

// WithFeatures sets container features.
func (b *Builder) WithFeatures(info FeatureInfo) *Builder {
	b.report.Features = info
	return b
}

// AddFrame appends one frame entry.
func (b *Builder) AddFrame(frame FrameInfo) *Builder {
	b.report.Frames = append(b.report.Frames, frame)
	return b
}

// Build returns the built Report.
func (b *Builder) Build() *Report {
	return b.report
}
