package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/user/webpread/pkg/mocks"
)

func sampleReport() *Report {
	return NewBuilder().
		WithFile("anim.webp", 2048).
		WithImage(ImageInfo{Width: 320, Height: 240, Channels: 4, ColorSpace: "sRGB", HasAlpha: true}).
		WithAnimation(AnimationInfo{Animated: true, FrameCount: 2, LoopCount: 3, FramesPerSecond: 25}).
		WithFeatures(FeatureInfo{ICC: true, XMP: true}).
		AddFrame(FrameInfo{Index: 0, Width: 320, Height: 240, DurationMs: 40, Dispose: "none", Blend: "alpha"}).
		AddFrame(FrameInfo{Index: 1, OffsetX: 10, OffsetY: 20, Width: 100, Height: 80, DurationMs: 40, Dispose: "background", Blend: "none"}).
		Build()
}

func TestBuilder(t *testing.T) {
	r := sampleReport()

	if r.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
	if r.File.Path != "anim.webp" || r.File.Size != 2048 {
		t.Errorf("unexpected file info %+v", r.File)
	}
	if r.Image.Width != 320 || !r.Image.HasAlpha {
		t.Errorf("unexpected image info %+v", r.Image)
	}
	if len(r.Frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(r.Frames))
	}
	if r.Frames[1].OffsetX != 10 || r.Frames[1].Dispose != "background" {
		t.Errorf("unexpected frame info %+v", r.Frames[1])
	}
}

func TestTextFormatter(t *testing.T) {
	out := NewTextFormatter().Format(sampleReport())

	for _, want := range []string{
		"anim.webp",
		"2.00 KB",
		"320x240",
		"sRGB",
		"25.00 fps",
		"ICC, XMP",
		"#0",
		"alpha/none",
		"none/background",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "EXIF") {
		t.Errorf("text output lists absent EXIF:\n%s", out)
	}
}

func TestTextFormatterStill(t *testing.T) {
	r := NewBuilder().
		WithFile("still.webp", 100).
		WithImage(ImageInfo{Width: 8, Height: 8, Channels: 4, ColorSpace: "sRGB"}).
		WithAnimation(AnimationInfo{Animated: false, FrameCount: 1}).
		Build()

	out := NewTextFormatter().Format(r)
	if strings.Contains(out, "fps") || strings.Contains(out, "loops") {
		t.Errorf("still report contains animation lines:\n%s", out)
	}
}

func TestTextFormatterInfiniteLoop(t *testing.T) {
	r := sampleReport()
	r.Animation.LoopCount = 0

	out := NewTextFormatter().Format(r)
	if !strings.Contains(out, "loops forever") {
		t.Errorf("expected infinite loop wording:\n%s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	out := NewJSONFormatter().Format(sampleReport())

	var decoded Report
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.File.Path != "anim.webp" {
		t.Errorf("unexpected path %q", decoded.File.Path)
	}
	if decoded.Animation.FrameCount != 2 {
		t.Errorf("unexpected frame count %d", decoded.Animation.FrameCount)
	}
	if len(decoded.Frames) != 2 {
		t.Errorf("unexpected frames %+v", decoded.Frames)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{5 * 1024 * 1024, "5.00 MB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.n); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestWriter(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(NewJSONFormatter(), fs)

	if err := w.Write("report.json", sampleReport()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, ok := fs.GetFile("report.json")
	if !ok {
		t.Fatal("report file not written")
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Errorf("written report is not valid JSON: %v", err)
	}
}

func TestFormatFunc(t *testing.T) {
	f := FormatFunc(func(r *Report) string { return r.File.Path })
	if got := f.Format(sampleReport()); got != "anim.webp" {
		t.Errorf("unexpected output %q", got)
	}
}
