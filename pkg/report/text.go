package report

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
)

// TextFormatter formats a Report as human-readable text.
type TextFormatter struct{}

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format converts a Report to text.
func (f *TextFormatter) Format(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n", l10n.F("File"), r.File.Path)
	fmt.Fprintf(&b, "%s: %s\n", l10n.F("Size"), FormatBytes(r.File.Size))
	fmt.Fprintf(&b, "%s: %dx%d, %d %s, %s\n",
		l10n.F("Image"), r.Image.Width, r.Image.Height,
		r.Image.Channels, l10n.F("channels"), r.Image.ColorSpace)
	fmt.Fprintf(&b, "%s: %v\n", l10n.F("Alpha"), r.Image.HasAlpha)

	if r.Animation.Animated {
		fmt.Fprintf(&b, "%s: %d %s", l10n.F("Animation"),
			r.Animation.FrameCount, l10n.F("frames"))
		if r.Animation.FramesPerSecond > 0 {
			fmt.Fprintf(&b, ", %.2f fps", r.Animation.FramesPerSecond)
		}
		if r.Animation.LoopCount == 0 {
			fmt.Fprintf(&b, ", %s", l10n.F("loops forever"))
		} else {
			fmt.Fprintf(&b, ", %s %d", l10n.F("loops"), r.Animation.LoopCount)
		}
		b.WriteString("\n")
	}

	features := make([]string, 0, 3)
	if r.Features.ICC {
		features = append(features, "ICC")
	}
	if r.Features.EXIF {
		features = append(features, "EXIF")
	}
	if r.Features.XMP {
		features = append(features, "XMP")
	}
	if len(features) > 0 {
		fmt.Fprintf(&b, "%s: %s\n", l10n.F("Metadata"), strings.Join(features, ", "))
	}

	if r.Animation.Animated {
		b.WriteString("\n")
		for _, fr := range r.Frames {
			fmt.Fprintf(&b, "  #%-3d %4dx%-4d @(%d,%d) %4d ms  %s/%s\n",
				fr.Index, fr.Width, fr.Height, fr.OffsetX, fr.OffsetY,
				fr.DurationMs, fr.Blend, fr.Dispose)
		}
	}

	return b.String()
}

// FormatBytes formats a byte count with a binary unit suffix.
func FormatBytes(n int64) string {
	const (
		kb = 1024
		mb = kb * 1024
	)
	switch {
	case n >= mb:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// Ensure TextFormatter implements Formatter
var _ Formatter = (*TextFormatter)(nil)
