package summarizer

import (
	"fmt"
	"strings"
)

// Translator translates a message key. The identity function keeps English.
type Translator func(key string) string

// MarkdownFormatter renders a Summary as Markdown tables.
type MarkdownFormatter struct {
	translate Translator
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(t Translator) MarkdownOption {
	return func(f *MarkdownFormatter) {
		if t != nil {
			f.translate = t
		}
	}
}

// WithVersion adds the generator version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(key string) string { return key },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("GIF Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	// Output
	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	f.tableHeader(&b)
	f.row(&b, "File", s.Output.Path)
	f.row(&b, "Image Size", fmt.Sprintf("%dx%d", s.Output.Width, s.Output.Height))
	f.row(&b, "Frame Count", fmt.Sprintf("%d", s.Output.FrameCount))
	f.row(&b, "Duration", fmt.Sprintf("%d ms", s.Output.DurationMs))
	f.row(&b, "File Size", formatBytes(s.Output.FileSize))
	f.row(&b, "Global Palette", f.yesNo(s.Output.GlobalPalette))
	f.row(&b, "Transparent Frames", fmt.Sprintf("%d", s.Output.TransparentFrames))
	b.WriteString("\n")

	// Settings
	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	f.tableHeader(&b)
	f.row(&b, "Source", t(s.Input.Source))
	f.row(&b, "Input Frames", fmt.Sprintf("%d", s.Input.FrameCount))
	f.row(&b, "Palette", s.Settings.Palette)
	f.row(&b, "Dither", f.yesNo(s.Settings.Dither))
	f.row(&b, "Transparency", f.yesNo(s.Settings.Transparent))
	f.row(&b, "Loop", f.loop(s.Settings.Loop))
	f.row(&b, "Frame Delay", fmt.Sprintf("%d ms", s.Settings.DelayMs))
	if s.Settings.OutroMs > 0 {
		f.row(&b, "Outro Duration", fmt.Sprintf("%d ms", s.Settings.OutroMs))
	} else {
		f.row(&b, "Outro Duration", t("None"))
	}
	b.WriteString("\n")

	if f.version != "" {
		fmt.Fprintf(&b, "---\n%s gifmux %s\n", t("Generated by"), f.version)
	}

	return b.String()
}

func (f *MarkdownFormatter) tableHeader(b *strings.Builder) {
	fmt.Fprintf(b, "| %s | %s |\n|---|---|\n", f.translate("Item"), f.translate("Value"))
}

func (f *MarkdownFormatter) row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", f.translate(label), value)
}

func (f *MarkdownFormatter) yesNo(v bool) string {
	if v {
		return f.translate("Yes")
	}
	return f.translate("No")
}

func (f *MarkdownFormatter) loop(n int) string {
	if n == 0 {
		return f.translate("Forever")
	}
	return fmt.Sprintf("%d", n)
}

// formatBytes renders a byte count with binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}

var _ Formatter = (*MarkdownFormatter)(nil)
