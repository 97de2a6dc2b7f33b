package summarizer

import (
	"strings"
	"testing"
	"time"
)

func testSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Input:       InputInfo{Source: "files", FrameCount: 24},
		Settings: Settings{
			Palette: "websafe",
			Dither:  true,
			Loop:    0,
			DelayMs: 100,
			OutroMs: 1000,
		},
		Output: OutputInfo{
			Path:              "anim.gif",
			FrameCount:        25,
			DurationMs:        3400,
			FileSize:          1024 * 1024,
			Width:             320,
			Height:            240,
			GlobalPalette:     true,
			TransparentFrames: 0,
		},
	}
}

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	result := NewMarkdownFormatter().Format(testSummary())

	checks := []string{
		"# GIF Summary",
		"2024-01-15 10:30:00 UTC",
		"| File | anim.gif |",
		"320x240",
		"| Frame Count | 25 |",
		"3400 ms",
		"1.00 MB",
		"| Global Palette | Yes |",
		"| Palette | websafe |",
		"| Loop | Forever |",
		"| Outro Duration | 1000 ms |",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestMarkdownFormatter_Format_LoopAndOutro(t *testing.T) {
	s := testSummary()
	s.Settings.Loop = 3
	s.Settings.OutroMs = 0

	result := NewMarkdownFormatter().Format(s)

	if !strings.Contains(result, "| Loop | 3 |") {
		t.Error("expected finite loop count")
	}
	if !strings.Contains(result, "| Outro Duration | None |") {
		t.Error("expected 'None' outro")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"GIF Summary": "GIF サマリー",
			"Frame Count": "フレーム数",
			"Forever":     "無限",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	result := NewMarkdownFormatter(WithTranslator(translator)).Format(testSummary())

	for _, want := range []string{"GIF サマリー", "フレーム数", "無限"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected translated %q", want)
		}
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	result := NewMarkdownFormatter(WithVersion("v1.2.0")).Format(testSummary())

	if !strings.Contains(result, "v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}

	if strings.Contains(NewMarkdownFormatter().Format(testSummary()), "Generated by") {
		t.Error("expected no footer without version")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1536 * 1024 * 1024, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatFunc(t *testing.T) {
	f := FormatFunc(func(s *Summary) string { return s.Output.Path })
	if got := f.Format(testSummary()); got != "anim.gif" {
		t.Errorf("expected anim.gif, got %s", got)
	}
}
