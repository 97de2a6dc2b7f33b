package summarizer

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithInput(t *testing.T) {
	summary := NewBuilder().
		WithInput("files", 12).
		Build()

	if summary.Input.Source != "files" {
		t.Errorf("expected source 'files', got '%s'", summary.Input.Source)
	}
	if summary.Input.FrameCount != 12 {
		t.Errorf("expected 12 frames, got %d", summary.Input.FrameCount)
	}
}

func TestBuilder_FullChain(t *testing.T) {
	summary := NewBuilder().
		WithInput("demo", 12).
		WithSettings(Settings{
			Palette: "websafe",
			Dither:  true,
			Loop:    3,
		}).
		WithOutput(OutputInfo{
			Path:       "out.gif",
			FrameCount: 13,
			FileSize:   4096,
		}).
		Build()

	if summary.Input.Source != "demo" {
		t.Error("Input.Source not set correctly")
	}
	if summary.Settings.Palette != "websafe" || summary.Settings.Loop != 3 {
		t.Error("Settings not set correctly")
	}
	if summary.Output.FrameCount != 13 || summary.Output.FileSize != 4096 {
		t.Error("Output not set correctly")
	}
}
