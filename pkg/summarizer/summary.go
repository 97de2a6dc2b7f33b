// Package summarizer provides summary generation for muxing runs.
package summarizer

import "time"

// Summary contains all data collected during a run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Input information
	Input InputInfo

	// Encoding settings
	Settings Settings

	// GIF output details
	Output OutputInfo
}

// InputInfo describes where frames came from.
type InputInfo struct {
	Source     string // "files" or "demo"
	FrameCount int
}

// Settings contains the run configuration.
type Settings struct {
	Palette     string
	Dither      bool
	Transparent bool
	Loop        int // 0 = forever
	DelayMs     int
	OutroMs     int
}

// OutputInfo contains information about the written GIF.
type OutputInfo struct {
	Path              string
	FrameCount        int
	DurationMs        int
	FileSize          int64
	Width             int
	Height            int
	GlobalPalette     bool
	TransparentFrames int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets input information.
func (b *Builder) WithInput(source string, frameCount int) *Builder {
	b.summary.Input = InputInfo{
		Source:     source,
		FrameCount: frameCount,
	}
	return b
}

// WithSettings sets run settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets GIF output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
