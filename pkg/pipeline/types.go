package pipeline

import (
	"image"
	"image/color"

	"github.com/user/gifmux/pkg/gifmux"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// Frame is a decoded or synthesized image with its presentation time.
type Frame struct {
	TimestampMs int
	Image       image.Image
	Source      string // Input path, empty for synthesized frames
}

// FrameSet is the output of the frame producing stages.
type FrameSet struct {
	Frames []Frame
	Size   Dimension
}

// =============================================================================
// Load Stage Types
// =============================================================================

// LoadInput contains parameters for loading image files.
type LoadInput struct {
	Paths   []string  // Files or glob patterns, expanded in order
	DelayMs int       // Time between frames
	Size    Dimension // Target size; zero uses the first frame's size
}

// DefaultLoadInput returns LoadInput with default values.
func DefaultLoadInput() LoadInput {
	return LoadInput{
		DelayMs: 100,
	}
}

// =============================================================================
// Synth Stage Types
// =============================================================================

// SynthInput contains parameters for the demo animation.
type SynthInput struct {
	Size    Dimension
	Frames  int    // Number of frames to render
	DelayMs int    // Time between frames
	Dots    int    // Dots around the spinner ring
	Label   string // Optional caption under the spinner
	Theme   SynthTheme
}

// SynthTheme defines demo animation styling.
type SynthTheme struct {
	BackgroundColor color.Color
	DotColor        color.Color
	ActiveColor     color.Color
	TextColor       color.Color
	ProgressColor   color.Color
}

// DefaultSynthTheme returns a default demo theme.
func DefaultSynthTheme() SynthTheme {
	return SynthTheme{
		BackgroundColor: color.RGBA{R: 30, G: 30, B: 30, A: 255},
		DotColor:        color.RGBA{R: 80, G: 80, B: 80, A: 255},
		ActiveColor:     color.RGBA{R: 100, G: 180, B: 255, A: 255},
		TextColor:       color.White,
		ProgressColor:   color.RGBA{R: 76, G: 175, B: 80, A: 255},
	}
}

// DefaultSynthInput returns SynthInput with default values.
func DefaultSynthInput() SynthInput {
	return SynthInput{
		Size:    Dimension{Width: 160, Height: 160},
		Frames:  12,
		DelayMs: 80,
		Dots:    12,
		Theme:   DefaultSynthTheme(),
	}
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains parameters for GIF image encoding.
type EncodeInput struct {
	Frames      []Frame
	OutroMs     int // Duration to hold the last frame
	Palette     color.Palette
	Dither      bool
	Transparent bool
}

// DefaultEncodeInput returns EncodeInput with default values.
func DefaultEncodeInput() EncodeInput {
	return EncodeInput{
		OutroMs: 1000,
		Dither:  true,
	}
}

// EncodeResult contains the encoded image blocks.
type EncodeResult struct {
	Stream     gifmux.Stream
	Frames     []gifmux.EncodedFrame
	DurationMs int
}

// =============================================================================
// Mux Stage Types
// =============================================================================

// MuxInput contains parameters for writing the GIF container.
type MuxInput struct {
	Stream     gifmux.Stream
	Frames     []gifmux.EncodedFrame
	Loop       gifmux.LoopCount
	OutputPath string
}

// MuxResult contains the muxing statistics.
type MuxResult struct {
	Stats      gifmux.Stats
	OutputPath string
}
