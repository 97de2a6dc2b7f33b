// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/user/gifmux/pkg/gifmux"
	"github.com/user/gifmux/pkg/pipeline"
	"github.com/user/gifmux/pkg/ports"
)

// Source selects where frames come from.
type Source int

const (
	// SourceFiles decodes image files.
	SourceFiles Source = iota
	// SourceDemo renders the built-in spinner animation.
	SourceDemo
)

// String returns the string representation of the source.
func (s Source) String() string {
	if s == SourceDemo {
		return "demo"
	}
	return "files"
}

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	Source     Source
	Inputs     []string
	OutputPath string

	// Frames
	Width   int // 0 keeps the first input's width (files) or uses the demo default
	Height  int
	DelayMs int

	// Demo animation
	DemoFrames int
	DemoLabel  string
	Background color.Color // nil keeps the theme background

	// Encoding
	PaletteName string
	Palette     color.Palette // nil quantizes to 256 grays
	Dither      bool
	Transparent bool
	OutroMs     int

	// Container
	Loop gifmux.LoopCount
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Source:      SourceFiles,
		OutputPath:  "output.gif",
		DelayMs:     100,
		DemoFrames:  12,
		PaletteName: "gray",
		Dither:      true,
		OutroMs:     1000,
		Loop:        gifmux.LoopForever,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	loadStage   pipeline.Stage[pipeline.LoadInput, pipeline.FrameSet]
	synthStage  pipeline.Stage[pipeline.SynthInput, pipeline.FrameSet]
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	muxStage    pipeline.Stage[pipeline.MuxInput, pipeline.MuxResult]
	sink        ports.DebugSink
	logger      ports.Logger
}

// New creates a new Orchestrator.
func New(
	loadStage pipeline.Stage[pipeline.LoadInput, pipeline.FrameSet],
	synthStage pipeline.Stage[pipeline.SynthInput, pipeline.FrameSet],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	muxStage pipeline.Stage[pipeline.MuxInput, pipeline.MuxResult],
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		loadStage:   loadStage,
		synthStage:  synthStage,
		encodeStage: encodeStage,
		muxStage:    muxStage,
		sink:        sink,
		logger:      logger,
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Starting pipeline")

	// 1. Produce frames
	frames, err := o.produceFrames(ctx, config)
	if err != nil {
		o.logger.Error("Failed to load frames: %s", err.Error())
		return RunResult{}, fmt.Errorf("frame stage: %w", err)
	}
	o.logger.Info("Frames ready: %d at %dx%d", len(frames.Frames), frames.Size.Width, frames.Size.Height)

	// 2. Encode image blocks
	encoded, err := o.encodeStage.Execute(ctx, o.buildEncodeInput(config, frames))
	if err != nil {
		o.logger.Error("Failed to encode frames: %s", err.Error())
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}
	o.logger.Info("Encoded %d frames", len(encoded.Frames))

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(buildManifest(frames, encoded), "", "  "); err == nil {
			if err := o.sink.SaveManifestJSON(data); err != nil {
				o.logger.Warn("Failed to save debug output: %s", err.Error())
			}
		}
	}

	// 3. Write the container
	muxed, err := o.muxStage.Execute(ctx, pipeline.MuxInput{
		Stream:     encoded.Stream,
		Frames:     encoded.Frames,
		Loop:       config.Loop,
		OutputPath: config.OutputPath,
	})
	if err != nil {
		o.logger.Error("Failed to mux GIF: %s", err.Error())
		return RunResult{}, fmt.Errorf("mux stage: %w", err)
	}
	o.logger.Info("GIF written: %d frames, %d bytes", muxed.Stats.Frames, muxed.Stats.Bytes)
	o.logger.Info("Output saved to %s", muxed.OutputPath)

	o.logger.Info("Pipeline completed successfully")

	// Build result for summary
	result := RunResult{
		Source:            config.Source.String(),
		InputCount:        len(frames.Frames),
		OutputPath:        muxed.OutputPath,
		FrameCount:        muxed.Stats.Frames,
		DurationMs:        encoded.DurationMs,
		DurationTicks:     muxed.Stats.DurationTicks,
		FileSize:          muxed.Stats.Bytes,
		Width:             muxed.Stats.Width,
		Height:            muxed.Stats.Height,
		Loop:              int(config.Loop),
		PaletteName:       config.PaletteName,
		GlobalPalette:     muxed.Stats.GlobalPalette,
		Dither:            config.Dither,
		TransparentFrames: muxed.Stats.Transparent,
	}

	return result, nil
}

func (o *Orchestrator) produceFrames(ctx context.Context, config Config) (pipeline.FrameSet, error) {
	if config.Source == SourceDemo {
		input := pipeline.DefaultSynthInput()
		if config.Width > 0 && config.Height > 0 {
			input.Size = pipeline.Dimension{Width: config.Width, Height: config.Height}
		}
		if config.DemoFrames > 0 {
			input.Frames = config.DemoFrames
		}
		if config.DelayMs > 0 {
			input.DelayMs = config.DelayMs
		}
		if config.Background != nil {
			input.Theme.BackgroundColor = config.Background
		}
		input.Label = config.DemoLabel
		return o.synthStage.Execute(ctx, input)
	}

	input := pipeline.DefaultLoadInput()
	input.Paths = config.Inputs
	input.Size = pipeline.Dimension{Width: config.Width, Height: config.Height}
	if config.DelayMs > 0 {
		input.DelayMs = config.DelayMs
	}
	return o.loadStage.Execute(ctx, input)
}

func (o *Orchestrator) buildEncodeInput(config Config, frames pipeline.FrameSet) pipeline.EncodeInput {
	return pipeline.EncodeInput{
		Frames:      frames.Frames,
		OutroMs:     config.OutroMs,
		Palette:     config.Palette,
		Dither:      config.Dither,
		Transparent: config.Transparent,
	}
}

// manifestFrame describes one encoded frame in the debug manifest.
type manifestFrame struct {
	Index       int    `json:"index"`
	Source      string `json:"source,omitempty"`
	TimestampMs int    `json:"timestamp_ms"`
	PTS         int64  `json:"pts"`
	Bytes       int    `json:"bytes"`
	SidePalette bool   `json:"side_palette"`
	Outro       bool   `json:"outro,omitempty"`
}

type manifest struct {
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	PixelFormat string          `json:"pixel_format"`
	DurationMs  int             `json:"duration_ms"`
	Frames      []manifestFrame `json:"frames"`
}

func buildManifest(frames pipeline.FrameSet, encoded pipeline.EncodeResult) manifest {
	m := manifest{
		Width:       encoded.Stream.Width,
		Height:      encoded.Stream.Height,
		PixelFormat: encoded.Stream.PixelFormat.String(),
		DurationMs:  encoded.DurationMs,
		Frames:      make([]manifestFrame, len(encoded.Frames)),
	}
	for i, ef := range encoded.Frames {
		mf := manifestFrame{
			Index:       i,
			PTS:         ef.PTS,
			Bytes:       len(ef.Data),
			SidePalette: ef.SidePalette.Present(),
		}
		if i < len(frames.Frames) {
			mf.Source = frames.Frames[i].Source
			mf.TimestampMs = frames.Frames[i].TimestampMs
		} else {
			mf.Outro = true
			mf.TimestampMs = encoded.DurationMs
		}
		m.Frames[i] = mf
	}
	return m
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Input information
	Source     string
	InputCount int

	// Output information
	OutputPath    string
	FrameCount    int   // includes the outro frame
	DurationMs    int   // includes outro
	DurationTicks int64 // sum of frame delays in 1/100 s
	FileSize      int64
	Width         int
	Height        int

	// Encoding information
	Loop              int
	PaletteName       string
	GlobalPalette     bool
	Dither            bool
	TransparentFrames int
}
