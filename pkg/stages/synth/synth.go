// Package synth implements the demo animation stage.
package synth

import (
	"context"
	"errors"
	"math"

	"github.com/user/gifmux/pkg/pipeline"
	"github.com/user/gifmux/pkg/ports"
)

// ErrNoFrames is returned when the requested animation is empty.
var ErrNoFrames = errors.New("synth: frame count must be positive")

// Stage renders a spinner animation.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new synth stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("synth"),
	}
}

// Execute renders input.Frames frames. The active dot advances one position
// per frame and a bar along the bottom edge shows the animation progress.
func (s *Stage) Execute(ctx context.Context, input pipeline.SynthInput) (pipeline.FrameSet, error) {
	if input.Frames <= 0 {
		return pipeline.FrameSet{}, ErrNoFrames
	}
	if input.Dots <= 0 {
		input.Dots = input.Frames
	}

	s.logger.Debug("Rendering %d synthetic frames", input.Frames)

	frames := make([]pipeline.Frame, 0, input.Frames)
	for i := 0; i < input.Frames; i++ {
		select {
		case <-ctx.Done():
			return pipeline.FrameSet{}, ctx.Err()
		default:
		}

		frame := pipeline.Frame{
			TimestampMs: i * input.DelayMs,
			Image:       s.renderFrame(input, i).ToImage(),
		}
		frames = append(frames, frame)

		if s.sink.Enabled() {
			if err := s.sink.SaveSourceFrame(i, frame.Image); err != nil {
				s.logger.Warn("Failed to save debug output: %s", err.Error())
			}
		}
	}

	return pipeline.FrameSet{Frames: frames, Size: input.Size}, nil
}

func (s *Stage) renderFrame(input pipeline.SynthInput, index int) ports.Canvas {
	w, h := input.Size.Width, input.Size.Height
	theme := input.Theme
	canvas := s.renderer.CreateCanvas(w, h, theme.BackgroundColor)

	// Spinner geometry scales with the shorter side.
	side := min(w, h)
	cx, cy := w/2, h/2
	if input.Label != "" {
		cy = h * 2 / 5
	}
	ring := float64(side) * 0.3
	dot := max(side/20, 2)

	active := index % input.Dots
	for d := 0; d < input.Dots; d++ {
		angle := 2*math.Pi*float64(d)/float64(input.Dots) - math.Pi/2
		x := cx + int(math.Round(ring*math.Cos(angle)))
		y := cy + int(math.Round(ring*math.Sin(angle)))
		if d == active {
			canvas.DrawCircle(x, y, dot+dot/2, theme.ActiveColor)
		} else {
			canvas.DrawCircle(x, y, dot, theme.DotColor)
		}
	}

	if input.Label != "" {
		canvas.DrawText(input.Label, cx, h*4/5, ports.TextStyle{
			FontSize: float64(max(side/10, 8)),
			Color:    theme.TextColor,
			Align:    ports.AlignCenter,
		})
	}

	barHeight := max(h/40, 2)
	progress := w * (index + 1) / input.Frames
	canvas.DrawRect(0, h-barHeight, w, barHeight, theme.DotColor)
	canvas.DrawRoundedRect(0, h-barHeight, progress, barHeight, barHeight/2, theme.ProgressColor)

	return canvas
}
