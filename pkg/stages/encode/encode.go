// Package encode implements the GIF image encoding stage.
package encode

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/user/gifmux/pkg/gifmux"
	"github.com/user/gifmux/pkg/pipeline"
	"github.com/user/gifmux/pkg/ports"
)

// ErrNoFrames is returned when there is nothing to encode.
var ErrNoFrames = errors.New("encode: no frames to encode")

// Stage quantizes and compresses frames into GIF image blocks.
type Stage struct {
	encoder ports.FrameEncoder
	sink    ports.DebugSink
	logger  ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(encoder ports.FrameEncoder, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		encoder: encoder,
		sink:    sink,
		logger:  logger.WithComponent("encode"),
	}
}

// MsToPTS converts milliseconds to the muxer time base, rounding down.
func MsToPTS(ms int) int64 {
	return int64(ms) * gifmux.TimeBase / 1000
}

// Execute encodes all frames. When OutroMs is positive the last image is
// encoded once more at lastTimestamp+OutroMs so the muxer holds it.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if len(input.Frames) == 0 {
		return result, ErrNoFrames
	}

	// Get dimensions from first frame
	bounds := input.Frames[0].Image.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	opts := ports.EncoderOptions{
		Palette:     input.Palette,
		Dither:      input.Dither,
		Transparent: input.Transparent,
	}

	stream, err := s.encoder.Begin(width, height, opts)
	if err != nil {
		return result, fmt.Errorf("begin encoding: %w", err)
	}

	s.logger.Debug("Encoding %d frames", len(input.Frames))

	encoded := make([]gifmux.EncodedFrame, 0, len(input.Frames)+1)
	for i, frame := range input.Frames {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		ef, err := s.encodeFrame(len(encoded), frame.Image, frame.TimestampMs)
		if err != nil {
			return result, fmt.Errorf("encode frame %d at %dms: %w", i, frame.TimestampMs, err)
		}
		encoded = append(encoded, ef)
	}

	last := input.Frames[len(input.Frames)-1]
	durationMs := last.TimestampMs
	if input.OutroMs > 0 {
		durationMs += input.OutroMs
		ef, err := s.encodeFrame(len(encoded), last.Image, durationMs)
		if err != nil {
			return result, fmt.Errorf("encode outro frame: %w", err)
		}
		encoded = append(encoded, ef)
	}

	s.logger.Debug("Encoding completed")

	result.Stream = stream
	result.Frames = encoded
	result.DurationMs = durationMs
	return result, nil
}

func (s *Stage) encodeFrame(index int, img image.Image, timestampMs int) (gifmux.EncodedFrame, error) {
	ef, err := s.encoder.EncodeFrame(img, MsToPTS(timestampMs))
	if err != nil {
		return ef, err
	}
	s.logger.Debug("Encoded frame %d: %d bytes", index, len(ef.Data))

	if s.sink.Enabled() {
		if err := s.sink.SaveEncodedFrame(index, ef.Data); err != nil {
			s.logger.Warn("Failed to save debug output: %s", err.Error())
		}
	}
	return ef, nil
}
