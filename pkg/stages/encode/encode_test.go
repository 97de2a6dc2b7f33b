package encode

import (
	"context"
	"errors"
	"image"
	"image/color/palette"
	"testing"

	"github.com/user/gifmux/pkg/adapters/logger"
	"github.com/user/gifmux/pkg/gifmux"
	"github.com/user/gifmux/pkg/mocks"
	"github.com/user/gifmux/pkg/pipeline"
	"github.com/user/gifmux/pkg/ports"
)

func testFrames(timestamps ...int) []pipeline.Frame {
	frames := make([]pipeline.Frame, len(timestamps))
	for i, ts := range timestamps {
		frames[i] = pipeline.Frame{TimestampMs: ts, Image: image.NewRGBA(image.Rect(0, 0, 32, 24))}
	}
	return frames
}

func TestMsToPTS(t *testing.T) {
	tests := []struct {
		ms   int
		want int64
	}{
		{0, 0},
		{9, 0},
		{10, 1},
		{105, 10},
		{1000, 100},
	}
	for _, tt := range tests {
		if got := MsToPTS(tt.ms); got != tt.want {
			t.Errorf("MsToPTS(%d) = %d, want %d", tt.ms, got, tt.want)
		}
	}
}

func TestStage_Execute(t *testing.T) {
	mockEncoder := &mocks.FrameEncoder{}
	sink := mocks.NewDebugSink(true)
	stage := NewStage(mockEncoder, sink, logger.NewNoop())

	input := pipeline.EncodeInput{
		Frames:  testFrames(0, 100, 200),
		OutroMs: 1000,
		Palette: palette.WebSafe,
		Dither:  true,
	}

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !mockEncoder.BeginCalled {
		t.Error("expected Begin to be called")
	}
	if !mockEncoder.BeginOptions.Dither || len(mockEncoder.BeginOptions.Palette) != len(palette.WebSafe) {
		t.Errorf("encoder options not passed through: %+v", mockEncoder.BeginOptions)
	}

	// 3 frames + 1 outro frame
	wantPTS := []int64{0, 10, 20, 120}
	if len(mockEncoder.EncodeFrameCalls) != len(wantPTS) {
		t.Fatalf("expected %d EncodeFrame calls, got %d", len(wantPTS), len(mockEncoder.EncodeFrameCalls))
	}
	for i, call := range mockEncoder.EncodeFrameCalls {
		if call.PTS != wantPTS[i] {
			t.Errorf("call %d: expected PTS %d, got %d", i, wantPTS[i], call.PTS)
		}
	}

	if result.DurationMs != 1200 {
		t.Errorf("expected duration 1200, got %d", result.DurationMs)
	}
	if len(result.Frames) != 4 {
		t.Errorf("expected 4 encoded frames, got %d", len(result.Frames))
	}
	if result.Stream.Width != 32 || result.Stream.Height != 24 {
		t.Errorf("unexpected stream size %dx%d", result.Stream.Width, result.Stream.Height)
	}
	if len(sink.EncodedFrames) != 4 {
		t.Errorf("expected 4 debug blocks, got %d", len(sink.EncodedFrames))
	}
}

func TestStage_Execute_NoOutro(t *testing.T) {
	mockEncoder := &mocks.FrameEncoder{}
	stage := NewStage(mockEncoder, mocks.NewDebugSink(false), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.EncodeInput{Frames: testFrames(0, 100)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mockEncoder.EncodeFrameCalls) != 2 {
		t.Errorf("expected 2 EncodeFrame calls, got %d", len(mockEncoder.EncodeFrameCalls))
	}
	if result.DurationMs != 100 {
		t.Errorf("expected duration 100, got %d", result.DurationMs)
	}
}

func TestStage_Execute_NoFrames(t *testing.T) {
	stage := NewStage(&mocks.FrameEncoder{}, mocks.NewDebugSink(false), logger.NewNoop())

	if _, err := stage.Execute(context.Background(), pipeline.EncodeInput{}); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestStage_Execute_BeginError(t *testing.T) {
	beginErr := errors.New("bad size")
	mockEncoder := &mocks.FrameEncoder{
		BeginFunc: func(width, height int, opts ports.EncoderOptions) (gifmux.Stream, error) {
			return gifmux.Stream{}, beginErr
		},
	}
	stage := NewStage(mockEncoder, mocks.NewDebugSink(false), logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.EncodeInput{Frames: testFrames(0)})
	if !errors.Is(err, beginErr) {
		t.Errorf("expected wrapped begin error, got %v", err)
	}
}

func TestStage_Execute_EncodeError(t *testing.T) {
	encodeErr := errors.New("quantize failed")
	mockEncoder := &mocks.FrameEncoder{
		EncodeFrameFunc: func(img image.Image, pts int64) (gifmux.EncodedFrame, error) {
			return gifmux.EncodedFrame{}, encodeErr
		},
	}
	stage := NewStage(mockEncoder, mocks.NewDebugSink(false), logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.EncodeInput{Frames: testFrames(0, 50)})
	if !errors.Is(err, encodeErr) {
		t.Errorf("expected wrapped encode error, got %v", err)
	}
}

func TestStage_Execute_ContextCancelled(t *testing.T) {
	mockEncoder := &mocks.FrameEncoder{}
	stage := NewStage(mockEncoder, mocks.NewDebugSink(false), logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.EncodeInput{Frames: testFrames(0, 100)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(mockEncoder.EncodeFrameCalls) != 0 {
		t.Errorf("expected no EncodeFrame calls, got %d", len(mockEncoder.EncodeFrameCalls))
	}
}
