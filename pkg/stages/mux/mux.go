// Package mux implements the GIF container writing stage.
package mux

import (
	"bufio"
	"context"
	"fmt"

	"github.com/user/gifmux/pkg/gifmux"
	"github.com/user/gifmux/pkg/pipeline"
	"github.com/user/gifmux/pkg/ports"
)

// Stage writes encoded frames to the output file through gifmux.Muxer.
type Stage struct {
	fs       ports.FileSystem
	progress ports.Progress
	logger   ports.Logger
}

// NewStage creates a new mux stage.
func NewStage(fs ports.FileSystem, progress ports.Progress, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		progress: progress,
		logger:   logger,
	}
}

// Execute writes header, frames and trailer. A partially written file is
// removed when any step fails.
func (s *Stage) Execute(ctx context.Context, input pipeline.MuxInput) (result pipeline.MuxResult, err error) {
	f, err := s.fs.Create(input.OutputPath)
	if err != nil {
		return result, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
		if err != nil {
			_ = s.fs.Remove(input.OutputPath)
		}
	}()

	bw := bufio.NewWriter(f)
	m := gifmux.NewMuxer(bw,
		gifmux.WithLoop(input.Loop),
		gifmux.WithLogger(s.logger.WithComponent("gifmux")),
	)

	s.logger.WithComponent("mux").Debug("Muxing %d frames, loop %d", len(input.Frames), int(input.Loop))

	if err := m.WriteHeader([]gifmux.Stream{input.Stream}); err != nil {
		return result, fmt.Errorf("write header: %w", err)
	}

	s.progress.Start(len(input.Frames), "Muxing")
	defer s.progress.Finish()

	for i, frame := range input.Frames {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := m.WriteFrame(frame); err != nil {
			return result, fmt.Errorf("write frame %d: %w", i, err)
		}
		s.progress.Increment()
	}

	if err := m.WriteTrailer(); err != nil {
		return result, fmt.Errorf("write trailer: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return result, fmt.Errorf("flush output: %w", err)
	}

	result.Stats = m.Stats()
	result.OutputPath = input.OutputPath
	return result, nil
}
