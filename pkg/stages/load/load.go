// Package load implements the image file loading stage.
package load

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/user/gifmux/pkg/pipeline"
	"github.com/user/gifmux/pkg/ports"
)

// ErrNoInputs is returned when the input list expands to no files.
var ErrNoInputs = errors.New("load: no input files")

// Stage decodes image files into frames of one size.
type Stage struct {
	fs         ports.FileSystem
	renderer   ports.Renderer
	sink       ports.DebugSink
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new load stage.
func NewStage(fs ports.FileSystem, renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		fs:         fs,
		renderer:   renderer,
		sink:       sink,
		logger:     logger.WithComponent("load"),
		numWorkers: numWorkers,
	}
}

// Execute loads all inputs in order. Frame i is presented at i*DelayMs.
func (s *Stage) Execute(ctx context.Context, input pipeline.LoadInput) (pipeline.FrameSet, error) {
	paths, err := s.expand(input.Paths)
	if err != nil {
		return pipeline.FrameSet{}, err
	}
	if len(paths) == 0 {
		return pipeline.FrameSet{}, ErrNoInputs
	}

	s.logger.Debug("Loading %d input files", len(paths))

	frames, err := s.decodeParallel(ctx, paths)
	if err != nil {
		return pipeline.FrameSet{}, err
	}

	size := input.Size
	if size.Width <= 0 || size.Height <= 0 {
		b := frames[0].Image.Bounds()
		size = pipeline.Dimension{Width: b.Dx(), Height: b.Dy()}
	} else {
		s.logger.Debug("Resizing frames to %dx%d", size.Width, size.Height)
	}

	for i := range frames {
		b := frames[i].Image.Bounds()
		if b.Dx() != size.Width || b.Dy() != size.Height {
			if input.Size.Width <= 0 {
				s.logger.Warn("Frame %d has different size %dx%d, resizing", i, b.Dx(), b.Dy())
			}
			frames[i].Image = s.renderer.ResizeImage(frames[i].Image, size.Width, size.Height)
		}
		frames[i].TimestampMs = i * input.DelayMs

		if s.sink.Enabled() {
			if err := s.sink.SaveSourceFrame(i, frames[i].Image); err != nil {
				s.logger.Warn("Failed to save debug output: %s", err.Error())
			}
		}
	}

	return pipeline.FrameSet{Frames: frames, Size: size}, nil
}

// expand resolves glob patterns, keeping plain paths as given.
func (s *Stage) expand(patterns []string) ([]string, error) {
	var paths []string
	for _, p := range patterns {
		if !strings.ContainsAny(p, "*?[") {
			paths = append(paths, p)
			continue
		}
		matches, err := s.fs.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", p, err)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// decodeParallel decodes files using a worker pool, preserving input order.
func (s *Stage) decodeParallel(ctx context.Context, paths []string) ([]pipeline.Frame, error) {
	frames := make([]pipeline.Frame, len(paths))
	jobs := make(chan int, len(paths))
	errChan := make(chan error, s.numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < min(s.numWorkers, len(paths)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				frame, err := s.decode(paths[idx])
				if err != nil {
					select {
					case errChan <- err:
					default:
					}
					return
				}
				// Each worker writes a distinct index.
				frames[idx] = frame
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return frames, nil
}

func (s *Stage) decode(path string) (pipeline.Frame, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return pipeline.Frame{}, fmt.Errorf("read %s: %w", path, err)
	}
	img, err := s.renderer.DecodeImage(data)
	if err != nil {
		return pipeline.Frame{}, fmt.Errorf("decode %s: %w", path, err)
	}
	b := img.Bounds()
	s.logger.Debug("Loaded %s (%dx%d)", path, b.Dx(), b.Dy())
	return pipeline.Frame{Image: img, Source: path}, nil
}
