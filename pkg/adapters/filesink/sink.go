// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/user/gifmux/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// NewRun creates a FileSink in a fresh run-<uuid> directory under parentDir,
// so repeated runs never overwrite each other.
func NewRun(parentDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return New(filepath.Join(parentDir, "run-"+uuid.NewString()), fs, renderer)
}

// Dir returns the directory the sink writes to.
func (s *Sink) Dir() string {
	return s.baseDir
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveManifestJSON saves the per-frame manifest as JSON.
func (s *Sink) SaveManifestJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "manifest.json")
	return s.fs.WriteFile(path, data)
}

// SaveSourceFrame saves an input frame as PNG.
func (s *Sink) SaveSourceFrame(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames", "source")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode source frame: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// SaveEncodedFrame saves an encoded image block.
func (s *Sink) SaveEncodedFrame(index int, data []byte) error {
	dir := filepath.Join(s.baseDir, "frames", "encoded")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.blk", index))
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
