package mocks

import (
	"image"
	"sync"

	"github.com/user/gifmux/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	ManifestJSON  []byte
	SourceFrames  map[int]image.Image
	EncodedFrames map[int][]byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:       enabled,
		SourceFrames:  make(map[int]image.Image),
		EncodedFrames: make(map[int][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveManifestJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ManifestJSON = data
	return nil
}

func (m *DebugSink) SaveSourceFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourceFrames[index] = img
	return nil
}

func (m *DebugSink) SaveEncodedFrame(index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EncodedFrames[index] = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                                    { return false }
func (m *NullSink) SaveManifestJSON(data []byte) error               { return nil }
func (m *NullSink) SaveSourceFrame(index int, img image.Image) error { return nil }
func (m *NullSink) SaveEncodedFrame(index int, data []byte) error    { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
