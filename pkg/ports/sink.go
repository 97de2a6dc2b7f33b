package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveManifestJSON saves the per-frame manifest as JSON.
	SaveManifestJSON(data []byte) error

	// SaveSourceFrame saves a decoded or synthesized input frame.
	SaveSourceFrame(index int, img image.Image) error

	// SaveEncodedFrame saves the image block handed to the muxer.
	SaveEncodedFrame(index int, data []byte) error
}
