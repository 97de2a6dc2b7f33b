package ports

import (
	"image"
	"image/color"

	"github.com/user/gifmux/pkg/gifmux"
)

// FrameEncoder abstracts the upstream GIF image encoder. It quantizes images
// and compresses them into image blocks the muxer copies verbatim.
type FrameEncoder interface {
	// Begin prepares the encoder and returns the stream description for the muxer.
	Begin(width, height int, opts EncoderOptions) (gifmux.Stream, error)

	// EncodeFrame encodes one image. pts is in 1/100 s.
	EncodeFrame(img image.Image, pts int64) (gifmux.EncodedFrame, error)
}

// EncoderOptions configures frame encoding.
type EncoderOptions struct {
	Palette     color.Palette // Target colors; at most 255 are used when Transparent is set
	Dither      bool          // Floyd-Steinberg error diffusion
	Transparent bool          // Reserve index 255 for pixels with alpha < 128
}
