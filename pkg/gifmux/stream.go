package gifmux

import (
	"fmt"
	"math"
)

// MediaType classifies a stream.
type MediaType int

const (
	MediaUnknown MediaType = iota
	MediaVideo
	MediaAudio
	MediaData
)

func (t MediaType) String() string {
	switch t {
	case MediaVideo:
		return "video"
	case MediaAudio:
		return "audio"
	case MediaData:
		return "data"
	default:
		return "unknown"
	}
}

// Codec identifies the encoding of a stream's packets.
type Codec string

const (
	CodecGIF  Codec = "gif"
	CodecPNG  Codec = "png"
	CodecH264 Codec = "h264"
)

// PixelFormat describes the pixel layout the upstream encoder was fed.
type PixelFormat int

const (
	PixFmtNone PixelFormat = iota
	// PixFmtPAL8 is palette-indexed with a per-frame palette; no global table is written.
	PixFmtPAL8
	PixFmtRGB8     // 3:3:2 packed
	PixFmtBGR8     // 2:3:3 packed
	PixFmtRGB4Byte // 1:2:1 in the low nibble
	PixFmtBGR4Byte // 1:2:1 in the low nibble
	PixFmtGray8
	PixFmtRGB24
	PixFmtRGBA
)

func (f PixelFormat) String() string {
	switch f {
	case PixFmtPAL8:
		return "pal8"
	case PixFmtRGB8:
		return "rgb8"
	case PixFmtBGR8:
		return "bgr8"
	case PixFmtRGB4Byte:
		return "rgb4_byte"
	case PixFmtBGR4Byte:
		return "bgr4_byte"
	case PixFmtGray8:
		return "gray"
	case PixFmtRGB24:
		return "rgb24"
	case PixFmtRGBA:
		return "rgba"
	default:
		return "none"
	}
}

// Stream describes the single image stream of a muxing session.
type Stream struct {
	MediaType   MediaType
	Codec       Codec
	Width       int
	Height      int
	PixelFormat PixelFormat
	// Palette overrides the palette derived from PixelFormat when present.
	Palette OptionalPalette
}

// SystematicPalette returns the fixed palette implied by a packed pixel
// format. ok is false for formats without one, including PAL8.
func SystematicPalette(f PixelFormat) (Palette, bool) {
	var channels func(i int) (r, g, b int)
	switch f {
	case PixFmtRGB8:
		channels = func(i int) (int, int, int) {
			return (i >> 5) * 36, ((i >> 2) & 7) * 36, (i & 3) * 85
		}
	case PixFmtBGR8:
		channels = func(i int) (int, int, int) {
			return (i & 7) * 36, ((i >> 3) & 7) * 36, (i >> 6) * 85
		}
	case PixFmtRGB4Byte:
		channels = func(i int) (int, int, int) {
			i &= 0x0f
			return (i >> 3) * 255, ((i >> 1) & 3) * 85, (i & 1) * 255
		}
	case PixFmtBGR4Byte:
		channels = func(i int) (int, int, int) {
			i &= 0x0f
			return (i & 1) * 255, ((i >> 1) & 3) * 85, (i >> 3) * 255
		}
	case PixFmtGray8:
		channels = func(i int) (int, int, int) { return i, i, i }
	default:
		return nil, false
	}

	p := make(Palette, PaletteCount)
	for i := range p {
		r, g, b := channels(i)
		p[i] = ARGB(0xff, uint8(r), uint8(g), uint8(b))
	}
	return p, true
}

// validateStreams checks the session's stream set and resolves the global palette.
func validateStreams(streams []Stream) (Stream, OptionalPalette, error) {
	if len(streams) != 1 {
		return Stream{}, NoPalette(), fmt.Errorf("%w: GIF supports a single stream, got %d", ErrInvalidStream, len(streams))
	}
	st := streams[0]
	if st.MediaType != MediaVideo {
		return st, NoPalette(), fmt.Errorf("%w: media type %s, want video", ErrInvalidStream, st.MediaType)
	}
	if st.Codec != CodecGIF {
		return st, NoPalette(), fmt.Errorf("%w: codec %q, want %q", ErrInvalidStream, st.Codec, CodecGIF)
	}
	if st.Width < 0 || st.Width > math.MaxUint16 || st.Height < 0 || st.Height > math.MaxUint16 {
		return st, NoPalette(), fmt.Errorf("%w: dimensions %dx%d exceed 65535", ErrInvalidStream, st.Width, st.Height)
	}

	if p, ok := st.Palette.Get(); ok {
		if err := p.Validate(); err != nil {
			return st, NoPalette(), fmt.Errorf("%w: global palette: %w", ErrInvalidStream, err)
		}
		return st, st.Palette, nil
	}
	if p, ok := SystematicPalette(st.PixelFormat); ok {
		return st, WithPalette(p), nil
	}
	if st.PixelFormat == PixFmtPAL8 {
		return st, NoPalette(), nil
	}
	return st, NoPalette(), fmt.Errorf("%w: pixel format %s has no palette", ErrInvalidStream, st.PixelFormat)
}
