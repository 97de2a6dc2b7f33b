// Package gifencoder quantizes images and compresses them into GIF image
// blocks that the muxer writes verbatim.
package gifencoder

import (
	"bytes"
	"compress/lzw"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/user/gifmux/pkg/gifmux"
	"github.com/user/gifmux/pkg/ports"
)

const (
	imageSeparator  = 0x2c
	litWidth        = 8
	maxSubBlockSize = 255

	// TransparentIndex is the palette slot reserved for transparent pixels.
	TransparentIndex = 255
)

// Encoder implements ports.FrameEncoder.
type Encoder struct {
	width, height int
	opts          ports.EncoderOptions
	target        color.Palette
	side          gifmux.OptionalPalette
	began         bool
}

// New creates a new Encoder. Begin must be called before encoding frames.
func New() *Encoder {
	return &Encoder{}
}

// Begin prepares the encoder for frames of the given size.
//
// Without a palette the encoder quantizes to 256 gray levels and reports a
// GRAY8 stream, so the muxer derives the global palette itself. With a
// palette the stream is PAL8 and carries the palette explicitly.
func (e *Encoder) Begin(width, height int, opts ports.EncoderOptions) (gifmux.Stream, error) {
	if width <= 0 || height <= 0 || width > 0xffff || height > 0xffff {
		return gifmux.Stream{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	limit := gifmux.PaletteCount
	if opts.Transparent {
		limit = TransparentIndex
	}

	stream := gifmux.Stream{
		MediaType: gifmux.MediaVideo,
		Codec:     gifmux.CodecGIF,
		Width:     width,
		Height:    height,
	}

	var target color.Palette
	if len(opts.Palette) == 0 {
		target = grayPalette()
		stream.PixelFormat = gifmux.PixFmtGray8
	} else {
		target = opts.Palette
		stream.PixelFormat = gifmux.PixFmtPAL8
		stream.Palette = gifmux.WithPalette(gifmux.PaletteFromColors(truncate(target, limit)))
	}
	target = truncate(target, limit)

	e.width, e.height = width, height
	e.opts = opts
	e.target = target
	e.side = gifmux.NoPalette()
	if opts.Transparent {
		side := gifmux.PaletteFromColors(target)
		side[TransparentIndex] = gifmux.ARGB(0, 0, 0, 0)
		e.side = gifmux.WithPalette(side)
	}
	e.began = true

	return stream, nil
}

// EncodeFrame quantizes img onto the session palette and returns the image
// block: descriptor, LZW minimum code size, data sub-blocks and terminator.
func (e *Encoder) EncodeFrame(img image.Image, pts int64) (gifmux.EncodedFrame, error) {
	if !e.began {
		return gifmux.EncodedFrame{}, ErrNotInitialized
	}

	b := img.Bounds()
	if b.Dx() != e.width || b.Dy() != e.height {
		return gifmux.EncodedFrame{}, fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrSizeMismatch, b.Dx(), b.Dy(), e.width, e.height)
	}

	paletted := e.quantize(img)

	var buf bytes.Buffer
	buf.Grow(10 + len(paletted.Pix)/2)
	writeDescriptor(&buf, e.width, e.height)
	buf.WriteByte(litWidth)

	bw := &blockWriter{dst: &buf}
	lw := lzw.NewWriter(bw, lzw.LSB, litWidth)
	if _, err := lw.Write(paletted.Pix); err != nil {
		return gifmux.EncodedFrame{}, fmt.Errorf("compress frame: %w", err)
	}
	if err := lw.Close(); err != nil {
		return gifmux.EncodedFrame{}, fmt.Errorf("compress frame: %w", err)
	}
	bw.close()

	return gifmux.EncodedFrame{
		Data:        buf.Bytes(),
		PTS:         pts,
		SidePalette: e.side,
	}, nil
}

func (e *Encoder) quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	rect := image.Rect(0, 0, e.width, e.height)
	dst := image.NewPaletted(rect, e.target)

	if e.opts.Dither {
		draw.FloydSteinberg.Draw(dst, rect, img, b.Min)
	} else {
		draw.Draw(dst, rect, img, b.Min, draw.Src)
	}

	if e.opts.Transparent {
		for y := 0; y < e.height; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+e.width]
			for x := range row {
				if _, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA(); a < 0x8000 {
					row[x] = TransparentIndex
				}
			}
		}
	}

	return dst
}

func writeDescriptor(buf *bytes.Buffer, width, height int) {
	buf.WriteByte(imageSeparator)
	buf.Write([]byte{
		0, 0, // left
		0, 0, // top
		byte(width), byte(width >> 8),
		byte(height), byte(height >> 8),
		0, // no local table, not interlaced
	})
}

// blockWriter splits a byte stream into length-prefixed sub-blocks.
type blockWriter struct {
	dst     *bytes.Buffer
	pending [maxSubBlockSize]byte
	n       int
}

func (w *blockWriter) Write(p []byte) (int, error) {
	written := len(p)
	for len(p) > 0 {
		c := copy(w.pending[w.n:], p)
		w.n += c
		p = p[c:]
		if w.n == maxSubBlockSize {
			w.flush()
		}
	}
	return written, nil
}

func (w *blockWriter) flush() {
	if w.n == 0 {
		return
	}
	w.dst.WriteByte(byte(w.n))
	w.dst.Write(w.pending[:w.n])
	w.n = 0
}

func (w *blockWriter) close() {
	w.flush()
	w.dst.WriteByte(0)
}

func truncate(p color.Palette, n int) color.Palette {
	if len(p) > n {
		return p[:n]
	}
	return p
}

func grayPalette() color.Palette {
	p := make(color.Palette, gifmux.PaletteCount)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}

// Ensure Encoder implements ports.FrameEncoder
var _ ports.FrameEncoder = (*Encoder)(nil)
