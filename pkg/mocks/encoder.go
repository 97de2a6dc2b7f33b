package mocks

import (
	"bytes"
	"compress/lzw"
	"image"

	"github.com/user/gifmux/pkg/gifmux"
	"github.com/user/gifmux/pkg/ports"
)

// FrameEncoder is a mock implementation of ports.FrameEncoder.
type FrameEncoder struct {
	BeginFunc       func(width, height int, opts ports.EncoderOptions) (gifmux.Stream, error)
	EncodeFrameFunc func(img image.Image, pts int64) (gifmux.EncodedFrame, error)

	// Recorded calls for verification
	BeginCalled      bool
	BeginOptions     ports.EncoderOptions
	EncodeFrameCalls []EncodeFrameCall

	width, height int
}

// EncodeFrameCall records a call to EncodeFrame.
type EncodeFrameCall struct {
	PTS int64
}

func (m *FrameEncoder) Begin(width, height int, opts ports.EncoderOptions) (gifmux.Stream, error) {
	m.BeginCalled = true
	m.BeginOptions = opts
	m.width, m.height = width, height
	if m.BeginFunc != nil {
		return m.BeginFunc(width, height, opts)
	}
	return gifmux.Stream{
		MediaType:   gifmux.MediaVideo,
		Codec:       gifmux.CodecGIF,
		Width:       width,
		Height:      height,
		PixelFormat: gifmux.PixFmtGray8,
	}, nil
}

func (m *FrameEncoder) EncodeFrame(img image.Image, pts int64) (gifmux.EncodedFrame, error) {
	m.EncodeFrameCalls = append(m.EncodeFrameCalls, EncodeFrameCall{PTS: pts})
	if m.EncodeFrameFunc != nil {
		return m.EncodeFrameFunc(img, pts)
	}
	return gifmux.EncodedFrame{Data: ImageBlock(m.width, m.height), PTS: pts}, nil
}

var _ ports.FrameEncoder = (*FrameEncoder)(nil)

// ImageBlock returns a decodable all-zero image block of the given size.
func ImageBlock(width, height int) []byte {
	var lz bytes.Buffer
	w := lzw.NewWriter(&lz, lzw.LSB, 8)
	_, _ = w.Write(make([]byte, width*height))
	_ = w.Close()

	out := []byte{0x2c, 0, 0, 0, 0,
		byte(width), byte(width >> 8), byte(height), byte(height >> 8), 0, 8}
	data := lz.Bytes()
	for len(data) > 0 {
		n := min(len(data), 255)
		out = append(out, byte(n))
		out = append(out, data[:n]...)
		data = data[n:]
	}
	return append(out, 0)
}
