package gifmux

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	defaultTransparentIndex = 0x1f

	flagTransparent  = 0x01
	flagDisposalHint = 0x04

	// transparencyThreshold is the alpha below which the least opaque palette
	// entry is marked transparent.
	transparencyThreshold = 128
)

// EncodedFrame is one frame as produced by an upstream GIF encoder.
type EncodedFrame struct {
	// Data holds the image descriptor, optional local color table and the LZW
	// image data sub-blocks. It is written verbatim.
	Data []byte
	// PTS is the presentation timestamp in 1/TimeBase seconds, or NoPTS.
	PTS int64
	// SidePalette optionally carries the frame's palette with alpha. It only
	// drives the choice of transparent color index.
	SidePalette OptionalPalette
}

// ControlBlock is a graphic control extension.
type ControlBlock struct {
	// DisposalHint sets disposal method 1: the frame stays in place.
	DisposalHint bool
	// Transparent enables the transparent color index.
	Transparent      bool
	Delay            uint16
	TransparentIndex uint8
}

// Flags packs the booleans into the packed fields byte.
func (cb ControlBlock) Flags() byte {
	var f byte
	if cb.DisposalHint {
		f |= flagDisposalHint
	}
	if cb.Transparent {
		f |= flagTransparent
	}
	return f
}

// Append appends the encoded extension to dst.
func (cb ControlBlock) Append(dst []byte) []byte {
	dst = append(dst, extensionIntroducer, graphicControlLabel, 0x04, cb.Flags())
	dst = binary.LittleEndian.AppendUint16(dst, cb.Delay)
	return append(dst, cb.TransparentIndex, 0x00)
}

// SelectTransparency picks the palette entry with the smallest alpha. The
// first such entry wins on ties. transparent is true when that alpha is below
// 128. When every entry is fully opaque the index stays at the default 0x1f.
func SelectTransparency(p Palette) (index uint8, transparent bool) {
	index = defaultTransparentIndex
	smallest := uint8(0xff)
	for i, c := range p {
		if a := c.Alpha(); a < smallest {
			smallest = a
			index = uint8(i)
		}
	}
	return index, smallest < transparencyThreshold
}

// BuildControlBlock validates the frame's side data, selects the transparent
// index and advances the session. The session is left untouched on error.
func BuildControlBlock(frame EncodedFrame, s *Session) (ControlBlock, error) {
	cb := ControlBlock{
		DisposalHint:     true,
		TransparentIndex: defaultTransparentIndex,
	}

	if p, ok := frame.SidePalette.Get(); ok {
		if err := p.Validate(); err != nil {
			return ControlBlock{}, err
		}
		cb.TransparentIndex, cb.Transparent = SelectTransparency(p)
	}

	cb.Delay = s.advance(frame.PTS)
	return cb, nil
}

// WriteFrame writes the control block and the frame payload to w as one write.
// A malformed side palette fails before anything is written.
func WriteFrame(w io.Writer, frame EncodedFrame, s *Session) error {
	cb, err := BuildControlBlock(frame, s)
	if err != nil {
		return fmt.Errorf("frame at pts %d: %w", frame.PTS, err)
	}
	buf := cb.Append(make([]byte, 0, ControlBlockSize+len(frame.Data)))
	buf = append(buf, frame.Data...)
	return writeAll(w, buf)
}
