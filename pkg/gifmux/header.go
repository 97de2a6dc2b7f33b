package gifmux

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Block introducers and labels.
const (
	extensionIntroducer = 0x21
	applicationLabel    = 0xff
	graphicControlLabel = 0xf9
	commentLabel        = 0xfe
	plainTextLabel      = 0x01
	imageSeparator      = 0x2c
	trailerByte         = 0x3b
)

const (
	// globalTableFlags marks a 256-entry global color table with 8-bit color resolution.
	globalTableFlags = 0xf7
	// globalBackgroundIndex is the background index written alongside a global table.
	globalBackgroundIndex = 0x1f

	netscapeID = "NETSCAPE2.0"
)

// Section sizes in bytes.
const (
	ScreenDescriptorSize = 13
	GlobalTableSize      = PaletteCount * 3
	LoopExtensionSize    = 19
	ControlBlockSize     = 8
	TrailerSize          = 1
)

var signature = []byte("GIF89a")

// LoopCount is the number of times a viewer replays the animation. 0 loops forever.
type LoopCount uint16

// LoopForever makes compliant viewers replay the animation indefinitely.
const LoopForever LoopCount = 0

// NewLoopCount validates n against [0, 65535].
func NewLoopCount(n int) (LoopCount, error) {
	if n < 0 || n > 0xffff {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLoop, n)
	}
	return LoopCount(n), nil
}

// HeaderSize returns the number of bytes AppendHeader produces.
func HeaderSize(global OptionalPalette) int {
	n := ScreenDescriptorSize + LoopExtensionSize
	if global.Present() {
		n += GlobalTableSize
	}
	return n
}

// AppendHeader appends the signature, the logical screen descriptor, the
// optional global color table and the looping application extension to dst.
// Only the RGB part of each global palette entry is written.
func AppendHeader(dst []byte, width, height uint16, loop LoopCount, global OptionalPalette) []byte {
	dst = append(dst, signature...)
	dst = binary.LittleEndian.AppendUint16(dst, width)
	dst = binary.LittleEndian.AppendUint16(dst, height)

	palette, ok := global.Get()
	if ok {
		dst = append(dst, globalTableFlags, globalBackgroundIndex, 0)
		for i := 0; i < PaletteCount; i++ {
			r, g, b := palette[i].RGB()
			dst = append(dst, r, g, b)
		}
	} else {
		dst = append(dst, 0, 0, 0)
	}

	dst = append(dst, extensionIntroducer, applicationLabel, byte(len(netscapeID)))
	dst = append(dst, netscapeID...)
	dst = append(dst, 0x03, 0x01)
	dst = binary.LittleEndian.AppendUint16(dst, uint16(loop))
	return append(dst, 0x00)
}

// WriteHeader writes the header section to w in a single write. A present
// global palette must hold exactly 256 entries.
func WriteHeader(w io.Writer, width, height uint16, loop LoopCount, global OptionalPalette) error {
	if p, ok := global.Get(); ok {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("global palette: %w", err)
		}
	}
	buf := AppendHeader(make([]byte, 0, HeaderSize(global)), width, height, loop, global)
	return writeAll(w, buf)
}

func writeAll(w io.Writer, buf []byte) error {
	n, err := w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
