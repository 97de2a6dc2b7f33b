package gifmux

import (
	"bytes"
	"compress/lzw"
	"encoding/binary"
)

// testPayload builds a valid image block of index-0 pixels. With local set it
// carries a 2-entry local color table so it decodes without a global table.
func testPayload(width, height int, local bool) []byte {
	var buf bytes.Buffer
	buf.WriteByte(imageSeparator)
	var desc [8]byte
	binary.LittleEndian.PutUint16(desc[4:], uint16(width))
	binary.LittleEndian.PutUint16(desc[6:], uint16(height))
	buf.Write(desc[:])
	if local {
		buf.WriteByte(0x80)
		buf.Write([]byte{0, 0, 0, 0xff, 0xff, 0xff})
	} else {
		buf.WriteByte(0)
	}
	buf.WriteByte(2)

	var lz bytes.Buffer
	zw := lzw.NewWriter(&lz, lzw.LSB, 2)
	zw.Write(make([]byte, width*height))
	zw.Close()

	data := lz.Bytes()
	for len(data) > 0 {
		n := len(data)
		if n > 255 {
			n = 255
		}
		buf.WriteByte(byte(n))
		buf.Write(data[:n])
		data = data[n:]
	}
	buf.WriteByte(0)
	return buf.Bytes()
}

func grayPalette() Palette {
	p := make(Palette, PaletteCount)
	for i := range p {
		p[i] = ARGB(0xff, uint8(i), uint8(i), uint8(i))
	}
	return p
}

// alphaPalette returns an opaque palette with entry idx set to alpha.
func alphaPalette(idx int, alpha uint8) Palette {
	p := grayPalette()
	r, g, b := p[idx].RGB()
	p[idx] = ARGB(alpha, r, g, b)
	return p
}

type failingWriter struct {
	failAfter int
	written   int
	err       error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.failAfter {
		n := w.failAfter - w.written
		if n < 0 {
			n = 0
		}
		w.written += n
		return n, w.err
	}
	w.written += len(p)
	return len(p), nil
}
