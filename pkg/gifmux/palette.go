package gifmux

import (
	"encoding/binary"
	"fmt"
	"image/color"
)

const (
	// PaletteCount is the number of entries in every palette the muxer accepts.
	PaletteCount = 256
	// PaletteSize is the byte size of a palette carried as raw side data.
	PaletteSize = PaletteCount * 4
)

// Color is a palette entry packed as 0xAARRGGBB.
type Color uint32

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// RGB returns the red, green and blue channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Palette is an ordered color table. Valid palettes hold exactly PaletteCount entries.
type Palette []Color

// Validate reports ErrInvalidPalette when p does not hold exactly 256 entries.
func (p Palette) Validate() error {
	if len(p) != PaletteCount {
		return fmt.Errorf("%w: %d entries, want %d", ErrInvalidPalette, len(p), PaletteCount)
	}
	return nil
}

// PaletteFromBytes decodes raw side data: 256 little-endian uint32 ARGB values.
func PaletteFromBytes(data []byte) (Palette, error) {
	if len(data) != PaletteSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidPalette, len(data), PaletteSize)
	}
	p := make(Palette, PaletteCount)
	for i := range p {
		p[i] = Color(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return p, nil
}

// Bytes encodes the palette in the raw side data layout.
func (p Palette) Bytes() []byte {
	out := make([]byte, len(p)*4)
	for i, c := range p {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(c))
	}
	return out
}

// PaletteFromColors converts an image/color palette, padding with opaque black
// up to 256 entries. Extra entries beyond 256 are dropped.
func PaletteFromColors(cp color.Palette) Palette {
	p := make(Palette, PaletteCount)
	for i := range p {
		p[i] = ARGB(0xff, 0, 0, 0)
	}
	for i, c := range cp {
		if i >= PaletteCount {
			break
		}
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		p[i] = ARGB(nc.A, nc.R, nc.G, nc.B)
	}
	return p
}

// OptionalPalette is a palette that may be absent.
type OptionalPalette struct {
	palette Palette
	present bool
}

// WithPalette wraps p as a present palette.
func WithPalette(p Palette) OptionalPalette {
	return OptionalPalette{palette: p, present: true}
}

// NoPalette returns an absent palette.
func NoPalette() OptionalPalette {
	return OptionalPalette{}
}

// Get returns the palette and whether it is present.
func (o OptionalPalette) Get() (Palette, bool) {
	return o.palette, o.present
}

// Present reports whether a palette is set.
func (o OptionalPalette) Present() bool {
	return o.present
}
