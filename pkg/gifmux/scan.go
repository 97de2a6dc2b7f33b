package gifmux

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// BlockKind names a top-level section of a GIF file.
type BlockKind string

const (
	BlockHeader         BlockKind = "header"
	BlockGlobalTable    BlockKind = "global-color-table"
	BlockApplication    BlockKind = "application-extension"
	BlockGraphicControl BlockKind = "graphic-control-extension"
	BlockComment        BlockKind = "comment-extension"
	BlockPlainText      BlockKind = "plain-text-extension"
	BlockExtension      BlockKind = "extension"
	BlockImage          BlockKind = "image"
	BlockTrailer        BlockKind = "trailer"
)

// Block locates one section in the byte stream.
type Block struct {
	Kind   BlockKind
	Offset int64
	Size   int64
}

// FrameInfo describes one image and the graphic control extension before it.
type FrameInfo struct {
	HasControl       bool
	Delay            uint16
	Disposal         uint8
	Transparent      bool
	TransparentIndex uint8
	Left, Top        uint16
	Width, Height    uint16
	LocalTable       bool
	Offset           int64
	Size             int64
}

// Layout is the structure of a scanned GIF file.
type Layout struct {
	Version         string
	Width, Height   uint16
	Flags           uint8
	BackgroundIndex uint8
	// GlobalTable holds the RGB triples of the global color table, if any.
	GlobalTable []byte
	// LoopCount is the NETSCAPE2.0 loop count, or -1 without the extension.
	LoopCount int
	Frames    []FrameInfo
	Blocks    []Block
	Size      int64
}

type scanner struct {
	r   *bufio.Reader
	off int64
}

// Scan walks a GIF byte stream up to and including the trailer. Image data is
// skipped, not decoded.
func Scan(r io.Reader) (*Layout, error) {
	s := &scanner{r: bufio.NewReader(r)}
	l := &Layout{LoopCount: -1}

	hdr, err := s.read(ScreenDescriptorSize)
	if err != nil {
		return nil, err
	}
	if string(hdr[:3]) != "GIF" || (string(hdr[3:6]) != "87a" && string(hdr[3:6]) != "89a") {
		return nil, fmt.Errorf("%w: bad signature %q", ErrMalformed, hdr[:6])
	}
	l.Version = string(hdr[3:6])
	l.Width = binary.LittleEndian.Uint16(hdr[6:])
	l.Height = binary.LittleEndian.Uint16(hdr[8:])
	l.Flags = hdr[10]
	l.BackgroundIndex = hdr[11]
	l.Blocks = append(l.Blocks, Block{Kind: BlockHeader, Offset: 0, Size: ScreenDescriptorSize})

	if l.Flags&0x80 != 0 {
		start := s.off
		if l.GlobalTable, err = s.read(tableSize(l.Flags)); err != nil {
			return nil, err
		}
		l.Blocks = append(l.Blocks, Block{Kind: BlockGlobalTable, Offset: start, Size: s.off - start})
	}

	var pending *FrameInfo
	for {
		start := s.off
		c, err := s.readByte()
		if err != nil {
			return nil, err
		}
		switch c {
		case extensionIntroducer:
			label, err := s.readByte()
			if err != nil {
				return nil, err
			}
			blocks, err := s.subBlocks()
			if err != nil {
				return nil, err
			}
			kind := BlockExtension
			switch label {
			case applicationLabel:
				kind = BlockApplication
				if len(blocks) >= 2 && string(blocks[0]) == netscapeID && len(blocks[1]) == 3 && blocks[1][0] == 0x01 {
					l.LoopCount = int(binary.LittleEndian.Uint16(blocks[1][1:]))
				}
			case graphicControlLabel:
				kind = BlockGraphicControl
				if len(blocks) == 0 || len(blocks[0]) != 4 {
					return nil, fmt.Errorf("%w: graphic control extension at %d", ErrMalformed, start)
				}
				b := blocks[0]
				pending = &FrameInfo{
					HasControl:       true,
					Disposal:         (b[0] >> 2) & 0x07,
					Transparent:      b[0]&0x01 != 0,
					Delay:            binary.LittleEndian.Uint16(b[1:]),
					TransparentIndex: b[3],
				}
			case commentLabel:
				kind = BlockComment
			case plainTextLabel:
				kind = BlockPlainText
			}
			l.Blocks = append(l.Blocks, Block{Kind: kind, Offset: start, Size: s.off - start})

		case imageSeparator:
			desc, err := s.read(9)
			if err != nil {
				return nil, err
			}
			fi := FrameInfo{}
			if pending != nil {
				fi = *pending
				pending = nil
			}
			fi.Left = binary.LittleEndian.Uint16(desc[0:])
			fi.Top = binary.LittleEndian.Uint16(desc[2:])
			fi.Width = binary.LittleEndian.Uint16(desc[4:])
			fi.Height = binary.LittleEndian.Uint16(desc[6:])
			fi.LocalTable = desc[8]&0x80 != 0
			if fi.LocalTable {
				if _, err := s.read(tableSize(desc[8])); err != nil {
					return nil, err
				}
			}
			// LZW minimum code size.
			if _, err := s.readByte(); err != nil {
				return nil, err
			}
			if _, err := s.subBlocks(); err != nil {
				return nil, err
			}
			fi.Offset = start
			fi.Size = s.off - start
			l.Frames = append(l.Frames, fi)
			l.Blocks = append(l.Blocks, Block{Kind: BlockImage, Offset: start, Size: fi.Size})

		case trailerByte:
			l.Blocks = append(l.Blocks, Block{Kind: BlockTrailer, Offset: start, Size: TrailerSize})
			l.Size = s.off
			return l, nil

		default:
			return nil, fmt.Errorf("%w: unexpected byte 0x%02x at %d", ErrMalformed, c, start)
		}
	}
}

func tableSize(flags uint8) int {
	return 3 * (1 << ((flags & 0x07) + 1))
}

func (s *scanner) read(n int) ([]byte, error) {
	buf := make([]byte, n)
	m, err := io.ReadFull(s.r, buf)
	s.off += int64(m)
	if err != nil {
		return nil, s.wrap(err)
	}
	return buf, nil
}

func (s *scanner) readByte() (byte, error) {
	c, err := s.r.ReadByte()
	if err != nil {
		return 0, s.wrap(err)
	}
	s.off++
	return c, nil
}

// subBlocks reads data sub-blocks up to and including the zero-length terminator.
func (s *scanner) subBlocks() ([][]byte, error) {
	var blocks [][]byte
	for {
		n, err := s.readByte()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return blocks, nil
		}
		b, err := s.read(int(n))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
}

func (s *scanner) wrap(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated at offset %d", ErrMalformed, s.off)
	}
	return err
}
