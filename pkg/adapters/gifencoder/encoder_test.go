package gifencoder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"testing"

	"github.com/user/gifmux/pkg/gifmux"
	"github.com/user/gifmux/pkg/ports"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x * 255) / max(w-1, 1))
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// mux runs frames through the muxer and decodes the result with image/gif.
func mux(t *testing.T, stream gifmux.Stream, frames []gifmux.EncodedFrame) *gif.GIF {
	t.Helper()
	var buf bytes.Buffer
	m := gifmux.NewMuxer(&buf)
	if err := m.WriteHeader([]gifmux.Stream{stream}); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	for _, f := range frames {
		if err := m.WriteFrame(f); err != nil {
			t.Fatalf("WriteFrame failed: %v", err)
		}
	}
	if err := m.WriteTrailer(); err != nil {
		t.Fatalf("WriteTrailer failed: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}
	return g
}

func TestEncoder_Begin(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		opts    ports.EncoderOptions
		wantFmt gifmux.PixelFormat
		wantErr error
	}{
		{"gray default", 10, 10, ports.EncoderOptions{}, gifmux.PixFmtGray8, nil},
		{"explicit palette", 10, 10, ports.EncoderOptions{Palette: palette.WebSafe}, gifmux.PixFmtPAL8, nil},
		{"zero width", 0, 10, ports.EncoderOptions{}, 0, ErrInvalidSize},
		{"too tall", 10, 70000, ports.EncoderOptions{}, 0, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := New().Begin(tt.w, tt.h, tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Begin failed: %v", err)
			}
			if st.PixelFormat != tt.wantFmt {
				t.Errorf("expected pixel format %s, got %s", tt.wantFmt, st.PixelFormat)
			}
			if st.Codec != gifmux.CodecGIF || st.MediaType != gifmux.MediaVideo {
				t.Errorf("unexpected stream %+v", st)
			}
		})
	}
}

func TestEncoder_EncodeFrame_NotInitialized(t *testing.T) {
	_, err := New().EncodeFrame(gradient(4, 4), 0)
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestEncoder_EncodeFrame_SizeMismatch(t *testing.T) {
	e := New()
	if _, err := e.Begin(8, 8, ports.EncoderOptions{}); err != nil {
		t.Fatal(err)
	}
	if _, err := e.EncodeFrame(gradient(4, 4), 0); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestEncoder_PayloadLayout(t *testing.T) {
	e := New()
	if _, err := e.Begin(300, 2, ports.EncoderOptions{}); err != nil {
		t.Fatal(err)
	}
	f, err := e.EncodeFrame(gradient(300, 2), 7)
	if err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}

	want := []byte{0x2c, 0, 0, 0, 0, 0x2c, 0x01, 2, 0, 0, litWidth}
	if !bytes.Equal(f.Data[:len(want)], want) {
		t.Errorf("descriptor = % x, want % x", f.Data[:len(want)], want)
	}
	if f.Data[len(f.Data)-1] != 0 {
		t.Error("expected block terminator")
	}
	if f.PTS != 7 {
		t.Errorf("expected PTS 7, got %d", f.PTS)
	}
	if f.SidePalette.Present() {
		t.Error("expected no side palette without transparency")
	}

	// Every sub-block length must stay within 1..255 and land on the terminator.
	pos := len(want)
	for f.Data[pos] != 0 {
		pos += int(f.Data[pos]) + 1
		if pos >= len(f.Data) {
			t.Fatal("sub-blocks overrun the payload")
		}
	}
	if pos != len(f.Data)-1 {
		t.Errorf("terminator at %d, want %d", pos, len(f.Data)-1)
	}
}

func TestEncoder_RoundTrip(t *testing.T) {
	src := gradient(64, 16)

	for _, dither := range []bool{false, true} {
		e := New()
		st, err := e.Begin(64, 16, ports.EncoderOptions{Dither: dither})
		if err != nil {
			t.Fatal(err)
		}
		f, err := e.EncodeFrame(src, 0)
		if err != nil {
			t.Fatal(err)
		}

		g := mux(t, st, []gifmux.EncodedFrame{f})
		if len(g.Image) != 1 {
			t.Fatalf("expected 1 frame, got %d", len(g.Image))
		}
		got := g.Image[0]
		if got.Bounds().Dx() != 64 || got.Bounds().Dy() != 16 {
			t.Errorf("expected 64x16, got %v", got.Bounds())
		}
		if !dither {
			// Gray input maps exactly onto the gray palette.
			for x := 0; x < 64; x++ {
				r, _, _, _ := got.At(x, 5).RGBA()
				wr, _, _, _ := src.At(x, 5).RGBA()
				if r>>8 != wr>>8 {
					t.Fatalf("pixel %d: got %d, want %d", x, r>>8, wr>>8)
				}
			}
		}
	}
}

func TestEncoder_Transparent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 0, B: 0, A: 10})

	e := New()
	st, err := e.Begin(4, 4, ports.EncoderOptions{Palette: palette.Plan9, Transparent: true})
	if err != nil {
		t.Fatal(err)
	}
	f, err := e.EncodeFrame(src, 0)
	if err != nil {
		t.Fatal(err)
	}

	side, ok := f.SidePalette.Get()
	if !ok {
		t.Fatal("expected side palette")
	}
	if idx, transparent := gifmux.SelectTransparency(side); idx != TransparentIndex || !transparent {
		t.Errorf("expected transparent index 255, got %d (%v)", idx, transparent)
	}

	g := mux(t, st, []gifmux.EncodedFrame{f})
	img := g.Image[0]
	if img.ColorIndexAt(1, 1) != TransparentIndex {
		t.Errorf("expected index 255 at (1,1), got %d", img.ColorIndexAt(1, 1))
	}
	if img.ColorIndexAt(0, 0) == TransparentIndex {
		t.Error("opaque pixel mapped to the transparent index")
	}
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Errorf("expected decoded alpha 0, got %d", a)
	}
}
