package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ideamans/go-l10n"

	"github.com/user/gifmux/pkg/config"
	"github.com/user/gifmux/pkg/gifmux"
	"github.com/user/gifmux/pkg/ports"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(append([]string{"gifmux"}, args...))
	return stdout.String(), err
}

func decodeFile(t *testing.T, path string) *gif.GIF {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	return g
}

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDemoCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.gif")

	_, err := runApp(t, "demo", "--quiet",
		"-o", out,
		"--width", "32", "--height", "24",
		"--frames", "4",
		"--delay", "50",
		"--outro", "100",
		"--loop", "2",
	)
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}

	g := decodeFile(t, out)
	if g.Config.Width != 32 || g.Config.Height != 24 {
		t.Errorf("size = %dx%d, want 32x24", g.Config.Width, g.Config.Height)
	}
	if g.LoopCount != 2 {
		t.Errorf("LoopCount = %d, want 2", g.LoopCount)
	}
	want := []int{0, 5, 5, 5, 10}
	if len(g.Delay) != len(want) {
		t.Fatalf("frames = %d, want %d", len(g.Delay), len(want))
	}
	for i, d := range want {
		if g.Delay[i] != d {
			t.Errorf("delay[%d] = %d, want %d", i, g.Delay[i], d)
		}
	}
}

func TestMuxCommand(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 20, 10, color.White)
	writePNG(t, filepath.Join(dir, "b.png"), 20, 10, color.Black)
	out := filepath.Join(dir, "out.gif")
	summary := filepath.Join(dir, "summary.md")

	_, err := runApp(t, "mux", "--quiet",
		"-o", out,
		"--fps", "10",
		"--palette", "websafe",
		"--summary", summary,
		filepath.Join(dir, "*.png"),
	)
	if err != nil {
		t.Fatalf("mux failed: %v", err)
	}

	g := decodeFile(t, out)
	if g.Config.Width != 20 || g.Config.Height != 10 {
		t.Errorf("size = %dx%d, want 20x10", g.Config.Width, g.Config.Height)
	}
	if len(g.Image) != 3 {
		t.Errorf("frames = %d, want 3 (two inputs plus outro)", len(g.Image))
	}
	if g.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0", g.LoopCount)
	}

	data, err := os.ReadFile(summary)
	if err != nil {
		t.Fatalf("summary not written: %v", err)
	}
	if !strings.Contains(string(data), "websafe") {
		t.Errorf("summary missing palette name:\n%s", data)
	}
}

func TestMuxCommand_NoInputs(t *testing.T) {
	_, err := runApp(t, "mux", "--quiet", "-o", filepath.Join(t.TempDir(), "x.gif"))
	if err == nil {
		t.Fatal("expected error without inputs")
	}
}

func TestMuxCommand_InvalidLoop(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.gif")
	_, err := runApp(t, "demo", "--quiet", "-o", out, "--loop", "70000")
	if !errors.Is(err, gifmux.ErrInvalidLoop) {
		t.Fatalf("err = %v, want ErrInvalidLoop", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output should not be created")
	}
}

func TestLogLevelFlag(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.gif")
	_, err := runApp(t, "demo", "-o", out, "--log-level", "verbose")
	if !errors.Is(err, ports.ErrUnknownLogLevel) {
		t.Fatalf("err = %v, want ErrUnknownLogLevel", err)
	}
}

func TestMuxCommand_UnknownPalette(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.gif")
	_, err := runApp(t, "demo", "--quiet", "-o", out, "--palette", "sepia")
	if !errors.Is(err, config.ErrUnknownPalette) {
		t.Fatalf("err = %v, want ErrUnknownPalette", err)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cfg.gif")
	cfgPath := filepath.Join(dir, "gifmux.yaml")
	yaml := "output: " + out + "\nloop: 5\ndelay_ms: 30\noutro_ms: 0\ndemo:\n  frames: 3\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	// Flags override the file.
	if _, err := runApp(t, "demo", "--quiet", "-c", cfgPath, "--width", "16", "--height", "16", "--loop", "1"); err != nil {
		t.Fatalf("demo failed: %v", err)
	}

	g := decodeFile(t, out)
	if g.LoopCount != 1 {
		t.Errorf("LoopCount = %d, want 1", g.LoopCount)
	}
	if len(g.Image) != 3 {
		t.Errorf("frames = %d, want 3", len(g.Image))
	}
	if g.Delay[1] != 3 {
		t.Errorf("delay[1] = %d, want 3", g.Delay[1])
	}
}

func TestInspectCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.gif")
	if _, err := runApp(t, "demo", "--quiet", "-o", out, "--width", "16", "--height", "16", "--frames", "2", "--loop", "3"); err != nil {
		t.Fatalf("demo failed: %v", err)
	}

	text, err := runApp(t, "inspect", out)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	for _, want := range []string{"GIF89a 16x16", "application-extension", "graphic-control-extension", "trailer", "frame 2:"} {
		if !strings.Contains(text, want) {
			t.Errorf("inspect output missing %q:\n%s", want, text)
		}
	}

	jsonOut, err := runApp(t, "inspect", "--json", out)
	if err != nil {
		t.Fatalf("inspect --json failed: %v", err)
	}
	var layout gifmux.Layout
	if err := json.Unmarshal([]byte(jsonOut), &layout); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if layout.LoopCount != 3 {
		t.Errorf("LoopCount = %d, want 3", layout.LoopCount)
	}
	if len(layout.Frames) != 3 {
		t.Errorf("frames = %d, want 3", len(layout.Frames))
	}
}

func TestInspectCommand_Args(t *testing.T) {
	if _, err := runApp(t, "inspect"); err == nil {
		t.Error("expected error without a file")
	}
}

func TestDescribeLoop(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{-1, l10n.T("no loop extension")},
		{0, l10n.T("loops forever")},
		{4, l10n.F("loops %d times", 4)},
	}
	for _, tt := range tests {
		if got := describeLoop(tt.n); got != tt.want {
			t.Errorf("describeLoop(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
