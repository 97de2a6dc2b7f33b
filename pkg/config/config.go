// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"image/color/palette"
	"os"
	"strings"

	"github.com/user/gifmux/pkg/gifmux"
	"github.com/user/gifmux/pkg/orchestrator"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidFPS is returned when fps is not positive.
	ErrInvalidFPS = errors.New("config: fps must be positive")

	// ErrUnknownPalette is returned for palette names other than websafe, plan9 and gray.
	ErrUnknownPalette = errors.New("config: unknown palette")

	// ErrInvalidSize is returned when only one of width and height is set or either is negative.
	ErrInvalidSize = errors.New("config: width and height must be set together")
)

// Config represents the full configuration for gifmux.
type Config struct {
	// Input/Output
	Inputs     []string `yaml:"inputs"`
	OutputPath string   `yaml:"output"`

	// Frames
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	FPS     float64 `yaml:"fps"`
	DelayMs int     `yaml:"delay_ms"` // Overrides fps when set
	OutroMs int     `yaml:"outro_ms"`

	// Demo
	Demo DemoConfig `yaml:"demo"`

	// Encoding
	Palette     string `yaml:"palette"`
	Dither      bool   `yaml:"dither"`
	Transparent bool   `yaml:"transparent"`

	// Container
	Loop int `yaml:"loop"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// DemoConfig represents the demo animation settings.
type DemoConfig struct {
	Frames     int    `yaml:"frames"`
	Label      string `yaml:"label"`
	Background string `yaml:"background"` // Hex color or "transparent"
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		OutputPath: "output.gif",

		FPS:     10.0,
		OutroMs: 1000,

		Demo: DemoConfig{
			Frames: 12,
		},

		Palette: "gray",
		Dither:  true,

		Loop: 0,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := gifmux.NewLoopCount(c.Loop); err != nil {
		return err
	}
	if c.DelayMs <= 0 && c.FPS <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidFPS, c.FPS)
	}
	if c.Width < 0 || c.Height < 0 || (c.Width == 0) != (c.Height == 0) {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if _, err := ResolvePalette(c.Palette); err != nil {
		return err
	}
	return nil
}

// FrameDelayMs returns the time between frames.
func (c Config) FrameDelayMs() int {
	if c.DelayMs > 0 {
		return c.DelayMs
	}
	if c.FPS <= 0 {
		return 0
	}
	return int(1000/c.FPS + 0.5)
}

// ResolvePalette maps a palette name to colors. "gray" yields nil, which
// makes the encoder quantize to 256 gray levels.
func ResolvePalette(name string) (color.Palette, error) {
	switch strings.ToLower(name) {
	case "", "gray", "grey":
		return nil, nil
	case "websafe":
		return palette.WebSafe, nil
	case "plan9":
		return palette.Plan9, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
}

// ParseColor parses a hex color string to color.Color.
// "transparent" yields a fully transparent color.
func ParseColor(hex string) color.Color {
	if strings.EqualFold(hex, "transparent") {
		return color.Transparent
	}

	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	r := hexValue(hex[0])<<4 | hexValue(hex[1])
	g := hexValue(hex[2])<<4 | hexValue(hex[3])
	b := hexValue(hex[4])<<4 | hexValue(hex[5])

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
// Validate must have succeeded.
func (c Config) ToOrchestratorConfig(source orchestrator.Source) orchestrator.Config {
	pal, _ := ResolvePalette(c.Palette)
	loop, _ := gifmux.NewLoopCount(c.Loop)

	cfg := orchestrator.Config{
		Source:     source,
		Inputs:     c.Inputs,
		OutputPath: c.OutputPath,

		Width:   c.Width,
		Height:  c.Height,
		DelayMs: c.FrameDelayMs(),

		DemoFrames: c.Demo.Frames,
		DemoLabel:  c.Demo.Label,

		PaletteName: strings.ToLower(c.Palette),
		Palette:     pal,
		Dither:      c.Dither,
		Transparent: c.Transparent,
		OutroMs:     c.OutroMs,

		Loop: loop,
	}
	if cfg.PaletteName == "" {
		cfg.PaletteName = "gray"
	}
	if c.Demo.Background != "" {
		cfg.Background = ParseColor(c.Demo.Background)
	}
	return cfg
}
