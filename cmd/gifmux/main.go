// Package main provides the CLI entry point for gifmux.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/gifmux/pkg/adapters/filesink"
	"github.com/user/gifmux/pkg/adapters/gifencoder"
	"github.com/user/gifmux/pkg/adapters/ggrenderer"
	"github.com/user/gifmux/pkg/adapters/logger"
	"github.com/user/gifmux/pkg/adapters/nullsink"
	"github.com/user/gifmux/pkg/adapters/osfilesystem"
	"github.com/user/gifmux/pkg/adapters/progressbar"
	"github.com/user/gifmux/pkg/config"
	"github.com/user/gifmux/pkg/gifmux"
	"github.com/user/gifmux/pkg/orchestrator"
	"github.com/user/gifmux/pkg/ports"
	"github.com/user/gifmux/pkg/stages/encode"
	"github.com/user/gifmux/pkg/stages/load"
	"github.com/user/gifmux/pkg/stages/mux"
	"github.com/user/gifmux/pkg/stages/synth"
	"github.com/user/gifmux/pkg/summarizer"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "gifmux",
		Usage:     l10n.T("Assemble animated GIF files from images"),
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{
				Name:      "mux",
				Usage:     l10n.T("Build an animated GIF from image files"),
				ArgsUsage: "<image>...",
				Flags: append(pipelineFlags(),
					&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Output width (default: first image)"), Category: l10n.T("Frames")},
					&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Output height (default: first image)"), Category: l10n.T("Frames")},
				),
				Action: func(c *cli.Context) error {
					return runPipeline(c, orchestrator.SourceFiles, stdout, stderr)
				},
			},
			{
				Name:  "demo",
				Usage: l10n.T("Render a demo spinner animation to GIF"),
				Flags: append(pipelineFlags(),
					&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Value: 160, Usage: l10n.T("Output width"), Category: l10n.T("Frames")},
					&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Value: 160, Usage: l10n.T("Output height"), Category: l10n.T("Frames")},
					&cli.IntFlag{Name: "frames", Usage: l10n.T("Number of demo frames"), Category: l10n.T("Demo")},
					&cli.StringFlag{Name: "label", Usage: l10n.T("Caption under the spinner"), Category: l10n.T("Demo")},
					&cli.StringFlag{Name: "background", Usage: l10n.T("Background color (hex or 'transparent')"), Category: l10n.T("Demo")},
				),
				Action: func(c *cli.Context) error {
					return runPipeline(c, orchestrator.SourceDemo, stdout, stderr)
				},
			},
			{
				Name:      "inspect",
				Usage:     l10n.T("List the block structure of a GIF file"),
				ArgsUsage: "<file.gif>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: l10n.T("Print the layout as JSON")},
				},
				Action: func(c *cli.Context) error {
					return runInspect(c, stdout)
				},
			},
		},
	}
}

func pipelineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output GIF file path"), Category: l10n.T("Output")},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file"), Category: l10n.T("Output")},
		&cli.StringFlag{Name: "summary", Usage: l10n.T("Output execution summary to file (Markdown format)"), Category: l10n.T("Output")},

		&cli.Float64Flag{Name: "fps", Usage: l10n.T("Frames per second"), Category: l10n.T("Frames")},
		&cli.IntFlag{Name: "delay", Usage: l10n.T("Delay between frames in milliseconds (overrides fps)"), Category: l10n.T("Frames")},
		&cli.IntFlag{Name: "outro", Usage: l10n.T("Duration to hold final frame in milliseconds"), Category: l10n.T("Frames")},

		&cli.IntFlag{Name: "loop", Usage: l10n.T("Loop count (0 = forever)"), Category: l10n.T("Encoding")},
		&cli.StringFlag{Name: "palette", Usage: l10n.T("Palette: gray, websafe or plan9"), Category: l10n.T("Encoding")},
		&cli.BoolFlag{Name: "dither", Value: true, Usage: l10n.T("Floyd-Steinberg dithering"), Category: l10n.T("Encoding")},
		&cli.BoolFlag{Name: "transparent", Usage: l10n.T("Keep transparency (alpha < 128)"), Category: l10n.T("Encoding")},

		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output"), Category: l10n.T("Debug")},
		&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},

		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
	}
}

// buildConfig loads the YAML file, if any, and applies flags that were set.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.Args().Present() {
		cfg.Inputs = c.Args().Slice()
	}
	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("width") || (c.Command.Name == "demo" && cfg.Width == 0) {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") || (c.Command.Name == "demo" && cfg.Height == 0) {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Float64("fps")
		cfg.DelayMs = 0
	}
	if c.IsSet("delay") {
		cfg.DelayMs = c.Int("delay")
	}
	if c.IsSet("outro") {
		cfg.OutroMs = c.Int("outro")
	}
	if c.IsSet("loop") {
		cfg.Loop = c.Int("loop")
	}
	if c.IsSet("palette") {
		cfg.Palette = c.String("palette")
	}
	if c.IsSet("dither") {
		cfg.Dither = c.Bool("dither")
	}
	if c.IsSet("transparent") {
		cfg.Transparent = c.Bool("transparent")
	}
	if c.IsSet("frames") {
		cfg.Demo.Frames = c.Int("frames")
	}
	if c.IsSet("label") {
		cfg.Demo.Label = c.String("label")
	}
	if c.IsSet("background") {
		cfg.Demo.Background = c.String("background")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}

	return cfg, cfg.Validate()
}

func runPipeline(c *cli.Context, source orchestrator.Source, stdout, stderr io.Writer) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}
	if source == orchestrator.SourceFiles && len(cfg.Inputs) == 0 {
		return fmt.Errorf("%s", l10n.T("At least one input image is required"))
	}

	level, err := ports.ParseLogLevel(c.String("log-level"))
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	var progress ports.Progress
	if c.Bool("quiet") || level == ports.LevelQuiet {
		log = logger.NewNoop()
		progress = progressbar.Noop{}
	} else {
		log = logger.NewConsoleWriter(level, stdout, stderr)
		progress = progressbar.NewAuto()
	}

	ctx := c.Context
	stop := context.AfterFunc(ctx, func() {
		log.Warn("Interrupted, shutting down...")
	})
	defer stop()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		fileSink := filesink.NewRun(cfg.DebugDir, fs, renderer)
		if err := fs.MkdirAll(fileSink.Dir()); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		log.Info("Debug output in %s", fileSink.Dir())
		sink = fileSink
	} else {
		sink = nullsink.New()
	}

	// Create stages
	orch := orchestrator.New(
		load.NewStage(fs, renderer, sink, log, runtime.NumCPU()),
		synth.NewStage(renderer, sink, log),
		encode.NewStage(gifencoder.New(), sink, log),
		mux.NewStage(fs, progress, log),
		sink,
		log,
	)

	orchConfig := cfg.ToOrchestratorConfig(source)
	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	if path := c.String("summary"); path != "" {
		summary := summarizer.NewBuilder().
			WithInput(result.Source, result.InputCount).
			WithSettings(summarizer.Settings{
				Palette:     result.PaletteName,
				Dither:      result.Dither,
				Transparent: orchConfig.Transparent,
				Loop:        result.Loop,
				DelayMs:     orchConfig.DelayMs,
				OutroMs:     orchConfig.OutroMs,
			}).
			WithOutput(summarizer.OutputInfo{
				Path:              result.OutputPath,
				FrameCount:        result.FrameCount,
				DurationMs:        result.DurationMs,
				FileSize:          result.FileSize,
				Width:             result.Width,
				Height:            result.Height,
				GlobalPalette:     result.GlobalPalette,
				TransparentFrames: result.TransparentFrames,
			}).
			Build()

		formatter := summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(l10n.T),
			summarizer.WithVersion(version),
		)
		if err := summarizer.NewWriter(formatter, fs).Write(path, summary); err != nil {
			log.Error("Failed to write summary: %s", err.Error())
			return err
		}
		log.Info("Summary saved to %s", path)
	}

	return nil
}

func runInspect(c *cli.Context, stdout io.Writer) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%s", l10n.T("Exactly one GIF file is required"))
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return err
	}
	defer f.Close()

	layout, err := gifmux.Scan(f)
	if err != nil {
		return fmt.Errorf("scan %s: %w", c.Args().First(), err)
	}

	if c.Bool("json") {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(layout)
	}

	fmt.Fprintf(stdout, "GIF%s %dx%d, %s\n", layout.Version, layout.Width, layout.Height, describeLoop(layout.LoopCount))
	fmt.Fprintf(stdout, "%-10s %-10s %s\n", "offset", "size", "block")
	for _, b := range layout.Blocks {
		fmt.Fprintf(stdout, "%-10d %-10d %s\n", b.Offset, b.Size, b.Kind)
	}
	for i, fr := range layout.Frames {
		fmt.Fprintf(stdout, "frame %d: %dx%d+%d+%d delay %d", i, fr.Width, fr.Height, fr.Left, fr.Top, fr.Delay)
		if fr.Transparent {
			fmt.Fprintf(stdout, " transparent %d", fr.TransparentIndex)
		}
		fmt.Fprintln(stdout)
	}
	fmt.Fprintln(stdout, l10n.F("Total: %d frames, %d bytes", len(layout.Frames), layout.Size))
	return nil
}

func describeLoop(n int) string {
	switch n {
	case -1:
		return l10n.T("no loop extension")
	case 0:
		return l10n.T("loops forever")
	default:
		return l10n.F("loops %d times", n)
	}
}
