// Package progressbar provides terminal progress reporting.
package progressbar

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/user/gifmux/pkg/ports"
)

var theme = progressbar.Theme{
	Saucer:        "=",
	SaucerHead:    ">",
	SaucerPadding: " ",
	BarStart:      "[",
	BarEnd:        "]",
}

// Bar implements ports.Progress with a terminal progress bar.
type Bar struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// New creates a Bar that renders to w.
func New(w io.Writer) *Bar {
	return &Bar{w: w}
}

// NewAuto returns a Bar on stderr when it is a terminal, otherwise a no-op.
func NewAuto() ports.Progress {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return New(os.Stderr)
	}
	return Noop{}
}

// Start begins a new bar, finishing any previous one.
func (b *Bar) Start(total int, description string) {
	b.Finish()
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetTheme(theme),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(b.w, "\n")
		}),
	)
}

// Increment advances the bar by one step.
func (b *Bar) Increment() {
	if b.bar != nil {
		_ = b.bar.Add(1)
	}
}

// Finish completes the current bar.
func (b *Bar) Finish() {
	if b.bar != nil {
		_ = b.bar.Finish()
		b.bar = nil
	}
}

// Noop discards progress.
type Noop struct{}

func (Noop) Start(int, string) {}
func (Noop) Increment()        {}
func (Noop) Finish()           {}

var (
	_ ports.Progress = (*Bar)(nil)
	_ ports.Progress = Noop{}
)
