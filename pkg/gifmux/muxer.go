package gifmux

import (
	"fmt"
	"io"
)

// Logger receives debug output from the muxer. ports.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

type muxState int

const (
	stateInit muxState = iota
	stateFrames
	stateDone
	stateFailed
)

// Stats summarises what a Muxer has written so far.
type Stats struct {
	Frames int
	Bytes  int64
	// DurationTicks is the sum of frame delays in 1/TimeBase seconds.
	DurationTicks int64
	Width         int
	Height        int
	GlobalPalette bool
	Transparent   int // frames with the transparency flag set
}

// Muxer writes one GIF file to an exclusively owned sink. Calls must follow
// WriteHeader, WriteFrame..., WriteTrailer. A Muxer is not safe for concurrent use.
type Muxer struct {
	w       io.Writer
	log     Logger
	session *Session
	state   muxState
	stats   Stats
}

// Option configures a Muxer.
type Option func(*Muxer)

// WithLoop sets the loop count written in the looping extension.
func WithLoop(loop LoopCount) Option {
	return func(m *Muxer) {
		m.session = NewSession(loop)
	}
}

// WithLogger routes debug output to log.
func WithLogger(log Logger) Option {
	return func(m *Muxer) {
		if log != nil {
			m.log = log
		}
	}
}

// NewMuxer creates a Muxer writing to w. The loop count defaults to LoopForever.
func NewMuxer(w io.Writer, opts ...Option) *Muxer {
	m := &Muxer{
		w:       w,
		log:     nopLogger{},
		session: NewSession(LoopForever),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WriteHeader validates the stream set and writes the file header.
func (m *Muxer) WriteHeader(streams []Stream) error {
	if err := m.check(stateInit); err != nil {
		return err
	}
	st, global, err := validateStreams(streams)
	if err != nil {
		return err
	}
	buf := AppendHeader(make([]byte, 0, HeaderSize(global)), uint16(st.Width), uint16(st.Height), m.session.Loop(), global)
	if err := m.write(buf); err != nil {
		return err
	}

	m.stats.Width = st.Width
	m.stats.Height = st.Height
	m.stats.GlobalPalette = global.Present()
	m.state = stateFrames
	m.log.Debug("Header written: %dx%d, loop %d, global palette %t", st.Width, st.Height, m.session.Loop(), global.Present())
	return nil
}

// WriteFrame writes one frame. A malformed side palette returns an error
// wrapping ErrInvalidPalette, writes nothing and leaves the session usable.
func (m *Muxer) WriteFrame(frame EncodedFrame) error {
	if err := m.check(stateFrames); err != nil {
		return err
	}
	cb, err := BuildControlBlock(frame, m.session)
	if err != nil {
		return err
	}
	buf := cb.Append(make([]byte, 0, ControlBlockSize+len(frame.Data)))
	buf = append(buf, frame.Data...)
	if err := m.write(buf); err != nil {
		return err
	}

	m.stats.Frames++
	m.stats.DurationTicks += int64(cb.Delay)
	if cb.Transparent {
		m.stats.Transparent++
	}
	m.log.Debug("Frame %d written: delay %d, flags 0x%02x, transparent index %d, %d bytes",
		m.stats.Frames, cb.Delay, cb.Flags(), cb.TransparentIndex, len(frame.Data))
	return nil
}

// WriteTrailer terminates the file. It can be called once.
func (m *Muxer) WriteTrailer() error {
	if err := m.check(stateFrames); err != nil {
		return err
	}
	if err := m.write(AppendTrailer(nil)); err != nil {
		return err
	}
	m.state = stateDone
	m.log.Debug("Trailer written: %d frames, %d bytes", m.stats.Frames, m.stats.Bytes)
	return nil
}

// Stats returns counters for the bytes written so far.
func (m *Muxer) Stats() Stats {
	return m.stats
}

func (m *Muxer) check(want muxState) error {
	if m.state == want {
		return nil
	}
	switch m.state {
	case stateFailed:
		return ErrSessionFailed
	case stateDone:
		return ErrTrailerWritten
	case stateInit:
		return ErrHeaderNotWritten
	default:
		return ErrHeaderWritten
	}
}

func (m *Muxer) write(buf []byte) error {
	n, err := m.w.Write(buf)
	m.stats.Bytes += int64(n)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		m.state = stateFailed
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
