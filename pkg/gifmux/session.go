package gifmux

import "math"

// NoPTS marks a frame without a presentation timestamp.
const NoPTS int64 = math.MinInt64

// TimeBase is the number of PTS ticks per second. GIF delays are in 1/100 s.
const TimeBase = 100

// Session carries the state shared by consecutive frame writes: the loop count
// and the previous frame's timestamp. A Session is not safe for concurrent use.
type Session struct {
	loop    LoopCount
	prevPTS int64
	started bool
}

// NewSession creates a session for one output file.
func NewSession(loop LoopCount) *Session {
	return &Session{loop: loop}
}

// Loop returns the configured loop count.
func (s *Session) Loop() LoopCount {
	return s.loop
}

// PrevPTS returns the timestamp of the last frame seen, and false before the first frame.
func (s *Session) PrevPTS() (int64, bool) {
	return s.prevPTS, s.started
}

// advance returns the delay for a frame at pts and records pts as the previous timestamp.
// The first frame is measured against itself.
func (s *Session) advance(pts int64) uint16 {
	if !s.started {
		s.started = true
		s.prevPTS = pts
	}
	d := frameDuration(pts, s.prevPTS)
	s.prevPTS = pts
	return d
}

// frameDuration returns pts-prev saturated to the uint16 range. Missing
// timestamps on either side give 0.
func frameDuration(pts, prev int64) uint16 {
	if pts == NoPTS || prev == NoPTS {
		return 0
	}
	if pts <= prev {
		return 0
	}
	d := pts - prev
	if d < 0 || d > math.MaxUint16 {
		// d < 0 only when the subtraction overflowed.
		return math.MaxUint16
	}
	return uint16(d)
}
