package gifmux

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStream is returned when the stream set cannot be muxed as GIF.
	// It is detected before any byte is written.
	ErrInvalidStream = errors.New("gifmux: invalid stream")

	// ErrInvalidData is returned for malformed per-frame side data.
	ErrInvalidData = errors.New("gifmux: invalid data")

	// ErrInvalidPalette is returned when a palette does not hold 256 entries.
	ErrInvalidPalette = fmt.Errorf("%w: invalid palette side data", ErrInvalidData)

	// ErrWrite wraps errors returned by the output sink.
	ErrWrite = errors.New("gifmux: write failed")

	// ErrSessionFailed is returned by every call after a sink error.
	ErrSessionFailed = errors.New("gifmux: session failed")

	// ErrHeaderWritten is returned when WriteHeader is called twice.
	ErrHeaderWritten = errors.New("gifmux: header already written")

	// ErrHeaderNotWritten is returned when frames or the trailer come before the header.
	ErrHeaderNotWritten = errors.New("gifmux: header not written")

	// ErrTrailerWritten is returned for any call after the trailer.
	ErrTrailerWritten = errors.New("gifmux: trailer already written")

	// ErrInvalidLoop is returned for a loop count outside [0, 65535].
	ErrInvalidLoop = errors.New("gifmux: loop count out of range")
)

// ErrMalformed is returned by Scan for input that is not a well-formed GIF.
var ErrMalformed = errors.New("gifmux: malformed gif")
