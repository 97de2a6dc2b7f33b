package gifencoder

import "errors"

var (
	// ErrNotInitialized is returned when EncodeFrame is called before Begin.
	ErrNotInitialized = errors.New("gifencoder: encoder not initialized")

	// ErrInvalidSize is returned when Begin receives dimensions outside 1..65535.
	ErrInvalidSize = errors.New("gifencoder: invalid frame size")

	// ErrSizeMismatch is returned when a frame does not match the size passed to Begin.
	ErrSizeMismatch = errors.New("gifencoder: frame size mismatch")
)
