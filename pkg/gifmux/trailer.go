package gifmux

import "io"

// AppendTrailer appends the GIF trailer byte to dst.
func AppendTrailer(dst []byte) []byte {
	return append(dst, trailerByte)
}

// WriteTrailer terminates the file.
func WriteTrailer(w io.Writer) error {
	return writeAll(w, AppendTrailer(nil))
}
