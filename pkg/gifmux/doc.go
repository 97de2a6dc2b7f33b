// Package gifmux assembles pre-encoded GIF image blocks into an animated
// GIF89a file.
//
// The package does no pixel work. Callers hand it opaque image blocks (image
// descriptor, optional local color table and LZW data sub-blocks) together with
// a presentation timestamp in 1/100 s and an optional side-channel palette. The
// muxer writes the file header, the NETSCAPE2.0 looping extension, one graphic
// control extension per frame and the trailer.
//
// A typical session:
//
//	m := gifmux.NewMuxer(f, gifmux.WithLoop(0))
//	if err := m.WriteHeader([]gifmux.Stream{stream}); err != nil {
//	    return err
//	}
//	for _, frame := range frames {
//	    if err := m.WriteFrame(frame); err != nil {
//	        return err
//	    }
//	}
//	return m.WriteTrailer()
package gifmux
