package imglib

import "io"

// Sizer is an interface for types that can report their binary size.
type Sizer interface {
	// Size returns the size of the type in bytes when binary encoded.
	Size() int
}

// Codec aggregates the binary serialization interfaces. The bitmap file and info
// headers are Codecs: the decoder streams them in through a Reader and the encoder
// streams them out through a Writer.
type Codec interface {
	Sizer
	io.WriterTo
	io.ReaderFrom
}
