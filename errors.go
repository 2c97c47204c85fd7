package imglib

import "errors"

var (
	// ErrNilIO indicates that NewReader/NewWriter was called with an nil interface
	ErrNilIO = errors.New("imglib: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrSizeTooSmall indicates a size conflict with bufio
	ErrSizeTooSmall = errors.New("imglib: NewReaderSize with a size smaller than 16 conflict with bufio")

	// ErrAlreadyBuffered indicates that NewReader/NewWriter was called with an already-buffered
	// reader/writer whose buffer is smaller than requested.
	ErrAlreadyBuffered = errors.New("imglib: reader or writer is already buffered")

	// ErrWriteToNil indicates a WriteFrom operation was attempted with a nil io.WriterTo.
	ErrWriteToNil = errors.New("imglib: WriteFrom called with a nil io.WriterTo")

	// ErrReadToNil indicates a ReadTo operation was attempted on a nil io.ReaderFrom.
	ErrReadToNil = errors.New("imglib: ReadTo called with a nil io.ReaderFrom")

	// ErrUnsupportedNegativeSeek indicates a backward seek was attempted on a forward-only source.
	ErrUnsupportedNegativeSeek = errors.New("imglib: unsupported negative offset for forward-only reader")

	// ErrInvalidWhence indicates that an invalid 'whence' parameter was provided to a Seek operation.
	ErrInvalidWhence = errors.New("imglib: unsupported whence")

	// ErrDiscardNegative indicates a Discard operation was attempted with a negative byte count.
	ErrDiscardNegative = errors.New("imglib: cannot discard negative number of bytes")

	// ErrTruncatedData indicates that the input ended before a header or the pixel array
	// was complete.
	ErrTruncatedData = errors.New("imglib: truncated data")
)

// Bitmap validation failures. Every one of them is terminal: the decoder returns a nil
// image together with the error.
var (
	ErrInvalidFileType   = errors.New("imglib: invalid file type")
	ErrSizeMismatch      = errors.New("imglib: file size does not match header")
	ErrInvalidOffset     = errors.New("imglib: invalid data offset")
	ErrUnsupportedFormat = errors.New("imglib: unsupported color format")
	ErrInvalidDimensions = errors.New("imglib: invalid dimensions")
)

var (
	// ErrEmptyImage is returned when encoding the zero Image.
	ErrEmptyImage = errors.New("imglib: empty image")

	// ErrImageTooLarge is returned when the encoded size does not fit the 32-bit size fields.
	ErrImageTooLarge = errors.New("imglib: image too large for format")

	// ErrUnknownFormat is returned for paths whose extension maps to no supported format.
	ErrUnknownFormat = errors.New("imglib: unknown image format")

	// ErrInvalidPPM reports a malformed netpbm header or an unsupported variant.
	ErrInvalidPPM = errors.New("imglib: invalid ppm")
)
