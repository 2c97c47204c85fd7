package imglib

import (
	"bufio"
	"io"
)

// Reader provides a buffered reader that simplifies reading binary records.
// It tracks the first error; subsequent reads become no-ops.
type Reader struct {
	r     *bufioReaderAdapter
	count int64 // total bytes consumed, including discarded ones
	err   error // first error encountered
}

// NewReaderSize creates a new Reader with a specified buffer size. A size of 0
// selects the default and accepts an existing bufio.Reader of any size.
func NewReaderSize(r io.Reader, size int) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}

	switch reader := r.(type) {
	// Share the buffer of a compatible Reader instead of stacking a second one.
	case *Reader:
		if reader.r.Size() >= size {
			return &Reader{r: reader.r}, nil
		}
		return nil, ErrAlreadyBuffered
	case *bufio.Reader:
		if reader.Size() >= size {
			return &Reader{r: &bufioReaderAdapter{Reader: reader, src: reader}}, nil
		}
		return nil, ErrAlreadyBuffered
	}

	if size == 0 {
		size = BUFFER_SIZE
	}
	if size < 16 {
		return nil, ErrSizeTooSmall
	}
	return &Reader{r: newBufioReaderAdapter(r, size)}, nil
}

// NewReader creates a new Reader with a default buffer size.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderSize(r, 0)
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	r.count += int64(n)
	r.setError(err)
	return n, r.err
}

// ReadByte implements the io.ByteReader interface.
func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	b, err := r.r.ReadByte()
	if err == nil {
		r.count++
	} else {
		r.err = err
	}
	return b, err
}

// UnreadByte steps back over the last byte returned by ReadByte.
func (r *Reader) UnreadByte() error {
	if r.err != nil {
		return r.err
	}
	if err := r.r.UnreadByte(); err != nil {
		return err
	}
	r.r.pos--
	r.count--
	return nil
}

// Seek moves the read position. Count is updated to the new absolute position.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	if r.err != nil {
		return r.count, r.err
	}
	newPos, err := r.r.Seek(offset, whence)
	r.count = newPos
	r.setError(err)
	return newPos, err
}

func (r *Reader) Size() int    { return r.r.Size() }
func (r *Reader) Count() int64 { return r.count }
func (r *Reader) Err() error   { return r.err }

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Result returns the total bytes read and the final error state.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// ReadTo decodes a record from this reader into an io.ReaderFrom.
func (r *Reader) ReadTo(w io.ReaderFrom) {
	if r.err != nil {
		return
	}
	if w == nil {
		r.setError(ErrReadToNil)
		return
	}
	n, err := w.ReadFrom(r.r)
	r.count += n
	r.setError(err)
}

// ReadBytes reads n bytes and returns a new byte slice.
func (r *Reader) ReadBytes(n int) []byte {
	if n <= 0 || r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	r.ReadBytesTo(buf)
	if r.err != nil {
		return nil
	}
	return buf
}

// ReadBytesTo fills dest completely. A stream that ends early latches
// io.ErrUnexpectedEOF, or io.EOF when nothing at all could be read.
func (r *Reader) ReadBytesTo(dest []byte) {
	if r.err != nil || len(dest) == 0 {
		return
	}
	n, err := io.ReadFull(r.r, dest)
	r.count += int64(n)
	r.setError(err)
}

// Discard skips n bytes, typically row padding.
func (r *Reader) Discard(n int) {
	if r.err != nil || n == 0 {
		return
	}
	skipped, err := Discard(r.r, int64(n))
	r.count += skipped
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	r.setError(err)
}
