package imglib

import (
	"bufio"
	"bytes"
	"io"
)

// flushWriter is the sink a Writer buffers into.
type flushWriter interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
	Flush() error
}

type bytesBufferWriterAdapter struct{ *bytes.Buffer }

func (w *bytesBufferWriterAdapter) Flush() error { return nil }

// bufioReaderAdapter tracks the absolute stream position of a bufio.Reader so that
// Seek can be served from the buffer when possible.
type bufioReaderAdapter struct {
	*bufio.Reader
	src    io.Reader
	seeker io.Seeker // nil when the source is forward-only
	pos    int64
}

func newBufioReaderAdapter(r io.Reader, size int) *bufioReaderAdapter {
	a := &bufioReaderAdapter{Reader: bufio.NewReaderSize(r, size), src: r}
	if s, ok := r.(io.Seeker); ok {
		if pos, err := s.Seek(0, io.SeekCurrent); err == nil {
			a.seeker = s
			a.pos = pos
		}
	}
	return a
}

// Read reads data into p, updating the stream position.
func (b *bufioReaderAdapter) Read(p []byte) (n int, err error) {
	n, err = b.Reader.Read(p)
	b.pos += int64(n)
	return n, err
}

// ReadByte reads a single byte, updating the stream position.
func (b *bufioReaderAdapter) ReadByte() (c byte, err error) {
	c, err = b.Reader.ReadByte()
	if err == nil {
		b.pos++
	}
	return c, err
}

// Seek moves to an absolute or relative position. Targets inside the buffer are
// reached by discarding; otherwise a seekable source is repositioned and the buffer
// reset, and a forward-only source is read and thrown away.
func (b *bufioReaderAdapter) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = b.pos + offset
	case io.SeekEnd:
		if b.seeker == nil {
			return b.pos, ErrInvalidWhence
		}
		// Asking the source for its end moves it, so the buffer cannot be reused.
		end, err := b.seeker.Seek(0, io.SeekEnd)
		if err != nil {
			return b.pos, err
		}
		return b.reposition(end + offset)
	default:
		return b.pos, ErrInvalidWhence
	}

	if b.pos <= target && target < b.pos+int64(b.Reader.Buffered()) {
		n, err := b.Reader.Discard(int(target - b.pos))
		b.pos += int64(n)
		return b.pos, err
	}

	if b.seeker != nil {
		return b.reposition(target)
	}

	if target < b.pos {
		return b.pos, ErrUnsupportedNegativeSeek
	}
	_, err := Discard(b, target-b.pos)
	return b.pos, err
}

func (b *bufioReaderAdapter) reposition(target int64) (int64, error) {
	newPos, err := b.seeker.Seek(target, io.SeekStart)
	if err != nil {
		return b.pos, err
	}
	b.Reader.Reset(b.src)
	b.pos = newPos
	return newPos, nil
}
