package imglib

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
)

// bmpDecoder holds the state of a single decode. Nothing is shared between calls.
type bmpDecoder struct {
	r    *Reader
	size int64 // byte length of the whole bitmap stream

	fh FileHeader
	ih InfoHeader
}

// DecodeBMP reads an uncompressed 24-bit bitmap from r. The bitmap must span
// everything from the current position of r to its end.
//
// Sources that implement io.ReaderAt and io.Seeker (files, bytes.Reader) are read
// in place, row by row. Any other stream is buffered whole in memory first, because
// the file size check needs the total length before the pixel array is read.
//
// On any failure the returned image is nil; the error tells which check failed
// (ErrInvalidFileType, ErrSizeMismatch, ErrInvalidOffset, ErrUnsupportedFormat,
// ErrInvalidDimensions, ErrTruncatedData) or carries the underlying I/O error.
func DecodeBMP(r io.Reader) (*Image, error) {
	d, release, err := newBMPDecoder(r)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := d.readHeaders(); err != nil {
		return nil, err
	}
	return d.readPixels()
}

// DecodeBMPConfig validates the headers of a bitmap and returns its dimensions
// without decoding the pixel array.
func DecodeBMPConfig(r io.Reader) (image.Config, error) {
	d, release, err := newBMPDecoder(r)
	if err != nil {
		return image.Config{}, err
	}
	defer release()

	if err := d.readHeaders(); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: RGBModel,
		Width:      int(d.ih.Width),
		Height:     int(d.ih.Height),
	}, nil
}

// LoadBMP decodes the named bitmap file.
func LoadBMP(path string) (*Image, error) {
	return loadFile(path, DecodeBMP)
}

func newBMPDecoder(r io.Reader) (*bmpDecoder, func(), error) {
	src, size, release, err := sizedSource(r)
	if err != nil {
		return nil, nil, err
	}
	br, err := NewReader(src)
	if err != nil {
		release()
		return nil, nil, err
	}
	return &bmpDecoder{r: br, size: size}, release, nil
}

type readSeekerAt interface {
	io.ReaderAt
	io.Seeker
}

// sizedSource returns a stream over the bytes from the current position of r to its
// end together with their count. Files and byte readers are used in place; anything
// else is copied into a pooled buffer first, since the size check needs the total
// length before the pixel array is read.
func sizedSource(r io.Reader) (io.Reader, int64, func(), error) {
	if rs, ok := r.(readSeekerAt); ok {
		start, err := rs.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, 0, nil, err
		}
		end, err := rs.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, 0, nil, err
		}
		return io.NewSectionReader(rs, start, end-start), end - start, func() {}, nil
	}

	buf := getBuffer()
	if _, err := buf.ReadFrom(r); err != nil {
		putBuffer(buf)
		return nil, 0, nil, err
	}
	return bytes.NewReader(buf.Bytes()), int64(buf.Len()), func() { putBuffer(buf) }, nil
}

// readHeaders reads both headers and runs the validation sequence. Checks run in a
// fixed order and the first failure ends the decode.
func (d *bmpDecoder) readHeaders() error {
	var fh fileHeaderRecord
	var ih infoHeaderRecord
	d.r.ReadTo(&fh)
	d.r.ReadTo(&ih)
	if err := d.r.Err(); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: stream holds %d bytes, headers need %d", ErrTruncatedData, d.size, headerSize)
		}
		return err
	}
	d.fh, d.ih = fh.Payload, ih.Payload

	switch {
	case d.fh.Type != bmpMagic:
		return fmt.Errorf("%w: signature %#04x", ErrInvalidFileType, d.fh.Type)
	case int64(d.fh.Size) != d.size:
		return fmt.Errorf("%w: header says %d bytes, stream has %d", ErrSizeMismatch, d.fh.Size, d.size)
	case d.fh.OffBits < headerSize || d.fh.OffBits > d.fh.Size:
		return fmt.Errorf("%w: %d", ErrInvalidOffset, d.fh.OffBits)
	case d.ih.BitCount != bmpBitCount:
		return fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, d.ih.BitCount)
	case d.ih.Width <= 0 || d.ih.Height <= 0:
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, d.ih.Width, d.ih.Height)
	case d.ih.Compression != biRGB:
		return fmt.Errorf("%w: compression %d", ErrUnsupportedFormat, d.ih.Compression)
	case d.ih.Size < infoHeaderSize:
		return fmt.Errorf("%w: info header of %d bytes", ErrUnsupportedFormat, d.ih.Size)
	}

	// The pixel array must be complete; this also bounds the allocation below by the
	// real size of the input. Division keeps huge dimensions from overflowing.
	stride := Roundup(3*int64(d.ih.Width), 4)
	if rows := (d.size - int64(d.fh.OffBits)) / stride; int64(d.ih.Height) > rows {
		return fmt.Errorf("%w: %d rows declared, stream holds %d", ErrTruncatedData, d.ih.Height, rows)
	}
	return nil
}

// readPixels streams the pixel array row by row, bottom row first, through a single
// reused row buffer.
func (d *bmpDecoder) readPixels() (*Image, error) {
	width, height := int(d.ih.Width), int(d.ih.Height)
	padding := rowPadding(width)

	if _, err := d.r.Seek(int64(d.fh.OffBits), io.SeekStart); err != nil {
		return nil, err
	}

	m := NewImage(width, height, Black)
	buf := make([]byte, 3*width)
	for y := height - 1; y >= 0; y-- {
		d.r.ReadBytesTo(buf)
		d.r.Discard(padding)
		if d.r.Err() != nil {
			break
		}
		row := m.Row(y)
		for x := range row {
			row[x] = Color{B: buf[3*x+0], G: buf[3*x+1], R: buf[3*x+2]}
		}
	}

	if err := d.r.Err(); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: pixel array cut at byte %d: %w", ErrTruncatedData, d.r.Count(), err)
		}
		return nil, err
	}
	return m, nil
}
