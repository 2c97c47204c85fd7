package imglib

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// maxPPMPixels bounds the allocation a forged header can request.
const maxPPMPixels = 1 << 28

// DecodePPM reads a binary (P6) netpbm pixmap with a maxval of at most 255.
// Samples are rescaled to 8 bits when maxval is below 255.
func DecodePPM(r io.Reader) (*Image, error) {
	br, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	magic := br.ReadBytes(2)
	if br.Err() == nil && string(magic) != "P6" {
		return nil, fmt.Errorf("%w: magic %q", ErrInvalidPPM, magic)
	}
	width := readPPMInt(br)
	height := readPPMInt(br)
	maxval := readPPMInt(br)
	if err := br.Err(); err != nil {
		return nil, ppmError(err)
	}

	switch {
	case width <= 0 || height <= 0:
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	case int64(width)*int64(height) > maxPPMPixels:
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, width, height)
	case maxval <= 0 || maxval > 255:
		return nil, fmt.Errorf("%w: maxval %d", ErrInvalidPPM, maxval)
	}

	m := NewImage(width, height, Black)
	buf := make([]byte, 3*width)
	for y := range height {
		br.ReadBytesTo(buf)
		if br.Err() != nil {
			return nil, ppmError(br.Err())
		}
		row := m.Row(y)
		for x := range row {
			row[x] = Color{
				R: scaleSample(buf[3*x+0], maxval),
				G: scaleSample(buf[3*x+1], maxval),
				B: scaleSample(buf[3*x+2], maxval),
			}
		}
	}
	return m, nil
}

// readPPMInt reads one decimal header field, skipping leading whitespace and
// comments. The single whitespace byte that terminates the field is consumed, which
// matters after maxval: the raster starts right behind it.
func readPPMInt(br *Reader) int {
	var c byte
	var err error
	for {
		if c, err = br.ReadByte(); err != nil {
			return 0
		}
		if c == '#' {
			for c != '\n' && c != '\r' {
				if c, err = br.ReadByte(); err != nil {
					return 0
				}
			}
			continue
		}
		if !isPPMSpace(c) {
			break
		}
	}

	var digits []byte
	for '0' <= c && c <= '9' {
		digits = append(digits, c)
		if c, err = br.ReadByte(); err != nil {
			return 0
		}
	}
	if len(digits) == 0 || len(digits) > 9 {
		return -1
	}
	if c == '#' {
		_ = br.UnreadByte()
	} else if !isPPMSpace(c) {
		return -1
	}
	n, _ := strconv.Atoi(string(digits))
	return n
}

func isPPMSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func scaleSample(v byte, maxval int) byte {
	if maxval == 255 {
		return v
	}
	if int(v) >= maxval {
		return 255
	}
	return byte((int(v)*255 + maxval/2) / maxval)
}

func ppmError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncatedData, err)
	}
	return err
}

// EncodePPM writes m to w as a binary (P6) pixmap with maxval 255.
func EncodePPM(w io.Writer, m *Image) error {
	if !m.Valid() {
		return ErrEmptyImage
	}
	bw, err := NewWriter(w)
	if err != nil {
		return err
	}

	bw.WriteString(fmt.Sprintf("P6\n%d %d\n255\n", m.width, m.height))
	row := make([]byte, 3*m.width)
	for y := 0; y < m.height && bw.Err() == nil; y++ {
		for x, c := range m.Row(y) {
			row[3*x], row[3*x+1], row[3*x+2] = c.R, c.G, c.B
		}
		bw.WriteBytes(row)
	}
	_, err = bw.Result()
	return err
}

// LoadPPM decodes the named pixmap file.
func LoadPPM(path string) (*Image, error) {
	return loadFile(path, DecodePPM)
}

// SavePPM writes m to the named file.
func SavePPM(path string, m *Image) error {
	return saveFile(path, m, func(w io.Writer) error { return EncodePPM(w, m) })
}
