package imglib

import (
	"fmt"
	"io"
	"math"
)

// EncodeBMP writes m to w as an uncompressed 24-bit bitmap using DefaultBMPOptions.
func EncodeBMP(w io.Writer, m *Image) error {
	return EncodeBMPWithOptions(w, m, nil)
}

// EncodeBMPWithOptions writes m to w as an uncompressed 24-bit bitmap. A nil opts
// selects DefaultBMPOptions. Rows are written bottom-up in BGR order, each padded
// with zeros to Stride(width).
func EncodeBMPWithOptions(w io.Writer, m *Image, opts *BMPOptions) error {
	if !m.Valid() {
		return ErrEmptyImage
	}
	if opts == nil {
		defaults := DefaultBMPOptions()
		opts = &defaults
	}

	fh, ih, err := bmpHeaders(m.width, m.height, opts)
	if err != nil {
		return err
	}

	bw, err := NewWriter(w)
	if err != nil {
		return err
	}
	bw.WriteFrom(fh)
	bw.WriteFrom(ih)

	padding := int64(rowPadding(m.width))
	row := make([]byte, 3*m.width)
	for y := m.height - 1; y >= 0 && bw.Err() == nil; y-- {
		for x, c := range m.Row(y) {
			row[3*x+0] = c.B
			row[3*x+1] = c.G
			row[3*x+2] = c.R
		}
		bw.WriteBytes(row)
		bw.WriteZeros(padding)
	}

	_, err = bw.Result()
	return err
}

func bmpHeaders(width, height int, opts *BMPOptions) (*fileHeaderRecord, *infoHeaderRecord, error) {
	imageSize := int64(height) * int64(Stride(width))
	if width > math.MaxInt32 || height > math.MaxInt32 || imageSize+headerSize > math.MaxUint32 {
		return nil, nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, width, height)
	}

	fh := &fileHeaderRecord{Payload: FileHeader{
		Type:    bmpMagic,
		Size:    uint32(imageSize + headerSize),
		OffBits: headerSize,
	}}
	ih := &infoHeaderRecord{Payload: InfoHeader{
		Size:          infoHeaderSize,
		Width:         int32(width),
		Height:        int32(height),
		Planes:        1,
		BitCount:      bmpBitCount,
		Compression:   biRGB,
		SizeImage:     uint32(imageSize),
		XPelsPerMeter: opts.XPelsPerMeter,
		YPelsPerMeter: opts.YPelsPerMeter,
		ClrImportant:  opts.ColorsImportant,
	}}
	return fh, ih, nil
}

// SaveBMP writes m to the named file with DefaultBMPOptions. On failure no
// partially written file is left behind.
func SaveBMP(path string, m *Image) error {
	return saveFile(path, m, func(w io.Writer) error { return EncodeBMP(w, m) })
}
