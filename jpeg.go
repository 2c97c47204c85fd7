package imglib

import (
	"image/jpeg"
	"io"
)

// DefaultJPEGQuality matches image/jpeg's own default.
const DefaultJPEGQuality = jpeg.DefaultQuality

// DecodeJPEG reads a baseline or progressive JPEG.
func DecodeJPEG(r io.Reader) (*Image, error) {
	src, err := jpeg.Decode(r)
	if err != nil {
		return nil, err
	}
	m := FromImage(src)
	if !m.Valid() {
		return nil, ErrInvalidDimensions
	}
	return m, nil
}

// EncodeJPEG writes m to w. A quality outside 1..100 selects DefaultJPEGQuality.
func EncodeJPEG(w io.Writer, m *Image, quality int) error {
	if !m.Valid() {
		return ErrEmptyImage
	}
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return jpeg.Encode(w, m, &jpeg.Options{Quality: quality})
}
