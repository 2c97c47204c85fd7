package imglib

import "github.com/cespare/xxhash/v2"

// Digest returns a 64-bit xxhash of the dimensions and pixel values of m. Two images
// with equal digests are, for all practical purposes, pixel-identical.
func (m *Image) Digest() uint64 {
	d := xxhash.New()
	var dims [8]byte
	LE.PutUint32(dims[0:4], uint32(m.Width()))
	LE.PutUint32(dims[4:8], uint32(m.Height()))
	_, _ = d.Write(dims[:])
	if !m.Valid() {
		return d.Sum64()
	}

	row := make([]byte, 3*m.width)
	for y := range m.height {
		for x, c := range m.Row(y) {
			row[3*x], row[3*x+1], row[3*x+2] = c.R, c.G, c.B
		}
		_, _ = d.Write(row)
	}
	return d.Sum64()
}
