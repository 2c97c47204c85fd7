package imglib

// Bitmap layout constants. Only uncompressed 24-bit bitmaps are produced or accepted.
const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	// headerSize is the combined size of both headers and the offset of the pixel
	// array in every bitmap this package writes.
	headerSize = fileHeaderSize + infoHeaderSize

	bmpMagic    uint16 = 0x4D42 // "BM" read as a little-endian word
	bmpBitCount        = 24
	biRGB              = 0 // no compression

	// DefaultPelsPerMeter is about 300 DPI.
	DefaultPelsPerMeter = 11811

	// LegacyColorsImportant is the biClrImportant value written by default. It is
	// meaningless for a paletteless image but kept so output stays byte-identical with
	// files produced by earlier converters.
	LegacyColorsImportant = 0x1000000
)

// FileHeader is the 14-byte BITMAPFILEHEADER record.
type FileHeader struct {
	Type     uint16 // must be bmpMagic
	Size     uint32 // total file size in bytes
	Reserved uint32
	OffBits  uint32 // offset from the start of the file to the pixel array
}

// InfoHeader is the 40-byte BITMAPINFOHEADER record.
type InfoHeader struct {
	Size          uint32 // size of this record, 40
	Width         int32
	Height        int32 // positive: rows are stored bottom-up
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32 // size of the pixel array including row padding
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type (
	fileHeaderRecord = Fixed[FileHeader]
	infoHeaderRecord = Fixed[InfoHeader]
)

// Stride returns the on-disk length of one 24-bit row of the given width: three bytes
// per pixel rounded up to a multiple of four.
func Stride(width int) int {
	return Roundup(3*width, 4)
}

// rowPadding is the number of zero bytes that follow each row's pixel data.
// It always equals Stride(width) - 3*width.
func rowPadding(width int) int {
	return (4 - (3*width)%4) % 4
}

// BMPOptions controls the informational header fields of encoded bitmaps.
type BMPOptions struct {
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorsImportant uint32
}

// DefaultBMPOptions returns 300 DPI and the legacy biClrImportant value.
func DefaultBMPOptions() BMPOptions {
	return BMPOptions{
		XPelsPerMeter:   DefaultPelsPerMeter,
		YPelsPerMeter:   DefaultPelsPerMeter,
		ColorsImportant: LegacyColorsImportant,
	}
}
