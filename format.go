package imglib

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is one of the closed set of image formats the package can load and save.
type Format int

const (
	FormatUnknown Format = iota
	FormatJPEG
	FormatPPM
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPPM:
		return "ppm"
	case FormatBMP:
		return "bmp"
	}
	return "unknown"
}

// FormatByExtension picks the format from the file extension of path.
func FormatByExtension(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".ppm":
		return FormatPPM
	case ".bmp":
		return FormatBMP
	}
	return FormatUnknown
}

// Options carries the per-format encoder settings.
type Options struct {
	BMP         BMPOptions
	JPEGQuality int
}

// DefaultOptions returns the settings used when nil Options are passed.
func DefaultOptions() Options {
	return Options{BMP: DefaultBMPOptions(), JPEGQuality: DefaultJPEGQuality}
}

// Decode reads an image in format f.
func (f Format) Decode(r io.Reader) (*Image, error) {
	switch f {
	case FormatJPEG:
		return DecodeJPEG(r)
	case FormatPPM:
		return DecodePPM(r)
	case FormatBMP:
		return DecodeBMP(r)
	}
	return nil, ErrUnknownFormat
}

// Encode writes m to w in format f. A nil opts selects DefaultOptions.
func (f Format) Encode(w io.Writer, m *Image, opts *Options) error {
	if opts == nil {
		defaults := DefaultOptions()
		opts = &defaults
	}
	switch f {
	case FormatJPEG:
		return EncodeJPEG(w, m, opts.JPEGQuality)
	case FormatPPM:
		return EncodePPM(w, m)
	case FormatBMP:
		return EncodeBMPWithOptions(w, m, &opts.BMP)
	}
	return ErrUnknownFormat
}

// Load decodes the named file in format f.
func (f Format) Load(path string) (*Image, error) {
	if f == FormatUnknown {
		return nil, ErrUnknownFormat
	}
	return loadFile(path, f.Decode)
}

// Save writes m to the named file in format f.
func (f Format) Save(path string, m *Image, opts *Options) error {
	if f == FormatUnknown {
		return ErrUnknownFormat
	}
	return saveFile(path, m, func(w io.Writer) error { return f.Encode(w, m, opts) })
}

// Load decodes the named file, picking the format from its extension.
func Load(path string) (*Image, error) {
	return FormatByExtension(path).Load(path)
}

// Save writes m to the named file, picking the format from its extension.
func Save(path string, m *Image, opts *Options) error {
	return FormatByExtension(path).Save(path, m, opts)
}

// loadFile opens path, decodes it and closes it on every exit path.
func loadFile(path string, decode func(io.Reader) (*Image, error)) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f)
}

// saveFile creates path and runs encode against it. The file is removed again if
// encoding or closing fails, so callers never observe partial output.
func saveFile(path string, m *Image, encode func(io.Writer) error) error {
	if !m.Valid() {
		return ErrEmptyImage
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
