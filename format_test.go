package imglib

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatByExtension(t *testing.T) {
	tests := map[string]Format{
		"a.bmp":          FormatBMP,
		"A.BMP":          FormatBMP,
		"dir/photo.jpg":  FormatJPEG,
		"photo.jpeg":     FormatJPEG,
		"pic.ppm":        FormatPPM,
		"pic.png":        FormatUnknown,
		"noext":          FormatUnknown,
		"dir.bmp/file":   FormatUnknown,
		"archive.bmp.gz": FormatUnknown,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatByExtension(path), path)
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "bmp", FormatBMP.String())
	assert.Equal(t, "ppm", FormatPPM.String())
	assert.Equal(t, "jpeg", FormatJPEG.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestFormat_LosslessRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := gradient(6, 4)
	for _, name := range []string{"x.bmp", "x.ppm"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, m, nil), name)
		got, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, m, got, name)
	}
}

func TestFormat_JPEG(t *testing.T) {
	m := NewImage(16, 16, Color{200, 40, 90})
	path := filepath.Join(t.TempDir(), "solid.jpg")
	opts := DefaultOptions()
	opts.JPEGQuality = 95
	require.NoError(t, Save(path, m, &opts))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 16, got.Width())
	require.Equal(t, 16, got.Height())

	c := got.Pixel(8, 8)
	assert.InDelta(t, 200, int(c.R), 4)
	assert.InDelta(t, 40, int(c.G), 4)
	assert.InDelta(t, 90, int(c.B), 4)
}

func TestFormat_EncodeUsesBMPOptions(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.BMP.ColorsImportant = 0
	require.NoError(t, FormatBMP.Encode(&buf, gradient(1, 1), &opts))
	assert.Equal(t, []byte{0, 0, 0, 0}, buf.Bytes()[offColorsImport:offColorsImport+4])
}

func TestFormat_Unknown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.png")

	assert.ErrorIs(t, Save(path, gradient(1, 1), nil), ErrUnknownFormat)
	assert.NoFileExists(t, path)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = FormatUnknown.Decode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorIs(t, FormatUnknown.Encode(&bytes.Buffer{}, gradient(1, 1), nil), ErrUnknownFormat)
}

func TestFormat_SaveEmptyLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bmp")
	assert.ErrorIs(t, Save(path, &Image{}, nil), ErrEmptyImage)
	assert.NoFileExists(t, path)
}
