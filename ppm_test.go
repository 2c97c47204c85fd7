package imglib

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPPM_Encode(t *testing.T) {
	m := NewImage(2, 1, Black)
	m.Set(0, 0, Color{255, 0, 0})
	m.Set(1, 0, Color{0, 255, 0})

	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, m))
	want := append([]byte("P6\n2 1\n255\n"), 255, 0, 0, 0, 255, 0)
	assert.Equal(t, want, buf.Bytes())
}

func TestPPM_RoundTrip(t *testing.T) {
	for _, m := range []*Image{gradient(1, 1), gradient(5, 3), gradient(64, 2)} {
		var buf bytes.Buffer
		require.NoError(t, EncodePPM(&buf, m))
		got, err := DecodePPM(&buf)
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestPPM_RoundTripFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.ppm")
	m := gradient(3, 4)
	require.NoError(t, SavePPM(path, m))
	got, err := LoadPPM(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestPPM_HeaderComments(t *testing.T) {
	data := append([]byte("P6\n# made by hand\n1 # width\n1\n15\n"), 15, 0, 7)
	m, err := DecodePPM(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, Color{255, 0, 119}, m.Pixel(0, 0))

	data = append([]byte("P6 1#c\n2 255\n"), 1, 2, 3, 4, 5, 6)
	m, err = DecodePPM(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, Color{4, 5, 6}, m.Pixel(0, 1))
}

func TestPPM_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"PlainVariant", []byte("P3\n1 1\n255\n0 0 0\n"), ErrInvalidPPM},
		{"SixteenBit", append([]byte("P6\n1 1\n65535\n"), 0, 0, 0, 0, 0, 0), ErrInvalidPPM},
		{"ZeroWidth", []byte("P6\n0 1\n255\n"), ErrInvalidDimensions},
		{"Garbage", []byte("P6\nx 1\n255\n"), ErrInvalidDimensions},
		{"TooLarge", []byte("P6\n100000 100000\n255\n"), ErrImageTooLarge},
		{"TruncatedHeader", []byte("P6\n1 1"), ErrTruncatedData},
		{"TruncatedRaster", append([]byte("P6\n2 1\n255\n"), 1, 2, 3), ErrTruncatedData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodePPM(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, m)
		})
	}
}

func TestPPM_EncodeEmpty(t *testing.T) {
	assert.ErrorIs(t, EncodePPM(&bytes.Buffer{}, &Image{}), ErrEmptyImage)
}
