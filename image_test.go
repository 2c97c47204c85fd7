package imglib

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImage(t *testing.T) {
	m := NewImage(3, 2, White)
	require.True(t, m.Valid())
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	for y := range 2 {
		for _, c := range m.Row(y) {
			assert.Equal(t, White, c)
		}
	}

	assert.False(t, NewImage(0, 5, White).Valid())
	assert.False(t, NewImage(5, -1, White).Valid())
}

func TestImage_EmptySentinel(t *testing.T) {
	var nilImage *Image
	assert.False(t, nilImage.Valid())
	assert.Zero(t, nilImage.Width())
	assert.Zero(t, nilImage.Height())
	assert.Equal(t, image.Rectangle{}, nilImage.Bounds())

	var zero Image
	assert.False(t, zero.Valid())
	assert.Equal(t, Black, zero.Pixel(0, 0))
}

func TestImage_RowAliases(t *testing.T) {
	m := NewImage(2, 2, Black)
	m.Row(1)[0] = Color{9, 8, 7}
	assert.Equal(t, Color{9, 8, 7}, m.Pixel(0, 1))
	assert.Len(t, m.Row(0), 2)

	// Appending to a row must not spill into the next one.
	_ = append(m.Row(0), Color{1, 1, 1})
	assert.Equal(t, Color{9, 8, 7}, m.Pixel(0, 1))
}

func TestImage_SetOutOfRange(t *testing.T) {
	m := NewImage(2, 2, Black)
	m.Set(-1, 0, White)
	m.Set(2, 0, White)
	m.Set(0, 2, White)
	assert.Equal(t, NewImage(2, 2, Black), m)
	assert.Equal(t, Black, m.Pixel(5, 5))
}

func TestImage_Clone(t *testing.T) {
	m := gradient(3, 3)
	c := m.Clone()
	require.Equal(t, m, c)

	c.Set(0, 0, Color{1, 2, 3})
	assert.NotEqual(t, m.Pixel(0, 0), c.Pixel(0, 0))
}

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := Color{0x12, 0x00, 0xFF}.RGBA()
	assert.EqualValues(t, 0x1212, r)
	assert.EqualValues(t, 0, g)
	assert.EqualValues(t, 0xFFFF, b)
	assert.EqualValues(t, 0xFFFF, a)
}

func TestRGBModel(t *testing.T) {
	assert.Equal(t, Color{10, 20, 30}, RGBModel.Convert(color.RGBA{10, 20, 30, 255}))
	assert.Equal(t, Color{10, 20, 30}, RGBModel.Convert(color.NRGBA{10, 20, 30, 0}), "alpha is dropped, not applied")
	assert.Equal(t, Color{128, 128, 128}, RGBModel.Convert(color.Gray{128}))
}

func TestFromImage(t *testing.T) {
	t.Run("RGBASubImage", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 4, 4))
		for y := range 4 {
			for x := range 4 {
				src.SetRGBA(x, y, color.RGBA{byte(x), byte(y), 7, 255})
			}
		}
		sub := src.SubImage(image.Rect(1, 2, 3, 4))

		m := FromImage(sub)
		require.Equal(t, 2, m.Width())
		require.Equal(t, 2, m.Height())
		assert.Equal(t, Color{1, 2, 7}, m.Pixel(0, 0))
		assert.Equal(t, Color{2, 3, 7}, m.Pixel(1, 1))
	})

	t.Run("Gray", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 2, 1))
		src.SetGray(1, 0, color.Gray{200})
		m := FromImage(src)
		assert.Equal(t, Color{200, 200, 200}, m.Pixel(1, 0))
	})

	t.Run("YCbCr", func(t *testing.T) {
		src := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444)
		for i := range src.Y {
			src.Y[i], src.Cb[i], src.Cr[i] = 255, 128, 128
		}
		m := FromImage(src)
		assert.Equal(t, White, m.Pixel(1, 1))
	})

	t.Run("CopiesImage", func(t *testing.T) {
		m := gradient(2, 2)
		c := FromImage(m)
		assert.Equal(t, m, c)
		c.Set(0, 0, White)
		assert.NotEqual(t, m, c)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.False(t, FromImage(image.NewRGBA(image.Rectangle{})).Valid())
	})
}

func TestImage_Digest(t *testing.T) {
	a := gradient(4, 3)
	b := gradient(4, 3)
	assert.Equal(t, a.Digest(), b.Digest())

	b.Set(3, 2, Color{0, 0, 1})
	assert.NotEqual(t, a.Digest(), b.Digest())

	// Same pixel bytes, different shape.
	assert.NotEqual(t, NewImage(2, 3, White).Digest(), NewImage(3, 2, White).Digest())

	var empty *Image
	assert.Equal(t, (&Image{}).Digest(), empty.Digest())
}
