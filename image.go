package imglib

import (
	"image"
	"image/color"
	"image/draw"
)

// Color is an opaque 24-bit RGB value.
type Color struct {
	R, G, B byte
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// RGBModel converts any color to Color. Alpha is dropped, not composited.
var RGBModel = color.ModelFunc(func(c color.Color) color.Color {
	if rgb, ok := c.(Color); ok {
		return rgb
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B}
})

// Image is a rectangular grid of RGB pixels stored row-major, top row first.
// The zero value (and a nil *Image) holds no image and is what failed loads return.
type Image struct {
	width  int
	height int
	pix    []Color
}

var _ image.Image = (*Image)(nil)

// NewImage allocates a width x height image filled with fill. Non-positive
// dimensions yield the empty image.
func NewImage(width, height int, fill Color) *Image {
	if width <= 0 || height <= 0 {
		return &Image{}
	}
	pix := make([]Color, width*height)
	if fill != Black {
		for i := range pix {
			pix[i] = fill
		}
	}
	return &Image{width: width, height: height, pix: pix}
}

// FromImage copies any image.Image into a new Image.
func FromImage(src image.Image) *Image {
	if m, ok := src.(*Image); ok {
		return m.Clone()
	}
	b := src.Bounds()
	m := NewImage(b.Dx(), b.Dy(), Black)
	if !m.Valid() {
		return m
	}

	// Fast path for the layouts the standard decoders produce.
	if rgba, ok := src.(*image.RGBA); ok && rgba.Opaque() {
		for y := range m.height {
			row := m.Row(y)
			off := rgba.PixOffset(b.Min.X, b.Min.Y+y)
			for x := range row {
				row[x] = Color{rgba.Pix[off], rgba.Pix[off+1], rgba.Pix[off+2]}
				off += 4
			}
		}
		return m
	}
	if _, ok := src.(*image.YCbCr); ok {
		rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
		return FromImage(rgba)
	}

	for y := range m.height {
		row := m.Row(y)
		for x := range row {
			row[x] = RGBModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(Color)
		}
	}
	return m
}

// Valid reports whether m holds an image.
func (m *Image) Valid() bool {
	return m != nil && m.width > 0 && m.height > 0
}

func (m *Image) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

func (m *Image) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

// Row returns row y as a slice aliasing the image; writes through it modify m.
func (m *Image) Row(y int) []Color {
	return m.pix[y*m.width : (y+1)*m.width : (y+1)*m.width]
}

// Pixel returns the color at (x, y). Out-of-range coordinates yield Black.
func (m *Image) Pixel(x, y int) Color {
	if !m.inBounds(x, y) {
		return Black
	}
	return m.pix[y*m.width+x]
}

// Set stores c at (x, y). Out-of-range coordinates are ignored.
func (m *Image) Set(x, y int, c Color) {
	if !m.inBounds(x, y) {
		return
	}
	m.pix[y*m.width+x] = c
}

func (m *Image) inBounds(x, y int) bool {
	return m.Valid() && x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Clone returns a deep copy of m.
func (m *Image) Clone() *Image {
	if !m.Valid() {
		return &Image{}
	}
	return &Image{width: m.width, height: m.height, pix: append([]Color(nil), m.pix...)}
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return RGBModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width(), m.Height()) }

// At implements image.Image.
func (m *Image) At(x, y int) color.Color { return m.Pixel(x, y) }

// Opaque reports true; the image has no alpha channel.
func (m *Image) Opaque() bool { return true }
