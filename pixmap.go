package vecpaint

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored non-premultiplied in RGBA order, 4 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Returns nil if either dimension is not positive.
func NewPixmap(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = quantize(c.R)
	p.data[i+1] = quantize(c.G)
	p.data[i+2] = quantize(c.B)
	p.data[i+3] = quantize(c.A)
}

// quantize maps a [0, 1] component to a rounded 8-bit value.
func quantize(v float64) uint8 {
	return uint8(clamp255(v*255) + 0.5)
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := quantize(c.R)
	g := quantize(c.G)
	b := quantize(c.B)
	a := quantize(c.A)

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone creates a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// nrgba wraps the pixmap buffer as an image.NRGBA without copying.
func (p *Pixmap) nrgba() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image, converting whatever color
// model the source uses.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	if pm == nil {
		return nil
	}
	xdraw.Draw(pm.nrgba(), pm.nrgba().Rect, img, bounds.Min, xdraw.Src)
	return pm
}

// FromImageScaled creates a pixmap of the given size from an image,
// resampling with a Catmull-Rom kernel when the sizes differ.
func FromImageScaled(img image.Image, width, height int) *Pixmap {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return FromImage(img)
	}
	pm := NewPixmap(width, height)
	if pm == nil {
		return nil
	}
	xdraw.CatmullRom.Scale(pm.nrgba(), pm.nrgba().Rect, img, bounds, xdraw.Src, nil)
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
