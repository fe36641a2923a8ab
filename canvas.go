package paint

import (
	"image"
	"image/color"

	"github.com/gogpu/paint/internal/grid"
	"github.com/gogpu/paint/internal/imageio"
)

// Canvas is the mutable raster a Painter draws into.
//
// A Canvas is not safe for concurrent use. Fills take a snapshot of the
// canvas before they compute anything and write back only when done.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, not premultiplied

	// gen changes on every reallocation so that a fill computed against an
	// older buffer is never committed.
	gen uint64
}

// NewCanvas creates a canvas of the given dimensions cleared to white.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.alloc(width, height)
	return c
}

func (c *Canvas) alloc(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width = width
	c.height = height
	c.data = make([]uint8, width*height*4)
	c.gen++
	c.Clear(White)
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw pixel data (RGBA format).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// In reports whether (x, y) is a pixel of the canvas.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates are
// ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if !c.In(x, y) {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = col.R
	c.data[i+1] = col.G
	c.data[i+2] = col.B
	c.data[i+3] = col.A
}

// GetPixel returns the color of a single pixel, or Transparent outside the
// canvas.
func (c *Canvas) GetPixel(x, y int) Color {
	if !c.In(x, y) {
		return Transparent
	}
	i := (y*c.width + x) * 4
	return Color{R: c.data[i+0], G: c.data[i+1], B: c.data[i+2], A: c.data[i+3]}
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col Color) {
	for i := 0; i < len(c.data); i += 4 {
		c.data[i+0] = col.R
		c.data[i+1] = col.G
		c.data[i+2] = col.B
		c.data[i+3] = col.A
	}
}

// Resize reallocates the canvas and clears it to white. Any fill computed
// before the resize is discarded instead of committed.
func (c *Canvas) Resize(width, height int) {
	c.alloc(width, height)
}

// snapshot copies the canvas into a read-only grid.
func (c *Canvas) snapshot() *grid.Grid {
	return grid.FromRGBA(c.data, c.width, c.height)
}

// writer adapts the canvas to fill.Writer.
type writer struct{ c *Canvas }

func (w writer) Set(x, y int, v grid.Pixel) { w.c.SetPixel(x, y, colorOf(v)) }

// ToImage converts the canvas to an image.NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// FromImage creates a canvas from an image.
func FromImage(img image.Image) *Canvas {
	src := imageio.ToNRGBA(img)
	c := NewCanvas(src.Rect.Dx(), src.Rect.Dy())
	copy(c.data, src.Pix)
	return c
}

// LoadCanvas decodes the image at path into a new canvas.
func LoadCanvas(path string) (*Canvas, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return imageio.SavePNG(path, c.ToImage())
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
