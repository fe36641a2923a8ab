// Package grid holds the read-only pixel snapshot a fill runs against.
//
// A fill never consults the live canvas while it computes: the canvas is
// copied into a Grid first, the seed color is captured into a Mask, and
// every tracer, matcher and sampler reads through that Mask.
package grid

import "image"

// Pixel is a packed 0xRRGGBBAA color value.
type Pixel uint32

// Pack packs 8-bit components into a Pixel.
func Pack(r, g, b, a uint8) Pixel {
	return Pixel(r)<<24 | Pixel(g)<<16 | Pixel(b)<<8 | Pixel(a)
}

// Unpack returns the 8-bit components of p.
func (p Pixel) Unpack() (r, g, b, a uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Grid is a width × height array of pixels in row-major order.
type Grid struct {
	width  int
	height int
	pix    []Pixel
}

// New creates a grid with all pixels set to zero.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// FromRGBA packs a non-premultiplied RGBA byte buffer (4 bytes per pixel,
// tightly packed rows) into a new grid.
func FromRGBA(data []uint8, width, height int) *Grid {
	g := New(width, height)
	for i := range g.pix {
		j := i * 4
		if j+3 >= len(data) {
			break
		}
		g.pix[i] = Pack(data[j], data[j+1], data[j+2], data[j+3])
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Bounds returns the rectangle covered by the grid.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the pixel at (x, y), or zero outside the grid.
func (g *Grid) At(x, y int) Pixel {
	if !g.In(x, y) {
		return 0
	}
	return g.pix[y*g.width+x]
}

// Set stores v at (x, y). Coordinates outside the grid are ignored.
func (g *Grid) Set(x, y int, v Pixel) {
	if !g.In(x, y) {
		return
	}
	g.pix[y*g.width+x] = v
}

// Fill sets every pixel to v.
func (g *Grid) Fill(v Pixel) {
	for i := range g.pix {
		g.pix[i] = v
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, pix: make([]Pixel, len(g.pix))}
	copy(c.pix, g.pix)
	return c
}
