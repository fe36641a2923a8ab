package paint

import (
	"image"

	"github.com/gogpu/paint/internal/grid"
	"github.com/gogpu/paint/internal/imageio"
)

// Pattern is a tiling source image for pattern fills.
type Pattern struct {
	g *grid.Grid
}

// NewPattern creates a pattern from an image. It returns nil if img is nil
// or empty.
func NewPattern(img image.Image) *Pattern {
	if img == nil || img.Bounds().Empty() {
		return nil
	}
	src := imageio.ToNRGBA(img)
	return &Pattern{g: grid.FromRGBA(src.Pix, src.Rect.Dx(), src.Rect.Dy())}
}

// LoadPattern decodes the image at path into a pattern.
func LoadPattern(path string) (*Pattern, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	p := NewPattern(img)
	if p == nil {
		return nil, ErrNoPattern
	}
	return p, nil
}

// Scale returns the pattern enlarged by an integer factor with
// nearest-neighbour sampling. Factors below 2 return p unchanged.
func (p *Pattern) Scale(factor int) *Pattern {
	if factor < 2 {
		return p
	}
	return NewPattern(imageio.Scale(p.Image(), factor))
}

// Image returns a copy of the pattern as an image.
func (p *Pattern) Image() *image.NRGBA {
	w, h := p.g.Width(), p.g.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := p.g.At(x, y).Unpack()
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
		}
	}
	return img
}

// Width returns the pattern width.
func (p *Pattern) Width() int { return p.g.Width() }

// Height returns the pattern height.
func (p *Pattern) Height() int { return p.g.Height() }

// ColorAt returns the pattern color at (x, y), wrapping both coordinates so
// the pattern tiles the plane.
func (p *Pattern) ColorAt(x, y int) Color {
	w, h := p.g.Width(), p.g.Height()
	x %= w
	if x < 0 {
		x += w
	}
	y %= h
	if y < 0 {
		y += h
	}
	return colorOf(p.g.At(x, y))
}

// Size implements fill.Sampler.
func (p *Pattern) Size() (width, height int) { return p.g.Width(), p.g.Height() }

// At implements fill.Sampler.
func (p *Pattern) At(x, y int) grid.Pixel { return p.ColorAt(x, y).pixel() }
