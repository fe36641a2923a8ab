package grid

import "image"

// Region classifies pixels for a single fill. Tracers and matchers only ever
// ask whether a point blocks the fill.
type Region interface {
	// Border reports whether p is not fillable. Points outside Bounds are
	// always border.
	Border(p image.Point) bool

	// Bounds returns the area in which non-border pixels can occur.
	Bounds() image.Rectangle
}

// Mask is the Region of all pixels equal to a background value captured
// once at the start of a fill.
type Mask struct {
	g  *Grid
	bg Pixel
}

// NewMask returns the mask of g against the color at seed. The second
// result is false when seed lies outside g.
func NewMask(g *Grid, seed image.Point) (Mask, bool) {
	if !g.In(seed.X, seed.Y) {
		return Mask{g: g}, false
	}
	return Mask{g: g, bg: g.At(seed.X, seed.Y)}, true
}

// Background returns the captured background value.
func (m Mask) Background() Pixel { return m.bg }

// Border implements Region.
func (m Mask) Border(p image.Point) bool {
	if !m.g.In(p.X, p.Y) {
		return true
	}
	return m.g.pix[p.Y*m.g.width+p.X] != m.bg
}

// Bounds implements Region.
func (m Mask) Bounds() image.Rectangle { return m.g.Bounds() }
