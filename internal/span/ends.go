package span

import (
	"image"

	"github.com/gogpu/paint/internal/grid"
)

var unitX = image.Pt(1, 0)

// RightEnd walks right from the background pixel p and returns the first
// border pixel. The walk stops at the canvas edge because everything outside
// the region bounds is border. If p itself is border, p is returned.
func RightEnd(r grid.Region, p image.Point) image.Point {
	for !r.Border(p) {
		p = p.Add(unitX)
	}
	return p
}

// LeftEnd walks left from the border pixel q and returns the first pixel of
// the background run that ends at q. If the pixel left of q is border there
// is no such run and q is returned.
func LeftEnd(r grid.Region, q image.Point) image.Point {
	p := q.Sub(unitX)
	if r.Border(p) {
		return q
	}
	for !r.Border(p.Sub(unitX)) {
		p = p.Sub(unitX)
	}
	return p
}
